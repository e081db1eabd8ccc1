package main

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	timingRe     = regexp.MustCompile(`(?m)^Took \d+\.\d{6} seconds$`)
	sequentialRe = regexp.MustCompile(`(?m)^π = 3\.1\d{9} \(sequential\)$`)
	parallelRe   = regexp.MustCompile(`(?m)^π = 3\.1\d{9} \(parallel\)$`)
)

func TestRun_Output(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size run in short mode")
	}

	var out bytes.Buffer
	require.NoError(t, run(&out, trialCount, 4))

	got := out.String()
	require.True(t, strings.HasPrefix(got, "Timing sequential...\n"), got)
	require.Contains(t, got, "\nTiming parallel...\n")
	require.Len(t, timingRe.FindAllString(got, -1), 2, got)
	require.Regexp(t, sequentialRe, got)
	require.Regexp(t, parallelRe, got)

	// Sequential result is printed before the parallel one, after both timings.
	seq := sequentialRe.FindStringIndex(got)
	par := parallelRe.FindStringIndex(got)
	require.Less(t, seq[0], par[0])
	require.Less(t, strings.LastIndex(got, "seconds"), seq[0])
}

func TestRun_InvalidTrialCount(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, 0, 4)

	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "sequential estimate")
	require.Equal(t, "Timing sequential...\n", out.String())
}

func TestRun_LogsSummaryPerEstimate(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer slog.SetDefault(prev)

	var out bytes.Buffer
	require.NoError(t, run(&out, 1003, 2))

	got := logs.String()
	require.Equal(t, 2, strings.Count(got, "msg=\"estimate done\""), got)
	require.Contains(t, got, "mode=sequential")
	require.Contains(t, got, "mode=parallel")
	require.Contains(t, got, "executed=1002")
	require.NotContains(t, got, "worker merged")
	require.NotContains(t, out.String(), "estimate done")
}
