package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

const trialCount = 10_000_000

// timed runs estimate between two wall-clock readings and prints the elapsed
// seconds.
func timed(w io.Writer, label string, estimate func() (Estimate, error)) (Estimate, error) {
	fmt.Fprintf(w, "Timing %s...\n", label)

	start := time.Now()
	est, err := estimate()
	elapsed := time.Since(start)
	if err != nil {
		return Estimate{}, errors.Wrapf(err, "%s estimate", label)
	}

	fmt.Fprintf(w, "Took %f seconds\n\n", elapsed.Seconds())
	slog.Info("estimate done", "mode", label, "workers", est.Workers,
		"executed", est.Executed, "hits", est.Hits, "elapsed", elapsed)

	return est, nil
}

func run(w io.Writer, trials, workers int) error {
	sequential, err := timed(w, "sequential", func() (Estimate, error) {
		return estimateSequential(trials)
	})
	if err != nil {
		return err
	}

	parallel, err := timed(w, "parallel", func() (Estimate, error) {
		return estimateParallel(trials, workers)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "π = %.10f (sequential)\n", sequential.Pi)
	fmt.Fprintf(w, "π = %.10f (parallel)\n", parallel.Pi)
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(os.Stdout, trialCount, runtime.NumCPU()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to estimate π: %v\n", err)
		os.Exit(1)
	}
}
