package main

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when an estimator is asked for a
// non-positive number of trials.
var ErrInvalidArgument = errors.New("invalid argument")

func checkTrials(trials int) error {
	if trials <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "trial count must be positive, got %d", trials)
	}
	return nil
}
