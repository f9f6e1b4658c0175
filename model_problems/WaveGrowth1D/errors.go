package WaveGrowth1D

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterval = errors.New("duration and output interval must be positive, with at least one output interval")
	ErrUnstable        = errors.New("source term rate is not finite or the sub-step vanished")
	ErrDone            = errors.New("integration has already run")
)

// StepError locates a failed sub-step within the run.
type StepError struct {
	Sample int     // Output interval being integrated
	Time   float64 // Simulation time at the start of the failed sub-step
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("sample %d, time %8.5f: %v", e.Sample, e.Time, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
