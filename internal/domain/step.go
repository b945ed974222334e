package domain

import (
	"fmt"
	"time"
)

// Duration bounds accepted by the lifecycle engine for a single step.
// AI-drafted plans are held to a tighter per-step cap (see intelligence).
const (
	MinStepMinutes = 1
	MaxStepMinutes = 480
)

// Temperature bounds for steps that declare one.
const (
	MinStepTempC = 0
	MaxStepTempC = 300
)

// Step is one atomic cooking action inside a session. Order defines the
// declared sequence and is unique within a session (not necessarily
// contiguous). ParallelGroup 0 means the step runs sequentially; any value
// above 0 groups steps intended to run concurrently on separate equipment.
type Step struct {
	ID              string
	SessionID       string
	Order           int
	Title           string
	ParallelGroup   int
	DurationMinutes int
	Equipment       []string
	SupervisionOnly bool
	Noisy           bool
	TemperatureC    *int
	Status          StepStatus
	StartedAt       *time.Time
	FinishedAt      *time.Time
}

// IsTerminal reports whether the step can accept no further transitions.
func (st *Step) IsTerminal() bool {
	return st.Status == StepDone || st.Status == StepSkipped
}

// Start moves the step from todo to in_progress and stamps StartedAt.
func (st *Step) Start(now time.Time) error {
	if st.Status != StepTodo {
		return fmt.Errorf("%w: step %d is %s, only todo steps can start", ErrInvalidTransition, st.Order, st.Status)
	}
	st.Status = StepInProgress
	st.StartedAt = &now
	return nil
}

// Finish moves the step from in_progress to done and stamps FinishedAt.
func (st *Step) Finish(now time.Time) error {
	if st.Status != StepInProgress {
		return fmt.Errorf("%w: step %d is %s, only in-progress steps can finish", ErrInvalidTransition, st.Order, st.Status)
	}
	st.Status = StepDone
	st.FinishedAt = &now
	return nil
}

// Skip moves the step to skipped from todo or in_progress and clears any
// timer state. Skipped steps never count toward session progress.
func (st *Step) Skip() error {
	if st.IsTerminal() {
		return fmt.Errorf("%w: step %d is already %s", ErrInvalidTransition, st.Order, st.Status)
	}
	st.Status = StepSkipped
	st.StartedAt = nil
	st.FinishedAt = nil
	return nil
}

// Validate checks the step fields against lifecycle-engine bounds.
func (st *Step) Validate() error {
	if st.Order <= 0 {
		return fmt.Errorf("%w: step order must be positive, got %d", ErrValidation, st.Order)
	}
	if st.DurationMinutes < MinStepMinutes || st.DurationMinutes > MaxStepMinutes {
		return fmt.Errorf("%w: step %d duration %d min outside %d-%d",
			ErrValidation, st.Order, st.DurationMinutes, MinStepMinutes, MaxStepMinutes)
	}
	if st.TemperatureC != nil && (*st.TemperatureC < MinStepTempC || *st.TemperatureC > MaxStepTempC) {
		return fmt.Errorf("%w: step %d temperature %d°C outside %d-%d",
			ErrValidation, st.Order, *st.TemperatureC, MinStepTempC, MaxStepTempC)
	}
	return nil
}
