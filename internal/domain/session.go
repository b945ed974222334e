package domain

import (
	"fmt"
	"sort"
	"time"
)

// SessionMeta carries the caller-supplied fields of a new session.
type SessionMeta struct {
	Title string
	Notes string
}

// Session is one batch-cooking execution instance composed of ordered steps.
// EstimatedMinutes is derived once at creation and never recomputed, even if
// step durations are edited later. ActualMinutes is set at completion.
type Session struct {
	ID               string
	Title            string
	Notes            string
	Steps            []Step
	Status           SessionStatus
	StartedAt        *time.Time
	FinishedAt       *time.Time
	EstimatedMinutes int
	ActualMinutes    *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewSession validates the step list and builds a planned session.
// Steps are stored sorted by order. The estimated duration is not set here;
// the service layer derives it once from the aggregator before persisting.
func NewSession(steps []Step, meta SessionMeta, now time.Time) (*Session, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: a session needs at least one step", ErrValidation)
	}

	seen := make(map[int]bool, len(steps))
	for i := range steps {
		if err := steps[i].Validate(); err != nil {
			return nil, err
		}
		if seen[steps[i].Order] {
			return nil, fmt.Errorf("%w: duplicate step order %d", ErrValidation, steps[i].Order)
		}
		seen[steps[i].Order] = true
		if steps[i].Status == "" {
			steps[i].Status = StepTodo
		}
	}

	s := &Session{
		Title:     meta.Title,
		Notes:     meta.Notes,
		Steps:     steps,
		Status:    SessionPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sortSteps()
	return s, nil
}

func (s *Session) sortSteps() {
	sort.SliceStable(s.Steps, func(i, j int) bool {
		return s.Steps[i].Order < s.Steps[j].Order
	})
}

// IsTerminal reports whether the session can accept no further transitions.
func (s *Session) IsTerminal() bool {
	return s.Status == SessionCompleted || s.Status == SessionCancelled
}

// Start moves the session from planned to in_progress.
func (s *Session) Start(now time.Time) error {
	if s.Status != SessionPlanned {
		return fmt.Errorf("%w: session is %s, only planned sessions can start", ErrInvalidTransition, s.Status)
	}
	s.Status = SessionInProgress
	s.StartedAt = &now
	s.UpdatedAt = now
	return nil
}

// Finish moves the session from in_progress to completed and records the
// actual duration in whole minutes, truncated.
func (s *Session) Finish(now time.Time) error {
	if s.Status != SessionInProgress {
		return fmt.Errorf("%w: session is %s, only in-progress sessions can finish", ErrInvalidTransition, s.Status)
	}
	s.Status = SessionCompleted
	s.FinishedAt = &now
	if s.StartedAt != nil {
		actual := int(now.Sub(*s.StartedAt).Minutes())
		if actual < 0 {
			actual = 0
		}
		s.ActualMinutes = &actual
	}
	s.UpdatedAt = now
	return nil
}

// Cancel moves the session to cancelled from planned or in_progress.
// No actual duration is computed for cancelled sessions.
func (s *Session) Cancel(now time.Time) error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: session is already %s", ErrInvalidTransition, s.Status)
	}
	s.Status = SessionCancelled
	s.UpdatedAt = now
	return nil
}

// StepByOrder returns the step with the given order value.
func (s *Session) StepByOrder(order int) (*Step, error) {
	for i := range s.Steps {
		if s.Steps[i].Order == order {
			return &s.Steps[i], nil
		}
	}
	return nil, fmt.Errorf("step with order %d: %w", order, ErrNotFound)
}

// StartStep starts the step with the given order.
func (s *Session) StartStep(order int, now time.Time) error {
	st, err := s.mutableStep(order)
	if err != nil {
		return err
	}
	if err := st.Start(now); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// FinishStep finishes the step with the given order.
func (s *Session) FinishStep(order int, now time.Time) error {
	st, err := s.mutableStep(order)
	if err != nil {
		return err
	}
	if err := st.Finish(now); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// SkipStep skips the step with the given order and clears its timer state.
func (s *Session) SkipStep(order int, now time.Time) error {
	st, err := s.mutableStep(order)
	if err != nil {
		return err
	}
	if err := st.Skip(); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// mutableStep resolves a step for a transition, rejecting terminal sessions.
func (s *Session) mutableStep(order int) (*Step, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("%w: session is %s, steps can no longer change", ErrInvalidTransition, s.Status)
	}
	return s.StepByOrder(order)
}

// CurrentStep returns the step the session considers "next to act on":
// the first in-progress step by order, otherwise the first todo step,
// otherwise nil. Derived on every call, never stored.
func (s *Session) CurrentStep() *Step {
	for i := range s.Steps {
		if s.Steps[i].Status == StepInProgress {
			return &s.Steps[i]
		}
	}
	for i := range s.Steps {
		if s.Steps[i].Status == StepTodo {
			return &s.Steps[i]
		}
	}
	return nil
}

// Progress returns the completion percentage: done steps over total steps.
// Skipped steps do not count as completed. Returns 0 for an empty session.
func (s *Session) Progress() float64 {
	if len(s.Steps) == 0 {
		return 0
	}
	done := 0
	for i := range s.Steps {
		if s.Steps[i].Status == StepDone {
			done++
		}
	}
	return float64(done) / float64(len(s.Steps)) * 100
}

// DisplayID returns a short identifier suitable for tables.
func (s *Session) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
