package testutil

import (
	"time"

	"github.com/evmartin/brigade/internal/domain"
	"github.com/google/uuid"
)

// Step options
type StepOption func(*domain.Step)

func WithParallelGroup(g int) StepOption {
	return func(st *domain.Step) {
		st.ParallelGroup = g
	}
}

func WithEquipment(ids ...string) StepOption {
	return func(st *domain.Step) {
		st.Equipment = ids
	}
}

func WithStepStatus(s domain.StepStatus) StepOption {
	return func(st *domain.Step) {
		st.Status = s
	}
}

func WithSupervisionOnly() StepOption {
	return func(st *domain.Step) {
		st.SupervisionOnly = true
	}
}

func WithTemperatureC(c int) StepOption {
	return func(st *domain.Step) {
		st.TemperatureC = &c
	}
}

func WithStartedAt(t time.Time) StepOption {
	return func(st *domain.Step) {
		st.StartedAt = &t
	}
}

// NewTestStep builds a todo step with the given order and duration.
func NewTestStep(order, durationMin int, opts ...StepOption) domain.Step {
	st := domain.Step{
		ID:              uuid.New().String(),
		Order:           order,
		Title:           "Step",
		DurationMinutes: durationMin,
		Status:          domain.StepTodo,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// NewTestSteps builds n sequential todo steps of the given duration, with
// orders 1..n.
func NewTestSteps(n, durationMin int) []domain.Step {
	steps := make([]domain.Step, 0, n)
	for i := 1; i <= n; i++ {
		steps = append(steps, NewTestStep(i, durationMin))
	}
	return steps
}

// NewTestMeta builds a session meta with the given title.
func NewTestMeta(title string) domain.SessionMeta {
	return domain.SessionMeta{Title: title}
}
