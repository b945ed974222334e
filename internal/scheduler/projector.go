package scheduler

import (
	"time"

	"github.com/evmartin/brigade/internal/domain"
)

// RemainingMinutes projects how much of a running step's estimated duration
// is left at the given instant, and whether the step has overrun it.
//
// Only an in-progress step with a start timestamp has an active timer; any
// other step yields (0, false). Absence of a timer is a valid state, not an
// error. Elapsed time is truncated to whole minutes.
func RemainingMinutes(step domain.Step, now time.Time) (remaining int, overrun bool) {
	if step.Status != domain.StepInProgress || step.StartedAt == nil {
		return 0, false
	}
	elapsed := int(now.Sub(*step.StartedAt).Minutes())
	remaining = step.DurationMinutes - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, elapsed > step.DurationMinutes
}

// SessionElapsedMinutes returns whole minutes since the session started,
// frozen at the finish timestamp once the session is over. Sessions that
// never started report 0.
func SessionElapsedMinutes(s *domain.Session, now time.Time) int {
	if s.StartedAt == nil {
		return 0
	}
	end := now
	if s.FinishedAt != nil {
		end = *s.FinishedAt
	}
	elapsed := int(end.Sub(*s.StartedAt).Minutes())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
