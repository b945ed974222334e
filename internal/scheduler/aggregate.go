package scheduler

import "github.com/evmartin/brigade/internal/domain"

// Aggregate computes the expected wall-clock duration of a step list.
//
// Steps with parallel group 0 run sequentially: each duration is added to the
// total individually. Steps sharing a nonzero group run concurrently on
// separate equipment, so the group contributes only its maximum duration,
// recorded in perGroup under the group id. Negative groups are treated the
// same as 0 (sequential); callers are expected to reject them upstream.
//
// Pure over its input: no errors, no side effects, identical output for
// identical input. Equipment contention between steps sharing a group is
// deliberately not checked.
func Aggregate(steps []domain.Step) (total int, perGroup map[int]int) {
	perGroup = make(map[int]int)
	for i := range steps {
		st := &steps[i]
		if st.ParallelGroup <= 0 {
			total += st.DurationMinutes
			continue
		}
		if st.DurationMinutes > perGroup[st.ParallelGroup] {
			perGroup[st.ParallelGroup] = st.DurationMinutes
		}
	}
	for _, longest := range perGroup {
		total += longest
	}
	return total, perGroup
}
