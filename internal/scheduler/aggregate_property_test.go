package scheduler

import (
	"math/rand"
	"testing"

	"github.com/evmartin/brigade/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAggregate_Invariants property-tests the aggregation bounds: the total
// always sits between the longest single step and the plain sequential sum,
// and every per-group entry is the max duration inside that group.
func TestAggregate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12) + 1
		steps := make([]domain.Step, n)
		sequentialSum := 0
		longest := 0
		for i := range steps {
			minutes := rng.Intn(180) + 1
			group := rng.Intn(4) // 0–3, 0 meaning sequential
			steps[i] = domain.Step{Order: i + 1, DurationMinutes: minutes, ParallelGroup: group}
			sequentialSum += minutes
			if minutes > longest {
				longest = minutes
			}
		}

		total, perGroup := Aggregate(steps)

		// Invariant 1: parallelism can only shorten the plan, never extend it.
		assert.LessOrEqual(t, total, sequentialSum,
			"trial %d: total (%d) must not exceed sequential sum (%d)", trial, total, sequentialSum)

		// Invariant 2: the plan is at least as long as its longest step.
		assert.GreaterOrEqual(t, total, longest,
			"trial %d: total (%d) must cover the longest step (%d)", trial, total, longest)

		// Invariant 3: perGroup holds exactly the max duration per nonzero group.
		for group, want := range maxByGroup(steps) {
			assert.Equal(t, want, perGroup[group],
				"trial %d: group %d max mismatch", trial, group)
		}

		// Invariant 4: repeat runs give identical output.
		again, _ := Aggregate(steps)
		assert.Equal(t, total, again, "trial %d: aggregation must be idempotent", trial)
	}
}

func maxByGroup(steps []domain.Step) map[int]int {
	m := make(map[int]int)
	for _, st := range steps {
		if st.ParallelGroup <= 0 {
			continue
		}
		if st.DurationMinutes > m[st.ParallelGroup] {
			m[st.ParallelGroup] = st.DurationMinutes
		}
	}
	return m
}
