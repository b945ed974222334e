package importer

import (
	"fmt"

	"github.com/evmartin/brigade/internal/domain"
)

// ValidatePlanSchema checks a plan before conversion and returns every
// problem found, not just the first. Unknown equipment identifiers are
// accepted (the catalog treats them as parallel-capable).
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.Plan.Title == "" {
		errs = append(errs, fmt.Errorf("plan.title is required"))
	}
	if len(schema.Steps) == 0 {
		errs = append(errs, fmt.Errorf("plan needs at least one step"))
	}

	seen := make(map[int]bool, len(schema.Steps))
	for i, st := range schema.Steps {
		prefix := fmt.Sprintf("steps[%d]", i)

		if st.Order <= 0 {
			errs = append(errs, fmt.Errorf("%s.order must be positive, got %d", prefix, st.Order))
		} else if seen[st.Order] {
			errs = append(errs, fmt.Errorf("%s.order %d duplicates an earlier step", prefix, st.Order))
		} else {
			seen[st.Order] = true
		}

		if st.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if st.DurationMin < domain.MinStepMinutes || st.DurationMin > domain.MaxStepMinutes {
			errs = append(errs, fmt.Errorf("%s.duration_min %d outside %d-%d",
				prefix, st.DurationMin, domain.MinStepMinutes, domain.MaxStepMinutes))
		}
		if st.ParallelGroup < 0 {
			errs = append(errs, fmt.Errorf("%s.parallel_group must not be negative", prefix))
		}
		if st.TemperatureC != nil && (*st.TemperatureC < domain.MinStepTempC || *st.TemperatureC > domain.MaxStepTempC) {
			errs = append(errs, fmt.Errorf("%s.temperature_c %d outside %d-%d",
				prefix, *st.TemperatureC, domain.MinStepTempC, domain.MaxStepTempC))
		}
		for _, eq := range st.Equipment {
			if eq == "" {
				errs = append(errs, fmt.Errorf("%s.equipment contains an empty identifier", prefix))
			}
		}
	}

	return errs
}
