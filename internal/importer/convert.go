package importer

import "github.com/evmartin/brigade/internal/domain"

// ToSteps converts a validated plan into domain steps. IDs are left empty;
// the session service assigns them at creation.
func ToSteps(schema *PlanSchema) []domain.Step {
	steps := make([]domain.Step, 0, len(schema.Steps))
	for _, st := range schema.Steps {
		steps = append(steps, domain.Step{
			Order:           st.Order,
			Title:           st.Title,
			DurationMinutes: st.DurationMin,
			ParallelGroup:   st.ParallelGroup,
			Equipment:       st.Equipment,
			SupervisionOnly: st.SupervisionOnly,
			Noisy:           st.Noisy,
			TemperatureC:    st.TemperatureC,
			Status:          domain.StepTodo,
		})
	}
	return steps
}

// ToMeta extracts the session meta fields from a plan.
func ToMeta(schema *PlanSchema) domain.SessionMeta {
	return domain.SessionMeta{
		Title: schema.Plan.Title,
		Notes: schema.Plan.Notes,
	}
}
