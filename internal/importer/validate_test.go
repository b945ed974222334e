package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *PlanSchema {
	temp := 180
	return &PlanSchema{
		Plan: PlanImport{Title: "Sunday batch", Notes: "freezer restock"},
		Steps: []StepImport{
			{Order: 1, Title: "Chop vegetables", DurationMin: 15, Equipment: []string{"knife"}},
			{Order: 2, Title: "Roast squash", DurationMin: 40, ParallelGroup: 1, Equipment: []string{"oven"}, TemperatureC: &temp},
			{Order: 3, Title: "Simmer stock", DurationMin: 40, ParallelGroup: 1, Equipment: []string{"stovetop"}},
		},
	}
}

func TestValidatePlanSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidatePlanSchema(validSchema()))
}

func TestValidatePlanSchema_MissingTitle(t *testing.T) {
	schema := validSchema()
	schema.Plan.Title = ""
	errs := ValidatePlanSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "plan.title")
}

func TestValidatePlanSchema_NoSteps(t *testing.T) {
	schema := &PlanSchema{Plan: PlanImport{Title: "x"}}
	errs := ValidatePlanSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one step")
}

func TestValidatePlanSchema_CollectsAllErrors(t *testing.T) {
	schema := &PlanSchema{
		Plan: PlanImport{},
		Steps: []StepImport{
			{Order: 0, Title: "", DurationMin: 0},
		},
	}
	errs := ValidatePlanSchema(schema)
	// title missing, order non-positive, step title missing, duration out of range
	assert.Len(t, errs, 4, "validation reports every problem, not just the first")
}

func TestValidatePlanSchema_StepChecks(t *testing.T) {
	tooHot := 400
	cases := []struct {
		name     string
		mutate   func(*PlanSchema)
		fragment string
	}{
		{"duplicate order", func(s *PlanSchema) { s.Steps[1].Order = 1 }, "duplicates"},
		{"duration too long", func(s *PlanSchema) { s.Steps[0].DurationMin = 481 }, "duration_min"},
		{"negative parallel group", func(s *PlanSchema) { s.Steps[0].ParallelGroup = -1 }, "parallel_group"},
		{"temperature out of range", func(s *PlanSchema) { s.Steps[0].TemperatureC = &tooHot }, "temperature_c"},
		{"empty equipment id", func(s *PlanSchema) { s.Steps[0].Equipment = []string{""} }, "empty identifier"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schema := validSchema()
			tc.mutate(schema)
			errs := ValidatePlanSchema(schema)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tc.fragment)
		})
	}
}

func TestValidatePlanSchema_UnknownEquipmentAccepted(t *testing.T) {
	schema := validSchema()
	schema.Steps[0].Equipment = []string{"wok_burner"}
	assert.Empty(t, ValidatePlanSchema(schema), "unknown equipment ids are allowed")
}
