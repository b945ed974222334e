package intelligence

import (
	"context"
	"fmt"

	"github.com/evmartin/brigade/internal/importer"
	"github.com/evmartin/brigade/internal/llm"
	"github.com/evmartin/brigade/internal/scheduler"
)

// Bounds the drafting collaborator promises for generated plans. They are
// tighter than what the lifecycle engine accepts for hand-written plans: a
// single AI-drafted step caps at 180 minutes, and the proposed wall-clock
// total must land between 5 and 480 minutes. CreateSession re-validates the
// per-step bounds regardless.
const (
	DraftMinStepMinutes  = 1
	DraftMaxStepMinutes  = 180
	DraftMinTotalMinutes = 5
	DraftMaxTotalMinutes = 480
)

// PlanDraftService turns a natural-language description into a draft cooking
// plan via the LLM collaborator.
type PlanDraftService interface {
	Draft(ctx context.Context, description string) (*importer.PlanSchema, error)
}

type planDraftService struct {
	client llm.Client
}

func NewPlanDraftService(client llm.Client) PlanDraftService {
	return &planDraftService{client: client}
}

func (s *planDraftService) Draft(ctx context.Context, description string) (*importer.PlanSchema, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: planDraftSystemPrompt,
		UserPrompt:   description,
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan draft failed: %w", err)
	}

	schema, err := llm.ExtractJSON[importer.PlanSchema](resp.Text, validateDraftPlan)
	if err != nil {
		return nil, fmt.Errorf("extracting plan draft: %w", err)
	}
	return &schema, nil
}

// validateDraftPlan holds a generated plan to the collaborator bounds on top
// of the regular plan-file validation.
func validateDraftPlan(schema importer.PlanSchema) error {
	if errs := importer.ValidatePlanSchema(&schema); len(errs) > 0 {
		return errs[0]
	}

	for i, st := range schema.Steps {
		if st.DurationMin < DraftMinStepMinutes || st.DurationMin > DraftMaxStepMinutes {
			return fmt.Errorf("steps[%d].duration_min %d outside drafted-step bounds %d-%d",
				i, st.DurationMin, DraftMinStepMinutes, DraftMaxStepMinutes)
		}
	}

	total, _ := scheduler.Aggregate(importer.ToSteps(&schema))
	if total < DraftMinTotalMinutes || total > DraftMaxTotalMinutes {
		return fmt.Errorf("proposed total %d min outside %d-%d",
			total, DraftMinTotalMinutes, DraftMaxTotalMinutes)
	}
	return nil
}
