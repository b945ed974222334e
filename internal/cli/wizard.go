package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/evmartin/brigade/internal/importer"
)

// runPlanWizard collects a plan interactively: title and notes first, then
// one form per step until the user declines to add another.
func runPlanWizard() (*importer.PlanSchema, error) {
	schema := &importer.PlanSchema{}

	intro := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session title").
				Placeholder("Sunday batch cook").
				Value(&schema.Plan.Title).
				Validate(requireNonEmpty("title")),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&schema.Plan.Notes),
		),
	).WithShowHelp(false)

	if err := intro.Run(); err != nil {
		return nil, err
	}

	order := 1
	for {
		step, err := collectStep(order)
		if err != nil {
			return nil, err
		}
		schema.Steps = append(schema.Steps, *step)
		order++

		another := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another step?").
					Value(&another),
			),
		).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !another {
			break
		}
	}

	return schema, nil
}

// collectStep prompts for one step's fields.
func collectStep(order int) (*importer.StepImport, error) {
	var title, duration, group, equipment string
	var supervision bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Step %d title", order)).
				Placeholder("Roast the vegetables").
				Value(&title).
				Validate(requireNonEmpty("title")),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("30").
				Value(&duration).
				Validate(requireMinutes),
			huh.NewInput().
				Title("Parallel group (0 = runs alone)").
				Placeholder("0").
				Value(&group).
				Validate(requireGroup),
			huh.NewSelect[string]().
				Title("Equipment (optional)").
				Options(equipmentOptions()...).
				Value(&equipment),
			huh.NewConfirm().
				Title("Supervision only (just needs watching)?").
				Value(&supervision),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	st := &importer.StepImport{
		Order:           order,
		Title:           strings.TrimSpace(title),
		SupervisionOnly: supervision,
	}
	st.DurationMin, _ = strconv.Atoi(strings.TrimSpace(duration))
	if group != "" {
		st.ParallelGroup, _ = strconv.Atoi(strings.TrimSpace(group))
	}
	if equipment != "" {
		st.Equipment = []string{equipment}
	}
	return st, nil
}

func equipmentOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("none", "")}
	for _, e := range domain.Catalog {
		opts = append(opts, huh.NewOption(e.Name, e.ID))
	}
	return opts
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func requireMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number of minutes")
	}
	if n < domain.MinStepMinutes || n > domain.MaxStepMinutes {
		return fmt.Errorf("minutes must be between %d and %d", domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	return nil
}

func requireGroup(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("group must be a non-negative number")
	}
	return nil
}
