package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/evmartin/brigade/internal/cli/formatter"
	"github.com/evmartin/brigade/internal/importer"
	"github.com/evmartin/brigade/internal/scheduler"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create cooking plans",
	}

	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanNewCmd(app),
		newPlanDraftCmd(app),
	)

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create a session from a plan file (JSON or TOML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadPlanSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), "  -", e)
				}
				return fmt.Errorf("plan file has %d validation error(s)", len(errs))
			}

			return createFromSchema(app, schema)
		},
	}
	return cmd
}

func newPlanNewCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a plan interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive || (app.IsInteractive != nil && !app.IsInteractive()) {
				return fmt.Errorf("plan new requires an interactive terminal (run with -i)")
			}

			schema, err := runPlanWizard()
			if err != nil {
				return err
			}
			if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
				return fmt.Errorf("plan invalid: %v", errs[0])
			}

			return createFromSchema(app, schema)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect steps via an interactive form")
	return cmd
}

func newPlanDraftCmd(app *App) *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "draft DESCRIPTION",
		Short: "Draft a plan from a natural-language description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.PlanDraft == nil {
				return fmt.Errorf("plan drafting is disabled; set BRIGADE_LLM_ENABLED=1 and an API key")
			}

			description := strings.Join(args, " ")
			schema, err := app.PlanDraft.Draft(context.Background(), description)
			if err != nil {
				return err
			}

			printPlanPreview(schema)

			if !accept {
				fmt.Println(formatter.Dim("Re-run with --accept to create the session."))
				return nil
			}
			return createFromSchema(app, schema)
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "Create a session from the drafted plan")
	return cmd
}

// createFromSchema converts a validated plan and creates a planned session.
func createFromSchema(app *App, schema *importer.PlanSchema) error {
	steps := importer.ToSteps(schema)
	s, err := app.Sessions.CreateSession(context.Background(), steps, importer.ToMeta(schema))
	if err != nil {
		return err
	}
	fmt.Printf("Created session %s (%s): %d steps, estimated %s\n",
		s.DisplayID(), s.Title, len(s.Steps), formatter.FormatMinutes(s.EstimatedMinutes))
	return nil
}

func printPlanPreview(schema *importer.PlanSchema) {
	total, perGroup := scheduler.Aggregate(importer.ToSteps(schema))

	headers := []string{"#", "STEP", "DURATION", "GROUP", "EQUIPMENT"}
	rows := make([][]string, 0, len(schema.Steps))
	for _, st := range schema.Steps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", st.Order),
			st.Title,
			formatter.FormatMinutes(st.DurationMin),
			groupLabel(st.ParallelGroup),
			equipmentLabel(st.Equipment),
		})
	}

	summary := fmt.Sprintf("Estimated total: %s", formatter.FormatMinutes(total))
	if len(perGroup) > 0 {
		summary += formatter.Dim(fmt.Sprintf("  (%d parallel group(s) counted at their longest step)", len(perGroup)))
	}

	fmt.Print(formatter.RenderBox(schema.Plan.Title,
		formatter.RenderTable(headers, rows)+"\n"+summary))
}
