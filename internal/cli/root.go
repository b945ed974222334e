package cli

import (
	"github.com/evmartin/brigade/internal/intelligence"
	"github.com/evmartin/brigade/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against.
type App struct {
	Sessions service.SessionService

	// PlanDraft is nil unless LLM drafting is enabled.
	PlanDraft intelligence.PlanDraftService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "brigade" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "brigade",
		Short: "Batch-cooking session planner and tracker",
	}

	root.AddCommand(
		newPlanCmd(app),
		newSessionCmd(app),
		newStepCmd(app),
		newEquipmentCmd(),
		newWatchCmd(app),
	)

	return root
}
