package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evmartin/brigade/internal/cli/formatter"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/spf13/cobra"
)

func newStepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Drive individual steps of a session",
	}

	cmd.AddCommand(
		newStepStartCmd(app),
		newStepDoneCmd(app),
		newStepSkipCmd(app),
	)

	return cmd
}

type stepAction func(ctx context.Context, sessionID string, order int) (*domain.Session, error)

// newStepTransitionCmd builds one of the start/done/skip commands; they only
// differ in the service call and the past-tense verb printed on success.
func newStepTransitionCmd(app *App, use, short, verb string, action func(*App) stepAction) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   use + " ORDER",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("step order must be a number, got %q", args[0])
			}

			s, err := action(app)(context.Background(), sessionID, order)
			if err != nil {
				return err
			}

			st, err := s.StepByOrder(order)
			if err != nil {
				return err
			}
			fmt.Printf("%s step %d (%s), session %.0f%% complete\n",
				verb, order, st.Title, s.Progress())

			if next := s.CurrentStep(); next != nil && next.Order != order {
				fmt.Printf("Next up: step %d (%s, %s)\n",
					next.Order, next.Title, formatter.FormatMinutes(next.DurationMinutes))
			}
			return nil
		},
	}

	addSessionFlag(cmd.Flags(), &sessionID)
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func newStepStartCmd(app *App) *cobra.Command {
	return newStepTransitionCmd(app, "start", "Start a step", "Started",
		func(a *App) stepAction { return a.Sessions.StartStep })
}

func newStepDoneCmd(app *App) *cobra.Command {
	return newStepTransitionCmd(app, "done", "Finish a step", "Finished",
		func(a *App) stepAction { return a.Sessions.FinishStep })
}

func newStepSkipCmd(app *App) *cobra.Command {
	return newStepTransitionCmd(app, "skip", "Skip a step", "Skipped",
		func(a *App) stepAction { return a.Sessions.SkipStep })
}
