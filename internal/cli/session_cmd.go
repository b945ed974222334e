package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/evmartin/brigade/internal/cli/formatter"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/evmartin/brigade/internal/scheduler"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage cooking sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionStartCmd(app),
		newSessionFinishCmd(app),
		newSessionCancelCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cooking sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "STATUS", "STEPS", "ESTIMATE", "PROGRESS"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Title,
					formatter.SessionStatusLabel(s.Status),
					strconv.Itoa(len(s.Steps)),
					formatter.FormatMinutes(s.EstimatedMinutes),
					formatter.RenderProgress(s.Progress(), 10),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed and cancelled sessions")
	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a session with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(renderSessionDetail(s, time.Now()))
			return nil
		},
	}
}

func newSessionStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start ID",
		Short: "Start a planned session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.StartSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Started session %s (%s, estimated %s)\n",
				s.DisplayID(), s.Title, formatter.FormatMinutes(s.EstimatedMinutes))
			return nil
		},
	}
}

func newSessionFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish ID",
		Short: "Finish an in-progress session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.FinishSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			actual := 0
			if s.ActualMinutes != nil {
				actual = *s.ActualMinutes
			}
			fmt.Printf("Finished session %s after %s (estimated %s)\n",
				s.DisplayID(), formatter.FormatMinutes(actual), formatter.FormatMinutes(s.EstimatedMinutes))
			return nil
		},
	}
}

func newSessionCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a planned or in-progress session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.CancelSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Cancelled session %s\n", s.DisplayID())
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session and its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}

// renderSessionDetail prints the session header plus a step table with live
// remaining-time projections for any running step.
func renderSessionDetail(s *domain.Session, now time.Time) string {
	header := fmt.Sprintf("%s  %s\n%s  estimated %s",
		formatter.Bold(s.Title),
		formatter.SessionStatusLabel(s.Status),
		formatter.RenderProgress(s.Progress(), 20),
		formatter.FormatMinutes(s.EstimatedMinutes),
	)
	if s.StartedAt != nil {
		header += fmt.Sprintf("  elapsed %s",
			formatter.FormatMinutes(scheduler.SessionElapsedMinutes(s, now)))
	}

	headers := []string{"#", "STEP", "STATUS", "DURATION", "GROUP", "EQUIPMENT", "TIMER"}
	rows := make([][]string, 0, len(s.Steps))
	for i := range s.Steps {
		st := &s.Steps[i]
		rows = append(rows, []string{
			strconv.Itoa(st.Order),
			stepTitle(st),
			formatter.StepStatusLabel(st.Status),
			formatter.FormatMinutes(st.DurationMinutes),
			groupLabel(st.ParallelGroup),
			equipmentLabel(st.Equipment),
			timerLabel(st, now),
		})
	}

	return formatter.RenderBox("Session "+s.DisplayID(),
		header+"\n\n"+formatter.RenderTable(headers, rows))
}

func stepTitle(st *domain.Step) string {
	title := st.Title
	if st.SupervisionOnly {
		title += " " + formatter.Dim("(watch)")
	}
	return title
}

func groupLabel(group int) string {
	if group <= 0 {
		return formatter.Dim("-")
	}
	return fmt.Sprintf("P%d", group)
}

func equipmentLabel(ids []string) string {
	if len(ids) == 0 {
		return formatter.Dim("-")
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, domain.EquipmentByID(id).Name)
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}

func timerLabel(st *domain.Step, now time.Time) string {
	remaining, overrun := scheduler.RemainingMinutes(*st, now)
	if st.Status != domain.StepInProgress || st.StartedAt == nil {
		return formatter.Dim("-")
	}
	if overrun {
		return formatter.StyleRed.Render("overrun")
	}
	return formatter.FormatMinutes(remaining) + " left"
}
