package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evmartin/brigade/internal/cli/formatter"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/evmartin/brigade/internal/scheduler"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch ID",
		Short: "Watch a running session live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			s, err := app.Sessions.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			m := newWatchModel(app, s)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

// watchTickMsg drives the refresh loop.
type watchTickMsg time.Time

// watchReloadMsg carries a freshly loaded session (or the load error).
type watchReloadMsg struct {
	session *domain.Session
	err     error
}

type watchModel struct {
	app      *App
	session  *domain.Session
	bar      progress.Model
	now      time.Time
	loadErr  error
	quitting bool
}

func newWatchModel(app *App, s *domain.Session) watchModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return watchModel{app: app, session: s, bar: bar, now: time.Now()}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) reload() tea.Cmd {
	id := m.session.ID
	app := m.app
	return func() tea.Msg {
		s, err := app.Sessions.GetByID(context.Background(), id)
		return watchReloadMsg{session: s, err: err}
	}
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case watchTickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(m.reload(), watchTick())

	case watchReloadMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.session = msg.session
		if m.session.IsTerminal() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	s := m.session

	out := fmt.Sprintf("%s  %s\n\n", formatter.Bold(s.Title), formatter.SessionStatusLabel(s.Status))
	out += m.bar.ViewAs(s.Progress()/100) + "\n\n"

	if s.StartedAt != nil {
		out += fmt.Sprintf("Elapsed: %s (estimated %s)\n",
			formatter.FormatMinutes(scheduler.SessionElapsedMinutes(s, m.now)),
			formatter.FormatMinutes(s.EstimatedMinutes))
	}

	if cur := s.CurrentStep(); cur != nil {
		out += fmt.Sprintf("Current step: %d (%s)", cur.Order, cur.Title)
		if remaining, overrun := scheduler.RemainingMinutes(*cur, m.now); cur.Status == domain.StepInProgress {
			if overrun {
				out += "  " + formatter.StyleRed.Render("OVERRUN")
			} else {
				out += fmt.Sprintf("  (%s left)", formatter.FormatMinutes(remaining))
			}
		} else {
			out += "  " + formatter.Dim("(not started)")
		}
		out += "\n"
		if cur.Noisy {
			out += formatter.StyleYellow.Render("This step is noisy.") + "\n"
		}
	} else {
		out += formatter.Dim("All steps resolved.") + "\n"
	}

	if m.loadErr != nil {
		out += formatter.StyleRed.Render(fmt.Sprintf("refresh failed: %v", m.loadErr)) + "\n"
	}

	if m.quitting {
		out += "\n"
	} else {
		out += formatter.Dim("\nq to quit\n")
	}
	return out
}
