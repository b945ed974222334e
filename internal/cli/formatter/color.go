package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evmartin/brigade/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SessionStatusLabel returns a colored status label such as "● IN PROGRESS".
func SessionStatusLabel(status domain.SessionStatus) string {
	switch status {
	case domain.SessionPlanned:
		return StyleBlue.Render("● PLANNED")
	case domain.SessionInProgress:
		return StyleYellow.Render("● IN PROGRESS")
	case domain.SessionCompleted:
		return StyleGreen.Render("● COMPLETED")
	case domain.SessionCancelled:
		return StyleRed.Render("● CANCELLED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StepStatusLabel returns a short colored step status.
func StepStatusLabel(status domain.StepStatus) string {
	switch status {
	case domain.StepTodo:
		return StyleDim.Render("todo")
	case domain.StepInProgress:
		return StyleYellow.Render("active")
	case domain.StepDone:
		return StyleGreen.Render("done")
	case domain.StepSkipped:
		return StyleRed.Render("skipped")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
