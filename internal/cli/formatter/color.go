package formatter

import (
	"fmt"
	"strings"

	"agmtrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#8ec07c")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the lipgloss style corresponding to a task status.
func StatusColor(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen
	case domain.TaskInProgress:
		return StyleBlue
	case domain.TaskCritical:
		return StyleYellow
	case domain.TaskDelayed:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator for a task status.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.TaskInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.TaskCritical:
		return StyleYellow.Render("▲ Critical")
	case domain.TaskDelayed:
		return StyleRed.Render("✖ Delayed")
	case domain.TaskPending:
		return StyleDim.Render("○ Pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// AgendaPill returns a colored readiness indicator for an agenda item.
func AgendaPill(status domain.AgendaStatus) string {
	switch status {
	case domain.AgendaFinalized:
		return StyleGreen.Render("✔ Finalized")
	case domain.AgendaReviewing:
		return StyleYellow.Render("● Reviewing")
	case domain.AgendaDrafting:
		return StyleBlue.Render("○ Drafting")
	default:
		return StyleDim.Render(string(status))
	}
}

// teamTagColors maps the fixture color tags onto the palette.
var teamTagColors = map[string]lipgloss.Style{
	"indigo":  StylePurple,
	"blue":    StyleBlue,
	"emerald": StyleGreen,
	"rose":    StyleRed,
	"amber":   StyleYellow,
}

// TeamTag renders a team name in its configured tag color.
func TeamTag(team domain.Team) string {
	if style, ok := teamTagColors[team.ColorTag]; ok {
		return style.Render(team.Name)
	}
	return StyleFg.Render(team.Name)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
