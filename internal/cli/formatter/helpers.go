package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"agmtrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// DisplayDate renders a stored YYYY-MM-DD date as "2 Jan 2006". Blank or
// unparseable dates render as a dimmed placeholder.
func DisplayDate(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		if s == "" {
			return StyleDim.Render("--")
		}
		return StyleFg.Render(s)
	}
	return StyleFg.Render(t.Format("2 Jan 2006"))
}

// RelativeDateFrom returns a human-friendly relative date measured from a
// reference date. The reference is always the simulated today, never the
// system clock.
func RelativeDateFrom(t time.Time, today time.Time) string {
	days := int(math.Ceil(t.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueStyled renders a task end date relative to today with urgency coloring:
// red when past or within two days, yellow within a week.
func DueStyled(endDate string, today time.Time) string {
	end, ok := domain.ParseDate(endDate)
	if !ok {
		return StyleFg.Render(endDate)
	}

	text := RelativeDateFrom(end, today)
	days := int(math.Ceil(end.Sub(today).Hours() / 24))

	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// LogTimestamp renders a tracking-log timestamp for display.
func LogTimestamp(t time.Time) string {
	return StyleDim.Render(t.Format("2 Jan 15:04"))
}
