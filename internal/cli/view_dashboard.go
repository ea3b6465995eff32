package cli

import (
	"fmt"
	"strings"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/report"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardView is the home screen of the TUI: countdown, overall progress,
// per-phase bars, report book readiness, and the notification center.
type dashboardView struct {
	state    *SharedState
	overview report.Overview
	loaded   bool
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("2"), key.WithHelp("1-4", "switch tab")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) reload() {
	app := v.state.App
	v.overview = report.BuildOverview(app.Store.Snapshot(), app.Today, app.AGMDate, app.Within)
	v.loaded = true
}

func (v *dashboardView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			v.reload()
			return v, nil
		}
	}
	return v, nil
}

const dashBarWidth = 18

func (v *dashboardView) View() string {
	if !v.loaded {
		return "\n  " + formatter.Dim("Loading...")
	}

	o := v.overview
	var b strings.Builder

	b.WriteString("\n  ")
	if o.DaysToAGM >= 0 {
		b.WriteString(fmt.Sprintf("%s until the general meeting on %s",
			formatter.Bold(fmt.Sprintf("%d days", o.DaysToAGM)),
			formatter.StyleFg.Render(o.AGMDate.Format("2 Jan 2006"))))
	} else {
		b.WriteString(formatter.Dim("The general meeting has passed"))
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("   (as of %s)", o.Today.Format("2 Jan 2006"))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Overall      %s  %s\n",
		formatter.RenderProgress(float64(o.ProgressPct)/100, dashBarWidth),
		formatter.Dim(fmt.Sprintf("%d/%d tasks", o.CompletedTasks, o.TotalTasks))))

	r := o.Readiness
	b.WriteString(fmt.Sprintf("  Report book  %s  %s\n\n",
		formatter.RenderProgress(r.FinalizedRatio, dashBarWidth),
		formatter.Dim(fmt.Sprintf("%d/%d sections finalized", r.Finalized, r.Total))))

	for _, ps := range o.Phases {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.RenderCompactBar(float64(ps.ProgressPct)/100, 10, false),
			formatter.StyleFg.Render(ps.Phase.Name)))
	}

	if o.NextMilestone != nil {
		b.WriteString(fmt.Sprintf("\n  Next milestone  ◆ %s %s\n",
			formatter.Bold(o.NextMilestone.Title),
			formatter.DueStyled(o.NextMilestone.EndDate, o.Today)))
	}

	b.WriteString("\n")
	switch {
	case len(o.Overdue) == 0 && len(o.Upcoming) == 0:
		b.WriteString("  " + formatter.StyleGreen.Render("Nothing overdue and nothing due soon.") + "\n")
	default:
		for _, t := range o.Overdue {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				formatter.StyleRed.Render("▲ overdue"),
				formatter.StyleFg.Render(t.Title),
				formatter.DueStyled(t.EndDate, o.Today)))
		}
		for _, t := range o.Upcoming {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				formatter.StyleYellow.Render("● due soon"),
				formatter.StyleFg.Render(t.Title),
				formatter.DueStyled(t.EndDate, o.Today)))
		}
	}

	return b.String()
}
