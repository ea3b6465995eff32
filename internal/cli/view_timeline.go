package cli

import (
	"fmt"
	"strings"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/domain"
	"agmtrack/internal/metrics"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timelineRow is one selectable line: either a phase header or a task.
type timelineRow struct {
	phaseID int
	task    *domain.Task // nil for phase headers
	phase   domain.Phase
}

// timelineView lists every phase with its tasks and routes mutations to the
// selected row.
type timelineView struct {
	state  *SharedState
	teams  []domain.Team
	rows   []timelineRow
	cursor int
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "" }

func (v *timelineView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("j"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	}
	if v.state.CanEdit() {
		hints = append(hints,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		)
	}
	return hints
}

func (v *timelineView) reload() {
	snap := v.state.App.Store.Snapshot()
	v.teams = snap.Teams

	v.rows = v.rows[:0]
	for _, p := range snap.Phases {
		v.rows = append(v.rows, timelineRow{phaseID: p.ID, phase: p})
		for i := range p.Tasks {
			v.rows = append(v.rows, timelineRow{phaseID: p.ID, task: &p.Tasks[i], phase: p})
		}
	}
	if v.cursor >= len(v.rows) {
		v.cursor = max(0, len(v.rows)-1)
	}
}

func (v *timelineView) Init() tea.Cmd {
	v.reload()
	return nil
}

// selected returns the row under the cursor, or nil.
func (v *timelineView) selected() *timelineRow {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return &v.rows[v.cursor]
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "enter":
			if row := v.selected(); row != nil && row.task != nil {
				return v, pushView(newTaskDetailView(v.state, row.phaseID, row.task.ID))
			}
		case "a":
			if row := v.selected(); row != nil && v.state.CanEdit() {
				return v, pushView(newTaskFormView(v.state, row.phaseID, nil))
			}
		case "e":
			if row := v.selected(); row != nil && row.task != nil && v.state.CanEdit() {
				return v, pushView(newTaskFormView(v.state, row.phaseID, row.task))
			}
		case "l":
			if row := v.selected(); row != nil && row.task != nil && v.state.CanEdit() {
				return v, pushView(newTaskLogFormView(v.state, row.phaseID, row.task.ID, row.task.Title))
			}
		case "x":
			if row := v.selected(); row != nil && row.task != nil && v.state.CanEdit() {
				return v, pushView(newDeleteTaskView(v.state, row.phaseID, row.task.ID, row.task.Title))
			}
		}
	}
	return v, nil
}

func (v *timelineView) View() string {
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No phases in the schedule.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range v.rows {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		if row.task == nil {
			pct := metrics.PhaseProgress(row.phase)
			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursor,
				formatter.StyleHeader.Render(row.phase.Name),
				formatter.RenderCompactBar(float64(pct)/100, 8, false),
				formatter.Dim(row.phase.Period)))
			continue
		}

		t := row.task
		title := t.Title
		if t.IsMilestone {
			title = "◆ " + title
		}
		b.WriteString(fmt.Sprintf("%s  %s %s %s %s\n",
			cursor,
			formatter.Dim(fmt.Sprintf("%-5s", t.ID)),
			formatter.StyleFg.Render(padRight(title, 44)),
			formatter.StatusPill(t.Status),
			formatter.DueStyled(t.EndDate, v.state.App.Today)))
	}

	return b.String()
}

// padRight pads s with spaces to width, truncating with an ellipsis when the
// rune count exceeds it.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
