package cli

import (
	"fmt"
	"strings"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// taskDetailView shows a single task with its full tracking history in a
// scrollable viewport.
type taskDetailView struct {
	state   *SharedState
	phaseID int
	taskID  string

	task  domain.Task
	found bool
	vp    viewport.Model
	ready bool
}

func newTaskDetailView(state *SharedState, phaseID int, taskID string) *taskDetailView {
	return &taskDetailView{state: state, phaseID: phaseID, taskID: taskID}
}

func (v *taskDetailView) ID() ViewID    { return ViewTaskDetail }
func (v *taskDetailView) Title() string { return v.task.Title }

func (v *taskDetailView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "scroll")),
	}
	if v.state.CanEdit() {
		hints = append(hints,
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		)
	}
	return hints
}

func (v *taskDetailView) reload() {
	snap := v.state.App.Store.Snapshot()
	v.found = false
	for _, p := range snap.Phases {
		if p.ID != v.phaseID {
			continue
		}
		if t, ok := p.TaskByID(v.taskID); ok {
			v.task = t
			v.found = true
		}
	}
	if v.ready {
		v.vp.SetContent(v.content(snap.Teams))
	}
}

func (v *taskDetailView) Init() tea.Cmd {
	v.vp = viewport.New(v.state.Width, v.state.ContentHeight())
	v.ready = true
	v.reload()
	return nil
}

func (v *taskDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			if v.found && v.state.CanEdit() {
				t := v.task
				return v, pushView(newTaskFormView(v.state, v.phaseID, &t))
			}
		case "l":
			if v.found && v.state.CanEdit() {
				return v, pushView(newTaskLogFormView(v.state, v.phaseID, v.taskID, v.task.Title))
			}
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *taskDetailView) content(teams []domain.Team) string {
	if !v.found {
		return "\n  " + formatter.Dim("This task no longer exists.")
	}

	t := v.task
	var b strings.Builder

	title := t.Title
	if t.IsMilestone {
		title = "◆ " + title
	}
	b.WriteString("\n  " + formatter.StyleBold.Render(title) + "\n")
	b.WriteString("  " + formatter.StatusPill(t.Status) + "\n\n")

	if t.Description != "" {
		b.WriteString("  " + formatter.StyleFg.Render(t.Description) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		formatter.Dim("Schedule"),
		formatter.DisplayDate(t.StartDate),
		formatter.Dim("→"),
		formatter.DisplayDate(t.EndDate)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim("Team    "),
		formatter.StyleFg.Render(domain.TeamName(teams, t.TeamID))))
	if t.ResponsiblePerson != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.Dim("Owner   "),
			formatter.StyleFg.Render(t.ResponsiblePerson)))
	}
	if t.ProgressPercent > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.Dim("Progress"),
			formatter.RenderProgress(float64(t.ProgressPercent)/100, 12)))
	}

	b.WriteString("\n  " + formatter.Header("Tracking Log") + "\n")
	if len(t.Logs) == 0 {
		b.WriteString("  " + formatter.Dim("No entries yet.") + "\n")
	}
	for _, l := range t.Logs {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.LogTimestamp(l.Timestamp),
			formatter.StyleFg.Render(l.Message)))
		if l.Author != "" {
			b.WriteString("             " + formatter.Dim("— "+l.Author) + "\n")
		}
	}

	return b.String()
}

func (v *taskDetailView) View() string {
	if !v.ready {
		return ""
	}
	return v.vp.View()
}
