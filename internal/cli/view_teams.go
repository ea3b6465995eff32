package cli

import (
	"fmt"
	"strings"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// teamsView is the team directory with per-team workload counts.
type teamsView struct {
	state  *SharedState
	teams  []domain.Team
	tasks  map[string]int // team id → assigned task count
	agenda map[string]int // team id → responsible section count
	cursor int
}

func newTeamsView(state *SharedState) *teamsView {
	return &teamsView{state: state}
}

func (v *teamsView) ID() ViewID    { return ViewTeams }
func (v *teamsView) Title() string { return "" }

func (v *teamsView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("j"), key.WithHelp("↑↓", "move")),
	}
	if v.state.CanEdit() {
		hints = append(hints,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add team")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		)
	}
	return hints
}

func (v *teamsView) reload() {
	snap := v.state.App.Store.Snapshot()
	v.teams = snap.Teams

	v.tasks = make(map[string]int)
	for _, t := range domain.FlattenTasks(snap.Phases) {
		v.tasks[t.TeamID]++
	}
	v.agenda = make(map[string]int)
	for _, a := range snap.AgendaItems {
		v.agenda[a.ResponsibleTeamID]++
	}

	if v.cursor >= len(v.teams) {
		v.cursor = max(0, len(v.teams)-1)
	}
}

func (v *teamsView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *teamsView) selected() *domain.Team {
	if v.cursor < 0 || v.cursor >= len(v.teams) {
		return nil
	}
	return &v.teams[v.cursor]
}

func (v *teamsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.teams)-1 {
				v.cursor++
			}
		case "a":
			if v.state.CanEdit() {
				return v, pushView(newTeamFormView(v.state, nil))
			}
		case "e":
			if team := v.selected(); team != nil && v.state.CanEdit() {
				return v, pushView(newTeamFormView(v.state, team))
			}
		case "x":
			if team := v.selected(); team != nil && v.state.CanEdit() {
				return v, pushView(newDeleteTeamView(v.state, team.ID, team.Name))
			}
		}
	}
	return v, nil
}

func (v *teamsView) View() string {
	if len(v.teams) == 0 {
		return "\n  " + formatter.Dim("No teams yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, team := range v.teams {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			formatter.TeamTag(team),
			formatter.Dim(fmt.Sprintf("%d task(s) · %d section(s)",
				v.tasks[team.ID], v.agenda[team.ID]))))
		if team.Description != "" {
			b.WriteString("    " + formatter.Dim(team.Description) + "\n")
		}
	}

	return b.String()
}
