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

// agendaView is the report book checklist: every section with its drafting
// status, plus the readiness summary.
type agendaView struct {
	state  *SharedState
	items  []domain.AgendaItem
	teams  []domain.Team
	ready  metrics.Readiness
	cursor int
}

func newAgendaView(state *SharedState) *agendaView {
	return &agendaView{state: state}
}

func (v *agendaView) ID() ViewID    { return ViewAgenda }
func (v *agendaView) Title() string { return "" }

func (v *agendaView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("j"), key.WithHelp("↑↓", "move")),
	}
	if v.state.CanEdit() {
		hints = append(hints,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add section")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		)
	}
	return hints
}

func (v *agendaView) reload() {
	snap := v.state.App.Store.Snapshot()
	v.items = snap.AgendaItems
	v.teams = snap.Teams
	v.ready = metrics.AgendaReadiness(v.items)
	if v.cursor >= len(v.items) {
		v.cursor = max(0, len(v.items)-1)
	}
}

func (v *agendaView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *agendaView) selected() *domain.AgendaItem {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return nil
	}
	return &v.items[v.cursor]
}

// nextAgendaStatus cycles drafting → reviewing → finalized → drafting.
func nextAgendaStatus(s domain.AgendaStatus) domain.AgendaStatus {
	switch s {
	case domain.AgendaDrafting:
		return domain.AgendaReviewing
	case domain.AgendaReviewing:
		return domain.AgendaFinalized
	default:
		return domain.AgendaDrafting
	}
}

func (v *agendaView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "a":
			if v.state.CanEdit() {
				return v, pushView(newAgendaFormView(v.state, nil))
			}
		case "e":
			if item := v.selected(); item != nil && v.state.CanEdit() {
				return v, pushView(newAgendaFormView(v.state, item))
			}
		case "s":
			if item := v.selected(); item != nil && v.state.CanEdit() {
				updated := item.Clone()
				updated.Status = nextAgendaStatus(updated.Status)
				v.state.App.Store.UpdateAgendaItem(updated)
				v.reload()
				return v, flash(formatter.StyleGreen.Render("✔ ") + formatter.Bold(updated.Title) +
					" " + formatter.Dim("is now "+string(updated.Status)))
			}
		case "l":
			if item := v.selected(); item != nil && v.state.CanEdit() {
				return v, pushView(newAgendaLogFormView(v.state, item.ID, item.Title))
			}
		case "x":
			if item := v.selected(); item != nil && v.state.CanEdit() {
				return v, pushView(newDeleteAgendaView(v.state, item.ID, item.Title))
			}
		}
	}
	return v, nil
}

func (v *agendaView) View() string {
	var b strings.Builder

	r := v.ready
	b.WriteString(fmt.Sprintf("\n  %s  %s\n\n",
		formatter.RenderProgress(r.FinalizedRatio, 14),
		formatter.Dim(fmt.Sprintf("%d finalized · %d reviewing · %d drafting",
			r.Finalized, r.Reviewing, r.Drafting))))

	if len(v.items) == 0 {
		b.WriteString("  " + formatter.Dim("No sections yet.") + "\n")
		return b.String()
	}

	for i, item := range v.items {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor,
			formatter.StyleFg.Render(padRight(item.Title, 48)),
			formatter.AgendaPill(item.Status),
			formatter.Dim(domain.TeamName(v.teams, item.ResponsibleTeamID))))
	}

	return b.String()
}
