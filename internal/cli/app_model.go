package cli

import (
	"fmt"
	"os"
	"strings"

	"agmtrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// tabKeys are the number-key shortcuts for the top-level views, in display
// order: dashboard, timeline, agenda, teams.
var tabKeys = []string{"1", "2", "3", "4"}

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack; the bottom of the stack is one of the four
// top-level tabs.
type appModel struct {
	state     *SharedState
	viewStack []View
	flashLine string
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.viewStack = []View{newDashboardView(state)}
	return m
}

// RunTUI starts the interactive terminal UI.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) tabView(key string) View {
	switch key {
	case "1":
		return newDashboardView(m.state)
	case "2":
		return newTimelineView(m.state)
	case "3":
		return newAgendaView(m.state)
	case "4":
		return newTeamsView(m.state)
	}
	return nil
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.flashLine = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to every view on the stack so underlying views reload
		// after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashMsg:
		m.flashLine = msg.text
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q and the tab digits.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.flashLine = ""
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	// Tab switching replaces the whole stack.
	for _, k := range tabKeys {
		if msg.String() == k {
			if v := m.activeView(); v != nil && len(m.viewStack) == 1 && viewForTab(k) == v.ID() {
				break // already on this tab
			}
			next := m.tabView(k)
			m.flashLine = ""
			m.viewStack = []View{next}
			return m, next.Init()
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func viewForTab(key string) ViewID {
	switch key {
	case "1":
		return ViewDashboard
	case "2":
		return ViewTimeline
	case "3":
		return ViewAgenda
	case "4":
		return ViewTeams
	}
	return ViewDashboard
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

var tabTitles = []string{"Dashboard", "Timeline", "Report Book", "Teams"}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("agmtrack")

	var tabs []string
	activeBase := m.viewStack[0].ID()
	for i, t := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, t)
		if ViewID(i) == activeBase {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	header := title + "  " + strings.Join(tabs, formatter.Dim(" · "))

	// Breadcrumb for stacked views.
	if len(m.viewStack) > 1 {
		var crumbs []string
		for _, v := range m.viewStack[1:] {
			if t := v.Title(); t != "" {
				crumbs = append(crumbs, t)
			}
		}
		if len(crumbs) > 0 {
			header += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.flashLine != "" {
		hints = append(hints, m.flashLine)
	}
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
