package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to reload from the store.
// Broadcast after any mutation so underlying views pick up the change.
type refreshViewMsg struct{}

// flashMsg carries a transient status line shown above the status bar.
type flashMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// flash returns a tea.Cmd that shows a transient status line.
func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
