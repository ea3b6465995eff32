package cli

import (
	"fmt"
	"strconv"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

func flashSaved(title string) tea.Cmd {
	return flash(formatter.StyleGreen.Render("✔ Saved ") + formatter.Bold(title))
}

func flashDeleted(title string) tea.Cmd {
	return flash(formatter.StyleRed.Render("✖ Deleted ") + formatter.Bold(title))
}

func flashGone() tea.Cmd {
	return flash(formatter.Dim("Nothing to change; the entry is gone."))
}

// nextTaskID picks the lowest free "<phase>.<n>" id within a phase.
func nextTaskID(phase domain.Phase) string {
	used := make(map[string]bool, len(phase.Tasks))
	for _, t := range phase.Tasks {
		used[t.ID] = true
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("%d.%d", phase.ID, n)
		if !used[id] {
			return id
		}
	}
}

// taskFormFields holds form-bound values for the task wizard.
type taskFormFields struct {
	title     string
	desc      string
	start     string
	end       string
	teamID    string
	person    string
	status    domain.TaskStatus
	milestone bool
	progress  string
}

// newTaskFormView creates the add/edit task wizard for a phase. A nil task
// means add.
func newTaskFormView(state *SharedState, phaseID int, task *domain.Task) View {
	snap := state.App.Store.Snapshot()

	f := &taskFormFields{status: domain.TaskPending}
	title := "Add Task"
	if task != nil {
		title = "Edit Task"
		f.title = task.Title
		f.desc = task.Description
		f.start = task.StartDate
		f.end = task.EndDate
		f.teamID = task.TeamID
		f.person = task.ResponsiblePerson
		f.status = task.Status
		f.milestone = task.IsMilestone
		if task.ProgressPercent > 0 {
			f.progress = strconv.Itoa(task.ProgressPercent)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&f.desc),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Value(&f.start).
				Validate(validateDate),
			huh.NewInput().
				Title("End Date (YYYY-MM-DD)").
				Value(&f.end).
				Validate(func(s string) error {
					if err := validateDate(s); err != nil {
						return err
					}
					start, okStart := domain.ParseDate(f.start)
					end, _ := domain.ParseDate(s)
					if okStart && end.Before(start) {
						return fmt.Errorf("end date is before start date")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Team").
				Options(teamOptions(snap.Teams)...).
				Value(&f.teamID),
			huh.NewInput().
				Title("Responsible Person").
				Placeholder("optional").
				Value(&f.person),
			huh.NewSelect[domain.TaskStatus]().
				Title("Status").
				Options(taskStatusOptions()...).
				Value(&f.status),
			huh.NewConfirm().
				Title("Milestone?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.milestone),
			huh.NewInput().
				Title("Progress % (blank for 0)").
				Value(&f.progress).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					v, err := strconv.Atoi(s)
					if err != nil || v < 0 || v > 100 {
						return fmt.Errorf("enter a number between 0 and 100")
					}
					return nil
				}),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		progress := 0
		if v, err := strconv.Atoi(f.progress); err == nil {
			progress = v
		}

		t := domain.Task{
			Title:             f.title,
			Description:       f.desc,
			StartDate:         f.start,
			EndDate:           f.end,
			TeamID:            f.teamID,
			ResponsiblePerson: f.person,
			Status:            f.status,
			IsMilestone:       f.milestone,
			ProgressPercent:   progress,
		}

		st := state.App.Store
		if task == nil {
			current := st.Snapshot()
			for _, p := range current.Phases {
				if p.ID == phaseID {
					t.ID = nextTaskID(p)
				}
			}
			if !st.AddTask(phaseID, t) {
				return flashGone()
			}
		} else {
			t.ID = task.ID
			t.Logs = domain.CloneLogs(task.Logs)
			if !st.UpdateTask(phaseID, t) {
				return flashGone()
			}
		}
		return flashSaved(f.title)
	}

	return newWizardView(state, title, form, done)
}

// newTaskLogFormView collects a tracking-log entry for a task.
func newTaskLogFormView(state *SharedState, phaseID int, taskID, taskTitle string) View {
	var message, author string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Progress note").
				Value(&message).
				Validate(validateRequired("message")),
			huh.NewInput().
				Title("Author").
				Placeholder("optional").
				Value(&author),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !state.App.Store.AppendTaskLog(phaseID, taskID, message, author) {
			return flashGone()
		}
		return flash(formatter.StyleGreen.Render("✔ Logged on ") + formatter.Bold(taskTitle))
	}

	return newWizardView(state, "Log Progress", form, done)
}

// newDeleteTaskView asks for confirmation before removing a task.
func newDeleteTaskView(state *SharedState, phaseID int, taskID, taskTitle string) View {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", taskTitle)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Kept."))
		}
		if !state.App.Store.DeleteTask(phaseID, taskID) {
			return flashGone()
		}
		return flashDeleted(taskTitle)
	}

	return newWizardView(state, "Delete Task", form, done)
}

// agendaFormFields holds form-bound values for the agenda section wizard.
type agendaFormFields struct {
	title  string
	teamID string
	person string
	status domain.AgendaStatus
}

// newAgendaFormView creates the add/edit wizard for a report book section.
// A nil item means add; new sections are prepended by the store.
func newAgendaFormView(state *SharedState, item *domain.AgendaItem) View {
	snap := state.App.Store.Snapshot()

	f := &agendaFormFields{status: domain.AgendaDrafting}
	title := "Add Section"
	if item != nil {
		title = "Edit Section"
		f.title = item.Title
		f.teamID = item.ResponsibleTeamID
		f.person = item.ResponsiblePerson
		f.status = item.Status
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Section title").
				Value(&f.title).
				Validate(validateRequired("title")),
			huh.NewSelect[string]().
				Title("Responsible team").
				Options(teamOptions(snap.Teams)...).
				Value(&f.teamID),
			huh.NewInput().
				Title("Responsible person").
				Placeholder("optional").
				Value(&f.person),
			huh.NewSelect[domain.AgendaStatus]().
				Title("Status").
				Options(agendaStatusOptions()...).
				Value(&f.status),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		a := domain.AgendaItem{
			Title:             f.title,
			ResponsibleTeamID: f.teamID,
			ResponsiblePerson: f.person,
			Status:            f.status,
		}

		st := state.App.Store
		if item == nil {
			a.ID = uuid.New().String()
			st.AddAgendaItem(a)
		} else {
			a.ID = item.ID
			a.Logs = domain.CloneLogs(item.Logs)
			if !st.UpdateAgendaItem(a) {
				return flashGone()
			}
		}
		return flashSaved(f.title)
	}

	return newWizardView(state, title, form, done)
}

// newAgendaLogFormView collects a tracking-log entry for a section.
func newAgendaLogFormView(state *SharedState, itemID, itemTitle string) View {
	var message, author string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Progress note").
				Value(&message).
				Validate(validateRequired("message")),
			huh.NewInput().
				Title("Author").
				Placeholder("optional").
				Value(&author),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !state.App.Store.AppendAgendaLog(itemID, message, author) {
			return flashGone()
		}
		return flash(formatter.StyleGreen.Render("✔ Logged on ") + formatter.Bold(itemTitle))
	}

	return newWizardView(state, "Log Progress", form, done)
}

// newDeleteAgendaView asks for confirmation before removing a section.
func newDeleteAgendaView(state *SharedState, itemID, itemTitle string) View {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", itemTitle)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Kept."))
		}
		if !state.App.Store.DeleteAgendaItem(itemID) {
			return flashGone()
		}
		return flashDeleted(itemTitle)
	}

	return newWizardView(state, "Delete Section", form, done)
}

// teamFormFields holds form-bound values for the team wizard.
type teamFormFields struct {
	name     string
	desc     string
	colorTag string
}

var colorTagOptions = []huh.Option[string]{
	huh.NewOption("Indigo", "indigo"),
	huh.NewOption("Blue", "blue"),
	huh.NewOption("Emerald", "emerald"),
	huh.NewOption("Rose", "rose"),
	huh.NewOption("Amber", "amber"),
}

// newTeamFormView creates the add/edit team wizard. New teams get a
// surrogate uuid so renames never break task references.
func newTeamFormView(state *SharedState, team *domain.Team) View {
	f := &teamFormFields{colorTag: "blue"}
	title := "Add Team"
	if team != nil {
		title = "Edit Team"
		f.name = team.Name
		f.desc = team.Description
		f.colorTag = team.ColorTag
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&f.desc),
			huh.NewSelect[string]().
				Title("Color tag").
				Options(colorTagOptions...).
				Value(&f.colorTag),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		t := domain.Team{
			Name:        f.name,
			Description: f.desc,
			ColorTag:    f.colorTag,
		}

		st := state.App.Store
		if team == nil {
			t.ID = uuid.New().String()
			if err := st.AddTeam(t); err != nil {
				return flash(formatter.StyleRed.Render("✖ " + err.Error()))
			}
		} else {
			t.ID = team.ID
			if !st.UpdateTeam(t) {
				return flashGone()
			}
		}
		return flashSaved(f.name)
	}

	return newWizardView(state, title, form, done)
}

// newDeleteTeamView asks for confirmation before removing a team. Task and
// section references to the team are left dangling on purpose.
func newDeleteTeamView(state *SharedState, teamID, teamName string) View {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q? Assignments keep the raw team id.", teamName)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(agmtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Kept."))
		}
		if !state.App.Store.DeleteTeam(teamID) {
			return flashGone()
		}
		return flashDeleted(teamName)
	}

	return newWizardView(state, "Delete Team", form, done)
}
