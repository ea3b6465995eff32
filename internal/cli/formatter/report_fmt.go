package formatter

import (
	"fmt"
	"strings"
	"time"

	"agmtrack/internal/domain"
	"agmtrack/internal/report"
)

const statusProgressBarWidth = 14

// FormatStatus formats the overview into a styled dashboard string.
func FormatStatus(o report.Overview) string {
	var b strings.Builder

	countdown := fmt.Sprintf("%s until the general meeting on %s",
		Bold(fmt.Sprintf("%d days", o.DaysToAGM)),
		StyleFg.Render(o.AGMDate.Format("2 Jan 2006")))
	if o.DaysToAGM < 0 {
		countdown = Dim("The general meeting has passed")
	}
	b.WriteString(countdown + "\n\n")

	b.WriteString(fmt.Sprintf("Overall  %s  %s\n\n",
		RenderProgress(float64(o.ProgressPct)/100, statusProgressBarWidth),
		Dim(fmt.Sprintf("%d of %d tasks done", o.CompletedTasks, o.TotalTasks))))

	headers := []string{"PHASE", "PROGRESS", "TASKS"}
	rows := make([][]string, 0, len(o.Phases))
	for _, ps := range o.Phases {
		rows = append(rows, []string{
			Bold(ps.Phase.Name),
			RenderProgress(float64(ps.ProgressPct)/100, statusProgressBarWidth),
			Dim(fmt.Sprintf("%d", ps.TaskCount)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	r := o.Readiness
	b.WriteString(fmt.Sprintf("Report book  %s / %s / %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("%d finalized", r.Finalized)),
		StyleYellow.Render(fmt.Sprintf("%d reviewing", r.Reviewing)),
		StyleBlue.Render(fmt.Sprintf("%d drafting", r.Drafting)),
		Dim(fmt.Sprintf("(%.0f%% of %d sections)", r.FinalizedRatio*100, r.Total))))

	if o.NextMilestone != nil {
		b.WriteString(fmt.Sprintf("\nNext milestone  %s %s\n",
			Bold(o.NextMilestone.Title),
			DueStyled(o.NextMilestone.EndDate, o.Today)))
	}

	if n := len(o.Overdue); n > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("  %d task(s) overdue", n)) + "\n")
	}
	if n := len(o.Upcoming); n > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  %d task(s) due soon", n)) + "\n")
	}

	return RenderBox("Status", b.String())
}

// FormatNotifications lists overdue and due-soon tasks.
func FormatNotifications(o report.Overview, teams []domain.Team) string {
	var b strings.Builder

	if len(o.Overdue) == 0 && len(o.Upcoming) == 0 {
		b.WriteString(StyleGreen.Render("Nothing overdue and nothing due soon.") + "\n")
		return RenderBox("Notifications", b.String())
	}

	if len(o.Overdue) > 0 {
		b.WriteString(StyleRed.Render("OVERDUE") + "\n")
		b.WriteString(taskTable(o.Overdue, teams, o.Today))
	}
	if len(o.Upcoming) > 0 {
		if len(o.Overdue) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleYellow.Render("DUE SOON") + "\n")
		b.WriteString(taskTable(o.Upcoming, teams, o.Today))
	}

	return RenderBox("Notifications", b.String())
}

// FormatPhases renders the full task list grouped by phase.
func FormatPhases(phases []domain.Phase, teams []domain.Team) string {
	var b strings.Builder
	for i, p := range phases {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(p.Name) + "\n")
		if p.Period != "" {
			b.WriteString(Dim(p.Period) + "\n")
		}
		rows := make([][]string, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			title := t.Title
			if t.IsMilestone {
				title = "◆ " + title
			}
			rows = append(rows, []string{
				Dim(t.ID),
				Bold(title),
				StatusPill(t.Status),
				StyleFg.Render(domain.TeamName(teams, t.TeamID)),
				DisplayDate(t.EndDate),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "TASK", "STATUS", "TEAM", "DUE"}, rows))
	}
	if b.Len() == 0 {
		return Dim("No tasks match.") + "\n"
	}
	return b.String()
}

func taskTable(tasks []domain.Task, teams []domain.Team, today time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Dim(t.ID),
			Bold(t.Title),
			StatusPill(t.Status),
			StyleFg.Render(domain.TeamName(teams, t.TeamID)),
			DueStyled(t.EndDate, today),
		})
	}
	return RenderTable([]string{"ID", "TASK", "STATUS", "TEAM", "DUE"}, rows)
}

// FormatAgenda renders the report book sections with their readiness.
func FormatAgenda(items []domain.AgendaItem, teams []domain.Team) string {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			Dim(a.ID),
			Bold(a.Title),
			AgendaPill(a.Status),
			StyleFg.Render(domain.TeamName(teams, a.ResponsibleTeamID)),
			StyleFg.Render(a.ResponsiblePerson),
		})
	}
	table := RenderTable([]string{"ID", "SECTION", "STATUS", "TEAM", "RESPONSIBLE"}, rows)
	return RenderBox("Report Book", table)
}

// FormatTeams renders the team directory.
func FormatTeams(teams []domain.Team) string {
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{
			Dim(t.ID),
			TeamTag(t),
			StyleFg.Render(t.Description),
		})
	}
	table := RenderTable([]string{"ID", "TEAM", "DESCRIPTION"}, rows)
	return RenderBox("Teams", table)
}
