package cli

import (
	"fmt"

	"agmtrack/internal/domain"
	"agmtrack/internal/filter"
	"github.com/spf13/pflag"
)

// filterFlags holds the raw values of the shared task-filter flag set.
type filterFlags struct {
	status string
	team   string
	from   string
	to     string
}

// addFilterFlags registers the shared task-filter flags on a flag set.
// The same flags back every command that narrows the task list.
func addFilterFlags(fs *pflag.FlagSet, f *filterFlags) {
	fs.StringVar(&f.status, "status", "", "Only tasks with this status (pending, in_progress, completed, critical, delayed)")
	fs.StringVar(&f.team, "team", "", "Only tasks assigned to this team id")
	fs.StringVar(&f.from, "from", "", "Only tasks starting on or after this date (YYYY-MM-DD)")
	fs.StringVar(&f.to, "to", "", "Only tasks ending on or before this date (YYYY-MM-DD)")
}

// criteria converts the flag values into filter criteria, validating the
// status enum and date formats.
func (f *filterFlags) criteria() (filter.Criteria, error) {
	var c filter.Criteria

	if f.status != "" {
		if !domain.ValidTaskStatuses[f.status] {
			return c, fmt.Errorf("invalid --status %q", f.status)
		}
		c.Status = domain.TaskStatus(f.status)
	}
	c.TeamID = f.team

	if f.from != "" {
		if _, ok := domain.ParseDate(f.from); !ok {
			return c, fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", f.from)
		}
		c.StartFrom = f.from
	}
	if f.to != "" {
		if _, ok := domain.ParseDate(f.to); !ok {
			return c, fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", f.to)
		}
		c.EndTo = f.to
	}

	return c, nil
}
