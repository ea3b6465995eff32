package fixture

import (
	"fmt"
	"time"

	"agmtrack/internal/domain"
)

// Validate checks a fixture for structural errors before conversion.
// Returns a slice of all errors found, so a fixture author can fix
// everything in one pass.
func Validate(f *File) []error {
	var errs []error

	teamIDs := make(map[string]bool)
	errs = append(errs, validateTeams(f.Teams, teamIDs)...)
	errs = append(errs, validatePhases(f.Phases)...)
	errs = append(errs, validateAgendaItems(f.AgendaItems)...)

	return errs
}

func validateTeams(teams []TeamSeed, seen map[string]bool) []error {
	var errs []error
	for i, t := range teams {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("teams[%d]: id is required", i))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("teams[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("teams[%d] (%s): name is required", i, t.ID))
		}
	}
	return errs
}

func validatePhases(phases []PhaseSeed) []error {
	var errs []error
	phaseIDs := make(map[int]bool)

	for i, p := range phases {
		if phaseIDs[p.ID] {
			errs = append(errs, fmt.Errorf("phases[%d]: duplicate id %d", i, p.ID))
		}
		phaseIDs[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("phases[%d] (id %d): name is required", i, p.ID))
		}

		taskIDs := make(map[string]bool)
		for j, t := range p.Tasks {
			prefix := fmt.Sprintf("phases[%d].tasks[%d]", i, j)
			if t.ID == "" {
				errs = append(errs, fmt.Errorf("%s: id is required", prefix))
			} else if taskIDs[t.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate task id %q within phase %d", prefix, t.ID, p.ID))
			}
			taskIDs[t.ID] = true

			if t.Title == "" {
				errs = append(errs, fmt.Errorf("%s: title is required", prefix))
			}
			if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
				errs = append(errs, fmt.Errorf("%s: invalid status %q", prefix, t.Status))
			}
			if t.ProgressPercent != nil && (*t.ProgressPercent < 0 || *t.ProgressPercent > 100) {
				errs = append(errs, fmt.Errorf("%s: progress_percent must be 0-100", prefix))
			}

			start, startErr := validateDate(prefix, "start_date", t.StartDate)
			end, endErr := validateDate(prefix, "end_date", t.EndDate)
			if startErr != nil {
				errs = append(errs, startErr)
			}
			if endErr != nil {
				errs = append(errs, endErr)
			}
			if startErr == nil && endErr == nil && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s: end_date %q is before start_date %q", prefix, t.EndDate, t.StartDate))
			}

			errs = append(errs, validateLogs(prefix, t.Logs)...)
		}
	}
	return errs
}

func validateAgendaItems(items []AgendaItemSeed) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, a := range items {
		prefix := fmt.Sprintf("agenda_items[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, a.ID))
		}
		seen[a.ID] = true

		if a.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", prefix))
		}
		if a.Status != "" && !domain.ValidAgendaStatuses[a.Status] {
			errs = append(errs, fmt.Errorf("%s: invalid status %q", prefix, a.Status))
		}
		errs = append(errs, validateLogs(prefix, a.Logs)...)
	}
	return errs
}

func validateLogs(prefix string, logs []LogSeed) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, l := range logs {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("%s.logs[%d]: id is required", prefix, i))
		} else if seen[l.ID] {
			errs = append(errs, fmt.Errorf("%s.logs[%d]: duplicate log id %q", prefix, i, l.ID))
		}
		seen[l.ID] = true
		if _, err := time.Parse(time.RFC3339, l.Timestamp); err != nil {
			errs = append(errs, fmt.Errorf("%s.logs[%d]: invalid timestamp %q (expected RFC 3339)", prefix, i, l.Timestamp))
		}
	}
	return errs
}

func validateDate(prefix, field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s: %s is required", prefix, field)
	}
	t, ok := domain.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("%s: %s: invalid date %q (expected YYYY-MM-DD)", prefix, field, value)
	}
	return t, nil
}

// DanglingTeamRefs returns the team ids referenced by tasks or agenda items
// but not defined in the fixture. Dangling references are tolerated at
// runtime (lookups fall back to the raw id), so these are warnings, not
// validation errors.
func DanglingTeamRefs(f *File) []string {
	known := make(map[string]bool, len(f.Teams))
	for _, t := range f.Teams {
		known[t.ID] = true
	}

	seen := make(map[string]bool)
	var out []string
	note := func(id string) {
		if id != "" && !known[id] && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, p := range f.Phases {
		for _, t := range p.Tasks {
			note(t.TeamID)
		}
	}
	for _, a := range f.AgendaItems {
		note(a.ResponsibleTeamID)
	}
	return out
}
