package domain

// Team is a named responsible party. Tasks and agenda items reference teams
// by id only; the reference is weak and may dangle after a team is deleted.
type Team struct {
	ID          string
	Name        string
	Description string
	ColorTag    string
}

// TeamName resolves a team id against a team list for display.
// Unknown ids fall back to the raw id so dangling references never break
// rendering.
func TeamName(teams []Team, id string) string {
	for _, t := range teams {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
