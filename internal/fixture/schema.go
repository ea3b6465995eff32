// Package fixture loads the seed dataset the tracker starts from: teams,
// project phases with their tasks, and agenda items. A fixture is consumed
// once at startup; it is domain data, not persisted state.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the top-level JSON structure of a seed fixture.
type File struct {
	Teams       []TeamSeed       `json:"teams"`
	Phases      []PhaseSeed      `json:"phases"`
	AgendaItems []AgendaItemSeed `json:"agenda_items"`
}

// TeamSeed defines a responsible team in the fixture.
type TeamSeed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ColorTag    string `json:"color_tag,omitempty"`
}

// PhaseSeed defines a project phase and its task list.
type PhaseSeed struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Period      string     `json:"period,omitempty"`
	Description string     `json:"description,omitempty"`
	Tasks       []TaskSeed `json:"tasks"`
}

// TaskSeed defines a scheduled task in the fixture.
type TaskSeed struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	TeamID            string    `json:"team_id"`
	ResponsiblePerson string    `json:"responsible_person,omitempty"`
	Status            string    `json:"status,omitempty"`
	IsMilestone       bool      `json:"is_milestone,omitempty"`
	ProgressPercent   *int      `json:"progress_percent,omitempty"`
	Logs              []LogSeed `json:"logs,omitempty"`
}

// AgendaItemSeed defines a report content section in the fixture.
type AgendaItemSeed struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ResponsibleTeamID string    `json:"responsible_team_id"`
	ResponsiblePerson string    `json:"responsible_person,omitempty"`
	Status            string    `json:"status,omitempty"`
	Logs              []LogSeed `json:"logs,omitempty"`
}

// LogSeed defines a pre-existing tracking log entry.
type LogSeed struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // RFC 3339
	Message   string `json:"message"`
	Author    string `json:"author"`
}

// Read parses a seed fixture from a JSON file.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a seed fixture from raw JSON.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}
