package domain

import "time"

// TrackingLog is an append-only, timestamped free-text note attached to a
// task or agenda item. Logs are immutable once created and kept newest-first.
type TrackingLog struct {
	ID        string
	Timestamp time.Time
	Message   string
	Author    string
}

// PrependLog returns a new log list with entry at index 0.
// The input slice is not modified.
func PrependLog(logs []TrackingLog, entry TrackingLog) []TrackingLog {
	out := make([]TrackingLog, 0, len(logs)+1)
	out = append(out, entry)
	out = append(out, logs...)
	return out
}

// CloneLogs returns an independent copy of a log list.
func CloneLogs(logs []TrackingLog) []TrackingLog {
	if logs == nil {
		return nil
	}
	return append([]TrackingLog(nil), logs...)
}
