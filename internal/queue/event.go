// Package queue defines message payloads exchanged over the message broker.
package queue

// AttendanceRecordedEvent is published after an attendance mark is stored.
// It carries enough information for downstream consumers to log or notify
// guardians without querying the primary database.
type AttendanceRecordedEvent struct {
	AttendanceID uint64 `json:"attendance_id"`
	PlayerID     uint64 `json:"player_id"`
	PlayerName   string `json:"player_name,omitempty"`
	CoachID      uint64 `json:"coach_id"`
	Date         string `json:"date"`
	IsPresent    bool   `json:"is_present"`
	RecordedAt   string `json:"recorded_at"`
}
