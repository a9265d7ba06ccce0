package models

import "time"

// SessionType distinguishes Pomodoro work intervals from breaks
type SessionType string

const (
	SessionTypeWork  SessionType = "work"
	SessionTypeBreak SessionType = "break"
)

// StudySession represents one completed Pomodoro interval. Sessions are
// append-only and are not linked to a specific assignment.
type StudySession struct {
	ID          string      `json:"id" db:"id"`
	Duration    int         `json:"duration" db:"duration"`
	SessionType SessionType `json:"sessionType" db:"session_type"`
	CompletedAt time.Time   `json:"completedAt" db:"completed_at"`
}
