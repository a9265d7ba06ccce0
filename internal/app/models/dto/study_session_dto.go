package dto

import "time"

// CreateStudySessionRequest represents data for logging a completed
// Pomodoro interval. The client reports when the interval finished.
type CreateStudySessionRequest struct {
	Duration    int        `json:"duration" binding:"required,min=1"`
	SessionType string     `json:"sessionType" binding:"omitempty,oneof=work break"`
	CompletedAt *time.Time `json:"completedAt" binding:"required"`
}
