package models

import "time"

// ScheduleEvent represents a recurring weekly class slot.
// DayOfWeek uses 0-6 (Sunday-Saturday); times are "HH:MM" strings.
// Start/end ordering is the caller's responsibility, overlaps are allowed.
type ScheduleEvent struct {
	ID         string    `json:"id" db:"id"`
	CourseName string    `json:"courseName" db:"course_name"`
	DayOfWeek  int       `json:"dayOfWeek" db:"day_of_week"`
	StartTime  string    `json:"startTime" db:"start_time"`
	EndTime    string    `json:"endTime" db:"end_time"`
	Location   *string   `json:"location,omitempty" db:"location"`
	Color      string    `json:"color" db:"color"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
