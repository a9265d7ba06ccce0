package models

import "time"

// Priority represents the urgency level of an assignment
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultColor is the color assigned to schedule events created without one
const DefaultColor = "#facc15"

// Assignment represents a tracked course assignment with a due date
type Assignment struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Course      string    `json:"course" db:"course"`
	Description *string   `json:"description,omitempty" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	Priority    Priority  `json:"priority" db:"priority"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
