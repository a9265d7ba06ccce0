package dto

import "time"

// CreateAssignmentRequest represents data for creating a new assignment
type CreateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required"`
	Course      string     `json:"course" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate" binding:"required"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool      `json:"completed"`
}

// UpdateAssignmentRequest carries a partial field set for PATCH. Only
// fields present in the body are merged; present fields are held to the
// same rules as creation.
type UpdateAssignmentRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Course      *string    `json:"course" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool      `json:"completed"`
}
