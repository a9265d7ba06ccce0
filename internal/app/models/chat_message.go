package models

import "time"

// ChatRole identifies which side of the tutor conversation wrote a message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents one turn in the AI tutor conversation. The history
// is append-only and replayed in ascending creation order.
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	Role      ChatRole  `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
