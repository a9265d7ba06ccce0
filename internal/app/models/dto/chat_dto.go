package dto

import "github.com/selin/studyhub/internal/app/models"

// CreateChatMessageRequest represents an incoming tutor chat message
type CreateChatMessageRequest struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatTurnResponse returns both halves of one completed chat turn
type ChatTurnResponse struct {
	UserMessage *models.ChatMessage `json:"userMessage"`
	AIMessage   *models.ChatMessage `json:"aiMessage"`
}
