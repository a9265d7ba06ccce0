package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/middleware"
)

// ChatController handles the AI tutor conversation
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// GetChatHistory returns the full conversation history
// @Summary Get chat history
// @Description Retrieves all tutor chat messages in ascending creation order
// @Tags chat
// @Produce json
// @Success 200 {array} models.ChatMessage "Chat history retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chat [get]
func (c *ChatController) GetChatHistory(ctx *gin.Context) {
	messages, err := c.chatService.History(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// SendChatMessage runs one tutor chat turn
// @Summary Send a chat message
// @Description Persists the message, asks the AI tutor for a reply and returns both turns
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.CreateChatMessageRequest true "Chat message"
// @Success 201 {object} dto.ChatTurnResponse "Chat turn completed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid message data"
// @Failure 500 {object} dto.ErrorResponse "Failed to process chat message"
// @Router /chat [post]
func (c *ChatController) SendChatMessage(ctx *gin.Context) {
	var req dto.CreateChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid message data")
		return
	}

	turn, err := c.chatService.SendMessage(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, turn)
}

// ClearChatHistory wipes the conversation
// @Summary Clear chat history
// @Description Deletes all tutor chat messages
// @Tags chat
// @Success 204 "Chat history cleared successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chat [delete]
func (c *ChatController) ClearChatHistory(ctx *gin.Context) {
	if err := c.chatService.Clear(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
