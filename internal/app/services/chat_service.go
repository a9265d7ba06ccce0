package services

import (
	"context"
	"strings"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/pkg/apperrors"
	"github.com/selin/studyhub/internal/pkg/genai"
	"github.com/selin/studyhub/internal/pkg/logger"
)

const tutorSystemPrompt = `You are a helpful and supportive AI tutor for college students.
Your role is to:
- Help students understand concepts clearly and thoroughly
- Provide step-by-step explanations for complex topics
- Encourage critical thinking by asking guiding questions
- Offer study tips and learning strategies
- Be patient, encouraging, and supportive
- Explain concepts in simple terms before diving into technical details
- Use examples and analogies to make concepts relatable

Keep responses concise but comprehensive. Break down complex topics into digestible parts.`

const tutorEmptyReply = "I apologize, but I couldn't generate a response. Please try again."

// ChatStore defines the persistence operations the chat service relies on.
// *repositories.ChatRepository satisfies it.
type ChatStore interface {
	Create(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
	List(ctx context.Context) ([]*models.ChatMessage, error)
	Clear(ctx context.Context) error
}

// TutorCollaborator generates a tutor reply from a conversation history.
// *genai.Client satisfies it.
type TutorCollaborator interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []genai.Message) (string, error)
}

// ChatService defines the interface for the AI tutor conversation
type ChatService interface {
	History(ctx context.Context) ([]*models.ChatMessage, error)
	SendMessage(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatTurnResponse, error)
	Clear(ctx context.Context) error
}

type chatService struct {
	store ChatStore
	tutor TutorCollaborator
}

// NewChatService creates a new ChatService
func NewChatService(store ChatStore, tutor TutorCollaborator) ChatService {
	return &chatService{store: store, tutor: tutor}
}

func (s *chatService) History(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.store.List(ctx)
}

// SendMessage runs one full chat turn: persist the incoming message, replay
// the whole history to the tutor model, persist its reply and return both
// halves. The three steps are not atomic; if the tutor call fails the user
// message stays persisted as an unanswered turn.
func (s *chatService) SendMessage(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatTurnResponse, error) {
	userMessage, err := s.store.Create(ctx, &models.ChatMessage{
		Role:    models.ChatRole(req.Role),
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	messages, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]genai.Message, 0, len(messages))
	for _, m := range messages {
		role := genai.RoleUser
		if m.Role == models.ChatRoleAssistant {
			role = genai.RoleModel
		}
		history = append(history, genai.Message{Role: role, Content: m.Content})
	}

	reply, err := s.tutor.GenerateReply(ctx, tutorSystemPrompt, history)
	if err != nil {
		logger.Error().Err(err).Msg("Tutor reply generation failed, user message left unanswered")
		return nil, apperrors.NewCollaboratorError("Failed to process chat message")
	}
	if strings.TrimSpace(reply) == "" {
		reply = tutorEmptyReply
	}

	aiMessage, err := s.store.Create(ctx, &models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: reply,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatTurnResponse{UserMessage: userMessage, AIMessage: aiMessage}, nil
}

func (s *chatService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
