package services

import (
	"context"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
)

// StudySessionStore defines the persistence operations the study session
// service relies on. *repositories.StudySessionRepository satisfies it.
type StudySessionStore interface {
	Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error)
	List(ctx context.Context) ([]*models.StudySession, error)
}

// StudySessionService defines the interface for the Pomodoro session log
type StudySessionService interface {
	List(ctx context.Context) ([]*models.StudySession, error)
	Create(ctx context.Context, req *dto.CreateStudySessionRequest) (*models.StudySession, error)
}

type studySessionService struct {
	store StudySessionStore
}

// NewStudySessionService creates a new StudySessionService
func NewStudySessionService(store StudySessionStore) StudySessionService {
	return &studySessionService{store: store}
}

func (s *studySessionService) List(ctx context.Context) ([]*models.StudySession, error) {
	return s.store.List(ctx)
}

// Create applies the sessionType default and persists. CompletedAt is
// required at binding; absent values never reach this layer.
func (s *studySessionService) Create(ctx context.Context, req *dto.CreateStudySessionRequest) (*models.StudySession, error) {
	session := &models.StudySession{
		Duration:    req.Duration,
		SessionType: models.SessionTypeWork,
		CompletedAt: req.CompletedAt.UTC(),
	}
	if req.SessionType != "" {
		session.SessionType = models.SessionType(req.SessionType)
	}

	return s.store.Create(ctx, session)
}
