package services

import (
	"context"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
)

// ScheduleStore defines the persistence operations the schedule service
// relies on. *repositories.ScheduleRepository satisfies it.
type ScheduleStore interface {
	Create(ctx context.Context, event *models.ScheduleEvent) (*models.ScheduleEvent, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error)
	List(ctx context.Context) ([]*models.ScheduleEvent, error)
	Update(ctx context.Context, event *models.ScheduleEvent) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService defines the interface for weekly schedule operations
type ScheduleService interface {
	List(ctx context.Context) ([]*models.ScheduleEvent, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error)
	Create(ctx context.Context, req *dto.CreateScheduleEventRequest) (*models.ScheduleEvent, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleEventRequest) (*models.ScheduleEvent, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	store ScheduleStore
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(store ScheduleStore) ScheduleService {
	return &scheduleService{store: store}
}

func (s *scheduleService) List(ctx context.Context) ([]*models.ScheduleEvent, error) {
	return s.store.List(ctx)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error) {
	return s.store.GetByID(ctx, id)
}

// Create applies the default color and persists
func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleEventRequest) (*models.ScheduleEvent, error) {
	event := &models.ScheduleEvent{
		CourseName: req.CourseName,
		DayOfWeek:  req.DayOfWeek.Int(),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Location:   req.Location,
		Color:      req.Color,
	}
	if event.Color == "" {
		event.Color = models.DefaultColor
	}

	return s.store.Create(ctx, event)
}

// Update loads the record, merges only the provided fields and writes it back
func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleEventRequest) (*models.ScheduleEvent, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseName != nil {
		event.CourseName = *req.CourseName
	}
	if req.DayOfWeek != nil {
		event.DayOfWeek = req.DayOfWeek.Int()
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.Color != nil {
		event.Color = *req.Color
	}

	if err := s.store.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
