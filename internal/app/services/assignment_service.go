package services

import (
	"context"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
)

// AssignmentStore defines the persistence operations the assignment service
// relies on. *repositories.AssignmentRepository satisfies it.
type AssignmentStore interface {
	Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id string) error
}

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	List(ctx context.Context) ([]*models.Assignment, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*models.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type assignmentService struct {
	store AssignmentStore
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(store AssignmentStore) AssignmentService {
	return &assignmentService{store: store}
}

func (s *assignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	return s.store.List(ctx)
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	return s.store.GetByID(ctx, id)
}

// Create applies defaults (priority medium, completed false) and persists
func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	assignment := &models.Assignment{
		Title:       req.Title,
		Course:      req.Course,
		Description: req.Description,
		DueDate:     *req.DueDate,
		Priority:    models.PriorityMedium,
	}
	if req.Priority != "" {
		assignment.Priority = models.Priority(req.Priority)
	}
	if req.Completed != nil {
		assignment.Completed = *req.Completed
	}

	return s.store.Create(ctx, assignment)
}

// Update loads the record, merges only the provided fields and writes it back
func (s *assignmentService) Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Course != nil {
		assignment.Course = *req.Course
	}
	if req.Description != nil {
		assignment.Description = req.Description
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		assignment.Priority = models.Priority(*req.Priority)
	}
	if req.Completed != nil {
		assignment.Completed = *req.Completed
	}

	if err := s.store.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
