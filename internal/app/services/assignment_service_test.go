package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func TestAssignmentServiceCreateAppliesDefaults(t *testing.T) {
	store := &fakeAssignmentStore{}
	svc := NewAssignmentService(store)

	due := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		Title:   "Essay",
		Course:  "Lit",
		DueDate: &due,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.Equal(t, due, created.DueDate)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAssignmentServiceCreateKeepsExplicitValues(t *testing.T) {
	store := &fakeAssignmentStore{}
	svc := NewAssignmentService(store)

	due := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		Title:       "Lab report",
		Course:      "Chem",
		Description: strPtr("Titration writeup"),
		DueDate:     &due,
		Priority:    "high",
		Completed:   boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.True(t, created.Completed)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Titration writeup", *created.Description)
}

func TestAssignmentServiceUpdateMergesOnlyProvidedFields(t *testing.T) {
	store := &fakeAssignmentStore{}
	svc := NewAssignmentService(store)

	due := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		Title:   "Essay",
		Course:  "Lit",
		DueDate: &due,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateAssignmentRequest{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, "Essay", updated.Title)
	assert.Equal(t, "Lit", updated.Course)
	assert.Equal(t, due, updated.DueDate)
	assert.Equal(t, models.PriorityMedium, updated.Priority)
}

func TestAssignmentServiceUpdateMissingReturnsNotFound(t *testing.T) {
	svc := NewAssignmentService(&fakeAssignmentStore{})

	_, err := svc.Update(context.Background(), "nope", &dto.UpdateAssignmentRequest{
		Title: strPtr("anything"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestAssignmentServiceDeleteMissingReturnsNotFound(t *testing.T) {
	store := &fakeAssignmentStore{}
	svc := NewAssignmentService(store)

	due := time.Now().UTC()
	created, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		Title:   "Once",
		Course:  "CS",
		DueDate: &due,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	err = svc.Delete(context.Background(), created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	remaining, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
