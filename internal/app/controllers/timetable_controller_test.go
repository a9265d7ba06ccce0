package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
)

func TestUploadTimetablePersistsExtractedEvents(t *testing.T) {
	f := newFixture()

	rec := f.upload(t, "/api/timetable/upload", "file", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var result dto.TimetableUploadResponse
	decodeBody(t, rec, &result)
	assert.True(t, result.Recognized)
	assert.Equal(t, 1, result.TotalClasses)
	assert.Equal(t, 5, result.FreeSlots)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "CS101", result.Events[0].CourseName)

	// The events show up in the schedule listing too
	list := f.do(t, http.MethodGet, "/api/schedule", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var events []models.ScheduleEvent
	decodeBody(t, list, &events)
	assert.Len(t, events, 1)
}

func TestUploadTimetableCollaboratorFailureStillSucceeds(t *testing.T) {
	f := newFixture()
	f.vision.err = errors.New("model overloaded")

	rec := f.upload(t, "/api/timetable/upload", "file", []byte("img"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var result dto.TimetableUploadResponse
	decodeBody(t, rec, &result)
	assert.False(t, result.Recognized)
	assert.Len(t, result.Events, 2)
	assert.Equal(t, 0, result.FreeSlots)
}

func TestUploadTimetableRequiresFile(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/timetable/upload", map[string]interface{}{"not": "a file"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAssignmentPersistsExtractedAssignment(t *testing.T) {
	f := newFixture()
	f.vision.raw = `{"title":"Essay 2","course":"Lit","dueDate":"2025-03-01T23:59:00Z","priority":"high"}`

	rec := f.upload(t, "/api/timetable/upload-assignment", "file", []byte("img"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var result dto.AssignmentUploadResponse
	decodeBody(t, rec, &result)
	assert.True(t, result.Recognized)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, "Essay 2", result.Assignment.Title)

	list := f.do(t, http.MethodGet, "/api/assignments", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var assignments []models.Assignment
	decodeBody(t, list, &assignments)
	assert.Len(t, assignments, 1)
}

func TestUploadAssignmentFallsBackToPlaceholder(t *testing.T) {
	f := newFixture()
	f.vision.raw = "unreadable"

	rec := f.upload(t, "/api/timetable/upload-assignment", "file", []byte("img"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var result dto.AssignmentUploadResponse
	decodeBody(t, rec, &result)
	assert.False(t, result.Recognized)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, "Assignment from Upload", result.Assignment.Title)
}

func TestGetTimetableSnapshot(t *testing.T) {
	f := newFixture()

	// Null before the first upload
	rec := f.do(t, http.MethodGet, "/api/timetable", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "null", rec.Body.String())

	up := f.upload(t, "/api/timetable/upload", "file", []byte("img"))
	require.Equal(t, http.StatusCreated, up.Code)

	rec = f.do(t, http.MethodGet, "/api/timetable", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot models.TimetableSnapshot
	decodeBody(t, rec, &snapshot)
	assert.Equal(t, 1, snapshot.TotalClasses)
	assert.Equal(t, 5, snapshot.FreeSlots)
	assert.Equal(t, 1, snapshot.Version)
	assert.False(t, snapshot.UploadedAt.IsZero())
}
