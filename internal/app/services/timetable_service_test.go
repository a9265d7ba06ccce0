package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/studyhub/internal/app/models"
)

func newTimetableFixture(vision *fakeVision) (TimetableService, *fakeScheduleStore, *fakeAssignmentStore, *fakeTimetableStore) {
	snapshots := &fakeTimetableStore{}
	schedule := &fakeScheduleStore{}
	assignments := &fakeAssignmentStore{}
	svc := NewTimetableService(snapshots, schedule, assignments, vision)
	return svc, schedule, assignments, snapshots
}

func TestAnalyzeTimetablePersistsRecognizedEvents(t *testing.T) {
	vision := &fakeVision{raw: `{
		"events": [
			{"courseName": "CS101", "dayOfWeek": 1, "startTime": "09:00", "endTime": "10:00", "location": "Room 4"},
			{"courseName": "Calculus", "dayOfWeek": 2, "startTime": "11:00", "endTime": "12:30"}
		],
		"freeSlots": 12
	}`}
	svc, schedule, _, snapshots := newTimetableFixture(vision)

	result, err := svc.AnalyzeTimetable(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.True(t, result.Recognized)
	assert.Equal(t, 2, result.TotalClasses)
	assert.Equal(t, 12, result.FreeSlots)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "CS101", result.Events[0].CourseName)
	assert.Equal(t, models.DefaultColor, result.Events[0].Color)
	assert.NotEmpty(t, result.Events[0].ID)

	assert.Len(t, schedule.items, 2)
	require.NotNil(t, snapshots.snapshot)
	assert.Equal(t, 2, snapshots.snapshot.TotalClasses)
	assert.Equal(t, 12, snapshots.snapshot.FreeSlots)
	assert.Equal(t, 1, snapshots.snapshot.Version)

	assert.Equal(t, []byte("png-bytes"), vision.image)
	assert.Equal(t, "image/png", vision.mimeType)
}

func TestAnalyzeTimetableFallsBackOnCollaboratorError(t *testing.T) {
	vision := &fakeVision{err: context.DeadlineExceeded}
	svc, schedule, _, snapshots := newTimetableFixture(vision)

	result, err := svc.AnalyzeTimetable(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.False(t, result.Recognized)
	assert.Equal(t, 0, result.FreeSlots)
	require.Len(t, result.Events, 2)
	assert.Len(t, schedule.items, 2)
	require.NotNil(t, snapshots.snapshot)
	assert.Equal(t, 2, snapshots.snapshot.TotalClasses)
}

func TestAnalyzeTimetableFallsBackOnUnparsableReply(t *testing.T) {
	vision := &fakeVision{raw: "sorry, I can't read this image"}
	svc, _, _, _ := newTimetableFixture(vision)

	result, err := svc.AnalyzeTimetable(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.False(t, result.Recognized)
	require.Len(t, result.Events, 2)
}

func TestAnalyzeTimetableFallsBackOnMalformedSlots(t *testing.T) {
	vision := &fakeVision{raw: `{"events":[{"courseName":"X","dayOfWeek":9,"startTime":"25:00","endTime":"26:00"}],"freeSlots":1}`}
	svc, _, _, _ := newTimetableFixture(vision)

	result, err := svc.AnalyzeTimetable(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.False(t, result.Recognized)
}

func TestAnalyzeTimetableSnapshotVersionIncrements(t *testing.T) {
	vision := &fakeVision{raw: `{"events":[{"courseName":"CS","dayOfWeek":1,"startTime":"09:00","endTime":"10:00"}],"freeSlots":3}`}
	svc, _, _, snapshots := newTimetableFixture(vision)

	_, err := svc.AnalyzeTimetable(context.Background(), []byte("a"), "image/png")
	require.NoError(t, err)
	_, err = svc.AnalyzeTimetable(context.Background(), []byte("b"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, 2, snapshots.snapshot.Version)
}

func TestAnalyzeAssignmentPersistsRecognizedAssignment(t *testing.T) {
	vision := &fakeVision{raw: `{"title":"Essay 2","course":"Lit","description":"Compare two novels","dueDate":"2025-03-01T23:59:00Z","priority":"high"}`}
	svc, _, assignments, _ := newTimetableFixture(vision)

	result, err := svc.AnalyzeAssignment(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.True(t, result.Recognized)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, "Essay 2", result.Assignment.Title)
	assert.Equal(t, models.PriorityHigh, result.Assignment.Priority)
	assert.Len(t, assignments.items, 1)
}

func TestAnalyzeAssignmentFallsBackToPlaceholder(t *testing.T) {
	vision := &fakeVision{raw: "not json at all"}
	svc, _, assignments, _ := newTimetableFixture(vision)

	before := time.Now().UTC()
	result, err := svc.AnalyzeAssignment(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.False(t, result.Recognized)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, "Assignment from Upload", result.Assignment.Title)
	assert.Equal(t, models.PriorityMedium, result.Assignment.Priority)
	assert.True(t, result.Assignment.DueDate.After(before.AddDate(0, 0, 6)))
	assert.Len(t, assignments.items, 1)
}

func TestSnapshotIsNilBeforeFirstUpload(t *testing.T) {
	svc, _, _, _ := newTimetableFixture(&fakeVision{})

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}
