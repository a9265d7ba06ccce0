package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/studyhub/internal/app/models"
)

func TestCreateScheduleEventAppliesDefaultColor(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "CS101",
		"dayOfWeek":  1,
		"startTime":  "09:00",
		"endTime":    "10:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.ScheduleEvent
	decodeBody(t, rec, &created)
	assert.Equal(t, models.DefaultColor, created.Color)
	assert.Equal(t, 1, created.DayOfWeek)
}

func TestCreateScheduleEventCoercesNumericStringDay(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "Physics",
		"dayOfWeek":  "5",
		"startTime":  "13:00",
		"endTime":    "14:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.ScheduleEvent
	decodeBody(t, rec, &created)
	assert.Equal(t, 5, created.DayOfWeek)
}

func TestCreateScheduleEventAcceptsSunday(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "Study group",
		"dayOfWeek":  0,
		"startTime":  "10:00",
		"endTime":    "11:00",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateScheduleEventRejectsBadTime(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "CS101",
		"dayOfWeek":  1,
		"startTime":  "9:00",
		"endTime":    "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateScheduleEventRejectsOutOfRangeDay(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "CS101",
		"dayOfWeek":  7,
		"startTime":  "09:00",
		"endTime":    "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleEventPatchAndDelete(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/schedule", map[string]interface{}{
		"courseName": "CS101",
		"dayOfWeek":  1,
		"startTime":  "09:00",
		"endTime":    "10:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.ScheduleEvent
	decodeBody(t, rec, &created)

	rec = f.do(t, http.MethodPatch, "/api/schedule/"+created.ID, map[string]interface{}{
		"startTime": "10:00",
		"endTime":   "11:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var patched models.ScheduleEvent
	decodeBody(t, rec, &patched)
	assert.Equal(t, "10:00", patched.StartTime)
	assert.Equal(t, "CS101", patched.CourseName)

	rec = f.do(t, http.MethodDelete, "/api/schedule/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/schedule/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
