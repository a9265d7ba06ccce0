package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The display order of every listing lives in the generated SQL; these
// pin the ORDER BY terms the API contract depends on.

func TestAssignmentListOrdersByCompletionThenDueDate(t *testing.T) {
	sql, args, err := NewAssignmentRepository(nil).listQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "ORDER BY completed ASC, due_date ASC, created_at DESC")
}

func TestScheduleListOrdersByDayThenStartTime(t *testing.T) {
	sql, args, err := NewScheduleRepository(nil).listQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "ORDER BY day_of_week ASC, start_time ASC")
}

func TestStudySessionListOrdersByMostRecentlyCompleted(t *testing.T) {
	sql, args, err := NewStudySessionRepository(nil).listQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "ORDER BY completed_at DESC")
}

func TestChatListOrdersOldestFirst(t *testing.T) {
	sql, args, err := NewChatRepository(nil).listQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "ORDER BY created_at ASC")
}
