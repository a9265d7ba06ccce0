package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/studyhub/internal/pkg/apperrors"
)

// ErrNotFound is returned by id-based lookups that miss. The API layer is
// responsible for turning it into a 404.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	AssignmentRepository   *AssignmentRepository
	ScheduleRepository     *ScheduleRepository
	StudySessionRepository *StudySessionRepository
	ChatRepository         *ChatRepository
	TimetableRepository    *TimetableRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AssignmentRepository:   NewAssignmentRepository(db),
		ScheduleRepository:     NewScheduleRepository(db),
		StudySessionRepository: NewStudySessionRepository(db),
		ChatRepository:         NewChatRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
	}
}
