package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/pkg/logger"
)

// StudySessionRepository handles study session database operations.
// Sessions are append-only; there is no update or delete.
type StudySessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudySessionRepository creates a new StudySessionRepository
func NewStudySessionRepository(db *pgxpool.Pool) *StudySessionRepository {
	return &StudySessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studySessionColumns = []string{"id", "duration", "session_type", "completed_at"}

func scanStudySession(row pgx.Row) (*models.StudySession, error) {
	s := &models.StudySession{}
	err := row.Scan(&s.ID, &s.Duration, &s.SessionType, &s.CompletedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new study session, assigning its id
func (r *StudySessionRepository) Create(ctx context.Context, session *models.StudySession) (*models.StudySession, error) {
	session.ID = uuid.NewString()

	sql, args, err := r.sb.Insert("study_sessions").
		Columns(studySessionColumns...).
		Values(session.ID, session.Duration, session.SessionType, session.CompletedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create study session SQL")
		return nil, fmt.Errorf("failed to build create study session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create study session query")
		return nil, fmt.Errorf("error creating study session: %w", err)
	}

	return session, nil
}

// listQuery builds the list statement, most recently completed first
func (r *StudySessionRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select(studySessionColumns...).
		From("study_sessions").
		OrderBy("completed_at DESC").
		ToSql()
}

// List retrieves all study sessions
func (r *StudySessionRepository) List(ctx context.Context) ([]*models.StudySession, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list study sessions SQL")
		return nil, fmt.Errorf("failed to build list study sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list study sessions query")
		return nil, fmt.Errorf("error querying study sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.StudySession{}
	for rows.Next() {
		session, err := scanStudySession(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning study session row during list")
			return nil, fmt.Errorf("error scanning study session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating study session rows")
		return nil, fmt.Errorf("error iterating study session rows: %w", err)
	}

	return sessions, nil
}
