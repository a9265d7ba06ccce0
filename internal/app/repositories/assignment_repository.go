package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/pkg/logger"
)

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var assignmentColumns = []string{"id", "title", "course", "description", "due_date", "priority", "completed", "created_at"}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.Title, &a.Course, &a.Description, &a.DueDate, &a.Priority, &a.Completed, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new assignment, assigning its id and creation timestamp
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	assignment.ID = uuid.NewString()
	assignment.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("assignments").
		Columns(assignmentColumns...).
		Values(assignment.ID, assignment.Title, assignment.Course, assignment.Description,
			assignment.DueDate, assignment.Priority, assignment.Completed, assignment.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create assignment SQL")
		return nil, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create assignment query")
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}

	return assignment, nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns...).
		From("assignments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get assignment SQL")
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	assignment, err := scanAssignment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("assignmentID", id).Msg("Error scanning assignment row")
		return nil, fmt.Errorf("error getting assignment by ID: %w", err)
	}

	return assignment, nil
}

// listQuery builds the list statement, incomplete first, nearest due date
// first, newest created breaking ties
func (r *AssignmentRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select(assignmentColumns...).
		From("assignments").
		OrderBy("completed ASC", "due_date ASC", "created_at DESC").
		ToSql()
}

// List retrieves all assignments in display order
func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list assignments SQL")
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assignments query")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning assignment row during list")
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating assignment rows")
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// Update writes the full record back; the service merges partial updates first
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	sql, args, err := r.sb.Update("assignments").
		SetMap(map[string]interface{}{
			"title":       assignment.Title,
			"course":      assignment.Course,
			"description": assignment.Description,
			"due_date":    assignment.DueDate,
			"priority":    assignment.Priority,
			"completed":   assignment.Completed,
		}).
		Where(squirrel.Eq{"id": assignment.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update assignment SQL")
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("assignmentID", assignment.ID).Msg("Error executing update assignment query")
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete deletes an assignment by ID
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete assignment SQL")
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("assignmentID", id).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
