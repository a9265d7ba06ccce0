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

// ScheduleRepository handles schedule event database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var scheduleColumns = []string{"id", "course_name", "day_of_week", "start_time", "end_time", "location", "color", "created_at"}

func scanScheduleEvent(row pgx.Row) (*models.ScheduleEvent, error) {
	e := &models.ScheduleEvent{}
	err := row.Scan(&e.ID, &e.CourseName, &e.DayOfWeek, &e.StartTime, &e.EndTime, &e.Location, &e.Color, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new schedule event, assigning its id and creation timestamp
func (r *ScheduleRepository) Create(ctx context.Context, event *models.ScheduleEvent) (*models.ScheduleEvent, error) {
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("schedule_events").
		Columns(scheduleColumns...).
		Values(event.ID, event.CourseName, event.DayOfWeek, event.StartTime,
			event.EndTime, event.Location, event.Color, event.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create schedule event SQL")
		return nil, fmt.Errorf("failed to build create schedule event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create schedule event query")
		return nil, fmt.Errorf("error creating schedule event: %w", err)
	}

	return event, nil
}

// GetByID retrieves a schedule event by ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedule_events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get schedule event SQL")
		return nil, fmt.Errorf("failed to build get schedule event query: %w", err)
	}

	event, err := scanScheduleEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("eventID", id).Msg("Error scanning schedule event row")
		return nil, fmt.Errorf("error getting schedule event by ID: %w", err)
	}

	return event, nil
}

// listQuery builds the list statement ordered by day of week, then start time
func (r *ScheduleRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select(scheduleColumns...).
		From("schedule_events").
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
}

// List retrieves all schedule events in week order
func (r *ScheduleRepository) List(ctx context.Context) ([]*models.ScheduleEvent, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list schedule events SQL")
		return nil, fmt.Errorf("failed to build list schedule events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schedule events query")
		return nil, fmt.Errorf("error querying schedule events: %w", err)
	}
	defer rows.Close()

	events := []*models.ScheduleEvent{}
	for rows.Next() {
		event, err := scanScheduleEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning schedule event row during list")
			return nil, fmt.Errorf("error scanning schedule event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating schedule event rows")
		return nil, fmt.Errorf("error iterating schedule event rows: %w", err)
	}

	return events, nil
}

// Update writes the full record back; the service merges partial updates first
func (r *ScheduleRepository) Update(ctx context.Context, event *models.ScheduleEvent) error {
	sql, args, err := r.sb.Update("schedule_events").
		SetMap(map[string]interface{}{
			"course_name": event.CourseName,
			"day_of_week": event.DayOfWeek,
			"start_time":  event.StartTime,
			"end_time":    event.EndTime,
			"location":    event.Location,
			"color":       event.Color,
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update schedule event SQL")
		return fmt.Errorf("failed to build update schedule event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Error executing update schedule event query")
		return fmt.Errorf("error updating schedule event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete deletes a schedule event by ID
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("schedule_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete schedule event SQL")
		return fmt.Errorf("failed to build delete schedule event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing delete schedule event query")
		return fmt.Errorf("error deleting schedule event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
