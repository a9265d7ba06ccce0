package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/pkg/logger"
)

// timetableRowID is the well-known id of the single snapshot row
const timetableRowID = 1

// TimetableRepository persists the metadata of the latest timetable upload
// as a single versioned row, overwritten wholesale on each upload.
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retrieves the current snapshot. ErrNotFound before the first upload.
func (r *TimetableRepository) Get(ctx context.Context) (*models.TimetableSnapshot, error) {
	sql, args, err := r.sb.Select("id", "uploaded_at", "total_classes", "free_slots", "version").
		From("timetable_snapshots").
		Where(squirrel.Eq{"id": timetableRowID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get timetable snapshot SQL")
		return nil, fmt.Errorf("failed to build get timetable snapshot query: %w", err)
	}

	s := &models.TimetableSnapshot{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.UploadedAt, &s.TotalClasses, &s.FreeSlots, &s.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning timetable snapshot row")
		return nil, fmt.Errorf("error getting timetable snapshot: %w", err)
	}

	return s, nil
}

// Save upserts the snapshot row, bumping its version on every overwrite
func (r *TimetableRepository) Save(ctx context.Context, snapshot *models.TimetableSnapshot) (*models.TimetableSnapshot, error) {
	sql, args, err := r.sb.Insert("timetable_snapshots").
		Columns("id", "uploaded_at", "total_classes", "free_slots", "version").
		Values(timetableRowID, snapshot.UploadedAt, snapshot.TotalClasses, snapshot.FreeSlots, 1).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			uploaded_at = EXCLUDED.uploaded_at,
			total_classes = EXCLUDED.total_classes,
			free_slots = EXCLUDED.free_slots,
			version = timetable_snapshots.version + 1
		RETURNING version`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save timetable snapshot SQL")
		return nil, fmt.Errorf("failed to build save timetable snapshot query: %w", err)
	}

	snapshot.ID = timetableRowID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&snapshot.Version); err != nil {
		logger.Error().Err(err).Msg("Error executing save timetable snapshot query")
		return nil, fmt.Errorf("error saving timetable snapshot: %w", err)
	}

	return snapshot, nil
}
