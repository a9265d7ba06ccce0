package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/pkg/logger"
)

// ChatRepository handles chat message database operations. Messages are
// append-only; the only destructive operation is clearing the whole history.
type ChatRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var chatColumns = []string{"id", "role", "content", "created_at"}

func scanChatMessage(row pgx.Row) (*models.ChatMessage, error) {
	m := &models.ChatMessage{}
	err := row.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create appends a new chat message, assigning its id and creation timestamp
func (r *ChatRepository) Create(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	message.ID = uuid.NewString()
	message.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("chat_messages").
		Columns(chatColumns...).
		Values(message.ID, message.Role, message.Content, message.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create chat message SQL")
		return nil, fmt.Errorf("failed to build create chat message query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create chat message query")
		return nil, fmt.Errorf("error creating chat message: %w", err)
	}

	return message, nil
}

// listQuery builds the history statement, oldest first
func (r *ChatRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select(chatColumns...).
		From("chat_messages").
		OrderBy("created_at ASC").
		ToSql()
}

// List retrieves the full conversation history
func (r *ChatRepository) List(ctx context.Context) ([]*models.ChatMessage, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list chat messages SQL")
		return nil, fmt.Errorf("failed to build list chat messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list chat messages query")
		return nil, fmt.Errorf("error querying chat messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ChatMessage{}
	for rows.Next() {
		message, err := scanChatMessage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning chat message row during list")
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating chat message rows")
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}

	return messages, nil
}

// Clear deletes all chat messages unconditionally
func (r *ChatRepository) Clear(ctx context.Context) error {
	sql, args, err := r.sb.Delete("chat_messages").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building clear chat history SQL")
		return fmt.Errorf("failed to build clear chat history query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing clear chat history query")
		return fmt.Errorf("error clearing chat history: %w", err)
	}

	return nil
}
