package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

type chatMessageRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewChatMessageRepository creates a new instance of the ChatMessageRepository interface
func NewChatMessageRepository(db *sql.DB, logger *zap.Logger) *chatMessageRepository {
	return &chatMessageRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores one chat message and returns the generated id
func (r *chatMessageRepository) Insert(ctx context.Context, msg *models.ChatMessage) (int, error) {
	query := `INSERT INTO chat_messages (user_id, role, text) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, msg.UserID, msg.Role, msg.Text)
	if err != nil {
		r.logger.Error("failed to insert chat message", zap.Error(err), zap.Int("user_id", msg.UserID))
		return 0, fmt.Errorf("failed to insert chat message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted message id: %w", err)
	}
	return int(id), nil
}

// ListByUser retrieves the user's chat history in chronological order
func (r *chatMessageRepository) ListByUser(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	query := `
		SELECT id, user_id, role, text, created_at
		FROM chat_messages
		WHERE user_id = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query chat messages", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Text, &msg.CreatedAt); err != nil {
			r.logger.Error("failed to scan chat message", zap.Error(err))
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return messages, nil
}

// CountUserMessages returns how many messages with the given role the user has sent
func (r *chatMessageRepository) CountUserMessages(ctx context.Context, userID int, role models.ChatRole) (int, error) {
	query := `SELECT COUNT(*) FROM chat_messages WHERE user_id = ? AND role = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, role).Scan(&count); err != nil {
		r.logger.Error("failed to count chat messages", zap.Error(err), zap.Int("user_id", userID))
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return count, nil
}

// DeleteByUser removes the user's entire chat history
func (r *chatMessageRepository) DeleteByUser(ctx context.Context, userID int) error {
	query := `DELETE FROM chat_messages WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("failed to delete chat messages", zap.Error(err), zap.Int("user_id", userID))
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return nil
}
