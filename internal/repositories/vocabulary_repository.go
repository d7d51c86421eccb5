package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

type vocabularyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVocabularyRepository creates a new instance of the VocabularyRepository interface
func NewVocabularyRepository(db *sql.DB, logger *zap.Logger) *vocabularyRepository {
	return &vocabularyRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser retrieves the user's learned words ordered by lesson
func (r *vocabularyRepository) ListByUser(ctx context.Context, userID int) ([]models.VocabularyEntry, error) {
	query := `
		SELECT id, word, translation_en, translation_ru, lesson_index
		FROM vocabulary_entries
		WHERE user_id = ?
		ORDER BY lesson_index, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query vocabulary", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to query vocabulary: %w", err)
	}
	defer rows.Close()

	var entries []models.VocabularyEntry
	for rows.Next() {
		var entry models.VocabularyEntry
		if err := rows.Scan(&entry.ID, &entry.Word, &entry.TranslationEn, &entry.TranslationRu, &entry.LessonIndex); err != nil {
			r.logger.Error("failed to scan vocabulary entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan vocabulary entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// InsertIgnoreDuplicates adds the entries for the user, silently skipping words
// the user already has. The unique index on (user_id, word) uses a
// case-insensitive collation, so Сәлем and сәлем count as the same word.
func (r *vocabularyRepository) InsertIgnoreDuplicates(ctx context.Context, userID int, entries []models.VocabularyEntry) error {
	if len(entries) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*5)
	for _, entry := range entries {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
		args = append(args, userID, entry.Word, entry.TranslationEn, entry.TranslationRu, entry.LessonIndex)
	}

	query := fmt.Sprintf(`
		INSERT IGNORE INTO vocabulary_entries (user_id, word, translation_en, translation_ru, lesson_index)
		VALUES %s
	`, strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to insert vocabulary entries", zap.Error(err), zap.Int("user_id", userID))
		return fmt.Errorf("failed to insert vocabulary entries: %w", err)
	}
	return nil
}
