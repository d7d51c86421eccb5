package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

// ErrQuestionNotFound is returned when no placement question matches the lookup
var ErrQuestionNotFound = errors.New("quiz question not found")

type quizQuestionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuizQuestionRepository creates a new instance of the QuizQuestionRepository interface
func NewQuizQuestionRepository(db *sql.DB, logger *zap.Logger) *quizQuestionRepository {
	return &quizQuestionRepository{
		db:     db,
		logger: logger,
	}
}

// ListByCategory retrieves placement questions for one category
func (r *quizQuestionRepository) ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error) {
	query := `
		SELECT id, category, question, options, correct_index, points
		FROM quiz_questions
		WHERE category = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		r.logger.Error("failed to query quiz questions", zap.Error(err), zap.String("category", string(category)))
		return nil, fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuizQuestion
	for rows.Next() {
		question, err := r.scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questions, nil
}

// GetByID retrieves one placement question
func (r *quizQuestionRepository) GetByID(ctx context.Context, id int) (*models.QuizQuestion, error) {
	query := `
		SELECT id, category, question, options, correct_index, points
		FROM quiz_questions
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var question models.QuizQuestion
	var optionsJSON []byte
	err := row.Scan(&question.ID, &question.Category, &question.Question, &optionsJSON, &question.CorrectIndex, &question.Points)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrQuestionNotFound
		}
		r.logger.Error("failed to query quiz question", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to query quiz question: %w", err)
	}

	if err := json.Unmarshal(optionsJSON, &question.Options); err != nil {
		return nil, fmt.Errorf("failed to decode question options: %w", err)
	}
	return &question, nil
}

// Create inserts a placement question and returns the generated id
func (r *quizQuestionRepository) Create(ctx context.Context, question *models.QuizQuestion) (int, error) {
	optionsJSON, err := json.Marshal(question.Options)
	if err != nil {
		return 0, fmt.Errorf("failed to encode question options: %w", err)
	}

	query := `
		INSERT INTO quiz_questions (category, question, options, correct_index, points)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, question.Category, question.Question, optionsJSON, question.CorrectIndex, question.Points)
	if err != nil {
		r.logger.Error("failed to insert quiz question", zap.Error(err))
		return 0, fmt.Errorf("failed to insert quiz question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted question id: %w", err)
	}
	return int(id), nil
}

// Update replaces a placement question
func (r *quizQuestionRepository) Update(ctx context.Context, question *models.QuizQuestion) error {
	optionsJSON, err := json.Marshal(question.Options)
	if err != nil {
		return fmt.Errorf("failed to encode question options: %w", err)
	}

	query := `
		UPDATE quiz_questions
		SET category = ?, question = ?, options = ?, correct_index = ?, points = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, question.Category, question.Question, optionsJSON, question.CorrectIndex, question.Points, question.ID)
	if err != nil {
		r.logger.Error("failed to update quiz question", zap.Error(err), zap.Int("id", question.ID))
		return fmt.Errorf("failed to update quiz question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		// Either missing or unchanged; distinguish with a lookup
		if _, err := r.GetByID(ctx, question.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a placement question
func (r *quizQuestionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM quiz_questions WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete quiz question", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete quiz question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *quizQuestionRepository) scanQuestion(rows *sql.Rows) (*models.QuizQuestion, error) {
	var question models.QuizQuestion
	var optionsJSON []byte
	if err := rows.Scan(&question.ID, &question.Category, &question.Question, &optionsJSON, &question.CorrectIndex, &question.Points); err != nil {
		r.logger.Error("failed to scan quiz question", zap.Error(err))
		return nil, fmt.Errorf("failed to scan quiz question: %w", err)
	}
	if err := json.Unmarshal(optionsJSON, &question.Options); err != nil {
		return nil, fmt.Errorf("failed to decode question options: %w", err)
	}
	return &question, nil
}
