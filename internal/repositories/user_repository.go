// Package repositories contains the MySQL data access layer
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

// ErrUserNotFound is returned when no user matches the lookup
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when the username is already taken
var ErrDuplicateUsername = errors.New("username already taken")

const userColumns = `id, username, password_hash, full_name, age, num_level, current_unit, level,
		reason_for_studying, study_time_minutes, start_option, onboarding_completed,
		test_general_correct, test_special_correct`

type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new instance of the UserRepository interface
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user and returns the generated id
func (r *userRepository) Create(ctx context.Context, user *models.User) (int, error) {
	query := `
		INSERT INTO users (username, password_hash, full_name, age, num_level, current_unit, level,
			reason_for_studying, study_time_minutes, start_option, onboarding_completed,
			test_general_correct, test_special_correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.Age,
		user.NumLevel,
		user.CurrentUnit,
		user.Level,
		user.ReasonForStudying,
		user.StudyTimeMinutes,
		user.StartOption,
		user.OnboardingCompleted,
		user.TestGeneralCorrect,
		user.TestSpecialCorrect,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, ErrDuplicateUsername
		}
		r.logger.Error("failed to insert user", zap.Error(err))
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	return int(id), nil
}

// GetByID retrieves a user by id
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = ?`, userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = ?`, userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Age,
		&user.NumLevel,
		&user.CurrentUnit,
		&user.Level,
		&user.ReasonForStudying,
		&user.StudyTimeMinutes,
		&user.StartOption,
		&user.OnboardingCompleted,
		&user.TestGeneralCorrect,
		&user.TestSpecialCorrect,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		r.logger.Error("failed to query user", zap.Error(err))
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of the update request.
// A request with no fields set is a no-op.
func (r *userRepository) UpdateProfile(ctx context.Context, id int, req models.ProfileUpdateRequest) error {
	// Column list is built from the fields actually present in the request
	var setClauses []string
	var args []interface{}

	if req.FullName != nil {
		setClauses = append(setClauses, "full_name = ?")
		args = append(args, *req.FullName)
	}
	if req.Age != nil {
		setClauses = append(setClauses, "age = ?")
		args = append(args, *req.Age)
	}
	if req.Level != nil {
		setClauses = append(setClauses, "level = ?")
		args = append(args, *req.Level)
	}
	if req.ReasonForStudying != nil {
		setClauses = append(setClauses, "reason_for_studying = ?")
		args = append(args, *req.ReasonForStudying)
	}
	if req.StudyTimeMinutes != nil {
		setClauses = append(setClauses, "study_time_minutes = ?")
		args = append(args, *req.StudyTimeMinutes)
	}
	if req.StartOption != nil {
		setClauses = append(setClauses, "start_option = ?")
		args = append(args, *req.StartOption)
	}
	if req.OnboardingCompleted != nil {
		setClauses = append(setClauses, "onboarding_completed = ?")
		args = append(args, *req.OnboardingCompleted)
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = ?`, strings.Join(setClauses, ", "))
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to update user profile", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}

// UpdateProgress sets the user's lesson position
func (r *userRepository) UpdateProgress(ctx context.Context, id, numLevel, currentUnit int) error {
	query := `UPDATE users SET num_level = ?, current_unit = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, numLevel, currentUnit, id); err != nil {
		r.logger.Error("failed to update user progress", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update user progress: %w", err)
	}
	return nil
}

// IncrementCorrectAnswers bumps the placement counter for the given category
func (r *userRepository) IncrementCorrectAnswers(ctx context.Context, id int, category models.AnswerCategory) error {
	var column string
	switch category {
	case models.AnswerCategoryGeneral:
		column = "test_general_correct"
	case models.AnswerCategorySpecialized:
		column = "test_special_correct"
	default:
		return fmt.Errorf("invalid answer category: %s", category)
	}

	query := fmt.Sprintf(`UPDATE users SET %s = %s + 1 WHERE id = ?`, column, column)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("failed to increment answer counter", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to increment answer counter: %w", err)
	}
	return nil
}

// SetPlacementResult stores the level determined by the placement test
// and resets the counters so a retake starts from zero
func (r *userRepository) SetPlacementResult(ctx context.Context, id int, level models.KazakhLevel) error {
	query := `UPDATE users SET level = ?, test_general_correct = 0, test_special_correct = 0 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, level, id); err != nil {
		r.logger.Error("failed to set placement result", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to set placement result: %w", err)
	}
	return nil
}
