package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

// setupMockDB creates a mock database and a test logger
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *zap.Logger, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, logger, cleanup
}

func userRows(id int, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "password_hash", "full_name", "age", "num_level", "current_unit", "level",
		"reason_for_studying", "study_time_minutes", "start_option", "onboarding_completed",
		"test_general_correct", "test_special_correct",
	}).AddRow(id, username, "hash", "Aliya", 19, 3, 1, "beginner", "travel", 15, "scratch", true, 2, 1)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db, logger)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), &models.User{
		Username:     "aliya",
		PasswordHash: "hash",
		NumLevel:     1,
		CurrentUnit:  1,
		Level:        models.LevelBeginner,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \?`).
					WithArgs("aliya").
					WillReturnRows(userRows(7, "aliya"))
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \?`).
					WithArgs("aliya").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupMockDB(t)
			defer cleanup()

			repo := NewUserRepository(db, logger)
			tt.setupMock(mock)

			user, err := repo.GetByUsername(context.Background(), "aliya")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, user.ID)
				assert.Equal(t, "aliya", user.Username)
				require.NotNil(t, user.Age)
				assert.Equal(t, 19, *user.Age)
				assert.Equal(t, models.LevelBeginner, user.Level)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db, logger)

	fullName := "Aliya K"
	age := 20
	mock.ExpectExec(`UPDATE users SET full_name = \?, age = \? WHERE id = \?`).
		WithArgs(fullName, age, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdateRequest{
		FullName: &fullName,
		Age:      &age,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfileNoFields(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db, logger)

	// No fields set means no query at all
	err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdateRequest{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_IncrementCorrectAnswers(t *testing.T) {
	tests := []struct {
		name          string
		category      models.AnswerCategory
		expectedQuery string
		expectedError bool
	}{
		{
			name:          "general",
			category:      models.AnswerCategoryGeneral,
			expectedQuery: `UPDATE users SET test_general_correct = test_general_correct \+ 1 WHERE id = \?`,
		},
		{
			name:          "specialized",
			category:      models.AnswerCategorySpecialized,
			expectedQuery: `UPDATE users SET test_special_correct = test_special_correct \+ 1 WHERE id = \?`,
		},
		{
			name:          "invalid category",
			category:      models.AnswerCategory("bogus"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupMockDB(t)
			defer cleanup()

			repo := NewUserRepository(db, logger)
			if !tt.expectedError {
				mock.ExpectExec(tt.expectedQuery).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.IncrementCorrectAnswers(context.Background(), 7, tt.category)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatMessageRepository_CountUserMessages(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewChatMessageRepository(db, logger)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM chat_messages WHERE user_id = \? AND role = \?`).
		WithArgs(7, models.ChatRoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountUserMessages(context.Background(), 7, models.ChatRoleUser)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatMessageRepository_ListByUser(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewChatMessageRepository(db, logger)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "role", "text", "created_at"}).
		AddRow(1, 7, "user", "Сәлем қалай айтамын?", now).
		AddRow(2, 7, "assistant", "Сәлем!", now)
	mock.ExpectQuery(`SELECT id, user_id, role, text, created_at FROM chat_messages WHERE user_id = \? ORDER BY id`).
		WithArgs(7).
		WillReturnRows(rows)

	messages, err := repo.ListByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.ChatRoleUser, messages[0].Role)
	assert.Equal(t, models.ChatRoleAssistant, messages[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepository_InsertIgnoreDuplicates(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewVocabularyRepository(db, logger)

	mock.ExpectExec(`INSERT IGNORE INTO vocabulary_entries`).
		WithArgs(7, "мен", "I", "я", 8, 7, "сен", "you (informal)", "ты", 8).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.InsertIgnoreDuplicates(context.Background(), 7, []models.VocabularyEntry{
		{Word: "мен", TranslationEn: "I", TranslationRu: "я", LessonIndex: 8},
		{Word: "сен", TranslationEn: "you (informal)", TranslationRu: "ты", LessonIndex: 8},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepository_InsertIgnoreDuplicatesEmpty(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewVocabularyRepository(db, logger)

	err := repo.InsertIgnoreDuplicates(context.Background(), 7, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizQuestionRepository_ListByCategory(t *testing.T) {
	db, mock, logger, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewQuizQuestionRepository(db, logger)

	rows := sqlmock.NewRows([]string{"id", "category", "question", "options", "correct_index", "points"}).
		AddRow(1, "general", "What does Сәлем mean?", `["Hello","Goodbye"]`, 0, 1).
		AddRow(2, "general", "What does мен mean?", `["I","You"]`, 0, 1)
	mock.ExpectQuery(`SELECT id, category, question, options, correct_index, points FROM quiz_questions WHERE category = \? ORDER BY id`).
		WithArgs(models.AnswerCategoryGeneral).
		WillReturnRows(rows)

	questions, err := repo.ListByCategory(context.Background(), models.AnswerCategoryGeneral)

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, []string{"Hello", "Goodbye"}, questions[0].Options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizQuestionRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		affected      int64
		expectedError error
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, expectedError: ErrQuestionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupMockDB(t)
			defer cleanup()

			repo := NewQuizQuestionRepository(db, logger)
			mock.ExpectExec(`DELETE FROM quiz_questions WHERE id = \?`).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Delete(context.Background(), 3)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
