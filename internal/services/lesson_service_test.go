package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

func TestListLessons(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 7, NumLevel: 3}}
	service := NewLessonService(users, NewVocabularyService(&mockVocabularyRepository{}, zap.NewNop()),
		NewProgressService(users, zap.NewNop()), zap.NewNop())

	resp, err := service.List(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.NumLevel)
	require.Len(t, resp.Lessons, course.TotalNodes)
	assert.True(t, resp.Lessons[0].Unlocked)
	assert.True(t, resp.Lessons[2].Unlocked)
	assert.False(t, resp.Lessons[3].Unlocked)
}

// A brand-new user completes lesson 1: their vocabulary receives the lesson's
// words exactly once and lesson 2 unlocks.
func TestCompleteFirstLesson(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 7, NumLevel: 1, CurrentUnit: 1}}
	vocabRepo := &mockVocabularyRepository{}
	service := NewLessonService(users,
		NewVocabularyService(vocabRepo, zap.NewNop()),
		NewProgressService(users, zap.NewNop()), zap.NewNop())

	progress, err := service.Complete(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.NumLevel)
	require.Len(t, vocabRepo.inserted, 1)
	assert.NotEmpty(t, vocabRepo.inserted[0])
}

func TestCompleteUnknownLesson(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 7, NumLevel: 1}}
	service := NewLessonService(users,
		NewVocabularyService(&mockVocabularyRepository{}, zap.NewNop()),
		NewProgressService(users, zap.NewNop()), zap.NewNop())

	_, err := service.Complete(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}
