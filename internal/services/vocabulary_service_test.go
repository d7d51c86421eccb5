package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddWordsForLesson(t *testing.T) {
	repo := &mockVocabularyRepository{}
	service := NewVocabularyService(repo, zap.NewNop())

	err := service.AddWordsForLesson(context.Background(), 7, 5)

	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	words := repo.inserted[0]
	require.NotEmpty(t, words)
	assert.Equal(t, "Сәлем", words[0].Word)
	assert.Equal(t, 5, words[0].LessonIndex)
	assert.NotEmpty(t, words[0].TranslationEn)
	assert.NotEmpty(t, words[0].TranslationRu)
}

func TestAddWordsForLessonWithoutWords(t *testing.T) {
	repo := &mockVocabularyRepository{}
	service := NewVocabularyService(repo, zap.NewNop())

	// Unit tests carry no word list; completion should still succeed.
	err := service.AddWordsForLesson(context.Background(), 7, 4)

	require.NoError(t, err)
	assert.Empty(t, repo.inserted)
}

func TestAddWordsForLessonUnknownLesson(t *testing.T) {
	service := NewVocabularyService(&mockVocabularyRepository{}, zap.NewNop())

	err := service.AddWordsForLesson(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}
