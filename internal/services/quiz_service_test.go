package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

func validQuestion() *models.QuizQuestion {
	return &models.QuizQuestion{
		Category:     "general",
		Question:     "What does Сәлем mean?",
		Options:      []string{"Hello", "Goodbye", "Thanks"},
		CorrectIndex: 0,
	}
}

func TestCreateQuizQuestion(t *testing.T) {
	repo := &mockQuizQuestionRepository{createdID: 3}
	service := NewQuizService(repo, zap.NewNop())

	question := validQuestion()
	id, err := service.Create(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.Equal(t, 1, question.Points, "points default to 1")
}

func TestCreateQuizQuestionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *models.QuizQuestion)
	}{
		{name: "empty question", mutate: func(q *models.QuizQuestion) { q.Question = "" }},
		{name: "one option", mutate: func(q *models.QuizQuestion) { q.Options = []string{"Hello"} }},
		{name: "correct index out of range", mutate: func(q *models.QuizQuestion) { q.CorrectIndex = 3 }},
		{name: "negative correct index", mutate: func(q *models.QuizQuestion) { q.CorrectIndex = -1 }},
		{name: "unknown category", mutate: func(q *models.QuizQuestion) { q.Category = "trivia" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQuizService(&mockQuizQuestionRepository{}, zap.NewNop())

			question := validQuestion()
			tt.mutate(question)
			_, err := service.Create(context.Background(), question)
			assert.Error(t, err)
		})
	}
}

func TestListQuizQuestionsByCategory(t *testing.T) {
	repo := &mockQuizQuestionRepository{questions: []models.QuizQuestion{*validQuestion()}}
	service := NewQuizService(repo, zap.NewNop())

	questions, err := service.ListByCategory(context.Background(), models.AnswerCategoryGeneral)

	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestListQuizQuestionsUnknownCategory(t *testing.T) {
	service := NewQuizService(&mockQuizQuestionRepository{}, zap.NewNop())

	_, err := service.ListByCategory(context.Background(), "trivia")
	assert.Error(t, err)
}

func TestDeleteQuizQuestion(t *testing.T) {
	repo := &mockQuizQuestionRepository{}
	service := NewQuizService(repo, zap.NewNop())

	require.NoError(t, service.Delete(context.Background(), 5))
	assert.Equal(t, []int{5}, repo.deleted)
}
