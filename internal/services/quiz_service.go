package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

// QuizQuestionRepository is the interface that wraps methods for QuizQuestion table data access
type QuizQuestionRepository interface {
	// Method ListByCategory retrieves questions for one answer category.
	ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error)
	// Method Create inserts a new question and returns the generated id.
	Create(ctx context.Context, question *models.QuizQuestion) (int, error)
	// Method Delete removes a question by id.
	//
	// If question with such id does not exist, the repositories.ErrQuestionNotFound error will be returned.
	Delete(ctx context.Context, id int) error
}

// QuizService manages the admin-authored question bank used by the placement
// test and practice screens.
type QuizService interface {
	// Method ListByCategory retrieves questions for one answer category.
	ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error)
	// Method Create validates and stores a new question.
	Create(ctx context.Context, question *models.QuizQuestion) (int, error)
	// Method Delete removes a question by id.
	Delete(ctx context.Context, id int) error
}

type quizService struct {
	repo   QuizQuestionRepository
	logger *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(repo QuizQuestionRepository, logger *zap.Logger) QuizService {
	return &quizService{
		repo:   repo,
		logger: logger,
	}
}

func (s *quizService) ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error) {
	if category != models.AnswerCategoryGeneral && category != models.AnswerCategorySpecialized {
		return nil, fmt.Errorf("unknown question category: %s", category)
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *quizService) Create(ctx context.Context, question *models.QuizQuestion) (int, error) {
	if question.Question == "" {
		return 0, fmt.Errorf("question text is required")
	}
	if len(question.Options) < 2 {
		return 0, fmt.Errorf("a question needs at least 2 options")
	}
	if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
		return 0, fmt.Errorf("correct_index must point at one of the options")
	}
	if question.Category != string(models.AnswerCategoryGeneral) && question.Category != string(models.AnswerCategorySpecialized) {
		return 0, fmt.Errorf("unknown question category: %s", question.Category)
	}
	if question.Points <= 0 {
		question.Points = 1
	}

	id, err := s.repo.Create(ctx, question)
	if err != nil {
		return 0, err
	}
	s.logger.Info("quiz question created", zap.Int("id", id), zap.String("category", question.Category))
	return id, nil
}

func (s *quizService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
