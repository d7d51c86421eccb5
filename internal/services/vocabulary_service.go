package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

// VocabularyRepository is the interface that wraps methods for VocabularyEntry table data access
type VocabularyRepository interface {
	// Method ListByUser retrieves the user's learned words ordered by lesson.
	ListByUser(ctx context.Context, userID int) ([]models.VocabularyEntry, error)
	// Method InsertIgnoreDuplicates adds entries for the user, silently
	// skipping words the user already has.
	InsertIgnoreDuplicates(ctx context.Context, userID int, entries []models.VocabularyEntry) error
}

// VocabularyService maintains each user's learned-word list
type VocabularyService interface {
	// Method List retrieves the user's learned words ordered by lesson.
	List(ctx context.Context, userID int) ([]models.VocabularyEntry, error)
	// Method AddWordsForLesson records the static word list of a completed
	// lesson. Repeating a lesson adds nothing, so completion can be retried.
	AddWordsForLesson(ctx context.Context, userID, lessonID int) error
}

type vocabularyService struct {
	repo   VocabularyRepository
	logger *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(repo VocabularyRepository, logger *zap.Logger) VocabularyService {
	return &vocabularyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *vocabularyService) List(ctx context.Context, userID int) ([]models.VocabularyEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *vocabularyService) AddWordsForLesson(ctx context.Context, userID, lessonID int) error {
	if _, ok := course.NodeByID(lessonID); !ok {
		return ErrLessonNotFound
	}

	words := course.WordsForLesson(lessonID)
	if len(words) == 0 {
		return nil
	}

	entries := make([]models.VocabularyEntry, 0, len(words))
	for _, word := range words {
		entries = append(entries, models.VocabularyEntry{
			Word:          word.Kazakh,
			TranslationEn: word.En,
			TranslationRu: word.Ru,
			LessonIndex:   lessonID,
		})
	}
	return s.repo.InsertIgnoreDuplicates(ctx, userID, entries)
}
