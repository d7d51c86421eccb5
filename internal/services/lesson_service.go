package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

// LessonService exposes the course map and the lesson completion flow
type LessonService interface {
	// Method List retrieves all course nodes with the user's unlock state.
	List(ctx context.Context, userID int) (*models.LessonListResponse, error)
	// Method Complete processes a finished lesson: the lesson's words join
	// the user's vocabulary, then the next lesson unlocks.
	//
	// Safe to call repeatedly for the same lesson.
	Complete(ctx context.Context, userID, lessonID int) (*models.ProgressResponse, error)
}

type lessonService struct {
	users      UserReader
	vocabulary VocabularyService
	progress   ProgressService
	logger     *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(users UserReader, vocabulary VocabularyService, progress ProgressService, logger *zap.Logger) LessonService {
	return &lessonService{
		users:      users,
		vocabulary: vocabulary,
		progress:   progress,
		logger:     logger,
	}
}

func (s *lessonService) List(ctx context.Context, userID int) (*models.LessonListResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	nodes := course.AllNodes()
	lessons := make([]models.LessonListItem, 0, len(nodes))
	for _, node := range nodes {
		lessons = append(lessons, models.LessonListItem{
			ID:           node.ID,
			UnitIndex:    node.UnitIndex,
			IsTest:       node.IsTest,
			DisplayTitle: node.DisplayTitle(),
			Unlocked:     node.ID <= user.NumLevel,
		})
	}
	return &models.LessonListResponse{Lessons: lessons, NumLevel: user.NumLevel}, nil
}

func (s *lessonService) Complete(ctx context.Context, userID, lessonID int) (*models.ProgressResponse, error) {
	if err := s.vocabulary.AddWordsForLesson(ctx, userID, lessonID); err != nil {
		return nil, err
	}
	return s.progress.AdvanceLesson(ctx, userID, lessonID)
}
