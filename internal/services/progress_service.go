package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

// ProgressRepository is the interface that wraps the User table access the progress service needs
type ProgressRepository interface {
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, the error will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
	// Method UpdateProgress stores the user's lesson progression.
	//
	// "numLevel" is the highest unlocked lesson; "currentUnit" is the unit that lesson belongs to.
	UpdateProgress(ctx context.Context, id, numLevel, currentUnit int) error
	// Method IncrementCorrectAnswers bumps one of the placement test counters.
	//
	// "category" selects the counter. Please reference models.AnswerCategoryGeneral and
	// models.AnswerCategorySpecialized constants for correct parameters values.
	IncrementCorrectAnswers(ctx context.Context, id int, category models.AnswerCategory) error
	// Method SetPlacementResult stores the assigned level and resets the test counters.
	SetPlacementResult(ctx context.Context, id int, level models.KazakhLevel) error
	// Method UpdateProfile applies the non-nil fields of the update request.
	UpdateProfile(ctx context.Context, id int, req models.ProfileUpdateRequest) error
}

// Placement scoring: general questions carry 70% of the score over a ceiling
// of 5, specialized questions 30% over a ceiling of 3.
const (
	placementGeneralCap     = 5
	placementSpecializedCap = 3
	placementGeneralWeight  = 0.7
	placementSpecialWeight  = 0.3

	advancedThreshold     = 0.70
	intermediateThreshold = 0.40
)

// ProgressService tracks lesson progression and the placement test
type ProgressService interface {
	// Method Get retrieves the user's stored progression.
	Get(ctx context.Context, userID int) (*models.ProgressResponse, error)
	// Method AdvanceLesson unlocks the lesson after the one just completed.
	//
	// Progress never moves backwards and completing an already passed lesson
	// changes nothing, so the client can safely resubmit completions.
	AdvanceLesson(ctx context.Context, userID, completedID int) (*models.ProgressResponse, error)
	// Method SyncProgress merges a progress value reported by the client with
	// the stored one and returns the resolved value.
	//
	// Resolution takes the larger of the two, clamped to the course bounds.
	// The merge is commutative, so devices can sync in any order.
	SyncProgress(ctx context.Context, userID, clientLevel int) (*models.ProgressResponse, error)
	// Method RecordAnswer records one placement test answer.
	//
	// Wrong answers are accepted but leave the counters untouched.
	RecordAnswer(ctx context.Context, userID int, correct bool, category models.AnswerCategory) error
	// Method FinishPlacement scores the recorded answers and assigns a level.
	FinishPlacement(ctx context.Context, userID int) (models.KazakhLevel, error)
	// Method CompleteOnboarding records the chosen start option and resets
	// progression to the beginning of the course.
	CompleteOnboarding(ctx context.Context, userID int, startOption string) error
}

type progressService struct {
	users  ProgressRepository
	logger *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(users ProgressRepository, logger *zap.Logger) ProgressService {
	return &progressService{
		users:  users,
		logger: logger,
	}
}

func (s *progressService) Get(ctx context.Context, userID int) (*models.ProgressResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProgressResponse{NumLevel: user.NumLevel, CurrentUnit: user.CurrentUnit}, nil
}

func (s *progressService) AdvanceLesson(ctx context.Context, userID, completedID int) (*models.ProgressResponse, error) {
	if _, ok := course.NodeByID(completedID); !ok {
		return nil, ErrLessonNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	numLevel := min(course.TotalNodes, max(user.NumLevel, completedID+1))
	currentUnit := unitForLesson(numLevel)

	if numLevel != user.NumLevel || currentUnit != user.CurrentUnit {
		if err := s.users.UpdateProgress(ctx, userID, numLevel, currentUnit); err != nil {
			return nil, err
		}
	}
	return &models.ProgressResponse{NumLevel: numLevel, CurrentUnit: currentUnit}, nil
}

func (s *progressService) SyncProgress(ctx context.Context, userID, clientLevel int) (*models.ProgressResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := min(course.TotalNodes, max(1, max(clientLevel, user.NumLevel)))
	currentUnit := unitForLesson(resolved)

	if user.NumLevel < resolved {
		if err := s.users.UpdateProgress(ctx, userID, resolved, currentUnit); err != nil {
			return nil, err
		}
	}
	return &models.ProgressResponse{NumLevel: resolved, CurrentUnit: currentUnit}, nil
}

func (s *progressService) RecordAnswer(ctx context.Context, userID int, correct bool, category models.AnswerCategory) error {
	if category != models.AnswerCategoryGeneral && category != models.AnswerCategorySpecialized {
		return fmt.Errorf("unknown answer category: %s", category)
	}
	if !correct {
		return nil
	}
	return s.users.IncrementCorrectAnswers(ctx, userID, category)
}

func (s *progressService) FinishPlacement(ctx context.Context, userID int) (models.KazakhLevel, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	level := placementLevel(user.TestGeneralCorrect, user.TestSpecialCorrect)
	if err := s.users.SetPlacementResult(ctx, userID, level); err != nil {
		return "", err
	}

	s.logger.Info("placement finished",
		zap.Int("user_id", userID),
		zap.Int("general_correct", user.TestGeneralCorrect),
		zap.Int("specialized_correct", user.TestSpecialCorrect),
		zap.String("level", string(level)))
	return level, nil
}

// placementLevel maps counted correct answers to a level. Counters above the
// caps score the same as the cap, so over-answering cannot inflate placement.
func placementLevel(general, specialized int) models.KazakhLevel {
	g := float64(min(general, placementGeneralCap)) / placementGeneralCap
	s := float64(min(specialized, placementSpecializedCap)) / placementSpecializedCap
	score := g*placementGeneralWeight + s*placementSpecialWeight

	switch {
	case score >= advancedThreshold:
		return models.LevelAdvanced
	case score >= intermediateThreshold:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}

func (s *progressService) CompleteOnboarding(ctx context.Context, userID int, startOption string) error {
	completed := true
	level := models.LevelBeginner
	req := models.ProfileUpdateRequest{
		StartOption:         &startOption,
		OnboardingCompleted: &completed,
		Level:               &level,
	}
	if err := s.users.UpdateProfile(ctx, userID, req); err != nil {
		return err
	}
	return s.users.UpdateProgress(ctx, userID, 1, 1)
}

// unitForLesson derives the stored current_unit from a lesson id
func unitForLesson(lessonID int) int {
	if node, ok := course.NodeByID(lessonID); ok {
		return node.UnitIndex
	}
	return 1
}
