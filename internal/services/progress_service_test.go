package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

func TestAdvanceLesson(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		completedID  int
		wantNumLevel int
	}{
		{name: "completing the current lesson unlocks the next", current: 1, completedID: 1, wantNumLevel: 2},
		{name: "repeating an old lesson changes nothing", current: 5, completedID: 2, wantNumLevel: 5},
		{name: "completing the last lesson stays clamped", current: 11, completedID: 11, wantNumLevel: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepository{user: &models.User{ID: 1, NumLevel: tt.current, CurrentUnit: 1}}
			service := NewProgressService(users, zap.NewNop())

			progress, err := service.AdvanceLesson(context.Background(), 1, tt.completedID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNumLevel, progress.NumLevel)
		})
	}
}

func TestAdvanceLessonIdempotent(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 1, NumLevel: 1, CurrentUnit: 1}}
	service := NewProgressService(users, zap.NewNop())

	first, err := service.AdvanceLesson(context.Background(), 1, 1)
	require.NoError(t, err)
	second, err := service.AdvanceLesson(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// The no-op repeat must not write again.
	assert.Len(t, users.progressUpdates, 1)
}

func TestAdvanceLessonUnknownLesson(t *testing.T) {
	service := NewProgressService(&mockUserRepository{}, zap.NewNop())

	_, err := service.AdvanceLesson(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestSyncProgress(t *testing.T) {
	tests := []struct {
		name        string
		stored      int
		client      int
		want        int
		wantUpdates int
	}{
		{name: "client ahead", stored: 2, client: 5, want: 5, wantUpdates: 1},
		{name: "server ahead", stored: 5, client: 2, want: 5, wantUpdates: 0},
		{name: "equal is a no-op", stored: 4, client: 4, want: 4, wantUpdates: 0},
		{name: "client value clamped to course size", stored: 3, client: 40, want: 11, wantUpdates: 1},
		{name: "garbage client value clamped up", stored: 3, client: -2, want: 3, wantUpdates: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepository{user: &models.User{ID: 1, NumLevel: tt.stored, CurrentUnit: 1}}
			service := NewProgressService(users, zap.NewNop())

			progress, err := service.SyncProgress(context.Background(), 1, tt.client)

			require.NoError(t, err)
			assert.Equal(t, tt.want, progress.NumLevel)
			assert.Len(t, users.progressUpdates, tt.wantUpdates)
		})
	}
}

// Two devices syncing in either order must land on the same value.
func TestSyncProgressCommutative(t *testing.T) {
	run := func(first, second int) int {
		users := &mockUserRepository{user: &models.User{ID: 1, NumLevel: 1, CurrentUnit: 1}}
		service := NewProgressService(users, zap.NewNop())

		_, err := service.SyncProgress(context.Background(), 1, first)
		require.NoError(t, err)
		progress, err := service.SyncProgress(context.Background(), 1, second)
		require.NoError(t, err)
		return progress.NumLevel
	}

	assert.Equal(t, run(3, 7), run(7, 3))
}

func TestRecordAnswer(t *testing.T) {
	tests := []struct {
		name        string
		correct     bool
		category    models.AnswerCategory
		wantErr     bool
		wantCounted int
	}{
		{name: "correct general", correct: true, category: models.AnswerCategoryGeneral, wantCounted: 1},
		{name: "correct specialized", correct: true, category: models.AnswerCategorySpecialized, wantCounted: 1},
		{name: "wrong answer is a no-op", correct: false, category: models.AnswerCategoryGeneral, wantCounted: 0},
		{name: "unknown category", correct: true, category: "weird", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepository{user: &models.User{ID: 1}}
			service := NewProgressService(users, zap.NewNop())

			err := service.RecordAnswer(context.Background(), 1, tt.correct, tt.category)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, users.incremented, tt.wantCounted)
		})
	}
}

func TestPlacementLevel(t *testing.T) {
	tests := []struct {
		name        string
		general     int
		specialized int
		want        models.KazakhLevel
	}{
		{name: "all correct", general: 5, specialized: 3, want: models.LevelAdvanced},
		{name: "3 of 5 and 1 of 3 scores 0.52", general: 3, specialized: 1, want: models.LevelIntermediate},
		{name: "nothing correct", general: 0, specialized: 0, want: models.LevelBeginner},
		{name: "just under the intermediate bar", general: 2, specialized: 1, want: models.LevelBeginner},
		{name: "general alone reaches advanced", general: 5, specialized: 0, want: models.LevelAdvanced},
		{name: "counters above the caps do not inflate", general: 50, specialized: 30, want: models.LevelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placementLevel(tt.general, tt.specialized))
		})
	}
}

func TestFinishPlacement(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 1, TestGeneralCorrect: 3, TestSpecialCorrect: 1}}
	service := NewProgressService(users, zap.NewNop())

	level, err := service.FinishPlacement(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.LevelIntermediate, level)
	assert.Equal(t, models.LevelIntermediate, users.placedLevel)
}

func TestCompleteOnboarding(t *testing.T) {
	users := &mockUserRepository{user: &models.User{ID: 1, NumLevel: 4}}
	service := NewProgressService(users, zap.NewNop())

	err := service.CompleteOnboarding(context.Background(), 1, "from_scratch")

	require.NoError(t, err)
	require.Len(t, users.profileUpdates, 1)
	update := users.profileUpdates[0]
	require.NotNil(t, update.StartOption)
	assert.Equal(t, "from_scratch", *update.StartOption)
	require.NotNil(t, update.OnboardingCompleted)
	assert.True(t, *update.OnboardingCompleted)
	require.Len(t, users.progressUpdates, 1)
	assert.Equal(t, progressUpdate{numLevel: 1, currentUnit: 1}, users.progressUpdates[0])
}
