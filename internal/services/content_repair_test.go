package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oyanquantum/oyan/internal/models"
)

func TestRepairContentDefaults(t *testing.T) {
	summary := "Unit 1, Lesson 1: Tell about the Kazakh language."

	content := models.GeneratedLessonContent{}
	repairContent(&content, summary)

	assert.Equal(t, summary, content.Title)
	assert.Equal(t, []string{summary}, content.ExplanationSlides)
	assert.NotNil(t, content.Examples)
	assert.Empty(t, content.Examples)
	assert.NotNil(t, content.Quiz)
	assert.Empty(t, content.Quiz)
}

func TestRepairContentTruncatesLongTitle(t *testing.T) {
	summary := ""
	for i := 0; i < 30; i++ {
		summary += "әріп "
	}

	content := models.GeneratedLessonContent{}
	repairContent(&content, summary)

	assert.Len(t, []rune(content.Title), 80)
}

func TestRepairQuizItem(t *testing.T) {
	tests := []struct {
		name string
		item models.QuizItem
		want models.QuizItem
	}{
		{
			name: "empty item",
			item: models.QuizItem{},
			want: models.QuizItem{
				Question:     "?",
				Options:      []string{"Yes", "No"},
				CorrectIndex: 0,
				Points:       1,
				Type:         models.QuizItemTypeMultipleChoice,
			},
		},
		{
			name: "correct index past the options",
			item: models.QuizItem{
				Question:     "What does Сен mean?",
				Options:      []string{"You", "I", "We"},
				CorrectIndex: 7,
				Points:       2,
				Type:         models.QuizItemTypeMultipleChoice,
			},
			want: models.QuizItem{
				Question:     "What does Сен mean?",
				Options:      []string{"You", "I", "We"},
				CorrectIndex: 2,
				Points:       2,
				Type:         models.QuizItemTypeMultipleChoice,
			},
		},
		{
			name: "negative correct index",
			item: models.QuizItem{
				Question:     "Connect by sound",
				Options:      []string{"А", "Ә"},
				CorrectIndex: -3,
				Type:         models.QuizItemTypeMatch,
			},
			want: models.QuizItem{
				Question:     "Connect by sound",
				Options:      []string{"А", "Ә"},
				CorrectIndex: 0,
				Points:       1,
				Type:         models.QuizItemTypeMatch,
			},
		},
		{
			name: "single option replaced",
			item: models.QuizItem{
				Question:     "Is Kazakh a Turkic language?",
				Options:      []string{"Only one"},
				CorrectIndex: 0,
			},
			want: models.QuizItem{
				Question:     "Is Kazakh a Turkic language?",
				Options:      []string{"Yes", "No"},
				CorrectIndex: 0,
				Points:       1,
				Type:         models.QuizItemTypeMultipleChoice,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			repairQuizItem(&item)
			assert.Equal(t, tt.want, item)

			// The repaired item always satisfies the quiz invariants.
			assert.GreaterOrEqual(t, len(item.Options), 2)
			assert.GreaterOrEqual(t, item.CorrectIndex, 0)
			assert.Less(t, item.CorrectIndex, len(item.Options))
		})
	}
}
