package services

import (
	"github.com/oyanquantum/oyan/internal/models"
)

// repairContent normalizes a freshly generated lesson document in place so the
// rest of the app never sees a malformed one. The generator is asked for a
// strict format but does not always comply, so every field gets a usable
// default instead of being rejected.
func repairContent(content *models.GeneratedLessonContent, summary string) {
	if content.Title == "" {
		content.Title = truncate(summary, 80)
	}
	if len(content.ExplanationSlides) == 0 {
		content.ExplanationSlides = []string{summary}
	}
	if content.Examples == nil {
		content.Examples = []string{}
	}
	if content.Quiz == nil {
		content.Quiz = []models.QuizItem{}
	}

	for i := range content.Quiz {
		repairQuizItem(&content.Quiz[i])
	}
}

func repairQuizItem(item *models.QuizItem) {
	if item.Question == "" {
		item.Question = "?"
	}
	// Single-option questions are unanswerable; fall back to a binary choice.
	if len(item.Options) < 2 {
		item.Options = []string{"Yes", "No"}
	}
	if item.CorrectIndex < 0 {
		item.CorrectIndex = 0
	}
	if item.CorrectIndex >= len(item.Options) {
		item.CorrectIndex = len(item.Options) - 1
	}
	if item.Points <= 0 {
		item.Points = 1
	}
	if item.Type == "" {
		item.Type = models.QuizItemTypeMultipleChoice
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
