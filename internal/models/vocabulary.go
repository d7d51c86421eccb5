package models

// VocabularyEntry is one learned word for a user. Entries are append-only and
// deduplicated per user by word (case-insensitive) at insertion time.
type VocabularyEntry struct {
	ID            int    `json:"id"`
	Word          string `json:"word"`
	TranslationEn string `json:"translation_en"`
	TranslationRu string `json:"translation_ru"`
	LessonIndex   int    `json:"lesson_index"`
}
