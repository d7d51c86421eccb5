package models

// QuizItemType is the kind of quiz question inside generated lesson content
type QuizItemType string

const (
	QuizItemTypeMultipleChoice QuizItemType = "multiple_choice"
	QuizItemTypeListening      QuizItemType = "listening"
	QuizItemTypeMatch          QuizItemType = "match"
)

// QuizItem is a single question inside generated or fallback lesson content.
//
// CorrectIndex is 0-based and must index validly into Options; Options must
// hold at least 2 entries. Upstream generators are not trusted to honor this,
// so consumers repair items before use (see services.repairContent).
type QuizItem struct {
	Question     string       `json:"question"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	Points       int          `json:"points,omitempty"`
	Type         QuizItemType `json:"question_type,omitempty"`
	AudioText    string       `json:"audioText,omitempty"`
}

// GeneratedLessonContent is the slide/example/quiz payload for one lesson,
// produced either by the content generator or by the static fallback tables.
// JSON field names match the wire format the mobile client already consumes.
type GeneratedLessonContent struct {
	Title             string     `json:"title"`
	ExplanationSlides []string   `json:"explanation_slides"`
	Examples          []string   `json:"examples"`
	Quiz              []QuizItem `json:"quiz"`
}

// LessonListItem is one course node plus its unlock state for the requesting user
type LessonListItem struct {
	ID           int    `json:"id"`
	UnitIndex    int    `json:"unit_index"`
	IsTest       bool   `json:"is_test"`
	DisplayTitle string `json:"display_title"`
	Unlocked     bool   `json:"unlocked"`
}

// LessonListResponse is the response for the lesson list endpoint
type LessonListResponse struct {
	Lessons  []LessonListItem `json:"lessons"`
	NumLevel int              `json:"num_level"`
}
