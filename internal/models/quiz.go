package models

// QuizQuestion is an admin-authored question stored in the database,
// separate from generated lesson content. Used by the placement test and
// practice screens.
type QuizQuestion struct {
	ID           int      `json:"id"`
	Category     string   `json:"category"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Points       int      `json:"points"`
}
