package models

// KazakhLevel is the placement tier assigned after the language test
type KazakhLevel string

const (
	LevelBeginner     KazakhLevel = "beginner"
	LevelIntermediate KazakhLevel = "intermediate"
	LevelAdvanced     KazakhLevel = "advanced"
)

// AnswerCategory selects which placement counter a recorded answer feeds
type AnswerCategory string

const (
	AnswerCategoryGeneral     AnswerCategory = "general"
	AnswerCategorySpecialized AnswerCategory = "specialized"
)

// User is a stored account row
type User struct {
	ID                  int
	Username            string
	PasswordHash        string
	FullName            string
	Age                 *int
	NumLevel            int
	CurrentUnit         int
	Level               KazakhLevel
	ReasonForStudying   string
	StudyTimeMinutes    int
	StartOption         string
	OnboardingCompleted bool
	TestGeneralCorrect  int
	TestSpecialCorrect  int
}

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries issued tokens and the user id
type AuthResponse struct {
	UserID       int    `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse is the public view of a user profile
type ProfileResponse struct {
	ID                  int         `json:"id"`
	Username            string      `json:"username"`
	FullName            string      `json:"full_name"`
	Age                 *int        `json:"age,omitempty"`
	NumLevel            int         `json:"num_level"`
	CurrentUnit         int         `json:"current_unit"`
	Level               KazakhLevel `json:"level"`
	ReasonForStudying   string      `json:"reason_for_studying,omitempty"`
	StudyTimeMinutes    int         `json:"study_time_minutes"`
	StartOption         string      `json:"start_option,omitempty"`
	OnboardingCompleted bool        `json:"onboarding_completed"`
}

// ProfileUpdateRequest is the request body for profile updates.
// Nil fields are left unchanged.
type ProfileUpdateRequest struct {
	FullName            *string      `json:"full_name,omitempty"`
	Age                 *int         `json:"age,omitempty"`
	Level               *KazakhLevel `json:"level,omitempty"`
	ReasonForStudying   *string      `json:"reason_for_studying,omitempty"`
	StudyTimeMinutes    *int         `json:"study_time_minutes,omitempty"`
	StartOption         *string      `json:"start_option,omitempty"`
	OnboardingCompleted *bool        `json:"onboarding_completed,omitempty"`
}

// ProgressResponse is the stored lesson progression for a user
type ProgressResponse struct {
	NumLevel    int `json:"num_level"`
	CurrentUnit int `json:"current_unit"`
}
