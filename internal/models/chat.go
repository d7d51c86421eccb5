package models

import "time"

// ChatRole is the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in a user's append-only conversation log.
// Messages are never edited; ordering is established by CreatedAt, which the
// database assigns on insert.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatSendRequest is the request body for sending a chat message
type ChatSendRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang,omitempty"`
}

// ChatSendResponse is the response body for a sent chat message
type ChatSendResponse struct {
	Reply string `json:"reply"`
}
