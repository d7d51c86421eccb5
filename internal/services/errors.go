package services

import "errors"

var (
	// ErrQuotaExceeded is returned when a user has used up the free chat message quota
	ErrQuotaExceeded = errors.New("chat message quota exceeded")

	// ErrParseFailure is returned when the content generator replies with text
	// that does not contain a decodable lesson document
	ErrParseFailure = errors.New("failed to parse generated content")

	// ErrEmptyText is returned when a request carries no usable text
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrLessonNotFound is returned for lesson ids outside the course
	ErrLessonNotFound = errors.New("lesson not found")
)
