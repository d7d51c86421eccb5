package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
)

func chatTestUser() *models.User {
	return &models.User{ID: 7, Username: "aigerim", NumLevel: 3, CurrentUnit: 1}
}

func TestSendPersistsBothSides(t *testing.T) {
	messages := &mockChatMessageRepository{}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatResponse: "Сәлем! Қалайсың?"}

	service := NewChatService(messages, users, mockGemini, nil, 3, zap.NewNop())
	reply, err := service.Send(context.Background(), 7, "Сәлем!", "en")

	require.NoError(t, err)
	assert.Equal(t, "Сәлем! Қалайсың?", reply)
	require.Len(t, messages.inserted, 2)
	assert.Equal(t, models.ChatRoleUser, messages.inserted[0].Role)
	assert.Equal(t, "Сәлем!", messages.inserted[0].Text)
	assert.Equal(t, models.ChatRoleAssistant, messages.inserted[1].Role)
}

func TestSendQuotaExceededBeforeAnyUpstreamCall(t *testing.T) {
	messages := &mockChatMessageRepository{userCount: 3}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatResponse: "should never be reached"}
	mockKazLLM := &mockKazLLMClient{}

	service := NewChatService(messages, users, mockGemini, mockKazLLM, 3, zap.NewNop())
	_, err := service.Send(context.Background(), 7, "Тағы бір сұрақ", "en")

	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Zero(t, mockGemini.chatCalls)
	assert.Zero(t, mockGemini.textCalls)
	assert.Zero(t, mockKazLLM.calls)
	assert.Empty(t, messages.inserted)
}

func TestSendUnlimitedWhenLimitDisabled(t *testing.T) {
	messages := &mockChatMessageRepository{userCount: 50}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatResponse: "Жақсы!"}

	service := NewChatService(messages, users, mockGemini, nil, 0, zap.NewNop())
	_, err := service.Send(context.Background(), 7, "Сәлем", "en")

	assert.NoError(t, err)
}

func TestSendFallsBackToGeneratorStrategy(t *testing.T) {
	messages := &mockChatMessageRepository{}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatErr: errMock, textResponse: "Қайырлы күн!"}

	service := NewChatService(messages, users, mockGemini, nil, 3, zap.NewNop())
	reply, err := service.Send(context.Background(), 7, "Сәлем", "en")

	require.NoError(t, err)
	assert.Equal(t, "Қайырлы күн!", reply)
	assert.Equal(t, 1, mockGemini.chatCalls)
	assert.Equal(t, 1, mockGemini.textCalls)
}

func TestSendApologyWhenAllStrategiesFail(t *testing.T) {
	messages := &mockChatMessageRepository{}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatErr: errMock, textErr: errMock}

	service := NewChatService(messages, users, mockGemini, nil, 3, zap.NewNop())
	reply, err := service.Send(context.Background(), 7, "Сәлем", "en")

	require.NoError(t, err)
	assert.Equal(t, apologyReply, reply)
	// Only the user message was persisted; the apology never enters the log.
	require.Len(t, messages.inserted, 1)
	assert.Equal(t, models.ChatRoleUser, messages.inserted[0].Role)
}

func TestSendCorrectsKazakhReply(t *testing.T) {
	messages := &mockChatMessageRepository{}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatResponse: "Сәлем қалайсың"}
	mockKazLLM := &mockKazLLMClient{response: "Сәлем, қалайсың?"}

	service := NewChatService(messages, users, mockGemini, mockKazLLM, 3, zap.NewNop())
	reply, err := service.Send(context.Background(), 7, "Сәлем", "en")

	require.NoError(t, err)
	assert.Equal(t, "Сәлем, қалайсың?", reply)
	assert.Equal(t, 1, mockKazLLM.calls)
}

func TestSendSkipsCorrectionForNonKazakhReply(t *testing.T) {
	messages := &mockChatMessageRepository{}
	users := &mockUserRepository{user: chatTestUser()}
	mockGemini := &mockGeminiClient{chatResponse: "Synharmonism means vowels in a word share one backness."}
	mockKazLLM := &mockKazLLMClient{response: "unused"}

	service := NewChatService(messages, users, mockGemini, mockKazLLM, 3, zap.NewNop())
	reply, err := service.Send(context.Background(), 7, "explain synharmonism", "en")

	require.NoError(t, err)
	assert.Equal(t, "Synharmonism means vowels in a word share one backness.", reply)
	assert.Zero(t, mockKazLLM.calls)
}

func TestSendEmptyText(t *testing.T) {
	service := NewChatService(&mockChatMessageRepository{}, &mockUserRepository{user: chatTestUser()},
		&mockGeminiClient{}, nil, 3, zap.NewNop())

	_, err := service.Send(context.Background(), 7, "   ", "en")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestBuildChatSystemPrompt(t *testing.T) {
	beginner := buildChatSystemPrompt("", "en")
	assert.Contains(t, beginner, "Assume the user is a beginner")
	assert.Contains(t, beginner, "English")

	leveled := buildChatSystemPrompt("Lesson 1: Tell about the Kazakh language.", "ru")
	assert.Contains(t, leveled, "Lesson 1: Tell about the Kazakh language.")
	assert.Contains(t, leveled, "Russian")
}
