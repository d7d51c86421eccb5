package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oyanquantum/oyan/internal/cache"
	"github.com/oyanquantum/oyan/internal/clients/gemini"
	"github.com/oyanquantum/oyan/internal/models"
)

// mockUserRepository is a mock implementation of UserRepository, ProgressRepository and UserReader
type mockUserRepository struct {
	user      *models.User
	err       error
	createdID int

	progressUpdates []progressUpdate
	profileUpdates  []models.ProfileUpdateRequest
	incremented     []models.AnswerCategory
	placedLevel     models.KazakhLevel
}

type progressUpdate struct {
	numLevel    int
	currentUnit int
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.createdID, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id int, req models.ProfileUpdateRequest) error {
	m.profileUpdates = append(m.profileUpdates, req)
	return nil
}

func (m *mockUserRepository) UpdateProgress(ctx context.Context, id, numLevel, currentUnit int) error {
	m.progressUpdates = append(m.progressUpdates, progressUpdate{numLevel: numLevel, currentUnit: currentUnit})
	if m.user != nil {
		m.user.NumLevel = numLevel
		m.user.CurrentUnit = currentUnit
	}
	return nil
}

func (m *mockUserRepository) IncrementCorrectAnswers(ctx context.Context, id int, category models.AnswerCategory) error {
	m.incremented = append(m.incremented, category)
	return nil
}

func (m *mockUserRepository) SetPlacementResult(ctx context.Context, id int, level models.KazakhLevel) error {
	m.placedLevel = level
	return nil
}

// mockChatMessageRepository is a mock implementation of ChatMessageRepository
type mockChatMessageRepository struct {
	messages  []models.ChatMessage
	userCount int
	err       error
	inserted  []models.ChatMessage
}

func (m *mockChatMessageRepository) Insert(ctx context.Context, msg *models.ChatMessage) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.inserted = append(m.inserted, *msg)
	return len(m.inserted), nil
}

func (m *mockChatMessageRepository) ListByUser(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func (m *mockChatMessageRepository) CountUserMessages(ctx context.Context, userID int, role models.ChatRole) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.userCount, nil
}

func (m *mockChatMessageRepository) DeleteByUser(ctx context.Context, userID int) error {
	return m.err
}

// mockVocabularyRepository is a mock implementation of VocabularyRepository
type mockVocabularyRepository struct {
	entries  []models.VocabularyEntry
	err      error
	inserted [][]models.VocabularyEntry
}

func (m *mockVocabularyRepository) ListByUser(ctx context.Context, userID int) ([]models.VocabularyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockVocabularyRepository) InsertIgnoreDuplicates(ctx context.Context, userID int, entries []models.VocabularyEntry) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, entries)
	return nil
}

// mockQuizQuestionRepository is a mock implementation of QuizQuestionRepository
type mockQuizQuestionRepository struct {
	questions []models.QuizQuestion
	err       error
	createdID int
	deleted   []int
}

func (m *mockQuizQuestionRepository) ListByCategory(ctx context.Context, category models.AnswerCategory) ([]models.QuizQuestion, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

func (m *mockQuizQuestionRepository) Create(ctx context.Context, question *models.QuizQuestion) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.createdID, nil
}

func (m *mockQuizQuestionRepository) Delete(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// mockGeminiClient is a mock implementation of gemini.Client
type mockGeminiClient struct {
	jsonResponse string
	jsonErr      error
	textResponse string
	textErr      error
	chatResponse string
	chatErr      error

	jsonCalls int
	textCalls int
	chatCalls int
}

func (m *mockGeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m.jsonCalls++
	if m.jsonErr != nil {
		return "", m.jsonErr
	}
	return m.jsonResponse, nil
}

func (m *mockGeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.textCalls++
	if m.textErr != nil {
		return "", m.textErr
	}
	return m.textResponse, nil
}

func (m *mockGeminiClient) Chat(ctx context.Context, system string, history []gemini.Turn, user string) (string, error) {
	m.chatCalls++
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.chatResponse, nil
}

// mockKazLLMClient is a mock implementation of kazllm.Client
type mockKazLLMClient struct {
	response string
	err      error
	calls    int
}

func (m *mockKazLLMClient) Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockContentCache is an in-memory implementation of cache.ContentCache
type mockContentCache struct {
	store  map[string]models.GeneratedLessonContent
	getErr error
	setErr error
	sets   int
}

var _ cache.ContentCache = (*mockContentCache)(nil)

func newMockContentCache() *mockContentCache {
	return &mockContentCache{store: make(map[string]models.GeneratedLessonContent)}
}

func (m *mockContentCache) key(lang string, lessonID int) string {
	return fmt.Sprintf("%s_%d", lang, lessonID)
}

func (m *mockContentCache) Get(ctx context.Context, lang string, lessonID int) (models.GeneratedLessonContent, bool, error) {
	if m.getErr != nil {
		return models.GeneratedLessonContent{}, false, m.getErr
	}
	content, ok := m.store[m.key(lang, lessonID)]
	return content, ok, nil
}

func (m *mockContentCache) Set(ctx context.Context, lang string, lessonID int, content models.GeneratedLessonContent) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.store[m.key(lang, lessonID)] = content
	return nil
}

func (m *mockContentCache) Invalidate(ctx context.Context, lang string, lessonID int) error {
	delete(m.store, m.key(lang, lessonID))
	return nil
}

var errMock = errors.New("mock failure")
