package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/clients/gemini"
	"github.com/oyanquantum/oyan/internal/clients/kazllm"
	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

// apologyReply is shown when every reply strategy fails. It is returned to the
// client but never persisted, so the conversation log holds only real replies.
const apologyReply = "Кешіріңіз, қате орын алды. Тағы көріңіз."

// ChatMessageRepository is the interface that wraps methods for ChatMessage table data access
type ChatMessageRepository interface {
	// Method Insert stores one chat message and returns the generated id.
	//
	// "msg" parameter carries the user id, role and text to store.
	//
	// If some error occurs during insertion, the error will be returned together with a zero id.
	Insert(ctx context.Context, msg *models.ChatMessage) (int, error)
	// Method ListByUser retrieves the user's chat history in chronological order.
	//
	// "userID" parameter selects whose history to load.
	//
	// If some error occurs during retrieval, the error will be returned together with "nil" value.
	ListByUser(ctx context.Context, userID int) ([]models.ChatMessage, error)
	// Method CountUserMessages returns how many messages with the given role the user has stored.
	//
	// "userID" and "role" parameters select which messages to count.
	//
	// If some error occurs during counting, the error will be returned together with a zero count.
	CountUserMessages(ctx context.Context, userID int, role models.ChatRole) (int, error)
	// Method DeleteByUser removes the user's entire chat history.
	//
	// "userID" parameter selects whose history to remove.
	DeleteByUser(ctx context.Context, userID int) error
}

// UserReader is the interface that wraps read-only User table access
type UserReader interface {
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, the error will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// ChatService runs the Kazakh tutor conversation
type ChatService interface {
	// Method Send processes one user message and produces the tutor's reply.
	//
	// "lang" selects the explanation language ("en" or "ru") for grammar help.
	//
	// Returns ErrQuotaExceeded without contacting any upstream when the user
	// has already sent the configured number of messages. When every reply
	// strategy fails the fixed apology string is returned with a nil error.
	Send(ctx context.Context, userID int, text, lang string) (string, error)
	// Method History retrieves the user's messages in chronological order.
	History(ctx context.Context, userID int) ([]models.ChatMessage, error)
	// Method Clear removes the user's entire conversation.
	Clear(ctx context.Context, userID int) error
}

// replyStrategy is one way of producing a tutor reply. Strategies are tried in
// order; the first one to succeed wins.
type replyStrategy interface {
	name() string
	reply(ctx context.Context, system string, history []models.ChatMessage, userText string) (string, error)
}

type chatService struct {
	messages     ChatMessageRepository
	users        UserReader
	strategies   []replyStrategy
	messageLimit int
	logger       *zap.Logger
}

// NewChatService creates a new chat service. The kazllm client may be nil, in
// which case replies skip the Kazakh grammar pass.
func NewChatService(messages ChatMessageRepository, users UserReader,
	geminiClient gemini.Client, kazllmClient kazllm.Client, messageLimit int, logger *zap.Logger) ChatService {
	return &chatService{
		messages: messages,
		users:    users,
		strategies: []replyStrategy{
			&assistantStrategy{gemini: geminiClient, kazllm: kazllmClient, logger: logger},
			&generatorStrategy{gemini: geminiClient},
		},
		messageLimit: messageLimit,
		logger:       logger,
	}
}

func buildChatSystemPrompt(priorSummary, lang string) string {
	explainLang := "English"
	if lang == "ru" {
		explainLang = "Russian"
	}
	levelBlock := "Assume the user is a beginner. Use simple Kazakh: short sentences, basic vocabulary."
	if priorSummary != "" {
		levelBlock = fmt.Sprintf("The user has completed these lessons:\n%s\n\nUse vocabulary and grammar appropriate for their level.", priorSummary)
	}

	return fmt.Sprintf(`You are a Kazakh language tutor in the OYAN app. STRICT RULES:

1. NORMAL CHAT: When replying in Kazakh (conversation, practice, small talk), use MAX 50 WORDS per message. Be concise.
2. ADAPT TO USER LEVEL. %s
3. OFF-TOPIC: If the user goes off topic (weather, sports, etc.), reply briefly in Kazakh (max 50 words) and steer back to learning.
4. EXPLANATION: When the user asks for help understanding Kazakh (e.g. "explain synharmonism", "what does X mean?", "how does grammar work?"), give your FULL explanation in %s. If the user asks their question in Russian, respond entirely in Russian. If they ask in English, respond in English. Keep explanations clear and concise. Include Kazakh examples where helpful. After explaining, you may add a short Kazakh phrase to practice.
5. Be encouraging and patient.`, levelBlock, explainLang)
}

func (s *chatService) Send(ctx context.Context, userID int, text, lang string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	// The quota gate runs before any upstream call so exhausted users cost nothing.
	sent, err := s.messages.CountUserMessages(ctx, userID, models.ChatRoleUser)
	if err != nil {
		return "", err
	}
	if s.messageLimit > 0 && sent >= s.messageLimit {
		return "", ErrQuotaExceeded
	}

	history, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	priorSummary := ""
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		priorSummary = course.PriorLessonsSummary(user.NumLevel)
	} else {
		s.logger.Warn("failed to load user for chat level adaptation", zap.Error(err), zap.Int("user_id", userID))
	}
	system := buildChatSystemPrompt(priorSummary, lang)

	if _, err := s.messages.Insert(ctx, &models.ChatMessage{
		UserID: userID,
		Role:   models.ChatRoleUser,
		Text:   text,
	}); err != nil {
		return "", err
	}

	for _, strategy := range s.strategies {
		reply, err := strategy.reply(ctx, system, history, text)
		if err != nil {
			s.logger.Warn("chat strategy failed",
				zap.String("strategy", strategy.name()), zap.Error(err), zap.Int("user_id", userID))
			continue
		}
		if _, err := s.messages.Insert(ctx, &models.ChatMessage{
			UserID: userID,
			Role:   models.ChatRoleAssistant,
			Text:   reply,
		}); err != nil {
			return "", err
		}
		return reply, nil
	}

	s.logger.Error("all chat strategies failed, serving apology", zap.Int("user_id", userID))
	return apologyReply, nil
}

func (s *chatService) History(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	return s.messages.ListByUser(ctx, userID)
}

func (s *chatService) Clear(ctx context.Context, userID int) error {
	return s.messages.DeleteByUser(ctx, userID)
}

// assistantStrategy talks to the chat endpoint with a system instruction and
// the structured history, then proofreads Kazakh output.
type assistantStrategy struct {
	gemini gemini.Client
	kazllm kazllm.Client
	logger *zap.Logger
}

func (a *assistantStrategy) name() string { return "assistant" }

func (a *assistantStrategy) reply(ctx context.Context, system string, history []models.ChatMessage, userText string) (string, error) {
	if a.gemini == nil {
		return "", fmt.Errorf("chat model is not configured")
	}

	turns := make([]gemini.Turn, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleAssistant {
			role = "model"
		}
		turns = append(turns, gemini.Turn{Role: role, Text: msg.Text})
	}

	reply, err := a.gemini.Chat(ctx, system, turns, userText)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyText
	}

	if a.kazllm != nil && kazakhRegex.MatchString(reply) {
		prompt := "Correct the following Kazakh text for grammar. Return ONLY the corrected text, nothing else.\n\n" + reply
		corrected, err := a.kazllm.Complete(ctx, prompt, 512)
		if err != nil {
			a.logger.Debug("kazakh correction skipped", zap.Error(err))
		} else if corrected = strings.TrimSpace(corrected); corrected != "" {
			reply = corrected
		}
	}
	return reply, nil
}

// generatorStrategy inlines the tutor rules and the flattened conversation
// into a single completion prompt. Used when the chat endpoint is failing.
type generatorStrategy struct {
	gemini gemini.Client
}

func (g *generatorStrategy) name() string { return "generator" }

func (g *generatorStrategy) reply(ctx context.Context, system string, history []models.ChatMessage, userText string) (string, error) {
	if g.gemini == nil {
		return "", fmt.Errorf("chat model is not configured")
	}

	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\nConversation so far:\n")
	for _, msg := range history {
		label := "Student"
		if msg.Role == models.ChatRoleAssistant {
			label = "Tutor"
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(msg.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("Student: ")
	sb.WriteString(userText)
	sb.WriteString("\nTutor:")

	reply, err := g.gemini.GenerateText(ctx, sb.String())
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyText
	}
	return reply, nil
}
