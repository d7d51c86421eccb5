package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/cache"
	"github.com/oyanquantum/oyan/internal/clients/gemini"
	"github.com/oyanquantum/oyan/internal/clients/kazllm"
	"github.com/oyanquantum/oyan/internal/course"
	"github.com/oyanquantum/oyan/internal/models"
)

// formatSpec describes the exact JSON document the generator must produce.
// The mobile client renders **highlights** and \n\n mini-paragraphs, so the
// formatting rules here are part of the wire contract, not styling advice.
const formatSpec = `
TARGET AUDIENCE: Lessons are for complete beginners who do NOT know Kazakh. They cannot read, write, speak, or listen to it. All explanations MUST be in the user's chosen language. Do not assume any prior knowledge of the Kazakh script, sounds, or grammar.

Output ONLY valid JSON with this exact structure (no markdown, no extra text):
{
  "title": "Short lesson title",
  "explanation_slides": ["Paragraph 1.", "Paragraph 2."],
  "examples": ["Example 1", "Example 2"],
  "quiz": [
    {
      "question": "Question text?",
      "options": ["A", "B", "C", "D"],
      "correct_index": 0,
      "points": 1,
      "question_type": "multiple_choice"
    }
  ]
}

Question types:
- multiple_choice: Standard 4-option MCQ.
- listening: User hears Kazakh, then chooses. Put the spoken Kazakh in audioText.
- match: Match items. question = "Connect by sound" or "Соедини по звуку".

FORMATTING (critical):
1) HIGHLIGHTS: Wrap key terms in **double asterisks**. Example: "Use **Сәлем** for informal." Highlight 2-4 key terms per slide.
2) PARAGRAPHS: Split each explanation_slide into 2-4 SHORT mini-paragraphs using \n\n. NEVER one long block.
3) Keep each slide 2-4 sentences total, split across mini-paragraphs.
`

// ContentService produces and caches lesson content.
type ContentService interface {
	// Method Generate produces fresh lesson content for a course node.
	//
	// "node" selects the lesson; "priorSummary" lists what the user has
	// already studied so the generator can build on it.
	//
	// The result is always structurally valid: malformed generator output is
	// repaired field by field before being returned. An undecodable response
	// returns ErrParseFailure.
	Generate(ctx context.Context, node course.Node, priorSummary string) (models.GeneratedLessonContent, error)
	// Method LoadContent returns lesson content for the given lesson and
	// language, from cache when possible.
	//
	// "lang" is "en" or "ru". The method never fails: when both the cache and
	// the generator are unavailable it serves the bundled fallback lesson.
	// Fallback content is not cached, so a later request retries generation.
	LoadContent(ctx context.Context, lessonID int, lang string) (models.GeneratedLessonContent, error)
}

type contentService struct {
	gemini gemini.Client
	kazllm kazllm.Client
	cache  cache.ContentCache
	logger *zap.Logger
}

// NewContentService creates a new content service. The kazllm client and the
// cache may be nil; generation then skips the Kazakh correction pass and every
// request regenerates.
func NewContentService(geminiClient gemini.Client, kazllmClient kazllm.Client, contentCache cache.ContentCache, logger *zap.Logger) ContentService {
	return &contentService{
		gemini: geminiClient,
		kazllm: kazllmClient,
		cache:  contentCache,
		logger: logger,
	}
}

func buildLessonPrompt(node course.Node, priorSummary string) string {
	var sb strings.Builder
	sb.WriteString("You are a Kazakh language lesson generator for the OYAN app. Generate a lesson that matches the course design format exactly.\n\n")
	if priorSummary != "" {
		sb.WriteString("PRIOR LESSONS (user has already studied):\n")
		sb.WriteString(priorSummary)
		sb.WriteString("\n\n")
	}
	sb.WriteString("CURRENT LESSON SUMMARY:\n")
	sb.WriteString(node.Summary)
	sb.WriteString("\n\n")
	sb.WriteString(formatSpec)
	sb.WriteString(`
Rules:
- explanation_slides: 1-3 slides, each with 2-4 mini-paragraphs (use \n\n). Use ** around key terms for highlighting.
- examples: 0-4 examples. Use Kazakh with translation in parentheses where helpful.
- quiz: 2-8 questions. Mix multiple_choice, listening (when audio helps), and match (e.g. connect by sound for vowels).
- All Kazakh text must be grammatically correct.
- correct_index is 0-based.
- CRITICAL: Every quiz item MUST have a clear "question" field. NEVER use "?" or leave question empty.
- Every multiple-choice, translate, and fill-in question MUST have at least 3 answer options (preferably 4).
- Output ONLY the JSON object, nothing else.`)
	return sb.String()
}

// extractJSON cuts the first top-level JSON object out of free-form model
// output, which often wraps the document in markdown fences or prose.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func (s *contentService) Generate(ctx context.Context, node course.Node, priorSummary string) (models.GeneratedLessonContent, error) {
	if s.gemini == nil {
		return models.GeneratedLessonContent{}, fmt.Errorf("content generator is not configured")
	}
	prompt := buildLessonPrompt(node, priorSummary)

	raw, err := s.gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return models.GeneratedLessonContent{}, fmt.Errorf("failed to generate lesson content: %w", err)
	}

	jsonStr, ok := extractJSON(raw)
	if !ok {
		s.logger.Warn("generator response contains no JSON object", zap.Int("lesson_id", node.ID))
		return models.GeneratedLessonContent{}, ErrParseFailure
	}

	var content models.GeneratedLessonContent
	if err := json.Unmarshal([]byte(jsonStr), &content); err != nil {
		s.logger.Warn("failed to decode generated content", zap.Error(err), zap.Int("lesson_id", node.ID))
		return models.GeneratedLessonContent{}, ErrParseFailure
	}

	repairContent(&content, node.Summary)
	s.correctKazakh(ctx, &content)

	return content, nil
}

// kazakhRegex matches the Kazakh-specific Cyrillic letters plus the shared
// Cyrillic range, which is how Kazakh text is told apart from English/Russian
// interface text.
var kazakhRegex = regexp.MustCompile(`(?i)[а-яәғқңөұүһі]`)

const maxCorrectionSegments = 20

// correctKazakh runs every Kazakh string in the document through the grammar
// model and substitutes corrections back by exact match. The pass is strictly
// best effort: any failure leaves the original text in place.
func (s *contentService) correctKazakh(ctx context.Context, content *models.GeneratedLessonContent) {
	if s.kazllm == nil {
		return
	}

	segments := collectKazakhSegments(content)
	if len(segments) > maxCorrectionSegments {
		segments = segments[:maxCorrectionSegments]
	}

	corrections := make(map[string]string, len(segments))
	for _, segment := range segments {
		prompt := "Correct the following Kazakh text for grammar. Return ONLY the corrected text, nothing else.\n\n" + segment
		corrected, err := s.kazllm.Complete(ctx, prompt, 256)
		if err != nil {
			s.logger.Debug("kazakh correction skipped", zap.Error(err))
			continue
		}
		corrected = strings.TrimSpace(corrected)
		if corrected != "" && corrected != segment {
			corrections[segment] = corrected
		}
	}
	if len(corrections) == 0 {
		return
	}

	replace := func(text string) string {
		if corrected, ok := corrections[text]; ok {
			return corrected
		}
		return text
	}

	content.Title = replace(content.Title)
	for i, slide := range content.ExplanationSlides {
		content.ExplanationSlides[i] = replace(slide)
	}
	for i, example := range content.Examples {
		content.Examples[i] = replace(example)
	}
	for i := range content.Quiz {
		item := &content.Quiz[i]
		item.Question = replace(item.Question)
		for j, option := range item.Options {
			item.Options[j] = replace(option)
		}
		if item.AudioText != "" {
			item.AudioText = replace(item.AudioText)
		}
	}
}

// collectKazakhSegments gathers the unique string leaves of the document that
// contain Kazakh script, in document order.
func collectKazakhSegments(content *models.GeneratedLessonContent) []string {
	var segments []string
	seen := make(map[string]struct{})
	add := func(text string) {
		if text == "" || !kazakhRegex.MatchString(text) {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		segments = append(segments, text)
	}

	add(content.Title)
	for _, slide := range content.ExplanationSlides {
		add(slide)
	}
	for _, example := range content.Examples {
		add(example)
	}
	for _, item := range content.Quiz {
		add(item.Question)
		for _, option := range item.Options {
			add(option)
		}
		add(item.AudioText)
	}
	return segments
}

func (s *contentService) LoadContent(ctx context.Context, lessonID int, lang string) (models.GeneratedLessonContent, error) {
	node, ok := course.NodeByID(lessonID)
	if !ok {
		return models.GeneratedLessonContent{}, ErrLessonNotFound
	}

	if s.cache != nil {
		content, hit, err := s.cache.Get(ctx, lang, lessonID)
		if err != nil {
			s.logger.Warn("cache lookup failed", zap.Error(err), zap.Int("lesson_id", lessonID))
		} else if hit {
			return content, nil
		}
	}

	content, err := s.Generate(ctx, node, course.PriorLessonsSummary(lessonID))
	if err != nil {
		s.logger.Warn("falling back to bundled lesson content",
			zap.Error(err), zap.Int("lesson_id", lessonID), zap.String("lang", lang))
		return course.FallbackContent(lessonID, lang), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, lang, lessonID, content); err != nil {
			s.logger.Warn("failed to cache lesson content", zap.Error(err), zap.Int("lesson_id", lessonID))
		}
	}
	return content, nil
}
