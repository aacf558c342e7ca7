package summary

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/moodlog/mood-journal/internal/logger"
)

// GeminiSummarizer implements [Summarizer] over the Gemini API. A client is
// created per call because the credential may differ per request.
type GeminiSummarizer struct {
	defaultKey string
	logger     *logger.Logger
}

// NewGeminiSummarizer constructs a summarizer with an optional
// server-configured default API key. An empty defaultKey is allowed: callers
// may provide their own key per request.
func NewGeminiSummarizer(defaultKey string, log *logger.Logger) *GeminiSummarizer {
	return &GeminiSummarizer{
		defaultKey: defaultKey,
		logger:     log,
	}
}

// Summarize builds the role-appropriate prompt and asks the model for a
// narrative. Returns [ErrNoCredential] when no API key is available, and
// [NoRecordsText] without calling the model when the window is empty.
func (s *GeminiSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	log := logger.FromContext(ctx)

	key := req.APIKey
	if key == "" {
		key = s.defaultKey
	}
	if key == "" {
		return "", ErrNoCredential
	}

	if len(req.Records) == 0 {
		return NoRecordsText, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: key,
	})
	if err != nil {
		log.Err(err).Str("func", "GeminiSummarizer.Summarize").Msg("failed to create genai client")
		return "", fmt.Errorf("create genai client: %w", err)
	}

	digests := BuildDigests(req.Records)

	var prompt string
	if req.Elevated {
		prompt = BuildTeacherPrompt(req.Counts, len(req.Records), digests)
	} else {
		prompt = BuildStudentPrompt(req.Counts, digests)
	}

	result, err := client.Models.GenerateContent(ctx, ModelName, genai.Text(prompt), nil)
	if err != nil {
		log.Err(err).Str("func", "GeminiSummarizer.Summarize").Msg("content generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("generate content: empty response")
	}

	return text, nil
}
