package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/utils"
)

const (
	providerName        = "gemini"
	defaultMaxLogLength = 200
)

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	Model() string
}

// Backend asks Gemini for a structured decision. One Generate call is one
// logical request; retries belong to the generator.
type Backend struct {
	generator jsonGenerator
	schema    *genai.Schema
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Backend = (*Backend)(nil)

func NewBackend(generator jsonGenerator, maxLogLength int, logger *zap.Logger) *Backend {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Backend{
		generator: generator,
		schema:    DecisionSchema(),
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (b *Backend) Provider() string { return providerName }

func (b *Backend) Model() string {
	if b == nil || b.generator == nil {
		return ""
	}
	return b.generator.Model()
}

// Generate never panics and never returns an error; problems become ai.Failure.
func (b *Backend) Generate(ctx context.Context, prompt string) (outcome ai.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = ai.Failure(fmt.Sprintf("gemini backend panicked: %v", r))
		}
	}()

	if b == nil || b.generator == nil {
		return ai.Failure("gemini backend is not initialized")
	}

	b.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, b.maxLogLen)),
	)

	raw, err := b.generator.GenerateJSON(ctx, prompt, b.schema)
	if err != nil {
		b.logger.Warn("gemini generation failed", zap.Error(err))
		return ai.Failure(err.Error())
	}

	b.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, b.maxLogLen)),
	)

	candidate, err := parseCandidate(raw)
	if err != nil {
		b.logger.Warn("gemini returned malformed structured output", zap.Error(err))
		return ai.Failure(err.Error())
	}

	if len(candidate.Missing) > 0 {
		b.logger.Warn("gemini structured output is missing fields", zap.Strings("missing", candidate.Missing))
	}

	return ai.Structured(*candidate)
}

// parseCandidate decodes the model JSON and records which required keys were absent.
func parseCandidate(raw string) (*ai.Candidate, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("parse gemini response: expected a JSON object")
	}

	// an unusable recommendation is left for validation to coerce
	if value, ok := data[ai.FieldRecommendation]; ok && value != nil {
		switch value.(type) {
		case map[string]any, []any:
			data[ai.FieldRecommendation] = ""
		}
	}

	var candidate ai.Candidate
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &candidate,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	for _, field := range ai.RequiredFields {
		if _, ok := data[field]; !ok {
			candidate.Missing = append(candidate.Missing, field)
		}
	}

	return &candidate, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
