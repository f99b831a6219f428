package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/rfp-advisor/internal/catalog"
	"github.com/spigell/rfp-advisor/internal/decision"
	"github.com/spigell/rfp-advisor/internal/extract"
)

func TestNewBackendWithoutCredentialsIsDisabled(t *testing.T) {
	t.Setenv(geminiAPIKeyEnv, "")

	backend, err := newBackend(context.Background(), &AIConfig{Enabled: true, Gemini: &GeminiConfig{}}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, backend)

	backend, err = newBackend(context.Background(), &AIConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, backend)

	_, err = newBackend(context.Background(), &AIConfig{Enabled: true, Provider: "openai", Gemini: &GeminiConfig{}}, zap.NewNop())
	assert.Error(t, err)
}

func TestDecideAllKeepsOrderAndPrintsReports(t *testing.T) {
	t.Setenv(geminiAPIKeyEnv, "")

	pipeline, err := newPipeline(context.Background(), &Config{
		TopK: catalog.DefaultTopK,
		AI:   &AIConfig{Enabled: true, Gemini: &GeminiConfig{}},
	}, zap.NewNop())
	require.NoError(t, err)

	docs := []extract.Document{
		extract.NewDocument("first.txt", []byte("We are a retail client seeking litigation defense support"), extract.FormatText),
		extract.NewDocument("second.pdf", []byte("broken"), extract.FormatPDF),
	}

	reports := decideAll(context.Background(), pipeline, docs)
	require.Len(t, reports, 2)
	assert.Equal(t, "first.txt", reports[0].FileInfo.Name)
	assert.Equal(t, "second.pdf", reports[1].FileInfo.Name)
	assert.Equal(t, decision.ModeMock, reports[0].Mode)
	assert.Contains(t, reports[1].Message, "could not be extracted")

	var buf bytes.Buffer
	require.NoError(t, writeReports(&buf, reports[:1]))

	var printed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &printed))
	assert.Equal(t, "mock", printed["mode"])
	assert.Len(t, printed["similar_projects"], 3)

	aiDecision, ok := printed["ai_decision"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"recommendation", "confidence_score", "executive_summary", "key_factors",
		"risk_assessment", "financial_analysis", "next_steps"} {
		assert.Contains(t, aiDecision, field)
	}
	assert.Equal(t, "PURSUE", aiDecision["recommendation"])
}

type scriptedSelector struct {
	actions []string
	err     error
	runs    int
}

func (s *scriptedSelector) Run() (int, string, error) {
	s.runs++
	if len(s.actions) == 0 {
		return 0, "", s.err
	}
	action := s.actions[0]
	s.actions = s.actions[1:]
	return 0, action, nil
}

func TestFollowUpEndsOnClosedInput(t *testing.T) {
	for _, inputErr := range []error{promptui.ErrEOF, promptui.ErrInterrupt} {
		selector := &scriptedSelector{actions: []string{PromptShowComparables}, err: inputErr}
		require.NoError(t, followUp(selector, zap.NewNop(), nil), "input error %v", inputErr)
		assert.Equal(t, 2, selector.runs)
	}
}

func TestFollowUpExitAndErrors(t *testing.T) {
	selector := &scriptedSelector{actions: []string{PromptExit, PromptShowComparables}}
	require.NoError(t, followUp(selector, zap.NewNop(), nil))
	assert.Equal(t, 1, selector.runs)

	broken := errors.New("terminal gone")
	assert.ErrorIs(t, followUp(&scriptedSelector{err: broken}, zap.NewNop(), nil), broken)

	assert.Error(t, followUp(&scriptedSelector{actions: []string{"unknown"}}, zap.NewNop(), nil))
}
