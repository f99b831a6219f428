package decision

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/catalog"
)

func fullCandidate() ai.Candidate {
	return ai.Candidate{
		Recommendation:    "PURSUE",
		ConfidenceScore:   0.64,
		ExecutiveSummary:  "Good fit.",
		KeyFactors:        []string{"fit"},
		RiskAssessment:    "Low.",
		FinancialAnalysis: "Healthy margins.",
		NextSteps:         []string{"draft"},
	}
}

func assertWellFormed(t *testing.T, d ai.Decision) {
	t.Helper()
	assert.True(t, d.Recommendation.Valid(), "recommendation %q", d.Recommendation)
	assert.GreaterOrEqual(t, d.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, d.ConfidenceScore, 1.0)
	assert.NotNil(t, d.KeyFactors)
	assert.NotNil(t, d.NextSteps)
}

func TestValidateAcceptsConformingCandidate(t *testing.T) {
	got := Validate(ai.Structured(fullCandidate()))

	want := ai.Decision{
		Recommendation:    ai.Pursue,
		ConfidenceScore:   0.64,
		ExecutiveSummary:  "Good fit.",
		KeyFactors:        []string{"fit"},
		RiskAssessment:    "Low.",
		FinancialAnalysis: "Healthy margins.",
		NextSteps:         []string{"draft"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected decision (-want +got):\n%s", diff)
	}
}

func TestValidateCoercesInvalidRecommendation(t *testing.T) {
	for _, rec := range []string{"MAYBE", "", "pursue", "Pursue", " PURSUE", "REVIEW_REQUIRED"} {
		t.Run(rec, func(t *testing.T) {
			candidate := fullCandidate()
			candidate.Recommendation = rec

			got, mode := validate(ai.Structured(candidate))
			assert.Equal(t, ai.Decline, got.Recommendation)
			assert.Equal(t, ModeLive, mode)
			// the rest of the candidate is kept
			assert.Equal(t, "Good fit.", got.ExecutiveSummary)
		})
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	candidate := fullCandidate()
	candidate.Missing = []string{ai.FieldRiskAssessment}

	got, mode := validate(ai.Structured(candidate))
	assert.Equal(t, ModeFailure, mode)

	failed := Failed("structured output missing required fields: risk_assessment")
	if diff := cmp.Diff(failed, got); diff != "" {
		t.Fatalf("expected failure decision (-want +got):\n%s", diff)
	}
	assert.NotContains(t, got.ExecutiveSummary, "Good fit.")
}

func TestValidateFailure(t *testing.T) {
	got, mode := validate(ai.Failure("401 Unauthorized"))
	assert.Equal(t, ModeFailure, mode)
	assert.Equal(t, ai.Decline, got.Recommendation)
	assert.Equal(t, 0.3, got.ConfidenceScore)
	assert.Contains(t, got.ExecutiveSummary, "401 Unauthorized")
	assert.Contains(t, got.RiskAssessment, "manually")
	assertWellFormed(t, got)

	empty := Validate(ai.Failure(""))
	assert.Contains(t, empty.ExecutiveSummary, "unknown error")
}

func TestValidateClampsScoreAndFillsLists(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{score: 1.7, want: 1},
		{score: -0.2, want: 0},
		{score: math.NaN(), want: 0},
		{score: 0, want: 0},
		{score: 1, want: 1},
	}

	for _, tt := range tests {
		candidate := fullCandidate()
		candidate.ConfidenceScore = tt.score
		candidate.KeyFactors = nil
		candidate.NextSteps = nil

		got := Validate(ai.Structured(candidate))
		assert.Equal(t, tt.want, got.ConfidenceScore)
		assertWellFormed(t, got)
	}
}

func TestMockDecision(t *testing.T) {
	got := Mock([]catalog.Engagement{
		{ID: 1, Title: "a", Cost: 750000},
		{ID: 2, Title: "b", Cost: 125000},
	})

	assert.Equal(t, ai.Pursue, got.Recommendation)
	assert.Equal(t, 0.85, got.ConfidenceScore)
	assert.Contains(t, got.FinancialAnalysis, "$125,000")
	assert.Contains(t, got.FinancialAnalysis, "$750,000")
	assert.Less(t, strings.Index(got.FinancialAnalysis, "$125,000"), strings.Index(got.FinancialAnalysis, "$750,000"))
	assertWellFormed(t, got)

	none := Mock(nil)
	assert.Contains(t, none.FinancialAnalysis, "No comparable engagements")
}

func TestMockAndFailureAreDistinguishable(t *testing.T) {
	mock := Mock([]catalog.Engagement{{ID: 1, Title: "a", Cost: 1}})
	failed := Failed("timeout")

	require.NotEqual(t, mock.Recommendation, failed.Recommendation)
	require.NotEqual(t, mock.ConfidenceScore, failed.ConfidenceScore)
	require.NotEqual(t, mock.ExecutiveSummary, failed.ExecutiveSummary)
	require.NotEqual(t, mock.FinancialAnalysis, failed.FinancialAnalysis)
}
