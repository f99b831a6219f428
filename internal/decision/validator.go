package decision

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/rfp-advisor/internal/ai"
)

// Mode tells which path produced a decision.
type Mode string

const (
	// ModeLive is a validated answer from the backend.
	ModeLive Mode = "live"
	// ModeFailure is the conservative answer used when the configured backend errors.
	ModeFailure Mode = "failure"
	// ModeMock is the static answer used when no backend is configured.
	ModeMock Mode = "mock"
)

const failureConfidence = 0.3

// Validate turns any backend outcome into a fully populated decision.
func Validate(outcome ai.Outcome) ai.Decision {
	decision, _ := validate(outcome)
	return decision
}

func validate(outcome ai.Outcome) (ai.Decision, Mode) {
	candidate, ok := outcome.Candidate()
	if !ok {
		return Failed(outcome.Reason()), ModeFailure
	}

	// partial structured output is rejected as a whole
	if len(candidate.Missing) > 0 {
		reason := "structured output missing required fields: " + strings.Join(candidate.Missing, ", ")
		return Failed(reason), ModeFailure
	}

	recommendation := ai.Recommendation(candidate.Recommendation)
	if !recommendation.Valid() {
		recommendation = ai.Decline
	}

	return ai.Decision{
		Recommendation:    recommendation,
		ConfidenceScore:   clampScore(candidate.ConfidenceScore),
		ExecutiveSummary:  candidate.ExecutiveSummary,
		KeyFactors:        nonNil(candidate.KeyFactors),
		RiskAssessment:    candidate.RiskAssessment,
		FinancialAnalysis: candidate.FinancialAnalysis,
		NextSteps:         nonNil(candidate.NextSteps),
	}, ModeLive
}

// Failed is the fixed conservative decision returned when the backend errors.
// The reason is kept in the summary so operators can see what went wrong.
func Failed(reason string) ai.Decision {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "unknown error"
	}

	return ai.Decision{
		Recommendation:    ai.Decline,
		ConfidenceScore:   failureConfidence,
		ExecutiveSummary:  fmt.Sprintf("Automated analysis failed: %s. Manual review is required before deciding on this RFP.", reason),
		KeyFactors:        []string{"Automated analysis unavailable", "Manual review required"},
		RiskAssessment:    "Risks could not be assessed automatically. A partner must review the RFP manually.",
		FinancialAnalysis: "Financial analysis could not be completed automatically. Review pricing against comparable engagements manually.",
		NextSteps: []string{
			"Escalate the RFP for manual partner review",
			"Compare the RFP scope against comparable engagements by hand",
			"Retry the automated analysis once the reasoning service is available",
		},
	}
}

func clampScore(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
