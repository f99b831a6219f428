package ai

import (
	"context"

	"github.com/spigell/rfp-advisor/internal/catalog"
)

// Recommendation is the binary go/no-go verdict for an RFP.
type Recommendation string

const (
	Pursue  Recommendation = "PURSUE"
	Decline Recommendation = "DECLINE"
)

// Valid reports whether r is one of the two accepted verdicts. The comparison is case-sensitive.
func (r Recommendation) Valid() bool {
	return r == Pursue || r == Decline
}

// Structured output field names. The order is the order the model is asked to fill them in.
const (
	FieldRecommendation    = "recommendation"
	FieldConfidenceScore   = "confidence_score"
	FieldExecutiveSummary  = "executive_summary"
	FieldKeyFactors        = "key_factors"
	FieldRiskAssessment    = "risk_assessment"
	FieldFinancialAnalysis = "financial_analysis"
	FieldNextSteps         = "next_steps"
)

// RequiredFields lists every field a structured decision must carry.
var RequiredFields = []string{
	FieldRecommendation,
	FieldConfidenceScore,
	FieldExecutiveSummary,
	FieldKeyFactors,
	FieldRiskAssessment,
	FieldFinancialAnalysis,
	FieldNextSteps,
}

// Decision is the final, always well-formed answer handed to callers.
type Decision struct {
	Recommendation    Recommendation `json:"recommendation"`
	ConfidenceScore   float64        `json:"confidence_score"`
	ExecutiveSummary  string         `json:"executive_summary"`
	KeyFactors        []string       `json:"key_factors"`
	RiskAssessment    string         `json:"risk_assessment"`
	FinancialAnalysis string         `json:"financial_analysis"`
	NextSteps         []string       `json:"next_steps"`
}

// Request is the per-call input of the pipeline.
type Request struct {
	DocumentText string
	Comparables  []catalog.Engagement
}

// Backend generates a structured decision for an assembled prompt.
// Implementations never panic and never return errors: every problem is reported as a Failure outcome.
type Backend interface {
	Generate(ctx context.Context, prompt string) Outcome
	Provider() string
	Model() string
}
