package ai

// Candidate is the structured output of a backend before validation.
// It may violate the schema: Recommendation can be any string and Missing
// names the required fields that were absent from the payload.
type Candidate struct {
	Recommendation    string   `json:"recommendation"`
	ConfidenceScore   float64  `json:"confidence_score"`
	ExecutiveSummary  string   `json:"executive_summary"`
	KeyFactors        []string `json:"key_factors"`
	RiskAssessment    string   `json:"risk_assessment"`
	FinancialAnalysis string   `json:"financial_analysis"`
	NextSteps         []string `json:"next_steps"`

	Missing []string `json:"-"`
}

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeFailure OutcomeKind = iota
	OutcomeStructured
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeStructured:
		return "structured"
	default:
		return "failure"
	}
}

// Outcome is the result of a single backend invocation: either a structured
// candidate or a failure reason. The zero value is a failure with an empty reason.
type Outcome struct {
	kind      OutcomeKind
	candidate Candidate
	reason    string
}

// Structured wraps a candidate returned by the backend.
func Structured(candidate Candidate) Outcome {
	return Outcome{kind: OutcomeStructured, candidate: candidate}
}

// Failure reports that the backend could not produce a candidate.
func Failure(reason string) Outcome {
	return Outcome{kind: OutcomeFailure, reason: reason}
}

func (o Outcome) Kind() OutcomeKind { return o.kind }

// Candidate returns the structured candidate and true for structured outcomes.
func (o Outcome) Candidate() (Candidate, bool) {
	if o.kind != OutcomeStructured {
		return Candidate{}, false
	}
	return o.candidate, true
}

// Reason returns the failure reason. It is empty for structured outcomes.
func (o Outcome) Reason() string { return o.reason }
