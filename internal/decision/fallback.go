package decision

import (
	"fmt"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/catalog"
	"github.com/spigell/rfp-advisor/internal/prompt"
)

const mockConfidence = 0.85

// Mock is the static decision used when no backend is configured. Only the
// financial analysis is derived from input: the cost range of the engagements.
func Mock(engagements []catalog.Engagement) ai.Decision {
	return ai.Decision{
		Recommendation:   ai.Pursue,
		ConfidenceScore:  mockConfidence,
		ExecutiveSummary: "Demo decision: the reasoning service is not configured. The RFP appears to fit our legal services practice and comparable engagements suggest a viable opportunity.",
		KeyFactors: []string{
			"Strong track record on comparable legal engagements",
			"Scope aligns with core practice areas",
			"Healthy historical win rate on similar RFPs",
		},
		RiskAssessment:    "Demo assessment: standard engagement risks. Configure the reasoning service for an RFP-specific analysis.",
		FinancialAnalysis: costRange(engagements),
		NextSteps: []string{
			"Configure the reasoning service for a live analysis",
			"Confirm partner availability for the engagement",
			"Prepare a pricing proposal based on comparable engagements",
		},
	}
}

func costRange(engagements []catalog.Engagement) string {
	if len(engagements) == 0 {
		return "No comparable engagements were available to estimate the cost range."
	}

	low, high := engagements[0].Cost, engagements[0].Cost
	for _, e := range engagements[1:] {
		low = min(low, e.Cost)
		high = max(high, e.Cost)
	}

	return fmt.Sprintf("Comparable engagements ranged from %s to %s, indicating a viable budget range for this type of work.",
		prompt.FormatCost(low), prompt.FormatCost(high))
}
