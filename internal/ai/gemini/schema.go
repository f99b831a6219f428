package gemini

import (
	"google.golang.org/genai"

	"github.com/spigell/rfp-advisor/internal/ai"
)

// DecisionSchema is the response schema every decision request is constrained to.
func DecisionSchema() *genai.Schema {
	text := func(description string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: description}
	}
	list := func(description string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: description,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			ai.FieldRecommendation: {
				Type:        genai.TypeString,
				Description: "Binary decision on whether to respond to the RFP",
				Enum:        []string{string(ai.Pursue), string(ai.Decline)},
			},
			ai.FieldConfidenceScore: {
				Type:        genai.TypeNumber,
				Description: "Confidence in the recommendation",
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(1.0),
			},
			ai.FieldExecutiveSummary:  text("A 2-3 sentence summary"),
			ai.FieldKeyFactors:        list("Key factors influencing the decision"),
			ai.FieldRiskAssessment:    text("Analysis of the risks involved"),
			ai.FieldFinancialAnalysis: text("Cost and profit analysis"),
			ai.FieldNextSteps:         list("Recommended next steps"),
		},
		Required:         append([]string(nil), ai.RequiredFields...),
		PropertyOrdering: append([]string(nil), ai.RequiredFields...),
	}
}
