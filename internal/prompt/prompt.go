package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/catalog"
	"github.com/spigell/rfp-advisor/internal/utils"
)

//go:embed policy.md
var policy string

// MaxDocumentRunes bounds the RFP excerpt embedded in the prompt.
const MaxDocumentRunes = 3000

// SuccessRate is the narrative win-rate figure quoted to the model.
const SuccessRate = "78% win rate on similar legal-services RFPs"

// Policy returns the decision policy text sent ahead of every RFP.
func Policy() string {
	return strings.TrimSpace(policy)
}

// Assemble builds the decision prompt. It performs no I/O and returns the same
// string for the same inputs.
func Assemble(req ai.Request) string {
	comparables := req.Comparables

	var b strings.Builder

	b.WriteString(Policy())

	b.WriteString("\n\n###RFP Document###\n")
	b.WriteString(utils.TruncateRunes(req.DocumentText, MaxDocumentRunes))

	b.WriteString("\n\n###Comparable Engagements###\n")
	if len(comparables) == 0 {
		b.WriteString("- none\n")
	}
	for _, e := range comparables {
		b.WriteString(ComparableLine(e))
		b.WriteString("\n")
	}

	b.WriteString("\n###Supporting Statistics###\n")
	fmt.Fprintf(&b, "- Average cost of comparable engagements: %s\n", FormatCost(AverageCost(comparables)))
	fmt.Fprintf(&b, "- Historical success rate: %s\n", SuccessRate)

	return b.String()
}

// ComparableLine renders one engagement as a single prompt line.
func ComparableLine(e catalog.Engagement) string {
	return fmt.Sprintf("- %s: %s, %s, %.0f%% similar",
		e.Title, FormatCost(e.Cost), e.Duration(), e.SimilarityScore*100)
}

// AverageCost is the integer mean cost; zero for an empty list.
func AverageCost(comparables []catalog.Engagement) int64 {
	if len(comparables) == 0 {
		return 0
	}
	var sum int64
	for _, e := range comparables {
		sum += e.Cost
	}
	return sum / int64(len(comparables))
}

// FormatCost renders a dollar amount with thousands separators, e.g. $125,000.
func FormatCost(cost int64) string {
	return "$" + humanize.Comma(cost)
}
