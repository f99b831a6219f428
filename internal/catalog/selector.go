package catalog

import (
	"context"
	"sort"
)

// DefaultTopK is the number of comparables selected when no explicit limit is given.
const DefaultTopK = 3

// Selector picks the engagements most relevant to a document.
// Implementations must return at most k entries ordered by relevance and must not
// modify the input slice.
type Selector interface {
	Select(ctx context.Context, entries []Engagement, documentText string, k int) []Engagement
}

// ScoreSelector ranks engagements by their stored similarity score and ignores
// the document text. Equal scores keep catalog order.
type ScoreSelector struct{}

func (ScoreSelector) Select(_ context.Context, entries []Engagement, _ string, k int) []Engagement {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]Engagement, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SimilarityScore > ranked[j].SimilarityScore
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
