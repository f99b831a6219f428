package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(entries []Engagement) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func TestScoreSelectorTopK(t *testing.T) {
	entries := []Engagement{
		{ID: 1, Title: "b", SimilarityScore: 0.5},
		{ID: 2, Title: "e", SimilarityScore: 0.1},
		{ID: 3, Title: "a", SimilarityScore: 0.9},
		{ID: 4, Title: "c", SimilarityScore: 0.7},
		{ID: 5, Title: "d", SimilarityScore: 0.3},
	}

	got := ScoreSelector{}.Select(context.Background(), entries, "ignored", 3)
	assert.Equal(t, []string{"a", "c", "b"}, titles(got))

	// input order is untouched
	assert.Equal(t, "b", entries[0].Title)
}

func TestScoreSelectorStableTies(t *testing.T) {
	entries := []Engagement{
		{ID: 1, Title: "first", SimilarityScore: 0.5},
		{ID: 2, Title: "second", SimilarityScore: 0.5},
		{ID: 3, Title: "top", SimilarityScore: 0.8},
		{ID: 4, Title: "third", SimilarityScore: 0.5},
	}

	got := ScoreSelector{}.Select(context.Background(), entries, "", 4)
	assert.Equal(t, []string{"top", "first", "second", "third"}, titles(got))
}

func TestScoreSelectorSmallCatalogAndDefaultK(t *testing.T) {
	entries := []Engagement{
		{ID: 1, Title: "x", SimilarityScore: 0.2},
		{ID: 2, Title: "y", SimilarityScore: 0.4},
	}

	assert.Equal(t, []string{"y", "x"}, titles(ScoreSelector{}.Select(context.Background(), entries, "", 3)))
	assert.Empty(t, ScoreSelector{}.Select(context.Background(), nil, "", 3))

	c, err := Default()
	assert.NoError(t, err)
	assert.Len(t, ScoreSelector{}.Select(context.Background(), c.All(), "", 0), DefaultTopK)
}
