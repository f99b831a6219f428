package catalog

import "fmt"

// Engagement is a prior project used as a reference point for cost and risk.
type Engagement struct {
	ID              int      `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Cost            int64    `json:"cost" yaml:"cost"`
	DurationMonths  int      `json:"duration_months" yaml:"duration_months"`
	Tags            []string `json:"technology_stack" yaml:"tags"`
	Client          string   `json:"client" yaml:"client"`
	CompletionDate  string   `json:"completion_date" yaml:"completion_date"`
	SimilarityScore float64  `json:"similarity_score" yaml:"similarity_score"`
}

// Duration renders the engagement length the way the catalog UI shows it.
func (e Engagement) Duration() string {
	if e.DurationMonths == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", e.DurationMonths)
}

func (e Engagement) validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("engagement %q: id must be positive", e.Title)
	}
	if e.Title == "" {
		return fmt.Errorf("engagement %d: title is required", e.ID)
	}
	if e.Cost < 0 {
		return fmt.Errorf("engagement %d: cost must not be negative", e.ID)
	}
	if e.SimilarityScore < 0 || e.SimilarityScore > 1 {
		return fmt.Errorf("engagement %d: similarity score %v is outside [0,1]", e.ID, e.SimilarityScore)
	}
	return nil
}
