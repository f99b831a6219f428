package ai

import "testing"

func TestOutcomeVariants(t *testing.T) {
	structured := Structured(Candidate{Recommendation: "PURSUE"})
	if structured.Kind() != OutcomeStructured {
		t.Fatalf("expected structured kind, got %s", structured.Kind())
	}
	candidate, ok := structured.Candidate()
	if !ok || candidate.Recommendation != "PURSUE" {
		t.Fatalf("unexpected candidate: %+v (ok=%v)", candidate, ok)
	}
	if structured.Reason() != "" {
		t.Fatalf("expected empty reason for structured outcome")
	}

	failed := Failure("timeout")
	if failed.Kind() != OutcomeFailure {
		t.Fatalf("expected failure kind, got %s", failed.Kind())
	}
	if _, ok := failed.Candidate(); ok {
		t.Fatalf("failure must not expose a candidate")
	}
	if failed.Reason() != "timeout" {
		t.Fatalf("unexpected reason: %q", failed.Reason())
	}

	var zero Outcome
	if zero.Kind() != OutcomeFailure {
		t.Fatalf("zero outcome must be a failure")
	}
}

func TestRecommendationValid(t *testing.T) {
	cases := map[Recommendation]bool{
		Pursue:    true,
		Decline:   true,
		"pursue":  false,
		"MAYBE":   false,
		"":        false,
		" PURSUE": false,
	}

	for rec, want := range cases {
		if got := rec.Valid(); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", rec, got, want)
		}
	}
}
