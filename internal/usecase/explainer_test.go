package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shoplens/backend/internal/domain"
)

func testCandidates(n int) []domain.CandidateProduct {
	names := []string{"Alpha TV", "Beta TV", "Gamma TV", "Delta TV", "Epsilon TV", "Zeta TV", "Eta TV"}
	candidates := make([]domain.CandidateProduct, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, domain.CandidateProduct{
			ID:       "tv-" + string(rune('a'+i)),
			Name:     names[i],
			Category: "tv",
		})
	}
	return candidates
}

func TestExplainEmptyCandidates(t *testing.T) {
	ai := &scriptedCompleter{}
	e := NewExplainer(ai)

	result := e.Explain(context.Background(), "a tv", domain.ParsedQuery{}, nil)

	if ai.calls != 0 {
		t.Errorf("reasoning calls = %d, want 0 for empty shortlist", ai.calls)
	}
	if result.Message != noMatchesMessage {
		t.Errorf("message = %q, want no-matches message", result.Message)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(result.Recommendations))
	}
}

func TestExplainValidResponse(t *testing.T) {
	ai := &scriptedCompleter{responses: []string{"```json\n" +
		`{"message":"Great picks.","recommendations":[{"product_id":"tv-a","score":88,"reasoning":"Bright panel."}]}` +
		"\n```"}}
	e := NewExplainer(ai)

	result := e.Explain(context.Background(), "a tv", domain.ParsedQuery{Category: "tv"}, testCandidates(2))

	if result.Message != "Great picks." {
		t.Errorf("message = %q", result.Message)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(result.Recommendations))
	}
	rec := result.Recommendations[0]
	if rec.ProductID != "tv-a" {
		t.Errorf("product_id = %q, want tv-a", rec.ProductID)
	}
	if rec.Score == nil || *rec.Score != 88 {
		t.Errorf("score = %v, want 88", rec.Score)
	}
	if rec.Reasoning != "Bright panel." {
		t.Errorf("reasoning = %q", rec.Reasoning)
	}
}

func TestExplainPromptCarriesCandidates(t *testing.T) {
	ai := &scriptedCompleter{responses: []string{`{"message":"ok","recommendations":[]}`}}
	e := NewExplainer(ai)

	e.Explain(context.Background(), "quiet washer", domain.ParsedQuery{UseCase: "family laundry"}, testCandidates(3))

	if len(ai.requests) != 1 {
		t.Fatalf("reasoning calls = %d, want 1", len(ai.requests))
	}
	req := ai.requests[0]
	if req.Temperature != explainTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, explainTemperature)
	}
	for _, want := range []string{"tv-a", "tv-b", "tv-c", "quiet washer"} {
		if !strings.Contains(req.User, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExplainMalformedResponseFallback(t *testing.T) {
	ai := &scriptedCompleter{responses: []string{"Sure! Here are my thoughts on these products..."}}
	e := NewExplainer(ai)

	result := e.Explain(context.Background(), "a tv", domain.ParsedQuery{}, testCandidates(7))

	if result.Message != malformedFallbackMessage {
		t.Errorf("message = %q, want malformed fallback", result.Message)
	}
	if len(result.Recommendations) != maxFallbackRecommendations {
		t.Fatalf("recommendations = %d, want %d", len(result.Recommendations), maxFallbackRecommendations)
	}
	first := result.Recommendations[0]
	if first.ProductID != "tv-a" {
		t.Errorf("first product = %q, want tv-a (shortlist order)", first.ProductID)
	}
	if first.Score == nil || *first.Score != fallbackScore {
		t.Errorf("score = %v, want %d", first.Score, fallbackScore)
	}
	if first.Reasoning != "Alpha TV - a solid choice in this category." {
		t.Errorf("reasoning = %q", first.Reasoning)
	}
}

func TestExplainServiceErrorFallback(t *testing.T) {
	ai := &scriptedCompleter{errs: []error{errors.New("timeout")}}
	e := NewExplainer(ai)

	result := e.Explain(context.Background(), "a tv", domain.ParsedQuery{}, testCandidates(2))

	if result.Message != unavailableFallbackMessage {
		t.Errorf("message = %q, want unavailable fallback", result.Message)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(result.Recommendations))
	}
	if result.Recommendations[0].Reasoning != "Alpha TV is a popular pick in its category." {
		t.Errorf("reasoning = %q", result.Recommendations[0].Reasoning)
	}
	if result.Recommendations[0].Score == nil || *result.Recommendations[0].Score != fallbackScore {
		t.Errorf("score = %v, want %d", result.Recommendations[0].Score, fallbackScore)
	}
}

func TestExplainFallbacksAreDistinct(t *testing.T) {
	if malformedFallbackMessage == unavailableFallbackMessage {
		t.Error("malformed and unavailable fallback messages must differ")
	}
	c := domain.CandidateProduct{ID: "x", Name: "X"}
	if solidChoiceReasoning(c) == unavailableReasoning(c) {
		t.Error("fallback reasoning strings must differ")
	}
}
