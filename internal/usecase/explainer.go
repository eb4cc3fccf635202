package usecase

import (
	"context"
	"fmt"

	"github.com/shoplens/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Explanation generation runs with a higher temperature for natural phrasing.
const (
	explainTemperature = 0.7
	explainMaxTokens   = 1000
)

// Fixed copy for the degraded paths. The pipeline guarantees a well-formed
// response even when every reasoning call fails, so these strings are part of
// the output contract and pinned by tests.
const (
	noMatchesMessage           = "I couldn't find any products matching your requirements. Could you try adjusting your budget or requirements?"
	malformedFallbackMessage   = "Here are some products that match your requirements:"
	unavailableFallbackMessage = "Here are some products that might interest you:"

	maxFallbackRecommendations = 5
	fallbackScore              = 70
)

// Explainer produces natural-language justifications and final scores for a
// shortlist of candidates via the external reasoning service.
type Explainer struct {
	ai domain.ChatCompleter
}

// NewExplainer creates a new explanation generator.
func NewExplainer(ai domain.ChatCompleter) *Explainer {
	return &Explainer{ai: ai}
}

// Explain asks the reasoning service to rank and justify the candidates. It
// never fails outward: a dead service and unparseable output each degrade to
// a deterministic shortlist with distinct messaging.
func (e *Explainer) Explain(ctx context.Context, query string, intent domain.ParsedQuery, candidates []domain.CandidateProduct) *domain.ExplanationResult {
	if len(candidates) == 0 {
		return fallbackExplanation(noMatchesMessage, nil, nil)
	}

	raw, err := e.ai.Complete(ctx, domain.CompletionRequest{
		System:      recommendationSystemPrompt,
		User:        buildRecommendationPrompt(query, intent, candidates),
		Temperature: explainTemperature,
		MaxTokens:   explainMaxTokens,
	})
	if err != nil {
		log.Warnf("explanation request failed, using fallback shortlist: %v", err)
		return fallbackExplanation(unavailableFallbackMessage, candidates, unavailableReasoning)
	}

	var result domain.ExplanationResult
	if err := extractJSON(raw, &result); err != nil {
		log.Warnf("explanation response unusable, using fallback shortlist: %v", err)
		return fallbackExplanation(malformedFallbackMessage, candidates, solidChoiceReasoning)
	}

	return &result
}

// fallbackExplanation builds the degraded response shape shared by the
// "no matches" and "explanation failed" paths: up to five candidates, each at
// the fixed fallback score with an auto-generated reasoning string.
func fallbackExplanation(message string, candidates []domain.CandidateProduct, reason func(domain.CandidateProduct) string) *domain.ExplanationResult {
	recommendations := make([]domain.ExplanationEntry, 0, maxFallbackRecommendations)
	for i, c := range candidates {
		if i >= maxFallbackRecommendations {
			break
		}
		score := float64(fallbackScore)
		recommendations = append(recommendations, domain.ExplanationEntry{
			ProductID: c.ID,
			Score:     &score,
			Reasoning: reason(c),
		})
	}
	return &domain.ExplanationResult{
		Message:         message,
		Recommendations: recommendations,
	}
}

func solidChoiceReasoning(c domain.CandidateProduct) string {
	return fmt.Sprintf("%s - a solid choice in this category.", c.Name)
}

func unavailableReasoning(c domain.CandidateProduct) string {
	return fmt.Sprintf("%s is a popular pick in its category.", c.Name)
}
