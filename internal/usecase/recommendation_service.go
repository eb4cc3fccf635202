package usecase

import (
	"context"
	"sort"

	"github.com/shoplens/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	// candidateLimit bounds the shortlist handed to the reasoning service.
	candidateLimit = 10
	// recommendationLimit bounds the final response.
	recommendationLimit = 3
	// defaultRecommendationScore is used when the reasoning service omits one.
	defaultRecommendationScore = 70

	defaultSummaryMessage = "Here are your recommendations:"
)

// RecommendationService orchestrates the full pipeline:
// parse intent -> filter catalog -> score -> rank -> explain -> assemble.
// It implements domain.Recommender.
type RecommendationService struct {
	catalog   domain.Catalog
	parser    *IntentParser
	scorer    *ScoringService
	explainer *Explainer
}

// NewRecommendationService creates the orchestrator with its dependencies.
func NewRecommendationService(catalog domain.Catalog, ai domain.ChatCompleter) *RecommendationService {
	return &RecommendationService{
		catalog:   catalog,
		parser:    NewIntentParser(ai),
		scorer:    NewScoringService(),
		explainer: NewExplainer(ai),
	}
}

// GetRecommendations processes a free-text query end to end. It never
// returns an error: external failures degrade inside the pipeline and the
// response is always fully formed.
func (s *RecommendationService) GetRecommendations(ctx context.Context, query string) *domain.RecommendationResponse {
	intent := s.parser.Parse(ctx, query)

	// Brand filtering is reserved for the listing endpoint; recommendations
	// constrain by category only.
	filtered := s.catalog.Filter(intent.Category, nil)
	if len(filtered) == 0 {
		return &domain.RecommendationResponse{
			Query:           query,
			ParsedQuery:     intent,
			Recommendations: []domain.Recommendation{},
			Message:         noMatchesMessage,
		}
	}

	scored := s.scorer.Score(filtered, intent, query)
	// Stable sort: equal scores keep the catalog's original relative order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	candidates := projectCandidates(scored, candidateLimit)
	result := s.explainer.Explain(ctx, query, intent, candidates)

	message := result.Message
	if message == "" {
		message = defaultSummaryMessage
	}

	return &domain.RecommendationResponse{
		Query:           query,
		ParsedQuery:     intent,
		Recommendations: s.resolveRecommendations(result.Recommendations),
		Message:         message,
	}
}

// projectCandidates reduces the top scored products to the representation the
// explanation generator sees.
func projectCandidates(scored []domain.ScoredProduct, limit int) []domain.CandidateProduct {
	if len(scored) > limit {
		scored = scored[:limit]
	}
	candidates := make([]domain.CandidateProduct, 0, len(scored))
	for _, sp := range scored {
		p := sp.Product
		candidates = append(candidates, domain.CandidateProduct{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Specs:    p.Specs,
			Features: p.Features,
			Sizes:    p.Sizes,
			URL:      p.URL,
		})
	}
	return candidates
}

// resolveRecommendations turns generator entries back into catalog products.
// Entries whose id does not resolve are silently dropped; at most
// recommendationLimit entries are considered.
func (s *RecommendationService) resolveRecommendations(entries []domain.ExplanationEntry) []domain.Recommendation {
	if len(entries) > recommendationLimit {
		entries = entries[:recommendationLimit]
	}

	recommendations := make([]domain.Recommendation, 0, len(entries))
	for _, entry := range entries {
		product, ok := s.catalog.GetByID(entry.ProductID)
		if !ok {
			log.Debugf("dropping recommendation with unknown product id %q", entry.ProductID)
			continue
		}

		score := float64(defaultRecommendationScore)
		if entry.Score != nil {
			score = *entry.Score
		}

		recommendations = append(recommendations, domain.Recommendation{
			Product:   *product,
			Score:     score,
			Reasoning: entry.Reasoning,
		})
	}
	return recommendations
}
