package usecase

import (
	"context"

	"github.com/shoplens/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Intent parsing runs with a low temperature for consistent extraction.
const (
	intentTemperature = 0.1
	intentMaxTokens   = 500
)

// IntentParser turns a free-text shopping query into a structured intent via
// the external reasoning service.
type IntentParser struct {
	ai domain.ChatCompleter
}

// NewIntentParser creates a new intent parser.
func NewIntentParser(ai domain.ChatCompleter) *IntentParser {
	return &IntentParser{ai: ai}
}

// Parse extracts structured intent from a query. It never fails outward: on
// any service or parse error it degrades to an empty intent so the rest of
// the pipeline still runs against the full catalog.
func (p *IntentParser) Parse(ctx context.Context, query string) domain.ParsedQuery {
	raw, err := p.ai.Complete(ctx, domain.CompletionRequest{
		System:      queryParsingSystemPrompt,
		User:        buildQueryParsingPrompt(query),
		Temperature: intentTemperature,
		MaxTokens:   intentMaxTokens,
	})
	if err != nil {
		log.Warnf("intent parsing request failed, using empty intent: %v", err)
		return domain.ParsedQuery{}
	}

	var intent domain.ParsedQuery
	if err := extractJSON(raw, &intent); err != nil {
		log.Warnf("intent parsing returned unusable JSON, using empty intent: %v", err)
		return domain.ParsedQuery{}
	}

	return intent
}
