package domain

import "context"

// Catalog is the read-only product store the recommendation pipeline and the
// HTTP layer run against. Implementations must be safe for concurrent reads;
// the catalog never changes after the initial load.
type Catalog interface {
	// All returns every product in catalog order.
	All() []Product
	// GetByID looks up a single product by its id.
	GetByID(id string) (*Product, bool)
	// Filter returns products matching all supplied criteria. An empty or
	// unrecognized category acts as no filter; brand comparison is
	// case-insensitive.
	Filter(category string, brands []string) []Product
	// Search returns products whose name, serialized specs, or concatenated
	// features contain text as a case-insensitive substring.
	Search(text string) []Product
	// Categories returns the sorted distinct categories present in the catalog.
	Categories() []string
	// Brands returns the sorted distinct brands, optionally scoped to a category.
	Brands(category string) []string
}

// CompletionRequest describes one round trip to the external reasoning
// service: a fixed system instruction plus a user instruction.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// ChatCompleter is a request/response text-completion client. The returned
// text is free-form and expected to contain a JSON payload, possibly wrapped
// in markdown code fences.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Recommender produces a ranked, explained shortlist for a free-text query.
// It never fails outward: every external failure degrades to a deterministic
// fallback inside the pipeline.
type Recommender interface {
	GetRecommendations(ctx context.Context, query string) *RecommendationResponse
}
