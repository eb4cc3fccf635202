package domain

// ParsedQuery is the structured intent extracted from a free-text shopping
// query. Every field is optional: the zero value means "unconstrained" and is
// also the degraded result when intent parsing fails.
type ParsedQuery struct {
	Category         string   `json:"category,omitempty"`
	UseCase          string   `json:"use_case,omitempty"`
	RoomSize         string   `json:"room_size,omitempty"`
	FamilySize       int      `json:"family_size,omitempty"`
	Capacity         string   `json:"capacity,omitempty"`
	SizePreference   string   `json:"size_preference,omitempty"`
	MustHaveFeatures []string `json:"must_have_features"`
	Keywords         []string `json:"keywords"`
}

// ScoredProduct pairs a product with its heuristic match score. It only
// lives inside the scoring/ranking pipeline for a single request.
type ScoredProduct struct {
	Product Product
	Score   int
}

// CandidateProduct is the reduced product projection handed to the
// explanation generator.
type CandidateProduct struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Category Category               `json:"category"`
	Specs    map[string]interface{} `json:"specs"`
	Features []string               `json:"features"`
	Sizes    []string               `json:"sizes"`
	URL      string                 `json:"url,omitempty"`
}

// ExplanationEntry is one recommendation produced by the explanation
// generator. Score is a pointer so an absent score can be told apart from an
// explicit zero; the orchestrator substitutes the default for absent scores.
type ExplanationEntry struct {
	ProductID string   `json:"product_id"`
	Score     *float64 `json:"score"`
	Reasoning string   `json:"reasoning"`
}

// ExplanationResult is the explanation generator's full output.
type ExplanationResult struct {
	Message         string             `json:"message"`
	Recommendations []ExplanationEntry `json:"recommendations"`
}

// Recommendation is a fully resolved entry of the final response.
type Recommendation struct {
	Product   Product `json:"product"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// RecommendationResponse is the complete answer to one query. It is fully
// constructed before being returned; there is no partial or streaming state.
type RecommendationResponse struct {
	Query           string           `json:"query"`
	ParsedQuery     ParsedQuery      `json:"parsed_query"`
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message"`
}
