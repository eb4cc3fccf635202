package domain

import (
	"encoding/json"
	"strings"
)

// Category is the closed set of product categories the catalog understands.
type Category string

const (
	CategoryTV             Category = "tv"
	CategoryRefrigerator   Category = "refrigerator"
	CategoryWashingMachine Category = "washing_machine"
	CategoryDryer          Category = "dryer"
	CategoryAC             Category = "ac"
	CategorySoundbar       Category = "soundbar"
	CategoryProjector      Category = "projector"
	CategoryDishwasher     Category = "dishwasher"
)

// Categories lists every recognized category.
var Categories = []Category{
	CategoryTV,
	CategoryRefrigerator,
	CategoryWashingMachine,
	CategoryDryer,
	CategoryAC,
	CategorySoundbar,
	CategoryProjector,
	CategoryDishwasher,
}

// ParseCategory maps a free-form string onto a recognized category.
// Unrecognized values return ok=false; callers treat that as "no constraint",
// never as an error.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Product is a single catalog entry. Products are immutable after the
// catalog load and owned exclusively by the catalog store.
type Product struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Category Category               `json:"category"`
	Brand    string                 `json:"brand"`
	Specs    map[string]interface{} `json:"specs"`
	Features []string               `json:"features"`
	URL      string                 `json:"url,omitempty"`
	Sizes    []string               `json:"sizes"`
}

// SpecsText returns the specs map serialized to lowercase JSON. Go marshals
// map keys in sorted order, so the text is deterministic for a given product.
// Scoring and search both match against this same serialization.
func (p *Product) SpecsText() string {
	if len(p.Specs) == 0 {
		return "{}"
	}
	b, err := json.Marshal(p.Specs)
	if err != nil {
		return "{}"
	}
	return strings.ToLower(string(b))
}

// FeaturesText returns all feature entries joined into one lowercase string.
func (p *Product) FeaturesText() string {
	return strings.ToLower(strings.Join(p.Features, " "))
}
