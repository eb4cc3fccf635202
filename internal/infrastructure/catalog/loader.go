package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/shoplens/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Package-level compiled regex patterns for performance
var (
	slugRegex          = regexp.MustCompile(`[^a-z0-9]+`)
	literCapacityRegex = regexp.MustCompile(`(?i)(\d+)\s*l`)
	kiloCapacityRegex  = regexp.MustCompile(`(?i)(\d+)\s*kg`)
)

// rawProduct mirrors one record of the scraped catalog file.
type rawProduct struct {
	ProductName         string                 `json:"product_name"`
	Brand               string                 `json:"brand"`
	TechnicalSpecs      map[string]interface{} `json:"technical_specifications"`
	KeyFeatures         []interface{}          `json:"key_features"`
	ProductNameCitation string                 `json:"product_name_citation"`
}

type catalogFile struct {
	Products []rawProduct `json:"products"`
}

// Detector assigns a category to a raw product record. Detection is a
// catalog-loading concern and stays pluggable so scoring never depends on it.
type Detector func(name string, specs map[string]interface{}) domain.Category

// LoadOptions configures the catalog loader.
type LoadOptions struct {
	// DefaultBrand is used for records without an explicit brand field.
	DefaultBrand string
	// Detect overrides the category detection heuristics. Nil means DetectCategory.
	Detect Detector
}

// Load reads the static catalog file and builds the in-memory store.
// A missing or unreadable file is a construction-time failure; nothing else
// in the pipeline is allowed to fail startup.
func Load(path string, opts LoadOptions) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	detect := opts.Detect
	if detect == nil {
		detect = DetectCategory
	}

	products := make([]domain.Product, 0, len(file.Products))
	for i, raw := range file.Products {
		name := raw.ProductName
		if name == "" {
			name = fmt.Sprintf("Product %d", i)
		}

		brand := raw.Brand
		if brand == "" {
			brand = opts.DefaultBrand
		}

		specs := raw.TechnicalSpecs
		if specs == nil {
			specs = map[string]interface{}{}
		}

		products = append(products, domain.Product{
			ID:       generateID(name, i),
			Name:     name,
			Category: detect(name, specs),
			Brand:    brand,
			Specs:    specs,
			Features: extractFeatures(raw.KeyFeatures),
			URL:      raw.ProductNameCitation,
			Sizes:    extractSizes(specs, name),
		})
	}

	store := NewStore(products)

	counts := map[domain.Category]int{}
	for _, p := range products {
		counts[p.Category]++
	}
	log.Infof("Loaded %d products from %s (categories: %v)", len(products), path, counts)

	return store, nil
}

// extractFeatures flattens key_features entries: each is either a plain
// string or a map carrying the text under a "value" field.
func extractFeatures(raw []interface{}) []string {
	features := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			features = append(features, v)
		case map[string]interface{}:
			if s, ok := v["value"].(string); ok {
				features = append(features, s)
			}
		}
	}
	return features
}

// extractSizes collects available sizes from well-known spec fields and from
// capacity markers in the product name.
func extractSizes(specs map[string]interface{}, name string) []string {
	var sizes []string

	for _, key := range []string{"display_sizes", "available_sizes", "screen_sizes", "sizes"} {
		if list, ok := specs[key].([]interface{}); ok {
			for _, entry := range list {
				if s, ok := entry.(string); ok {
					sizes = append(sizes, s)
				}
			}
		}
	}

	if m := literCapacityRegex.FindStringSubmatch(name); m != nil {
		sizes = append(sizes, m[1]+"L")
	}
	if m := kiloCapacityRegex.FindStringSubmatch(name); m != nil {
		sizes = append(sizes, m[1]+"kg")
	}

	if s, ok := specs["projection_size"].(string); ok {
		sizes = append(sizes, s)
	}

	return sizes
}

// generateID builds a stable product id from the name and catalog index.
func generateID(name string, index int) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	return fmt.Sprintf("%s-%03d", slug, index)
}
