package catalog

import (
	"sort"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Store holds the full product catalog in memory. It is immutable after
// construction, so concurrent reads need no synchronization.
type Store struct {
	products []domain.Product
	byID     map[string]*domain.Product
}

// NewStore builds a store over an already-loaded product list. The catalog's
// original order is preserved; rankers rely on it for stable tie-breaking.
func NewStore(products []domain.Product) *Store {
	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &Store{
		products: products,
		byID:     byID,
	}
}

// All returns every product in catalog order. Callers must treat the
// returned slice as read-only.
func (s *Store) All() []domain.Product {
	return s.products
}

// GetByID looks up a single product by its id.
func (s *Store) GetByID(id string) (*domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Filter returns products matching all supplied criteria. An empty or
// unrecognized category value acts as no filter rather than an error.
func (s *Store) Filter(category string, brands []string) []domain.Product {
	results := s.products

	if cat, ok := domain.ParseCategory(category); ok {
		filtered := make([]domain.Product, 0, len(results))
		for _, p := range results {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		results = filtered
	}

	if len(brands) > 0 {
		wanted := make(map[string]bool, len(brands))
		for _, b := range brands {
			wanted[strings.ToLower(b)] = true
		}
		filtered := make([]domain.Product, 0, len(results))
		for _, p := range results {
			if wanted[strings.ToLower(p.Brand)] {
				filtered = append(filtered, p)
			}
		}
		results = filtered
	}

	return results
}

// Search returns products whose name, serialized specs, or concatenated
// features contain text as a case-insensitive substring. Fields are checked
// in that order and a product is returned at most once.
func (s *Store) Search(text string) []domain.Product {
	query := strings.ToLower(text)
	var results []domain.Product

	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			results = append(results, p)
			continue
		}
		if strings.Contains(p.SpecsText(), query) {
			results = append(results, p)
			continue
		}
		if strings.Contains(p.FeaturesText(), query) {
			results = append(results, p)
		}
	}

	return results
}

// Categories returns the sorted distinct categories present in the catalog.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	for _, p := range s.products {
		seen[string(p.Category)] = true
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Brands returns the sorted distinct brands, optionally scoped to a category.
func (s *Store) Brands(category string) []string {
	products := s.products
	if cat, ok := domain.ParseCategory(category); ok {
		scoped := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.Category == cat {
				scoped = append(scoped, p)
			}
		}
		products = scoped
	}

	seen := make(map[string]bool)
	for _, p := range products {
		seen[p.Brand] = true
	}
	brands := make([]string, 0, len(seen))
	for b := range seen {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}
