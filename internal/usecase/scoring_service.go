package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Scoring bonuses. All additive on top of the base; the total is capped at
// maxScore, so every product lands in [baseScore, maxScore].
const (
	baseScore            = 50
	categoryMatchBonus   = 15
	keywordNameBonus     = 10 // keyword found in the product name
	keywordDetailBonus   = 5  // keyword found in features or specs text
	queryTermNameBonus   = 3
	queryTermDetailBonus = 2
	sizeListBonus        = 15 // size preference matches a listed size variant
	sizeSpecsBonus       = 10 // size preference appears in specs text
	capacityMatchBonus   = 15
	maxScore             = 100

	// Raw query tokens at or below this length are ignored; short stop-words
	// never contribute.
	minQueryTermLen = 3
)

// Capacity markers parsed out of product names for family-size fitting.
var (
	literInNameRegex = regexp.MustCompile(`(?i)(\d+)\s*l`)
	kiloInNameRegex  = regexp.MustCompile(`(?i)(\d+)\s*kg`)
)

// ScoringService computes deterministic match scores for catalog products
// against a parsed intent and the raw query text.
type ScoringService struct{}

// NewScoringService creates a new scoring service.
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score rates every product. Output preserves input order; sorting is the
// caller's job so ties keep the catalog's original relative order.
func (s *ScoringService) Score(products []domain.Product, intent domain.ParsedQuery, query string) []domain.ScoredProduct {
	queryLower := strings.ToLower(query)
	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.ScoredProduct{
			Product: p,
			Score:   s.scoreProduct(&p, intent, queryLower),
		})
	}
	return scored
}

func (s *ScoringService) scoreProduct(p *domain.Product, intent domain.ParsedQuery, queryLower string) int {
	score := baseScore

	nameLower := strings.ToLower(p.Name)
	featuresText := p.FeaturesText()
	specsText := p.SpecsText()

	if intent.Category != "" {
		if cat, ok := domain.ParseCategory(intent.Category); ok && p.Category == cat {
			score += categoryMatchBonus
		}
	}

	// Keywords and must-have features are weighted the same; each matching
	// keyword counts once per rule, and may hit both the name and the
	// feature/spec text.
	keywords := make([]string, 0, len(intent.Keywords)+len(intent.MustHaveFeatures))
	keywords = append(keywords, intent.Keywords...)
	keywords = append(keywords, intent.MustHaveFeatures...)

	for _, kw := range keywords {
		if strings.Contains(nameLower, strings.ToLower(kw)) {
			score += keywordNameBonus
		}
	}
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if strings.Contains(featuresText, k) || strings.Contains(specsText, k) {
			score += keywordDetailBonus
		}
	}

	for _, term := range strings.Fields(queryLower) {
		if len(term) <= minQueryTermLen {
			continue
		}
		if strings.Contains(nameLower, term) {
			score += queryTermNameBonus
		}
		if strings.Contains(featuresText, term) || strings.Contains(specsText, term) {
			score += queryTermDetailBonus
		}
	}

	if intent.SizePreference != "" {
		pref := strings.ToLower(intent.SizePreference)
		for _, size := range p.Sizes {
			if strings.Contains(strings.ToLower(size), pref) {
				score += sizeListBonus
				break
			}
		}
		if strings.Contains(specsText, pref) {
			score += sizeSpecsBonus
		}
	}

	if intent.Capacity != "" {
		capacity := strings.ToLower(intent.Capacity)
		if strings.Contains(nameLower, capacity) || strings.Contains(specsText, capacity) {
			score += capacityMatchBonus
		}
	}

	score += useCaseBonus(p, intent, nameLower, featuresText, specsText)

	if score > maxScore {
		score = maxScore
	}
	return score
}

// useCaseBonus applies category-specific bonuses driven by the intent's
// use-case, room-size and family-size fields.
func useCaseBonus(p *domain.Product, intent domain.ParsedQuery, nameLower, featuresText, specsText string) int {
	bonus := 0
	useCase := strings.ToLower(intent.UseCase)

	switch p.Category {
	case domain.CategoryTV:
		if strings.Contains(useCase, "gaming") || strings.Contains(useCase, "game") {
			if containsAny(specsText, "120hz", "144hz", "165hz") {
				bonus += 15
			}
			if containsAny(featuresText, "game mode", "game bar") {
				bonus += 10
			}
			if containsAny(specsText, "vrr", "allm") {
				bonus += 5
			}
		}
		if strings.Contains(useCase, "movie") || strings.Contains(useCase, "cinema") {
			if strings.Contains(specsText, "dolby vision") || strings.Contains(featuresText, "dolby atmos") {
				bonus += 15
			}
			if strings.Contains(specsText, "hdr") {
				bonus += 10
			}
			if containsAny(specsText, "oled", "miniled", "mini-led") {
				bonus += 10
			}
		}
		if strings.Contains(useCase, "sport") {
			if containsAny(featuresText, "sports mode", "ai sports") {
				bonus += 15
			}
			if strings.Contains(specsText, "memc") || strings.Contains(featuresText, "motion") {
				bonus += 10
			}
		}

	case domain.CategoryRefrigerator:
		if intent.FamilySize > 0 {
			if liters, ok := capacityFromName(nameLower, literInNameRegex); ok {
				// ~100L per person; strict banding, a diff of exactly 200
				// earns nothing.
				ideal := intent.FamilySize * 100
				switch diff := abs(liters - ideal); {
				case diff < 100:
					bonus += 15
				case diff < 200:
					bonus += 10
				}
			}
		}

	case domain.CategoryWashingMachine:
		if intent.FamilySize > 0 {
			if kilos, ok := capacityFromName(nameLower, kiloInNameRegex); ok {
				// ~2kg per person; inclusive banding, unlike refrigerators.
				ideal := intent.FamilySize * 2
				switch diff := abs(kilos - ideal); {
				case diff <= 2:
					bonus += 15
				case diff <= 4:
					bonus += 10
				}
			}
		}
		if strings.Contains(useCase, "smart") || strings.Contains(useCase, "connected") {
			if containsAny(featuresText, "connect", "app") {
				bonus += 10
			}
		}

	case domain.CategoryAC:
		roomSize := strings.ToLower(intent.RoomSize)
		if strings.Contains(roomSize, "large") || strings.Contains(roomSize, "living") {
			if containsAny(specsText, "2 ton", "24000") {
				bonus += 15
			}
		} else if strings.Contains(roomSize, "small") || strings.Contains(roomSize, "bedroom") {
			if containsAny(specsText, "1 ton", "1.5 ton") {
				bonus += 15
			}
		}
		if strings.Contains(featuresText, "inverter") || strings.Contains(specsText, "inverter") {
			bonus += 5
		}

	case domain.CategorySoundbar:
		if strings.Contains(useCase, "movie") || strings.Contains(useCase, "cinema") {
			if strings.Contains(featuresText, "dolby atmos") || strings.Contains(specsText, "atmos") {
				bonus += 15
			}
		}
		if strings.Contains(useCase, "bass") || strings.Contains(useCase, "music") {
			if strings.Contains(nameLower, "subwoofer") || strings.Contains(specsText, "subwoofer") {
				bonus += 10
			}
		}

	case domain.CategoryProjector:
		if strings.Contains(useCase, "cinema") || strings.Contains(useCase, "movie") {
			if strings.Contains(nameLower, "laser") || strings.Contains(specsText, "4k") {
				bonus += 15
			}
			if strings.Contains(specsText, "dolby") {
				bonus += 10
			}
		}
	}

	return bonus
}

// capacityFromName extracts a numeric capacity (liters or kilograms) from a
// product name. Absence of a marker means no bonus, not an error.
func capacityFromName(name string, re *regexp.Regexp) (int, bool) {
	m := re.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
