package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

const queryParsingSystemPrompt = `You are a product query parser for a home electronics store.

Available product categories:
- tv: Televisions (ULED, QLED, MiniLED, UHD, Smart TVs)
- refrigerator: Refrigerators (Side-by-side, Top-mount, Cross-door)
- washing_machine: Washing Machines (Top load, Front load, Washer-dryer combos)
- dryer: Dryers (Heat pump, standalone dryers)
- ac: Air Conditioners (Wall-mounted, Split, Inverter)
- soundbar: Soundbars and speakers
- projector: Projectors and Laser Cinema TVs
- dishwasher: Dishwashers

## Output Format
Respond with ONLY a valid JSON object:

{
  "category": string or null,      // One of the categories above, or null if unclear
  "use_case": string or null,      // e.g., "gaming", "movies", "family", "bedroom", "office", "laundry"
  "room_size": string or null,     // e.g., "small", "medium", "large", "living room", "bedroom"
  "family_size": number or null,   // Family size if mentioned (for appliances)
  "capacity": string or null,      // Desired capacity like "500L", "10kg", "65 inch"
  "size_preference": string or null, // Screen size or appliance size preference
  "must_have_features": [],        // Required features mentioned
  "keywords": []                   // Other relevant keywords from the query
}

## Parsing Rules

1. Category detection:
   - TV keywords: tv, television, screen, smart tv, oled, qled, uled, miniled, 4k, 8k
   - Refrigerator keywords: fridge, refrigerator, freezer, side-by-side, top mount
   - Washing machine keywords: washing machine, washer, front load, top load, laundry
   - Dryer keywords: dryer, tumble dryer, heat pump dryer
   - AC keywords: ac, air conditioner, cooling, split ac, inverter ac
   - Soundbar keywords: soundbar, speaker, audio, sound system, home theater
   - Projector keywords: projector, laser tv, home cinema, laser cinema
   - Dishwasher keywords: dishwasher, dish washer

2. Use case inference:
   - "gaming" -> gaming (for TVs, implies high refresh rate, low latency)
   - "movies" or "cinema" -> movies (for TVs/projectors, implies good HDR, Dolby)
   - "sports" -> sports (for TVs, implies motion handling)
   - "family of X" -> family (store family_size for appliances)
   - "large family" -> family_size: 5+
   - "small family" -> family_size: 3-4

3. Size/capacity parsing:
   - "55 inch" or "55\"" -> size_preference: "55 inch"
   - "500L" or "500 liters" -> capacity: "500L"
   - "10kg" -> capacity: "10kg"
   - "large screen" -> size_preference: "large"

4. Feature extraction:
   - Dolby Vision, Dolby Atmos, HDR, 4K, 120Hz, inverter, frost-free, etc.

Remember: Output ONLY valid JSON, no explanations or markdown.`

// buildQueryParsingPrompt wraps a customer query for the parsing call.
func buildQueryParsingPrompt(query string) string {
	return fmt.Sprintf(`Parse the following customer query and extract structured information.

Customer Query: %q

Respond with only a JSON object.`, query)
}

const recommendationSystemPrompt = `You are a helpful home electronics product expert. Your job is to explain why certain products match a customer's needs based on their features and specifications.

## Guidelines
1. Be conversational but concise
2. Focus on how product features match the customer's needs
3. Mention specific specs that are relevant to their use case
4. For TVs, highlight display technology, refresh rate, HDR support, smart features
5. For appliances, highlight capacity, energy efficiency, smart features
6. Keep each product explanation to 2-3 sentences max
7. Reference specific features from the product data

## Response Format
Provide a JSON response with:
{
  "message": "A brief summary message (1-2 sentences) addressing the customer",
  "recommendations": [
    {
      "product_id": "...",
      "score": 85,
      "reasoning": "Explanation of why this product matches their needs"
    }
  ]
}

The score should be 0-100 based on how well the product matches:
- 90-100: Perfect match for their requirements
- 70-89: Good match with most requirements met
- 50-69: Reasonable option
- Below 50: Partial match only`

// buildRecommendationPrompt embeds the query, parsed intent and a compact
// per-candidate summary for the explanation call.
func buildRecommendationPrompt(query string, intent domain.ParsedQuery, candidates []domain.CandidateProduct) string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		specs, err := json.Marshal(c.Specs)
		if err != nil {
			specs = []byte("{}")
		}
		features := c.Features
		if len(features) > 3 {
			features = features[:3]
		}
		lines = append(lines, fmt.Sprintf("- %s: %s | Sizes: %v | Specs: %s | Features: %v",
			c.ID, c.Name, c.Sizes, specs, features))
	}

	return fmt.Sprintf(`Customer Query: %q

Parsed Requirements:
- Category: %s
- Use Case: %s
- Room Size: %s
- Family Size: %s
- Capacity: %s
- Size Preference: %s
- Must Have: %s
- Keywords: %s

Matching Products:
%s

Provide your recommendations with personalized reasoning for each product. Rank them by relevance (best match first). Include up to 3 products maximum.`,
		query,
		valueOr(intent.Category, "any"),
		valueOr(intent.UseCase, "general"),
		valueOr(intent.RoomSize, "not specified"),
		intValueOr(intent.FamilySize, "not specified"),
		valueOr(intent.Capacity, "not specified"),
		valueOr(intent.SizePreference, "not specified"),
		listOr(intent.MustHaveFeatures, "none"),
		listOr(intent.Keywords, "none"),
		strings.Join(lines, "\n"))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func intValueOr(n int, fallback string) string {
	if n == 0 {
		return fallback
	}
	return fmt.Sprintf("%d", n)
}

func listOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
