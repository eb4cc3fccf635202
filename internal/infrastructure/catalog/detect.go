package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// DetectCategory is the default category detection heuristic. It scans the
// product name and the serialized specs for category markers. Order matters:
// projectors are checked before TVs because laser cinema TVs are projectors,
// and dishwashers early because "washer" would otherwise win.
func DetectCategory(name string, specs map[string]interface{}) domain.Category {
	nameLower := strings.ToLower(name)
	specsText := serializeSpecs(specs)

	if containsAny(nameLower, "projector", "laser cinema") {
		return domain.CategoryProjector
	}
	if hasKey(specs, "projection_size") || hasKey(specs, "throw_distance") || strings.Contains(specsText, "throw_ratio") {
		return domain.CategoryProjector
	}

	if strings.Contains(nameLower, "dishwasher") {
		return domain.CategoryDishwasher
	}

	if containsAny(nameLower, "tv", "uled", "qled", "miniled", "mini-led", "uhd") {
		return domain.CategoryTV
	}
	if hasKey(specs, "display_sizes") || (strings.Contains(specsText, "resolution") && strings.Contains(specsText, "4k")) {
		return domain.CategoryTV
	}

	if containsAny(nameLower, "refrigerator", "fridge", "freezer") {
		return domain.CategoryRefrigerator
	}
	if strings.Contains(specsText, "refrigerator") || strings.Contains(specsText, "freezer") {
		return domain.CategoryRefrigerator
	}

	if containsAny(nameLower, "washing machine", "washer", "front load", "top load") {
		return domain.CategoryWashingMachine
	}

	if strings.Contains(nameLower, "dryer") && !strings.Contains(nameLower, "washer") {
		return domain.CategoryDryer
	}

	if containsAny(nameLower, "ac", "air conditioner", "inverter", "split", "wall mounted") {
		return domain.CategoryAC
	}
	if containsAny(specsText, "tonnage", "btu", "cooling") {
		return domain.CategoryAC
	}

	if containsAny(nameLower, "soundbar", "sound bar", "speaker") {
		return domain.CategorySoundbar
	}
	if hasKey(specs, "channels") || strings.Contains(specsText, "subwoofer") {
		return domain.CategorySoundbar
	}

	if strings.Contains(specsText, "display") || strings.Contains(specsText, "screen") {
		return domain.CategoryTV
	}

	return domain.CategoryTV
}

func serializeSpecs(specs map[string]interface{}) string {
	b, err := json.Marshal(specs)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(b))
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasKey(specs map[string]interface{}, key string) bool {
	_, ok := specs[key]
	return ok
}
