package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// extractJSON unmarshals a JSON payload from raw completion text, tolerating
// optional markdown code fences (with or without a "json" language tag)
// around it. Failures surface as domain.ErrMalformedResponse so callers can
// pick the matching fallback.
func extractJSON(raw string, v interface{}) error {
	payload := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// stripCodeFence removes a leading/trailing ``` fence pair if present and
// returns the enclosed text.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := strings.TrimPrefix(s, "```")
	if idx := strings.Index(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}
