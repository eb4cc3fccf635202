package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shoplens/backend/internal/domain"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const completionsPath = "/v1/chat/completions"

// Client handles communication with an OpenAI-compatible chat completions API.
// It implements domain.ChatCompleter.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new chat completions client.
func NewClient(apiKey, baseURL, model string) *Client {
	// Keep outbound traffic polite: two requests per second sustained with a
	// small burst absorbs a handful of concurrent queries without tripping
	// provider-side limits.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging.
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user instruction pair and returns the raw
// completion text. Transient failures are retried up to 3 times; auth
// failures are not retried.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	reqURL := c.baseURL + completionsPath

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, payload)
		if err != nil {
			log.Warnf("completion request error (attempt %d): %v", attempt, err)
			lastErr = err
			if !sleepBackoff(ctx, attempt) {
				return "", ctx.Err()
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return "", fmt.Errorf("%w: status %d", domain.ErrCompletionFailed, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			log.Warnf("completion API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, truncate(string(body), 200))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCompletionFailed, resp.StatusCode)
			if !sleepBackoff(ctx, attempt) {
				return "", ctx.Err()
			}
			continue
		}

		var chatResp chatResponse
		if err := json.Unmarshal(body, &chatResp); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		if len(chatResp.Choices) == 0 {
			return "", fmt.Errorf("%w: no choices in response", domain.ErrMalformedResponse)
		}

		content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
		if c.debug {
			log.Debugf("completion response (%d bytes): %s", len(content), truncate(content, 500))
		}
		return content, nil
	}

	return "", lastErr
}

// doRequest executes an HTTP POST with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "ShopLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	return resp, nil
}

// exponentialBackoff returns the wait duration before the next attempt:
// 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// sleepBackoff waits out the backoff for the given attempt, aborting early on
// context cancellation. Returns false if the context was cancelled.
func sleepBackoff(ctx context.Context, attempt int) bool {
	select {
	case <-time.After(exponentialBackoff(attempt)):
		return true
	case <-ctx.Done():
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
