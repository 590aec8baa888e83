// Package spellcheck is a client for a remote spell-checking service.
package spellcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

// ErrUnexpectedStatus is returned when the service answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("spellcheck: unexpected status")

const defaultRetryDelay = 500 * time.Millisecond

// Client calls GET <base>/check?word=<w> and expects {"is_valid": bool}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
}

// NewClient creates a Client. timeout bounds each HTTP attempt.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "spellcheck"),
		retryDelay: defaultRetryDelay,
	}
}

type checkResponse struct {
	IsValid *bool `json:"is_valid"`
}

// Check asks the service whether word is spelled correctly.
// Blank input is reported invalid without a request.
func (c *Client) Check(ctx context.Context, word string) (domain.SpellcheckResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.SpellcheckResult{}, nil
	}

	reqURL := c.baseURL + "/check?word=" + url.QueryEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.SpellcheckResult{}, fmt.Errorf("spellcheck: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		c.log.ErrorContext(ctx, "spellcheck request failed", slog.String("word", word), slog.String("error", err.Error()))
		return domain.SpellcheckResult{}, fmt.Errorf("spellcheck: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.SpellcheckResult{}, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SpellcheckResult{}, fmt.Errorf("spellcheck: read body: %w", err)
	}

	var parsed checkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.SpellcheckResult{}, fmt.Errorf("spellcheck: decode json: %w", err)
	}
	if parsed.IsValid == nil {
		return domain.SpellcheckResult{}, fmt.Errorf("spellcheck: response missing is_valid")
	}

	c.log.DebugContext(ctx, "spellcheck response",
		slog.String("word", word),
		slog.Bool("valid", *parsed.IsValid),
	)

	return domain.SpellcheckResult{IsValid: *parsed.IsValid}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	c.log.WarnContext(ctx, "spellcheck retry", slog.String("word", word), slog.String("reason", reason))

	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req)
}
