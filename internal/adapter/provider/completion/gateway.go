package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/mygreek-backend/pkg/ctxutil"
)

const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 2048

	anthropicModelPrefix = "claude-"
)

// Config is the gateway construction input.
type Config struct {
	APIKey           string
	BaseURL          string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	DefaultModel     string
	Timeout          time.Duration
	Temperature      float64
	MaxTokens        int
	Retry            RetryPolicy
}

// Gateway sends chat completions with retries and classified errors.
// It is safe for concurrent use.
type Gateway struct {
	openai    transport
	anthropic transport

	defaultModel string
	temperature  float64
	maxTokens    int
	policy       RetryPolicy

	log *slog.Logger
}

// New creates a Gateway. Backends without a key are left unconfigured and
// calls routed to them fail with ErrNotConfigured. Zero Temperature and
// MaxTokens fall back to 0.3 and 2048; a request may still ask for 0.
func New(cfg Config, logger *slog.Logger) *Gateway {
	g := &Gateway{
		defaultModel: cfg.DefaultModel,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		policy:       cfg.Retry,
		log:          logger.With("adapter", "completion"),
	}
	if g.temperature == 0 {
		g.temperature = defaultTemperature
	}
	if g.maxTokens <= 0 {
		g.maxTokens = defaultMaxTokens
	}
	if cfg.APIKey != "" {
		g.openai = newOpenAITransport(cfg.APIKey, cfg.BaseURL, cfg.Timeout)
	}
	if cfg.AnthropicAPIKey != "" {
		g.anthropic = newAnthropicTransport(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.Timeout)
	}
	return g
}

// Configured reports whether at least one backend has credentials.
func (g *Gateway) Configured() bool {
	return g.openai != nil || g.anthropic != nil
}

// DefaultModel returns the model used when a request names none.
func (g *Gateway) DefaultModel() string { return g.defaultModel }

// route picks the backend for model. Claude models go to Anthropic when it
// is configured, everything else to the OpenAI-compatible endpoint.
func (g *Gateway) route(model string) transport {
	if g.anthropic != nil && strings.HasPrefix(model, anthropicModelPrefix) {
		return g.anthropic
	}
	return g.openai
}

// Complete sends req and returns the first choice.
//
// 401 and other 4xx fail at once. 429, 5xx and timeouts are retried per the
// retry policy; when attempts run out the last classification is returned.
// Other transport errors fail at once.
func (g *Gateway) Complete(ctx context.Context, req Request) (*Response, error) {
	c := call{
		model:       req.Model,
		messages:    req.Messages,
		format:      req.ResponseFormat,
		temperature: g.temperature,
		maxTokens:   req.MaxTokens,
	}
	if c.model == "" {
		c.model = g.defaultModel
	}
	if req.Temperature != nil {
		c.temperature = *req.Temperature
	}
	if c.maxTokens <= 0 {
		c.maxTokens = g.maxTokens
	}

	tr := g.route(c.model)
	if tr == nil {
		return nil, fmt.Errorf("%w: no credentials for model %q", ErrNotConfigured, c.model)
	}

	requestID := ctxutil.RequestIDFromCtx(ctx)
	maxAttempts := g.policy.attempts()

	var last failure
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		start := time.Now()
		res, err := tr.send(ctx, c)
		latency := time.Since(start).Milliseconds()

		attrs := []any{
			slog.String("model", c.model),
			slog.String("backend", tr.name()),
			slog.Int("attempt", attempt),
			slog.Int64("latency_ms", latency),
			slog.String("request_id", requestID),
		}
		if word := ctxutil.WordFromCtx(ctx); word != "" {
			attrs = append(attrs, slog.String("word", word))
		}

		if err == nil {
			g.log.InfoContext(ctx, "completion attempt", append(attrs,
				slog.String("outcome", "ok"),
				slog.Int("total_tokens", res.usage.TotalTokens),
			)...)

			model := res.model
			if model == "" {
				model = c.model
			}
			return &Response{
				Content:   res.content,
				Model:     model,
				Usage:     res.usage,
				LatencyMS: latency,
			}, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			g.log.WarnContext(ctx, "completion attempt", append(attrs, slog.String("outcome", "canceled"))...)
			return nil, fmt.Errorf("completion: %w", ctxErr)
		}

		last = classify(err)
		failAttrs := append(attrs, slog.String("outcome", last.kind.String()))
		if last.status != 0 {
			failAttrs = append(failAttrs, slog.Int("status", last.status))
		}
		g.log.WarnContext(ctx, "completion attempt", append(failAttrs, slog.String("error", err.Error()))...)

		if !last.kind.retryable() {
			return nil, last.toError(attempt)
		}
		if attempt == maxAttempts {
			break
		}

		if err := sleep(ctx, g.policy.delay(attempt)); err != nil {
			return nil, fmt.Errorf("completion: %w", err)
		}
	}

	return nil, last.toError(maxAttempts)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
