package completion

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const jsonObjectInstruction = "Respond with a single JSON object and nothing else."

// anthropicTransport talks to the Anthropic Messages API. SDK retries are
// disabled so the gateway policy is the only one in effect.
type anthropicTransport struct {
	client anthropic.Client
}

func newAnthropicTransport(apiKey, baseURL string, timeout time.Duration) *anthropicTransport {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicTransport{client: anthropic.NewClient(opts...)}
}

func (t *anthropicTransport) name() string { return "anthropic" }

func (t *anthropicTransport) send(ctx context.Context, c call) (result, error) {
	var system []string
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(c.maxTokens),
		Temperature: anthropic.Float(c.temperature),
	}

	for _, m := range c.messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	if c.format == FormatJSONObject {
		system = append(system, jsonObjectInstruction)
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}

	msg, err := t.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return result{}, &httpError{status: apiErr.StatusCode, body: apiErr.Error()}
		}
		return result{}, err
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return result{}, ErrEmptyResponse
	}

	in, out := int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens)
	return result{
		content: text.String(),
		model:   string(msg.Model),
		usage:   Usage{PromptTokens: in, CompletionTokens: out, TotalTokens: in + out},
	}, nil
}
