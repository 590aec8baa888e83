package completion

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openAITransport talks to any OpenAI-compatible /chat/completions endpoint.
type openAITransport struct {
	client *openai.Client
}

func newOpenAITransport(apiKey, baseURL string, timeout time.Duration) *openAITransport {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &openAITransport{client: openai.NewClientWithConfig(cfg)}
}

func (t *openAITransport) name() string { return "openai" }

func (t *openAITransport) send(ctx context.Context, c call) (result, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(c.messages)),
		Temperature: float32(c.temperature),
		MaxTokens:   c.maxTokens,
	}
	for _, m := range c.messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	if c.format == FormatJSONObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return result{}, openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return result{}, ErrEmptyResponse
	}

	return result{
		content: resp.Choices[0].Message.Content,
		model:   resp.Model,
		usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// openAIError maps SDK status errors to *httpError and passes the rest through.
func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &httpError{status: apiErr.HTTPStatusCode, body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &httpError{status: reqErr.HTTPStatusCode, body: reqErr.Error()}
	}
	return err
}
