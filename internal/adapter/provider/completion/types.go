// Package completion is a chat-completion gateway with retry and error
// classification over OpenAI-compatible and Anthropic backends.
package completion

// Role of a chat message author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the model output.
type ResponseFormat string

const (
	FormatText       ResponseFormat = ""
	FormatJSONObject ResponseFormat = "json_object"
)

// Request is a single completion call. Zero values fall back to gateway defaults.
type Request struct {
	Messages       []Message
	Model          string
	ResponseFormat ResponseFormat
	Temperature    *float64
	MaxTokens      int
}

// Usage reports token counts. Missing counts are zero.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a successful completion.
type Response struct {
	Content   string `json:"content"`
	Model     string `json:"model"`
	Usage     Usage  `json:"usage"`
	LatencyMS int64  `json:"latency_ms"`
}

// Temperature returns a pointer to t, for Request.Temperature.
func Temperature(t float64) *float64 { return &t }
