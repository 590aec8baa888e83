package completion

import "context"

// call is a fully resolved request handed to a transport.
type call struct {
	model       string
	messages    []Message
	format      ResponseFormat
	temperature float64
	maxTokens   int
}

type result struct {
	content string
	model   string
	usage   Usage
}

// transport performs one HTTP exchange with a backend. Non-2xx responses
// are returned as *httpError; the gateway owns retries.
type transport interface {
	name() string
	send(ctx context.Context, c call) (result, error)
}
