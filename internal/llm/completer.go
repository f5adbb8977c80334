package llm

import (
	"context"
	"errors"
	"fmt"
)

// Default request settings.
const (
	DefaultModel       = "gpt-4o"
	DefaultTemperature = 0.7
)

// Role values for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-neutral completion request. Zero Model and
// Temperature fall back to the completer's defaults; zero MaxTokens is
// omitted from the wire request.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Completer returns the text of the first choice for a request.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

var (
	// ErrCircuitOpen is returned while the breaker is rejecting calls.
	ErrCircuitOpen = errors.New("llm: provider circuit open")
	// ErrEmptyResponse is returned when the provider sends no choices.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// APIError is a non-success response from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error: %s", e.Message)
}

// ParseError reports model output that could not be decoded or failed
// validation. Raw holds the offending text for logging.
type ParseError struct {
	Target string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm: parse %s: %v", e.Target, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
