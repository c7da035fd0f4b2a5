// Package llm abstracts the hosted model APIs behind a single Provider
// interface. The buddy chat is the only in-app consumer, but the surface is
// generic: schema-constrained JSON in, validated JSON out, with retry and
// request-logging decorators layered on top.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call.
type Provider interface {
	// Generate sends the request to the model. When req.Schema is set the
	// provider uses its native structured-output mechanism and the returned
	// Content is JSON conforming to the schema; otherwise Content is the raw
	// text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is one model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Buddy chat sends the recent
	// turns; a single-turn call sends one user message.
	Messages []Message

	// Schema, when set, constrains the response to this JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a response must take. Name is
// kebab-case and doubles as the tool name for Anthropic and the schema name
// for OpenAI.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output plus accounting.
type Response struct {
	// Content is validated JSON when the request carried a Schema, or the
	// raw text wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage is the token accounting reported by the provider.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
