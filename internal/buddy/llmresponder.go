package buddy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritika/funlearn/internal/llm"
)

const systemPrompt = `You are a friendly learning buddy inside a children's learning app
covering math and literacy. The learner is a young child. Reply in one or
two short, encouraging sentences. Stay on the topics of lessons, quizzes,
practice, points, and levels. Never discuss anything inappropriate for
children.`

// maxHistoryTurns bounds how much transcript is sent to the provider.
const maxHistoryTurns = 10

var replySchema = &llm.Schema{
	Name:        "buddy-reply",
	Description: "A short encouraging chat reply for a child learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The buddy's reply, one or two short sentences",
			},
		},
		"required":             []any{"reply"},
		"additionalProperties": false,
	},
}

// ProviderResponder generates replies with an LLM provider and falls back
// to the rule table when the provider fails.
type ProviderResponder struct {
	provider llm.Provider
	fallback RuleResponder
}

// NewProviderResponder creates a responder backed by the given provider.
func NewProviderResponder(p llm.Provider) *ProviderResponder {
	return &ProviderResponder{provider: p}
}

func (r *ProviderResponder) Respond(ctx context.Context, history []Message, input string) (string, error) {
	ctx = llm.WithPurpose(ctx, "buddy-chat")

	req := llm.Request{
		System:    systemPrompt,
		Messages:  buildMessages(history, input),
		Schema:    replySchema,
		MaxTokens: 256,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		// The chat must keep working offline or when the provider is down.
		return r.fallback.Respond(ctx, history, input)
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode buddy reply: %w", err)
	}
	return out.Reply, nil
}

// buildMessages converts the transcript tail plus the new input into
// provider messages.
func buildMessages(history []Message, input string) []llm.Message {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.From == SenderBuddy {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: input})
}
