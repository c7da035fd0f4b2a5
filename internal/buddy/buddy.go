// Package buddy implements the learning buddy chat. Replies come from
// either a fixed rule table or an LLM provider; the rule responder is
// always available and serves as the fallback when no provider is
// configured.
package buddy

import (
	"context"
	"strings"
	"unicode"
)

// Greeting opens every chat session.
const Greeting = "Hi there! I am your learning buddy. How can I help you today?"

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderLearner Sender = "learner"
	SenderBuddy   Sender = "buddy"
)

// Message is one turn in the chat transcript.
type Message struct {
	From Sender
	Text string
}

// Responder produces a buddy reply for the learner's latest input.
// History holds the prior transcript, oldest first, excluding the input.
type Responder interface {
	Respond(ctx context.Context, history []Message, input string) (string, error)
}

// RuleResponder replies from a fixed keyword table. It never errors and
// needs no network access.
type RuleResponder struct{}

// rule maps trigger words to a canned reply. First match wins.
type rule struct {
	triggers []string
	reply    string
}

var rules = []rule{
	{
		triggers: []string{"hello", "hi"},
		reply:    "Hello! Ready to learn something new?",
	},
	{
		triggers: []string{"help", "stuck"},
		reply:    "Don't worry! What are you finding difficult? I can give you a hint or explain the concept again.",
	},
	{
		triggers: []string{"points", "level"},
		reply:    "Keep learning and completing quizzes to earn more points and level up!",
	},
}

const defaultReply = "That's interesting! Let's focus on our lessons. What topic are you working on?"

func (RuleResponder) Respond(_ context.Context, _ []Message, input string) (string, error) {
	words := tokenize(input)
	for _, r := range rules {
		for _, t := range r.triggers {
			if words[t] {
				return r.reply, nil
			}
		}
	}
	return defaultReply, nil
}

// tokenize lowercases the input and splits it into words. Triggers match
// whole words only, so "hi" does not fire inside "this".
func tokenize(input string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}
