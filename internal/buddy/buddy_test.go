package buddy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ritika/funlearn/internal/llm"
)

func TestRuleResponder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "Hello! Ready to learn something new?"},
		{"Hi buddy!", "Hello! Ready to learn something new?"},
		{"I need HELP", "Don't worry! What are you finding difficult? I can give you a hint or explain the concept again."},
		{"i am stuck on this", "Don't worry! What are you finding difficult? I can give you a hint or explain the concept again."},
		{"how do I get points?", "Keep learning and completing quizzes to earn more points and level up!"},
		{"what is my level", "Keep learning and completing quizzes to earn more points and level up!"},
		{"dinosaurs are cool", defaultReply},
		// Triggers match whole words only: "hi" inside "this" or
		// "history" must not fire the greeting rule.
		{"what is this?", defaultReply},
		{"I like history", defaultReply},
	}

	var r RuleResponder
	for _, tt := range tests {
		got, err := r.Respond(context.Background(), nil, tt.input)
		if err != nil {
			t.Fatalf("Respond(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Respond(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestProviderResponderUsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"reply":"You are doing great!"}`)},
	)
	r := NewProviderResponder(mock)

	history := []Message{
		{From: SenderBuddy, Text: Greeting},
		{From: SenderLearner, Text: "hi"},
		{From: SenderBuddy, Text: "Hello! Ready to learn something new?"},
	}
	got, err := r.Respond(context.Background(), history, "I finished my quiz!")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if got != "You are doing great!" {
		t.Errorf("reply = %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "buddy-reply" {
		t.Error("expected buddy-reply schema on request")
	}
	if len(req.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleAssistant {
		t.Errorf("greeting role = %q, want assistant", req.Messages[0].Role)
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "I finished my quiz!" {
		t.Errorf("last message = %+v", last)
	}
}

func TestProviderResponderFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	r := NewProviderResponder(mock)

	got, err := r.Respond(context.Background(), nil, "hello")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if got != "Hello! Ready to learn something new?" {
		t.Errorf("fallback reply = %q", got)
	}
}

func TestProviderResponderTrimsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"reply":"ok"}`)},
	)
	r := NewProviderResponder(mock)

	history := make([]Message, 30)
	for i := range history {
		history[i] = Message{From: SenderLearner, Text: "msg"}
	}
	if _, err := r.Respond(context.Background(), history, "latest"); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if got := len(mock.Calls[0].Messages); got != maxHistoryTurns+1 {
		t.Errorf("messages sent = %d, want %d", got, maxHistoryTurns+1)
	}
}
