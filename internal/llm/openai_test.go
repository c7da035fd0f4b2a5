package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiStub points the SDK at a local test server.
func openaiStub(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-01",
			"object":  "chat.completion",
			"created": 1756600000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"reply":"Nice work on that quiz!"}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a friendly learning buddy for kids.",
		Messages:  []Message{{Role: RoleUser, Content: "I finished my quiz!"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"reply":"Nice work on that quiz!"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q", resp.StopReason)
	}
}

func TestOpenAITruncationMapsToMaxTokens(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-02",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": `{"reply":"cut of`},
					"finish_reason": "length",
				},
			},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestOpenAIRateLimitBecomesErrRateLimit(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
}

func TestOpenAIServerErrorBecomesUnavailable(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}
