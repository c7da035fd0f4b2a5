package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply":      map[string]any{"type": "string"},
			"excitement": map[string]any{"type": "integer"},
			"tone":       map[string]any{"type": "string", "enum": []any{"cheerful", "calm", "curious"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"reply", "excitement"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["reply"].Type != genai.TypeString {
		t.Errorf("reply type = %s", schema.Properties["reply"].Type)
	}
	if schema.Properties["excitement"].Type != genai.TypeInteger {
		t.Errorf("excitement type = %s", schema.Properties["excitement"].Type)
	}
	if got := schema.Properties["tone"].Enum; len(got) != 3 || got[0] != "cheerful" {
		t.Errorf("tone enum = %v", got)
	}
	if schema.Properties["scores"].Type != genai.TypeArray {
		t.Errorf("scores type = %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != genai.TypeNumber {
		t.Errorf("scores items type = %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGeminiSchemaUnknownTypeFallsBackToString(t *testing.T) {
	schema := geminiSchema(map[string]any{"type": "duration"})
	if schema.Type != genai.TypeString {
		t.Errorf("type = %s, want STRING fallback", schema.Type)
	}
}
