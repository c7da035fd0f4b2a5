package catalog

// quizQuestionSchema is the shape of one multiple-choice question in the
// seed. The feedback strings are optional per-question overrides.
var quizQuestionSchema = map[string]any{
	"type":     "object",
	"required": []any{"q", "options", "answer"},
	"properties": map[string]any{
		"q":                  map[string]any{"type": "string", "minLength": 1},
		"options":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
		"answer":             map[string]any{"type": "string", "minLength": 1},
		"img":                map[string]any{"type": "string"},
		"feedback_correct":   map[string]any{"type": "string"},
		"feedback_incorrect": map[string]any{"type": "string"},
	},
}

// seedSchema is the JSON Schema the embedded seed file must satisfy.
// Non-question payload shapes are checked per-type in decodeItem; the
// schema guards the envelope fields and the quiz question arrays.
var seedSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "type", "subject", "level"},
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"type": map[string]any{"enum": []any{"diagnostic_quiz", "lesson", "drag_drop", "fill_blanks", "quiz", "boss_battle"}},
			"subject": map[string]any{
				"enum": []any{"math", "literacy"},
			},
			"level": map[string]any{"type": "integer", "minimum": 0},
			"title": map[string]any{"type": "string"},
			"skill_tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"next_content_id": map[string]any{"type": "string"},
		},
		"if": map[string]any{
			"properties": map[string]any{
				"type": map[string]any{"enum": []any{"diagnostic_quiz", "quiz", "boss_battle"}},
			},
		},
		"then": map[string]any{
			"properties": map[string]any{
				"data": map[string]any{
					"type":     "array",
					"items":    quizQuestionSchema,
					"minItems": 1,
				},
			},
		},
	},
}
