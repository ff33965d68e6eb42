package level

import "github.com/rahulnair/lingua/internal/llm"

// Schema defines the JSON schema for level generation.
var Schema = &llm.Schema{
	Name:        "learning-level",
	Description: "A complete learning module for one scenario: flashcards, roleplay, exam, and tasks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type": "string",
			},
			"levelName": map[string]any{
				"type": "string",
			},
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
						},
						"front": map[string]any{
							"type":        "string",
							"description": "A practical English sentence or phrase",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "Translation and a short usage note",
						},
						"pronunciation": map[string]any{
							"type":        "string",
							"description": "IPA or phonetic guide",
						},
						"imageVisualDescription": map[string]any{
							"type":        "string",
							"description": "Prompt for a first-person view illustration of the sentence",
						},
					},
					"required":             []any{"id", "front", "back", "imageVisualDescription"},
					"additionalProperties": false,
				},
			},
			"rolePlay": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"setting":     map[string]any{"type": "string"},
					"userRole":    map[string]any{"type": "string"},
					"aiRole":      map[string]any{"type": "string"},
					"objective":   map[string]any{"type": "string"},
					"openingLine": map[string]any{"type": "string"},
				},
				"required":             []any{"setting", "userRole", "aiRole", "objective", "openingLine"},
				"additionalProperties": false,
			},
			"exam": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string"},
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"id", "question", "options", "correctIndex", "explanation"},
					"additionalProperties": false,
				},
			},
			"weeklyPlan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day":      map[string]any{"type": "integer"},
						"focus":    map[string]any{"type": "string"},
						"task":     map[string]any{"type": "string"},
						"duration": map[string]any{"type": "string"},
					},
					"required":             []any{"day", "focus", "task", "duration"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "levelName", "flashcards", "rolePlay", "exam", "weeklyPlan"},
		"additionalProperties": false,
	},
}
