package course

import "github.com/rahulnair/lingua/internal/llm"

// AnalysisSchema defines the JSON schema for goal analysis.
var AnalysisSchema = &llm.Schema{
	Name:        "scenario-analysis",
	Description: "A learning goal broken into practical sub-scenarios",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"originalGoal": map[string]any{
				"type": "string",
			},
			"suggestedTopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Specific sub-scenario title (e.g. 'At the Airport')",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Brief description of what will be learned",
						},
						"keyVocabulary": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-4 key words/phrases",
						},
					},
					"required":             []any{"id", "title", "description", "keyVocabulary"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"originalGoal", "suggestedTopics"},
		"additionalProperties": false,
	},
}

// PlanSchema defines the JSON schema for course roadmap generation.
var PlanSchema = &llm.Schema{
	Name:        "course-plan",
	Description: "An ordered study roadmap built from selected scenarios",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"planTitle": map[string]any{
				"type":        "string",
				"description": "A catchy title for the full course",
			},
			"totalDuration": map[string]any{
				"type": "string",
			},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Must match one of the selected topic titles",
						},
						"description": map[string]any{
							"type": "string",
						},
						"estimatedTime": map[string]any{
							"type":        "string",
							"description": "Time to complete this module based on the learner's timeframe",
						},
						"status": map[string]any{
							"type": "string",
							"enum": []any{"locked", "current", "completed"},
						},
					},
					"required":             []any{"id", "title", "description", "estimatedTime", "status"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"planTitle", "totalDuration", "modules"},
		"additionalProperties": false,
	},
}
