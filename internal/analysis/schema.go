package analysis

import "github.com/abhisek/skillcoach/internal/llm"

// AnalysisSchema defines the JSON schema for code-analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "code-analysis",
	Description: "Assessment of a code submission: strengths, skill gaps, suggestions, and an estimated proficiency",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Things the code does well",
			},
			"skill_gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short phrases naming concepts the author appears weak in",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete improvements to make",
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Estimated proficiency certainty (0-100)",
			},
			"estimated_level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Estimated proficiency level in the language (1-5)",
			},
		},
		"required":             []any{"strengths", "skill_gaps", "suggestions", "confidence_score", "estimated_level"},
		"additionalProperties": false,
	},
}
