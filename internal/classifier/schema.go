package classifier

import "github.com/coursecraft/flowengine/internal/llm"

// ClassificationSchema defines the JSON structure for LLM path decisions.
// Only shouldTakeMasteryPath is required: a model that omits the other
// fields still yields a usable decision after defaulting.
var ClassificationSchema = &llm.Schema{
	Name:        "path-classification",
	Description: "A mastery-vs-novel path decision for a learner response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"shouldTakeMasteryPath": map[string]any{
				"type":        "boolean",
				"description": "True if the response demonstrates mastery of the material",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the decision",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the decision",
			},
			"performanceScore": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Estimated mastery score for this response",
			},
		},
		"required":             []any{"shouldTakeMasteryPath"},
		"additionalProperties": false,
	},
}
