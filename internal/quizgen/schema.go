package quizgen

import "github.com/coursecraft/flowengine/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "activity-quiz",
	Description: "A set of quiz questions grounded in the provided study material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Short unique identifier, e.g. \"q1\"",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "short_answer"},
							"description": "How the learner answers",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Options for multiple_choice. Empty for other types.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple_choice: the text of the correct option. For true_false: \"true\" or \"false\".",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, citing the study material",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty of this question",
						},
					},
					"required":             []any{"id", "question", "type", "correct_answer", "explanation", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
