package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursecraft/flowengine/internal/llm"
	"github.com/coursecraft/flowengine/internal/phases"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []struct {
		ID            string   `json:"id"`
		Question      string   `json:"question"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Difficulty    string   `json:"difficulty"`
	} `json:"questions"`
}

// Generate produces a quiz for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]phases.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]phases.QuizQuestion, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		questions = append(questions, phases.QuizQuestion{
			ID:            q.ID,
			Question:      q.Question,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Difficulty:    q.Difficulty,
		})
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(questions, input); verr != nil {
			return nil, verr
		}
	}

	return questions, nil
}
