package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursecraft/flowengine/internal/llm"
)

// LLMConfig holds configuration for the LLM classifier.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns sensible defaults. Temperature stays low:
// the same response should rarely flip paths between retries.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMClassifier judges mastery via the LLM provider.
type LLMClassifier struct {
	provider llm.Provider
	cfg      LLMConfig
}

// NewLLMClassifier creates an LLM-backed classifier.
func NewLLMClassifier(provider llm.Provider, cfg LLMConfig) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

// classificationOutput is the raw LLM response. Pointer fields let a
// partially filled object be defaulted instead of rejected.
type classificationOutput struct {
	ShouldTakeMasteryPath bool     `json:"shouldTakeMasteryPath"`
	Confidence            *float64 `json:"confidence"`
	Reasoning             string   `json:"reasoning"`
	PerformanceScore      *float64 `json:"performanceScore"`
}

// Classify sends the learner response to the LLM and parses the
// structured verdict. Any provider or parse failure surfaces as an
// error; the Gateway converts that into a heuristic fallback.
func (c *LLMClassifier) Classify(ctx context.Context, req Request) (Decision, error) {
	ctx = llm.WithPurpose(ctx, "path-classification")

	userMsg, err := buildClassificationMessage(req)
	if err != nil {
		return Decision{}, fmt.Errorf("build classification prompt: %w", err)
	}

	llmReq := llm.Request{
		System: classificationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ClassificationSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, llmReq)
	if err != nil {
		return Decision{}, fmt.Errorf("LLM classification failed: %w", err)
	}

	var raw classificationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Decision{}, fmt.Errorf("parse classification response: %w", err)
	}

	d := Decision{
		ShouldTakeMasteryPath: raw.ShouldTakeMasteryPath,
		Confidence:            0.5,
		Reasoning:             raw.Reasoning,
		Method:                MethodAI,
	}
	if raw.Confidence != nil {
		d.Confidence = clamp01(*raw.Confidence)
	}

	return d, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
