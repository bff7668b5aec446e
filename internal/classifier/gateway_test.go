package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/coursecraft/flowengine/internal/llm"
)

func performanceRequest(response string, threshold int) Request {
	return Request{
		StudentResponse: response,
		Threshold:       threshold,
		UseAI:           true,
		ConditionType:   "performance",
	}
}

func TestGateway_SimplePathWhenAIDisabled(t *testing.T) {
	mock := llm.NewMockProvider() // would error if reached
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	req := performanceRequest("short answer", 70)
	req.UseAI = false

	d := g.Classify(context.Background(), req)
	if d.Reasoning != ReasoningSimple {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, ReasoningSimple)
	}
	if d.Method != MethodSimple {
		t.Errorf("method = %q, want simple", d.Method)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times, want 0", mock.CallCount())
	}
}

func TestGateway_SimplePathForNonPerformanceCondition(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	req := performanceRequest("short answer", 70)
	req.ConditionType = "completion"

	d := g.Classify(context.Background(), req)
	if d.Reasoning != ReasoningSimple {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, ReasoningSimple)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times, want 0", mock.CallCount())
	}
}

func TestGateway_SimplePathWhenNoAIConfigured(t *testing.T) {
	g := NewGateway(nil)

	d := g.Classify(context.Background(), performanceRequest("answer", 70))
	if d.Reasoning != ReasoningSimple {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, ReasoningSimple)
	}
}

func TestGateway_FallbackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	// 210+ chars with a connective: heuristic score 65.
	response := strings.Repeat("ab", 105) + " because it follows"
	d := g.Classify(context.Background(), performanceRequest(response, 60))

	if d.Reasoning != ReasoningFallback {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, ReasoningFallback)
	}
	if d.Method != MethodFallback {
		t.Errorf("method = %q, want fallback", d.Method)
	}
	if !d.ShouldTakeMasteryPath {
		t.Error("heuristic 65 >= 60 should take mastery path")
	}
}

func TestGateway_FallbackOnMalformedOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
	)
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	d := g.Classify(context.Background(), performanceRequest("tiny", 70))
	if d.Reasoning != ReasoningFallback {
		t.Errorf("reasoning = %q, want %q", d.Reasoning, ReasoningFallback)
	}
	if d.ShouldTakeMasteryPath {
		t.Error("heuristic 0 < 70 should not take mastery path")
	}
}

func TestGateway_AIDecisionPassedThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(
			`{"shouldTakeMasteryPath": true, "confidence": 0.9, "reasoning": "Clear causal explanation", "performanceScore": 88}`,
		)},
	)
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	d := g.Classify(context.Background(), performanceRequest("a good answer", 70))
	if !d.ShouldTakeMasteryPath {
		t.Error("expected mastery path")
	}
	if d.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", d.Confidence)
	}
	if d.Reasoning != "Clear causal explanation" {
		t.Errorf("reasoning = %q", d.Reasoning)
	}
	if d.Method != MethodAI {
		t.Errorf("method = %q, want ai", d.Method)
	}
}

func TestGateway_SynthesizesEmptyReasoning(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"shouldTakeMasteryPath": true}`)},
	)
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	d := g.Classify(context.Background(), performanceRequest("answer", 70))
	if d.Reasoning == "" {
		t.Error("reasoning must never be empty")
	}
	if d.Confidence != 0.5 {
		t.Errorf("confidence = %v, want default 0.5", d.Confidence)
	}
}

func TestGateway_NeverPanicsOrFails(t *testing.T) {
	// A queue of assorted failures: every single one must still
	// produce a decision.
	failures := []llm.MockResponse{
		{Err: &llm.ErrProviderUnavailable{}},
		{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
		{Err: &llm.ErrMaxTokensExceeded{}},
		{Content: json.RawMessage(`[]`)},
		{Content: json.RawMessage(``)},
	}
	mock := llm.NewMockProvider(failures...)
	g := NewGateway(NewLLMClassifier(mock, DefaultLLMConfig()))

	for i := range failures {
		d := g.Classify(context.Background(), performanceRequest("x", 50))
		if d.Reasoning != ReasoningFallback {
			t.Errorf("failure %d: reasoning = %q, want %q", i, d.Reasoning, ReasoningFallback)
		}
	}
}
