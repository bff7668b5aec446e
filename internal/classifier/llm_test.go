package classifier

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/coursecraft/flowengine/internal/llm"
)

func TestLLMClassifier_ParsesFullOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"shouldTakeMasteryPath": false, "confidence": 0.75, "reasoning": "Surface recall only"}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMConfig())

	d, err := c.Classify(context.Background(), performanceRequest("answer", 70))
	if err != nil {
		t.Fatal(err)
	}
	if d.ShouldTakeMasteryPath {
		t.Error("expected novel path")
	}
	if d.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75", d.Confidence)
	}
	if d.Reasoning != "Surface recall only" {
		t.Errorf("reasoning = %q", d.Reasoning)
	}
	if d.Method != MethodAI {
		t.Errorf("method = %q, want ai", d.Method)
	}
}

func TestLLMClassifier_DefaultsMissingConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"shouldTakeMasteryPath": true, "reasoning": "ok"}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMConfig())

	d, err := c.Classify(context.Background(), performanceRequest("answer", 70))
	if err != nil {
		t.Fatal(err)
	}
	if d.Confidence != 0.5 {
		t.Errorf("confidence = %v, want default 0.5", d.Confidence)
	}
}

func TestLLMClassifier_ClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"shouldTakeMasteryPath": true, "confidence": 1.8}`)},
		llm.MockResponse{Content: json.RawMessage(`{"shouldTakeMasteryPath": true, "confidence": -0.3}`)},
	)
	c := NewLLMClassifier(mock, DefaultLLMConfig())

	d, _ := c.Classify(context.Background(), performanceRequest("a", 70))
	if d.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", d.Confidence)
	}
	d, _ = c.Classify(context.Background(), performanceRequest("a", 70))
	if d.Confidence != 0 {
		t.Errorf("confidence = %v, want clamped to 0", d.Confidence)
	}
}

func TestLLMClassifier_ErrorsOnUnparsableContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"just a string"`),
	})
	c := NewLLMClassifier(mock, DefaultLLMConfig())

	if _, err := c.Classify(context.Background(), performanceRequest("answer", 70)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLLMClassifier_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"shouldTakeMasteryPath": true}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMConfig())

	score := 88.0
	req := Request{
		StudentResponse: "Plants bend toward light because auxin redistributes.",
		Threshold:       70,
		UseAI:           true,
		ConditionType:   "performance",
		ContextSources: []ContextSource{
			{Title: "Phototropism", Summary: "How plants track light", KeyPoints: []string{"auxin", "elongation"}},
		},
		PerformanceHistory: []HistoryEntry{
			{Type: "quiz", Score: &score},
		},
	}

	if _, err := c.Classify(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}

	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Phototropism", "auxin", "auxin redistributes", "70"} {
		if !strings.Contains(sent, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != ClassificationSchema {
		t.Error("request did not carry the classification schema")
	}
}
