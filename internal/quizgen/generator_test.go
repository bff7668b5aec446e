package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/coursecraft/flowengine/internal/llm"
)

const validQuizJSON = `{
	"questions": [
		{
			"id": "q1",
			"question": "Which hormone drives phototropism?",
			"type": "multiple_choice",
			"options": ["Auxin", "Gibberellin", "Ethylene", "Cytokinin"],
			"correct_answer": "Auxin",
			"explanation": "The material states auxin redistributes toward the shaded side.",
			"difficulty": "easy"
		},
		{
			"id": "q2",
			"question": "Stems bend away from light.",
			"type": "true_false",
			"options": [],
			"correct_answer": "false",
			"explanation": "Stems bend toward light.",
			"difficulty": "easy"
		}
	]
}`

func quizInput() GenerateInput {
	return GenerateInput{
		ActivityTitle: "Phototropism",
		Sources: []Source{
			{Title: "How plants track light", Summary: "Auxin and elongation", KeyPoints: []string{"auxin redistributes"}},
		},
		Count: 2,
	}
}

func TestGenerate_ValidQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuizJSON)})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), quizInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].ID != "q1" || questions[0].CorrectAnswer != "Auxin" {
		t.Errorf("first question mapped wrong: %+v", questions[0])
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), quizInput()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_EmptyQuizFailsStructural(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quizInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("failed validator = %q, want structural", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("empty quiz should be retryable")
	}
}

func TestGenerate_AnswerNotInOptionsFails(t *testing.T) {
	bad := strings.Replace(validQuizJSON, `"correct_answer": "Auxin"`, `"correct_answer": "Sunlight"`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quizInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "answer" {
		t.Errorf("failed validator = %q, want answer", verr.Validator)
	}
}

func TestGenerate_PromptCarriesMaterialAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuizJSON)})
	g := New(mock, DefaultConfig())

	input := quizInput()
	input.PriorQuestions = []string{"What is auxin?"}

	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Phototropism", "auxin redistributes", "What is auxin?"} {
		if !strings.Contains(sent, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != QuizSchema {
		t.Error("request did not carry the quiz schema")
	}
}
