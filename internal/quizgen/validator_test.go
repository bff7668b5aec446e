package quizgen

import (
	"testing"

	"github.com/coursecraft/flowengine/internal/phases"
)

func mcQuestion(id string) phases.QuizQuestion {
	return phases.QuizQuestion{
		ID:            id,
		Question:      "Which option is correct?",
		Type:          string(TypeMultipleChoice),
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "Because a.",
		Difficulty:    DifficultyMedium,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(*phases.QuizQuestion)
		wantOK bool
	}{
		{"valid", func(q *phases.QuizQuestion) {}, true},
		{"empty id", func(q *phases.QuizQuestion) { q.ID = "" }, false},
		{"empty question", func(q *phases.QuizQuestion) { q.Question = "" }, false},
		{"empty answer", func(q *phases.QuizQuestion) { q.CorrectAnswer = "" }, false},
		{"bad type", func(q *phases.QuizQuestion) { q.Type = "essay" }, false},
		{"bad difficulty", func(q *phases.QuizQuestion) { q.Difficulty = "brutal" }, false},
		{"empty difficulty allowed", func(q *phases.QuizQuestion) { q.Difficulty = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mcQuestion("q1")
			tt.mutate(&q)
			err := v.Validate([]phases.QuizQuestion{q}, GenerateInput{})
			if (err == nil) != tt.wantOK {
				t.Errorf("got %v, wantOK=%t", err, tt.wantOK)
			}
		})
	}
}

func TestStructuralValidator_DuplicateIDs(t *testing.T) {
	v := &StructuralValidator{}
	qs := []phases.QuizQuestion{mcQuestion("q1"), mcQuestion("q1")}
	if err := v.Validate(qs, GenerateInput{}); err == nil {
		t.Fatal("duplicate ids should fail")
	}
}

func TestAnswerValidator(t *testing.T) {
	v := &AnswerValidator{}

	q := mcQuestion("q1")
	if err := v.Validate([]phases.QuizQuestion{q}, GenerateInput{}); err != nil {
		t.Fatalf("valid MC question failed: %v", err)
	}

	q.Options = []string{"only one"}
	if err := v.Validate([]phases.QuizQuestion{q}, GenerateInput{}); err == nil {
		t.Error("single option should fail")
	}

	tf := phases.QuizQuestion{
		ID: "q2", Question: "Water is wet.", Type: string(TypeTrueFalse),
		CorrectAnswer: "yes", Explanation: "x", Difficulty: DifficultyEasy,
	}
	if err := v.Validate([]phases.QuizQuestion{tf}, GenerateInput{}); err == nil {
		t.Error(`true_false answer "yes" should fail`)
	}
	tf.CorrectAnswer = "true"
	if err := v.Validate([]phases.QuizQuestion{tf}, GenerateInput{}); err != nil {
		t.Errorf(`true_false answer "true" failed: %v`, err)
	}

	sa := phases.QuizQuestion{
		ID: "q3", Question: "Name the hormone.", Type: string(TypeShortAnswer),
		CorrectAnswer: "auxin", Explanation: "x", Difficulty: DifficultyHard,
	}
	if err := v.Validate([]phases.QuizQuestion{sa}, GenerateInput{}); err != nil {
		t.Errorf("short_answer failed: %v", err)
	}
}
