package quizgen

import (
	"fmt"

	"github.com/coursecraft/flowengine/internal/phases"
)

// StructuralValidator checks that required fields are present, IDs are
// unique, and enum values are valid.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(questions []phases.QuizQuestion, input GenerateInput) *ValidationError {
	if len(questions) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no questions generated",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return v.fail(i, "id is empty")
		}
		if seen[q.ID] {
			return v.fail(i, fmt.Sprintf("duplicate id %q", q.ID))
		}
		seen[q.ID] = true
		if q.Question == "" {
			return v.fail(i, "question text is empty")
		}
		if len(q.Question) > 500 {
			return v.fail(i, "question text exceeds 500 characters")
		}
		if q.CorrectAnswer == "" {
			return v.fail(i, "correct_answer is empty")
		}
		switch QuestionType(q.Type) {
		case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
		default:
			return v.fail(i, fmt.Sprintf("unknown question type %q", q.Type))
		}
		switch q.Difficulty {
		case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			return v.fail(i, fmt.Sprintf("unknown difficulty %q", q.Difficulty))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", i+1, msg),
		Retryable: true,
	}
}

// AnswerValidator checks that the correct answer is consistent with the
// question type: a multiple-choice answer must be one of the options,
// a true/false answer must be "true" or "false".
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(questions []phases.QuizQuestion, _ GenerateInput) *ValidationError {
	for i, q := range questions {
		switch QuestionType(q.Type) {
		case TypeMultipleChoice:
			if len(q.Options) < 2 || len(q.Options) > 6 {
				return v.fail(i, fmt.Sprintf("multiple_choice needs 2-6 options, got %d", len(q.Options)))
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				return v.fail(i, "correct_answer is not among the options")
			}
		case TypeTrueFalse:
			if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
				return v.fail(i, fmt.Sprintf("true_false answer must be \"true\" or \"false\", got %q", q.CorrectAnswer))
			}
		}
	}
	return nil
}

func (v *AnswerValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", i+1, msg),
		Retryable: true,
	}
}
