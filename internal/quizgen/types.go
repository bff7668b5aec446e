package quizgen

import (
	"context"

	"github.com/coursecraft/flowengine/internal/phases"
)

// QuestionType describes how the learner answers a quiz question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
)

// Difficulty labels accepted in authored content and generated output.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Source is one piece of studied material the quiz draws from.
type Source struct {
	Title     string
	Summary   string
	KeyPoints []string
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// ActivityTitle names the activity the quiz belongs to.
	ActivityTitle string

	// Sources is the material the learner studied. Questions must be
	// answerable from these alone.
	Sources []Source

	// Count is the number of questions to generate.
	Count int

	// Difficulty is "easy", "medium", or "hard"; empty means mixed.
	Difficulty string

	// PriorQuestions contains the text of questions already asked for
	// this activity. Used for deduplication in the prompt.
	PriorQuestions []string
}

// Generator produces quiz questions for an activity's quiz phase.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]phases.QuizQuestion, error)
}
