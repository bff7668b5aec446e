package phases

// Phase is one stage of a chat-style activity. Progression is linear:
// no cycles, no skipping backward.
type Phase string

const (
	PhaseIntroduction Phase = "introduction"
	PhaseLearning     Phase = "learning"
	PhaseQuiz         Phase = "quiz"
	PhaseMasteryCheck Phase = "mastery_check"
	PhaseCompletion   Phase = "completion"
)

// Order is the canonical phase sequence.
var Order = []Phase{
	PhaseIntroduction,
	PhaseLearning,
	PhaseQuiz,
	PhaseMasteryCheck,
	PhaseCompletion,
}

// Next returns the phase that follows p, or false when p is terminal
// or unknown.
func Next(p Phase) (Phase, bool) {
	for i, ph := range Order {
		if ph == p && i+1 < len(Order) {
			return Order[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether p is the completion phase.
func IsTerminal(p Phase) bool {
	return p == PhaseCompletion
}

// Valid reports whether p is one of the five known phases.
func Valid(p Phase) bool {
	for _, ph := range Order {
		if ph == p {
			return true
		}
	}
	return false
}

// QuizQuestion is one authored question inside a quiz phase.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

// Definition is the authored content and gate for one phase. Owned by
// the activity definition; read-only here.
type Definition struct {
	Phase        Phase  `json:"phase"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Instructions string `json:"instructions,omitempty"`

	// MasteryThreshold gates the transition out of this phase. Authored
	// sequences are expected to be non-decreasing but are not required
	// to be: each phase gates only on its own threshold.
	MasteryThreshold int `json:"mastery_threshold"`

	// QuizQuestions is populated for the quiz phase. A phase that
	// carries questions requires every one answered before its
	// threshold is even consulted.
	QuizQuestions []QuizQuestion `json:"quiz_questions,omitempty"`
}

// CanonicalDefinitions returns the reference five-phase design with
// thresholds 0, 0, 80, 90, 100 and no quiz content.
func CanonicalDefinitions() []Definition {
	return []Definition{
		{Phase: PhaseIntroduction, Title: "Introduction", MasteryThreshold: 0},
		{Phase: PhaseLearning, Title: "Learning", MasteryThreshold: 0},
		{Phase: PhaseQuiz, Title: "Quiz", MasteryThreshold: 80},
		{Phase: PhaseMasteryCheck, Title: "Mastery Check", MasteryThreshold: 90},
		{Phase: PhaseCompletion, Title: "Completion", MasteryThreshold: 100},
	}
}
