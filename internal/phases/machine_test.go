package phases

import "testing"

func TestNext_FollowsCanonicalOrder(t *testing.T) {
	wants := map[Phase]Phase{
		PhaseIntroduction: PhaseLearning,
		PhaseLearning:     PhaseQuiz,
		PhaseQuiz:         PhaseMasteryCheck,
		PhaseMasteryCheck: PhaseCompletion,
	}
	for from, want := range wants {
		got, ok := Next(from)
		if !ok || got != want {
			t.Errorf("Next(%s) = %s, %t; want %s", from, got, ok, want)
		}
	}
	if _, ok := Next(PhaseCompletion); ok {
		t.Error("completion must have no successor")
	}
}

func TestEvaluate_ZeroThresholdAdvancesOnAnyScore(t *testing.T) {
	m := NewMachine(nil)

	for _, p := range []Phase{PhaseIntroduction, PhaseLearning} {
		out := m.Evaluate(p, 0, nil)
		if !out.Advanced {
			t.Errorf("%s with score 0 should advance", p)
		}
	}
}

func TestEvaluate_GatesOnOwnThreshold(t *testing.T) {
	m := NewMachine(nil)

	out := m.Evaluate(PhaseMasteryCheck, 89, nil)
	if out.Advanced {
		t.Error("89 must not pass the 90 gate")
	}
	if out.To != PhaseMasteryCheck {
		t.Errorf("failed gate moved phase to %s", out.To)
	}

	out = m.Evaluate(PhaseMasteryCheck, 90, nil)
	if !out.Advanced || out.To != PhaseCompletion {
		t.Errorf("90 should advance to completion, got %+v", out)
	}
}

func TestEvaluate_CompletionIsTerminal(t *testing.T) {
	m := NewMachine(nil)

	out := m.Evaluate(PhaseCompletion, 100, nil)
	if out.Advanced || out.To != PhaseCompletion {
		t.Errorf("completion must never advance, got %+v", out)
	}
}

func TestEvaluate_UnansweredQuizNeverPasses(t *testing.T) {
	defs := []Definition{{
		Phase:            PhaseQuiz,
		MasteryThreshold: 80,
		QuizQuestions: []QuizQuestion{
			{ID: "q1", CorrectAnswer: "a"},
			{ID: "q2", CorrectAnswer: "b"},
		},
	}}
	m := NewMachine(defs)

	// Score artificially above threshold: still blocked.
	out := m.Evaluate(PhaseQuiz, 100, nil)
	if out.Advanced {
		t.Error("quiz with no answers advanced despite score 100")
	}

	out = m.Evaluate(PhaseQuiz, 100, map[string]string{"q1": "a"})
	if out.Advanced {
		t.Error("quiz with a missing answer advanced")
	}

	out = m.Evaluate(PhaseQuiz, 100, map[string]string{"q1": "a", "q2": "x"})
	if !out.Advanced {
		t.Error("fully answered quiz at score 100 should advance; grading is the caller's concern")
	}
}

func TestEvaluate_NonMonotonicThresholdsTolerated(t *testing.T) {
	defs := []Definition{
		{Phase: PhaseQuiz, MasteryThreshold: 90},
		{Phase: PhaseMasteryCheck, MasteryThreshold: 50},
	}
	m := NewMachine(defs)

	if out := m.Evaluate(PhaseQuiz, 85, nil); out.Advanced {
		t.Error("quiz gate must use its own threshold 90")
	}
	if out := m.Evaluate(PhaseMasteryCheck, 60, nil); !out.Advanced {
		t.Error("mastery_check gate must use its own threshold 50")
	}
}

func TestEvaluate_UnknownPhaseStaysPut(t *testing.T) {
	m := NewMachine(nil)
	out := m.Evaluate(Phase("review"), 100, nil)
	if out.Advanced {
		t.Error("unknown phase must not advance")
	}
}

func TestScoreQuiz(t *testing.T) {
	questions := []QuizQuestion{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
		{ID: "q3", CorrectAnswer: "c"},
		{ID: "q4", CorrectAnswer: "d"},
	}

	tests := []struct {
		name    string
		answers map[string]string
		want    int
	}{
		{"all correct", map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "d"}, 100},
		{"three of four", map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "x"}, 75},
		{"none answered", nil, 0},
		{"wrong answers score zero", map[string]string{"q1": "z", "q2": "z", "q3": "z", "q4": "z"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreQuiz(questions, tt.answers); got != tt.want {
				t.Errorf("ScoreQuiz = %d, want %d", got, tt.want)
			}
		})
	}

	if got := ScoreQuiz(nil, nil); got != 0 {
		t.Errorf("empty question set scored %d, want 0", got)
	}
}
