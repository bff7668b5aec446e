package phases

// Outcome records one evaluation of the phase gate. When the gate
// holds, To stays equal to From and Advanced is false.
type Outcome struct {
	From     Phase
	To       Phase
	Score    int
	Advanced bool
}

// Machine evaluates phase transitions for one activity's definitions.
// It holds no learner state: the caller supplies the current phase and
// cumulative score on every call.
type Machine struct {
	defs map[Phase]Definition
}

// NewMachine builds a Machine from authored definitions. Phases absent
// from defs fall back to the canonical definition, so a partial
// authoring (say, only a quiz override) still yields a full machine.
func NewMachine(defs []Definition) *Machine {
	m := &Machine{defs: make(map[Phase]Definition, len(Order))}
	for _, d := range CanonicalDefinitions() {
		m.defs[d.Phase] = d
	}
	for _, d := range defs {
		if Valid(d.Phase) {
			m.defs[d.Phase] = d
		}
	}
	return m
}

// Definition returns the definition for p.
func (m *Machine) Definition(p Phase) (Definition, bool) {
	d, ok := m.defs[p]
	return d, ok
}

// Evaluate applies the transition rule for the current phase: advance
// only when score meets the phase's own threshold, and — for a phase
// carrying quiz questions — only when every question has been answered.
// An unanswered quiz never passes, independent of score. Completion is
// terminal; evaluating it always stays put.
func (m *Machine) Evaluate(current Phase, score int, answers map[string]string) Outcome {
	out := Outcome{From: current, To: current, Score: score}

	if IsTerminal(current) {
		return out
	}
	def, ok := m.defs[current]
	if !ok {
		return out
	}
	if !allAnswered(def.QuizQuestions, answers) {
		return out
	}
	if score < def.MasteryThreshold {
		return out
	}

	next, ok := Next(current)
	if !ok {
		return out
	}
	out.To = next
	out.Advanced = true
	return out
}

func allAnswered(questions []QuizQuestion, answers map[string]string) bool {
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// ScoreQuiz grades answered questions against the authored answers and
// returns a 0-100 score. An empty question set scores 0.
func ScoreQuiz(questions []QuizQuestion, answers map[string]string) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if a, ok := answers[q.ID]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	return correct * 100 / len(questions)
}
