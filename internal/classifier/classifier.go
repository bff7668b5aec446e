package classifier

import "context"

// Method identifies which path produced a decision.
type Method string

const (
	MethodAI       Method = "ai"
	MethodFallback Method = "fallback"
	MethodSimple   Method = "simple"
)

// Reasoning strings for the non-AI paths. Downstream analytics key on
// these exact values, so they are contracts, not copy.
const (
	ReasoningFallback = "Used fallback scoring method"
	ReasoningSimple   = "Used simple scoring method"
)

// ContextSource enriches the judgment with material the learner has
// already seen.
type ContextSource struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary,omitempty"`
	KeyPoints []string `json:"key_points,omitempty"`
}

// HistoryEntry is one prior performance data point. Either Score or
// Performance may be set, depending on the recording surface.
type HistoryEntry struct {
	Type        string   `json:"type"`
	Score       *float64 `json:"score,omitempty"`
	Performance *float64 `json:"performance,omitempty"`
}

// Request is the ephemeral input to a classification.
type Request struct {
	StudentResponse    string
	ContextSources     []ContextSource
	PerformanceHistory []HistoryEntry
	Threshold          int

	// UseAI and ConditionType come from the condition node's authored
	// config; both must permit AI for the AI path to be attempted.
	UseAI         bool
	ConditionType string
}

// Decision is the atomic output and audit unit of a classification.
// Created once per learner interaction at a condition node, persisted
// immediately, never mutated.
type Decision struct {
	ShouldTakeMasteryPath bool
	Confidence            float64
	Reasoning             string
	Method                Method
}

// Classifier turns a learner response into a path decision. The LLM
// implementation may fail; the heuristic one never does. The Gateway
// composes them so that callers always get a decision.
type Classifier interface {
	Classify(ctx context.Context, req Request) (Decision, error)
}
