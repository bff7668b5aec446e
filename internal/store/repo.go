package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// DecisionEventData captures one branching decision for the audit log.
type DecisionEventData struct {
	DecisionID            string
	UserID                string
	ActivityID            string
	NodeID                string
	Response              string
	ShouldTakeMasteryPath bool
	Confidence            float64
	Reasoning             string
	ThresholdUsed         int
	Method                string // ai, fallback, simple
}

// DecisionRecord is a persisted branching decision.
type DecisionRecord struct {
	ID                    int
	Sequence              int64
	Timestamp             time.Time
	DecisionID            string
	UserID                string
	ActivityID            string
	NodeID                string
	Response              string
	ShouldTakeMasteryPath bool
	Confidence            float64
	Reasoning             string
	ThresholdUsed         int
	Method                string
}

// DecisionQuery filters decision listings.
type DecisionQuery struct {
	QueryOpts
	ActivityID string
	NodeID     string
	UserID     string
}

// PhaseEventData captures a phase transition attempt.
type PhaseEventData struct {
	SessionID  string
	ActivityID string
	FromPhase  string
	ToPhase    string
	Score      int
	Advanced   bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a persisted LLM request event.
type LLMRequestRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
// Appends assign a global sequence shared across all event types, so
// cross-type ordering questions (did the decision precede the phase
// advance?) stay answerable.
type EventRepo interface {
	// AppendDecision records a branching decision audit event.
	AppendDecision(ctx context.Context, data DecisionEventData) error

	// QueryDecisions lists decision records, newest first.
	QueryDecisions(ctx context.Context, q DecisionQuery) ([]DecisionRecord, error)

	// GetDecision returns one decision by its UUID, or nil.
	GetDecision(ctx context.Context, decisionID string) (*DecisionRecord, error)

	// AppendPhaseTransition records a phase gate evaluation.
	AppendPhaseTransition(ctx context.Context, data PhaseEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents lists LLM request records, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns one LLM request record by row id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)
}
