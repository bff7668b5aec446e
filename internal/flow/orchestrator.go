package flow

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flowgraph"
	"github.com/coursecraft/flowengine/internal/phases"
	"github.com/coursecraft/flowengine/internal/store"
)

// ErrNodeNotFound is returned when the requested node is absent from
// the graph or is not a condition node. It is the only error Advance
// surfaces; everything else degrades to a best-effort decision.
var ErrNodeNotFound = errors.New("condition node not found")

// Resolver path labels. The authored display labels live on the node
// config; these are the wire labels connections are matched against.
const (
	PathMastery = "mastery"
	PathNovel   = "novel"
)

// AdvanceRequest carries one learner interaction at a condition node.
// Everything is supplied by the caller per call; the engine keeps no
// session state between invocations.
type AdvanceRequest struct {
	ActivityID         string
	UserID             string
	NodeID             string
	StudentResponse    string
	ContextSources     []classifier.ContextSource
	PerformanceHistory []classifier.HistoryEntry

	// Threshold overrides the node's authored threshold when non-nil.
	Threshold *int
}

// AdvanceResult is the outcome of one branching decision.
type AdvanceResult struct {
	Decision      classifier.Decision
	PathLabel     string
	NextNodeID    string
	HasNext       bool
	ThresholdUsed int
	DecisionID    string
}

// Orchestrator drives one traversal step: classify, record, resolve.
// It is stateless and safe for concurrent use across learners and
// activities; the graph is read-only.
type Orchestrator struct {
	gateway *classifier.Gateway
	events  store.EventRepo
	machine *phases.Machine
}

// NewOrchestrator creates an Orchestrator. events may be nil, which
// disables decision recording entirely (useful in tests).
func NewOrchestrator(gateway *classifier.Gateway, events store.EventRepo) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		events:  events,
		machine: phases.NewMachine(nil),
	}
}

// Advance runs the full decision pipeline for one learner response at a
// condition node. Persistence is best-effort: a failed append is logged
// and swallowed, because the classification result must still reach the
// caller.
func (o *Orchestrator) Advance(ctx context.Context, g *flowgraph.Graph, req AdvanceRequest) (AdvanceResult, error) {
	node, ok := g.Node(req.NodeID)
	if !ok || node.Kind != flowgraph.KindCondition || node.Condition == nil {
		return AdvanceResult{}, fmt.Errorf("%w: %q", ErrNodeNotFound, req.NodeID)
	}
	cfg := node.Condition

	threshold := cfg.PerformanceThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	decision := o.gateway.Classify(ctx, classifier.Request{
		StudentResponse:    req.StudentResponse,
		ContextSources:     req.ContextSources,
		PerformanceHistory: req.PerformanceHistory,
		Threshold:          threshold,
		UseAI:              cfg.UseAIClassification,
		ConditionType:      string(cfg.ConditionType),
	})

	decisionID := uuid.NewString()
	o.record(ctx, decisionID, req, decision, threshold)

	path := PathNovel
	display := cfg.NovelPathLabel
	if decision.ShouldTakeMasteryPath {
		path = PathMastery
		display = cfg.MasteryPathLabel
	}
	nextID, hasNext := g.NextNode(req.NodeID, path)

	return AdvanceResult{
		Decision:      decision,
		PathLabel:     display,
		NextNodeID:    nextID,
		HasNext:       hasNext,
		ThresholdUsed: threshold,
		DecisionID:    decisionID,
	}, nil
}

func (o *Orchestrator) record(ctx context.Context, decisionID string, req AdvanceRequest, d classifier.Decision, threshold int) {
	if o.events == nil {
		return
	}
	err := o.events.AppendDecision(ctx, store.DecisionEventData{
		DecisionID:            decisionID,
		UserID:                req.UserID,
		ActivityID:            req.ActivityID,
		NodeID:                req.NodeID,
		Response:              req.StudentResponse,
		ShouldTakeMasteryPath: d.ShouldTakeMasteryPath,
		Confidence:            d.Confidence,
		Reasoning:             d.Reasoning,
		ThresholdUsed:         threshold,
		Method:                string(d.Method),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record decision %s: %v\n", decisionID, err)
	}
}

// PhaseRequest carries one phase gate evaluation.
type PhaseRequest struct {
	SessionID  string
	ActivityID string
	Phase      phases.Phase
	Score      int
	Answers    map[string]string

	// Definitions overrides the canonical phase set when non-empty.
	Definitions []phases.Definition
}

// AdvancePhase evaluates the phase gate and records the attempt. Like
// decision recording, the audit append is best-effort.
func (o *Orchestrator) AdvancePhase(ctx context.Context, req PhaseRequest) phases.Outcome {
	m := o.machine
	if len(req.Definitions) > 0 {
		m = phases.NewMachine(req.Definitions)
	}
	out := m.Evaluate(req.Phase, req.Score, req.Answers)

	if o.events != nil {
		err := o.events.AppendPhaseTransition(ctx, store.PhaseEventData{
			SessionID:  req.SessionID,
			ActivityID: req.ActivityID,
			FromPhase:  string(out.From),
			ToPhase:    string(out.To),
			Score:      out.Score,
			Advanced:   out.Advanced,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record phase transition for session %s: %v\n", req.SessionID, err)
		}
	}
	return out
}
