package classifier

import (
	"context"
	"time"

	"github.com/coursecraft/flowengine/internal/flowgraph"
)

// Gateway owns the classification policy: when to attempt the AI path,
// how long to wait for it, and how to degrade when it is disabled,
// unconfigured, or failing. Classify never fails — a learner's session
// must not stall on classifier infrastructure.
type Gateway struct {
	ai        Classifier
	heuristic *HeuristicClassifier
	timeout   time.Duration
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithTimeout bounds the AI classification call. Hitting the deadline
// is treated like any other failure: immediate heuristic fallback.
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) { g.timeout = d }
}

// NewGateway creates a Gateway. A nil ai classifier means no AI
// credential is configured; every request then takes the simple path.
func NewGateway(ai Classifier, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		ai:        ai,
		heuristic: NewHeuristicClassifier(),
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Classify produces a decision for the request. The AI path is only
// attempted when the node enables it, the condition type is
// performance, and an AI classifier is configured; a single failure
// falls straight back to the heuristic — no retries, because
// learner-facing latency matters more than classifier recall.
func (g *Gateway) Classify(ctx context.Context, req Request) Decision {
	if g.ai == nil || !req.UseAI || req.ConditionType != string(flowgraph.ConditionPerformance) {
		d, _ := g.heuristic.Classify(ctx, req)
		d.Reasoning = ReasoningSimple
		d.Method = MethodSimple
		return d
	}

	aiCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	d, err := g.ai.Classify(aiCtx, req)
	if err != nil {
		fd, _ := g.heuristic.Classify(ctx, req)
		fd.Reasoning = ReasoningFallback
		fd.Method = MethodFallback
		return fd
	}

	if d.Reasoning == "" {
		d.Reasoning = "Classifier returned no reasoning"
	}
	d.Method = MethodAI
	return d
}
