package flow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flowgraph"
	"github.com/coursecraft/flowengine/internal/phases"
	"github.com/coursecraft/flowengine/internal/store"
)

// recordingRepo captures appends in memory; failErr makes them fail.
type recordingRepo struct {
	store.EventRepo
	decisions []store.DecisionEventData
	phaseEvts []store.PhaseEventData
	failErr   error
}

func (r *recordingRepo) AppendDecision(_ context.Context, data store.DecisionEventData) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.decisions = append(r.decisions, data)
	return nil
}

func (r *recordingRepo) AppendPhaseTransition(_ context.Context, data store.PhaseEventData) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.phaseEvts = append(r.phaseEvts, data)
	return nil
}

func conditionGraph(threshold int, useAI bool) *flowgraph.Graph {
	return flowgraph.New(
		[]flowgraph.Node{
			{ID: "cond1", Kind: flowgraph.KindCondition, Condition: &flowgraph.ConditionConfig{
				ConditionType:        flowgraph.ConditionPerformance,
				PerformanceThreshold: threshold,
				UseAIClassification:  useAI,
				MasteryPathLabel:     "Advanced Track",
				NovelPathLabel:       "Guided Track",
			}},
			{ID: "mastery", Kind: flowgraph.KindContent},
			{ID: "novel", Kind: flowgraph.KindContent},
		},
		[]flowgraph.Connection{
			{From: "cond1", To: "mastery", Label: "mastery"},
			{From: "cond1", To: "novel", Label: "novel"},
		},
	)
}

func TestAdvance_EndToEndHeuristicMastery(t *testing.T) {
	// Threshold 70, AI disabled, 214-character 70-word response
	// containing "because": 20 + 25 + 20 + 20 = 85, so the mastery
	// edge wins.
	g := flowgraph.New(
		[]flowgraph.Node{
			{ID: "cond1", Kind: flowgraph.KindCondition, Condition: &flowgraph.ConditionConfig{
				ConditionType:        flowgraph.ConditionPerformance,
				PerformanceThreshold: 70,
				UseAIClassification:  false,
				MasteryPathLabel:     "Mastery Path",
				NovelPathLabel:       "Novel Path",
			}},
		},
		[]flowgraph.Connection{
			{From: "cond1", To: "m", Label: "mastery"},
			{From: "cond1", To: "n", Label: "novel"},
		},
	)

	repo := &recordingRepo{}
	o := NewOrchestrator(classifier.NewGateway(nil), repo)

	response := strings.Repeat("ab ", 69) + "because"
	if score := classifier.Score(response); score != 85 {
		t.Fatalf("setup: score = %d, want 85", score)
	}

	res, err := o.Advance(context.Background(), g, AdvanceRequest{
		ActivityID:      "act-1",
		UserID:          "user-1",
		NodeID:          "cond1",
		StudentResponse: response,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Decision.ShouldTakeMasteryPath {
		t.Error("score 85 >= 70 should take mastery path")
	}
	if !res.HasNext || res.NextNodeID != "m" {
		t.Errorf("next = %q, %t; want \"m\", true", res.NextNodeID, res.HasNext)
	}
	if res.Decision.Reasoning != classifier.ReasoningSimple {
		t.Errorf("reasoning = %q, want %q", res.Decision.Reasoning, classifier.ReasoningSimple)
	}

	if len(repo.decisions) != 1 {
		t.Fatalf("recorded %d decisions, want 1", len(repo.decisions))
	}
	rec := repo.decisions[0]
	if rec.DecisionID != res.DecisionID || rec.ThresholdUsed != 70 || !rec.ShouldTakeMasteryPath {
		t.Errorf("recorded decision mismatch: %+v", rec)
	}
	if rec.Method != string(classifier.MethodSimple) {
		t.Errorf("recorded method = %q, want simple", rec.Method)
	}
}

func TestAdvance_NodeNotFound(t *testing.T) {
	o := NewOrchestrator(classifier.NewGateway(nil), nil)
	g := conditionGraph(70, false)

	_, err := o.Advance(context.Background(), g, AdvanceRequest{NodeID: "ghost"})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}

	// A node that exists but is not a condition node is equally absent.
	_, err = o.Advance(context.Background(), g, AdvanceRequest{NodeID: "mastery"})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound for content node", err)
	}
}

func TestAdvance_ConditionNodeWithoutConfig(t *testing.T) {
	// A hand-assembled graph can carry a condition node with no config;
	// Advance must refuse it rather than panic.
	g := flowgraph.New(
		[]flowgraph.Node{{ID: "bare", Kind: flowgraph.KindCondition}},
		nil,
	)
	o := NewOrchestrator(classifier.NewGateway(nil), nil)

	_, err := o.Advance(context.Background(), g, AdvanceRequest{NodeID: "bare", StudentResponse: "x"})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound for config-less condition node", err)
	}
}

func TestAdvance_PersistenceFailureIsSwallowed(t *testing.T) {
	repo := &recordingRepo{failErr: errors.New("disk full")}
	o := NewOrchestrator(classifier.NewGateway(nil), repo)
	g := conditionGraph(70, false)

	res, err := o.Advance(context.Background(), g, AdvanceRequest{
		NodeID:          "cond1",
		StudentResponse: "short",
	})
	if err != nil {
		t.Fatalf("persistence failure leaked to caller: %v", err)
	}
	if res.Decision.Reasoning == "" {
		t.Error("decision must still carry reasoning")
	}
}

func TestAdvance_CallerThresholdOverridesNode(t *testing.T) {
	o := NewOrchestrator(classifier.NewGateway(nil), nil)
	g := conditionGraph(70, false)

	// Score 45: question + connective... use a response scoring 45.
	response := "why does it work? because of gravity"
	if score := classifier.Score(response); score != 40 {
		t.Fatalf("setup: score = %d, want 40", score)
	}

	res, err := o.Advance(context.Background(), g, AdvanceRequest{
		NodeID:          "cond1",
		StudentResponse: response,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Decision.ShouldTakeMasteryPath {
		t.Error("40 must not pass the node threshold 70")
	}

	override := 30
	res, err = o.Advance(context.Background(), g, AdvanceRequest{
		NodeID:          "cond1",
		StudentResponse: response,
		Threshold:       &override,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Decision.ShouldTakeMasteryPath {
		t.Error("40 should pass the caller override 30")
	}
	if res.ThresholdUsed != 30 {
		t.Errorf("ThresholdUsed = %d, want 30", res.ThresholdUsed)
	}
}

func TestAdvance_DisplayLabelComesFromNodeConfig(t *testing.T) {
	o := NewOrchestrator(classifier.NewGateway(nil), nil)
	g := conditionGraph(100, false)

	res, err := o.Advance(context.Background(), g, AdvanceRequest{
		NodeID:          "cond1",
		StudentResponse: "short",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.PathLabel != "Guided Track" {
		t.Errorf("path label = %q, want authored novel label", res.PathLabel)
	}
	if res.NextNodeID != "novel" {
		t.Errorf("next = %q, want novel", res.NextNodeID)
	}
}

func TestAdvance_NoOutgoingEdgesEndsActivity(t *testing.T) {
	g := flowgraph.New(
		[]flowgraph.Node{
			{ID: "last", Kind: flowgraph.KindCondition, Condition: &flowgraph.ConditionConfig{
				ConditionType:        flowgraph.ConditionPerformance,
				PerformanceThreshold: 70,
			}},
		},
		nil,
	)
	o := NewOrchestrator(classifier.NewGateway(nil), nil)

	res, err := o.Advance(context.Background(), g, AdvanceRequest{NodeID: "last", StudentResponse: "x"})
	if err != nil {
		t.Fatalf("dead-end node must not error: %v", err)
	}
	if res.HasNext {
		t.Errorf("HasNext = true for a node with no outgoing edges")
	}
}

func TestAdvancePhase_RecordsOutcome(t *testing.T) {
	repo := &recordingRepo{}
	o := NewOrchestrator(classifier.NewGateway(nil), repo)

	out := o.AdvancePhase(context.Background(), PhaseRequest{
		SessionID:  "sess-1",
		ActivityID: "act-1",
		Phase:      phases.PhaseQuiz,
		Score:      85,
	})
	if !out.Advanced || out.To != phases.PhaseMasteryCheck {
		t.Errorf("quiz at 85 should advance to mastery_check, got %+v", out)
	}
	if len(repo.phaseEvts) != 1 {
		t.Fatalf("recorded %d phase events, want 1", len(repo.phaseEvts))
	}
	evt := repo.phaseEvts[0]
	if evt.FromPhase != "quiz" || evt.ToPhase != "mastery_check" || !evt.Advanced {
		t.Errorf("recorded phase event mismatch: %+v", evt)
	}
}

func TestAdvancePhase_CustomDefinitions(t *testing.T) {
	o := NewOrchestrator(classifier.NewGateway(nil), nil)

	defs := []phases.Definition{{
		Phase:            phases.PhaseQuiz,
		MasteryThreshold: 80,
		QuizQuestions:    []phases.QuizQuestion{{ID: "q1", CorrectAnswer: "a"}},
	}}

	out := o.AdvancePhase(context.Background(), PhaseRequest{
		Phase:       phases.PhaseQuiz,
		Score:       95,
		Definitions: defs,
	})
	if out.Advanced {
		t.Error("unanswered quiz must not advance")
	}

	out = o.AdvancePhase(context.Background(), PhaseRequest{
		Phase:       phases.PhaseQuiz,
		Score:       95,
		Answers:     map[string]string{"q1": "a"},
		Definitions: defs,
	})
	if !out.Advanced {
		t.Error("answered quiz at 95 should advance")
	}
}
