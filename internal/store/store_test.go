package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func decisionData(decisionID string) DecisionEventData {
	return DecisionEventData{
		DecisionID:            decisionID,
		UserID:                "user-1",
		ActivityID:            "act-1",
		NodeID:                "cond1",
		Response:              "because of gravity",
		ShouldTakeMasteryPath: true,
		Confidence:            0.4,
		Reasoning:             "Used simple scoring method",
		ThresholdUsed:         70,
		Method:                "simple",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	ctx := context.Background()
	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestDecisionAppendAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendDecision(ctx, decisionData("d-1")); err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := repo.GetDecision(ctx, "d-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.DecisionID != "d-1" || !rec.ShouldTakeMasteryPath || rec.ThresholdUsed != 70 {
		t.Errorf("record mismatch: %+v", rec)
	}
	if rec.Reasoning != "Used simple scoring method" {
		t.Errorf("reasoning = %q", rec.Reasoning)
	}
	if rec.Sequence == 0 {
		t.Error("sequence not assigned")
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp not assigned")
	}

	// Unknown decision returns nil, not an error.
	rec, err = repo.GetDecision(ctx, "ghost")
	if err != nil {
		t.Fatalf("get unknown: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil for unknown decision")
	}
}

func TestDecisionQueryFiltersAndOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d := decisionData(fmt.Sprintf("d-%d", i))
		if i == 2 {
			d.ActivityID = "act-2"
			d.UserID = "user-2"
		}
		if err := repo.AppendDecision(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryDecisions(ctx, DecisionQuery{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	// Newest first.
	if all[0].DecisionID != "d-2" || all[2].DecisionID != "d-0" {
		t.Errorf("unexpected order: %s ... %s", all[0].DecisionID, all[2].DecisionID)
	}

	byActivity, err := repo.QueryDecisions(ctx, DecisionQuery{ActivityID: "act-2"})
	if err != nil {
		t.Fatalf("query by activity: %v", err)
	}
	if len(byActivity) != 1 || byActivity[0].DecisionID != "d-2" {
		t.Errorf("activity filter: %+v", byActivity)
	}

	limited, err := repo.QueryDecisions(ctx, DecisionQuery{QueryOpts: QueryOpts{Limit: 2}})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit: got %d records, want 2", len(limited))
	}
}

func TestPhaseTransitionAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPhaseTransition(ctx, PhaseEventData{
		SessionID:  "sess-1",
		ActivityID: "act-1",
		FromPhase:  "quiz",
		ToPhase:    "mastery_check",
		Score:      85,
		Advanced:   true,
	})
	if err != nil {
		t.Fatalf("append phase transition: %v", err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "path-classification",
		InputTokens:  100,
		OutputTokens: 20,
		LatencyMs:    42,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "path-classification" || events[0].LatencyMs != 42 {
		t.Errorf("event mismatch: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "mock" {
		t.Errorf("get mismatch: %+v", got)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendDecision(ctx, decisionData("d-1")); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendDecision(ctx, decisionData("d-2")); err != nil {
		t.Fatal(err)
	}

	d2, err := repo.GetDecision(ctx, "d-2")
	if err != nil {
		t.Fatal(err)
	}
	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(llmEvents) != 1 {
		t.Fatalf("got %d llm events, want 1", len(llmEvents))
	}
	// The LLM event was appended between the two decisions, so its
	// sequence sits strictly between theirs.
	if !(llmEvents[0].Sequence > 1 && llmEvents[0].Sequence < d2.Sequence) {
		t.Errorf("cross-type ordering broken: llm seq %d, d-2 seq %d", llmEvents[0].Sequence, d2.Sequence)
	}
}
