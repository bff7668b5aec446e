package classifier

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingClassifier struct {
	calls   atomic.Int64
	release chan struct{}
}

func (c *countingClassifier) Classify(ctx context.Context, req Request) (Decision, error) {
	n := c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	return Decision{
		ShouldTakeMasteryPath: true,
		Confidence:            float64(n),
		Reasoning:             "counted",
	}, nil
}

func TestDedup_ConcurrentCallsShareOneFlight(t *testing.T) {
	inner := &countingClassifier{release: make(chan struct{})}
	d := WithDedup(inner, 0)

	req := Request{StudentResponse: "same answer", Threshold: 70}

	var wg sync.WaitGroup
	results := make([]Decision, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = d.Classify(context.Background(), req)
		}()
	}

	// Let the goroutines pile onto the in-flight call, then release it.
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("inner called %d times, want 1", got)
	}
	for i, r := range results {
		if r.Confidence != 1 {
			t.Errorf("result %d came from call %v, want the shared first call", i, r.Confidence)
		}
	}
}

func TestDedup_RecentDecisionReusedWithinInterval(t *testing.T) {
	inner := &countingClassifier{}
	d := WithDedup(inner, time.Minute)

	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }

	req := Request{StudentResponse: "same answer", Threshold: 70}

	if _, err := d.Classify(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Classify(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("inner called %d times within interval, want 1", got)
	}

	now = now.Add(2 * time.Minute)
	if _, err := d.Classify(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("inner called %d times after interval elapsed, want 2", got)
	}
}

func TestDedup_DistinctRequestsDoNotCollide(t *testing.T) {
	inner := &countingClassifier{}
	d := WithDedup(inner, time.Minute)

	base := Request{StudentResponse: "answer", Threshold: 70, UseAI: true, ConditionType: "performance"}
	variants := []Request{
		base,
		{StudentResponse: "other answer", Threshold: 70, UseAI: true, ConditionType: "performance"},
		{StudentResponse: "answer", Threshold: 80, UseAI: true, ConditionType: "performance"},
		{StudentResponse: "answer", Threshold: 70, UseAI: false, ConditionType: "performance"},
		{StudentResponse: "answer", Threshold: 70, UseAI: true, ConditionType: "completion"},
	}

	for _, req := range variants {
		if _, err := d.Classify(context.Background(), req); err != nil {
			t.Fatal(err)
		}
	}
	if got := inner.calls.Load(); got != int64(len(variants)) {
		t.Fatalf("inner called %d times, want %d distinct calls", got, len(variants))
	}
}
