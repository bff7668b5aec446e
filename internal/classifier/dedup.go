package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// DedupClassifier is a decorator that collapses repeated identical
// requests: concurrent duplicates share one in-flight call, and a
// completed decision is reused for a minimum interval. Client retry
// storms are an external concern, so this lives as opt-in middleware
// around a Classifier rather than inside the engine.
type DedupClassifier struct {
	inner       Classifier
	minInterval time.Duration
	now         func() time.Time

	mu       sync.Mutex
	inflight map[string]*dedupCall
	recent   map[string]dedupEntry
}

type dedupCall struct {
	done     chan struct{}
	decision Decision
	err      error
}

type dedupEntry struct {
	decision Decision
	at       time.Time
}

// WithDedup wraps a Classifier with request deduplication. A
// minInterval of zero dedups concurrent calls only.
func WithDedup(inner Classifier, minInterval time.Duration) *DedupClassifier {
	return &DedupClassifier{
		inner:       inner,
		minInterval: minInterval,
		now:         time.Now,
		inflight:    make(map[string]*dedupCall),
		recent:      make(map[string]dedupEntry),
	}
}

func (d *DedupClassifier) Classify(ctx context.Context, req Request) (Decision, error) {
	key := dedupKey(req)

	d.mu.Lock()
	if e, ok := d.recent[key]; ok && d.now().Sub(e.at) < d.minInterval {
		d.mu.Unlock()
		return e.decision, nil
	}
	if c, ok := d.inflight[key]; ok {
		d.mu.Unlock()
		select {
		case <-c.done:
			return c.decision, c.err
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		}
	}
	c := &dedupCall{done: make(chan struct{})}
	d.inflight[key] = c
	d.mu.Unlock()

	c.decision, c.err = d.inner.Classify(ctx, req)
	close(c.done)

	d.mu.Lock()
	delete(d.inflight, key)
	if c.err == nil && d.minInterval > 0 {
		d.recent[key] = dedupEntry{decision: c.decision, at: d.now()}
	}
	d.mu.Unlock()

	return c.decision, c.err
}

// dedupKey derives a content key from the fields that change the
// decision. Context sources and history are deliberately excluded:
// client retries resend the same response with freshly fetched context.
func dedupKey(req Request) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%t|%s",
		req.StudentResponse, req.Threshold, req.UseAI, req.ConditionType))
	return hex.EncodeToString(h[:])
}
