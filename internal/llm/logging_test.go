package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/coursecraft/flowengine/internal/store"
)

type captureRepo struct {
	store.EventRepo
	events  []store.LLMRequestEventData
	failErr error
}

func (r *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{System: "sys"}); err != nil {
		t.Fatal(err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	evt := repo.events[0]
	if evt.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q, want quiz-gen", evt.Purpose)
	}
	if !evt.Success || evt.InputTokens != 12 || evt.OutputTokens != 3 {
		t.Errorf("event mismatch: %+v", evt)
	}
	if evt.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", evt.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error to pass through")
	}
	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	evt := repo.events[0]
	if evt.Success || evt.ErrorMessage == "" {
		t.Errorf("failure event mismatch: %+v", evt)
	}
}

func TestLogging_PersistenceFailureDoesNotFailRequest(t *testing.T) {
	repo := &captureRepo{failErr: errors.New("disk full")}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("audit failure leaked to caller: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
