package store

import (
	"context"
	"fmt"

	"github.com/coursecraft/flowengine/ent"
	"github.com/coursecraft/flowengine/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	query := r.client.LLMRequestEvent.Query()

	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	query = query.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestRecord, len(events))
	for i, e := range events {
		out[i] = llmRecordFromEnt(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := llmRecordFromEnt(e)
	return &rec, nil
}

func llmRecordFromEnt(e *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
