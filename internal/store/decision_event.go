package store

import (
	"context"
	"fmt"

	"github.com/coursecraft/flowengine/ent"
	"github.com/coursecraft/flowengine/ent/decisionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendDecision(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetDecisionID(data.DecisionID).
		SetUserID(data.UserID).
		SetActivityID(data.ActivityID).
		SetNodeID(data.NodeID).
		SetResponse(data.Response).
		SetShouldTakeMasteryPath(data.ShouldTakeMasteryPath).
		SetConfidence(data.Confidence).
		SetReasoning(data.Reasoning).
		SetThresholdUsed(data.ThresholdUsed).
		SetMethod(data.Method).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDecisions(ctx context.Context, q DecisionQuery) ([]DecisionRecord, error) {
	query := r.client.DecisionEvent.Query()

	if q.ActivityID != "" {
		query = query.Where(decisionevent.ActivityID(q.ActivityID))
	}
	if q.NodeID != "" {
		query = query.Where(decisionevent.NodeID(q.NodeID))
	}
	if q.UserID != "" {
		query = query.Where(decisionevent.UserID(q.UserID))
	}
	if q.After > 0 {
		query = query.Where(decisionevent.SequenceGT(q.After))
	}
	if !q.From.IsZero() {
		query = query.Where(decisionevent.TimestampGTE(q.From))
	}
	if !q.To.IsZero() {
		query = query.Where(decisionevent.TimestampLTE(q.To))
	}

	query = query.Order(ent.Desc(decisionevent.FieldSequence))
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decision events: %w", err)
	}

	out := make([]DecisionRecord, len(events))
	for i, e := range events {
		out[i] = decisionFromEnt(e)
	}
	return out, nil
}

func (r *eventRepo) GetDecision(ctx context.Context, decisionID string) (*DecisionRecord, error) {
	e, err := r.client.DecisionEvent.Query().
		Where(decisionevent.DecisionID(decisionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get decision event: %w", err)
	}
	rec := decisionFromEnt(e)
	return &rec, nil
}

func decisionFromEnt(e *ent.DecisionEvent) DecisionRecord {
	return DecisionRecord{
		ID:                    e.ID,
		Sequence:              e.Sequence,
		Timestamp:             e.Timestamp,
		DecisionID:            e.DecisionID,
		UserID:                e.UserID,
		ActivityID:            e.ActivityID,
		NodeID:                e.NodeID,
		Response:              e.Response,
		ShouldTakeMasteryPath: e.ShouldTakeMasteryPath,
		Confidence:            e.Confidence,
		Reasoning:             e.Reasoning,
		ThresholdUsed:         e.ThresholdUsed,
		Method:                e.Method,
	}
}
