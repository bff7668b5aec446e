package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseEvent records a phase transition (or a blocked attempt) within
// a chat-style activity session.
type PhaseEvent struct {
	ent.Schema
}

func (PhaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PhaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("activity_id").
			NotEmpty(),
		field.String("from_phase").
			NotEmpty(),
		field.String("to_phase").
			Comment("Equal to from_phase when the gate held"),
		field.Int("score").
			Comment("Cumulative mastery score at evaluation time"),
		field.Bool("advanced"),
	}
}

func (PhaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("activity_id"),
	}
}
