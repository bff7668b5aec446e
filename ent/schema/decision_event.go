package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records one branching decision at a condition node.
// Created once per learner interaction, persisted immediately, never
// mutated — the audit trail for later analysis of path choices.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("decision_id").
			Unique().
			Immutable().
			Comment("UUID assigned at classification time"),
		field.String("user_id").
			Default("").
			Comment("Learner identifier, empty for anonymous sessions"),
		field.String("activity_id").
			NotEmpty(),
		field.String("node_id").
			NotEmpty().
			Comment("The condition node the decision was made at"),
		field.Text("response").
			Comment("The learner response that was classified"),
		field.Bool("should_take_mastery_path"),
		field.Float("confidence").
			Comment("Classifier confidence in [0,1]"),
		field.Text("reasoning").
			Comment("Human-readable rationale, never empty"),
		field.Int("threshold_used").
			Comment("Mastery threshold the decision was gated on"),
		field.String("method").
			Comment("ai, fallback, or simple"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id"),
		index.Fields("node_id"),
		index.Fields("user_id"),
	}
}
