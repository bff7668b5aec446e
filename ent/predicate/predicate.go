// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PhaseEvent is the predicate function for phaseevent builders.
type PhaseEvent func(*sql.Selector)
