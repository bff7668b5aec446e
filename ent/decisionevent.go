// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/coursecraft/flowengine/ent/decisionevent"
)

// DecisionEvent is the model entity for the DecisionEvent schema.
type DecisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at classification time
	DecisionID string `json:"decision_id,omitempty"`
	// Learner identifier, empty for anonymous sessions
	UserID string `json:"user_id,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID string `json:"activity_id,omitempty"`
	// The condition node the decision was made at
	NodeID string `json:"node_id,omitempty"`
	// The learner response that was classified
	Response string `json:"response,omitempty"`
	// ShouldTakeMasteryPath holds the value of the "should_take_mastery_path" field.
	ShouldTakeMasteryPath bool `json:"should_take_mastery_path,omitempty"`
	// Classifier confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Human-readable rationale, never empty
	Reasoning string `json:"reasoning,omitempty"`
	// Mastery threshold the decision was gated on
	ThresholdUsed int `json:"threshold_used,omitempty"`
	// ai, fallback, or simple
	Method       string `json:"method,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldShouldTakeMasteryPath:
			values[i] = new(sql.NullBool)
		case decisionevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case decisionevent.FieldID, decisionevent.FieldSequence, decisionevent.FieldThresholdUsed:
			values[i] = new(sql.NullInt64)
		case decisionevent.FieldDecisionID, decisionevent.FieldUserID, decisionevent.FieldActivityID, decisionevent.FieldNodeID, decisionevent.FieldResponse, decisionevent.FieldReasoning, decisionevent.FieldMethod:
			values[i] = new(sql.NullString)
		case decisionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionEvent fields.
func (_m *DecisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decisionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case decisionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case decisionevent.FieldDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_id", values[i])
			} else if value.Valid {
				_m.DecisionID = value.String
			}
		case decisionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case decisionevent.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = value.String
			}
		case decisionevent.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case decisionevent.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case decisionevent.FieldShouldTakeMasteryPath:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_take_mastery_path", values[i])
			} else if value.Valid {
				_m.ShouldTakeMasteryPath = value.Bool
			}
		case decisionevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case decisionevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case decisionevent.FieldThresholdUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold_used", values[i])
			} else if value.Valid {
				_m.ThresholdUsed = int(value.Int64)
			}
		case decisionevent.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionEvent.
// Note that you need to call DecisionEvent.Unwrap() before calling this method if this DecisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionEvent) Update() *DecisionEventUpdateOne {
	return NewDecisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionEvent) Unwrap() *DecisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("decision_id=")
	builder.WriteString(_m.DecisionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(_m.ActivityID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	builder.WriteString("should_take_mastery_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldTakeMasteryPath))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("threshold_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThresholdUsed))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteByte(')')
	return builder.String()
}

// DecisionEvents is a parsable slice of DecisionEvent.
type DecisionEvents []*DecisionEvent
