// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/coursecraft/flowengine/ent/phaseevent"
)

// PhaseEvent is the model entity for the PhaseEvent schema.
type PhaseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID string `json:"activity_id,omitempty"`
	// FromPhase holds the value of the "from_phase" field.
	FromPhase string `json:"from_phase,omitempty"`
	// Equal to from_phase when the gate held
	ToPhase string `json:"to_phase,omitempty"`
	// Cumulative mastery score at evaluation time
	Score int `json:"score,omitempty"`
	// Advanced holds the value of the "advanced" field.
	Advanced     bool `json:"advanced,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhaseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phaseevent.FieldAdvanced:
			values[i] = new(sql.NullBool)
		case phaseevent.FieldID, phaseevent.FieldSequence, phaseevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case phaseevent.FieldSessionID, phaseevent.FieldActivityID, phaseevent.FieldFromPhase, phaseevent.FieldToPhase:
			values[i] = new(sql.NullString)
		case phaseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhaseEvent fields.
func (_m *PhaseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phaseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case phaseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case phaseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case phaseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case phaseevent.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = value.String
			}
		case phaseevent.FieldFromPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_phase", values[i])
			} else if value.Valid {
				_m.FromPhase = value.String
			}
		case phaseevent.FieldToPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_phase", values[i])
			} else if value.Valid {
				_m.ToPhase = value.String
			}
		case phaseevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case phaseevent.FieldAdvanced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field advanced", values[i])
			} else if value.Valid {
				_m.Advanced = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhaseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PhaseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PhaseEvent.
// Note that you need to call PhaseEvent.Unwrap() before calling this method if this PhaseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhaseEvent) Update() *PhaseEventUpdateOne {
	return NewPhaseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhaseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhaseEvent) Unwrap() *PhaseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhaseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhaseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PhaseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(_m.ActivityID)
	builder.WriteString(", ")
	builder.WriteString("from_phase=")
	builder.WriteString(_m.FromPhase)
	builder.WriteString(", ")
	builder.WriteString("to_phase=")
	builder.WriteString(_m.ToPhase)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("advanced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Advanced))
	builder.WriteByte(')')
	return builder.String()
}

// PhaseEvents is a parsable slice of PhaseEvent.
type PhaseEvents []*PhaseEvent
