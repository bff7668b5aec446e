// Code generated by ent, DO NOT EDIT.

package phaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the phaseevent type in the database.
	Label = "phase_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldFromPhase holds the string denoting the from_phase field in the database.
	FieldFromPhase = "from_phase"
	// FieldToPhase holds the string denoting the to_phase field in the database.
	FieldToPhase = "to_phase"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAdvanced holds the string denoting the advanced field in the database.
	FieldAdvanced = "advanced"
	// Table holds the table name of the phaseevent in the database.
	Table = "phase_events"
)

// Columns holds all SQL columns for phaseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldActivityID,
	FieldFromPhase,
	FieldToPhase,
	FieldScore,
	FieldAdvanced,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	ActivityIDValidator func(string) error
	// FromPhaseValidator is a validator for the "from_phase" field. It is called by the builders before save.
	FromPhaseValidator func(string) error
)

// OrderOption defines the ordering options for the PhaseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByActivityID orders the results by the activity_id field.
func ByActivityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityID, opts...).ToFunc()
}

// ByFromPhase orders the results by the from_phase field.
func ByFromPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPhase, opts...).ToFunc()
}

// ByToPhase orders the results by the to_phase field.
func ByToPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToPhase, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAdvanced orders the results by the advanced field.
func ByAdvanced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvanced, opts...).ToFunc()
}
