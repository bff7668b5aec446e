// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "should_take_mastery_path", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "threshold_used", Type: field.TypeInt},
		{Name: "method", Type: field.TypeString},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[5]},
			},
			{
				Name:    "decisionevent_node_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[6]},
			},
			{
				Name:    "decisionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PhaseEventsColumns holds the columns for the "phase_events" table.
	PhaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "from_phase", Type: field.TypeString},
		{Name: "to_phase", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "advanced", Type: field.TypeBool},
	}
	// PhaseEventsTable holds the schema information for the "phase_events" table.
	PhaseEventsTable = &schema.Table{
		Name:       "phase_events",
		Columns:    PhaseEventsColumns,
		PrimaryKey: []*schema.Column{PhaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "phaseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[1]},
			},
			{
				Name:    "phaseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[2]},
			},
			{
				Name:    "phaseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[3]},
			},
			{
				Name:    "phaseevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DecisionEventsTable,
		LlmRequestEventsTable,
		PhaseEventsTable,
	}
)

func init() {
}
