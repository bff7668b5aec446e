// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coursecraft/flowengine/ent/decisionevent"
	"github.com/coursecraft/flowengine/ent/llmrequestevent"
	"github.com/coursecraft/flowengine/ent/phaseevent"
	"github.com/coursecraft/flowengine/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescUserID is the schema descriptor for user_id field.
	decisioneventDescUserID := decisioneventFields[1].Descriptor()
	// decisionevent.DefaultUserID holds the default value on creation for the user_id field.
	decisionevent.DefaultUserID = decisioneventDescUserID.Default.(string)
	// decisioneventDescActivityID is the schema descriptor for activity_id field.
	decisioneventDescActivityID := decisioneventFields[2].Descriptor()
	// decisionevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	decisionevent.ActivityIDValidator = decisioneventDescActivityID.Validators[0].(func(string) error)
	// decisioneventDescNodeID is the schema descriptor for node_id field.
	decisioneventDescNodeID := decisioneventFields[3].Descriptor()
	// decisionevent.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	decisionevent.NodeIDValidator = decisioneventDescNodeID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	phaseeventMixin := schema.PhaseEvent{}.Mixin()
	phaseeventMixinFields0 := phaseeventMixin[0].Fields()
	_ = phaseeventMixinFields0
	phaseeventFields := schema.PhaseEvent{}.Fields()
	_ = phaseeventFields
	// phaseeventDescTimestamp is the schema descriptor for timestamp field.
	phaseeventDescTimestamp := phaseeventMixinFields0[1].Descriptor()
	// phaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	phaseevent.DefaultTimestamp = phaseeventDescTimestamp.Default.(func() time.Time)
	// phaseeventDescSessionID is the schema descriptor for session_id field.
	phaseeventDescSessionID := phaseeventFields[0].Descriptor()
	// phaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	phaseevent.SessionIDValidator = phaseeventDescSessionID.Validators[0].(func(string) error)
	// phaseeventDescActivityID is the schema descriptor for activity_id field.
	phaseeventDescActivityID := phaseeventFields[1].Descriptor()
	// phaseevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	phaseevent.ActivityIDValidator = phaseeventDescActivityID.Validators[0].(func(string) error)
	// phaseeventDescFromPhase is the schema descriptor for from_phase field.
	phaseeventDescFromPhase := phaseeventFields[2].Descriptor()
	// phaseevent.FromPhaseValidator is a validator for the "from_phase" field. It is called by the builders before save.
	phaseevent.FromPhaseValidator = phaseeventDescFromPhase.Validators[0].(func(string) error)
}
