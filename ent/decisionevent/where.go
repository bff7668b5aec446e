// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/coursecraft/flowengine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldUserID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldActivityID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldNodeID, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldResponse, v))
}

// ShouldTakeMasteryPath applies equality check predicate on the "should_take_mastery_path" field. It's identical to ShouldTakeMasteryPathEQ.
func ShouldTakeMasteryPath(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldShouldTakeMasteryPath, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReasoning, v))
}

// ThresholdUsed applies equality check predicate on the "threshold_used" field. It's identical to ThresholdUsedEQ.
func ThresholdUsed(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldThresholdUsed, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMethod, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldDecisionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldActivityID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldNodeID, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldResponse, v))
}

// ShouldTakeMasteryPathEQ applies the EQ predicate on the "should_take_mastery_path" field.
func ShouldTakeMasteryPathEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldShouldTakeMasteryPath, v))
}

// ShouldTakeMasteryPathNEQ applies the NEQ predicate on the "should_take_mastery_path" field.
func ShouldTakeMasteryPathNEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldShouldTakeMasteryPath, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// ThresholdUsedEQ applies the EQ predicate on the "threshold_used" field.
func ThresholdUsedEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldThresholdUsed, v))
}

// ThresholdUsedNEQ applies the NEQ predicate on the "threshold_used" field.
func ThresholdUsedNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldThresholdUsed, v))
}

// ThresholdUsedIn applies the In predicate on the "threshold_used" field.
func ThresholdUsedIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldThresholdUsed, vs...))
}

// ThresholdUsedNotIn applies the NotIn predicate on the "threshold_used" field.
func ThresholdUsedNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldThresholdUsed, vs...))
}

// ThresholdUsedGT applies the GT predicate on the "threshold_used" field.
func ThresholdUsedGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldThresholdUsed, v))
}

// ThresholdUsedGTE applies the GTE predicate on the "threshold_used" field.
func ThresholdUsedGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldThresholdUsed, v))
}

// ThresholdUsedLT applies the LT predicate on the "threshold_used" field.
func ThresholdUsedLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldThresholdUsed, v))
}

// ThresholdUsedLTE applies the LTE predicate on the "threshold_used" field.
func ThresholdUsedLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldThresholdUsed, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldMethod, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}
