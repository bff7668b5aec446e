// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coursecraft/flowengine/ent/decisionevent"
	"github.com/coursecraft/flowengine/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DecisionEventUpdate) SetUserID(v string) *DecisionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableUserID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *DecisionEventUpdate) SetActivityID(v string) *DecisionEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableActivityID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *DecisionEventUpdate) SetNodeID(v string) *DecisionEventUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableNodeID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *DecisionEventUpdate) SetResponse(v string) *DecisionEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableResponse(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetShouldTakeMasteryPath sets the "should_take_mastery_path" field.
func (_u *DecisionEventUpdate) SetShouldTakeMasteryPath(v bool) *DecisionEventUpdate {
	_u.mutation.SetShouldTakeMasteryPath(v)
	return _u
}

// SetNillableShouldTakeMasteryPath sets the "should_take_mastery_path" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableShouldTakeMasteryPath(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetShouldTakeMasteryPath(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DecisionEventUpdate) SetConfidence(v float64) *DecisionEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableConfidence(v *float64) *DecisionEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DecisionEventUpdate) AddConfidence(v float64) *DecisionEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionEventUpdate) SetReasoning(v string) *DecisionEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableReasoning(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetThresholdUsed sets the "threshold_used" field.
func (_u *DecisionEventUpdate) SetThresholdUsed(v int) *DecisionEventUpdate {
	_u.mutation.ResetThresholdUsed()
	_u.mutation.SetThresholdUsed(v)
	return _u
}

// SetNillableThresholdUsed sets the "threshold_used" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableThresholdUsed(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetThresholdUsed(*v)
	}
	return _u
}

// AddThresholdUsed adds value to the "threshold_used" field.
func (_u *DecisionEventUpdate) AddThresholdUsed(v int) *DecisionEventUpdate {
	_u.mutation.AddThresholdUsed(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *DecisionEventUpdate) SetMethod(v string) *DecisionEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableMethod(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := decisionevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := decisionevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(decisionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(decisionevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(decisionevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(decisionevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShouldTakeMasteryPath(); ok {
		_spec.SetField(decisionevent.FieldShouldTakeMasteryPath, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(decisionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(decisionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decisionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThresholdUsed(); ok {
		_spec.SetField(decisionevent.FieldThresholdUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThresholdUsed(); ok {
		_spec.AddField(decisionevent.FieldThresholdUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(decisionevent.FieldMethod, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *DecisionEventUpdateOne) SetUserID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableUserID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *DecisionEventUpdateOne) SetActivityID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableActivityID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *DecisionEventUpdateOne) SetNodeID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableNodeID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *DecisionEventUpdateOne) SetResponse(v string) *DecisionEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableResponse(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetShouldTakeMasteryPath sets the "should_take_mastery_path" field.
func (_u *DecisionEventUpdateOne) SetShouldTakeMasteryPath(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetShouldTakeMasteryPath(v)
	return _u
}

// SetNillableShouldTakeMasteryPath sets the "should_take_mastery_path" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableShouldTakeMasteryPath(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetShouldTakeMasteryPath(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DecisionEventUpdateOne) SetConfidence(v float64) *DecisionEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableConfidence(v *float64) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DecisionEventUpdateOne) AddConfidence(v float64) *DecisionEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionEventUpdateOne) SetReasoning(v string) *DecisionEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableReasoning(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetThresholdUsed sets the "threshold_used" field.
func (_u *DecisionEventUpdateOne) SetThresholdUsed(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetThresholdUsed()
	_u.mutation.SetThresholdUsed(v)
	return _u
}

// SetNillableThresholdUsed sets the "threshold_used" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableThresholdUsed(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetThresholdUsed(*v)
	}
	return _u
}

// AddThresholdUsed adds value to the "threshold_used" field.
func (_u *DecisionEventUpdateOne) AddThresholdUsed(v int) *DecisionEventUpdateOne {
	_u.mutation.AddThresholdUsed(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *DecisionEventUpdateOne) SetMethod(v string) *DecisionEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableMethod(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := decisionevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := decisionevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(decisionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(decisionevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(decisionevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(decisionevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShouldTakeMasteryPath(); ok {
		_spec.SetField(decisionevent.FieldShouldTakeMasteryPath, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(decisionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(decisionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decisionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThresholdUsed(); ok {
		_spec.SetField(decisionevent.FieldThresholdUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThresholdUsed(); ok {
		_spec.AddField(decisionevent.FieldThresholdUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(decisionevent.FieldMethod, field.TypeString, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
