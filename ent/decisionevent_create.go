// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coursecraft/flowengine/ent/decisionevent"
)

// DecisionEventCreate is the builder for creating a DecisionEvent entity.
type DecisionEventCreate struct {
	config
	mutation *DecisionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DecisionEventCreate) SetSequence(v int64) *DecisionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionEventCreate) SetTimestamp(v time.Time) *DecisionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableTimestamp(v *time.Time) *DecisionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDecisionID sets the "decision_id" field.
func (_c *DecisionEventCreate) SetDecisionID(v string) *DecisionEventCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DecisionEventCreate) SetUserID(v string) *DecisionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableUserID(v *string) *DecisionEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *DecisionEventCreate) SetActivityID(v string) *DecisionEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *DecisionEventCreate) SetNodeID(v string) *DecisionEventCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *DecisionEventCreate) SetResponse(v string) *DecisionEventCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetShouldTakeMasteryPath sets the "should_take_mastery_path" field.
func (_c *DecisionEventCreate) SetShouldTakeMasteryPath(v bool) *DecisionEventCreate {
	_c.mutation.SetShouldTakeMasteryPath(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DecisionEventCreate) SetConfidence(v float64) *DecisionEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *DecisionEventCreate) SetReasoning(v string) *DecisionEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetThresholdUsed sets the "threshold_used" field.
func (_c *DecisionEventCreate) SetThresholdUsed(v int) *DecisionEventCreate {
	_c.mutation.SetThresholdUsed(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *DecisionEventCreate) SetMethod(v string) *DecisionEventCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_c *DecisionEventCreate) Mutation() *DecisionEventMutation {
	return _c.mutation
}

// Save creates the DecisionEvent in the database.
func (_c *DecisionEventCreate) Save(ctx context.Context) (*DecisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionEventCreate) SaveX(ctx context.Context) *DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decisionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := decisionevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DecisionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DecisionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "DecisionEvent.decision_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DecisionEvent.user_id"`)}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "DecisionEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := decisionevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "DecisionEvent.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := decisionevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "DecisionEvent.response"`)}
	}
	if _, ok := _c.mutation.ShouldTakeMasteryPath(); !ok {
		return &ValidationError{Name: "should_take_mastery_path", err: errors.New(`ent: missing required field "DecisionEvent.should_take_mastery_path"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DecisionEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "DecisionEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.ThresholdUsed(); !ok {
		return &ValidationError{Name: "threshold_used", err: errors.New(`ent: missing required field "DecisionEvent.threshold_used"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "DecisionEvent.method"`)}
	}
	return nil
}

func (_c *DecisionEventCreate) sqlSave(ctx context.Context) (*DecisionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionEventCreate) createSpec() (*DecisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionevent.Table, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(decisionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decisionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(decisionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(decisionevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(decisionevent.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(decisionevent.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ShouldTakeMasteryPath(); ok {
		_spec.SetField(decisionevent.FieldShouldTakeMasteryPath, field.TypeBool, value)
		_node.ShouldTakeMasteryPath = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(decisionevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(decisionevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.ThresholdUsed(); ok {
		_spec.SetField(decisionevent.FieldThresholdUsed, field.TypeInt, value)
		_node.ThresholdUsed = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(decisionevent.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	return _node, _spec
}

// DecisionEventCreateBulk is the builder for creating many DecisionEvent entities in bulk.
type DecisionEventCreateBulk struct {
	config
	err      error
	builders []*DecisionEventCreate
}

// Save creates the DecisionEvent entities in the database.
func (_c *DecisionEventCreateBulk) Save(ctx context.Context) ([]*DecisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) SaveX(ctx context.Context) []*DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
