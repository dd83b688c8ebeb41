// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/syncevent"
)

// SyncEventCreate is the builder for creating a SyncEvent entity.
type SyncEventCreate struct {
	config
	mutation *SyncEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SyncEventCreate) SetSequence(i int64) *SyncEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetTimestamp sets the "timestamp" field.
func (sec *SyncEventCreate) SetTimestamp(t time.Time) *SyncEventCreate {
	sec.mutation.SetTimestamp(t)
	return sec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (sec *SyncEventCreate) SetNillableTimestamp(t *time.Time) *SyncEventCreate {
	if t != nil {
		sec.SetTimestamp(*t)
	}
	return sec
}

// SetDirection sets the "direction" field.
func (sec *SyncEventCreate) SetDirection(s string) *SyncEventCreate {
	sec.mutation.SetDirection(s)
	return sec
}

// SetEndpoint sets the "endpoint" field.
func (sec *SyncEventCreate) SetEndpoint(s string) *SyncEventCreate {
	sec.mutation.SetEndpoint(s)
	return sec
}

// SetSuccess sets the "success" field.
func (sec *SyncEventCreate) SetSuccess(b bool) *SyncEventCreate {
	sec.mutation.SetSuccess(b)
	return sec
}

// SetErrorMessage sets the "error_message" field.
func (sec *SyncEventCreate) SetErrorMessage(s string) *SyncEventCreate {
	sec.mutation.SetErrorMessage(s)
	return sec
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (sec *SyncEventCreate) SetNillableErrorMessage(s *string) *SyncEventCreate {
	if s != nil {
		sec.SetErrorMessage(*s)
	}
	return sec
}

// Mutation returns the SyncEventMutation object of the builder.
func (sec *SyncEventCreate) Mutation() *SyncEventMutation {
	return sec.mutation
}

// Save creates the SyncEvent in the database.
func (sec *SyncEventCreate) Save(ctx context.Context) (*SyncEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SyncEventCreate) SaveX(ctx context.Context) *SyncEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SyncEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SyncEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SyncEventCreate) defaults() {
	if _, ok := sec.mutation.Timestamp(); !ok {
		v := syncevent.DefaultTimestamp()
		sec.mutation.SetTimestamp(v)
	}
	if _, ok := sec.mutation.ErrorMessage(); !ok {
		v := syncevent.DefaultErrorMessage
		sec.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SyncEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SyncEvent.sequence"`)}
	}
	if _, ok := sec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyncEvent.timestamp"`)}
	}
	if _, ok := sec.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "SyncEvent.direction"`)}
	}
	if v, ok := sec.mutation.Direction(); ok {
		if err := syncevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.direction": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "SyncEvent.endpoint"`)}
	}
	if v, ok := sec.mutation.Endpoint(); ok {
		if err := syncevent.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.endpoint": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "SyncEvent.success"`)}
	}
	if _, ok := sec.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "SyncEvent.error_message"`)}
	}
	return nil
}

func (sec *SyncEventCreate) sqlSave(ctx context.Context) (*SyncEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SyncEventCreate) createSpec() (*SyncEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(syncevent.Table, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(syncevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.Timestamp(); ok {
		_spec.SetField(syncevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := sec.mutation.Direction(); ok {
		_spec.SetField(syncevent.FieldDirection, field.TypeString, value)
		_node.Direction = value
	}
	if value, ok := sec.mutation.Endpoint(); ok {
		_spec.SetField(syncevent.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := sec.mutation.Success(); ok {
		_spec.SetField(syncevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := sec.mutation.ErrorMessage(); ok {
		_spec.SetField(syncevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// SyncEventCreateBulk is the builder for creating many SyncEvent entities in bulk.
type SyncEventCreateBulk struct {
	config
	err      error
	builders []*SyncEventCreate
}

// Save creates the SyncEvent entities in the database.
func (secb *SyncEventCreateBulk) Save(ctx context.Context) ([]*SyncEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SyncEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SyncEventCreateBulk) SaveX(ctx context.Context) []*SyncEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SyncEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SyncEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
