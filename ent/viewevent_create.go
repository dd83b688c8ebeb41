// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// ViewEventCreate is the builder for creating a ViewEvent entity.
type ViewEventCreate struct {
	config
	mutation *ViewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (vec *ViewEventCreate) SetSequence(i int64) *ViewEventCreate {
	vec.mutation.SetSequence(i)
	return vec
}

// SetTimestamp sets the "timestamp" field.
func (vec *ViewEventCreate) SetTimestamp(t time.Time) *ViewEventCreate {
	vec.mutation.SetTimestamp(t)
	return vec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (vec *ViewEventCreate) SetNillableTimestamp(t *time.Time) *ViewEventCreate {
	if t != nil {
		vec.SetTimestamp(*t)
	}
	return vec
}

// SetWordID sets the "word_id" field.
func (vec *ViewEventCreate) SetWordID(s string) *ViewEventCreate {
	vec.mutation.SetWordID(s)
	return vec
}

// Mutation returns the ViewEventMutation object of the builder.
func (vec *ViewEventCreate) Mutation() *ViewEventMutation {
	return vec.mutation
}

// Save creates the ViewEvent in the database.
func (vec *ViewEventCreate) Save(ctx context.Context) (*ViewEvent, error) {
	vec.defaults()
	return withHooks(ctx, vec.sqlSave, vec.mutation, vec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vec *ViewEventCreate) SaveX(ctx context.Context) *ViewEvent {
	v, err := vec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vec *ViewEventCreate) Exec(ctx context.Context) error {
	_, err := vec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vec *ViewEventCreate) ExecX(ctx context.Context) {
	if err := vec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vec *ViewEventCreate) defaults() {
	if _, ok := vec.mutation.Timestamp(); !ok {
		v := viewevent.DefaultTimestamp()
		vec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vec *ViewEventCreate) check() error {
	if _, ok := vec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ViewEvent.sequence"`)}
	}
	if _, ok := vec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ViewEvent.timestamp"`)}
	}
	if _, ok := vec.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "ViewEvent.word_id"`)}
	}
	if v, ok := vec.mutation.WordID(); ok {
		if err := viewevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.word_id": %w`, err)}
		}
	}
	return nil
}

func (vec *ViewEventCreate) sqlSave(ctx context.Context) (*ViewEvent, error) {
	if err := vec.check(); err != nil {
		return nil, err
	}
	_node, _spec := vec.createSpec()
	if err := sqlgraph.CreateNode(ctx, vec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	vec.mutation.id = &_node.ID
	vec.mutation.done = true
	return _node, nil
}

func (vec *ViewEventCreate) createSpec() (*ViewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ViewEvent{config: vec.config}
		_spec = sqlgraph.NewCreateSpec(viewevent.Table, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	)
	if value, ok := vec.mutation.Sequence(); ok {
		_spec.SetField(viewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := vec.mutation.Timestamp(); ok {
		_spec.SetField(viewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := vec.mutation.WordID(); ok {
		_spec.SetField(viewevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	return _node, _spec
}

// ViewEventCreateBulk is the builder for creating many ViewEvent entities in bulk.
type ViewEventCreateBulk struct {
	config
	err      error
	builders []*ViewEventCreate
}

// Save creates the ViewEvent entities in the database.
func (vecb *ViewEventCreateBulk) Save(ctx context.Context) ([]*ViewEvent, error) {
	if vecb.err != nil {
		return nil, vecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vecb.builders))
	nodes := make([]*ViewEvent, len(vecb.builders))
	mutators := make([]Mutator, len(vecb.builders))
	for i := range vecb.builders {
		func(i int, root context.Context) {
			builder := vecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViewEventMutation)
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
					_, err = mutators[i+1].Mutate(root, vecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vecb *ViewEventCreateBulk) SaveX(ctx context.Context) []*ViewEvent {
	v, err := vecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vecb *ViewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := vecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vecb *ViewEventCreateBulk) ExecX(ctx context.Context) {
	if err := vecb.Exec(ctx); err != nil {
		panic(err)
	}
}
