// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (lec *LessonEventCreate) SetSequence(i int64) *LessonEventCreate {
	lec.mutation.SetSequence(i)
	return lec
}

// SetTimestamp sets the "timestamp" field.
func (lec *LessonEventCreate) SetTimestamp(t time.Time) *LessonEventCreate {
	lec.mutation.SetTimestamp(t)
	return lec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableTimestamp(t *time.Time) *LessonEventCreate {
	if t != nil {
		lec.SetTimestamp(*t)
	}
	return lec
}

// SetCategoryID sets the "category_id" field.
func (lec *LessonEventCreate) SetCategoryID(s string) *LessonEventCreate {
	lec.mutation.SetCategoryID(s)
	return lec
}

// SetLessonID sets the "lesson_id" field.
func (lec *LessonEventCreate) SetLessonID(s string) *LessonEventCreate {
	lec.mutation.SetLessonID(s)
	return lec
}

// SetScore sets the "score" field.
func (lec *LessonEventCreate) SetScore(i int) *LessonEventCreate {
	lec.mutation.SetScore(i)
	return lec
}

// SetFirstCompletion sets the "first_completion" field.
func (lec *LessonEventCreate) SetFirstCompletion(b bool) *LessonEventCreate {
	lec.mutation.SetFirstCompletion(b)
	return lec
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (lec *LessonEventCreate) SetIdempotencyKey(s string) *LessonEventCreate {
	lec.mutation.SetIdempotencyKey(s)
	return lec
}

// Mutation returns the LessonEventMutation object of the builder.
func (lec *LessonEventCreate) Mutation() *LessonEventMutation {
	return lec.mutation
}

// Save creates the LessonEvent in the database.
func (lec *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	lec.defaults()
	return withHooks(ctx, lec.sqlSave, lec.mutation, lec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lec *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := lec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lec *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := lec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lec *LessonEventCreate) ExecX(ctx context.Context) {
	if err := lec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lec *LessonEventCreate) defaults() {
	if _, ok := lec.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		lec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lec *LessonEventCreate) check() error {
	if _, ok := lec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonEvent.sequence"`)}
	}
	if _, ok := lec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	if _, ok := lec.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "LessonEvent.category_id"`)}
	}
	if v, ok := lec.mutation.CategoryID(); ok {
		if err := lessonevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.category_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonEvent.lesson_id"`)}
	}
	if v, ok := lec.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "LessonEvent.score"`)}
	}
	if _, ok := lec.mutation.FirstCompletion(); !ok {
		return &ValidationError{Name: "first_completion", err: errors.New(`ent: missing required field "LessonEvent.first_completion"`)}
	}
	if _, ok := lec.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "LessonEvent.idempotency_key"`)}
	}
	if v, ok := lec.mutation.IdempotencyKey(); ok {
		if err := lessonevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.idempotency_key": %w`, err)}
		}
	}
	return nil
}

func (lec *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
	if err := lec.check(); err != nil {
		return nil, err
	}
	_node, _spec := lec.createSpec()
	if err := sqlgraph.CreateNode(ctx, lec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lec.mutation.id = &_node.ID
	lec.mutation.done = true
	return _node, nil
}

func (lec *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: lec.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	if value, ok := lec.mutation.Sequence(); ok {
		_spec.SetField(lessonevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := lec.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := lec.mutation.CategoryID(); ok {
		_spec.SetField(lessonevent.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := lec.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := lec.mutation.Score(); ok {
		_spec.SetField(lessonevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := lec.mutation.FirstCompletion(); ok {
		_spec.SetField(lessonevent.FieldFirstCompletion, field.TypeBool, value)
		_node.FirstCompletion = value
	}
	if value, ok := lec.mutation.IdempotencyKey(); ok {
		_spec.SetField(lessonevent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	return _node, _spec
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
}

// Save creates the LessonEvent entities in the database.
func (lecb *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if lecb.err != nil {
		return nil, lecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lecb.builders))
	nodes := make([]*LessonEvent, len(lecb.builders))
	mutators := make([]Mutator, len(lecb.builders))
	for i := range lecb.builders {
		func(i int, root context.Context) {
			builder := lecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
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
					_, err = mutators[i+1].Mutate(root, lecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lecb *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := lecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lecb *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := lecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lecb *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := lecb.Exec(ctx); err != nil {
		panic(err)
	}
}
