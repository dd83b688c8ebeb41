// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/wordstat"
)

// WordStatCreate is the builder for creating a WordStat entity.
type WordStatCreate struct {
	config
	mutation *WordStatMutation
	hooks    []Hook
}

// SetWordID sets the "word_id" field.
func (wsc *WordStatCreate) SetWordID(s string) *WordStatCreate {
	wsc.mutation.SetWordID(s)
	return wsc
}

// SetStatus sets the "status" field.
func (wsc *WordStatCreate) SetStatus(s string) *WordStatCreate {
	wsc.mutation.SetStatus(s)
	return wsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wsc *WordStatCreate) SetNillableStatus(s *string) *WordStatCreate {
	if s != nil {
		wsc.SetStatus(*s)
	}
	return wsc
}

// SetViewCount sets the "view_count" field.
func (wsc *WordStatCreate) SetViewCount(i int) *WordStatCreate {
	wsc.mutation.SetViewCount(i)
	return wsc
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (wsc *WordStatCreate) SetNillableViewCount(i *int) *WordStatCreate {
	if i != nil {
		wsc.SetViewCount(*i)
	}
	return wsc
}

// SetCorrectCount sets the "correct_count" field.
func (wsc *WordStatCreate) SetCorrectCount(i int) *WordStatCreate {
	wsc.mutation.SetCorrectCount(i)
	return wsc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (wsc *WordStatCreate) SetNillableCorrectCount(i *int) *WordStatCreate {
	if i != nil {
		wsc.SetCorrectCount(*i)
	}
	return wsc
}

// SetIncorrectCount sets the "incorrect_count" field.
func (wsc *WordStatCreate) SetIncorrectCount(i int) *WordStatCreate {
	wsc.mutation.SetIncorrectCount(i)
	return wsc
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (wsc *WordStatCreate) SetNillableIncorrectCount(i *int) *WordStatCreate {
	if i != nil {
		wsc.SetIncorrectCount(*i)
	}
	return wsc
}

// SetLastViewed sets the "last_viewed" field.
func (wsc *WordStatCreate) SetLastViewed(t time.Time) *WordStatCreate {
	wsc.mutation.SetLastViewed(t)
	return wsc
}

// SetNillableLastViewed sets the "last_viewed" field if the given value is not nil.
func (wsc *WordStatCreate) SetNillableLastViewed(t *time.Time) *WordStatCreate {
	if t != nil {
		wsc.SetLastViewed(*t)
	}
	return wsc
}

// Mutation returns the WordStatMutation object of the builder.
func (wsc *WordStatCreate) Mutation() *WordStatMutation {
	return wsc.mutation
}

// Save creates the WordStat in the database.
func (wsc *WordStatCreate) Save(ctx context.Context) (*WordStat, error) {
	wsc.defaults()
	return withHooks(ctx, wsc.sqlSave, wsc.mutation, wsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wsc *WordStatCreate) SaveX(ctx context.Context) *WordStat {
	v, err := wsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wsc *WordStatCreate) Exec(ctx context.Context) error {
	_, err := wsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsc *WordStatCreate) ExecX(ctx context.Context) {
	if err := wsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wsc *WordStatCreate) defaults() {
	if _, ok := wsc.mutation.Status(); !ok {
		v := wordstat.DefaultStatus
		wsc.mutation.SetStatus(v)
	}
	if _, ok := wsc.mutation.ViewCount(); !ok {
		v := wordstat.DefaultViewCount
		wsc.mutation.SetViewCount(v)
	}
	if _, ok := wsc.mutation.CorrectCount(); !ok {
		v := wordstat.DefaultCorrectCount
		wsc.mutation.SetCorrectCount(v)
	}
	if _, ok := wsc.mutation.IncorrectCount(); !ok {
		v := wordstat.DefaultIncorrectCount
		wsc.mutation.SetIncorrectCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsc *WordStatCreate) check() error {
	if _, ok := wsc.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "WordStat.word_id"`)}
	}
	if v, ok := wsc.mutation.WordID(); ok {
		if err := wordstat.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "WordStat.word_id": %w`, err)}
		}
	}
	if _, ok := wsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WordStat.status"`)}
	}
	if _, ok := wsc.mutation.ViewCount(); !ok {
		return &ValidationError{Name: "view_count", err: errors.New(`ent: missing required field "WordStat.view_count"`)}
	}
	if v, ok := wsc.mutation.ViewCount(); ok {
		if err := wordstat.ViewCountValidator(v); err != nil {
			return &ValidationError{Name: "view_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.view_count": %w`, err)}
		}
	}
	if _, ok := wsc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "WordStat.correct_count"`)}
	}
	if v, ok := wsc.mutation.CorrectCount(); ok {
		if err := wordstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.correct_count": %w`, err)}
		}
	}
	if _, ok := wsc.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "WordStat.incorrect_count"`)}
	}
	if v, ok := wsc.mutation.IncorrectCount(); ok {
		if err := wordstat.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (wsc *WordStatCreate) sqlSave(ctx context.Context) (*WordStat, error) {
	if err := wsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	wsc.mutation.id = &_node.ID
	wsc.mutation.done = true
	return _node, nil
}

func (wsc *WordStatCreate) createSpec() (*WordStat, *sqlgraph.CreateSpec) {
	var (
		_node = &WordStat{config: wsc.config}
		_spec = sqlgraph.NewCreateSpec(wordstat.Table, sqlgraph.NewFieldSpec(wordstat.FieldID, field.TypeInt))
	)
	if value, ok := wsc.mutation.WordID(); ok {
		_spec.SetField(wordstat.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := wsc.mutation.Status(); ok {
		_spec.SetField(wordstat.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := wsc.mutation.ViewCount(); ok {
		_spec.SetField(wordstat.FieldViewCount, field.TypeInt, value)
		_node.ViewCount = value
	}
	if value, ok := wsc.mutation.CorrectCount(); ok {
		_spec.SetField(wordstat.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := wsc.mutation.IncorrectCount(); ok {
		_spec.SetField(wordstat.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := wsc.mutation.LastViewed(); ok {
		_spec.SetField(wordstat.FieldLastViewed, field.TypeTime, value)
		_node.LastViewed = &value
	}
	return _node, _spec
}

// WordStatCreateBulk is the builder for creating many WordStat entities in bulk.
type WordStatCreateBulk struct {
	config
	err      error
	builders []*WordStatCreate
}

// Save creates the WordStat entities in the database.
func (wscb *WordStatCreateBulk) Save(ctx context.Context) ([]*WordStat, error) {
	if wscb.err != nil {
		return nil, wscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wscb.builders))
	nodes := make([]*WordStat, len(wscb.builders))
	mutators := make([]Mutator, len(wscb.builders))
	for i := range wscb.builders {
		func(i int, root context.Context) {
			builder := wscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordStatMutation)
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
					_, err = mutators[i+1].Mutate(root, wscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wscb *WordStatCreateBulk) SaveX(ctx context.Context) []*WordStat {
	v, err := wscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wscb *WordStatCreateBulk) Exec(ctx context.Context) error {
	_, err := wscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wscb *WordStatCreateBulk) ExecX(ctx context.Context) {
	if err := wscb.Exec(ctx); err != nil {
		panic(err)
	}
}
