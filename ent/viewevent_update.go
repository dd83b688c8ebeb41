// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/predicate"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// ViewEventUpdate is the builder for updating ViewEvent entities.
type ViewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViewEventMutation
}

// Where appends a list predicates to the ViewEventUpdate builder.
func (veu *ViewEventUpdate) Where(ps ...predicate.ViewEvent) *ViewEventUpdate {
	veu.mutation.Where(ps...)
	return veu
}

// SetWordID sets the "word_id" field.
func (veu *ViewEventUpdate) SetWordID(s string) *ViewEventUpdate {
	veu.mutation.SetWordID(s)
	return veu
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (veu *ViewEventUpdate) SetNillableWordID(s *string) *ViewEventUpdate {
	if s != nil {
		veu.SetWordID(*s)
	}
	return veu
}

// Mutation returns the ViewEventMutation object of the builder.
func (veu *ViewEventUpdate) Mutation() *ViewEventMutation {
	return veu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (veu *ViewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, veu.sqlSave, veu.mutation, veu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (veu *ViewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := veu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (veu *ViewEventUpdate) Exec(ctx context.Context) error {
	_, err := veu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (veu *ViewEventUpdate) ExecX(ctx context.Context) {
	if err := veu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (veu *ViewEventUpdate) check() error {
	if v, ok := veu.mutation.WordID(); ok {
		if err := viewevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.word_id": %w`, err)}
		}
	}
	return nil
}

func (veu *ViewEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := veu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewevent.Table, viewevent.Columns, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	if ps := veu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := veu.mutation.WordID(); ok {
		_spec.SetField(viewevent.FieldWordID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, veu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	veu.mutation.done = true
	return n, nil
}

// ViewEventUpdateOne is the builder for updating a single ViewEvent entity.
type ViewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViewEventMutation
}

// SetWordID sets the "word_id" field.
func (veuo *ViewEventUpdateOne) SetWordID(s string) *ViewEventUpdateOne {
	veuo.mutation.SetWordID(s)
	return veuo
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (veuo *ViewEventUpdateOne) SetNillableWordID(s *string) *ViewEventUpdateOne {
	if s != nil {
		veuo.SetWordID(*s)
	}
	return veuo
}

// Mutation returns the ViewEventMutation object of the builder.
func (veuo *ViewEventUpdateOne) Mutation() *ViewEventMutation {
	return veuo.mutation
}

// Where appends a list predicates to the ViewEventUpdate builder.
func (veuo *ViewEventUpdateOne) Where(ps ...predicate.ViewEvent) *ViewEventUpdateOne {
	veuo.mutation.Where(ps...)
	return veuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (veuo *ViewEventUpdateOne) Select(field string, fields ...string) *ViewEventUpdateOne {
	veuo.fields = append([]string{field}, fields...)
	return veuo
}

// Save executes the query and returns the updated ViewEvent entity.
func (veuo *ViewEventUpdateOne) Save(ctx context.Context) (*ViewEvent, error) {
	return withHooks(ctx, veuo.sqlSave, veuo.mutation, veuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (veuo *ViewEventUpdateOne) SaveX(ctx context.Context) *ViewEvent {
	node, err := veuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (veuo *ViewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := veuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (veuo *ViewEventUpdateOne) ExecX(ctx context.Context) {
	if err := veuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (veuo *ViewEventUpdateOne) check() error {
	if v, ok := veuo.mutation.WordID(); ok {
		if err := viewevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.word_id": %w`, err)}
		}
	}
	return nil
}

func (veuo *ViewEventUpdateOne) sqlSave(ctx context.Context) (_node *ViewEvent, err error) {
	if err := veuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewevent.Table, viewevent.Columns, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	id, ok := veuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := veuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, viewevent.FieldID)
		for _, f := range fields {
			if !viewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != viewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := veuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := veuo.mutation.WordID(); ok {
		_spec.SetField(viewevent.FieldWordID, field.TypeString, value)
	}
	_node = &ViewEvent{config: veuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, veuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	veuo.mutation.done = true
	return _node, nil
}
