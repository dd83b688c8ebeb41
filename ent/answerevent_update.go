// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/answerevent"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetWordID sets the "word_id" field.
func (aeu *AnswerEventUpdate) SetWordID(s string) *AnswerEventUpdate {
	aeu.mutation.SetWordID(s)
	return aeu
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableWordID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetWordID(*s)
	}
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AnswerEventUpdate) SetCorrect(b bool) *AnswerEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCorrect(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetStatusAfter sets the "status_after" field.
func (aeu *AnswerEventUpdate) SetStatusAfter(s string) *AnswerEventUpdate {
	aeu.mutation.SetStatusAfter(s)
	return aeu
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableStatusAfter(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetStatusAfter(*s)
	}
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AnswerEventUpdate) check() error {
	if v, ok := aeu.mutation.WordID(); ok {
		if err := answerevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.StatusAfter(); ok {
		if err := answerevent.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.status_after": %w`, err)}
		}
	}
	return nil
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.StatusAfter(); ok {
		_spec.SetField(answerevent.FieldStatusAfter, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetWordID sets the "word_id" field.
func (aeuo *AnswerEventUpdateOne) SetWordID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetWordID(s)
	return aeuo
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableWordID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetWordID(*s)
	}
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AnswerEventUpdateOne) SetCorrect(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCorrect(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetStatusAfter sets the "status_after" field.
func (aeuo *AnswerEventUpdateOne) SetStatusAfter(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetStatusAfter(s)
	return aeuo
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableStatusAfter(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetStatusAfter(*s)
	}
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AnswerEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.WordID(); ok {
		if err := answerevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.StatusAfter(); ok {
		if err := answerevent.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.status_after": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.StatusAfter(); ok {
		_spec.SetField(answerevent.FieldStatusAfter, field.TypeString, value)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
