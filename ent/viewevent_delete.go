// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/predicate"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// ViewEventDelete is the builder for deleting a ViewEvent entity.
type ViewEventDelete struct {
	config
	hooks    []Hook
	mutation *ViewEventMutation
}

// Where appends a list predicates to the ViewEventDelete builder.
func (ved *ViewEventDelete) Where(ps ...predicate.ViewEvent) *ViewEventDelete {
	ved.mutation.Where(ps...)
	return ved
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ved *ViewEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ved.sqlExec, ved.mutation, ved.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ved *ViewEventDelete) ExecX(ctx context.Context) int {
	n, err := ved.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ved *ViewEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(viewevent.Table, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	if ps := ved.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ved.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ved.mutation.done = true
	return affected, err
}

// ViewEventDeleteOne is the builder for deleting a single ViewEvent entity.
type ViewEventDeleteOne struct {
	ved *ViewEventDelete
}

// Where appends a list predicates to the ViewEventDelete builder.
func (vedo *ViewEventDeleteOne) Where(ps ...predicate.ViewEvent) *ViewEventDeleteOne {
	vedo.ved.mutation.Where(ps...)
	return vedo
}

// Exec executes the deletion query.
func (vedo *ViewEventDeleteOne) Exec(ctx context.Context) error {
	n, err := vedo.ved.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{viewevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vedo *ViewEventDeleteOne) ExecX(ctx context.Context) {
	if err := vedo.Exec(ctx); err != nil {
		panic(err)
	}
}
