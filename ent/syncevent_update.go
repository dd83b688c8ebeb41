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
	"github.com/tanmay/wordtrail/ent/syncevent"
)

// SyncEventUpdate is the builder for updating SyncEvent entities.
type SyncEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyncEventMutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (seu *SyncEventUpdate) Where(ps ...predicate.SyncEvent) *SyncEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetDirection sets the "direction" field.
func (seu *SyncEventUpdate) SetDirection(s string) *SyncEventUpdate {
	seu.mutation.SetDirection(s)
	return seu
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableDirection(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetDirection(*s)
	}
	return seu
}

// SetEndpoint sets the "endpoint" field.
func (seu *SyncEventUpdate) SetEndpoint(s string) *SyncEventUpdate {
	seu.mutation.SetEndpoint(s)
	return seu
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableEndpoint(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetEndpoint(*s)
	}
	return seu
}

// SetSuccess sets the "success" field.
func (seu *SyncEventUpdate) SetSuccess(b bool) *SyncEventUpdate {
	seu.mutation.SetSuccess(b)
	return seu
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableSuccess(b *bool) *SyncEventUpdate {
	if b != nil {
		seu.SetSuccess(*b)
	}
	return seu
}

// SetErrorMessage sets the "error_message" field.
func (seu *SyncEventUpdate) SetErrorMessage(s string) *SyncEventUpdate {
	seu.mutation.SetErrorMessage(s)
	return seu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableErrorMessage(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetErrorMessage(*s)
	}
	return seu
}

// Mutation returns the SyncEventMutation object of the builder.
func (seu *SyncEventUpdate) Mutation() *SyncEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SyncEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SyncEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SyncEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SyncEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SyncEventUpdate) check() error {
	if v, ok := seu.mutation.Direction(); ok {
		if err := syncevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.direction": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Endpoint(); ok {
		if err := syncevent.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.endpoint": %w`, err)}
		}
	}
	return nil
}

func (seu *SyncEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.Direction(); ok {
		_spec.SetField(syncevent.FieldDirection, field.TypeString, value)
	}
	if value, ok := seu.mutation.Endpoint(); ok {
		_spec.SetField(syncevent.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := seu.mutation.Success(); ok {
		_spec.SetField(syncevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := seu.mutation.ErrorMessage(); ok {
		_spec.SetField(syncevent.FieldErrorMessage, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SyncEventUpdateOne is the builder for updating a single SyncEvent entity.
type SyncEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncEventMutation
}

// SetDirection sets the "direction" field.
func (seuo *SyncEventUpdateOne) SetDirection(s string) *SyncEventUpdateOne {
	seuo.mutation.SetDirection(s)
	return seuo
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableDirection(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetDirection(*s)
	}
	return seuo
}

// SetEndpoint sets the "endpoint" field.
func (seuo *SyncEventUpdateOne) SetEndpoint(s string) *SyncEventUpdateOne {
	seuo.mutation.SetEndpoint(s)
	return seuo
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableEndpoint(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetEndpoint(*s)
	}
	return seuo
}

// SetSuccess sets the "success" field.
func (seuo *SyncEventUpdateOne) SetSuccess(b bool) *SyncEventUpdateOne {
	seuo.mutation.SetSuccess(b)
	return seuo
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableSuccess(b *bool) *SyncEventUpdateOne {
	if b != nil {
		seuo.SetSuccess(*b)
	}
	return seuo
}

// SetErrorMessage sets the "error_message" field.
func (seuo *SyncEventUpdateOne) SetErrorMessage(s string) *SyncEventUpdateOne {
	seuo.mutation.SetErrorMessage(s)
	return seuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableErrorMessage(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetErrorMessage(*s)
	}
	return seuo
}

// Mutation returns the SyncEventMutation object of the builder.
func (seuo *SyncEventUpdateOne) Mutation() *SyncEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (seuo *SyncEventUpdateOne) Where(ps ...predicate.SyncEvent) *SyncEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SyncEventUpdateOne) Select(field string, fields ...string) *SyncEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SyncEvent entity.
func (seuo *SyncEventUpdateOne) Save(ctx context.Context) (*SyncEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SyncEventUpdateOne) SaveX(ctx context.Context) *SyncEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SyncEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SyncEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SyncEventUpdateOne) check() error {
	if v, ok := seuo.mutation.Direction(); ok {
		if err := syncevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.direction": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Endpoint(); ok {
		if err := syncevent.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.endpoint": %w`, err)}
		}
	}
	return nil
}

func (seuo *SyncEventUpdateOne) sqlSave(ctx context.Context) (_node *SyncEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncevent.FieldID)
		for _, f := range fields {
			if !syncevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.Direction(); ok {
		_spec.SetField(syncevent.FieldDirection, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Endpoint(); ok {
		_spec.SetField(syncevent.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Success(); ok {
		_spec.SetField(syncevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := seuo.mutation.ErrorMessage(); ok {
		_spec.SetField(syncevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &SyncEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
