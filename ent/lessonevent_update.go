// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/lessonevent"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (leu *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	leu.mutation.Where(ps...)
	return leu
}

// SetCategoryID sets the "category_id" field.
func (leu *LessonEventUpdate) SetCategoryID(s string) *LessonEventUpdate {
	leu.mutation.SetCategoryID(s)
	return leu
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableCategoryID(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetCategoryID(*s)
	}
	return leu
}

// SetLessonID sets the "lesson_id" field.
func (leu *LessonEventUpdate) SetLessonID(s string) *LessonEventUpdate {
	leu.mutation.SetLessonID(s)
	return leu
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableLessonID(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetLessonID(*s)
	}
	return leu
}

// SetScore sets the "score" field.
func (leu *LessonEventUpdate) SetScore(i int) *LessonEventUpdate {
	leu.mutation.ResetScore()
	leu.mutation.SetScore(i)
	return leu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableScore(i *int) *LessonEventUpdate {
	if i != nil {
		leu.SetScore(*i)
	}
	return leu
}

// AddScore adds i to the "score" field.
func (leu *LessonEventUpdate) AddScore(i int) *LessonEventUpdate {
	leu.mutation.AddScore(i)
	return leu
}

// SetFirstCompletion sets the "first_completion" field.
func (leu *LessonEventUpdate) SetFirstCompletion(b bool) *LessonEventUpdate {
	leu.mutation.SetFirstCompletion(b)
	return leu
}

// SetNillableFirstCompletion sets the "first_completion" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableFirstCompletion(b *bool) *LessonEventUpdate {
	if b != nil {
		leu.SetFirstCompletion(*b)
	}
	return leu
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (leu *LessonEventUpdate) SetIdempotencyKey(s string) *LessonEventUpdate {
	leu.mutation.SetIdempotencyKey(s)
	return leu
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableIdempotencyKey(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetIdempotencyKey(*s)
	}
	return leu
}

// Mutation returns the LessonEventMutation object of the builder.
func (leu *LessonEventUpdate) Mutation() *LessonEventMutation {
	return leu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (leu *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, leu.sqlSave, leu.mutation, leu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leu *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := leu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (leu *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := leu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leu *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := leu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leu *LessonEventUpdate) check() error {
	if v, ok := leu.mutation.CategoryID(); ok {
		if err := lessonevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.category_id": %w`, err)}
		}
	}
	if v, ok := leu.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := leu.mutation.IdempotencyKey(); ok {
		if err := lessonevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.idempotency_key": %w`, err)}
		}
	}
	return nil
}

func (leu *LessonEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := leu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := leu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leu.mutation.CategoryID(); ok {
		_spec.SetField(lessonevent.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := leu.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := leu.mutation.Score(); ok {
		_spec.SetField(lessonevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedScore(); ok {
		_spec.AddField(lessonevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := leu.mutation.FirstCompletion(); ok {
		_spec.SetField(lessonevent.FieldFirstCompletion, field.TypeBool, value)
	}
	if value, ok := leu.mutation.IdempotencyKey(); ok {
		_spec.SetField(lessonevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, leu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	leu.mutation.done = true
	return n, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetCategoryID sets the "category_id" field.
func (leuo *LessonEventUpdateOne) SetCategoryID(s string) *LessonEventUpdateOne {
	leuo.mutation.SetCategoryID(s)
	return leuo
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableCategoryID(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetCategoryID(*s)
	}
	return leuo
}

// SetLessonID sets the "lesson_id" field.
func (leuo *LessonEventUpdateOne) SetLessonID(s string) *LessonEventUpdateOne {
	leuo.mutation.SetLessonID(s)
	return leuo
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableLessonID(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetLessonID(*s)
	}
	return leuo
}

// SetScore sets the "score" field.
func (leuo *LessonEventUpdateOne) SetScore(i int) *LessonEventUpdateOne {
	leuo.mutation.ResetScore()
	leuo.mutation.SetScore(i)
	return leuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableScore(i *int) *LessonEventUpdateOne {
	if i != nil {
		leuo.SetScore(*i)
	}
	return leuo
}

// AddScore adds i to the "score" field.
func (leuo *LessonEventUpdateOne) AddScore(i int) *LessonEventUpdateOne {
	leuo.mutation.AddScore(i)
	return leuo
}

// SetFirstCompletion sets the "first_completion" field.
func (leuo *LessonEventUpdateOne) SetFirstCompletion(b bool) *LessonEventUpdateOne {
	leuo.mutation.SetFirstCompletion(b)
	return leuo
}

// SetNillableFirstCompletion sets the "first_completion" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableFirstCompletion(b *bool) *LessonEventUpdateOne {
	if b != nil {
		leuo.SetFirstCompletion(*b)
	}
	return leuo
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (leuo *LessonEventUpdateOne) SetIdempotencyKey(s string) *LessonEventUpdateOne {
	leuo.mutation.SetIdempotencyKey(s)
	return leuo
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableIdempotencyKey(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetIdempotencyKey(*s)
	}
	return leuo
}

// Mutation returns the LessonEventMutation object of the builder.
func (leuo *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return leuo.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (leuo *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	leuo.mutation.Where(ps...)
	return leuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (leuo *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	leuo.fields = append([]string{field}, fields...)
	return leuo
}

// Save executes the query and returns the updated LessonEvent entity.
func (leuo *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, leuo.sqlSave, leuo.mutation, leuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leuo *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := leuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (leuo *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := leuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leuo *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := leuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leuo *LessonEventUpdateOne) check() error {
	if v, ok := leuo.mutation.CategoryID(); ok {
		if err := lessonevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.category_id": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.IdempotencyKey(); ok {
		if err := lessonevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.idempotency_key": %w`, err)}
		}
	}
	return nil
}

func (leuo *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := leuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := leuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := leuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := leuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leuo.mutation.CategoryID(); ok {
		_spec.SetField(lessonevent.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.Score(); ok {
		_spec.SetField(lessonevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedScore(); ok {
		_spec.AddField(lessonevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.FirstCompletion(); ok {
		_spec.SetField(lessonevent.FieldFirstCompletion, field.TypeBool, value)
	}
	if value, ok := leuo.mutation.IdempotencyKey(); ok {
		_spec.SetField(lessonevent.FieldIdempotencyKey, field.TypeString, value)
	}
	_node = &LessonEvent{config: leuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, leuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	leuo.mutation.done = true
	return _node, nil
}
