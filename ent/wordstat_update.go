// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/predicate"
	"github.com/tanmay/wordtrail/ent/wordstat"
)

// WordStatUpdate is the builder for updating WordStat entities.
type WordStatUpdate struct {
	config
	hooks    []Hook
	mutation *WordStatMutation
}

// Where appends a list predicates to the WordStatUpdate builder.
func (wsu *WordStatUpdate) Where(ps ...predicate.WordStat) *WordStatUpdate {
	wsu.mutation.Where(ps...)
	return wsu
}

// SetStatus sets the "status" field.
func (wsu *WordStatUpdate) SetStatus(s string) *WordStatUpdate {
	wsu.mutation.SetStatus(s)
	return wsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wsu *WordStatUpdate) SetNillableStatus(s *string) *WordStatUpdate {
	if s != nil {
		wsu.SetStatus(*s)
	}
	return wsu
}

// SetViewCount sets the "view_count" field.
func (wsu *WordStatUpdate) SetViewCount(i int) *WordStatUpdate {
	wsu.mutation.ResetViewCount()
	wsu.mutation.SetViewCount(i)
	return wsu
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (wsu *WordStatUpdate) SetNillableViewCount(i *int) *WordStatUpdate {
	if i != nil {
		wsu.SetViewCount(*i)
	}
	return wsu
}

// AddViewCount adds i to the "view_count" field.
func (wsu *WordStatUpdate) AddViewCount(i int) *WordStatUpdate {
	wsu.mutation.AddViewCount(i)
	return wsu
}

// SetCorrectCount sets the "correct_count" field.
func (wsu *WordStatUpdate) SetCorrectCount(i int) *WordStatUpdate {
	wsu.mutation.ResetCorrectCount()
	wsu.mutation.SetCorrectCount(i)
	return wsu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (wsu *WordStatUpdate) SetNillableCorrectCount(i *int) *WordStatUpdate {
	if i != nil {
		wsu.SetCorrectCount(*i)
	}
	return wsu
}

// AddCorrectCount adds i to the "correct_count" field.
func (wsu *WordStatUpdate) AddCorrectCount(i int) *WordStatUpdate {
	wsu.mutation.AddCorrectCount(i)
	return wsu
}

// SetIncorrectCount sets the "incorrect_count" field.
func (wsu *WordStatUpdate) SetIncorrectCount(i int) *WordStatUpdate {
	wsu.mutation.ResetIncorrectCount()
	wsu.mutation.SetIncorrectCount(i)
	return wsu
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (wsu *WordStatUpdate) SetNillableIncorrectCount(i *int) *WordStatUpdate {
	if i != nil {
		wsu.SetIncorrectCount(*i)
	}
	return wsu
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (wsu *WordStatUpdate) AddIncorrectCount(i int) *WordStatUpdate {
	wsu.mutation.AddIncorrectCount(i)
	return wsu
}

// SetLastViewed sets the "last_viewed" field.
func (wsu *WordStatUpdate) SetLastViewed(t time.Time) *WordStatUpdate {
	wsu.mutation.SetLastViewed(t)
	return wsu
}

// SetNillableLastViewed sets the "last_viewed" field if the given value is not nil.
func (wsu *WordStatUpdate) SetNillableLastViewed(t *time.Time) *WordStatUpdate {
	if t != nil {
		wsu.SetLastViewed(*t)
	}
	return wsu
}

// ClearLastViewed clears the value of the "last_viewed" field.
func (wsu *WordStatUpdate) ClearLastViewed() *WordStatUpdate {
	wsu.mutation.ClearLastViewed()
	return wsu
}

// Mutation returns the WordStatMutation object of the builder.
func (wsu *WordStatUpdate) Mutation() *WordStatMutation {
	return wsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wsu *WordStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wsu.sqlSave, wsu.mutation, wsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsu *WordStatUpdate) SaveX(ctx context.Context) int {
	affected, err := wsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wsu *WordStatUpdate) Exec(ctx context.Context) error {
	_, err := wsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsu *WordStatUpdate) ExecX(ctx context.Context) {
	if err := wsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsu *WordStatUpdate) check() error {
	if v, ok := wsu.mutation.ViewCount(); ok {
		if err := wordstat.ViewCountValidator(v); err != nil {
			return &ValidationError{Name: "view_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.view_count": %w`, err)}
		}
	}
	if v, ok := wsu.mutation.CorrectCount(); ok {
		if err := wordstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.correct_count": %w`, err)}
		}
	}
	if v, ok := wsu.mutation.IncorrectCount(); ok {
		if err := wordstat.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (wsu *WordStatUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordstat.Table, wordstat.Columns, sqlgraph.NewFieldSpec(wordstat.FieldID, field.TypeInt))
	if ps := wsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsu.mutation.Status(); ok {
		_spec.SetField(wordstat.FieldStatus, field.TypeString, value)
	}
	if value, ok := wsu.mutation.ViewCount(); ok {
		_spec.SetField(wordstat.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.AddedViewCount(); ok {
		_spec.AddField(wordstat.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.CorrectCount(); ok {
		_spec.SetField(wordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(wordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.IncorrectCount(); ok {
		_spec.SetField(wordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(wordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.LastViewed(); ok {
		_spec.SetField(wordstat.FieldLastViewed, field.TypeTime, value)
	}
	if wsu.mutation.LastViewedCleared() {
		_spec.ClearField(wordstat.FieldLastViewed, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wsu.mutation.done = true
	return n, nil
}

// WordStatUpdateOne is the builder for updating a single WordStat entity.
type WordStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordStatMutation
}

// SetStatus sets the "status" field.
func (wsuo *WordStatUpdateOne) SetStatus(s string) *WordStatUpdateOne {
	wsuo.mutation.SetStatus(s)
	return wsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wsuo *WordStatUpdateOne) SetNillableStatus(s *string) *WordStatUpdateOne {
	if s != nil {
		wsuo.SetStatus(*s)
	}
	return wsuo
}

// SetViewCount sets the "view_count" field.
func (wsuo *WordStatUpdateOne) SetViewCount(i int) *WordStatUpdateOne {
	wsuo.mutation.ResetViewCount()
	wsuo.mutation.SetViewCount(i)
	return wsuo
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (wsuo *WordStatUpdateOne) SetNillableViewCount(i *int) *WordStatUpdateOne {
	if i != nil {
		wsuo.SetViewCount(*i)
	}
	return wsuo
}

// AddViewCount adds i to the "view_count" field.
func (wsuo *WordStatUpdateOne) AddViewCount(i int) *WordStatUpdateOne {
	wsuo.mutation.AddViewCount(i)
	return wsuo
}

// SetCorrectCount sets the "correct_count" field.
func (wsuo *WordStatUpdateOne) SetCorrectCount(i int) *WordStatUpdateOne {
	wsuo.mutation.ResetCorrectCount()
	wsuo.mutation.SetCorrectCount(i)
	return wsuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (wsuo *WordStatUpdateOne) SetNillableCorrectCount(i *int) *WordStatUpdateOne {
	if i != nil {
		wsuo.SetCorrectCount(*i)
	}
	return wsuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (wsuo *WordStatUpdateOne) AddCorrectCount(i int) *WordStatUpdateOne {
	wsuo.mutation.AddCorrectCount(i)
	return wsuo
}

// SetIncorrectCount sets the "incorrect_count" field.
func (wsuo *WordStatUpdateOne) SetIncorrectCount(i int) *WordStatUpdateOne {
	wsuo.mutation.ResetIncorrectCount()
	wsuo.mutation.SetIncorrectCount(i)
	return wsuo
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (wsuo *WordStatUpdateOne) SetNillableIncorrectCount(i *int) *WordStatUpdateOne {
	if i != nil {
		wsuo.SetIncorrectCount(*i)
	}
	return wsuo
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (wsuo *WordStatUpdateOne) AddIncorrectCount(i int) *WordStatUpdateOne {
	wsuo.mutation.AddIncorrectCount(i)
	return wsuo
}

// SetLastViewed sets the "last_viewed" field.
func (wsuo *WordStatUpdateOne) SetLastViewed(t time.Time) *WordStatUpdateOne {
	wsuo.mutation.SetLastViewed(t)
	return wsuo
}

// SetNillableLastViewed sets the "last_viewed" field if the given value is not nil.
func (wsuo *WordStatUpdateOne) SetNillableLastViewed(t *time.Time) *WordStatUpdateOne {
	if t != nil {
		wsuo.SetLastViewed(*t)
	}
	return wsuo
}

// ClearLastViewed clears the value of the "last_viewed" field.
func (wsuo *WordStatUpdateOne) ClearLastViewed() *WordStatUpdateOne {
	wsuo.mutation.ClearLastViewed()
	return wsuo
}

// Mutation returns the WordStatMutation object of the builder.
func (wsuo *WordStatUpdateOne) Mutation() *WordStatMutation {
	return wsuo.mutation
}

// Where appends a list predicates to the WordStatUpdate builder.
func (wsuo *WordStatUpdateOne) Where(ps ...predicate.WordStat) *WordStatUpdateOne {
	wsuo.mutation.Where(ps...)
	return wsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wsuo *WordStatUpdateOne) Select(field string, fields ...string) *WordStatUpdateOne {
	wsuo.fields = append([]string{field}, fields...)
	return wsuo
}

// Save executes the query and returns the updated WordStat entity.
func (wsuo *WordStatUpdateOne) Save(ctx context.Context) (*WordStat, error) {
	return withHooks(ctx, wsuo.sqlSave, wsuo.mutation, wsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsuo *WordStatUpdateOne) SaveX(ctx context.Context) *WordStat {
	node, err := wsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wsuo *WordStatUpdateOne) Exec(ctx context.Context) error {
	_, err := wsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsuo *WordStatUpdateOne) ExecX(ctx context.Context) {
	if err := wsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsuo *WordStatUpdateOne) check() error {
	if v, ok := wsuo.mutation.ViewCount(); ok {
		if err := wordstat.ViewCountValidator(v); err != nil {
			return &ValidationError{Name: "view_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.view_count": %w`, err)}
		}
	}
	if v, ok := wsuo.mutation.CorrectCount(); ok {
		if err := wordstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.correct_count": %w`, err)}
		}
	}
	if v, ok := wsuo.mutation.IncorrectCount(); ok {
		if err := wordstat.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "WordStat.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (wsuo *WordStatUpdateOne) sqlSave(ctx context.Context) (_node *WordStat, err error) {
	if err := wsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordstat.Table, wordstat.Columns, sqlgraph.NewFieldSpec(wordstat.FieldID, field.TypeInt))
	id, ok := wsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WordStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wordstat.FieldID)
		for _, f := range fields {
			if !wordstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wordstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsuo.mutation.Status(); ok {
		_spec.SetField(wordstat.FieldStatus, field.TypeString, value)
	}
	if value, ok := wsuo.mutation.ViewCount(); ok {
		_spec.SetField(wordstat.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.AddedViewCount(); ok {
		_spec.AddField(wordstat.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.CorrectCount(); ok {
		_spec.SetField(wordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(wordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.IncorrectCount(); ok {
		_spec.SetField(wordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(wordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.LastViewed(); ok {
		_spec.SetField(wordstat.FieldLastViewed, field.TypeTime, value)
	}
	if wsuo.mutation.LastViewedCleared() {
		_spec.ClearField(wordstat.FieldLastViewed, field.TypeTime)
	}
	_node = &WordStat{config: wsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wsuo.mutation.done = true
	return _node, nil
}
