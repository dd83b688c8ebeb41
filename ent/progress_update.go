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
	"github.com/tanmay/wordtrail/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (pu *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (pu *ProgressUpdate) SetTotalLessonsCompleted(i int) *ProgressUpdate {
	pu.mutation.ResetTotalLessonsCompleted()
	pu.mutation.SetTotalLessonsCompleted(i)
	return pu
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableTotalLessonsCompleted(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetTotalLessonsCompleted(*i)
	}
	return pu
}

// AddTotalLessonsCompleted adds i to the "total_lessons_completed" field.
func (pu *ProgressUpdate) AddTotalLessonsCompleted(i int) *ProgressUpdate {
	pu.mutation.AddTotalLessonsCompleted(i)
	return pu
}

// SetTotalPoints sets the "total_points" field.
func (pu *ProgressUpdate) SetTotalPoints(i int) *ProgressUpdate {
	pu.mutation.ResetTotalPoints()
	pu.mutation.SetTotalPoints(i)
	return pu
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableTotalPoints(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetTotalPoints(*i)
	}
	return pu
}

// AddTotalPoints adds i to the "total_points" field.
func (pu *ProgressUpdate) AddTotalPoints(i int) *ProgressUpdate {
	pu.mutation.AddTotalPoints(i)
	return pu
}

// SetStreak sets the "streak" field.
func (pu *ProgressUpdate) SetStreak(i int) *ProgressUpdate {
	pu.mutation.ResetStreak()
	pu.mutation.SetStreak(i)
	return pu
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableStreak(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetStreak(*i)
	}
	return pu
}

// AddStreak adds i to the "streak" field.
func (pu *ProgressUpdate) AddStreak(i int) *ProgressUpdate {
	pu.mutation.AddStreak(i)
	return pu
}

// SetLastStudyDate sets the "last_study_date" field.
func (pu *ProgressUpdate) SetLastStudyDate(s string) *ProgressUpdate {
	pu.mutation.SetLastStudyDate(s)
	return pu
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableLastStudyDate(s *string) *ProgressUpdate {
	if s != nil {
		pu.SetLastStudyDate(*s)
	}
	return pu
}

// Mutation returns the ProgressMutation object of the builder.
func (pu *ProgressUpdate) Mutation() *ProgressMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProgressUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProgressUpdate) check() error {
	if v, ok := pu.mutation.TotalLessonsCompleted(); ok {
		if err := progress.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Progress.total_lessons_completed": %w`, err)}
		}
	}
	if v, ok := pu.mutation.TotalPoints(); ok {
		if err := progress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "Progress.total_points": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	return nil
}

func (pu *ProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(progress.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedTotalLessonsCompleted(); ok {
		_spec.AddField(progress.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := pu.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := pu.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := pu.mutation.LastStudyDate(); ok {
		_spec.SetField(progress.FieldLastStudyDate, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (puo *ProgressUpdateOne) SetTotalLessonsCompleted(i int) *ProgressUpdateOne {
	puo.mutation.ResetTotalLessonsCompleted()
	puo.mutation.SetTotalLessonsCompleted(i)
	return puo
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableTotalLessonsCompleted(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetTotalLessonsCompleted(*i)
	}
	return puo
}

// AddTotalLessonsCompleted adds i to the "total_lessons_completed" field.
func (puo *ProgressUpdateOne) AddTotalLessonsCompleted(i int) *ProgressUpdateOne {
	puo.mutation.AddTotalLessonsCompleted(i)
	return puo
}

// SetTotalPoints sets the "total_points" field.
func (puo *ProgressUpdateOne) SetTotalPoints(i int) *ProgressUpdateOne {
	puo.mutation.ResetTotalPoints()
	puo.mutation.SetTotalPoints(i)
	return puo
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableTotalPoints(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetTotalPoints(*i)
	}
	return puo
}

// AddTotalPoints adds i to the "total_points" field.
func (puo *ProgressUpdateOne) AddTotalPoints(i int) *ProgressUpdateOne {
	puo.mutation.AddTotalPoints(i)
	return puo
}

// SetStreak sets the "streak" field.
func (puo *ProgressUpdateOne) SetStreak(i int) *ProgressUpdateOne {
	puo.mutation.ResetStreak()
	puo.mutation.SetStreak(i)
	return puo
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableStreak(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetStreak(*i)
	}
	return puo
}

// AddStreak adds i to the "streak" field.
func (puo *ProgressUpdateOne) AddStreak(i int) *ProgressUpdateOne {
	puo.mutation.AddStreak(i)
	return puo
}

// SetLastStudyDate sets the "last_study_date" field.
func (puo *ProgressUpdateOne) SetLastStudyDate(s string) *ProgressUpdateOne {
	puo.mutation.SetLastStudyDate(s)
	return puo
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableLastStudyDate(s *string) *ProgressUpdateOne {
	if s != nil {
		puo.SetLastStudyDate(*s)
	}
	return puo
}

// Mutation returns the ProgressMutation object of the builder.
func (puo *ProgressUpdateOne) Mutation() *ProgressMutation {
	return puo.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (puo *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Progress entity.
func (puo *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProgressUpdateOne) check() error {
	if v, ok := puo.mutation.TotalLessonsCompleted(); ok {
		if err := progress.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Progress.total_lessons_completed": %w`, err)}
		}
	}
	if v, ok := puo.mutation.TotalPoints(); ok {
		if err := progress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "Progress.total_points": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	return nil
}

func (puo *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(progress.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedTotalLessonsCompleted(); ok {
		_spec.AddField(progress.FieldTotalLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := puo.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := puo.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := puo.mutation.LastStudyDate(); ok {
		_spec.SetField(progress.FieldLastStudyDate, field.TypeString, value)
	}
	_node = &Progress{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
