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
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (lu *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	lu.mutation.Where(ps...)
	return lu
}

// SetTitle sets the "title" field.
func (lu *LessonUpdate) SetTitle(s string) *LessonUpdate {
	lu.mutation.SetTitle(s)
	return lu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableTitle(s *string) *LessonUpdate {
	if s != nil {
		lu.SetTitle(*s)
	}
	return lu
}

// SetPosition sets the "position" field.
func (lu *LessonUpdate) SetPosition(i int) *LessonUpdate {
	lu.mutation.ResetPosition()
	lu.mutation.SetPosition(i)
	return lu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (lu *LessonUpdate) SetNillablePosition(i *int) *LessonUpdate {
	if i != nil {
		lu.SetPosition(*i)
	}
	return lu
}

// AddPosition adds i to the "position" field.
func (lu *LessonUpdate) AddPosition(i int) *LessonUpdate {
	lu.mutation.AddPosition(i)
	return lu
}

// SetCompleted sets the "completed" field.
func (lu *LessonUpdate) SetCompleted(b bool) *LessonUpdate {
	lu.mutation.SetCompleted(b)
	return lu
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableCompleted(b *bool) *LessonUpdate {
	if b != nil {
		lu.SetCompleted(*b)
	}
	return lu
}

// SetLocked sets the "locked" field.
func (lu *LessonUpdate) SetLocked(b bool) *LessonUpdate {
	lu.mutation.SetLocked(b)
	return lu
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableLocked(b *bool) *LessonUpdate {
	if b != nil {
		lu.SetLocked(*b)
	}
	return lu
}

// SetScore sets the "score" field.
func (lu *LessonUpdate) SetScore(i int) *LessonUpdate {
	lu.mutation.ResetScore()
	lu.mutation.SetScore(i)
	return lu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableScore(i *int) *LessonUpdate {
	if i != nil {
		lu.SetScore(*i)
	}
	return lu
}

// AddScore adds i to the "score" field.
func (lu *LessonUpdate) AddScore(i int) *LessonUpdate {
	lu.mutation.AddScore(i)
	return lu
}

// ClearScore clears the value of the "score" field.
func (lu *LessonUpdate) ClearScore() *LessonUpdate {
	lu.mutation.ClearScore()
	return lu
}

// SetLastCompleted sets the "last_completed" field.
func (lu *LessonUpdate) SetLastCompleted(t time.Time) *LessonUpdate {
	lu.mutation.SetLastCompleted(t)
	return lu
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (lu *LessonUpdate) SetNillableLastCompleted(t *time.Time) *LessonUpdate {
	if t != nil {
		lu.SetLastCompleted(*t)
	}
	return lu
}

// ClearLastCompleted clears the value of the "last_completed" field.
func (lu *LessonUpdate) ClearLastCompleted() *LessonUpdate {
	lu.mutation.ClearLastCompleted()
	return lu
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (lu *LessonUpdate) SetCategoryID(id int) *LessonUpdate {
	lu.mutation.SetCategoryID(id)
	return lu
}

// SetNillableCategoryID sets the "category" edge to the Category entity by ID if the given value is not nil.
func (lu *LessonUpdate) SetNillableCategoryID(id *int) *LessonUpdate {
	if id != nil {
		lu = lu.SetCategoryID(*id)
	}
	return lu
}

// SetCategory sets the "category" edge to the Category entity.
func (lu *LessonUpdate) SetCategory(c *Category) *LessonUpdate {
	return lu.SetCategoryID(c.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (lu *LessonUpdate) Mutation() *LessonMutation {
	return lu.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (lu *LessonUpdate) ClearCategory() *LessonUpdate {
	lu.mutation.ClearCategory()
	return lu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lu *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lu.sqlSave, lu.mutation, lu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lu *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := lu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lu *LessonUpdate) Exec(ctx context.Context) error {
	_, err := lu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lu *LessonUpdate) ExecX(ctx context.Context) {
	if err := lu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lu *LessonUpdate) check() error {
	if v, ok := lu.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := lu.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	return nil
}

func (lu *LessonUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	if ps := lu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lu.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := lu.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := lu.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := lu.mutation.Completed(); ok {
		_spec.SetField(lesson.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := lu.mutation.Locked(); ok {
		_spec.SetField(lesson.FieldLocked, field.TypeBool, value)
	}
	if value, ok := lu.mutation.Score(); ok {
		_spec.SetField(lesson.FieldScore, field.TypeInt, value)
	}
	if value, ok := lu.mutation.AddedScore(); ok {
		_spec.AddField(lesson.FieldScore, field.TypeInt, value)
	}
	if lu.mutation.ScoreCleared() {
		_spec.ClearField(lesson.FieldScore, field.TypeInt)
	}
	if value, ok := lu.mutation.LastCompleted(); ok {
		_spec.SetField(lesson.FieldLastCompleted, field.TypeTime, value)
	}
	if lu.mutation.LastCompletedCleared() {
		_spec.ClearField(lesson.FieldLastCompleted, field.TypeTime)
	}
	if lu.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CategoryTable,
			Columns: []string{lesson.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lu.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CategoryTable,
			Columns: []string{lesson.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lu.mutation.done = true
	return n, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTitle sets the "title" field.
func (luo *LessonUpdateOne) SetTitle(s string) *LessonUpdateOne {
	luo.mutation.SetTitle(s)
	return luo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableTitle(s *string) *LessonUpdateOne {
	if s != nil {
		luo.SetTitle(*s)
	}
	return luo
}

// SetPosition sets the "position" field.
func (luo *LessonUpdateOne) SetPosition(i int) *LessonUpdateOne {
	luo.mutation.ResetPosition()
	luo.mutation.SetPosition(i)
	return luo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillablePosition(i *int) *LessonUpdateOne {
	if i != nil {
		luo.SetPosition(*i)
	}
	return luo
}

// AddPosition adds i to the "position" field.
func (luo *LessonUpdateOne) AddPosition(i int) *LessonUpdateOne {
	luo.mutation.AddPosition(i)
	return luo
}

// SetCompleted sets the "completed" field.
func (luo *LessonUpdateOne) SetCompleted(b bool) *LessonUpdateOne {
	luo.mutation.SetCompleted(b)
	return luo
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableCompleted(b *bool) *LessonUpdateOne {
	if b != nil {
		luo.SetCompleted(*b)
	}
	return luo
}

// SetLocked sets the "locked" field.
func (luo *LessonUpdateOne) SetLocked(b bool) *LessonUpdateOne {
	luo.mutation.SetLocked(b)
	return luo
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableLocked(b *bool) *LessonUpdateOne {
	if b != nil {
		luo.SetLocked(*b)
	}
	return luo
}

// SetScore sets the "score" field.
func (luo *LessonUpdateOne) SetScore(i int) *LessonUpdateOne {
	luo.mutation.ResetScore()
	luo.mutation.SetScore(i)
	return luo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableScore(i *int) *LessonUpdateOne {
	if i != nil {
		luo.SetScore(*i)
	}
	return luo
}

// AddScore adds i to the "score" field.
func (luo *LessonUpdateOne) AddScore(i int) *LessonUpdateOne {
	luo.mutation.AddScore(i)
	return luo
}

// ClearScore clears the value of the "score" field.
func (luo *LessonUpdateOne) ClearScore() *LessonUpdateOne {
	luo.mutation.ClearScore()
	return luo
}

// SetLastCompleted sets the "last_completed" field.
func (luo *LessonUpdateOne) SetLastCompleted(t time.Time) *LessonUpdateOne {
	luo.mutation.SetLastCompleted(t)
	return luo
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableLastCompleted(t *time.Time) *LessonUpdateOne {
	if t != nil {
		luo.SetLastCompleted(*t)
	}
	return luo
}

// ClearLastCompleted clears the value of the "last_completed" field.
func (luo *LessonUpdateOne) ClearLastCompleted() *LessonUpdateOne {
	luo.mutation.ClearLastCompleted()
	return luo
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (luo *LessonUpdateOne) SetCategoryID(id int) *LessonUpdateOne {
	luo.mutation.SetCategoryID(id)
	return luo
}

// SetNillableCategoryID sets the "category" edge to the Category entity by ID if the given value is not nil.
func (luo *LessonUpdateOne) SetNillableCategoryID(id *int) *LessonUpdateOne {
	if id != nil {
		luo = luo.SetCategoryID(*id)
	}
	return luo
}

// SetCategory sets the "category" edge to the Category entity.
func (luo *LessonUpdateOne) SetCategory(c *Category) *LessonUpdateOne {
	return luo.SetCategoryID(c.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (luo *LessonUpdateOne) Mutation() *LessonMutation {
	return luo.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (luo *LessonUpdateOne) ClearCategory() *LessonUpdateOne {
	luo.mutation.ClearCategory()
	return luo
}

// Where appends a list predicates to the LessonUpdate builder.
func (luo *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	luo.mutation.Where(ps...)
	return luo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (luo *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	luo.fields = append([]string{field}, fields...)
	return luo
}

// Save executes the query and returns the updated Lesson entity.
func (luo *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, luo.sqlSave, luo.mutation, luo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (luo *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := luo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (luo *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := luo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (luo *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := luo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (luo *LessonUpdateOne) check() error {
	if v, ok := luo.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := luo.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	return nil
}

func (luo *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := luo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	id, ok := luo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := luo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := luo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := luo.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := luo.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := luo.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := luo.mutation.Completed(); ok {
		_spec.SetField(lesson.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := luo.mutation.Locked(); ok {
		_spec.SetField(lesson.FieldLocked, field.TypeBool, value)
	}
	if value, ok := luo.mutation.Score(); ok {
		_spec.SetField(lesson.FieldScore, field.TypeInt, value)
	}
	if value, ok := luo.mutation.AddedScore(); ok {
		_spec.AddField(lesson.FieldScore, field.TypeInt, value)
	}
	if luo.mutation.ScoreCleared() {
		_spec.ClearField(lesson.FieldScore, field.TypeInt)
	}
	if value, ok := luo.mutation.LastCompleted(); ok {
		_spec.SetField(lesson.FieldLastCompleted, field.TypeTime, value)
	}
	if luo.mutation.LastCompletedCleared() {
		_spec.ClearField(lesson.FieldLastCompleted, field.TypeTime)
	}
	if luo.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CategoryTable,
			Columns: []string{lesson.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := luo.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CategoryTable,
			Columns: []string{lesson.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: luo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, luo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	luo.mutation.done = true
	return _node, nil
}
