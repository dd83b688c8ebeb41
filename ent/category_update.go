// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// CategoryUpdate is the builder for updating Category entities.
type CategoryUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryMutation
}

// Where appends a list predicates to the CategoryUpdate builder.
func (cu *CategoryUpdate) Where(ps ...predicate.Category) *CategoryUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetTitle sets the "title" field.
func (cu *CategoryUpdate) SetTitle(s string) *CategoryUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *CategoryUpdate) SetNillableTitle(s *string) *CategoryUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetIcon sets the "icon" field.
func (cu *CategoryUpdate) SetIcon(s string) *CategoryUpdate {
	cu.mutation.SetIcon(s)
	return cu
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (cu *CategoryUpdate) SetNillableIcon(s *string) *CategoryUpdate {
	if s != nil {
		cu.SetIcon(*s)
	}
	return cu
}

// SetColor sets the "color" field.
func (cu *CategoryUpdate) SetColor(s string) *CategoryUpdate {
	cu.mutation.SetColor(s)
	return cu
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (cu *CategoryUpdate) SetNillableColor(s *string) *CategoryUpdate {
	if s != nil {
		cu.SetColor(*s)
	}
	return cu
}

// SetPosition sets the "position" field.
func (cu *CategoryUpdate) SetPosition(i int) *CategoryUpdate {
	cu.mutation.ResetPosition()
	cu.mutation.SetPosition(i)
	return cu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (cu *CategoryUpdate) SetNillablePosition(i *int) *CategoryUpdate {
	if i != nil {
		cu.SetPosition(*i)
	}
	return cu
}

// AddPosition adds i to the "position" field.
func (cu *CategoryUpdate) AddPosition(i int) *CategoryUpdate {
	cu.mutation.AddPosition(i)
	return cu
}

// SetProgress sets the "progress" field.
func (cu *CategoryUpdate) SetProgress(i int) *CategoryUpdate {
	cu.mutation.ResetProgress()
	cu.mutation.SetProgress(i)
	return cu
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (cu *CategoryUpdate) SetNillableProgress(i *int) *CategoryUpdate {
	if i != nil {
		cu.SetProgress(*i)
	}
	return cu
}

// AddProgress adds i to the "progress" field.
func (cu *CategoryUpdate) AddProgress(i int) *CategoryUpdate {
	cu.mutation.AddProgress(i)
	return cu
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (cu *CategoryUpdate) AddLessonIDs(ids ...int) *CategoryUpdate {
	cu.mutation.AddLessonIDs(ids...)
	return cu
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (cu *CategoryUpdate) AddLessons(l ...*Lesson) *CategoryUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cu.AddLessonIDs(ids...)
}

// Mutation returns the CategoryMutation object of the builder.
func (cu *CategoryUpdate) Mutation() *CategoryMutation {
	return cu.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (cu *CategoryUpdate) ClearLessons() *CategoryUpdate {
	cu.mutation.ClearLessons()
	return cu
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (cu *CategoryUpdate) RemoveLessonIDs(ids ...int) *CategoryUpdate {
	cu.mutation.RemoveLessonIDs(ids...)
	return cu
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (cu *CategoryUpdate) RemoveLessons(l ...*Lesson) *CategoryUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cu.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CategoryUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CategoryUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CategoryUpdate) check() error {
	if v, ok := cu.mutation.Title(); ok {
		if err := category.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Category.title": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Position(); ok {
		if err := category.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Category.position": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Progress(); ok {
		if err := category.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Category.progress": %w`, err)}
		}
	}
	return nil
}

func (cu *CategoryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(category.Table, category.Columns, sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(category.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.Icon(); ok {
		_spec.SetField(category.FieldIcon, field.TypeString, value)
	}
	if value, ok := cu.mutation.Color(); ok {
		_spec.SetField(category.FieldColor, field.TypeString, value)
	}
	if value, ok := cu.mutation.Position(); ok {
		_spec.SetField(category.FieldPosition, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedPosition(); ok {
		_spec.AddField(category.FieldPosition, field.TypeInt, value)
	}
	if value, ok := cu.mutation.Progress(); ok {
		_spec.SetField(category.FieldProgress, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedProgress(); ok {
		_spec.AddField(category.FieldProgress, field.TypeInt, value)
	}
	if cu.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !cu.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{category.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CategoryUpdateOne is the builder for updating a single Category entity.
type CategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryMutation
}

// SetTitle sets the "title" field.
func (cuo *CategoryUpdateOne) SetTitle(s string) *CategoryUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *CategoryUpdateOne) SetNillableTitle(s *string) *CategoryUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetIcon sets the "icon" field.
func (cuo *CategoryUpdateOne) SetIcon(s string) *CategoryUpdateOne {
	cuo.mutation.SetIcon(s)
	return cuo
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (cuo *CategoryUpdateOne) SetNillableIcon(s *string) *CategoryUpdateOne {
	if s != nil {
		cuo.SetIcon(*s)
	}
	return cuo
}

// SetColor sets the "color" field.
func (cuo *CategoryUpdateOne) SetColor(s string) *CategoryUpdateOne {
	cuo.mutation.SetColor(s)
	return cuo
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (cuo *CategoryUpdateOne) SetNillableColor(s *string) *CategoryUpdateOne {
	if s != nil {
		cuo.SetColor(*s)
	}
	return cuo
}

// SetPosition sets the "position" field.
func (cuo *CategoryUpdateOne) SetPosition(i int) *CategoryUpdateOne {
	cuo.mutation.ResetPosition()
	cuo.mutation.SetPosition(i)
	return cuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (cuo *CategoryUpdateOne) SetNillablePosition(i *int) *CategoryUpdateOne {
	if i != nil {
		cuo.SetPosition(*i)
	}
	return cuo
}

// AddPosition adds i to the "position" field.
func (cuo *CategoryUpdateOne) AddPosition(i int) *CategoryUpdateOne {
	cuo.mutation.AddPosition(i)
	return cuo
}

// SetProgress sets the "progress" field.
func (cuo *CategoryUpdateOne) SetProgress(i int) *CategoryUpdateOne {
	cuo.mutation.ResetProgress()
	cuo.mutation.SetProgress(i)
	return cuo
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (cuo *CategoryUpdateOne) SetNillableProgress(i *int) *CategoryUpdateOne {
	if i != nil {
		cuo.SetProgress(*i)
	}
	return cuo
}

// AddProgress adds i to the "progress" field.
func (cuo *CategoryUpdateOne) AddProgress(i int) *CategoryUpdateOne {
	cuo.mutation.AddProgress(i)
	return cuo
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (cuo *CategoryUpdateOne) AddLessonIDs(ids ...int) *CategoryUpdateOne {
	cuo.mutation.AddLessonIDs(ids...)
	return cuo
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (cuo *CategoryUpdateOne) AddLessons(l ...*Lesson) *CategoryUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cuo.AddLessonIDs(ids...)
}

// Mutation returns the CategoryMutation object of the builder.
func (cuo *CategoryUpdateOne) Mutation() *CategoryMutation {
	return cuo.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (cuo *CategoryUpdateOne) ClearLessons() *CategoryUpdateOne {
	cuo.mutation.ClearLessons()
	return cuo
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (cuo *CategoryUpdateOne) RemoveLessonIDs(ids ...int) *CategoryUpdateOne {
	cuo.mutation.RemoveLessonIDs(ids...)
	return cuo
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (cuo *CategoryUpdateOne) RemoveLessons(l ...*Lesson) *CategoryUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cuo.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the CategoryUpdate builder.
func (cuo *CategoryUpdateOne) Where(ps ...predicate.Category) *CategoryUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CategoryUpdateOne) Select(field string, fields ...string) *CategoryUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Category entity.
func (cuo *CategoryUpdateOne) Save(ctx context.Context) (*Category, error) {
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CategoryUpdateOne) SaveX(ctx context.Context) *Category {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CategoryUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CategoryUpdateOne) check() error {
	if v, ok := cuo.mutation.Title(); ok {
		if err := category.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Category.title": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Position(); ok {
		if err := category.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Category.position": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Progress(); ok {
		if err := category.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Category.progress": %w`, err)}
		}
	}
	return nil
}

func (cuo *CategoryUpdateOne) sqlSave(ctx context.Context) (_node *Category, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(category.Table, category.Columns, sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Category.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, category.FieldID)
		for _, f := range fields {
			if !category.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != category.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(category.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Icon(); ok {
		_spec.SetField(category.FieldIcon, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Color(); ok {
		_spec.SetField(category.FieldColor, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Position(); ok {
		_spec.SetField(category.FieldPosition, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedPosition(); ok {
		_spec.AddField(category.FieldPosition, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.Progress(); ok {
		_spec.SetField(category.FieldProgress, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedProgress(); ok {
		_spec.AddField(category.FieldProgress, field.TypeInt, value)
	}
	if cuo.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !cuo.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   category.LessonsTable,
			Columns: []string{category.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Category{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{category.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
