// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (lc *LessonCreate) SetLessonID(s string) *LessonCreate {
	lc.mutation.SetLessonID(s)
	return lc
}

// SetTitle sets the "title" field.
func (lc *LessonCreate) SetTitle(s string) *LessonCreate {
	lc.mutation.SetTitle(s)
	return lc
}

// SetPosition sets the "position" field.
func (lc *LessonCreate) SetPosition(i int) *LessonCreate {
	lc.mutation.SetPosition(i)
	return lc
}

// SetCompleted sets the "completed" field.
func (lc *LessonCreate) SetCompleted(b bool) *LessonCreate {
	lc.mutation.SetCompleted(b)
	return lc
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (lc *LessonCreate) SetNillableCompleted(b *bool) *LessonCreate {
	if b != nil {
		lc.SetCompleted(*b)
	}
	return lc
}

// SetLocked sets the "locked" field.
func (lc *LessonCreate) SetLocked(b bool) *LessonCreate {
	lc.mutation.SetLocked(b)
	return lc
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (lc *LessonCreate) SetNillableLocked(b *bool) *LessonCreate {
	if b != nil {
		lc.SetLocked(*b)
	}
	return lc
}

// SetScore sets the "score" field.
func (lc *LessonCreate) SetScore(i int) *LessonCreate {
	lc.mutation.SetScore(i)
	return lc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (lc *LessonCreate) SetNillableScore(i *int) *LessonCreate {
	if i != nil {
		lc.SetScore(*i)
	}
	return lc
}

// SetLastCompleted sets the "last_completed" field.
func (lc *LessonCreate) SetLastCompleted(t time.Time) *LessonCreate {
	lc.mutation.SetLastCompleted(t)
	return lc
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (lc *LessonCreate) SetNillableLastCompleted(t *time.Time) *LessonCreate {
	if t != nil {
		lc.SetLastCompleted(*t)
	}
	return lc
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (lc *LessonCreate) SetCategoryID(id int) *LessonCreate {
	lc.mutation.SetCategoryID(id)
	return lc
}

// SetNillableCategoryID sets the "category" edge to the Category entity by ID if the given value is not nil.
func (lc *LessonCreate) SetNillableCategoryID(id *int) *LessonCreate {
	if id != nil {
		lc = lc.SetCategoryID(*id)
	}
	return lc
}

// SetCategory sets the "category" edge to the Category entity.
func (lc *LessonCreate) SetCategory(c *Category) *LessonCreate {
	return lc.SetCategoryID(c.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (lc *LessonCreate) Mutation() *LessonMutation {
	return lc.mutation
}

// Save creates the Lesson in the database.
func (lc *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	lc.defaults()
	return withHooks(ctx, lc.sqlSave, lc.mutation, lc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lc *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := lc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lc *LessonCreate) Exec(ctx context.Context) error {
	_, err := lc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lc *LessonCreate) ExecX(ctx context.Context) {
	if err := lc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lc *LessonCreate) defaults() {
	if _, ok := lc.mutation.Completed(); !ok {
		v := lesson.DefaultCompleted
		lc.mutation.SetCompleted(v)
	}
	if _, ok := lc.mutation.Locked(); !ok {
		v := lesson.DefaultLocked
		lc.mutation.SetLocked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lc *LessonCreate) check() error {
	if _, ok := lc.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Lesson.lesson_id"`)}
	}
	if v, ok := lc.mutation.LessonID(); ok {
		if err := lesson.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_id": %w`, err)}
		}
	}
	if _, ok := lc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := lc.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := lc.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Lesson.position"`)}
	}
	if v, ok := lc.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	if _, ok := lc.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Lesson.completed"`)}
	}
	if _, ok := lc.mutation.Locked(); !ok {
		return &ValidationError{Name: "locked", err: errors.New(`ent: missing required field "Lesson.locked"`)}
	}
	return nil
}

func (lc *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
	if err := lc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lc.mutation.id = &_node.ID
	lc.mutation.done = true
	return _node, nil
}

func (lc *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: lc.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	)
	if value, ok := lc.mutation.LessonID(); ok {
		_spec.SetField(lesson.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := lc.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := lc.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := lc.mutation.Completed(); ok {
		_spec.SetField(lesson.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := lc.mutation.Locked(); ok {
		_spec.SetField(lesson.FieldLocked, field.TypeBool, value)
		_node.Locked = value
	}
	if value, ok := lc.mutation.Score(); ok {
		_spec.SetField(lesson.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := lc.mutation.LastCompleted(); ok {
		_spec.SetField(lesson.FieldLastCompleted, field.TypeTime, value)
		_node.LastCompleted = &value
	}
	if nodes := lc.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.category_lessons = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (lcb *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if lcb.err != nil {
		return nil, lcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lcb.builders))
	nodes := make([]*Lesson, len(lcb.builders))
	mutators := make([]Mutator, len(lcb.builders))
	for i := range lcb.builders {
		func(i int, root context.Context) {
			builder := lcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
					_, err = mutators[i+1].Mutate(root, lcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lcb *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := lcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lcb *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := lcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcb *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := lcb.Exec(ctx); err != nil {
		panic(err)
	}
}
