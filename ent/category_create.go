// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
)

// CategoryCreate is the builder for creating a Category entity.
type CategoryCreate struct {
	config
	mutation *CategoryMutation
	hooks    []Hook
}

// SetCategoryID sets the "category_id" field.
func (cc *CategoryCreate) SetCategoryID(s string) *CategoryCreate {
	cc.mutation.SetCategoryID(s)
	return cc
}

// SetTitle sets the "title" field.
func (cc *CategoryCreate) SetTitle(s string) *CategoryCreate {
	cc.mutation.SetTitle(s)
	return cc
}

// SetIcon sets the "icon" field.
func (cc *CategoryCreate) SetIcon(s string) *CategoryCreate {
	cc.mutation.SetIcon(s)
	return cc
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (cc *CategoryCreate) SetNillableIcon(s *string) *CategoryCreate {
	if s != nil {
		cc.SetIcon(*s)
	}
	return cc
}

// SetColor sets the "color" field.
func (cc *CategoryCreate) SetColor(s string) *CategoryCreate {
	cc.mutation.SetColor(s)
	return cc
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (cc *CategoryCreate) SetNillableColor(s *string) *CategoryCreate {
	if s != nil {
		cc.SetColor(*s)
	}
	return cc
}

// SetPosition sets the "position" field.
func (cc *CategoryCreate) SetPosition(i int) *CategoryCreate {
	cc.mutation.SetPosition(i)
	return cc
}

// SetProgress sets the "progress" field.
func (cc *CategoryCreate) SetProgress(i int) *CategoryCreate {
	cc.mutation.SetProgress(i)
	return cc
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (cc *CategoryCreate) SetNillableProgress(i *int) *CategoryCreate {
	if i != nil {
		cc.SetProgress(*i)
	}
	return cc
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (cc *CategoryCreate) AddLessonIDs(ids ...int) *CategoryCreate {
	cc.mutation.AddLessonIDs(ids...)
	return cc
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (cc *CategoryCreate) AddLessons(l ...*Lesson) *CategoryCreate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return cc.AddLessonIDs(ids...)
}

// Mutation returns the CategoryMutation object of the builder.
func (cc *CategoryCreate) Mutation() *CategoryMutation {
	return cc.mutation
}

// Save creates the Category in the database.
func (cc *CategoryCreate) Save(ctx context.Context) (*Category, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *CategoryCreate) SaveX(ctx context.Context) *Category {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *CategoryCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *CategoryCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *CategoryCreate) defaults() {
	if _, ok := cc.mutation.Icon(); !ok {
		v := category.DefaultIcon
		cc.mutation.SetIcon(v)
	}
	if _, ok := cc.mutation.Color(); !ok {
		v := category.DefaultColor
		cc.mutation.SetColor(v)
	}
	if _, ok := cc.mutation.Progress(); !ok {
		v := category.DefaultProgress
		cc.mutation.SetProgress(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *CategoryCreate) check() error {
	if _, ok := cc.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Category.category_id"`)}
	}
	if v, ok := cc.mutation.CategoryID(); ok {
		if err := category.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Category.category_id": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Category.title"`)}
	}
	if v, ok := cc.mutation.Title(); ok {
		if err := category.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Category.title": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "Category.icon"`)}
	}
	if _, ok := cc.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`ent: missing required field "Category.color"`)}
	}
	if _, ok := cc.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Category.position"`)}
	}
	if v, ok := cc.mutation.Position(); ok {
		if err := category.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Category.position": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Category.progress"`)}
	}
	if v, ok := cc.mutation.Progress(); ok {
		if err := category.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Category.progress": %w`, err)}
		}
	}
	return nil
}

func (cc *CategoryCreate) sqlSave(ctx context.Context) (*Category, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *CategoryCreate) createSpec() (*Category, *sqlgraph.CreateSpec) {
	var (
		_node = &Category{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(category.Table, sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt))
	)
	if value, ok := cc.mutation.CategoryID(); ok {
		_spec.SetField(category.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := cc.mutation.Title(); ok {
		_spec.SetField(category.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cc.mutation.Icon(); ok {
		_spec.SetField(category.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := cc.mutation.Color(); ok {
		_spec.SetField(category.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := cc.mutation.Position(); ok {
		_spec.SetField(category.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := cc.mutation.Progress(); ok {
		_spec.SetField(category.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if nodes := cc.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CategoryCreateBulk is the builder for creating many Category entities in bulk.
type CategoryCreateBulk struct {
	config
	err      error
	builders []*CategoryCreate
}

// Save creates the Category entities in the database.
func (ccb *CategoryCreateBulk) Save(ctx context.Context) ([]*Category, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Category, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *CategoryCreateBulk) SaveX(ctx context.Context) []*Category {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *CategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *CategoryCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
