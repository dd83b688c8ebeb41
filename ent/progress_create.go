// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/wordtrail/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (pc *ProgressCreate) SetTotalLessonsCompleted(i int) *ProgressCreate {
	pc.mutation.SetTotalLessonsCompleted(i)
	return pc
}

// SetNillableTotalLessonsCompleted sets the "total_lessons_completed" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableTotalLessonsCompleted(i *int) *ProgressCreate {
	if i != nil {
		pc.SetTotalLessonsCompleted(*i)
	}
	return pc
}

// SetTotalPoints sets the "total_points" field.
func (pc *ProgressCreate) SetTotalPoints(i int) *ProgressCreate {
	pc.mutation.SetTotalPoints(i)
	return pc
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableTotalPoints(i *int) *ProgressCreate {
	if i != nil {
		pc.SetTotalPoints(*i)
	}
	return pc
}

// SetStreak sets the "streak" field.
func (pc *ProgressCreate) SetStreak(i int) *ProgressCreate {
	pc.mutation.SetStreak(i)
	return pc
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableStreak(i *int) *ProgressCreate {
	if i != nil {
		pc.SetStreak(*i)
	}
	return pc
}

// SetLastStudyDate sets the "last_study_date" field.
func (pc *ProgressCreate) SetLastStudyDate(s string) *ProgressCreate {
	pc.mutation.SetLastStudyDate(s)
	return pc
}

// SetNillableLastStudyDate sets the "last_study_date" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableLastStudyDate(s *string) *ProgressCreate {
	if s != nil {
		pc.SetLastStudyDate(*s)
	}
	return pc
}

// Mutation returns the ProgressMutation object of the builder.
func (pc *ProgressCreate) Mutation() *ProgressMutation {
	return pc.mutation
}

// Save creates the Progress in the database.
func (pc *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *ProgressCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *ProgressCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *ProgressCreate) defaults() {
	if _, ok := pc.mutation.TotalLessonsCompleted(); !ok {
		v := progress.DefaultTotalLessonsCompleted
		pc.mutation.SetTotalLessonsCompleted(v)
	}
	if _, ok := pc.mutation.TotalPoints(); !ok {
		v := progress.DefaultTotalPoints
		pc.mutation.SetTotalPoints(v)
	}
	if _, ok := pc.mutation.Streak(); !ok {
		v := progress.DefaultStreak
		pc.mutation.SetStreak(v)
	}
	if _, ok := pc.mutation.LastStudyDate(); !ok {
		v := progress.DefaultLastStudyDate
		pc.mutation.SetLastStudyDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *ProgressCreate) check() error {
	if _, ok := pc.mutation.TotalLessonsCompleted(); !ok {
		return &ValidationError{Name: "total_lessons_completed", err: errors.New(`ent: missing required field "Progress.total_lessons_completed"`)}
	}
	if v, ok := pc.mutation.TotalLessonsCompleted(); ok {
		if err := progress.TotalLessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_lessons_completed", err: fmt.Errorf(`ent: validator failed for field "Progress.total_lessons_completed": %w`, err)}
		}
	}
	if _, ok := pc.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "Progress.total_points"`)}
	}
	if v, ok := pc.mutation.TotalPoints(); ok {
		if err := progress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "Progress.total_points": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Progress.streak"`)}
	}
	if v, ok := pc.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if _, ok := pc.mutation.LastStudyDate(); !ok {
		return &ValidationError{Name: "last_study_date", err: errors.New(`ent: missing required field "Progress.last_study_date"`)}
	}
	return nil
}

func (pc *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := pc.mutation.TotalLessonsCompleted(); ok {
		_spec.SetField(progress.FieldTotalLessonsCompleted, field.TypeInt, value)
		_node.TotalLessonsCompleted = value
	}
	if value, ok := pc.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := pc.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := pc.mutation.LastStudyDate(); ok {
		_spec.SetField(progress.FieldLastStudyDate, field.TypeString, value)
		_node.LastStudyDate = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (pcb *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Progress, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
