// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// StudentProgressCreate is the builder for creating a StudentProgress entity.
type StudentProgressCreate struct {
	config
	mutation *StudentProgressMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentProgressCreate) SetStudentID(v string) *StudentProgressCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetCurrentNode sets the "current_node" field.
func (_c *StudentProgressCreate) SetCurrentNode(v string) *StudentProgressCreate {
	_c.mutation.SetCurrentNode(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *StudentProgressCreate) SetChannel(v string) *StudentProgressCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_c *StudentProgressCreate) SetFrustrationLevel(v float64) *StudentProgressCreate {
	_c.mutation.SetFrustrationLevel(v)
	return _c
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_c *StudentProgressCreate) SetNillableFrustrationLevel(v *float64) *StudentProgressCreate {
	if v != nil {
		_c.SetFrustrationLevel(*v)
	}
	return _c
}

// SetTotalStudyHours sets the "total_study_hours" field.
func (_c *StudentProgressCreate) SetTotalStudyHours(v float64) *StudentProgressCreate {
	_c.mutation.SetTotalStudyHours(v)
	return _c
}

// SetNillableTotalStudyHours sets the "total_study_hours" field if the given value is not nil.
func (_c *StudentProgressCreate) SetNillableTotalStudyHours(v *float64) *StudentProgressCreate {
	if v != nil {
		_c.SetTotalStudyHours(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *StudentProgressCreate) SetLastActivityAt(v time.Time) *StudentProgressCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *StudentProgressCreate) SetNillableLastActivityAt(v *time.Time) *StudentProgressCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentProgressCreate) SetCreatedAt(v time.Time) *StudentProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentProgressCreate) SetNillableCreatedAt(v *time.Time) *StudentProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentProgressCreate) SetUpdatedAt(v time.Time) *StudentProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentProgressCreate) SetNillableUpdatedAt(v *time.Time) *StudentProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddNodeIDs adds the "nodes" edge to the NodeProgress entity by IDs.
func (_c *StudentProgressCreate) AddNodeIDs(ids ...int) *StudentProgressCreate {
	_c.mutation.AddNodeIDs(ids...)
	return _c
}

// AddNodes adds the "nodes" edges to the NodeProgress entity.
func (_c *StudentProgressCreate) AddNodes(v ...*NodeProgress) *StudentProgressCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeIDs(ids...)
}

// Mutation returns the StudentProgressMutation object of the builder.
func (_c *StudentProgressCreate) Mutation() *StudentProgressMutation {
	return _c.mutation
}

// Save creates the StudentProgress in the database.
func (_c *StudentProgressCreate) Save(ctx context.Context) (*StudentProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentProgressCreate) SaveX(ctx context.Context) *StudentProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentProgressCreate) defaults() {
	if _, ok := _c.mutation.FrustrationLevel(); !ok {
		v := studentprogress.DefaultFrustrationLevel
		_c.mutation.SetFrustrationLevel(v)
	}
	if _, ok := _c.mutation.TotalStudyHours(); !ok {
		v := studentprogress.DefaultTotalStudyHours
		_c.mutation.SetTotalStudyHours(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := studentprogress.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studentprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentProgressCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentProgress.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := studentprogress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentNode(); !ok {
		return &ValidationError{Name: "current_node", err: errors.New(`ent: missing required field "StudentProgress.current_node"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "StudentProgress.channel"`)}
	}
	if _, ok := _c.mutation.FrustrationLevel(); !ok {
		return &ValidationError{Name: "frustration_level", err: errors.New(`ent: missing required field "StudentProgress.frustration_level"`)}
	}
	if _, ok := _c.mutation.TotalStudyHours(); !ok {
		return &ValidationError{Name: "total_study_hours", err: errors.New(`ent: missing required field "StudentProgress.total_study_hours"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "StudentProgress.last_activity_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudentProgress.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentProgress.updated_at"`)}
	}
	return nil
}

func (_c *StudentProgressCreate) sqlSave(ctx context.Context) (*StudentProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentProgressCreate) createSpec() (*StudentProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentprogress.Table, sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentprogress.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.CurrentNode(); ok {
		_spec.SetField(studentprogress.FieldCurrentNode, field.TypeString, value)
		_node.CurrentNode = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(studentprogress.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.FrustrationLevel(); ok {
		_spec.SetField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
		_node.FrustrationLevel = value
	}
	if value, ok := _c.mutation.TotalStudyHours(); ok {
		_spec.SetField(studentprogress.FieldTotalStudyHours, field.TypeFloat64, value)
		_node.TotalStudyHours = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(studentprogress.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studentprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studentprogress.NodesTable,
			Columns: []string{studentprogress.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudentProgressCreateBulk is the builder for creating many StudentProgress entities in bulk.
type StudentProgressCreateBulk struct {
	config
	err      error
	builders []*StudentProgressCreate
}

// Save creates the StudentProgress entities in the database.
func (_c *StudentProgressCreateBulk) Save(ctx context.Context) ([]*StudentProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentProgressCreateBulk) SaveX(ctx context.Context) []*StudentProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
