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

// NodeProgressCreate is the builder for creating a NodeProgress entity.
type NodeProgressCreate struct {
	config
	mutation *NodeProgressMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *NodeProgressCreate) SetNodeID(v string) *NodeProgressCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NodeProgressCreate) SetStatus(v string) *NodeProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *NodeProgressCreate) SetChannel(v string) *NodeProgressCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetStudyHours sets the "study_hours" field.
func (_c *NodeProgressCreate) SetStudyHours(v float64) *NodeProgressCreate {
	_c.mutation.SetStudyHours(v)
	return _c
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableStudyHours(v *float64) *NodeProgressCreate {
	if v != nil {
		_c.SetStudyHours(*v)
	}
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *NodeProgressCreate) SetMasteryScore(v float64) *NodeProgressCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableMasteryScore(v *float64) *NodeProgressCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *NodeProgressCreate) SetRetries(v int) *NodeProgressCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableRetries(v *int) *NodeProgressCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *NodeProgressCreate) SetStartedAt(v time.Time) *NodeProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableStartedAt(v *time.Time) *NodeProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *NodeProgressCreate) SetCompletedAt(v time.Time) *NodeProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableCompletedAt(v *time.Time) *NodeProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetStudentID sets the "student" edge to the StudentProgress entity by ID.
func (_c *NodeProgressCreate) SetStudentID(id int) *NodeProgressCreate {
	_c.mutation.SetStudentID(id)
	return _c
}

// SetStudent sets the "student" edge to the StudentProgress entity.
func (_c *NodeProgressCreate) SetStudent(v *StudentProgress) *NodeProgressCreate {
	return _c.SetStudentID(v.ID)
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_c *NodeProgressCreate) Mutation() *NodeProgressMutation {
	return _c.mutation
}

// Save creates the NodeProgress in the database.
func (_c *NodeProgressCreate) Save(ctx context.Context) (*NodeProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeProgressCreate) SaveX(ctx context.Context) *NodeProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeProgressCreate) defaults() {
	if _, ok := _c.mutation.StudyHours(); !ok {
		v := nodeprogress.DefaultStudyHours
		_c.mutation.SetStudyHours(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := nodeprogress.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := nodeprogress.DefaultRetries
		_c.mutation.SetRetries(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeProgressCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "NodeProgress.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NodeProgress.status"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "NodeProgress.channel"`)}
	}
	if _, ok := _c.mutation.StudyHours(); !ok {
		return &ValidationError{Name: "study_hours", err: errors.New(`ent: missing required field "NodeProgress.study_hours"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "NodeProgress.mastery_score"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "NodeProgress.retries"`)}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required edge "NodeProgress.student"`)}
	}
	return nil
}

func (_c *NodeProgressCreate) sqlSave(ctx context.Context) (*NodeProgress, error) {
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

func (_c *NodeProgressCreate) createSpec() (*NodeProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &NodeProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nodeprogress.Table, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(nodeprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(nodeprogress.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.StudyHours(); ok {
		_spec.SetField(nodeprogress.FieldStudyHours, field.TypeFloat64, value)
		_node.StudyHours = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(nodeprogress.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(nodeprogress.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(nodeprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(nodeprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nodeprogress.StudentTable,
			Columns: []string{nodeprogress.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.student_progress_nodes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NodeProgressCreateBulk is the builder for creating many NodeProgress entities in bulk.
type NodeProgressCreateBulk struct {
	config
	err      error
	builders []*NodeProgressCreate
}

// Save creates the NodeProgress entities in the database.
func (_c *NodeProgressCreateBulk) Save(ctx context.Context) ([]*NodeProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NodeProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeProgressMutation)
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
func (_c *NodeProgressCreateBulk) SaveX(ctx context.Context) []*NodeProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
