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
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/predicate"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// StudentProgressUpdate is the builder for updating StudentProgress entities.
type StudentProgressUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProgressMutation
}

// Where appends a list predicates to the StudentProgressUpdate builder.
func (_u *StudentProgressUpdate) Where(ps ...predicate.StudentProgress) *StudentProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentNode sets the "current_node" field.
func (_u *StudentProgressUpdate) SetCurrentNode(v string) *StudentProgressUpdate {
	_u.mutation.SetCurrentNode(v)
	return _u
}

// SetNillableCurrentNode sets the "current_node" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableCurrentNode(v *string) *StudentProgressUpdate {
	if v != nil {
		_u.SetCurrentNode(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *StudentProgressUpdate) SetChannel(v string) *StudentProgressUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableChannel(v *string) *StudentProgressUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *StudentProgressUpdate) SetFrustrationLevel(v float64) *StudentProgressUpdate {
	_u.mutation.ResetFrustrationLevel()
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableFrustrationLevel(v *float64) *StudentProgressUpdate {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// AddFrustrationLevel adds value to the "frustration_level" field.
func (_u *StudentProgressUpdate) AddFrustrationLevel(v float64) *StudentProgressUpdate {
	_u.mutation.AddFrustrationLevel(v)
	return _u
}

// SetTotalStudyHours sets the "total_study_hours" field.
func (_u *StudentProgressUpdate) SetTotalStudyHours(v float64) *StudentProgressUpdate {
	_u.mutation.ResetTotalStudyHours()
	_u.mutation.SetTotalStudyHours(v)
	return _u
}

// SetNillableTotalStudyHours sets the "total_study_hours" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableTotalStudyHours(v *float64) *StudentProgressUpdate {
	if v != nil {
		_u.SetTotalStudyHours(*v)
	}
	return _u
}

// AddTotalStudyHours adds value to the "total_study_hours" field.
func (_u *StudentProgressUpdate) AddTotalStudyHours(v float64) *StudentProgressUpdate {
	_u.mutation.AddTotalStudyHours(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StudentProgressUpdate) SetLastActivityAt(v time.Time) *StudentProgressUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableLastActivityAt(v *time.Time) *StudentProgressUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProgressUpdate) SetUpdatedAt(v time.Time) *StudentProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNodeIDs adds the "nodes" edge to the NodeProgress entity by IDs.
func (_u *StudentProgressUpdate) AddNodeIDs(ids ...int) *StudentProgressUpdate {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the NodeProgress entity.
func (_u *StudentProgressUpdate) AddNodes(v ...*NodeProgress) *StudentProgressUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// Mutation returns the StudentProgressMutation object of the builder.
func (_u *StudentProgressUpdate) Mutation() *StudentProgressMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the NodeProgress entity.
func (_u *StudentProgressUpdate) ClearNodes() *StudentProgressUpdate {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to NodeProgress entities by IDs.
func (_u *StudentProgressUpdate) RemoveNodeIDs(ids ...int) *StudentProgressUpdate {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to NodeProgress entities.
func (_u *StudentProgressUpdate) RemoveNodes(v ...*NodeProgress) *StudentProgressUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentprogress.Table, studentprogress.Columns, sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentNode(); ok {
		_spec.SetField(studentprogress.FieldCurrentNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(studentprogress.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationLevel(); ok {
		_spec.AddField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalStudyHours(); ok {
		_spec.SetField(studentprogress.FieldTotalStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyHours(); ok {
		_spec.AddField(studentprogress.FieldTotalStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(studentprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProgressUpdateOne is the builder for updating a single StudentProgress entity.
type StudentProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProgressMutation
}

// SetCurrentNode sets the "current_node" field.
func (_u *StudentProgressUpdateOne) SetCurrentNode(v string) *StudentProgressUpdateOne {
	_u.mutation.SetCurrentNode(v)
	return _u
}

// SetNillableCurrentNode sets the "current_node" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableCurrentNode(v *string) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetCurrentNode(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *StudentProgressUpdateOne) SetChannel(v string) *StudentProgressUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableChannel(v *string) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *StudentProgressUpdateOne) SetFrustrationLevel(v float64) *StudentProgressUpdateOne {
	_u.mutation.ResetFrustrationLevel()
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableFrustrationLevel(v *float64) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// AddFrustrationLevel adds value to the "frustration_level" field.
func (_u *StudentProgressUpdateOne) AddFrustrationLevel(v float64) *StudentProgressUpdateOne {
	_u.mutation.AddFrustrationLevel(v)
	return _u
}

// SetTotalStudyHours sets the "total_study_hours" field.
func (_u *StudentProgressUpdateOne) SetTotalStudyHours(v float64) *StudentProgressUpdateOne {
	_u.mutation.ResetTotalStudyHours()
	_u.mutation.SetTotalStudyHours(v)
	return _u
}

// SetNillableTotalStudyHours sets the "total_study_hours" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableTotalStudyHours(v *float64) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetTotalStudyHours(*v)
	}
	return _u
}

// AddTotalStudyHours adds value to the "total_study_hours" field.
func (_u *StudentProgressUpdateOne) AddTotalStudyHours(v float64) *StudentProgressUpdateOne {
	_u.mutation.AddTotalStudyHours(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StudentProgressUpdateOne) SetLastActivityAt(v time.Time) *StudentProgressUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableLastActivityAt(v *time.Time) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProgressUpdateOne) SetUpdatedAt(v time.Time) *StudentProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNodeIDs adds the "nodes" edge to the NodeProgress entity by IDs.
func (_u *StudentProgressUpdateOne) AddNodeIDs(ids ...int) *StudentProgressUpdateOne {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the NodeProgress entity.
func (_u *StudentProgressUpdateOne) AddNodes(v ...*NodeProgress) *StudentProgressUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// Mutation returns the StudentProgressMutation object of the builder.
func (_u *StudentProgressUpdateOne) Mutation() *StudentProgressMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the NodeProgress entity.
func (_u *StudentProgressUpdateOne) ClearNodes() *StudentProgressUpdateOne {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to NodeProgress entities by IDs.
func (_u *StudentProgressUpdateOne) RemoveNodeIDs(ids ...int) *StudentProgressUpdateOne {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to NodeProgress entities.
func (_u *StudentProgressUpdateOne) RemoveNodes(v ...*NodeProgress) *StudentProgressUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// Where appends a list predicates to the StudentProgressUpdate builder.
func (_u *StudentProgressUpdateOne) Where(ps ...predicate.StudentProgress) *StudentProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProgressUpdateOne) Select(field string, fields ...string) *StudentProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProgress entity.
func (_u *StudentProgressUpdateOne) Save(ctx context.Context) (*StudentProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProgressUpdateOne) SaveX(ctx context.Context) *StudentProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentProgressUpdateOne) sqlSave(ctx context.Context) (_node *StudentProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentprogress.Table, studentprogress.Columns, sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprogress.FieldID)
		for _, f := range fields {
			if !studentprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentNode(); ok {
		_spec.SetField(studentprogress.FieldCurrentNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(studentprogress.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationLevel(); ok {
		_spec.AddField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalStudyHours(); ok {
		_spec.SetField(studentprogress.FieldTotalStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyHours(); ok {
		_spec.AddField(studentprogress.FieldTotalStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(studentprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudentProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
