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

// NodeProgressUpdate is the builder for updating NodeProgress entities.
type NodeProgressUpdate struct {
	config
	hooks    []Hook
	mutation *NodeProgressMutation
}

// Where appends a list predicates to the NodeProgressUpdate builder.
func (_u *NodeProgressUpdate) Where(ps ...predicate.NodeProgress) *NodeProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeProgressUpdate) SetNodeID(v string) *NodeProgressUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableNodeID(v *string) *NodeProgressUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeProgressUpdate) SetStatus(v string) *NodeProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableStatus(v *string) *NodeProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NodeProgressUpdate) SetChannel(v string) *NodeProgressUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableChannel(v *string) *NodeProgressUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *NodeProgressUpdate) SetStudyHours(v float64) *NodeProgressUpdate {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableStudyHours(v *float64) *NodeProgressUpdate {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *NodeProgressUpdate) AddStudyHours(v float64) *NodeProgressUpdate {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *NodeProgressUpdate) SetMasteryScore(v float64) *NodeProgressUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableMasteryScore(v *float64) *NodeProgressUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *NodeProgressUpdate) AddMasteryScore(v float64) *NodeProgressUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *NodeProgressUpdate) SetRetries(v int) *NodeProgressUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableRetries(v *int) *NodeProgressUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *NodeProgressUpdate) AddRetries(v int) *NodeProgressUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NodeProgressUpdate) SetStartedAt(v time.Time) *NodeProgressUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableStartedAt(v *time.Time) *NodeProgressUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NodeProgressUpdate) ClearStartedAt() *NodeProgressUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NodeProgressUpdate) SetCompletedAt(v time.Time) *NodeProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableCompletedAt(v *time.Time) *NodeProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NodeProgressUpdate) ClearCompletedAt() *NodeProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStudentID sets the "student" edge to the StudentProgress entity by ID.
func (_u *NodeProgressUpdate) SetStudentID(id int) *NodeProgressUpdate {
	_u.mutation.SetStudentID(id)
	return _u
}

// SetStudent sets the "student" edge to the StudentProgress entity.
func (_u *NodeProgressUpdate) SetStudent(v *StudentProgress) *NodeProgressUpdate {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_u *NodeProgressUpdate) Mutation() *NodeProgressMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the StudentProgress entity.
func (_u *NodeProgressUpdate) ClearStudent() *NodeProgressUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeProgressUpdate) check() error {
	if v, ok := _u.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeProgress.student"`)
	}
	return nil
}

func (_u *NodeProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeprogress.Table, nodeprogress.Columns, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nodeprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(nodeprogress.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(nodeprogress.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(nodeprogress.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(nodeprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(nodeprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(nodeprogress.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(nodeprogress.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(nodeprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(nodeprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(nodeprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(nodeprogress.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeProgressUpdateOne is the builder for updating a single NodeProgress entity.
type NodeProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeProgressMutation
}

// SetNodeID sets the "node_id" field.
func (_u *NodeProgressUpdateOne) SetNodeID(v string) *NodeProgressUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableNodeID(v *string) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeProgressUpdateOne) SetStatus(v string) *NodeProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableStatus(v *string) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NodeProgressUpdateOne) SetChannel(v string) *NodeProgressUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableChannel(v *string) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *NodeProgressUpdateOne) SetStudyHours(v float64) *NodeProgressUpdateOne {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableStudyHours(v *float64) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *NodeProgressUpdateOne) AddStudyHours(v float64) *NodeProgressUpdateOne {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *NodeProgressUpdateOne) SetMasteryScore(v float64) *NodeProgressUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableMasteryScore(v *float64) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *NodeProgressUpdateOne) AddMasteryScore(v float64) *NodeProgressUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *NodeProgressUpdateOne) SetRetries(v int) *NodeProgressUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableRetries(v *int) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *NodeProgressUpdateOne) AddRetries(v int) *NodeProgressUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NodeProgressUpdateOne) SetStartedAt(v time.Time) *NodeProgressUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableStartedAt(v *time.Time) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NodeProgressUpdateOne) ClearStartedAt() *NodeProgressUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NodeProgressUpdateOne) SetCompletedAt(v time.Time) *NodeProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NodeProgressUpdateOne) ClearCompletedAt() *NodeProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStudentID sets the "student" edge to the StudentProgress entity by ID.
func (_u *NodeProgressUpdateOne) SetStudentID(id int) *NodeProgressUpdateOne {
	_u.mutation.SetStudentID(id)
	return _u
}

// SetStudent sets the "student" edge to the StudentProgress entity.
func (_u *NodeProgressUpdateOne) SetStudent(v *StudentProgress) *NodeProgressUpdateOne {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_u *NodeProgressUpdateOne) Mutation() *NodeProgressMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the StudentProgress entity.
func (_u *NodeProgressUpdateOne) ClearStudent() *NodeProgressUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// Where appends a list predicates to the NodeProgressUpdate builder.
func (_u *NodeProgressUpdateOne) Where(ps ...predicate.NodeProgress) *NodeProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeProgressUpdateOne) Select(field string, fields ...string) *NodeProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeProgress entity.
func (_u *NodeProgressUpdateOne) Save(ctx context.Context) (*NodeProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeProgressUpdateOne) SaveX(ctx context.Context) *NodeProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeProgressUpdateOne) check() error {
	if v, ok := _u.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeProgress.student"`)
	}
	return nil
}

func (_u *NodeProgressUpdateOne) sqlSave(ctx context.Context) (_node *NodeProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeprogress.Table, nodeprogress.Columns, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeprogress.FieldID)
		for _, f := range fields {
			if !nodeprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeprogress.FieldID {
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
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nodeprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(nodeprogress.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(nodeprogress.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(nodeprogress.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(nodeprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(nodeprogress.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(nodeprogress.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(nodeprogress.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(nodeprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(nodeprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(nodeprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(nodeprogress.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NodeProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
