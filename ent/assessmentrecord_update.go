// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/predicate"
)

// AssessmentRecordUpdate is the builder for updating AssessmentRecord entities.
type AssessmentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentRecordMutation
}

// Where appends a list predicates to the AssessmentRecordUpdate builder.
func (_u *AssessmentRecordUpdate) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_u *AssessmentRecordUpdate) Mutation() *AssessmentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentrecord.Table, assessmentrecord.Columns, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(assessmentrecord.FieldDiagnosis, field.TypeJSON)
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(assessmentrecord.FieldResources, field.TypeJSON)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(assessmentrecord.FieldEvidence, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentRecordUpdateOne is the builder for updating a single AssessmentRecord entity.
type AssessmentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentRecordMutation
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_u *AssessmentRecordUpdateOne) Mutation() *AssessmentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentRecordUpdate builder.
func (_u *AssessmentRecordUpdateOne) Where(ps ...predicate.AssessmentRecord) *AssessmentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentRecordUpdateOne) Select(field string, fields ...string) *AssessmentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentRecord entity.
func (_u *AssessmentRecordUpdateOne) Save(ctx context.Context) (*AssessmentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRecordUpdateOne) SaveX(ctx context.Context) *AssessmentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentrecord.Table, assessmentrecord.Columns, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentrecord.FieldID)
		for _, f := range fields {
			if !assessmentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentrecord.FieldID {
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
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(assessmentrecord.FieldDiagnosis, field.TypeJSON)
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(assessmentrecord.FieldResources, field.TypeJSON)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(assessmentrecord.FieldEvidence, field.TypeJSON)
	}
	_node = &AssessmentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
