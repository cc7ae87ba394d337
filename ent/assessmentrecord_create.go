// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/schema"
)

// AssessmentRecordCreate is the builder for creating a AssessmentRecord entity.
type AssessmentRecordCreate struct {
	config
	mutation *AssessmentRecordMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentRecordCreate) SetAssessmentID(v string) *AssessmentRecordCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AssessmentRecordCreate) SetStudentID(v string) *AssessmentRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *AssessmentRecordCreate) SetNodeID(v string) *AssessmentRecordCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AssessmentRecordCreate) SetChannel(v string) *AssessmentRecordCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *AssessmentRecordCreate) SetOverallScore(v float64) *AssessmentRecordCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *AssessmentRecordCreate) SetCategoryScores(v map[string]float64) *AssessmentRecordCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AssessmentRecordCreate) SetLevel(v string) *AssessmentRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *AssessmentRecordCreate) SetPassed(v bool) *AssessmentRecordCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *AssessmentRecordCreate) SetDiagnosis(v []schema.DiagnosisEntry) *AssessmentRecordCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetResources sets the "resources" field.
func (_c *AssessmentRecordCreate) SetResources(v []string) *AssessmentRecordCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *AssessmentRecordCreate) SetEvidence(v []string) *AssessmentRecordCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AssessmentRecordCreate) SetFeedback(v string) *AssessmentRecordCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableFeedback(v *string) *AssessmentRecordCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentRecordCreate) SetCreatedAt(v time.Time) *AssessmentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentRecordCreate) SetNillableCreatedAt(v *time.Time) *AssessmentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentRecordMutation object of the builder.
func (_c *AssessmentRecordCreate) Mutation() *AssessmentRecordMutation {
	return _c.mutation
}

// Save creates the AssessmentRecord in the database.
func (_c *AssessmentRecordCreate) Save(ctx context.Context) (*AssessmentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentRecordCreate) SaveX(ctx context.Context) *AssessmentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentRecordCreate) defaults() {
	if _, ok := _c.mutation.Feedback(); !ok {
		v := assessmentrecord.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentRecordCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AssessmentRecord.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessmentrecord.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRecord.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AssessmentRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := assessmentrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "AssessmentRecord.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := assessmentrecord.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRecord.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "AssessmentRecord.channel"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "AssessmentRecord.overall_score"`)}
	}
	if _, ok := _c.mutation.CategoryScores(); !ok {
		return &ValidationError{Name: "category_scores", err: errors.New(`ent: missing required field "AssessmentRecord.category_scores"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AssessmentRecord.level"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "AssessmentRecord.passed"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "AssessmentRecord.feedback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssessmentRecord.created_at"`)}
	}
	return nil
}

func (_c *AssessmentRecordCreate) sqlSave(ctx context.Context) (*AssessmentRecord, error) {
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

func (_c *AssessmentRecordCreate) createSpec() (*AssessmentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentrecord.Table, sqlgraph.NewFieldSpec(assessmentrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentrecord.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(assessmentrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(assessmentrecord.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(assessmentrecord.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(assessmentrecord.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(assessmentrecord.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(assessmentrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(assessmentrecord.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(assessmentrecord.FieldDiagnosis, field.TypeJSON, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(assessmentrecord.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(assessmentrecord.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(assessmentrecord.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AssessmentRecordCreateBulk is the builder for creating many AssessmentRecord entities in bulk.
type AssessmentRecordCreateBulk struct {
	config
	err      error
	builders []*AssessmentRecordCreate
}

// Save creates the AssessmentRecord entities in the database.
func (_c *AssessmentRecordCreateBulk) Save(ctx context.Context) ([]*AssessmentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentRecordMutation)
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
func (_c *AssessmentRecordCreateBulk) SaveX(ctx context.Context) []*AssessmentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
