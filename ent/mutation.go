// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/llmrequestevent"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/predicate"
	"github.com/akoirala/pathwise/ent/schema"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentRecord = "AssessmentRecord"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeNodeProgress     = "NodeProgress"
	TypeStudentProgress  = "StudentProgress"
)

// AssessmentRecordMutation represents an operation that mutates the AssessmentRecord nodes in the graph.
type AssessmentRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	assessment_id    *string
	student_id       *string
	node_id          *string
	channel          *string
	overall_score    *float64
	addoverall_score *float64
	category_scores  *map[string]float64
	level            *string
	passed           *bool
	diagnosis        *[]schema.DiagnosisEntry
	appenddiagnosis  []schema.DiagnosisEntry
	resources        *[]string
	appendresources  []string
	evidence         *[]string
	appendevidence   []string
	feedback         *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AssessmentRecord, error)
	predicates       []predicate.AssessmentRecord
}

var _ ent.Mutation = (*AssessmentRecordMutation)(nil)

// assessmentrecordOption allows management of the mutation configuration using functional options.
type assessmentrecordOption func(*AssessmentRecordMutation)

// newAssessmentRecordMutation creates new mutation for the AssessmentRecord entity.
func newAssessmentRecordMutation(c config, op Op, opts ...assessmentrecordOption) *AssessmentRecordMutation {
	m := &AssessmentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentRecordID sets the ID field of the mutation.
func withAssessmentRecordID(id int) assessmentrecordOption {
	return func(m *AssessmentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentRecord
		)
		m.oldValue = func(ctx context.Context) (*AssessmentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentRecord sets the old AssessmentRecord of the mutation.
func withAssessmentRecord(node *AssessmentRecord) assessmentrecordOption {
	return func(m *AssessmentRecordMutation) {
		m.oldValue = func(context.Context) (*AssessmentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AssessmentRecordMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AssessmentRecordMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AssessmentRecordMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *AssessmentRecordMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AssessmentRecordMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AssessmentRecordMutation) ResetStudentID() {
	m.student_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *AssessmentRecordMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *AssessmentRecordMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *AssessmentRecordMutation) ResetNodeID() {
	m.node_id = nil
}

// SetChannel sets the "channel" field.
func (m *AssessmentRecordMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AssessmentRecordMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AssessmentRecordMutation) ResetChannel() {
	m.channel = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *AssessmentRecordMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *AssessmentRecordMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *AssessmentRecordMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *AssessmentRecordMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *AssessmentRecordMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetCategoryScores sets the "category_scores" field.
func (m *AssessmentRecordMutation) SetCategoryScores(value map[string]float64) {
	m.category_scores = &value
}

// CategoryScores returns the value of the "category_scores" field in the mutation.
func (m *AssessmentRecordMutation) CategoryScores() (r map[string]float64, exists bool) {
	v := m.category_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryScores returns the old "category_scores" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldCategoryScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryScores: %w", err)
	}
	return oldValue.CategoryScores, nil
}

// ResetCategoryScores resets all changes to the "category_scores" field.
func (m *AssessmentRecordMutation) ResetCategoryScores() {
	m.category_scores = nil
}

// SetLevel sets the "level" field.
func (m *AssessmentRecordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *AssessmentRecordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AssessmentRecordMutation) ResetLevel() {
	m.level = nil
}

// SetPassed sets the "passed" field.
func (m *AssessmentRecordMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *AssessmentRecordMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *AssessmentRecordMutation) ResetPassed() {
	m.passed = nil
}

// SetDiagnosis sets the "diagnosis" field.
func (m *AssessmentRecordMutation) SetDiagnosis(se []schema.DiagnosisEntry) {
	m.diagnosis = &se
	m.appenddiagnosis = nil
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *AssessmentRecordMutation) Diagnosis() (r []schema.DiagnosisEntry, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldDiagnosis(ctx context.Context) (v []schema.DiagnosisEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// AppendDiagnosis adds se to the "diagnosis" field.
func (m *AssessmentRecordMutation) AppendDiagnosis(se []schema.DiagnosisEntry) {
	m.appenddiagnosis = append(m.appenddiagnosis, se...)
}

// AppendedDiagnosis returns the list of values that were appended to the "diagnosis" field in this mutation.
func (m *AssessmentRecordMutation) AppendedDiagnosis() ([]schema.DiagnosisEntry, bool) {
	if len(m.appenddiagnosis) == 0 {
		return nil, false
	}
	return m.appenddiagnosis, true
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (m *AssessmentRecordMutation) ClearDiagnosis() {
	m.diagnosis = nil
	m.appenddiagnosis = nil
	m.clearedFields[assessmentrecord.FieldDiagnosis] = struct{}{}
}

// DiagnosisCleared returns if the "diagnosis" field was cleared in this mutation.
func (m *AssessmentRecordMutation) DiagnosisCleared() bool {
	_, ok := m.clearedFields[assessmentrecord.FieldDiagnosis]
	return ok
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *AssessmentRecordMutation) ResetDiagnosis() {
	m.diagnosis = nil
	m.appenddiagnosis = nil
	delete(m.clearedFields, assessmentrecord.FieldDiagnosis)
}

// SetResources sets the "resources" field.
func (m *AssessmentRecordMutation) SetResources(s []string) {
	m.resources = &s
	m.appendresources = nil
}

// Resources returns the value of the "resources" field in the mutation.
func (m *AssessmentRecordMutation) Resources() (r []string, exists bool) {
	v := m.resources
	if v == nil {
		return
	}
	return *v, true
}

// OldResources returns the old "resources" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldResources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResources: %w", err)
	}
	return oldValue.Resources, nil
}

// AppendResources adds s to the "resources" field.
func (m *AssessmentRecordMutation) AppendResources(s []string) {
	m.appendresources = append(m.appendresources, s...)
}

// AppendedResources returns the list of values that were appended to the "resources" field in this mutation.
func (m *AssessmentRecordMutation) AppendedResources() ([]string, bool) {
	if len(m.appendresources) == 0 {
		return nil, false
	}
	return m.appendresources, true
}

// ClearResources clears the value of the "resources" field.
func (m *AssessmentRecordMutation) ClearResources() {
	m.resources = nil
	m.appendresources = nil
	m.clearedFields[assessmentrecord.FieldResources] = struct{}{}
}

// ResourcesCleared returns if the "resources" field was cleared in this mutation.
func (m *AssessmentRecordMutation) ResourcesCleared() bool {
	_, ok := m.clearedFields[assessmentrecord.FieldResources]
	return ok
}

// ResetResources resets all changes to the "resources" field.
func (m *AssessmentRecordMutation) ResetResources() {
	m.resources = nil
	m.appendresources = nil
	delete(m.clearedFields, assessmentrecord.FieldResources)
}

// SetEvidence sets the "evidence" field.
func (m *AssessmentRecordMutation) SetEvidence(s []string) {
	m.evidence = &s
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *AssessmentRecordMutation) Evidence() (r []string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldEvidence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds s to the "evidence" field.
func (m *AssessmentRecordMutation) AppendEvidence(s []string) {
	m.appendevidence = append(m.appendevidence, s...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *AssessmentRecordMutation) AppendedEvidence() ([]string, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *AssessmentRecordMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[assessmentrecord.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *AssessmentRecordMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[assessmentrecord.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *AssessmentRecordMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, assessmentrecord.FieldEvidence)
}

// SetFeedback sets the "feedback" field.
func (m *AssessmentRecordMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *AssessmentRecordMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *AssessmentRecordMutation) ResetFeedback() {
	m.feedback = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentRecord entity.
// If the AssessmentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AssessmentRecordMutation builder.
func (m *AssessmentRecordMutation) Where(ps ...predicate.AssessmentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentRecord).
func (m *AssessmentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.assessment_id != nil {
		fields = append(fields, assessmentrecord.FieldAssessmentID)
	}
	if m.student_id != nil {
		fields = append(fields, assessmentrecord.FieldStudentID)
	}
	if m.node_id != nil {
		fields = append(fields, assessmentrecord.FieldNodeID)
	}
	if m.channel != nil {
		fields = append(fields, assessmentrecord.FieldChannel)
	}
	if m.overall_score != nil {
		fields = append(fields, assessmentrecord.FieldOverallScore)
	}
	if m.category_scores != nil {
		fields = append(fields, assessmentrecord.FieldCategoryScores)
	}
	if m.level != nil {
		fields = append(fields, assessmentrecord.FieldLevel)
	}
	if m.passed != nil {
		fields = append(fields, assessmentrecord.FieldPassed)
	}
	if m.diagnosis != nil {
		fields = append(fields, assessmentrecord.FieldDiagnosis)
	}
	if m.resources != nil {
		fields = append(fields, assessmentrecord.FieldResources)
	}
	if m.evidence != nil {
		fields = append(fields, assessmentrecord.FieldEvidence)
	}
	if m.feedback != nil {
		fields = append(fields, assessmentrecord.FieldFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, assessmentrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentrecord.FieldAssessmentID:
		return m.AssessmentID()
	case assessmentrecord.FieldStudentID:
		return m.StudentID()
	case assessmentrecord.FieldNodeID:
		return m.NodeID()
	case assessmentrecord.FieldChannel:
		return m.Channel()
	case assessmentrecord.FieldOverallScore:
		return m.OverallScore()
	case assessmentrecord.FieldCategoryScores:
		return m.CategoryScores()
	case assessmentrecord.FieldLevel:
		return m.Level()
	case assessmentrecord.FieldPassed:
		return m.Passed()
	case assessmentrecord.FieldDiagnosis:
		return m.Diagnosis()
	case assessmentrecord.FieldResources:
		return m.Resources()
	case assessmentrecord.FieldEvidence:
		return m.Evidence()
	case assessmentrecord.FieldFeedback:
		return m.Feedback()
	case assessmentrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentrecord.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case assessmentrecord.FieldStudentID:
		return m.OldStudentID(ctx)
	case assessmentrecord.FieldNodeID:
		return m.OldNodeID(ctx)
	case assessmentrecord.FieldChannel:
		return m.OldChannel(ctx)
	case assessmentrecord.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case assessmentrecord.FieldCategoryScores:
		return m.OldCategoryScores(ctx)
	case assessmentrecord.FieldLevel:
		return m.OldLevel(ctx)
	case assessmentrecord.FieldPassed:
		return m.OldPassed(ctx)
	case assessmentrecord.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case assessmentrecord.FieldResources:
		return m.OldResources(ctx)
	case assessmentrecord.FieldEvidence:
		return m.OldEvidence(ctx)
	case assessmentrecord.FieldFeedback:
		return m.OldFeedback(ctx)
	case assessmentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentrecord.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case assessmentrecord.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case assessmentrecord.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case assessmentrecord.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case assessmentrecord.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case assessmentrecord.FieldCategoryScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryScores(v)
		return nil
	case assessmentrecord.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case assessmentrecord.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case assessmentrecord.FieldDiagnosis:
		v, ok := value.([]schema.DiagnosisEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case assessmentrecord.FieldResources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResources(v)
		return nil
	case assessmentrecord.FieldEvidence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case assessmentrecord.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case assessmentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, assessmentrecord.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentrecord.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentrecord.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentrecord.FieldDiagnosis) {
		fields = append(fields, assessmentrecord.FieldDiagnosis)
	}
	if m.FieldCleared(assessmentrecord.FieldResources) {
		fields = append(fields, assessmentrecord.FieldResources)
	}
	if m.FieldCleared(assessmentrecord.FieldEvidence) {
		fields = append(fields, assessmentrecord.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentRecordMutation) ClearField(name string) error {
	switch name {
	case assessmentrecord.FieldDiagnosis:
		m.ClearDiagnosis()
		return nil
	case assessmentrecord.FieldResources:
		m.ClearResources()
		return nil
	case assessmentrecord.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown AssessmentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentRecordMutation) ResetField(name string) error {
	switch name {
	case assessmentrecord.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case assessmentrecord.FieldStudentID:
		m.ResetStudentID()
		return nil
	case assessmentrecord.FieldNodeID:
		m.ResetNodeID()
		return nil
	case assessmentrecord.FieldChannel:
		m.ResetChannel()
		return nil
	case assessmentrecord.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case assessmentrecord.FieldCategoryScores:
		m.ResetCategoryScores()
		return nil
	case assessmentrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case assessmentrecord.FieldPassed:
		m.ResetPassed()
		return nil
	case assessmentrecord.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case assessmentrecord.FieldResources:
		m.ResetResources()
		return nil
	case assessmentrecord.FieldEvidence:
		m.ResetEvidence()
		return nil
	case assessmentrecord.FieldFeedback:
		m.ResetFeedback()
		return nil
	case assessmentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentRecord edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// NodeProgressMutation represents an operation that mutates the NodeProgress nodes in the graph.
type NodeProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	node_id          *string
	status           *string
	channel          *string
	study_hours      *float64
	addstudy_hours   *float64
	mastery_score    *float64
	addmastery_score *float64
	retries          *int
	addretries       *int
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	student          *int
	clearedstudent   bool
	done             bool
	oldValue         func(context.Context) (*NodeProgress, error)
	predicates       []predicate.NodeProgress
}

var _ ent.Mutation = (*NodeProgressMutation)(nil)

// nodeprogressOption allows management of the mutation configuration using functional options.
type nodeprogressOption func(*NodeProgressMutation)

// newNodeProgressMutation creates new mutation for the NodeProgress entity.
func newNodeProgressMutation(c config, op Op, opts ...nodeprogressOption) *NodeProgressMutation {
	m := &NodeProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeNodeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeProgressID sets the ID field of the mutation.
func withNodeProgressID(id int) nodeprogressOption {
	return func(m *NodeProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *NodeProgress
		)
		m.oldValue = func(ctx context.Context) (*NodeProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NodeProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNodeProgress sets the old NodeProgress of the mutation.
func withNodeProgress(node *NodeProgress) nodeprogressOption {
	return func(m *NodeProgressMutation) {
		m.oldValue = func(context.Context) (*NodeProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NodeProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeID sets the "node_id" field.
func (m *NodeProgressMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *NodeProgressMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *NodeProgressMutation) ResetNodeID() {
	m.node_id = nil
}

// SetStatus sets the "status" field.
func (m *NodeProgressMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *NodeProgressMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NodeProgressMutation) ResetStatus() {
	m.status = nil
}

// SetChannel sets the "channel" field.
func (m *NodeProgressMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NodeProgressMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NodeProgressMutation) ResetChannel() {
	m.channel = nil
}

// SetStudyHours sets the "study_hours" field.
func (m *NodeProgressMutation) SetStudyHours(f float64) {
	m.study_hours = &f
	m.addstudy_hours = nil
}

// StudyHours returns the value of the "study_hours" field in the mutation.
func (m *NodeProgressMutation) StudyHours() (r float64, exists bool) {
	v := m.study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyHours returns the old "study_hours" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldStudyHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyHours: %w", err)
	}
	return oldValue.StudyHours, nil
}

// AddStudyHours adds f to the "study_hours" field.
func (m *NodeProgressMutation) AddStudyHours(f float64) {
	if m.addstudy_hours != nil {
		*m.addstudy_hours += f
	} else {
		m.addstudy_hours = &f
	}
}

// AddedStudyHours returns the value that was added to the "study_hours" field in this mutation.
func (m *NodeProgressMutation) AddedStudyHours() (r float64, exists bool) {
	v := m.addstudy_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyHours resets all changes to the "study_hours" field.
func (m *NodeProgressMutation) ResetStudyHours() {
	m.study_hours = nil
	m.addstudy_hours = nil
}

// SetMasteryScore sets the "mastery_score" field.
func (m *NodeProgressMutation) SetMasteryScore(f float64) {
	m.mastery_score = &f
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *NodeProgressMutation) MasteryScore() (r float64, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldMasteryScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds f to the "mastery_score" field.
func (m *NodeProgressMutation) AddMasteryScore(f float64) {
	if m.addmastery_score != nil {
		*m.addmastery_score += f
	} else {
		m.addmastery_score = &f
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *NodeProgressMutation) AddedMasteryScore() (r float64, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *NodeProgressMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetRetries sets the "retries" field.
func (m *NodeProgressMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *NodeProgressMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *NodeProgressMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *NodeProgressMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *NodeProgressMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetStartedAt sets the "started_at" field.
func (m *NodeProgressMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *NodeProgressMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *NodeProgressMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[nodeprogress.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *NodeProgressMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[nodeprogress.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *NodeProgressMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, nodeprogress.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *NodeProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *NodeProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *NodeProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[nodeprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *NodeProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[nodeprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *NodeProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, nodeprogress.FieldCompletedAt)
}

// SetStudentID sets the "student" edge to the StudentProgress entity by id.
func (m *NodeProgressMutation) SetStudentID(id int) {
	m.student = &id
}

// ClearStudent clears the "student" edge to the StudentProgress entity.
func (m *NodeProgressMutation) ClearStudent() {
	m.clearedstudent = true
}

// StudentCleared reports if the "student" edge to the StudentProgress entity was cleared.
func (m *NodeProgressMutation) StudentCleared() bool {
	return m.clearedstudent
}

// StudentID returns the "student" edge ID in the mutation.
func (m *NodeProgressMutation) StudentID() (id int, exists bool) {
	if m.student != nil {
		return *m.student, true
	}
	return
}

// StudentIDs returns the "student" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudentID instead. It exists only for internal usage by the builders.
func (m *NodeProgressMutation) StudentIDs() (ids []int) {
	if id := m.student; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudent resets all changes to the "student" edge.
func (m *NodeProgressMutation) ResetStudent() {
	m.student = nil
	m.clearedstudent = false
}

// Where appends a list predicates to the NodeProgressMutation builder.
func (m *NodeProgressMutation) Where(ps ...predicate.NodeProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NodeProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NodeProgress).
func (m *NodeProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.node_id != nil {
		fields = append(fields, nodeprogress.FieldNodeID)
	}
	if m.status != nil {
		fields = append(fields, nodeprogress.FieldStatus)
	}
	if m.channel != nil {
		fields = append(fields, nodeprogress.FieldChannel)
	}
	if m.study_hours != nil {
		fields = append(fields, nodeprogress.FieldStudyHours)
	}
	if m.mastery_score != nil {
		fields = append(fields, nodeprogress.FieldMasteryScore)
	}
	if m.retries != nil {
		fields = append(fields, nodeprogress.FieldRetries)
	}
	if m.started_at != nil {
		fields = append(fields, nodeprogress.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, nodeprogress.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nodeprogress.FieldNodeID:
		return m.NodeID()
	case nodeprogress.FieldStatus:
		return m.Status()
	case nodeprogress.FieldChannel:
		return m.Channel()
	case nodeprogress.FieldStudyHours:
		return m.StudyHours()
	case nodeprogress.FieldMasteryScore:
		return m.MasteryScore()
	case nodeprogress.FieldRetries:
		return m.Retries()
	case nodeprogress.FieldStartedAt:
		return m.StartedAt()
	case nodeprogress.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nodeprogress.FieldNodeID:
		return m.OldNodeID(ctx)
	case nodeprogress.FieldStatus:
		return m.OldStatus(ctx)
	case nodeprogress.FieldChannel:
		return m.OldChannel(ctx)
	case nodeprogress.FieldStudyHours:
		return m.OldStudyHours(ctx)
	case nodeprogress.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case nodeprogress.FieldRetries:
		return m.OldRetries(ctx)
	case nodeprogress.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case nodeprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NodeProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nodeprogress.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case nodeprogress.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case nodeprogress.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case nodeprogress.FieldStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyHours(v)
		return nil
	case nodeprogress.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case nodeprogress.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case nodeprogress.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case nodeprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NodeProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeProgressMutation) AddedFields() []string {
	var fields []string
	if m.addstudy_hours != nil {
		fields = append(fields, nodeprogress.FieldStudyHours)
	}
	if m.addmastery_score != nil {
		fields = append(fields, nodeprogress.FieldMasteryScore)
	}
	if m.addretries != nil {
		fields = append(fields, nodeprogress.FieldRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nodeprogress.FieldStudyHours:
		return m.AddedStudyHours()
	case nodeprogress.FieldMasteryScore:
		return m.AddedMasteryScore()
	case nodeprogress.FieldRetries:
		return m.AddedRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nodeprogress.FieldStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyHours(v)
		return nil
	case nodeprogress.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	case nodeprogress.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	}
	return fmt.Errorf("unknown NodeProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nodeprogress.FieldStartedAt) {
		fields = append(fields, nodeprogress.FieldStartedAt)
	}
	if m.FieldCleared(nodeprogress.FieldCompletedAt) {
		fields = append(fields, nodeprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeProgressMutation) ClearField(name string) error {
	switch name {
	case nodeprogress.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case nodeprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NodeProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeProgressMutation) ResetField(name string) error {
	switch name {
	case nodeprogress.FieldNodeID:
		m.ResetNodeID()
		return nil
	case nodeprogress.FieldStatus:
		m.ResetStatus()
		return nil
	case nodeprogress.FieldChannel:
		m.ResetChannel()
		return nil
	case nodeprogress.FieldStudyHours:
		m.ResetStudyHours()
		return nil
	case nodeprogress.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case nodeprogress.FieldRetries:
		m.ResetRetries()
		return nil
	case nodeprogress.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case nodeprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NodeProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.student != nil {
		edges = append(edges, nodeprogress.EdgeStudent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeProgressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case nodeprogress.EdgeStudent:
		if id := m.student; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudent {
		edges = append(edges, nodeprogress.EdgeStudent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeProgressMutation) EdgeCleared(name string) bool {
	switch name {
	case nodeprogress.EdgeStudent:
		return m.clearedstudent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeProgressMutation) ClearEdge(name string) error {
	switch name {
	case nodeprogress.EdgeStudent:
		m.ClearStudent()
		return nil
	}
	return fmt.Errorf("unknown NodeProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeProgressMutation) ResetEdge(name string) error {
	switch name {
	case nodeprogress.EdgeStudent:
		m.ResetStudent()
		return nil
	}
	return fmt.Errorf("unknown NodeProgress edge %s", name)
}

// StudentProgressMutation represents an operation that mutates the StudentProgress nodes in the graph.
type StudentProgressMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	student_id           *string
	current_node         *string
	channel              *string
	frustration_level    *float64
	addfrustration_level *float64
	total_study_hours    *float64
	addtotal_study_hours *float64
	last_activity_at     *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	nodes                map[int]struct{}
	removednodes         map[int]struct{}
	clearednodes         bool
	done                 bool
	oldValue             func(context.Context) (*StudentProgress, error)
	predicates           []predicate.StudentProgress
}

var _ ent.Mutation = (*StudentProgressMutation)(nil)

// studentprogressOption allows management of the mutation configuration using functional options.
type studentprogressOption func(*StudentProgressMutation)

// newStudentProgressMutation creates new mutation for the StudentProgress entity.
func newStudentProgressMutation(c config, op Op, opts ...studentprogressOption) *StudentProgressMutation {
	m := &StudentProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentProgressID sets the ID field of the mutation.
func withStudentProgressID(id int) studentprogressOption {
	return func(m *StudentProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentProgress
		)
		m.oldValue = func(ctx context.Context) (*StudentProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentProgress sets the old StudentProgress of the mutation.
func withStudentProgress(node *StudentProgress) studentprogressOption {
	return func(m *StudentProgressMutation) {
		m.oldValue = func(context.Context) (*StudentProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudentProgressMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudentProgressMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudentProgressMutation) ResetStudentID() {
	m.student_id = nil
}

// SetCurrentNode sets the "current_node" field.
func (m *StudentProgressMutation) SetCurrentNode(s string) {
	m.current_node = &s
}

// CurrentNode returns the value of the "current_node" field in the mutation.
func (m *StudentProgressMutation) CurrentNode() (r string, exists bool) {
	v := m.current_node
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentNode returns the old "current_node" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldCurrentNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentNode: %w", err)
	}
	return oldValue.CurrentNode, nil
}

// ResetCurrentNode resets all changes to the "current_node" field.
func (m *StudentProgressMutation) ResetCurrentNode() {
	m.current_node = nil
}

// SetChannel sets the "channel" field.
func (m *StudentProgressMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *StudentProgressMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *StudentProgressMutation) ResetChannel() {
	m.channel = nil
}

// SetFrustrationLevel sets the "frustration_level" field.
func (m *StudentProgressMutation) SetFrustrationLevel(f float64) {
	m.frustration_level = &f
	m.addfrustration_level = nil
}

// FrustrationLevel returns the value of the "frustration_level" field in the mutation.
func (m *StudentProgressMutation) FrustrationLevel() (r float64, exists bool) {
	v := m.frustration_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFrustrationLevel returns the old "frustration_level" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldFrustrationLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrustrationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrustrationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrustrationLevel: %w", err)
	}
	return oldValue.FrustrationLevel, nil
}

// AddFrustrationLevel adds f to the "frustration_level" field.
func (m *StudentProgressMutation) AddFrustrationLevel(f float64) {
	if m.addfrustration_level != nil {
		*m.addfrustration_level += f
	} else {
		m.addfrustration_level = &f
	}
}

// AddedFrustrationLevel returns the value that was added to the "frustration_level" field in this mutation.
func (m *StudentProgressMutation) AddedFrustrationLevel() (r float64, exists bool) {
	v := m.addfrustration_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrustrationLevel resets all changes to the "frustration_level" field.
func (m *StudentProgressMutation) ResetFrustrationLevel() {
	m.frustration_level = nil
	m.addfrustration_level = nil
}

// SetTotalStudyHours sets the "total_study_hours" field.
func (m *StudentProgressMutation) SetTotalStudyHours(f float64) {
	m.total_study_hours = &f
	m.addtotal_study_hours = nil
}

// TotalStudyHours returns the value of the "total_study_hours" field in the mutation.
func (m *StudentProgressMutation) TotalStudyHours() (r float64, exists bool) {
	v := m.total_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalStudyHours returns the old "total_study_hours" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldTotalStudyHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalStudyHours: %w", err)
	}
	return oldValue.TotalStudyHours, nil
}

// AddTotalStudyHours adds f to the "total_study_hours" field.
func (m *StudentProgressMutation) AddTotalStudyHours(f float64) {
	if m.addtotal_study_hours != nil {
		*m.addtotal_study_hours += f
	} else {
		m.addtotal_study_hours = &f
	}
}

// AddedTotalStudyHours returns the value that was added to the "total_study_hours" field in this mutation.
func (m *StudentProgressMutation) AddedTotalStudyHours() (r float64, exists bool) {
	v := m.addtotal_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalStudyHours resets all changes to the "total_study_hours" field.
func (m *StudentProgressMutation) ResetTotalStudyHours() {
	m.total_study_hours = nil
	m.addtotal_study_hours = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *StudentProgressMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *StudentProgressMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *StudentProgressMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddNodeIDs adds the "nodes" edge to the NodeProgress entity by ids.
func (m *StudentProgressMutation) AddNodeIDs(ids ...int) {
	if m.nodes == nil {
		m.nodes = make(map[int]struct{})
	}
	for i := range ids {
		m.nodes[ids[i]] = struct{}{}
	}
}

// ClearNodes clears the "nodes" edge to the NodeProgress entity.
func (m *StudentProgressMutation) ClearNodes() {
	m.clearednodes = true
}

// NodesCleared reports if the "nodes" edge to the NodeProgress entity was cleared.
func (m *StudentProgressMutation) NodesCleared() bool {
	return m.clearednodes
}

// RemoveNodeIDs removes the "nodes" edge to the NodeProgress entity by IDs.
func (m *StudentProgressMutation) RemoveNodeIDs(ids ...int) {
	if m.removednodes == nil {
		m.removednodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.nodes, ids[i])
		m.removednodes[ids[i]] = struct{}{}
	}
}

// RemovedNodes returns the removed IDs of the "nodes" edge to the NodeProgress entity.
func (m *StudentProgressMutation) RemovedNodesIDs() (ids []int) {
	for id := range m.removednodes {
		ids = append(ids, id)
	}
	return
}

// NodesIDs returns the "nodes" edge IDs in the mutation.
func (m *StudentProgressMutation) NodesIDs() (ids []int) {
	for id := range m.nodes {
		ids = append(ids, id)
	}
	return
}

// ResetNodes resets all changes to the "nodes" edge.
func (m *StudentProgressMutation) ResetNodes() {
	m.nodes = nil
	m.clearednodes = false
	m.removednodes = nil
}

// Where appends a list predicates to the StudentProgressMutation builder.
func (m *StudentProgressMutation) Where(ps ...predicate.StudentProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentProgress).
func (m *StudentProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, studentprogress.FieldStudentID)
	}
	if m.current_node != nil {
		fields = append(fields, studentprogress.FieldCurrentNode)
	}
	if m.channel != nil {
		fields = append(fields, studentprogress.FieldChannel)
	}
	if m.frustration_level != nil {
		fields = append(fields, studentprogress.FieldFrustrationLevel)
	}
	if m.total_study_hours != nil {
		fields = append(fields, studentprogress.FieldTotalStudyHours)
	}
	if m.last_activity_at != nil {
		fields = append(fields, studentprogress.FieldLastActivityAt)
	}
	if m.created_at != nil {
		fields = append(fields, studentprogress.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, studentprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentprogress.FieldStudentID:
		return m.StudentID()
	case studentprogress.FieldCurrentNode:
		return m.CurrentNode()
	case studentprogress.FieldChannel:
		return m.Channel()
	case studentprogress.FieldFrustrationLevel:
		return m.FrustrationLevel()
	case studentprogress.FieldTotalStudyHours:
		return m.TotalStudyHours()
	case studentprogress.FieldLastActivityAt:
		return m.LastActivityAt()
	case studentprogress.FieldCreatedAt:
		return m.CreatedAt()
	case studentprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentprogress.FieldStudentID:
		return m.OldStudentID(ctx)
	case studentprogress.FieldCurrentNode:
		return m.OldCurrentNode(ctx)
	case studentprogress.FieldChannel:
		return m.OldChannel(ctx)
	case studentprogress.FieldFrustrationLevel:
		return m.OldFrustrationLevel(ctx)
	case studentprogress.FieldTotalStudyHours:
		return m.OldTotalStudyHours(ctx)
	case studentprogress.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case studentprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studentprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentprogress.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studentprogress.FieldCurrentNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentNode(v)
		return nil
	case studentprogress.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case studentprogress.FieldFrustrationLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrustrationLevel(v)
		return nil
	case studentprogress.FieldTotalStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalStudyHours(v)
		return nil
	case studentprogress.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case studentprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studentprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentProgressMutation) AddedFields() []string {
	var fields []string
	if m.addfrustration_level != nil {
		fields = append(fields, studentprogress.FieldFrustrationLevel)
	}
	if m.addtotal_study_hours != nil {
		fields = append(fields, studentprogress.FieldTotalStudyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentprogress.FieldFrustrationLevel:
		return m.AddedFrustrationLevel()
	case studentprogress.FieldTotalStudyHours:
		return m.AddedTotalStudyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentprogress.FieldFrustrationLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrustrationLevel(v)
		return nil
	case studentprogress.FieldTotalStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentProgressMutation) ResetField(name string) error {
	switch name {
	case studentprogress.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studentprogress.FieldCurrentNode:
		m.ResetCurrentNode()
		return nil
	case studentprogress.FieldChannel:
		m.ResetChannel()
		return nil
	case studentprogress.FieldFrustrationLevel:
		m.ResetFrustrationLevel()
		return nil
	case studentprogress.FieldTotalStudyHours:
		m.ResetTotalStudyHours()
		return nil
	case studentprogress.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case studentprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studentprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.nodes != nil {
		edges = append(edges, studentprogress.EdgeNodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentProgressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studentprogress.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.nodes))
		for id := range m.nodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednodes != nil {
		edges = append(edges, studentprogress.EdgeNodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentProgressMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studentprogress.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.removednodes))
		for id := range m.removednodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednodes {
		edges = append(edges, studentprogress.EdgeNodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentProgressMutation) EdgeCleared(name string) bool {
	switch name {
	case studentprogress.EdgeNodes:
		return m.clearednodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentProgressMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown StudentProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentProgressMutation) ResetEdge(name string) error {
	switch name {
	case studentprogress.EdgeNodes:
		m.ResetNodes()
		return nil
	}
	return fmt.Errorf("unknown StudentProgress edge %s", name)
}
