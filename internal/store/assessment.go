package store

import (
	"context"
	"fmt"

	"github.com/akoirala/pathwise/ent"
	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/schema"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	diagnosis := make([]schema.DiagnosisEntry, len(rec.Diagnosis))
	for i, d := range rec.Diagnosis {
		diagnosis[i] = schema.DiagnosisEntry{
			Dimension: d.Dimension,
			Issue:     d.Issue,
			Fix:       d.Fix,
			Priority:  d.Priority,
		}
	}

	_, err := r.client.AssessmentRecord.Create().
		SetAssessmentID(rec.AssessmentID).
		SetStudentID(rec.StudentID).
		SetNodeID(rec.NodeID).
		SetChannel(rec.Channel).
		SetOverallScore(rec.OverallScore).
		SetCategoryScores(rec.CategoryScores).
		SetLevel(rec.Level).
		SetPassed(rec.Passed).
		SetDiagnosis(diagnosis).
		SetResources(rec.Resources).
		SetEvidence(rec.Evidence).
		SetFeedback(rec.Feedback).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment record: %w", err)
	}
	return nil
}

func (r *assessmentRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]*AssessmentRecord, error) {
	// Row id breaks created_at ties in insertion order.
	q := r.client.AssessmentRecord.Query().
		Where(assessmentrecord.StudentIDEQ(studentID)).
		Order(ent.Desc(assessmentrecord.FieldCreatedAt), ent.Desc(assessmentrecord.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment records: %w", err)
	}

	out := make([]*AssessmentRecord, len(rows))
	for i, row := range rows {
		out[i] = fromEntAssessment(row)
	}
	return out, nil
}

func (r *assessmentRepo) LatestForNode(ctx context.Context, studentID, nodeID string) (*AssessmentRecord, error) {
	row, err := r.client.AssessmentRecord.Query().
		Where(
			assessmentrecord.StudentIDEQ(studentID),
			assessmentrecord.NodeIDEQ(nodeID),
		).
		Order(ent.Desc(assessmentrecord.FieldCreatedAt), ent.Desc(assessmentrecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query latest assessment: %w", err)
	}
	return fromEntAssessment(row), nil
}

func (r *assessmentRepo) CountFailures(ctx context.Context, studentID, nodeID string) (int, error) {
	n, err := r.client.AssessmentRecord.Query().
		Where(
			assessmentrecord.StudentIDEQ(studentID),
			assessmentrecord.NodeIDEQ(nodeID),
			assessmentrecord.PassedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count failed assessments: %w", err)
	}
	return n, nil
}

func fromEntAssessment(row *ent.AssessmentRecord) *AssessmentRecord {
	diagnosis := make([]DiagnosisEntry, len(row.Diagnosis))
	for i, d := range row.Diagnosis {
		diagnosis[i] = DiagnosisEntry{
			Dimension: d.Dimension,
			Issue:     d.Issue,
			Fix:       d.Fix,
			Priority:  d.Priority,
		}
	}
	return &AssessmentRecord{
		AssessmentID:   row.AssessmentID,
		StudentID:      row.StudentID,
		NodeID:         row.NodeID,
		Channel:        row.Channel,
		OverallScore:   row.OverallScore,
		CategoryScores: row.CategoryScores,
		Level:          row.Level,
		Passed:         row.Passed,
		Diagnosis:      diagnosis,
		Resources:      row.Resources,
		Evidence:       row.Evidence,
		Feedback:       row.Feedback,
		CreatedAt:      row.CreatedAt,
	}
}
