// Package path is the service surface of the engine. It wires the
// evaluator fan-out, the score aggregation, the decision policy, and
// the progress store into the operations callers invoke; everything
// outside this package (HTTP, auth, file ingestion) stays outside the
// module.
package path

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/evaluator"
	"github.com/akoirala/pathwise/internal/policy"
	"github.com/akoirala/pathwise/internal/progress"
	"github.com/akoirala/pathwise/internal/recommend"
	"github.com/akoirala/pathwise/internal/store"
)

// Service exposes the engine's operations over a shared catalog,
// progress state, and assessment history.
type Service struct {
	cat         *catalog.Catalog
	progress    *progress.Service
	assessments store.AssessmentRepo
	runner      *evaluator.Runner
	agg         *assess.Aggregator
	th          policy.Thresholds
	engine      *recommend.Engine
}

// NewService wires a Service. The aggregator and decision thresholds
// use the standard calibration.
func NewService(cat *catalog.Catalog, prog *progress.Service, assessments store.AssessmentRepo, runner *evaluator.Runner) *Service {
	th := policy.DefaultThresholds()
	return &Service{
		cat:         cat,
		progress:    prog,
		assessments: assessments,
		runner:      runner,
		agg:         assess.NewAggregator(assess.DefaultConfig()),
		th:          th,
		engine:      recommend.NewEngine(cat, th),
	}
}

// InitializePath builds the onboarding recommendation from the intake
// profile and creates the student's path on the recommended channel.
func (s *Service) InitializePath(ctx context.Context, studentID string, profile recommend.DiagnosticProfile) (*recommend.InitialRecommendation, *store.StudentProgress, error) {
	profile.StudentID = studentID
	rec := s.engine.Initial(profile)

	p, err := s.progress.Initialize(ctx, studentID, rec.Channel)
	if err != nil {
		return nil, nil, err
	}
	return rec, p, nil
}

// Assess runs one submission through the full grading pipeline: fan the
// three evaluators out, aggregate, persist the record, decide the
// channel move, and fold the outcome into the path state. A submission
// without a node targets the student's current node.
//
// When every evaluator fails, the assessment is recorded as failed and
// the path state stays untouched.
func (s *Service) Assess(ctx context.Context, sub evaluator.Submission) (*assess.Result, error) {
	p, err := s.progress.Get(ctx, sub.StudentID)
	if err != nil {
		return nil, err
	}

	nodeID := sub.NodeID
	if nodeID == "" {
		nodeID = p.CurrentNode
	}
	node, err := s.cat.Node(nodeID)
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}
	ch := catalog.Channel(p.Channel)

	evals, evalErrs := s.runner.RunAll(ctx, sub, evaluator.TaskContext{
		Node:    node,
		Channel: ch,
		Task:    node.Task(ch),
	})
	for cat, evalErr := range evalErrs {
		fmt.Fprintf(os.Stderr, "warning: %s evaluator failed: %v\n", cat, evalErr)
	}

	result, err := s.agg.Aggregate(sub.StudentID, nodeID, ch, evals)
	if err != nil {
		if saveErr := s.assessments.Save(ctx, failedRecord(sub.StudentID, nodeID, ch, err)); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record failed assessment: %v\n", saveErr)
		}
		return nil, err
	}

	if err := s.assessments.Save(ctx, recordFromResult(result)); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	retries := 0
	if n := p.Nodes[nodeID]; n != nil {
		retries = n.Retries
	}
	decision := policy.Decide(s.th, result.Mastery(), p.FrustrationLevel, retries)

	if _, err := s.progress.ApplyOutcome(ctx, sub.StudentID, nodeID, progress.Outcome{
		Mastery:     result.Mastery(),
		Passed:      result.Passed(),
		NextChannel: policy.Apply(ch, decision),
	}); err != nil {
		return nil, fmt.Errorf("apply outcome: %w", err)
	}

	return result, nil
}

// RecommendNextStep derives the next-step recommendation from the
// current path state. result may be nil when no fresh assessment
// exists; the channel decision is then Keep.
func (s *Service) RecommendNextStep(ctx context.Context, studentID string, result *assess.Result) (*recommend.PathRecommendation, error) {
	p, err := s.progress.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.engine.NextStep(p, result)
}

// adjustmentHistoryLimit bounds how much assessment history feeds the
// adjustment analysis.
const adjustmentHistoryLimit = 10

// RecommendAdjustment analyzes the recent assessment history together
// with the behavioral signals and recommends a mid-course change.
func (s *Service) RecommendAdjustment(ctx context.Context, studentID string, behavior *recommend.BehavioralSignals) (*recommend.Adjustment, error) {
	p, err := s.progress.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.assessments.ListByStudent(ctx, studentID, adjustmentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load assessment history: %w", err)
	}

	// Records arrive newest first; the trend fit wants oldest first.
	samples := make([]recommend.ScoreSample, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		cats := make(map[assess.Category]float64, len(rec.CategoryScores))
		for c, v := range rec.CategoryScores {
			cats[assess.Category(c)] = v
		}
		samples = append(samples, recommend.ScoreSample{Overall: rec.OverallScore, Categories: cats})
	}

	return s.engine.Adjustment(studentID, catalog.Channel(p.Channel), samples, behavior), nil
}

// GetProgress loads the student's path state.
func (s *Service) GetProgress(ctx context.Context, studentID string) (*store.StudentProgress, error) {
	return s.progress.Get(ctx, studentID)
}

// History returns the student's assessment records, newest first.
func (s *Service) History(ctx context.Context, studentID string, limit int) ([]*store.AssessmentRecord, error) {
	return s.assessments.ListByStudent(ctx, studentID, limit)
}

// ResetProgress deletes the student's path state. Assessment records
// are append-only and survive the reset.
func (s *Service) ResetProgress(ctx context.Context, studentID string) error {
	return s.progress.Reset(ctx, studentID)
}

// recordFromResult flattens an aggregated result into its persisted
// shape.
func recordFromResult(r *assess.Result) *store.AssessmentRecord {
	scores := make(map[string]float64, len(r.CategoryScores))
	for c, v := range r.CategoryScores {
		scores[string(c)] = v
	}
	diagnosis := make([]store.DiagnosisEntry, 0, len(r.Diagnosis))
	for _, d := range r.Diagnosis {
		diagnosis = append(diagnosis, store.DiagnosisEntry{
			Dimension: d.Dimension,
			Issue:     d.Issue,
			Fix:       d.Fix,
			Priority:  d.Priority,
		})
	}
	return &store.AssessmentRecord{
		AssessmentID:   r.AssessmentID,
		StudentID:      r.StudentID,
		NodeID:         r.NodeID,
		Channel:        string(r.Channel),
		OverallScore:   r.OverallScore,
		CategoryScores: scores,
		Level:          string(r.Level),
		Passed:         r.Passed(),
		Diagnosis:      diagnosis,
		Resources:      r.Resources,
		Evidence:       r.EvidenceLinks,
		Feedback:       r.Feedback,
		CreatedAt:      r.CreatedAt,
	}
}

// failedRecord marks an assessment that produced no usable evaluations.
func failedRecord(studentID, nodeID string, ch catalog.Channel, cause error) *store.AssessmentRecord {
	return &store.AssessmentRecord{
		AssessmentID: uuid.NewString(),
		StudentID:    studentID,
		NodeID:       nodeID,
		Channel:      string(ch),
		Level:        "failed",
		Passed:       false,
		Feedback:     cause.Error(),
		CreatedAt:    time.Now().UTC(),
	}
}
