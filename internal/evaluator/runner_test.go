package evaluator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akoirala/pathwise/internal/assess"
)

// stubEvaluator returns a fixed evaluation or error, optionally after a
// delay, for exercising the runner without an LLM.
type stubEvaluator struct {
	category assess.Category
	eval     *assess.Evaluation
	err      error
	delay    time.Duration
}

func (s *stubEvaluator) Category() assess.Category { return s.category }

func (s *stubEvaluator) Evaluate(ctx context.Context, _ Submission, _ TaskContext) (*assess.Evaluation, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.eval, nil
}

func stubEval(cat assess.Category, score float64) *assess.Evaluation {
	return &assess.Evaluation{Category: cat, OverallScore: score}
}

func TestRunAllCollectsAllCategories(t *testing.T) {
	r := NewRunner(time.Second,
		&stubEvaluator{category: assess.CategoryIdea, eval: stubEval(assess.CategoryIdea, 80)},
		&stubEvaluator{category: assess.CategoryUI, eval: stubEval(assess.CategoryUI, 70)},
		&stubEvaluator{category: assess.CategoryCode, eval: stubEval(assess.CategoryCode, 90)},
	)

	results, errs := r.RunAll(context.Background(), Submission{}, TaskContext{})
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(results) != 3 {
		t.Fatalf("results len = %d, want 3", len(results))
	}
	if results[assess.CategoryCode].OverallScore != 90 {
		t.Errorf("code score = %.0f", results[assess.CategoryCode].OverallScore)
	}
}

func TestRunAllFailureYieldsMissingCategory(t *testing.T) {
	boom := errors.New("provider down")
	r := NewRunner(time.Second,
		&stubEvaluator{category: assess.CategoryIdea, eval: stubEval(assess.CategoryIdea, 80)},
		&stubEvaluator{category: assess.CategoryUI, err: boom},
		&stubEvaluator{category: assess.CategoryCode, eval: stubEval(assess.CategoryCode, 90)},
	)

	results, errs := r.RunAll(context.Background(), Submission{}, TaskContext{})
	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}
	if _, ok := results[assess.CategoryUI]; ok {
		t.Error("failed category must be absent from results")
	}
	if !errors.Is(errs[assess.CategoryUI], boom) {
		t.Errorf("ui err = %v, want wrapped provider error", errs[assess.CategoryUI])
	}
}

func TestRunAllTimesOutSlowEvaluator(t *testing.T) {
	r := NewRunner(20*time.Millisecond,
		&stubEvaluator{category: assess.CategoryIdea, eval: stubEval(assess.CategoryIdea, 80)},
		&stubEvaluator{category: assess.CategoryCode, eval: stubEval(assess.CategoryCode, 90), delay: 500 * time.Millisecond},
	)

	start := time.Now()
	results, errs := r.RunAll(context.Background(), Submission{}, TaskContext{})
	if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
		t.Fatalf("run took %s, timeout not applied", elapsed)
	}

	if _, ok := results[assess.CategoryIdea]; !ok {
		t.Error("fast evaluator should succeed")
	}
	if !errors.Is(errs[assess.CategoryCode], context.DeadlineExceeded) {
		t.Errorf("code err = %v, want deadline exceeded", errs[assess.CategoryCode])
	}
}

func TestRunAllAllFailing(t *testing.T) {
	boom := errors.New("down")
	r := NewRunner(time.Second,
		&stubEvaluator{category: assess.CategoryIdea, err: boom},
		&stubEvaluator{category: assess.CategoryUI, err: boom},
		&stubEvaluator{category: assess.CategoryCode, err: boom},
	)

	results, errs := r.RunAll(context.Background(), Submission{}, TaskContext{})
	if len(results) != 0 {
		t.Fatalf("results = %v, want empty", results)
	}
	if len(errs) != 3 {
		t.Fatalf("errs len = %d, want 3", len(errs))
	}
}
