package assess

import (
	"errors"
	"strings"
	"testing"

	"github.com/akoirala/pathwise/internal/catalog"
)

func eval(cat Category, score float64, diag ...Diagnosis) *Evaluation {
	return &Evaluation{
		Category:     cat,
		OverallScore: score,
		Diagnosis:    diag,
	}
}

func TestAggregateWeights(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	res, err := a.Aggregate("s1", "api_calling", catalog.ChannelB, map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 80),
		CategoryUI:   eval(CategoryUI, 70),
		CategoryCode: eval(CategoryCode, 90),
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	// 0.30*80 + 0.30*70 + 0.40*90 = 81.0
	if res.OverallScore != 81.0 {
		t.Errorf("overall = %.1f, want 81.0", res.OverallScore)
	}
	if res.Level != LevelPass {
		t.Errorf("level = %s, want %s", res.Level, LevelPass)
	}
	if res.AssessmentID == "" {
		t.Error("missing assessment id")
	}
}

func TestAggregateSubstitutesMissingCategory(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	res, err := a.Aggregate("s1", "api_calling", catalog.ChannelB, map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 90),
		CategoryCode: eval(CategoryCode, 90),
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	if res.CategoryScores[CategoryUI] != 50 {
		t.Errorf("substituted ui score = %.0f, want 50", res.CategoryScores[CategoryUI])
	}
	// 0.30*90 + 0.30*50 + 0.40*90 = 78.0
	if res.OverallScore != 78.0 {
		t.Errorf("overall = %.1f, want 78.0", res.OverallScore)
	}

	found := false
	for _, e := range res.EvidenceLinks {
		if strings.Contains(e, "substituted:ui") {
			found = true
		}
	}
	if !found {
		t.Errorf("evidence missing substitution marker: %v", res.EvidenceLinks)
	}
}

func TestAggregateAllMissingFails(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	_, err := a.Aggregate("s1", "api_calling", catalog.ChannelA, map[Category]*Evaluation{})
	if err == nil {
		t.Fatal("expected error for all-missing evaluations")
	}
	var aggErr *AggregationError
	if !errors.As(err, &aggErr) {
		t.Errorf("error type = %T, want *AggregationError", err)
	}
}

// TestAggregateOrderIndependent feeds the same evaluations under every
// arrival permutation and asserts the score and verdict never change.
func TestAggregateOrderIndependent(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	evals := map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 72, Diagnosis{Dimension: "idea.clarity", Issue: "vague goal", Fix: "state the goal", Priority: 2}),
		CategoryUI:   eval(CategoryUI, 64, Diagnosis{Dimension: "ui.accessibility", Issue: "low contrast", Fix: "raise contrast", Priority: 1}),
		CategoryCode: eval(CategoryCode, 88),
	}

	first, err := a.Aggregate("s1", "api_calling", catalog.ChannelB, evals)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	for i := 0; i < 10; i++ {
		// Map iteration order varies between runs; the inputs are the
		// same map, so any internal ordering sensitivity would show up.
		res, err := a.Aggregate("s1", "api_calling", catalog.ChannelB, evals)
		if err != nil {
			t.Fatalf("Aggregate error: %v", err)
		}
		if res.OverallScore != first.OverallScore {
			t.Fatalf("run %d: overall %.1f != %.1f", i, res.OverallScore, first.OverallScore)
		}
		if res.ExitRule.PassStatus != first.ExitRule.PassStatus {
			t.Fatalf("run %d: pass status flipped", i)
		}
		if len(res.Diagnosis) != len(first.Diagnosis) {
			t.Fatalf("run %d: diagnosis length %d != %d", i, len(res.Diagnosis), len(first.Diagnosis))
		}
	}
}

func TestMergeDiagnosisDedupAndOrder(t *testing.T) {
	in := []Diagnosis{
		{Dimension: "code.correctness", Issue: "syntax error", Fix: "fix it", Priority: 3},
		{Dimension: "ui.accessibility", Issue: "low contrast", Fix: "raise contrast", Priority: 1},
		{Dimension: "code.correctness", Issue: "syntax error", Fix: "fix it again", Priority: 2},
		{Dimension: "idea.clarity", Issue: "vague goal", Fix: "state the goal", Priority: 2},
	}

	out := mergeDiagnosis(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 after dedup", len(out))
	}
	if out[0].Dimension != "ui.accessibility" {
		t.Errorf("out[0] = %s, want ui.accessibility (priority 1 first)", out[0].Dimension)
	}
	// The duplicate (code.correctness, syntax error) keeps its
	// highest-priority copy.
	for _, d := range out {
		if d.Dimension == "code.correctness" && d.Priority != 2 {
			t.Errorf("dedup kept priority %d, want 2", d.Priority)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].Priority < out[i-1].Priority {
			t.Errorf("diagnosis not sorted by priority: %v", out)
		}
	}
}

func TestExitRuleExcellent(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	res, err := a.Aggregate("s1", "rag_system", catalog.ChannelB, map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 90),
		CategoryUI:   eval(CategoryUI, 88),
		CategoryCode: eval(CategoryCode, 92),
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	if !res.ExitRule.PassStatus {
		t.Error("expected pass")
	}
	if res.ExitRule.RecommendedChannel != catalog.ChannelC {
		t.Errorf("channel = %s, want C", res.ExitRule.RecommendedChannel)
	}
	if len(res.ExitRule.UnlockNodes) == 0 {
		t.Error("excellent result should unlock advanced nodes")
	}
	if res.ExitRule.RequireRemediation {
		t.Error("pass must not require remediation")
	}
	if res.Level != LevelExcellent {
		t.Errorf("level = %s, want excellent", res.Level)
	}
}

func TestExitRuleFail(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	res, err := a.Aggregate("s1", "rag_system", catalog.ChannelB, map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 40),
		CategoryUI:   eval(CategoryUI, 45, Diagnosis{Dimension: "ui.accessibility", Issue: "low contrast", Fix: "raise contrast", Priority: 1}),
		CategoryCode: eval(CategoryCode, 50),
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	if res.ExitRule.PassStatus {
		t.Error("expected fail")
	}
	if res.ExitRule.RecommendedChannel != catalog.ChannelA {
		t.Errorf("channel = %s, want A", res.ExitRule.RecommendedChannel)
	}
	if !res.ExitRule.RequireRemediation {
		t.Error("fail must require remediation")
	}
	if len(res.ExitRule.Remedy) == 0 {
		t.Error("fail must carry remedy actions")
	}
	if len(res.Resources) == 0 {
		t.Error("failing categories should recommend resources")
	}
}

func TestRecommendResources(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	scores := map[Category]float64{
		CategoryIdea: 90,
		CategoryUI:   55,
		CategoryCode: 90,
	}
	diag := []Diagnosis{
		{Dimension: "ui.accessibility", Issue: "insufficient contrast on buttons", Fix: "raise contrast", Priority: 1},
	}

	res := a.recommendResources(scores, diag)
	if len(res) == 0 {
		t.Fatal("expected resources")
	}
	if len(res) > a.cfg.MaxResources {
		t.Errorf("resources exceed cap: %d", len(res))
	}

	seen := make(map[string]bool)
	hasContrast := false
	hasIdea := false
	for _, r := range res {
		if seen[r] {
			t.Errorf("duplicate resource %q", r)
		}
		seen[r] = true
		if strings.Contains(r, "contrast") {
			hasContrast = true
		}
		if strings.Contains(r, "problem statement") {
			hasIdea = true
		}
	}
	if !hasContrast {
		t.Error("contrast keyword should trigger the contrast reference")
	}
	if hasIdea {
		t.Error("idea bundle should not fire at score 90")
	}
}

func TestFeedbackTiers(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	scores := map[Category]float64{CategoryIdea: 90, CategoryUI: 90, CategoryCode: 90}

	if fb := a.feedback(90, scores, nil); !strings.Contains(fb, "Excellent") {
		t.Errorf("excellent tier wording missing: %q", fb)
	}
	if fb := a.feedback(70, scores, nil); !strings.Contains(fb, "checkpoint is passed") {
		t.Errorf("pass tier wording missing: %q", fb)
	}
	if fb := a.feedback(40, scores, nil); !strings.Contains(fb, "below the pass threshold") {
		t.Errorf("fail tier wording missing: %q", fb)
	}
}

func TestClampScore(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	res, err := a.Aggregate("s1", "api_calling", catalog.ChannelA, map[Category]*Evaluation{
		CategoryIdea: eval(CategoryIdea, 140),
		CategoryUI:   eval(CategoryUI, -20),
		CategoryCode: eval(CategoryCode, 100),
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if res.CategoryScores[CategoryIdea] != 100 {
		t.Errorf("idea = %.0f, want clamped 100", res.CategoryScores[CategoryIdea])
	}
	if res.CategoryScores[CategoryUI] != 0 {
		t.Errorf("ui = %.0f, want clamped 0", res.CategoryScores[CategoryUI])
	}
}
