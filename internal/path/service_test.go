package path

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/evaluator"
	"github.com/akoirala/pathwise/internal/llm"
	"github.com/akoirala/pathwise/internal/policy"
	"github.com/akoirala/pathwise/internal/progress"
	"github.com/akoirala/pathwise/internal/recommend"
	"github.com/akoirala/pathwise/internal/store"
)

var categoryDimensions = map[assess.Category][]string{
	assess.CategoryIdea: {"innovation", "feasibility", "learning_value"},
	assess.CategoryUI:   {"compliance", "usability", "information_arch"},
	assess.CategoryCode: {"correctness", "readability", "architecture", "performance"},
}

// gradeResponse builds a canned evaluator response scoring every
// dimension of the category the same.
func gradeResponse(cat assess.Category, score float64) llm.MockResponse {
	var dims []string
	for _, d := range categoryDimensions[cat] {
		dims = append(dims, fmt.Sprintf(`{"dimension": %q, "score": %.0f}`, d, score))
	}
	return llm.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"dimensions": [%s]}`, strings.Join(dims, ","))),
	}
}

// newTestService wires a Service over memory repos and mock providers.
// The responses maps hold the canned scores per category; a category
// with no responses simulates an unavailable evaluator.
func newTestService(t *testing.T, responses map[assess.Category][]llm.MockResponse) *Service {
	t.Helper()
	cat := catalog.MustDefault()
	prog := progress.NewService(store.NewMemProgressRepo(), cat)

	idea := llm.NewMockProvider(responses[assess.CategoryIdea]...)
	ui := llm.NewMockProvider(responses[assess.CategoryUI]...)
	code := llm.NewMockProvider(responses[assess.CategoryCode]...)
	runner := evaluator.NewRunner(time.Second,
		evaluator.NewIdeaEvaluator(idea),
		evaluator.NewUIEvaluator(ui),
		evaluator.NewCodeEvaluator(code),
	)

	return NewService(cat, prog, store.NewMemAssessmentRepo(), runner)
}

func uniformResponses(score float64) map[assess.Category][]llm.MockResponse {
	out := make(map[assess.Category][]llm.MockResponse)
	for _, cat := range assess.AllCategories() {
		out[cat] = []llm.MockResponse{gradeResponse(cat, score)}
	}
	return out
}

func initStudent(t *testing.T, s *Service, level recommend.LearnerLevel) *store.StudentProgress {
	t.Helper()
	_, p, err := s.InitializePath(context.Background(), "s1", recommend.DiagnosticProfile{
		Level:           level,
		TimeBudgetHours: 6,
	})
	require.NoError(t, err)
	return p
}

func submission() evaluator.Submission {
	return evaluator.Submission{
		StudentID:  "s1",
		ConceptDoc: "an LLM-backed study planner",
		UIArtifact: "wireframes.png",
		Code:       "package planner",
	}
}

func TestInitializePathSeedsChannelFromProfile(t *testing.T) {
	s := newTestService(t, nil)
	rec, p, err := s.InitializePath(context.Background(), "s1", recommend.DiagnosticProfile{
		Level:           recommend.LevelL0,
		TimeBudgetHours: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.ChannelA, rec.Channel)
	assert.Equal(t, "A", p.Channel)
	assert.Equal(t, "api_calling", p.CurrentNode)
	assert.Equal(t, "s1", rec.StudentID)

	_, _, err = s.InitializePath(context.Background(), "s1", recommend.DiagnosticProfile{Level: recommend.LevelL3})
	assert.ErrorIs(t, err, progress.ErrAlreadyInitialized)
}

func TestAssessExcellentUpgradesAndAdvances(t *testing.T) {
	s := newTestService(t, uniformResponses(90))
	initStudent(t, s, recommend.LevelL1)

	result, err := s.Assess(context.Background(), submission())
	require.NoError(t, err)

	assert.Equal(t, 90.0, result.OverallScore)
	assert.Equal(t, assess.LevelExcellent, result.Level)
	assert.True(t, result.Passed())
	assert.Equal(t, catalog.ChannelC, result.ExitRule.RecommendedChannel)
	assert.NotEmpty(t, result.ExitRule.UnlockNodes)

	p, err := s.GetProgress(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "C", p.Channel, "mastery 0.90 with zero frustration upgrades")
	assert.Equal(t, "model_deployment", p.CurrentNode)
	assert.Equal(t, "completed", p.Nodes["api_calling"].Status)
	assert.Equal(t, "B", p.Nodes["api_calling"].Channel, "completion keeps the channel it was graded on")
	assert.Equal(t, 8.0, p.TotalStudyHours, "completion credits the channel B estimate")

	rec, err := s.RecommendNextStep(context.Background(), "s1", result)
	require.NoError(t, err)
	assert.Equal(t, "model_deployment", rec.NextNode)

	history, err := s.History(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, result.AssessmentID, history[0].AssessmentID)
	assert.True(t, history[0].Passed)
}

func TestAssessFailureDowngradesWithScaffolds(t *testing.T) {
	s := newTestService(t, uniformResponses(40))
	initStudent(t, s, recommend.LevelL1)

	result, err := s.Assess(context.Background(), submission())
	require.NoError(t, err)

	assert.Equal(t, 40.0, result.OverallScore)
	assert.False(t, result.Passed())
	assert.Equal(t, catalog.ChannelA, result.ExitRule.RecommendedChannel)
	assert.True(t, result.ExitRule.RequireRemediation)
	assert.NotEmpty(t, result.Resources, "weak categories pull in resource bundles")

	p, err := s.GetProgress(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Channel)
	assert.Equal(t, "api_calling", p.CurrentNode, "a failed node does not advance")
	assert.Equal(t, "unlocked", p.Nodes["api_calling"].Status, "the downgrade cycles the node back for a retry")
	assert.Equal(t, 1, p.Nodes["api_calling"].Retries)
	assert.InDelta(t, 0.10, p.FrustrationLevel, 1e-9)

	rec, err := s.RecommendNextStep(context.Background(), "s1", result)
	require.NoError(t, err)
	assert.Equal(t, policy.DecisionDowngrade, rec.Decision)
	assert.NotEmpty(t, rec.ScaffoldResources, "downgrade must come with scaffolding")
}

func TestAssessSubstitutesUnavailableEvaluator(t *testing.T) {
	responses := uniformResponses(90)
	responses[assess.CategoryUI] = nil // exhausted provider
	s := newTestService(t, responses)
	initStudent(t, s, recommend.LevelL1)

	result, err := s.Assess(context.Background(), submission())
	require.NoError(t, err)

	// idea 90 x0.3 + substituted 50 x0.3 + code 90 x0.4.
	assert.Equal(t, 78.0, result.OverallScore)
	assert.Equal(t, 50.0, result.CategoryScores[assess.CategoryUI])

	var substituted bool
	for _, ev := range result.EvidenceLinks {
		if strings.Contains(ev, "substituted:ui") {
			substituted = true
		}
	}
	assert.True(t, substituted, "substitution must be flagged in evidence")
}

func TestAssessAllEvaluatorsDownLeavesProgressUntouched(t *testing.T) {
	s := newTestService(t, nil)
	initStudent(t, s, recommend.LevelL1)

	_, err := s.Assess(context.Background(), submission())
	var aggErr *assess.AggregationError
	require.ErrorAs(t, err, &aggErr)

	p, err := s.GetProgress(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "B", p.Channel)
	assert.Equal(t, 0, p.Nodes["api_calling"].Retries)
	assert.Equal(t, 0.0, p.FrustrationLevel)

	history, err := s.History(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "failed", history[0].Level)
	assert.False(t, history[0].Passed)
}

func TestAssessUninitializedStudent(t *testing.T) {
	s := newTestService(t, uniformResponses(80))
	_, err := s.Assess(context.Background(), submission())
	assert.ErrorIs(t, err, progress.ErrNotInitialized)
}

func TestRecommendAdjustmentReadsHistory(t *testing.T) {
	responses := map[assess.Category][]llm.MockResponse{}
	for _, cat := range assess.AllCategories() {
		responses[cat] = []llm.MockResponse{
			gradeResponse(cat, 80),
			gradeResponse(cat, 70),
			gradeResponse(cat, 60),
		}
	}
	s := newTestService(t, responses)
	initStudent(t, s, recommend.LevelL1)

	for i := 0; i < 3; i++ {
		if _, err := s.Assess(context.Background(), submission()); err != nil {
			t.Fatalf("assess %d: %v", i, err)
		}
	}

	adj, err := s.RecommendAdjustment(context.Background(), "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, recommend.TrendDeclining, adj.Performance.Trend)
	assert.Equal(t, 70.0, adj.Performance.AverageScore)
}

func TestResetThenReinitialize(t *testing.T) {
	s := newTestService(t, uniformResponses(40))
	initStudent(t, s, recommend.LevelL1)

	_, err := s.Assess(context.Background(), submission())
	require.NoError(t, err)

	require.NoError(t, s.ResetProgress(context.Background(), "s1"))
	_, err = s.GetProgress(context.Background(), "s1")
	assert.ErrorIs(t, err, progress.ErrNotInitialized)

	// Assessment records are append-only and survive the reset.
	history, err := s.History(context.Background(), "s1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, p, err := s.InitializePath(context.Background(), "s1", recommend.DiagnosticProfile{Level: recommend.LevelL2})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Nodes["api_calling"].Retries)
	assert.Equal(t, 0.0, p.FrustrationLevel)
}
