package assess

import (
	"time"

	"github.com/akoirala/pathwise/internal/catalog"
)

// Category identifies one of the three evaluation dimensions of a
// submission.
type Category string

const (
	CategoryIdea Category = "idea"
	CategoryUI   Category = "ui"
	CategoryCode Category = "code"
)

// AllCategories returns the categories in canonical order.
func AllCategories() []Category {
	return []Category{CategoryIdea, CategoryUI, CategoryCode}
}

// DimensionScore is one scored sub-dimension inside a category
// (e.g. code.correctness).
type DimensionScore struct {
	Dimension   string
	Score       float64 // 0..100
	Weight      float64
	Issues      []string
	Suggestions []string
}

// Diagnosis is a single identified problem with a suggested fix.
// Priority runs 1..5 with 1 the most severe.
type Diagnosis struct {
	Dimension string // e.g. "ui.accessibility"
	Issue     string
	Fix       string
	Priority  int
}

// Evaluation is the output of one external dimension evaluator. The
// evaluators themselves are opaque scorers; this is the full shape the
// aggregator consumes.
type Evaluation struct {
	Category     Category
	OverallScore float64 // 0..100
	Breakdown    []DimensionScore
	Diagnosis    []Diagnosis
	Evidence     []string
}

// Level buckets an overall score into the three reporting tiers.
type Level string

const (
	LevelExcellent        Level = "excellent"        // >= 85
	LevelPass             Level = "pass"             // >= 60
	LevelNeedsImprovement Level = "need_improvement" // < 60
)

// LevelFor returns the reporting tier for a 0..100 score.
func LevelFor(score float64) Level {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 60:
		return LevelPass
	default:
		return LevelNeedsImprovement
	}
}

// ExitRule is the machine-readable verdict attached to an assessment:
// pass/fail, the channel the path should move toward, and what must be
// fixed before the checkpoint opens again.
type ExitRule struct {
	PassStatus         bool
	RecommendedChannel catalog.Channel
	UnlockNodes        []string
	BlockNodes         []string
	RequireRemediation bool
	Remedy             []string
	Requirements       []string
}

// Result is the aggregated outcome of one submission. Created once,
// immutable afterwards.
type Result struct {
	AssessmentID   string
	StudentID      string
	NodeID         string
	Channel        catalog.Channel
	OverallScore   float64
	CategoryScores map[Category]float64
	Level          Level
	Diagnosis      []Diagnosis
	Resources      []string
	ExitRule       ExitRule
	Feedback       string
	// EvidenceLinks carries the evaluators' evidence strings plus
	// substitution markers for categories that had to be defaulted.
	EvidenceLinks []string
	CreatedAt     time.Time
}

// Mastery returns the 0..1 mastery signal derived from the overall score.
func (r *Result) Mastery() float64 {
	return r.OverallScore / 100.0
}

// Passed reports whether the submission met the pass threshold.
func (r *Result) Passed() bool {
	return r.ExitRule.PassStatus
}
