// Package recommend derives learning-path recommendations from the
// diagnostic profile, the assessment history, and the behavioral
// signals. Everything here is a derived view; the progress store stays
// the single authoritative state.
package recommend

import (
	"time"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/policy"
)

// LearnerLevel is the placement bucket from the intake diagnostic.
type LearnerLevel string

const (
	LevelL0 LearnerLevel = "L0" // no prior exposure
	LevelL1 LearnerLevel = "L1" // beginner
	LevelL2 LearnerLevel = "L2" // intermediate
	LevelL3 LearnerLevel = "L3" // advanced
)

// LearningStyle is the student's self-reported preference for how new
// material should be introduced.
type LearningStyle string

const (
	StyleExamplesFirst LearningStyle = "examples_first"
	StyleTheoryFirst   LearningStyle = "theory_first"
	StyleHandsOn       LearningStyle = "hands_on"
	StyleVisual        LearningStyle = "visual"
)

// DiagnosticProfile is the intake snapshot an initial recommendation is
// built from.
type DiagnosticProfile struct {
	StudentID       string
	Level           LearnerLevel
	WeakSkills      []string
	TimeBudgetHours int // per week
	LearningStyle   LearningStyle
	Interests       []string
}

// PacePlan is the timeline adjustment derived from the weekly time
// budget, relative to the 6h/week course baseline.
type PacePlan struct {
	Level       string
	Multiplier  float64
	WeeklyHours int
	Suggestion  string
}

// WeakSkillPlan is the reinforcement strategy for the skills the
// diagnostic flagged as weak.
type WeakSkillPlan struct {
	FocusAreas    []string
	ExtraPractice bool
	PrepHours     int
	Resources     []string
}

// StyleAdvice adapts the delivery to the student's learning style.
type StyleAdvice struct {
	Approach           string
	Recommendations    []string
	ResourcePreference string
}

// InterestFocus maps the student's stated interests onto the course
// nodes that serve them.
type InterestFocus struct {
	PriorityNodes []string
	Alignment     map[string]int
	Suggestion    string
}

// Timeline is the per-node week estimate after the channel and pace
// multipliers apply.
type Timeline struct {
	NodeWeeks           map[string]float64
	TotalWeeks          float64
	EstimatedCompletion time.Time
	PaceLevel           string
}

// Resource is one recommended study resource with a rough priority.
type Resource struct {
	Type     string
	Title    string
	Priority string // high, medium, low
}

// Checkpoint is a scheduled monitoring point along the course.
type Checkpoint struct {
	Label   string
	Focus   string
	Metrics []string
}

// InitialRecommendation is the full onboarding plan for a new student.
type InitialRecommendation struct {
	StudentID    string
	Channel      catalog.Channel
	StartingNode string
	WeakSkills   WeakSkillPlan
	Pace         PacePlan
	Style        StyleAdvice
	Interests    InterestFocus
	Timeline     Timeline
	Resources    []Resource
	Checkpoints  []Checkpoint
	CreatedAt    time.Time
}

// ScoreSample is one historical assessment outcome, newest last.
type ScoreSample struct {
	Overall    float64
	Categories map[assess.Category]float64
}

// BehavioralSignals is the observed study behavior feeding the
// adjustment analysis. A nil value means no behavioral data exists.
type BehavioralSignals struct {
	WeeklyStudyHours  []float64
	SubmissionPattern string // regular, last_minute
	HelpRequests      int
}

// Score trends detected from the recent assessment series.
const (
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"
)

// DimensionTrend summarizes one category's recent performance.
type DimensionTrend struct {
	Average        float64
	Lowest         float64
	NeedsAttention bool
}

// PerformanceAnalysis is the statistical read of the recent scores.
type PerformanceAnalysis struct {
	Trend        string
	AverageScore float64
	Consistency  float64 // score standard deviation; lower is steadier
	MinScore     float64
	MaxScore     float64
	RecentScores []float64 // up to the last three
	Dimensions   map[assess.Category]DimensionTrend
}

// BehaviorAnalysis is the pattern read of the behavioral signals.
type BehaviorAnalysis struct {
	Pattern      string
	Engagement   string // high, medium, low
	AvgHours     float64
	Consistency  float64 // 0..1; 1 is perfectly even weeks
	HelpRequests int
	RiskFactors  []string
}

// AdjustmentType is the path-adjustment verdict.
type AdjustmentType string

const (
	AdjustDowngradeToB       AdjustmentType = "downgrade_to_b"
	AdjustDowngradeToA       AdjustmentType = "downgrade_to_a"
	AdjustProvideRemediation AdjustmentType = "provide_remediation"
	AdjustUpgradeToB         AdjustmentType = "upgrade_to_b"
	AdjustUpgradeToC         AdjustmentType = "upgrade_to_c"
	AdjustPace               AdjustmentType = "adjust_pace"
	AdjustMaintain           AdjustmentType = "maintain_current"
)

// MonitoringPlan is the follow-up cadence attached to an adjustment.
type MonitoringPlan struct {
	Frequency            string
	KeyMetrics           []string
	InterventionTriggers []string
}

// Adjustment is the mid-course recommendation produced from progress,
// recent scores, and behavior.
type Adjustment struct {
	StudentID        string
	Type             AdjustmentType
	Performance      PerformanceAnalysis
	Behavior         BehaviorAnalysis
	Difficulties     []string
	Actions          []string
	Reasoning        string
	ExpectedOutcomes []string
	Confidence       float64
	Monitoring       MonitoringPlan
	CreatedAt        time.Time
}

// PathRecommendation is the next-step view after a graded submission:
// the channel decision, the node to work on, and the supporting detail.
// Derived on demand, never stored.
type PathRecommendation struct {
	StudentID          string
	Decision           policy.Decision
	CurrentChannel     catalog.Channel
	RecommendedChannel catalog.Channel
	NextNode           string
	Reasoning          string
	TriggerFactors     []string
	Alternatives       []string
	ScaffoldResources  []string
	EstimatedHours     int
	CreatedAt          time.Time
}
