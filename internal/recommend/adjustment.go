package recommend

import (
	"math"
	"time"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
)

// Adjustment analyzes the recent assessment series and the behavioral
// signals and recommends a mid-course path change. samples run oldest
// to newest; behavior may be nil when no behavioral data exists.
func (e *Engine) Adjustment(studentID string, current catalog.Channel, samples []ScoreSample, behavior *BehavioralSignals) *Adjustment {
	perf := analyzePerformance(samples)
	behav := analyzeBehavior(behavior)
	difficulties := detectDifficulties(perf, behav)

	decision := adjustmentDecision(current, perf, difficulties)

	return &Adjustment{
		StudentID:        studentID,
		Type:             decision.kind,
		Performance:      perf,
		Behavior:         behav,
		Difficulties:     difficulties,
		Actions:          decision.actions,
		Reasoning:        decision.reasoning,
		ExpectedOutcomes: decision.outcomes,
		Confidence:       confidence(perf, behav),
		Monitoring:       monitoringPlan(decision.kind),
		CreatedAt:        time.Now().UTC(),
	}
}

// analyzePerformance computes the trend, average, and spread of the
// recent scores. Fewer than three samples cannot establish a trend.
func analyzePerformance(samples []ScoreSample) PerformanceAnalysis {
	if len(samples) == 0 {
		return PerformanceAnalysis{Trend: TrendInsufficient}
	}

	scores := make([]float64, len(samples))
	for i, s := range samples {
		scores[i] = s.Overall
	}

	trend := TrendInsufficient
	if len(scores) >= 3 {
		switch slope := fitSlope(scores); {
		case slope > 5:
			trend = TrendImproving
		case slope < -5:
			trend = TrendDeclining
		default:
			trend = TrendStable
		}
	}

	minScore, maxScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		minScore = math.Min(minScore, s)
		maxScore = math.Max(maxScore, s)
	}

	recent := scores
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	return PerformanceAnalysis{
		Trend:        trend,
		AverageScore: mean(scores),
		Consistency:  stddev(scores),
		MinScore:     minScore,
		MaxScore:     maxScore,
		RecentScores: recent,
		Dimensions:   analyzeDimensions(samples),
	}
}

// analyzeDimensions breaks the history down per category. A category
// averaging below 60 needs attention.
func analyzeDimensions(samples []ScoreSample) map[assess.Category]DimensionTrend {
	out := make(map[assess.Category]DimensionTrend)
	for _, cat := range assess.AllCategories() {
		var scores []float64
		for _, s := range samples {
			if v, ok := s.Categories[cat]; ok {
				scores = append(scores, v)
			}
		}
		if len(scores) == 0 {
			continue
		}
		lowest := scores[0]
		for _, v := range scores[1:] {
			lowest = math.Min(lowest, v)
		}
		avg := mean(scores)
		out[cat] = DimensionTrend{
			Average:        avg,
			Lowest:         lowest,
			NeedsAttention: avg < 60,
		}
	}
	return out
}

// analyzeBehavior reads the study pattern and flags risk factors.
func analyzeBehavior(b *BehavioralSignals) BehaviorAnalysis {
	if b == nil {
		return BehaviorAnalysis{Pattern: "unknown", Engagement: "medium"}
	}

	var avgHours, consistency float64
	if len(b.WeeklyStudyHours) > 0 {
		avgHours = mean(b.WeeklyStudyHours)
		consistency = 1.0 - stddev(b.WeeklyStudyHours)/math.Max(avgHours, 1)
	}

	pattern := b.SubmissionPattern
	if pattern == "" {
		pattern = "regular"
	}

	var risks []string
	if avgHours < 3 {
		risks = append(risks, "insufficient_study_time")
	}
	if consistency < 0.5 {
		risks = append(risks, "irregular_study_pattern")
	}
	if pattern == "last_minute" {
		risks = append(risks, "procrastination")
	}
	if b.HelpRequests == 0 {
		risks = append(risks, "isolation")
	}

	engagement := "low"
	switch {
	case avgHours >= 6 && consistency >= 0.7:
		engagement = "high"
	case avgHours >= 3 && consistency >= 0.4:
		engagement = "medium"
	}

	return BehaviorAnalysis{
		Pattern:      pattern,
		Engagement:   engagement,
		AvgHours:     avgHours,
		Consistency:  consistency,
		HelpRequests: b.HelpRequests,
		RiskFactors:  risks,
	}
}

// detectDifficulties merges performance and behavior signals into the
// difficulty flags the decision reads.
func detectDifficulties(perf PerformanceAnalysis, behav BehaviorAnalysis) []string {
	var out []string

	if perf.Trend == TrendDeclining {
		out = append(out, "performance_declining")
	}
	if perf.AverageScore < 50 {
		out = append(out, "low_achievement")
	}
	if perf.Consistency > 20 {
		out = append(out, "inconsistent_performance")
	}

	if behav.Engagement == "low" {
		out = append(out, "low_engagement")
	}
	if contains(behav.RiskFactors, "insufficient_study_time") {
		out = append(out, "time_management")
	}
	if contains(behav.RiskFactors, "procrastination") {
		out = append(out, "procrastination")
	}
	if contains(behav.RiskFactors, "isolation") {
		out = append(out, "lack_of_support_seeking")
	}

	return out
}

type decision struct {
	kind      AdjustmentType
	actions   []string
	reasoning string
	outcomes  []string
}

// adjustmentDecision maps the difficulty flags onto an adjustment. The
// struggling branches win over everything else; upgrades require a
// sustained average above 85.
func adjustmentDecision(current catalog.Channel, perf PerformanceAnalysis, difficulties []string) decision {
	switch {
	case contains(difficulties, "performance_declining") || contains(difficulties, "low_achievement"):
		d := decision{
			reasoning: "Recent performance is slipping; reduce difficulty and rebuild fundamentals.",
			outcomes:  []string{"restored confidence", "stronger mastery", "steadier study habits"},
		}
		switch current {
		case catalog.ChannelC:
			d.kind = AdjustDowngradeToB
			d.actions = []string{"move to the standard channel", "add tutoring resources", "increase practice time"}
		case catalog.ChannelB:
			d.kind = AdjustDowngradeToA
			d.actions = []string{"move to the basic channel", "focus on fundamentals", "arrange one-on-one support"}
		default:
			d.kind = AdjustProvideRemediation
			d.actions = []string{"assign remediation material", "extend the study window", "reinforce basic exercises"}
		}
		return d

	case perf.AverageScore > 85 && current != catalog.ChannelC:
		d := decision{
			reasoning: "Performance is consistently strong; raise the challenge level.",
			outcomes:  []string{"deeper skills", "better handling of complex problems", "readiness for advanced work"},
		}
		if current == catalog.ChannelA {
			d.kind = AdjustUpgradeToB
			d.actions = []string{"move to the standard channel", "add practice projects", "take on harder tasks"}
		} else {
			d.kind = AdjustUpgradeToC
			d.actions = []string{"move to the challenge channel", "join advanced projects", "prepare for competition-level work"}
		}
		return d

	case contains(difficulties, "time_management"):
		return decision{
			kind:      AdjustPace,
			actions:   []string{"draft a detailed study schedule", "set reminders and checkpoints", "rebalance the weekly time budget"},
			reasoning: "Study time is below what the course needs; fix the schedule before the path.",
			outcomes:  []string{"better study efficiency", "higher completion rate", "sustainable time habits"},
		}

	default:
		return decision{
			kind:      AdjustMaintain,
			actions:   []string{"keep the current path", "continue at a steady pace", "watch the weaker dimensions"},
			reasoning: "Current trajectory is healthy; no change needed.",
			outcomes:  []string{"steady course completion", "broad skill coverage", "readiness for the capstone"},
		}
	}
}

// confidence scores how much data backs the recommendation. Each factor
// contributes its full weight when its signal is solid and a reduced
// weight otherwise; the sum caps at 1.
func confidence(perf PerformanceAnalysis, behav BehaviorAnalysis) float64 {
	total := 0.0

	if len(perf.RecentScores) >= 3 {
		total += 0.2
	} else {
		total += 0.1
	}

	if perf.Trend == TrendImproving || perf.Trend == TrendDeclining {
		total += 0.3
	} else {
		total += 0.15
	}

	if perf.Consistency < 10 {
		total += 0.2
	} else {
		total += 0.1
	}

	if behav.Pattern != "unknown" {
		total += 0.3
	} else {
		total += 0.1
	}

	return math.Min(total, 1.0)
}

func monitoringPlan(kind AdjustmentType) MonitoringPlan {
	switch kind {
	case AdjustDowngradeToA, AdjustDowngradeToB, AdjustProvideRemediation:
		return MonitoringPlan{
			Frequency:            "weekly",
			KeyMetrics:           []string{"completion_rate", "confidence_level", "error_reduction"},
			InterventionTriggers: []string{"completion_rate < 0.6", "confidence_level < 0.4"},
		}
	case AdjustUpgradeToB, AdjustUpgradeToC:
		return MonitoringPlan{
			Frequency:            "bi-weekly",
			KeyMetrics:           []string{"challenge_completion", "innovation_level", "peer_comparison"},
			InterventionTriggers: []string{"challenge_completion < 0.7", "frustration_level > 0.6"},
		}
	default:
		return MonitoringPlan{
			Frequency:            "monthly",
			KeyMetrics:           []string{"steady_progress", "skill_development", "goal_achievement"},
			InterventionTriggers: []string{"progress stagnant for 2 weeks"},
		}
	}
}

// fitSlope returns the least-squares slope of y over x = 0..n-1.
func fitSlope(y []float64) float64 {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation; a single sample has no
// spread.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
