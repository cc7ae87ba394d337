package recommend

import (
	"math"
	"testing"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
)

func samplesOf(scores ...float64) []ScoreSample {
	out := make([]ScoreSample, len(scores))
	for i, s := range scores {
		out[i] = ScoreSample{Overall: s}
	}
	return out
}

func TestTrendDetection(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"improving", []float64{60, 70, 80}, TrendImproving},
		{"declining", []float64{80, 70, 60}, TrendDeclining},
		{"stable", []float64{70, 72, 71}, TrendStable},
		{"two points", []float64{70, 80}, TrendInsufficient},
		{"empty", nil, TrendInsufficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perf := analyzePerformance(samplesOf(tt.scores...))
			if perf.Trend != tt.want {
				t.Errorf("trend = %q, want %q", perf.Trend, tt.want)
			}
		})
	}
}

func TestPerformanceStats(t *testing.T) {
	perf := analyzePerformance(samplesOf(80, 70, 60))

	if perf.AverageScore != 70 {
		t.Errorf("average = %.1f, want 70", perf.AverageScore)
	}
	if perf.MinScore != 60 || perf.MaxScore != 80 {
		t.Errorf("range = %.0f..%.0f, want 60..80", perf.MinScore, perf.MaxScore)
	}
	// Population stddev of 60,70,80.
	if math.Abs(perf.Consistency-8.1649658) > 1e-6 {
		t.Errorf("consistency = %.4f", perf.Consistency)
	}
	if len(perf.RecentScores) != 3 {
		t.Errorf("recent = %v", perf.RecentScores)
	}
}

func TestDimensionBreakdown(t *testing.T) {
	samples := []ScoreSample{
		{Overall: 70, Categories: map[assess.Category]float64{
			assess.CategoryIdea: 50, assess.CategoryCode: 85,
		}},
		{Overall: 75, Categories: map[assess.Category]float64{
			assess.CategoryIdea: 55, assess.CategoryCode: 90,
		}},
	}
	perf := analyzePerformance(samples)

	idea, ok := perf.Dimensions[assess.CategoryIdea]
	if !ok {
		t.Fatal("missing idea dimension")
	}
	if !idea.NeedsAttention {
		t.Error("idea averaging 52.5 should need attention")
	}
	if idea.Lowest != 50 {
		t.Errorf("idea lowest = %.0f, want 50", idea.Lowest)
	}
	if code := perf.Dimensions[assess.CategoryCode]; code.NeedsAttention {
		t.Error("code averaging 87.5 should not need attention")
	}
	if _, ok := perf.Dimensions[assess.CategoryUI]; ok {
		t.Error("absent category should not appear in the breakdown")
	}
}

func TestBehaviorRiskFlags(t *testing.T) {
	b := analyzeBehavior(&BehavioralSignals{
		WeeklyStudyHours:  []float64{0, 6, 0},
		SubmissionPattern: "last_minute",
		HelpRequests:      0,
	})

	want := []string{"insufficient_study_time", "irregular_study_pattern", "procrastination", "isolation"}
	if len(b.RiskFactors) != len(want) {
		t.Fatalf("risks = %v, want %v", b.RiskFactors, want)
	}
	for i, r := range want {
		if b.RiskFactors[i] != r {
			t.Errorf("risk %d = %q, want %q", i, b.RiskFactors[i], r)
		}
	}
	if b.Engagement != "low" {
		t.Errorf("engagement = %q, want low", b.Engagement)
	}
}

func TestBehaviorHighEngagement(t *testing.T) {
	b := analyzeBehavior(&BehavioralSignals{
		WeeklyStudyHours:  []float64{6, 7, 6},
		SubmissionPattern: "regular",
		HelpRequests:      2,
	})
	if b.Engagement != "high" {
		t.Errorf("engagement = %q, want high", b.Engagement)
	}
	if len(b.RiskFactors) != 0 {
		t.Errorf("risks = %v, want none", b.RiskFactors)
	}
}

func TestBehaviorNilSignals(t *testing.T) {
	b := analyzeBehavior(nil)
	if b.Pattern != "unknown" {
		t.Errorf("pattern = %q, want unknown", b.Pattern)
	}
	if b.Engagement != "medium" {
		t.Errorf("engagement = %q, want medium", b.Engagement)
	}
	if len(b.RiskFactors) != 0 {
		t.Errorf("risks = %v, want none", b.RiskFactors)
	}
}

func TestAdjustmentDowngradeLadder(t *testing.T) {
	e := newTestEngine()
	declining := samplesOf(80, 65, 50)

	tests := []struct {
		channel catalog.Channel
		want    AdjustmentType
	}{
		{catalog.ChannelC, AdjustDowngradeToB},
		{catalog.ChannelB, AdjustDowngradeToA},
		{catalog.ChannelA, AdjustProvideRemediation},
	}
	for _, tt := range tests {
		adj := e.Adjustment("s1", tt.channel, declining, nil)
		if adj.Type != tt.want {
			t.Errorf("channel %s: type = %s, want %s", tt.channel, adj.Type, tt.want)
		}
		if len(adj.Actions) == 0 {
			t.Errorf("channel %s: actions empty", tt.channel)
		}
		if adj.Monitoring.Frequency != "weekly" {
			t.Errorf("channel %s: monitoring = %q, want weekly", tt.channel, adj.Monitoring.Frequency)
		}
	}
}

func TestAdjustmentUpgradeLadder(t *testing.T) {
	e := newTestEngine()
	strong := samplesOf(88, 90, 92)

	if adj := e.Adjustment("s1", catalog.ChannelA, strong, nil); adj.Type != AdjustUpgradeToB {
		t.Errorf("A: type = %s, want upgrade_to_b", adj.Type)
	}
	if adj := e.Adjustment("s1", catalog.ChannelB, strong, nil); adj.Type != AdjustUpgradeToC {
		t.Errorf("B: type = %s, want upgrade_to_c", adj.Type)
	}
	// Already on the hardest channel: nothing to upgrade into.
	if adj := e.Adjustment("s1", catalog.ChannelC, strong, nil); adj.Type != AdjustMaintain {
		t.Errorf("C: type = %s, want maintain_current", adj.Type)
	}
}

func TestAdjustmentPace(t *testing.T) {
	e := newTestEngine()
	adj := e.Adjustment("s1", catalog.ChannelB, samplesOf(70, 72, 71), &BehavioralSignals{
		WeeklyStudyHours:  []float64{1, 1, 1},
		SubmissionPattern: "regular",
		HelpRequests:      1,
	})
	if adj.Type != AdjustPace {
		t.Fatalf("type = %s, want adjust_pace", adj.Type)
	}
	if !contains(adj.Difficulties, "time_management") {
		t.Errorf("difficulties = %v, missing time_management", adj.Difficulties)
	}
}

func TestAdjustmentEmptyHistory(t *testing.T) {
	e := newTestEngine()
	adj := e.Adjustment("s1", catalog.ChannelB, nil, nil)

	// No history reads as zero achievement, which is the struggling branch.
	if adj.Type != AdjustDowngradeToA {
		t.Errorf("type = %s, want downgrade_to_a", adj.Type)
	}
	if adj.Performance.Trend != TrendInsufficient {
		t.Errorf("trend = %q", adj.Performance.Trend)
	}
}

func TestConfidence(t *testing.T) {
	e := newTestEngine()

	full := e.Adjustment("s1", catalog.ChannelB, samplesOf(80, 70, 60), &BehavioralSignals{
		WeeklyStudyHours:  []float64{5, 5, 5},
		SubmissionPattern: "regular",
		HelpRequests:      1,
	})
	if full.Confidence != 1.0 {
		t.Errorf("full-data confidence = %.2f, want 1.0", full.Confidence)
	}

	sparse := e.Adjustment("s1", catalog.ChannelB, samplesOf(70, 80), nil)
	if math.Abs(sparse.Confidence-0.55) > 1e-9 {
		t.Errorf("sparse confidence = %.2f, want 0.55", sparse.Confidence)
	}
}

func TestFitSlope(t *testing.T) {
	tests := []struct {
		y    []float64
		want float64
	}{
		{[]float64{60, 70, 80}, 10},
		{[]float64{80, 70, 60}, -10},
		{[]float64{70, 70, 70}, 0},
	}
	for _, tt := range tests {
		if got := fitSlope(tt.y); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("fitSlope(%v) = %.2f, want %.2f", tt.y, got, tt.want)
		}
	}
}
