package recommend

import (
	"math"
	"testing"

	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/policy"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.MustDefault(), policy.DefaultThresholds())
}

func TestInitialChannelSeeding(t *testing.T) {
	tests := []struct {
		level LearnerLevel
		want  catalog.Channel
	}{
		{LevelL0, catalog.ChannelA},
		{LevelL1, catalog.ChannelB},
		{LevelL2, catalog.ChannelB},
		{LevelL3, catalog.ChannelC},
		{LearnerLevel("L9"), catalog.ChannelB},
	}
	for _, tt := range tests {
		if got := initialChannel(tt.level); got != tt.want {
			t.Errorf("initialChannel(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestPacePlan(t *testing.T) {
	tests := []struct {
		hours      int
		wantLevel  string
		wantFactor float64
	}{
		{3, "slow", 2.0},
		{4, "standard", 1.2},
		{6, "normal", 1.0},
		{7, "normal", 1.0},
		{10, "fast", 0.8},
	}
	for _, tt := range tests {
		p := pacePlan(tt.hours)
		if p.Level != tt.wantLevel || p.Multiplier != tt.wantFactor {
			t.Errorf("pacePlan(%d) = %s/%.1f, want %s/%.1f",
				tt.hours, p.Level, p.Multiplier, tt.wantLevel, tt.wantFactor)
		}
	}
}

func TestInitialTimeline(t *testing.T) {
	e := newTestEngine()
	rec := e.Initial(DiagnosticProfile{
		StudentID:       "s1",
		Level:           LevelL1,
		TimeBudgetHours: 6,
	})

	if rec.Channel != catalog.ChannelB {
		t.Fatalf("channel = %s, want B", rec.Channel)
	}
	if rec.StartingNode != "api_calling" {
		t.Errorf("starting node = %q", rec.StartingNode)
	}

	// Base weeks sum to 12.5; channel B multiplies by 1.2, normal pace by 1.0.
	if rec.Timeline.TotalWeeks != 15.0 {
		t.Errorf("total weeks = %.1f, want 15.0", rec.Timeline.TotalWeeks)
	}
	if got := rec.Timeline.NodeWeeks["api_calling"]; got != 1.2 {
		t.Errorf("api_calling weeks = %.1f, want 1.2", got)
	}
	if got := rec.Timeline.NodeWeeks["backend_dev"]; got != 3.6 {
		t.Errorf("backend_dev weeks = %.1f, want 3.6", got)
	}
	if rec.Timeline.PaceLevel != "normal" {
		t.Errorf("pace level = %q", rec.Timeline.PaceLevel)
	}
}

func TestInitialTimelineSlowChallenge(t *testing.T) {
	e := newTestEngine()
	rec := e.Initial(DiagnosticProfile{Level: LevelL3, TimeBudgetHours: 2})

	// 12.5 base weeks, challenge x1.5, slow pace x2.0.
	if math.Abs(rec.Timeline.TotalWeeks-37.5) > 1e-9 {
		t.Errorf("total weeks = %.1f, want 37.5", rec.Timeline.TotalWeeks)
	}
}

func TestWeakSkillPlan(t *testing.T) {
	plan := weakSkillPlan([]string{"Git", "HTTP", "python basics", "docker"})

	wantAreas := []string{"programming", "tools", "concepts"}
	if len(plan.FocusAreas) != len(wantAreas) {
		t.Fatalf("focus areas = %v, want %v", plan.FocusAreas, wantAreas)
	}
	for i, a := range wantAreas {
		if plan.FocusAreas[i] != a {
			t.Errorf("focus area %d = %q, want %q", i, plan.FocusAreas[i], a)
		}
	}
	if !plan.ExtraPractice {
		t.Error("four weak skills should trigger extra practice")
	}
	if plan.PrepHours != 8 {
		t.Errorf("prep hours = %d, want 8", plan.PrepHours)
	}
	if len(plan.Resources) != 6 {
		t.Errorf("resources = %v, want 6 entries", plan.Resources)
	}
}

func TestWeakSkillPlanCapsPrepHours(t *testing.T) {
	plan := weakSkillPlan([]string{"a", "b", "c", "d", "e", "f", "g"})
	if plan.PrepHours != 10 {
		t.Errorf("prep hours = %d, want capped at 10", plan.PrepHours)
	}
}

func TestInterestFocus(t *testing.T) {
	f := interestFocus([]string{"agents", "rag"})

	if f.Alignment["backend_dev"] != 2 {
		t.Errorf("backend_dev alignment = %d, want 2", f.Alignment["backend_dev"])
	}
	if len(f.PriorityNodes) != 4 {
		t.Fatalf("priority nodes = %v, want 4", f.PriorityNodes)
	}
	if f.PriorityNodes[0] != "backend_dev" {
		t.Errorf("top priority = %q, want backend_dev", f.PriorityNodes[0])
	}
	// Equal counts order alphabetically for determinism.
	want := []string{"api_calling", "no_code_ai", "rag_system"}
	for i, node := range want {
		if f.PriorityNodes[i+1] != node {
			t.Errorf("priority %d = %q, want %q", i+1, f.PriorityNodes[i+1], node)
		}
	}
	if f.Suggestion == "" {
		t.Error("suggestion should not be empty")
	}
}

func TestInitialResources(t *testing.T) {
	res := initialResources(DiagnosticProfile{
		Level:      LevelL0,
		WeakSkills: []string{"git", "http", "docker", "ide"},
		Interests:  []string{"rag", "web", "mobile"},
	})

	// 3 starter (L0) + 3 weak-skill (capped) + 2 interest (capped).
	if len(res) != 8 {
		t.Fatalf("resources = %d, want 8", len(res))
	}
	if res[0].Priority != "high" {
		t.Errorf("starter priority = %q, want high", res[0].Priority)
	}
}

func TestInitialResourcesNonL0(t *testing.T) {
	res := initialResources(DiagnosticProfile{Level: LevelL2, WeakSkills: []string{"git"}})
	if len(res) != 1 {
		t.Fatalf("resources = %d, want 1", len(res))
	}
	if res[0].Type != "reinforcement" {
		t.Errorf("type = %q", res[0].Type)
	}
}

func TestStyleAdviceFallback(t *testing.T) {
	s := styleAdvice(LearningStyle("osmosis"))
	if s.Approach != "example-driven" {
		t.Errorf("approach = %q, want the examples-first default", s.Approach)
	}
}
