package recommend

import (
	"testing"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/store"
)

func progressOn(channel catalog.Channel, current string, statuses map[string]string) *store.StudentProgress {
	p := &store.StudentProgress{
		StudentID:   "s1",
		CurrentNode: current,
		Channel:     string(channel),
		Nodes:       make(map[string]*store.NodeProgress),
	}
	for _, node := range catalog.MustDefault().Nodes() {
		status := "locked"
		if s, ok := statuses[node.ID]; ok {
			status = s
		}
		p.Nodes[node.ID] = &store.NodeProgress{NodeID: node.ID, Status: status, Channel: string(channel)}
	}
	return p
}

func resultWith(nodeID string, score float64) *assess.Result {
	return &assess.Result{
		StudentID:    "s1",
		NodeID:       nodeID,
		OverallScore: score,
	}
}

func TestNextStepNilResultKeeps(t *testing.T) {
	e := newTestEngine()
	p := progressOn(catalog.ChannelB, "api_calling", map[string]string{"api_calling": "in_progress"})

	rec, err := e.NextStep(p, nil)
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if rec.Decision != "keep" {
		t.Errorf("decision = %s, want keep", rec.Decision)
	}
	if rec.RecommendedChannel != catalog.ChannelB {
		t.Errorf("channel = %s, want B", rec.RecommendedChannel)
	}
	if rec.NextNode != "api_calling" {
		t.Errorf("next node = %q, want api_calling", rec.NextNode)
	}
	if rec.EstimatedHours != 8 {
		t.Errorf("hours = %d, want 8 for api_calling on B", rec.EstimatedHours)
	}
	if len(rec.ScaffoldResources) != 0 {
		t.Errorf("scaffolds = %v, want none on keep", rec.ScaffoldResources)
	}
	if len(rec.Alternatives) != 2 {
		t.Errorf("alternatives = %v, want 2", rec.Alternatives)
	}
}

func TestNextStepUpgrade(t *testing.T) {
	e := newTestEngine()
	p := progressOn(catalog.ChannelB, "model_deployment", map[string]string{
		"api_calling":      "completed",
		"model_deployment": "in_progress",
	})
	p.FrustrationLevel = 0.05

	rec, err := e.NextStep(p, resultWith("api_calling", 90))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if rec.Decision != "upgrade" {
		t.Errorf("decision = %s, want upgrade", rec.Decision)
	}
	if rec.RecommendedChannel != catalog.ChannelC {
		t.Errorf("channel = %s, want C", rec.RecommendedChannel)
	}
	if rec.NextNode != "model_deployment" {
		t.Errorf("next node = %q, want model_deployment", rec.NextNode)
	}
	if len(rec.TriggerFactors) != 2 {
		t.Errorf("triggers = %v, want mastery and frustration factors", rec.TriggerFactors)
	}
}

func TestNextStepDowngradeCarriesScaffolds(t *testing.T) {
	e := newTestEngine()
	p := progressOn(catalog.ChannelB, "api_calling", map[string]string{"api_calling": "in_progress"})
	p.Nodes["api_calling"].Retries = 1
	p.FrustrationLevel = 0.2

	rec, err := e.NextStep(p, resultWith("api_calling", 40))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if rec.Decision != "downgrade_with_scaffold" {
		t.Errorf("decision = %s, want downgrade", rec.Decision)
	}
	if rec.RecommendedChannel != catalog.ChannelA {
		t.Errorf("channel = %s, want A", rec.RecommendedChannel)
	}
	if len(rec.ScaffoldResources) == 0 {
		t.Error("downgrade must carry scaffold resources")
	}
	if rec.EstimatedHours != 4 {
		t.Errorf("hours = %d, want 4 for api_calling on A", rec.EstimatedHours)
	}
}

func TestNextStepUpgradeSaturatesAtC(t *testing.T) {
	e := newTestEngine()
	p := progressOn(catalog.ChannelC, "api_calling", map[string]string{"api_calling": "in_progress"})

	rec, err := e.NextStep(p, resultWith("api_calling", 95))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if rec.RecommendedChannel != catalog.ChannelC {
		t.Errorf("channel = %s, want C (saturated)", rec.RecommendedChannel)
	}
}

func TestNextStepCourseComplete(t *testing.T) {
	e := newTestEngine()
	statuses := make(map[string]string)
	for _, node := range catalog.MustDefault().Nodes() {
		statuses[node.ID] = "completed"
	}
	p := progressOn(catalog.ChannelB, "backend_dev", statuses)

	rec, err := e.NextStep(p, nil)
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if rec.NextNode != "" {
		t.Errorf("next node = %q, want empty when course is done", rec.NextNode)
	}
	if rec.EstimatedHours != 0 {
		t.Errorf("hours = %d, want 0", rec.EstimatedHours)
	}
}

func TestNextStepInvalidChannel(t *testing.T) {
	e := newTestEngine()
	p := &store.StudentProgress{StudentID: "s1", Channel: "Z"}
	if _, err := e.NextStep(p, nil); err == nil {
		t.Fatal("invalid channel should error")
	}
}
