package progress

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemProgressRepo(), catalog.MustDefault())
}

func TestInitialize(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	p, err := s.Initialize(ctx, "s1", catalog.ChannelB)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if p.CurrentNode != "api_calling" {
		t.Errorf("current node = %q, want api_calling", p.CurrentNode)
	}
	if p.Channel != "B" {
		t.Errorf("channel = %q, want B", p.Channel)
	}
	if len(p.Nodes) != 7 {
		t.Fatalf("nodes = %d, want 7", len(p.Nodes))
	}
	if p.Nodes["api_calling"].Status != string(StatusInProgress) {
		t.Errorf("first node status = %q, want in_progress", p.Nodes["api_calling"].Status)
	}
	if p.Nodes["api_calling"].StartedAt == nil {
		t.Error("first node should have a start time")
	}
	if p.Nodes["model_deployment"].Status != string(StatusLocked) {
		t.Errorf("model_deployment status = %q, want locked", p.Nodes["model_deployment"].Status)
	}
	if p.TotalStudyHours != 0 {
		t.Errorf("study hours = %.1f, want 0", p.TotalStudyHours)
	}
}

func TestInitializeTwiceFails(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelA); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	_, err := s.Initialize(ctx, "s1", catalog.ChannelC)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second initialize: err = %v, want ErrAlreadyInitialized", err)
	}

	// Original state untouched.
	p, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Channel != "A" {
		t.Errorf("channel = %q, want A", p.Channel)
	}
}

func TestGetUninitialized(t *testing.T) {
	s := newTestService()
	_, err := s.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("err = %v, want ErrNotInitialized", err)
	}
}

func TestAddStudyTime(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := s.AddStudyTime(ctx, "s1", "api_calling", 2.5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Nodes["api_calling"].StudyHours != 2.5 {
		t.Errorf("node hours = %.1f, want 2.5", p.Nodes["api_calling"].StudyHours)
	}
	if p.TotalStudyHours != 2.5 {
		t.Errorf("total hours = %.1f, want 2.5 (recomputed from nodes)", p.TotalStudyHours)
	}

	p, err = s.AddStudyTime(ctx, "s1", "api_calling", 1.5)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if p.TotalStudyHours != 4.0 {
		t.Errorf("total hours = %.1f, want 4.0", p.TotalStudyHours)
	}
}

func TestAddStudyTimeRejections(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if _, err := s.AddStudyTime(ctx, "s1", "api_calling", -1); err == nil {
		t.Error("negative hours should be rejected")
	}
	if _, err := s.AddStudyTime(ctx, "s1", "nope", 1); err == nil {
		t.Error("unknown node should be rejected")
	}
	if _, err := s.AddStudyTime(ctx, "s1", "backend_dev", 1); err == nil {
		t.Error("locked node should not accrue time")
	}
}

func TestApplyOutcomePass(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery:     0.9,
		Passed:      true,
		NextChannel: catalog.ChannelC,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	node := p.Nodes["api_calling"]
	if node.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want completed", node.Status)
	}
	if node.CompletedAt == nil {
		t.Error("completed node should carry completion time")
	}
	if node.MasteryScore != 0.9 {
		t.Errorf("mastery = %.2f, want 0.9", node.MasteryScore)
	}
	if node.Channel != "B" {
		t.Errorf("completed channel = %q, want B (the channel graded on, not the upgrade)", node.Channel)
	}
	if node.StudyHours != 8.0 {
		t.Errorf("node hours = %.1f, want 8.0 (channel B estimate)", node.StudyHours)
	}
	if p.Channel != "C" {
		t.Errorf("channel = %q, want C", p.Channel)
	}
	if p.CurrentNode != "model_deployment" {
		t.Errorf("current = %q, want model_deployment", p.CurrentNode)
	}
	if p.Nodes["model_deployment"].Status != string(StatusInProgress) {
		t.Errorf("next status = %q, want in_progress", p.Nodes["model_deployment"].Status)
	}
	if p.FrustrationLevel != 0 {
		t.Errorf("frustration = %.2f, want 0 (floored)", p.FrustrationLevel)
	}
}

func TestApplyOutcomeFail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	var p *store.StudentProgress
	var err error
	for i := 0; i < 3; i++ {
		p, err = s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
			Mastery:     0.4,
			Passed:      false,
			NextChannel: catalog.ChannelA,
		})
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	node := p.Nodes["api_calling"]
	if node.Status != string(StatusFailed) {
		t.Errorf("status = %q, want failed", node.Status)
	}
	if node.Retries != 3 {
		t.Errorf("retries = %d, want 3", node.Retries)
	}
	if p.Channel != "A" {
		t.Errorf("channel = %q, want A", p.Channel)
	}
	if math.Abs(p.FrustrationLevel-0.3) > 1e-9 {
		t.Errorf("frustration = %.2f, want 0.30", p.FrustrationLevel)
	}
	if p.CurrentNode != "api_calling" {
		t.Errorf("current = %q, must not advance on fail", p.CurrentNode)
	}
}

// TestCompletionCreditsEstimatedHours checks that the running total
// stays recomputable from the completed nodes and the channel each one
// was graded on.
func TestCompletionCreditsEstimatedHours(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.9, Passed: true, NextChannel: catalog.ChannelC,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.TotalStudyHours != 8.0 {
		t.Errorf("total hours = %.1f, want 8.0 (api_calling on B)", p.TotalStudyHours)
	}

	p, err = s.ApplyOutcome(ctx, "s1", "model_deployment", Outcome{
		Mastery: 0.9, Passed: true, NextChannel: catalog.ChannelC,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.TotalStudyHours != 28.0 {
		t.Errorf("total hours = %.1f, want 28.0 (8 on B + 20 on C)", p.TotalStudyHours)
	}

	cat := catalog.MustDefault()
	var fromHistory float64
	for id, n := range p.Nodes {
		if n.Status != string(StatusCompleted) {
			continue
		}
		cn, err := cat.Node(id)
		if err != nil {
			t.Fatalf("catalog node %s: %v", id, err)
		}
		fromHistory += float64(cn.Hours(catalog.Channel(n.Channel)))
	}
	if p.TotalStudyHours != fromHistory {
		t.Errorf("total = %.1f, recomputed from history = %.1f", p.TotalStudyHours, fromHistory)
	}
}

// TestFailedNodeLifecycle walks a node through failed, re-opened by
// further study, cycled back by a downgrade, and finally completed.
func TestFailedNodeLifecycle(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	// Failing without a channel move leaves the node failed.
	p, err := s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.5, Passed: false, NextChannel: catalog.ChannelB,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.Nodes["api_calling"].Status != string(StatusFailed) {
		t.Fatalf("status = %q, want failed", p.Nodes["api_calling"].Status)
	}

	// Resuming work re-opens it.
	p, err = s.AddStudyTime(ctx, "s1", "api_calling", 1.0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Nodes["api_calling"].Status != string(StatusInProgress) {
		t.Errorf("status = %q, want in_progress after studying", p.Nodes["api_calling"].Status)
	}

	// A downgrade cycles the failed node back for the retry.
	p, err = s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.4, Passed: false, NextChannel: catalog.ChannelA,
	})
	if err != nil {
		t.Fatalf("apply downgrade: %v", err)
	}
	node := p.Nodes["api_calling"]
	if node.Status != string(StatusUnlocked) {
		t.Errorf("status = %q, want unlocked after downgrade", node.Status)
	}
	if node.Channel != "A" {
		t.Errorf("retry channel = %q, want A", node.Channel)
	}
	if node.Retries != 2 {
		t.Errorf("retries = %d, want 2", node.Retries)
	}

	// Passing on the easier channel completes with that channel's hours.
	p, err = s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.7, Passed: true, NextChannel: catalog.ChannelA,
	})
	if err != nil {
		t.Fatalf("apply pass: %v", err)
	}
	node = p.Nodes["api_calling"]
	if node.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want completed", node.Status)
	}
	if node.Channel != "A" {
		t.Errorf("completed channel = %q, want A", node.Channel)
	}
	if node.StudyHours != 5.0 {
		t.Errorf("node hours = %.1f, want 5.0 (1 logged + 4 estimate on A)", node.StudyHours)
	}
}

func TestLastActivityTracksMutations(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	p, err := s.Initialize(ctx, "s1", catalog.ChannelB)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if p.LastActivityAt.IsZero() {
		t.Fatal("last activity should be set at initialization")
	}
	initAt := p.LastActivityAt

	p, err = s.AddStudyTime(ctx, "s1", "api_calling", 1.0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.LastActivityAt.Before(initAt) {
		t.Errorf("last activity %v regressed before %v", p.LastActivityAt, initAt)
	}

	p, err = s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.9, Passed: true, NextChannel: catalog.ChannelB,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.LastActivityAt.Before(initAt) {
		t.Errorf("last activity %v regressed before %v", p.LastActivityAt, initAt)
	}
}

func TestFrustrationCaps(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelA); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	var p *store.StudentProgress
	var err error
	for i := 0; i < 15; i++ {
		p, err = s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
			Mastery: 0.3, Passed: false, NextChannel: catalog.ChannelA,
		})
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if p.FrustrationLevel != 1.0 {
		t.Errorf("frustration = %.2f, want capped at 1.0", p.FrustrationLevel)
	}
}

func TestUnlockFollowsPrerequisites(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	pass := func(nodeID string) *store.StudentProgress {
		t.Helper()
		p, err := s.ApplyOutcome(ctx, "s1", nodeID, Outcome{
			Mastery: 0.8, Passed: true, NextChannel: catalog.ChannelB,
		})
		if err != nil {
			t.Fatalf("pass %s: %v", nodeID, err)
		}
		return p
	}

	p := pass("api_calling")
	if p.Nodes["model_deployment"].Status == string(StatusLocked) {
		t.Error("model_deployment should unlock after api_calling")
	}

	p = pass("model_deployment")
	p = pass("no_code_ai")
	if p.Nodes["rag_system"].Status == string(StatusLocked) {
		t.Error("rag_system should unlock after no_code_ai")
	}
	if p.CurrentNode != "rag_system" {
		t.Errorf("current = %q, want rag_system", p.CurrentNode)
	}
}

func TestResetThenReinitialize(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Initialize(ctx, "s1", catalog.ChannelB); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := s.AddStudyTime(ctx, "s1", "api_calling", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.ApplyOutcome(ctx, "s1", "api_calling", Outcome{
		Mastery: 0.4, Passed: false, NextChannel: catalog.ChannelA,
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := s.Reset(ctx, "s1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("get after reset: err = %v, want ErrNotInitialized", err)
	}

	p, err := s.Initialize(ctx, "s1", catalog.ChannelC)
	if err != nil {
		t.Fatalf("reinitialize: %v", err)
	}
	if p.TotalStudyHours != 0 || p.FrustrationLevel != 0 {
		t.Errorf("state not clean: hours=%.1f frustration=%.2f", p.TotalStudyHours, p.FrustrationLevel)
	}
	if p.Nodes["api_calling"].Retries != 0 {
		t.Errorf("retries = %d, want 0", p.Nodes["api_calling"].Retries)
	}
	if p.Channel != "C" {
		t.Errorf("channel = %q, want C", p.Channel)
	}
}

// TestResetMissingIsNoOp covers the idempotent delete contract.
func TestResetMissingIsNoOp(t *testing.T) {
	s := newTestService()
	if err := s.Reset(context.Background(), "ghost"); err != nil {
		t.Fatalf("reset missing: %v", err)
	}
}
