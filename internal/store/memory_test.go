package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemProgressRepoIsolation(t *testing.T) {
	repo := NewMemProgressRepo()
	ctx := context.Background()

	p := sampleProgress("s1")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the original must not leak into the stored copy.
	p.Channel = "C"
	p.Nodes["api_calling"].Status = "completed"

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Channel != "B" {
		t.Errorf("channel = %q, want B (stored copy mutated)", got.Channel)
	}
	if got.Nodes["api_calling"].Status != "in_progress" {
		t.Errorf("node status = %q, want in_progress", got.Nodes["api_calling"].Status)
	}

	// Same for the returned copy.
	got.FrustrationLevel = 0.9
	again, _ := repo.Get(ctx, "s1")
	if again.FrustrationLevel != 0.1 {
		t.Errorf("frustration = %.2f, want 0.1", again.FrustrationLevel)
	}
}

func TestMemProgressRepoCreateTwice(t *testing.T) {
	repo := NewMemProgressRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, sampleProgress("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, sampleProgress("s1")); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second create: err = %v, want ErrAlreadyExists", err)
	}
}

func TestMemProgressRepoUpdateAndDelete(t *testing.T) {
	repo := NewMemProgressRepo()
	ctx := context.Background()

	if err := repo.Update(ctx, sampleProgress("ghost")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: err = %v, want ErrNotFound", err)
	}

	p := sampleProgress("s1")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	p.CurrentNode = "model_deployment"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repo.Get(ctx, "s1")
	if got.CurrentNode != "model_deployment" {
		t.Errorf("current node = %q", got.CurrentNode)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestMemAssessmentRepo(t *testing.T) {
	repo := NewMemAssessmentRepo()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, rec := range []*AssessmentRecord{
		{AssessmentID: "a1", StudentID: "s1", NodeID: "n1", Passed: false},
		{AssessmentID: "a2", StudentID: "s1", NodeID: "n1", Passed: false},
		{AssessmentID: "a3", StudentID: "s1", NodeID: "n1", Passed: true},
		{AssessmentID: "a4", StudentID: "s2", NodeID: "n1", Passed: true},
	} {
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	latest, err := repo.LatestForNode(ctx, "s1", "n1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.AssessmentID != "a3" {
		t.Errorf("latest = %s, want a3", latest.AssessmentID)
	}

	list, err := repo.ListByStudent(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].AssessmentID != "a3" {
		t.Errorf("list = %v", list)
	}

	failures, err := repo.CountFailures(ctx, "s1", "n1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if failures != 2 {
		t.Errorf("failures = %d, want 2", failures)
	}

	if _, err := repo.LatestForNode(ctx, "s3", "n1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("latest missing: err = %v, want ErrNotFound", err)
	}
}

// TestMemAssessmentRepoBreaksTimestampTies saves records sharing one
// CreatedAt and checks insertion order decides newest-first.
func TestMemAssessmentRepoBreaksTimestampTies(t *testing.T) {
	repo := NewMemAssessmentRepo()
	ctx := context.Background()

	at := time.Now().UTC()
	for _, id := range []string{"a1", "a2", "a3"} {
		rec := &AssessmentRecord{AssessmentID: id, StudentID: "s1", NodeID: "n1", CreatedAt: at}
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	list, err := repo.ListByStudent(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a3", "a2", "a1"}
	for i, w := range want {
		if list[i].AssessmentID != w {
			t.Errorf("list[%d] = %s, want %s", i, list[i].AssessmentID, w)
		}
	}

	latest, err := repo.LatestForNode(ctx, "s1", "n1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.AssessmentID != "a3" {
		t.Errorf("latest = %s, want a3 (last saved)", latest.AssessmentID)
	}
}

func TestMemEventRepo(t *testing.T) {
	repo := NewMemEventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"grade-idea", "grade-ui", "grade-code"} {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: purpose, Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.ListLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	if events[0].Purpose != "grade-code" {
		t.Errorf("events[0] = %q, want grade-code", events[0].Purpose)
	}
	if events[0].Sequence != 3 {
		t.Errorf("sequence = %d, want 3", events[0].Sequence)
	}
}
