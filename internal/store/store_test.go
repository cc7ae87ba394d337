package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProgress(studentID string) *StudentProgress {
	started := time.Now().UTC().Truncate(time.Second)
	return &StudentProgress{
		StudentID:        studentID,
		CurrentNode:      "api_calling",
		Channel:          "B",
		FrustrationLevel: 0.1,
		TotalStudyHours:  3.5,
		LastActivityAt:   started,
		Nodes: map[string]*NodeProgress{
			"api_calling": {
				NodeID:     "api_calling",
				Status:     "in_progress",
				Channel:    "B",
				StudyHours: 3.5,
				StartedAt:  &started,
			},
			"model_deployment": {
				NodeID:  "model_deployment",
				Status:  "locked",
				Channel: "B",
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before create: err = %v, want ErrNotFound", err)
	}

	if err := repo.Create(ctx, sampleProgress("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentNode != "api_calling" || got.Channel != "B" {
		t.Errorf("head = (%s, %s), want (api_calling, B)", got.CurrentNode, got.Channel)
	}
	if len(got.Nodes) != 2 {
		t.Fatalf("node rows = %d, want 2", len(got.Nodes))
	}
	if got.Nodes["api_calling"].Status != "in_progress" {
		t.Errorf("api_calling status = %q", got.Nodes["api_calling"].Status)
	}
	if got.Nodes["api_calling"].StartedAt == nil {
		t.Error("api_calling started_at should round-trip")
	}
	if got.LastActivityAt.IsZero() {
		t.Error("last_activity_at should round-trip")
	}
	if got.Nodes["model_deployment"].StartedAt != nil {
		t.Error("model_deployment started_at should stay nil")
	}
}

func TestProgressCreateTwiceFails(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, sampleProgress("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, sampleProgress("s1"))
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second create: err = %v, want ErrAlreadyExists", err)
	}
}

func TestProgressUpdateRewritesNodes(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := sampleProgress("s1")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	done := time.Now().UTC().Truncate(time.Second)
	p.CurrentNode = "model_deployment"
	p.Nodes["api_calling"].Status = "completed"
	p.Nodes["api_calling"].MasteryScore = 0.9
	p.Nodes["api_calling"].CompletedAt = &done
	p.Nodes["model_deployment"].Status = "in_progress"

	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentNode != "model_deployment" {
		t.Errorf("current node = %q, want model_deployment", got.CurrentNode)
	}
	if got.Nodes["api_calling"].Status != "completed" {
		t.Errorf("api_calling status = %q, want completed", got.Nodes["api_calling"].Status)
	}
	if got.Nodes["api_calling"].CompletedAt == nil {
		t.Error("completed_at should round-trip")
	}
}

func TestProgressUpdateUnknownStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	err := repo.Update(context.Background(), sampleProgress("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: err = %v, want ErrNotFound", err)
	}
}

func TestProgressDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, sampleProgress("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestAssessmentSaveAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	recs := []*AssessmentRecord{
		{
			AssessmentID: "a1", StudentID: "s1", NodeID: "api_calling",
			Channel: "B", OverallScore: 45, Level: "need_improvement",
			Passed:         false,
			CategoryScores: map[string]float64{"idea": 40, "ui": 45, "code": 50},
			Diagnosis: []DiagnosisEntry{
				{Dimension: "code.correctness", Issue: "syntax error", Fix: "fix it", Priority: 1},
			},
			Resources: []string{"micro-lesson: defensive error handling"},
			Feedback:  "Not there yet.",
			CreatedAt: base,
		},
		{
			AssessmentID: "a2", StudentID: "s1", NodeID: "api_calling",
			Channel: "A", OverallScore: 72, Level: "pass",
			Passed:         true,
			CategoryScores: map[string]float64{"idea": 70, "ui": 70, "code": 75},
			Feedback:       "Good work.",
			CreatedAt:      base.Add(time.Hour),
		},
	}
	for _, rec := range recs {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", rec.AssessmentID, err)
		}
	}

	latest, err := repo.LatestForNode(ctx, "s1", "api_calling")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.AssessmentID != "a2" {
		t.Errorf("latest = %s, want a2", latest.AssessmentID)
	}

	all, err := repo.ListByStudent(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list len = %d, want 2", len(all))
	}
	if all[0].AssessmentID != "a2" {
		t.Errorf("list[0] = %s, want a2 (newest first)", all[0].AssessmentID)
	}
	if len(all[1].Diagnosis) != 1 || all[1].Diagnosis[0].Dimension != "code.correctness" {
		t.Errorf("diagnosis did not round-trip: %+v", all[1].Diagnosis)
	}

	failures, err := repo.CountFailures(ctx, "s1", "api_calling")
	if err != nil {
		t.Fatalf("count failures: %v", err)
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}

	if _, err := repo.LatestForNode(ctx, "s1", "rag_system"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("latest for unassessed node: err = %v, want ErrNotFound", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"grade-idea", "grade-ui", "grade-code"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    120,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Purpose != "grade-code" {
		t.Errorf("events[0].purpose = %q, want grade-code (newest first)", events[0].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence not descending: %d then %d", events[0].Sequence, events[1].Sequence)
	}
}
