package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/llm"
)

func testTaskContext(t *testing.T) TaskContext {
	t.Helper()
	c := catalog.MustDefault()
	node, err := c.Node("api_calling")
	if err != nil {
		t.Fatalf("node: %v", err)
	}
	return TaskContext{Node: node, Channel: catalog.ChannelB, Task: node.Task(catalog.ChannelB)}
}

func TestCodeEvaluatorParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"dimensions": [
				{"dimension": "correctness", "score": 90},
				{"dimension": "readability", "score": 80},
				{"dimension": "architecture", "score": 85},
				{"dimension": "performance", "score": 75}
			],
			"diagnosis": [],
			"evidence": ["error paths are covered by tests"]
		}`),
	})
	ev := NewCodeEvaluator(mock)

	if ev.Category() != assess.CategoryCode {
		t.Fatalf("category = %s", ev.Category())
	}

	eval, err := ev.Evaluate(context.Background(), Submission{Code: "package main"}, testTaskContext(t))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.OverallScore != 82.5 {
		t.Errorf("overall = %.1f, want 82.5 (mean of dimensions)", eval.OverallScore)
	}
	if len(eval.Breakdown) != 4 {
		t.Fatalf("breakdown len = %d, want 4", len(eval.Breakdown))
	}
	if eval.Breakdown[0].Dimension != "code.correctness" {
		t.Errorf("dimension = %q, want code.correctness (category-qualified)", eval.Breakdown[0].Dimension)
	}
	if len(eval.Evidence) != 1 {
		t.Errorf("evidence = %v", eval.Evidence)
	}

	// The request should carry the rubric schema and the submission.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "code-evaluation" {
		t.Errorf("schema = %+v", req.Schema)
	}
}

func TestEvaluatorBackfillsDiagnosisForWeakDimensions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"dimensions": [
				{"dimension": "compliance", "score": 80},
				{"dimension": "usability", "score": 55, "issues": ["insufficient contrast"], "suggestions": ["raise contrast to 4.5:1"]},
				{"dimension": "information_arch", "score": 65}
			]
		}`),
	})
	ev := NewUIEvaluator(mock)

	eval, err := ev.Evaluate(context.Background(), Submission{UIArtifact: "wireframes"}, testTaskContext(t))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	byDim := make(map[string]assess.Diagnosis)
	for _, d := range eval.Diagnosis {
		byDim[d.Dimension] = d
	}
	us, ok := byDim["ui.usability"]
	if !ok {
		t.Fatal("expected backfilled diagnosis for ui.usability")
	}
	if us.Priority != 1 {
		t.Errorf("usability priority = %d, want 1 (score below 60)", us.Priority)
	}
	if us.Issue != "insufficient contrast" {
		t.Errorf("issue = %q, want the model's issue text", us.Issue)
	}
	ia, ok := byDim["ui.information_arch"]
	if !ok {
		t.Fatal("expected backfilled diagnosis for ui.information_arch")
	}
	if ia.Priority != 2 {
		t.Errorf("information_arch priority = %d, want 2", ia.Priority)
	}
	if _, ok := byDim["ui.compliance"]; ok {
		t.Error("compliance at 80 should not get a diagnosis")
	}
}

func TestEvaluatorRejectsEmptyDimensions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"dimensions": []}`),
	})
	ev := NewIdeaEvaluator(mock)

	_, err := ev.Evaluate(context.Background(), Submission{ConceptDoc: "an idea"}, testTaskContext(t))
	if err == nil {
		t.Fatal("expected error for empty dimensions")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error type = %T, want *llm.ErrInvalidResponse", err)
	}
}

func TestEvaluatorClampsScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"dimensions": [
				{"dimension": "innovation", "score": 150},
				{"dimension": "feasibility", "score": -10},
				{"dimension": "learning_value", "score": 50}
			]
		}`),
	})
	ev := NewIdeaEvaluator(mock)

	eval, err := ev.Evaluate(context.Background(), Submission{ConceptDoc: "an idea"}, testTaskContext(t))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// (100 + 0 + 50) / 3 = 50
	if eval.OverallScore != 50 {
		t.Errorf("overall = %.1f, want 50 after clamping", eval.OverallScore)
	}
}
