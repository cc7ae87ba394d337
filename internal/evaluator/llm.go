package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/llm"
)

const evaluateMaxTokens = 2000

// llmEvaluator is the shared engine behind the three category
// evaluators. Each instance differs only in its rubric: category,
// system prompt, dimension list, and which submission artifact it
// reads.
type llmEvaluator struct {
	provider   Provider
	category   assess.Category
	purpose    string
	system     string
	dimensions []string
	artifact   func(Submission) string
}

// Provider is the slice of the LLM layer the evaluators need.
type Provider interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

func (e *llmEvaluator) Category() assess.Category {
	return e.category
}

func (e *llmEvaluator) Evaluate(ctx context.Context, sub Submission, tc TaskContext) (*assess.Evaluation, error) {
	ctx = llm.WithPurpose(ctx, e.purpose)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:    e.system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: e.prompt(sub, tc)}},
		Schema:    evaluationSchema(string(e.category), e.dimensions),
		MaxTokens: evaluateMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", e.category, err)
	}

	return e.parse(resp.Content)
}

// prompt renders the grading request: what the task asked for, what the
// student handed in, and the dimensions to score.
func (e *llmEvaluator) prompt(sub Submission, tc TaskContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s (%s)\n", tc.Node.Name, tc.Node.ID)
	fmt.Fprintf(&b, "Channel: %s\n", tc.Channel.DisplayName())
	fmt.Fprintf(&b, "Task: %s\n", tc.Task.Description)
	if len(tc.Task.Requirements) > 0 {
		fmt.Fprintf(&b, "Requirements: %s\n", strings.Join(tc.Task.Requirements, "; "))
	}
	if len(tc.Task.Deliverables) > 0 {
		fmt.Fprintf(&b, "Expected deliverables: %s\n", strings.Join(tc.Task.Deliverables, "; "))
	}

	b.WriteString("\nSubmission:\n")
	artifact := e.artifact(sub)
	if artifact == "" {
		artifact = "(no artifact provided for this category)"
	}
	b.WriteString(artifact)
	b.WriteString("\n")

	if len(sub.Links) > 0 {
		fmt.Fprintf(&b, "\nSupporting links: %s\n", strings.Join(sub.Links, ", "))
	}

	fmt.Fprintf(&b, "\nScore each dimension 0-100: %s.\n", strings.Join(e.dimensions, ", "))
	b.WriteString("For every dimension below 70, add a diagnosis entry with a concrete fix. " +
		"Priority runs 1 (blocking) to 5 (cosmetic). " +
		"Cite evidence from the submission for each finding.")

	return b.String()
}

// wireEvaluation is the JSON shape the schema asks the model for.
type wireEvaluation struct {
	Dimensions []struct {
		Dimension   string   `json:"dimension"`
		Score       float64  `json:"score"`
		Issues      []string `json:"issues"`
		Suggestions []string `json:"suggestions"`
	} `json:"dimensions"`
	Diagnosis []struct {
		Dimension string `json:"dimension"`
		Issue     string `json:"issue"`
		Fix       string `json:"fix"`
		Priority  int    `json:"priority"`
	} `json:"diagnosis"`
	Evidence []string `json:"evidence"`
}

func (e *llmEvaluator) parse(raw json.RawMessage) (*assess.Evaluation, error) {
	var wire wireEvaluation
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	if len(wire.Dimensions) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("no dimensions in %s evaluation", e.category),
		}
	}

	eval := &assess.Evaluation{
		Category: e.category,
		Evidence: wire.Evidence,
	}

	weight := 1.0 / float64(len(e.dimensions))
	total := 0.0
	for _, d := range wire.Dimensions {
		score := clamp(d.Score)
		total += score
		eval.Breakdown = append(eval.Breakdown, assess.DimensionScore{
			Dimension:   qualify(e.category, d.Dimension),
			Score:       score,
			Weight:      weight,
			Issues:      d.Issues,
			Suggestions: d.Suggestions,
		})
	}
	// The category score is the plain mean of its dimensions; the model's
	// own arithmetic is ignored.
	eval.OverallScore = total / float64(len(wire.Dimensions))

	for _, d := range wire.Diagnosis {
		eval.Diagnosis = append(eval.Diagnosis, assess.Diagnosis{
			Dimension: qualify(e.category, d.Dimension),
			Issue:     d.Issue,
			Fix:       d.Fix,
			Priority:  clampPriority(d.Priority),
		})
	}
	e.fillDiagnosis(eval)

	return eval, nil
}

// fillDiagnosis backstops the model: any dimension under 70 without a
// finding gets a generic one, so weak dimensions always surface in the
// merged diagnosis.
func (e *llmEvaluator) fillDiagnosis(eval *assess.Evaluation) {
	covered := make(map[string]bool, len(eval.Diagnosis))
	for _, d := range eval.Diagnosis {
		covered[d.Dimension] = true
	}
	for _, ds := range eval.Breakdown {
		if ds.Score >= 70 || covered[ds.Dimension] {
			continue
		}
		priority := 2
		if ds.Score < 60 {
			priority = 1
		}
		issue := fmt.Sprintf("%s scored %.0f", ds.Dimension, ds.Score)
		if len(ds.Issues) > 0 {
			issue = ds.Issues[0]
		}
		fix := "Revise this aspect before resubmitting"
		if len(ds.Suggestions) > 0 {
			fix = ds.Suggestions[0]
		}
		eval.Diagnosis = append(eval.Diagnosis, assess.Diagnosis{
			Dimension: ds.Dimension,
			Issue:     issue,
			Fix:       fix,
			Priority:  priority,
		})
	}
}

// evaluationSchema builds the structured-output schema for one category.
func evaluationSchema(category string, dimensions []string) *llm.Schema {
	dims := make([]any, len(dimensions))
	for i, d := range dimensions {
		dims[i] = d
	}
	return &llm.Schema{
		Name:        category + "-evaluation",
		Description: "Rubric scores, findings, and evidence for one submission category",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dimensions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"dimension":   map[string]any{"type": "string", "enum": dims},
							"score":       map[string]any{"type": "number"},
							"issues":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"dimension", "score"},
					},
				},
				"diagnosis": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"dimension": map[string]any{"type": "string"},
							"issue":     map[string]any{"type": "string"},
							"fix":       map[string]any{"type": "string"},
							"priority":  map[string]any{"type": "integer"},
						},
						"required": []any{"dimension", "issue", "fix", "priority"},
					},
				},
				"evidence": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"dimensions"},
		},
	}
}

// qualify prefixes a bare dimension name with its category, so findings
// merge under stable keys like "code.correctness".
func qualify(cat assess.Category, dim string) string {
	if strings.Contains(dim, ".") {
		return dim
	}
	return string(cat) + "." + dim
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func clampPriority(p int) int {
	if p < 1 {
		return 1
	}
	if p > 5 {
		return 5
	}
	return p
}
