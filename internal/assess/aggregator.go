package assess

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akoirala/pathwise/internal/catalog"
)

// AggregationError indicates nothing could be aggregated: every
// dimension evaluator failed or was absent. The submission is marked
// failed and no progress mutation happens.
type AggregationError struct {
	Reason string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("score aggregation failed: %s", e.Reason)
}

// Config holds the aggregation calibration. The category weights and
// thresholds mirror the course rubric (idea 30%, ui 30%, code 40%;
// pass at 60, excellent at 85).
type Config struct {
	Weights            map[Category]float64
	PassThreshold      float64
	ExcellentThreshold float64
	// SubstituteScore stands in for a missing category: "needs
	// improvement", not zero, so a partial submission is not crushed.
	SubstituteScore   float64
	ResourceThreshold float64 // per-category score below which the bundle is recommended
	MaxResources      int
}

// DefaultConfig returns the standard aggregation calibration.
func DefaultConfig() Config {
	return Config{
		Weights: map[Category]float64{
			CategoryIdea: 0.30,
			CategoryUI:   0.30,
			CategoryCode: 0.40,
		},
		PassThreshold:      60,
		ExcellentThreshold: 85,
		SubstituteScore:    50,
		ResourceThreshold:  70,
		MaxResources:       10,
	}
}

// Aggregator merges the three per-category evaluations into one Result.
type Aggregator struct {
	cfg Config
}

// NewAggregator creates an Aggregator with the given configuration.
func NewAggregator(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Aggregate combines the available category evaluations into a Result.
// A missing category is substituted (score 50, empty diagnosis) and the
// substitution is recorded in EvidenceLinks; only the all-missing case
// fails. Aggregation is order-independent: the same inputs produce the
// same overall score and verdict regardless of arrival order.
func (a *Aggregator) Aggregate(studentID, nodeID string, ch catalog.Channel, evals map[Category]*Evaluation) (*Result, error) {
	present := 0
	for _, cat := range AllCategories() {
		if evals[cat] != nil {
			present++
		}
	}
	if present == 0 {
		return nil, &AggregationError{Reason: "no category evaluations available"}
	}

	scores := make(map[Category]float64, 3)
	var evidence []string
	var merged []Diagnosis

	for _, cat := range AllCategories() {
		ev := evals[cat]
		if ev == nil {
			scores[cat] = a.cfg.SubstituteScore
			evidence = append(evidence, fmt.Sprintf("substituted:%s score=%.0f (evaluator unavailable)", cat, a.cfg.SubstituteScore))
			continue
		}
		scores[cat] = clampScore(ev.OverallScore)
		evidence = append(evidence, ev.Evidence...)
		merged = append(merged, ev.Diagnosis...)
	}

	overall := 0.0
	for cat, w := range a.cfg.Weights {
		overall += scores[cat] * w
	}
	overall = math.Round(overall*10) / 10

	diagnosis := mergeDiagnosis(merged)
	resources := a.recommendResources(scores, diagnosis)
	exit := a.exitRule(overall, scores, diagnosis)
	feedback := a.feedback(overall, scores, diagnosis)

	return &Result{
		AssessmentID:   uuid.NewString(),
		StudentID:      studentID,
		NodeID:         nodeID,
		Channel:        ch,
		OverallScore:   overall,
		CategoryScores: scores,
		Level:          LevelFor(overall),
		Diagnosis:      diagnosis,
		Resources:      resources,
		ExitRule:       exit,
		Feedback:       feedback,
		EvidenceLinks:  evidence,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// mergeDiagnosis sorts ascending by priority (stable, so input order
// breaks ties) and deduplicates on (dimension, issue), keeping the
// first occurrence, which after the sort is the highest-priority one.
func mergeDiagnosis(all []Diagnosis) []Diagnosis {
	sorted := make([]Diagnosis, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	type key struct{ dim, issue string }
	seen := make(map[key]bool, len(sorted))
	out := sorted[:0]
	for _, d := range sorted {
		k := key{d.Dimension, d.Issue}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// exitRule derives the machine-checkable verdict from the aggregate.
func (a *Aggregator) exitRule(overall float64, scores map[Category]float64, diagnosis []Diagnosis) ExitRule {
	rule := ExitRule{
		PassStatus: overall >= a.cfg.PassThreshold,
		Requirements: []string{
			fmt.Sprintf("overall score >= %.0f", a.cfg.PassThreshold),
		},
	}

	if rule.PassStatus {
		if overall >= a.cfg.ExcellentThreshold {
			rule.RecommendedChannel = catalog.ChannelC
			rule.UnlockNodes = advancedUnlocks(scores, a.cfg.ExcellentThreshold)
		} else {
			rule.RecommendedChannel = catalog.ChannelB
		}
		return rule
	}

	rule.RecommendedChannel = catalog.ChannelA
	rule.RequireRemediation = true
	rule.Remedy = remedyActions(diagnosis)

	// No priority-1 findings: fall back to one generic remedy per
	// below-threshold category.
	if len(rule.Remedy) == 0 {
		for _, cat := range AllCategories() {
			if scores[cat] < a.cfg.PassThreshold {
				rule.Remedy = append(rule.Remedy, genericRemedy(cat))
			}
		}
	}

	for _, cat := range AllCategories() {
		if scores[cat] < a.cfg.PassThreshold {
			rule.Requirements = append(rule.Requirements, requirementFor(cat))
		}
	}

	return rule
}

// remedyActions maps priority-1 diagnosis entries onto the
// dimension-specific remediation templates.
func remedyActions(diagnosis []Diagnosis) []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range diagnosis {
		if d.Priority != 1 {
			continue
		}
		action, ok := remedyTemplates[d.Dimension]
		if !ok {
			if d.Fix != "" {
				action = d.Fix
			} else {
				continue
			}
		}
		if seen[action] {
			continue
		}
		seen[action] = true
		out = append(out, action)
	}
	return out
}

var remedyTemplates = map[string]string{
	"code.correctness": "Fix the syntax errors; the submission must pass code review",
	"code.robustness":  "Raise unit-test coverage to at least 80%",
	"ui.accessibility": "Bring contrast ratio to at least 4.5:1 and touch targets to at least 44pt",
	"idea.feasibility": "Submit a technical feasibility document",
}

func genericRemedy(cat Category) string {
	switch cat {
	case CategoryIdea:
		return "Rework the concept with the idea micro-lessons before resubmitting"
	case CategoryUI:
		return "Revise the interface against the design checklist before resubmitting"
	default:
		return "Revise the code against the review checklist before resubmitting"
	}
}

func requirementFor(cat Category) string {
	switch cat {
	case CategoryIdea:
		return "idea score >= 60 with a feasibility argument"
	case CategoryUI:
		return "ui score >= 60 meeting the accessibility checklist"
	default:
		return "code score >= 60 with unit test coverage >= 80%"
	}
}

// advancedUnlocks names the stretch nodes an excellent submission opens,
// keyed off which categories cleared the excellence bar.
func advancedUnlocks(scores map[Category]float64, threshold float64) []string {
	var out []string
	if scores[CategoryCode] >= threshold {
		out = append(out, "microservices", "distributed_systems")
	}
	if scores[CategoryUI] >= threshold {
		out = append(out, "advanced_ui_patterns", "ux_optimization")
	}
	if scores[CategoryIdea] >= threshold {
		out = append(out, "innovation_lab", "research_project")
	}
	return out
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
