package recommend

import (
	"fmt"
	"time"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/policy"
	"github.com/akoirala/pathwise/internal/progress"
	"github.com/akoirala/pathwise/internal/store"
)

// Engine produces path recommendations over a fixed catalog and
// decision calibration.
type Engine struct {
	cat *catalog.Catalog
	th  policy.Thresholds
}

// NewEngine creates an Engine. Zero thresholds fall back to the
// default calibration.
func NewEngine(cat *catalog.Catalog, th policy.Thresholds) *Engine {
	if th == (policy.Thresholds{}) {
		th = policy.DefaultThresholds()
	}
	return &Engine{cat: cat, th: th}
}

// NextStep derives the next-step recommendation from the current path
// state and, when present, the latest assessment result. A nil result
// means no fresh signal, so the channel decision is Keep.
func (e *Engine) NextStep(p *store.StudentProgress, result *assess.Result) (*PathRecommendation, error) {
	current := catalog.Channel(p.Channel)
	if !current.Valid() {
		return nil, fmt.Errorf("recommend: invalid channel %q on progress", p.Channel)
	}

	d := policy.DecisionKeep
	var triggers []string
	if result != nil {
		retries := 0
		if n := p.Nodes[result.NodeID]; n != nil {
			retries = n.Retries
		}
		d = policy.Decide(e.th, result.Mastery(), p.FrustrationLevel, retries)
		triggers = e.triggerFactors(result.Mastery(), p.FrustrationLevel, retries, d)
	}

	recommended := policy.Apply(current, d)
	nextNode := e.nextWorkNode(p)

	rec := &PathRecommendation{
		StudentID:          p.StudentID,
		Decision:           d,
		CurrentChannel:     current,
		RecommendedChannel: recommended,
		NextNode:           nextNode,
		Reasoning:          reasoning(d, current, recommended),
		TriggerFactors:     triggers,
		Alternatives:       alternatives(recommended),
		CreatedAt:          time.Now().UTC(),
	}

	if nextNode != "" {
		node, err := e.cat.Node(nextNode)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		rec.EstimatedHours = node.Hours(recommended)
		if d == policy.DecisionDowngrade {
			rec.ScaffoldResources = node.AllRemedyResources()
		}
	}
	return rec, nil
}

// nextWorkNode is the node the student should work on: the current node
// while it is unfinished, otherwise the next unfinished node in
// sequence. Empty when the course is done.
func (e *Engine) nextWorkNode(p *store.StudentProgress) string {
	finished := func(id string) bool {
		n := p.Nodes[id]
		return n != nil && n.Status == string(progress.StatusCompleted)
	}

	if p.CurrentNode != "" && !finished(p.CurrentNode) {
		return p.CurrentNode
	}
	for next, ok := e.cat.NextNode(p.CurrentNode); ok; next, ok = e.cat.NextNode(next) {
		if !finished(next) {
			return next
		}
	}
	return ""
}

// triggerFactors spells out which thresholds drove the decision.
func (e *Engine) triggerFactors(mastery, frustration float64, retries int, d policy.Decision) []string {
	var out []string
	switch d {
	case policy.DecisionDowngrade:
		if mastery < e.th.PassMastery {
			out = append(out, fmt.Sprintf("mastery %.2f below pass threshold %.2f", mastery, e.th.PassMastery))
		}
		if retries >= e.th.MaxRetries {
			out = append(out, fmt.Sprintf("retries %d reached limit %d", retries, e.th.MaxRetries))
		}
	case policy.DecisionUpgrade:
		out = append(out,
			fmt.Sprintf("mastery %.2f above %.2f", mastery, e.th.UpgradeMastery),
			fmt.Sprintf("frustration %.2f below %.2f", frustration, e.th.UpgradeFrustration),
		)
	default:
		out = append(out, fmt.Sprintf("mastery %.2f within keep band", mastery))
	}
	return out
}

func reasoning(d policy.Decision, current, recommended catalog.Channel) string {
	switch d {
	case policy.DecisionUpgrade:
		if recommended == current {
			return "Strong result on the hardest channel; keep pushing on challenge work."
		}
		return fmt.Sprintf("Strong result with low frustration; move up to the %s channel.", recommended.DisplayName())
	case policy.DecisionDowngrade:
		if recommended == current {
			return "Struggling on the basic channel; stay and work through the scaffold resources."
		}
		return fmt.Sprintf("Result below the pass bar; step down to the %s channel with scaffolding.", recommended.DisplayName())
	default:
		return fmt.Sprintf("Solid result; continue on the %s channel.", current.DisplayName())
	}
}

// alternatives lists the other channels as fallback options.
func alternatives(recommended catalog.Channel) []string {
	var out []string
	for _, ch := range catalog.AllChannels() {
		if ch != recommended {
			out = append(out, fmt.Sprintf("switch to the %s channel", ch.DisplayName()))
		}
	}
	return out
}
