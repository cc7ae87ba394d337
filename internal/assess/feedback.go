package assess

import (
	"fmt"
	"strings"
)

var categoryLabels = map[Category]string{
	CategoryIdea: "Concept",
	CategoryUI:   "Interface",
	CategoryCode: "Implementation",
}

// feedback renders the human-readable summary attached to a result: an
// overall verdict, one line per category, the top issues by priority,
// and a closing directive matching the tier.
func (a *Aggregator) feedback(overall float64, scores map[Category]float64, diagnosis []Diagnosis) string {
	var b strings.Builder

	switch {
	case overall >= a.cfg.ExcellentThreshold:
		fmt.Fprintf(&b, "Excellent work. Overall score %.1f: this submission clears the advanced bar.\n", overall)
	case overall >= a.cfg.PassThreshold:
		fmt.Fprintf(&b, "Good work. Overall score %.1f: the checkpoint is passed.\n", overall)
	default:
		fmt.Fprintf(&b, "Not there yet. Overall score %.1f: below the pass threshold of %.0f.\n", overall, a.cfg.PassThreshold)
	}

	b.WriteString("\n")
	for _, cat := range AllCategories() {
		s := scores[cat]
		fmt.Fprintf(&b, "%s: %.0f (%s)\n", categoryLabels[cat], s, tierWord(s, a.cfg))
	}

	// Diagnosis arrives sorted by priority; surface at most three.
	if len(diagnosis) > 0 {
		b.WriteString("\nTop issues:\n")
		limit := len(diagnosis)
		if limit > 3 {
			limit = 3
		}
		for _, d := range diagnosis[:limit] {
			fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", d.Priority, d.Dimension, d.Issue, d.Fix)
		}
	}

	b.WriteString("\n")
	switch {
	case overall >= a.cfg.ExcellentThreshold:
		b.WriteString("Keep the momentum: the advanced track and its stretch modules are open to you.")
	case overall >= a.cfg.PassThreshold:
		b.WriteString("Address the noted issues as you move on; they will compound in later modules.")
	default:
		b.WriteString("Work through the recommended resources, then resubmit when the top issues are resolved.")
	}

	return b.String()
}

func tierWord(score float64, cfg Config) string {
	switch {
	case score >= cfg.ExcellentThreshold:
		return "excellent"
	case score >= cfg.PassThreshold:
		return "solid"
	default:
		return "needs work"
	}
}
