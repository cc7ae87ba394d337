package assess

import "strings"

// categoryBundles are the standing remediation bundles recommended when
// a category lands under the resource threshold.
var categoryBundles = map[Category][]string{
	CategoryIdea: {
		"micro-lesson: framing a problem statement",
		"guided exercise: user-needs interview script",
		"reference: feasibility one-pager template",
	},
	CategoryUI: {
		"micro-lesson: visual hierarchy basics",
		"guided exercise: wireframe critique walkthrough",
		"reference: accessibility checklist (WCAG AA)",
	},
	CategoryCode: {
		"micro-lesson: defensive error handling",
		"guided exercise: refactoring to small functions",
		"reference: unit testing starter patterns",
	},
}

// keywordResources maps diagnosis keywords onto targeted resources. The
// match is case-insensitive over the issue and fix text; each rule fires
// at most once.
var keywordResources = []struct {
	keyword  string
	resource string
}{
	{"contrast", "reference: color contrast standard (4.5:1 minimum)"},
	{"touch target", "reference: touch target sizing guide (44pt minimum)"},
	{"error handling", "micro-lesson: graceful failure and retries"},
	{"test coverage", "guided exercise: writing table-driven tests"},
	{"naming", "reference: naming conventions cheat sheet"},
	{"feasibility", "reference: technical feasibility assessment template"},
	{"navigation", "guided exercise: information architecture sketching"},
	{"performance", "micro-lesson: profiling before optimizing"},
}

// recommendResources builds the resource list for a result: the full
// bundle for every category under the threshold, then keyword-triggered
// specifics from the diagnosis. Duplicates are dropped keeping first
// occurrence, and the list is capped.
func (a *Aggregator) recommendResources(scores map[Category]float64, diagnosis []Diagnosis) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(r string) {
		if seen[r] || len(out) >= a.cfg.MaxResources {
			return
		}
		seen[r] = true
		out = append(out, r)
	}

	for _, cat := range AllCategories() {
		if scores[cat] >= a.cfg.ResourceThreshold {
			continue
		}
		for _, r := range categoryBundles[cat] {
			add(r)
		}
	}

	for _, rule := range keywordResources {
		for _, d := range diagnosis {
			text := strings.ToLower(d.Issue + " " + d.Fix)
			if strings.Contains(text, rule.keyword) {
				add(rule.resource)
				break
			}
		}
	}

	return out
}
