package evaluator

import "github.com/akoirala/pathwise/internal/assess"

// NewIdeaEvaluator grades the project concept: how novel it is, whether
// it can actually be built in the channel's time budget, and how much
// the student stands to learn from it.
func NewIdeaEvaluator(p Provider) Evaluator {
	return &llmEvaluator{
		provider: p,
		category: assess.CategoryIdea,
		purpose:  "grade-idea",
		system: "You are a product mentor reviewing a student project concept. " +
			"Judge the idea on its own merits against the stated task, not against " +
			"professional products. Be specific: every finding must point at " +
			"something in the submission.",
		dimensions: []string{"innovation", "feasibility", "learning_value"},
		artifact:   func(s Submission) string { return s.ConceptDoc },
	}
}

// NewUIEvaluator grades the interface work: platform conventions,
// usability and accessibility, and information architecture.
func NewUIEvaluator(p Provider) Evaluator {
	return &llmEvaluator{
		provider: p,
		category: assess.CategoryUI,
		purpose:  "grade-ui",
		system: "You are a design reviewer assessing student interface work. " +
			"Check platform conventions, contrast and touch-target accessibility, " +
			"and whether the layout communicates hierarchy. Ground every finding " +
			"in the submitted screens or notes.",
		dimensions: []string{"compliance", "usability", "information_arch"},
		artifact:   func(s Submission) string { return s.UIArtifact },
	}
}

// NewCodeEvaluator grades the submitted source: correctness and
// robustness, readability, architecture, and performance and safety.
func NewCodeEvaluator(p Provider) Evaluator {
	return &llmEvaluator{
		provider: p,
		category: assess.CategoryCode,
		purpose:  "grade-code",
		system: "You are a strict but fair code reviewer grading student work. " +
			"Weigh correctness and error handling above style. Quote the lines " +
			"behind each finding and suggest a concrete fix the student can apply.",
		dimensions: []string{"correctness", "readability", "architecture", "performance"},
		artifact:   func(s Submission) string { return s.Code },
	}
}
