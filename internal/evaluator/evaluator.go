// Package evaluator grades one submission along the three rubric
// categories. Each category has its own LLM-backed evaluator; the
// Runner fans them out concurrently and collects whatever came back so
// the aggregator can score a partial set.
package evaluator

import (
	"context"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/catalog"
)

// Submission carries the artifacts a student hands in at a checkpoint.
// Not every node requires every artifact; evaluators skip gracefully
// when their input is empty by scoring what is there.
type Submission struct {
	StudentID string
	NodeID    string

	// ConceptDoc is the project idea writeup: problem, users, features,
	// intended stack.
	ConceptDoc string

	// UIArtifact describes the interface work: wireframe notes, screen
	// descriptions, or links rendered to text.
	UIArtifact string

	// Code is the submitted source, concatenated.
	Code string

	// Links are supporting references (repos, demos, documents).
	Links []string
}

// TaskContext tells the evaluators what the submission was supposed to
// accomplish.
type TaskContext struct {
	Node    catalog.PathNode
	Channel catalog.Channel
	Task    catalog.ChannelTask
}

// Evaluator scores one rubric category of a submission.
type Evaluator interface {
	// Category identifies which rubric category this evaluator covers.
	Category() assess.Category

	// Evaluate grades the submission. The returned evaluation carries
	// the category overall score, the per-dimension breakdown, and any
	// diagnosis findings.
	Evaluate(ctx context.Context, sub Submission, tc TaskContext) (*assess.Evaluation, error)
}
