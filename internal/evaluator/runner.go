package evaluator

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akoirala/pathwise/internal/assess"
)

// DefaultTimeout bounds one evaluator call, including its retries.
const DefaultTimeout = 90 * time.Second

// Runner fans a submission out to all category evaluators concurrently
// and collects what came back. A failed or timed-out evaluator yields a
// missing category, not a failed run; the aggregator substitutes for it.
type Runner struct {
	evaluators []Evaluator
	timeout    time.Duration
}

// NewRunner creates a Runner over the given evaluators. timeout <= 0
// uses DefaultTimeout.
func NewRunner(timeout time.Duration, evaluators ...Evaluator) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{evaluators: evaluators, timeout: timeout}
}

// RunAll evaluates the submission under every category concurrently.
// The result map holds one entry per evaluator that succeeded; errs
// records why the others are absent. Cancelling ctx stops all
// evaluators.
func (r *Runner) RunAll(ctx context.Context, sub Submission, tc TaskContext) (map[assess.Category]*assess.Evaluation, map[assess.Category]error) {
	var mu sync.Mutex
	results := make(map[assess.Category]*assess.Evaluation, len(r.evaluators))
	errs := make(map[assess.Category]error)

	g, gctx := errgroup.WithContext(ctx)
	for _, ev := range r.evaluators {
		g.Go(func() error {
			evCtx, cancel := context.WithTimeout(gctx, r.timeout)
			defer cancel()

			eval, err := ev.Evaluate(evCtx, sub, tc)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Recorded, not returned: one slow or broken grader must
				// not cancel the others.
				errs[ev.Category()] = err
				return nil
			}
			results[ev.Category()] = eval
			return nil
		})
	}
	g.Wait()

	return results, errs
}
