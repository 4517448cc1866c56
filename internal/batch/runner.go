// Package batch validates many workflow contexts with bounded concurrency.
// The engine itself is pure, so parallelism is safe; the semaphore only
// keeps large batches from monopolizing the scheduler.
package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"enercheck/domain/workflow"
	"enercheck/internal/logging"
	"enercheck/ports"
)

// DefaultConcurrency bounds parallel validations when the caller does not
// configure a weight.
const DefaultConcurrency = 4

// Runner fans workflow contexts out across the validator
type Runner struct {
	validator ports.ValidatorPort
	sem       *semaphore.Weighted
	log       *logging.Logger
}

// NewRunner creates a batch runner with the given concurrency bound
func NewRunner(validator ports.ValidatorPort, concurrency int, log *logging.Logger) *Runner {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if log == nil {
		log = logging.Default
	}
	return &Runner{
		validator: validator,
		sem:       semaphore.NewWeighted(int64(concurrency)),
		log:       log.WithComponent("BatchRunner"),
	}
}

// ValidateAll validates every context and returns reports in input order
// regardless of scheduling. Acquisition is context-aware: cancellation
// stops launching new work, drains what is in flight, and returns the
// context's error. Reports for items that never ran are nil.
func (r *Runner) ValidateAll(ctx context.Context, contexts []workflow.Context) ([]*ports.Report, error) {
	reports := make([]*ports.Report, len(contexts))

	var wg sync.WaitGroup
	var launchErr error

	for i := range contexts {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			launchErr = err
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer r.sem.Release(1)
			report, err := r.validator.ValidateWorkflow(ctx, contexts[i])
			if err != nil {
				// The pure engine cannot fail; surface it anyway in case a
				// decorated validator can.
				r.log.Error("workflow %d failed validation dispatch: %v", i, err)
				return
			}
			reports[i] = report
		}(i)
	}

	wg.Wait()

	if launchErr != nil {
		r.log.Warn("batch cancelled after launching %d of %d workflows", countNonNil(reports), len(contexts))
		return reports, launchErr
	}
	r.log.Info("batch complete: %d workflows validated", len(contexts))
	return reports, nil
}

func countNonNil(reports []*ports.Report) int {
	n := 0
	for _, r := range reports {
		if r != nil {
			n++
		}
	}
	return n
}
