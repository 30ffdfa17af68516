// Package pool distributes guess evaluation across workers.
//
// The outer loop over guesses is embarrassingly parallel: every worker reads
// the immutable solution set and writes one record into its own slot of an
// index-addressed slice, so no locking is needed on the results. The merged
// slice keeps vocabulary order, which the ranking sort relies on for
// deterministic tie-breaking.
package pool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davost/wordrank/internal/domain/ranking"
	"github.com/davost/wordrank/internal/domain/words"
	"github.com/davost/wordrank/pkg/logger"
	"github.com/davost/wordrank/pkg/metrics"
)

// Evaluator scores a single guess against the solution set.
type Evaluator func(ctx context.Context, index int, guess words.Word) (ranking.Record, error)

// Pool runs evaluations with a fixed number of workers.
type Pool struct {
	workers  int
	onResult func()
	logger   logger.Logger
}

// New creates a pool with configuration options.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers: defaultWorkers(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pool")
	}
	return p
}

// Run evaluates every guess and returns the records in vocabulary order.
// The first evaluation error cancels the remaining work and is returned.
func (p *Pool) Run(ctx context.Context, guesses []words.Word, evaluate Evaluator) ([]ranking.Record, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	metrics.UpdateWorkerCount(p.workers)
	defer metrics.UpdateWorkerCount(0)

	records := make([]ranking.Record, len(guesses))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				record, err := evaluate(ctx, i, guesses[i])
				if err != nil {
					fail(err)
					return
				}
				records[i] = record
				metrics.ObserveEvaluation(time.Since(start))
				if p.onResult != nil {
					p.onResult()
				}
			}
		}()
	}

	// Feed guess indices until done or cancelled.
	go func() {
		defer close(jobs)
		for i := range guesses {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("evaluate guesses: %w", firstErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluate guesses: %w", err)
	}
	return records, nil
}
