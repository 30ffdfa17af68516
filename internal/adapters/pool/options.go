package pool

import (
	"runtime"

	"github.com/davost/wordrank/pkg/logger"
)

func defaultWorkers() int {
	return runtime.NumCPU()
}

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the number of evaluation workers.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithOnResult registers a callback invoked after every completed
// evaluation, from worker goroutines. Used for progress reporting.
func WithOnResult(fn func()) Option {
	return func(p *Pool) {
		p.onResult = fn
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}
