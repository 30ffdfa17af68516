// Package service runs a full ranking pass: load the word lists, evaluate
// every guess, and render the table.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/davost/wordrank/internal/adapters/cache"
	"github.com/davost/wordrank/internal/adapters/pool"
	"github.com/davost/wordrank/internal/adapters/wordlist"
	"github.com/davost/wordrank/internal/domain/partition"
	"github.com/davost/wordrank/internal/domain/ranking"
	"github.com/davost/wordrank/internal/domain/scoring"
	"github.com/davost/wordrank/internal/domain/words"
	"github.com/davost/wordrank/internal/report"
	"github.com/davost/wordrank/pkg/logger"
	"github.com/davost/wordrank/pkg/metrics"
)

// Service wires the ranking pipeline together.
type Service struct {
	solutionsPath string
	guessesPath   string
	cachePath     string
	workerCount   int
	trim          int
	breakdownWord string
	color         bool
	progress      bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSolutionsPath sets the solution list file.
func WithSolutionsPath(path string) Option {
	return func(s *Service) {
		s.solutionsPath = path
	}
}

// WithGuessesPath sets the guess vocabulary file. When unset, the solution
// list doubles as the vocabulary.
func WithGuessesPath(path string) Option {
	return func(s *Service) {
		s.guessesPath = path
	}
}

// WithCachePath points the run at a pattern cache file. The cache is
// created on first use and reused while the word lists stay the same.
func WithCachePath(path string) Option {
	return func(s *Service) {
		s.cachePath = path
	}
}

// WithWorkerCount sets the number of evaluation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithTrim keeps only the best and worst rows of the table.
func WithTrim(trim int) Option {
	return func(s *Service) {
		if trim >= 0 {
			s.trim = trim
		}
	}
}

// WithBreakdownWord requests a feedback group breakdown for one guess after
// the table.
func WithBreakdownWord(word string) Option {
	return func(s *Service) {
		s.breakdownWord = word
	}
}

// WithColor toggles tile colors in the breakdown output.
func WithColor(color bool) Option {
	return func(s *Service) {
		s.color = color
	}
}

// WithProgress toggles the progress bar during evaluation.
func WithProgress(progress bool) Option {
	return func(s *Service) {
		s.progress = progress
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		trim:        10,
		color:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	return s
}

// Run executes one ranking pass and writes the table to w.
func (s *Service) Run(ctx context.Context, w io.Writer) error {
	runID := uuid.NewString()
	start := time.Now()
	s.logger.Info(ctx, "run started",
		logger.String("run_id", runID),
		logger.String("solutions", s.solutionsPath),
		logger.String("guesses", s.guessesPath),
		logger.Int("workers", s.workerCount),
	)

	solutions, err := wordlist.Load(s.solutionsPath)
	if err != nil {
		return fmt.Errorf("load solutions: %w", err)
	}
	guesses := solutions
	if s.guessesPath != "" {
		if guesses, err = wordlist.Load(s.guessesPath); err != nil {
			return fmt.Errorf("load guesses: %w", err)
		}
	}
	if err := ranking.CheckInputs(guesses, solutions); err != nil {
		return err
	}
	s.logger.Info(ctx, "word lists loaded",
		logger.Int("guess_count", len(guesses)),
		logger.Int("solution_count", len(solutions)),
	)

	table, err := s.patternTable(ctx, guesses, solutions)
	if err != nil {
		return err
	}

	records, err := s.evaluate(ctx, guesses, solutions, table)
	if err != nil {
		return err
	}
	ranking.Sort(records)

	if err := report.Table(w, records, len(solutions), s.trim); err != nil {
		return err
	}

	if s.breakdownWord != "" {
		guess, err := words.New(s.breakdownWord)
		if err != nil {
			return fmt.Errorf("breakdown word: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := report.Breakdown(w, guess, solutions, s.color); err != nil {
			return err
		}
	}

	s.logSnapshot(ctx)
	s.logger.Info(ctx, "run finished",
		logger.String("run_id", runID),
		logger.String("best_guess", string(records[0].Guess)),
		logger.Float64("best_expected_remaining", records[0].ExpectedRemaining),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// patternTable returns the precomputed pattern table when a cache path is
// configured, recomputing and rewriting it if missing or stale. Without a
// cache path it returns nil and patterns are computed per guess.
func (s *Service) patternTable(ctx context.Context, guesses, solutions []words.Word) (*cache.Table, error) {
	if s.cachePath == "" {
		return nil, nil
	}

	table, err := cache.Load(s.cachePath, guesses, solutions)
	if err == nil {
		s.logger.Info(ctx, "pattern cache loaded", logger.String("path", s.cachePath))
		return table, nil
	}
	s.logger.Warn(ctx, "pattern cache unusable, recomputing",
		logger.String("path", s.cachePath),
		logger.Error(err),
	)

	if table, err = cache.Compute(guesses, solutions); err != nil {
		return nil, fmt.Errorf("compute pattern table: %w", err)
	}
	if err := cache.Save(s.cachePath, table); err != nil {
		// The run can finish without the file; the next one recomputes.
		s.logger.Warn(ctx, "pattern cache not saved", logger.Error(err))
	}
	return table, nil
}

// evaluate scores every guess through the worker pool, reading patterns from
// the table when one is available.
func (s *Service) evaluate(ctx context.Context, guesses, solutions []words.Word, table *cache.Table) ([]ranking.Record, error) {
	evaluator := func(_ context.Context, i int, guess words.Word) (ranking.Record, error) {
		var (
			p   *partition.Partition
			err error
		)
		if table != nil {
			p, err = partition.FromRow(guess, solutions, table.Row(i))
		} else {
			p, err = partition.Build(guess, solutions)
		}
		if err != nil {
			return ranking.Record{}, fmt.Errorf("partition %s: %w", guess, err)
		}
		metrics.RecordPartitionBuilt()

		result, err := scoring.Score(p)
		if err != nil {
			return ranking.Record{}, fmt.Errorf("score %s: %w", guess, err)
		}
		return result, nil
	}

	opts := []pool.Option{
		pool.WithWorkers(s.workerCount),
		pool.WithLogger(s.logger.Named("pool")),
	}
	if s.progress {
		bar := progressbar.NewOptions(len(guesses),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("evaluating"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
		defer func() { _ = bar.Finish() }()
		opts = append(opts, pool.WithOnResult(func() { _ = bar.Add(1) }))
	}

	return pool.New(opts...).Run(ctx, guesses, evaluator)
}

// logSnapshot dumps the run counters at debug level.
func (s *Service) logSnapshot(ctx context.Context) {
	lines, err := metrics.Snapshot()
	if err != nil {
		s.logger.Warn(ctx, "metrics snapshot failed", logger.Error(err))
		return
	}
	for _, line := range lines {
		s.logger.Debug(ctx, "metric", logger.String("sample", line))
	}
}
