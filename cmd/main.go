package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	app "github.com/davost/wordrank/internal/app"
	"github.com/davost/wordrank/internal/config"
	"github.com/davost/wordrank/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env), then let
	// flags override everything.
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	fs := flag.NewFlagSet("wordrank", flag.ContinueOnError)
	fs.StringVar(&cfg.SolutionsPath, "solutions", cfg.SolutionsPath, "Solution list, one five-letter word per line")
	fs.StringVar(&cfg.GuessesPath, "guesses", cfg.GuessesPath, "Guess vocabulary (defaults to the solution list)")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "Pattern cache file (empty disables caching)")
	fs.IntVar(&cfg.WorkerCount, "workers", cfg.WorkerCount, "Number of evaluation workers")
	fs.IntVar(&cfg.Trim, "trim", cfg.Trim, "Show only the best and worst N rows (0 shows all)")
	fs.StringVar(&cfg.BreakdownWord, "breakdown", cfg.BreakdownWord, "Print the feedback group breakdown for this guess")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Color the breakdown tiles")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress bar during evaluation")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log verbosity: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		fs.Usage()
		return 2
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithSolutionsPath(cfg.SolutionsPath),
		app.WithGuessesPath(cfg.GuessesPath),
		app.WithCachePath(cfg.CachePath),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithTrim(cfg.Trim),
		app.WithBreakdownWord(cfg.BreakdownWord),
		app.WithColor(cfg.Color),
		app.WithProgress(cfg.Progress),
	)

	if err := svc.Run(ctx, os.Stdout); err != nil {
		loggerInstance.Error(ctx, "run failed", logger.Error(err))
		return 1
	}
	return 0
}
