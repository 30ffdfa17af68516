// Command precompute builds the pattern cache for a pair of word lists so
// ranking runs can skip the feedback computation.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/davost/wordrank/internal/adapters/cache"
	"github.com/davost/wordrank/internal/adapters/wordlist"
	"github.com/davost/wordrank/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("precompute", flag.ContinueOnError)
	var (
		solutionsPath = fs.String("solutions", "", "Solution list, one five-letter word per line")
		guessesPath   = fs.String("guesses", "", "Guess vocabulary (defaults to the solution list)")
		outPath       = fs.String("out", "patterns.gob", "Output file for the pattern table")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Named("precompute")
	ctx := context.Background()

	if *solutionsPath == "" {
		os.Stderr.WriteString("missing -solutions\n")
		fs.Usage()
		return 2
	}

	solutions, err := wordlist.Load(*solutionsPath)
	if err != nil {
		log.Error(ctx, "load solutions", logger.Error(err))
		return 1
	}
	guesses := solutions
	if *guessesPath != "" {
		if guesses, err = wordlist.Load(*guessesPath); err != nil {
			log.Error(ctx, "load guesses", logger.Error(err))
			return 1
		}
	}

	start := time.Now()
	table, err := cache.Compute(guesses, solutions)
	if err != nil {
		log.Error(ctx, "compute pattern table", logger.Error(err))
		return 1
	}
	if err := cache.Save(*outPath, table); err != nil {
		log.Error(ctx, "save pattern table", logger.Error(err))
		return 1
	}

	log.Info(ctx, "pattern table written",
		logger.String("path", *outPath),
		logger.Int("guesses", len(guesses)),
		logger.Int("solutions", len(solutions)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return 0
}
