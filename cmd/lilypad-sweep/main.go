// Package main runs headless sessions across many seeds and reports how
// long the flowers take to bloom.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/game"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	scriptPath := flag.String("script", "", "Input script YAML (empty = seeded random walk)")
	seeds := flag.Int("seeds", 20, "Number of seeds")
	seedBase := flag.Int64("seed-base", 1, "First seed")
	maxTicks := flag.Int64("max-ticks", 6000, "Tick cap per run")
	workers := flag.Int("workers", runtime.NumCPU(), "Concurrent runs")
	outputDir := flag.String("output", "", "Output directory for sweep.csv and summary.csv")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(*configPath, *scriptPath, *seeds, *seedBase, *maxTicks, *workers, *outputDir); err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath string, seeds int, seedBase, maxTicks int64, workers int, outputDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var script *game.Script
	if scriptPath != "" {
		if script, err = game.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	rows, err := sweep(ctx, cfg, script, seeds, seedBase, maxTicks, workers)
	if err != nil {
		return err
	}
	summary := summarize(rows)
	slog.Info("sweep_done",
		"runs", len(rows),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"summary", summary,
	)

	if outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeCSV(filepath.Join(outputDir, "sweep.csv"), &rows); err != nil {
		return err
	}
	return writeCSV(filepath.Join(outputDir, "summary.csv"), &[]Summary{summary})
}

// sweep runs one session per seed on a bounded worker pool. Rows come back
// in seed order.
func sweep(ctx context.Context, cfg *config.Config, script *game.Script, seeds int, seedBase, maxTicks int64, workers int) ([]SeedResult, error) {
	if seeds <= 0 {
		return nil, fmt.Errorf("seeds must be positive, got %d", seeds)
	}
	workers = max(1, min(workers, seeds))

	rows := make([]SeedResult, seeds)
	errs := make([]error, seeds)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i], errs[i] = runSeed(ctx, cfg, script, seedBase+int64(i), maxTicks)
			}
		}()
	}
	for i := 0; i < seeds; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// runSeed plays one session. Random walks never end on their own, so they
// are cut off once every flower has bloomed.
func runSeed(ctx context.Context, cfg *config.Config, script *game.Script, seed, maxTicks int64) (SeedResult, error) {
	g, err := game.NewGame(game.Options{Seed: seed, Config: cfg})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	defer g.Close()

	var src game.InputSource
	if script != nil {
		src = script.Player()
	} else {
		src = untilBloomed{src: game.NewRandomWalk(seed), g: g}
	}

	res := g.Run(ctx, src, maxTicks)
	return SeedResult{
		Seed:           seed,
		Ticks:          res.Ticks,
		Bloomed:        res.Bloomed,
		Flowers:        g.BloomCount(),
		FirstBloomTick: res.FirstBloomTick,
		AllBloomedTick: res.AllBloomedTick,
		Reason:         res.Reason,
	}, nil
}

// untilBloomed ends its source once every flower has bloomed.
type untilBloomed struct {
	src game.InputSource
	g   *game.Game
}

func (u untilBloomed) Next() (components.Input, bool) {
	if u.g.AllBloomed() {
		return components.Input{}, false
	}
	return u.src.Next()
}

// writeCSV writes rows to path. A failed close is reported like a failed
// write, since buffered data may be lost.
func writeCSV(path string, rows any) (err error) {
	name := filepath.Base(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()
	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
