package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/ingest"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/llm/gemini"
	"github.com/macproducts/routergen/internal/repair"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		scan = flag.Bool("scan", false, "emit drawings already present under the roots")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	roots := cfg.Ingest.Roots
	if flag.NArg() > 0 {
		roots = flag.Args()
	}
	if len(roots) == 0 {
		printError("Error: no watch roots; set WATCH_DIRS or pass directories\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kb, err := llm.LoadKnowledge(cfg.LLM.KnowledgePath)
	if err != nil {
		printError("Error: loading knowledge base: %v\n", err)
		os.Exit(1)
	}
	gen, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, kb, logger)
	if err != nil {
		printError("Error: creating generator: %v\n", err)
		os.Exit(1)
	}

	pipeline := repair.NewPipeline(repair.Options{
		CleanFraction:     cfg.Repair.CleanFraction,
		SeparatorRun:      cfg.Repair.SeparatorRun,
		ArtifactTolerance: cfg.Repair.ArtifactTolerance,
	}, logger)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: *scan,
		Debounce:    cfg.Ingest.Debounce,
	})
	if err != nil {
		printError("Error: starting watcher: %v\n", err)
		os.Exit(1)
	}

	logger.Info("watching for drawings", "roots", roots)
	uc := ingest.NewUsecase(gen, pipeline, cfg.LLM.DefaultQty, logger)
	uc.Run(ctx, events, errs)
	logger.Info("stopped")
}
