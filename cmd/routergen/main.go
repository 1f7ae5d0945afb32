package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/llm/gemini"
	"github.com/macproducts/routergen/internal/repair"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		file = flag.String("file", "", "engineering drawing PDF (required)")
		qty  = flag.Int("qty", 0, "production quantity (defaults to DEFAULT_QTY)")
		out  = flag.String("out", "", "output CSV path (defaults to stdout)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Validate required flags
	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if *qty <= 0 {
		*qty = cfg.LLM.DefaultQty
	}

	pdf, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: reading drawing: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
	defer cancel()

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

	raw, err := gen.GenerateRouter(ctx, llm.GenerateRequest{
		PDF:      pdf,
		Filename: filepath.Base(*file),
		Quantity: *qty,
	})
	if err != nil {
		printError("Error: generating router: %v\n", err)
		os.Exit(1)
	}

	pipeline := repair.NewPipeline(repair.Options{
		CleanFraction:     cfg.Repair.CleanFraction,
		SeparatorRun:      cfg.Repair.SeparatorRun,
		ArtifactTolerance: cfg.Repair.ArtifactTolerance,
	}, logger)
	doc := pipeline.Run(raw)
	if doc.Empty() {
		printError("Error: model returned no usable router\n")
		os.Exit(1)
	}

	csv := doc.Serialize()
	if !strings.HasSuffix(csv, "\n") {
		csv += "\n"
	}
	if *out == "" {
		fmt.Print(csv)
		return
	}
	if err := os.WriteFile(*out, []byte(csv), 0o644); err != nil {
		printError("Error: writing output: %v\n", err)
		os.Exit(1)
	}
	logger.Info("router written", "out", *out, "rows", len(doc.Rows))
}
