package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/export"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/llm/gemini"
	"github.com/macproducts/routergen/internal/repair"
	"github.com/macproducts/routergen/internal/server"
	"github.com/macproducts/routergen/internal/session"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Knowledge base + generator
	kb, err := llm.LoadKnowledge(cfg.LLM.KnowledgePath)
	if err != nil {
		log.Fatalf("loading knowledge base: %v", err)
	}
	gen, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, kb, slogger)
	if err != nil {
		log.Fatalf("creating generator: %v", err)
	}

	pipeline := repair.NewPipeline(repair.Options{
		CleanFraction:     cfg.Repair.CleanFraction,
		SeparatorRun:      cfg.Repair.SeparatorRun,
		ArtifactTolerance: cfg.Repair.ArtifactTolerance,
	}, slogger)

	svc := server.NewService(cfg, gen, pipeline, export.NewService(slogger), session.NewStore(), logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: svc.Routes(),
	}

	log.Infof("HTTP serving on %s", cfg.Server.Addr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	log.Info("stopped")
}
