package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/repair"
	"github.com/macproducts/routergen/internal/router"
)

// Usecase generates a router for every drawing discovered under a watch
// root and writes the repaired CSV beside it.
type Usecase struct {
	Generator llm.RouterGenerator
	Pipeline  *repair.Pipeline
	Quantity  int
	Logger    *slog.Logger
}

func NewUsecase(gen llm.RouterGenerator, pipe *repair.Pipeline, quantity int, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{Generator: gen, Pipeline: pipe, Quantity: quantity, Logger: logger}
}

// ProcessPath reads one drawing, generates and repairs its router, and
// writes "<name>_router.csv" next to the source file. The output path is
// returned for logging.
func (u *Usecase) ProcessPath(ctx context.Context, path string) (string, error) {
	start := time.Now()

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", common.WrapError(err, "abs path")
	}
	if strings.ToLower(filepath.Ext(abs)) != ".pdf" {
		return "", fmt.Errorf("unsupported extension: %q", filepath.Ext(abs))
	}

	pdf, err := os.ReadFile(abs)
	if err != nil {
		return "", common.WrapError(err, "read drawing")
	}

	raw, err := u.Generator.GenerateRouter(ctx, llm.GenerateRequest{
		PDF:      pdf,
		Filename: filepath.Base(abs),
		Quantity: u.Quantity,
	})
	if err != nil {
		return "", common.WrapError(err, "generate router")
	}

	doc := u.Pipeline.Run(raw)
	if doc.Empty() {
		return "", fmt.Errorf("generation produced an empty document")
	}
	if bad := router.MismatchedOperations(doc, u.Quantity); len(bad) > 0 {
		u.Logger.Warn("ingest.process.qty_mismatch",
			"drawing", abs,
			"requested", u.Quantity,
			"ops", len(bad),
		)
	}

	out := strings.TrimSuffix(abs, filepath.Ext(abs)) + "_router.csv"
	if err := os.WriteFile(out, []byte(doc.Serialize()), 0o644); err != nil {
		return "", common.WrapError(err, "write router")
	}

	u.Logger.Info("ingest.process.ok",
		"drawing", abs,
		"out", out,
		"rows", len(doc.Rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Run consumes watcher events until the context is cancelled. Failures are
// logged and skipped; a bad drawing never stops the watch loop.
func (u *Usecase) Run(ctx context.Context, events <-chan string, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			u.Logger.Error("ingest.watch.error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			if _, err := u.ProcessPath(ctx, path); err != nil {
				u.Logger.Error("ingest.process.failed", "path", path, "error", err)
			}
		}
	}
}
