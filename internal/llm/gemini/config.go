package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"google.golang.org/genai"

	"github.com/macproducts/routergen/internal/llm"
)

// Config for the Gemini client.
type Config struct {
	APIKey          string        // if empty, falls back to env GEMINI_API_KEY
	Model           string        // e.g., "gemini-2.0-flash-exp"
	Temperature     float32       // 0..2
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
	Timeout         time.Duration // upper bound on one generation call
}

type Client struct {
	cfg    Config
	genai  *genai.Client
	kb     *llm.KnowledgeBase
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, kb *llm.KnowledgeBase, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.TopP <= 0 {
		cfg.TopP = 0.95
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 40
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 8192
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{cfg: cfg, genai: gc, kb: kb, logger: logger}, nil
}
