package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/llm"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := NewClient(context.Background(), Config{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(context.Background(), Config{APIKey: "test-key"}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash-exp", c.cfg.Model)
	assert.Equal(t, float32(0.1), c.cfg.Temperature)
	assert.Equal(t, float32(0.95), c.cfg.TopP)
	assert.Equal(t, int32(8192), c.cfg.MaxOutputTokens)
}

func TestGenerateRouterValidatesRequest(t *testing.T) {
	c, err := NewClient(context.Background(), Config{APIKey: "test-key"}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = c.GenerateRouter(context.Background(), llm.GenerateRequest{Quantity: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
	assert.Contains(t, err.Error(), "no drawing")

	_, err = c.GenerateRouter(context.Background(), llm.GenerateRequest{PDF: []byte("%PDF-1.4"), Quantity: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
	assert.Contains(t, err.Error(), "quantity")
}
