package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.LLM.Model)
	assert.Equal(t, 50, cfg.LLM.DefaultQty)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.70, cfg.Repair.CleanFraction)
	assert.Equal(t, 3, cfg.Repair.SeparatorRun)
	assert.Equal(t, 1, cfg.Repair.ArtifactTolerance)
	assert.Equal(t, 500*time.Millisecond, cfg.Ingest.Debounce)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.3")
	t.Setenv("DEFAULT_QTY", "100")
	t.Setenv("REPAIR_CLEAN_FRACTION", "0.85")
	t.Setenv("GEMINI_TIMEOUT", "90s")
	t.Setenv("WATCH_DIRS", "/in/a, /in/b ,")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, float32(0.3), cfg.LLM.Temperature)
	assert.Equal(t, 100, cfg.LLM.DefaultQty)
	assert.Equal(t, 0.85, cfg.Repair.CleanFraction)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, []string{"/in/a", "/in/b"}, cfg.Ingest.Roots)
}

func TestLoadConfigIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("DEFAULT_QTY", "lots")
	t.Setenv("GEMINI_TIMEOUT", "soon")
	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.LLM.DefaultQty)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.LLM.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.LLM.DefaultQty = 0
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Repair.CleanFraction = 1.5
	assert.Error(t, cfg.Validate())
}
