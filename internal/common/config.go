package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Repair RepairConfig
	Ingest IngestConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// LLMConfig holds generator-related configuration
type LLMConfig struct {
	Model         string
	APIKey        string
	Temperature   float32
	Timeout       time.Duration
	KnowledgePath string
	DefaultQty    int
}

// RepairConfig holds the tuning constants of the cleanup pipeline.
// These are empirically chosen thresholds, not load-bearing algorithmic
// choices; they exist as configuration so they can be re-tuned against
// observed model output.
type RepairConfig struct {
	CleanFraction     float64
	SeparatorRun      int
	ArtifactTolerance int
}

// IngestConfig holds drop-folder watcher configuration
type IngestConfig struct {
	Roots    []string
	Debounce time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		LLM: LLMConfig{
			Model:         getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			Temperature:   getEnvAsFloat32("GEMINI_TEMPERATURE", 0.1),
			Timeout:       getEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
			KnowledgePath: getEnv("KNOWLEDGE_PATH", ""),
			DefaultQty:    getEnvAsInt("DEFAULT_QTY", 50),
		},
		Repair: RepairConfig{
			CleanFraction:     getEnvAsFloat64("REPAIR_CLEAN_FRACTION", 0.70),
			SeparatorRun:      getEnvAsInt("REPAIR_SEPARATOR_RUN", 3),
			ArtifactTolerance: getEnvAsInt("REPAIR_ARTIFACT_TOLERANCE", 1),
		},
		Ingest: IngestConfig{
			Roots:    splitNonEmpty(getEnv("WATCH_DIRS", "")),
			Debounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.LLM.DefaultQty < 1 {
		return NewAppError("CONFIG_ERROR", "DEFAULT_QTY must be positive", ErrInvalidInput)
	}
	if c.Repair.CleanFraction <= 0 || c.Repair.CleanFraction > 1 {
		return NewAppError("CONFIG_ERROR", "REPAIR_CLEAN_FRACTION must be in (0,1]", ErrInvalidInput)
	}
	return nil
}
