package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/prefeitura-rio/app-attestation/internal/models"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Rendering configuration
	OutputDir         string  `json:"output_dir"`
	FontPath          string  `json:"font_path"`
	FontSize          float64 `json:"font_size"`
	RenderConcurrency int     `json:"render_concurrency"`

	// Generated file retention
	FileRetention   time.Duration `json:"file_retention"`
	CleanupInterval time.Duration `json:"cleanup_interval"`

	// Signing timestamp zone
	Timezone string         `json:"timezone"`
	Location *time.Location `json:"-"`

	// Reason table
	ReasonsFile string          `json:"reasons_file"`
	Reasons     []models.Reason `json:"-"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

// Load builds the configuration from environment variables
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d out of range", port)
	}

	fontSize, err := strconv.ParseFloat(getEnvOrDefault("FONT_SIZE", "12"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FONT_SIZE: %w", err)
	}
	if fontSize <= 0 {
		return nil, fmt.Errorf("invalid FONT_SIZE: must be positive")
	}

	renderConcurrency, err := strconv.Atoi(getEnvOrDefault("RENDER_CONCURRENCY", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RENDER_CONCURRENCY: %w", err)
	}
	if renderConcurrency < 1 {
		return nil, fmt.Errorf("invalid RENDER_CONCURRENCY: must be at least 1")
	}

	fileRetention, err := time.ParseDuration(getEnvOrDefault("FILE_RETENTION", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FILE_RETENTION: %w", err)
	}
	if fileRetention < 0 {
		return nil, fmt.Errorf("invalid FILE_RETENTION: must not be negative")
	}

	cleanupInterval, err := time.ParseDuration(getEnvOrDefault("CLEANUP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: %w", err)
	}
	if cleanupInterval <= 0 {
		return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: must be positive")
	}

	timezone := getEnvOrDefault("TIMEZONE", "Europe/Paris")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	reasonsFile := getEnvOrDefault("REASONS_FILE", "")
	reasons := models.DefaultReasons
	if reasonsFile != "" {
		reasons, err = LoadReasons(reasonsFile)
		if err != nil {
			return nil, fmt.Errorf("invalid REASONS_FILE: %w", err)
		}
	}

	return &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Rendering configuration
		OutputDir:         getEnvOrDefault("OUTPUT_DIR", os.TempDir()),
		FontPath:          getEnvOrDefault("FONT_PATH", ""),
		FontSize:          fontSize,
		RenderConcurrency: renderConcurrency,

		// Generated file retention
		FileRetention:   fileRetention,
		CleanupInterval: cleanupInterval,

		Timezone: timezone,
		Location: location,

		ReasonsFile: reasonsFile,
		Reasons:     reasons,

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
