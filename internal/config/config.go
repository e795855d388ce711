package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"surveycharts/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig  `validate:"required"`
	Charts ChartConfig `validate:"required"`
}

// DataConfig holds survey input settings
type DataConfig struct {
	Dir  string `validate:"required"`
	File string `validate:"required"`
}

// InputPath returns the full path to the survey data file
func (d DataConfig) InputPath() string {
	return filepath.Join(d.Dir, d.File)
}

// ChartConfig holds chart output settings
type ChartConfig struct {
	OutputDir      string `validate:"required"`
	DPI            int
	WidthInches    float64
	HeightInches   float64
	TitleFontSize  float64
	AxisFontSize   float64
	LegendFontSize float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	// Load data configuration
	dataConfig := loadDataConfig()
	config.Data = *dataConfig

	// Load chart configuration
	chartConfig := loadChartConfig()
	config.Charts = *chartConfig

	// Validate required fields
	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Dir:  getEnvOrDefault("DATA_DIR", "data"),
		File: getEnvOrDefault("DATA_FILE", "NSDUH_2022_selected_columns_validated.csv"),
	}
}

func loadChartConfig() *ChartConfig {
	return &ChartConfig{
		OutputDir:      getEnvOrDefault("OUTPUT_DIR", "charts"),
		DPI:            getEnvIntOrDefault("CHART_DPI", 300),
		WidthInches:    getEnvFloatOrDefault("CHART_WIDTH", 10),
		HeightInches:   getEnvFloatOrDefault("CHART_HEIGHT", 6),
		TitleFontSize:  getEnvFloatOrDefault("FONT_TITLE", 14),
		AxisFontSize:   getEnvFloatOrDefault("FONT_AXIS", 12),
		LegendFontSize: getEnvFloatOrDefault("FONT_LEGEND", 10),
	}
}

func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file name is required")
	}
	if config.Charts.OutputDir == "" {
		return errors.ConfigInvalid("chart output directory is required")
	}
	if config.Charts.DPI <= 0 {
		return errors.ConfigInvalid("chart DPI must be positive")
	}
	if config.Charts.WidthInches <= 0 || config.Charts.HeightInches <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Charts.TitleFontSize <= 0 || config.Charts.AxisFontSize <= 0 || config.Charts.LegendFontSize <= 0 {
		return errors.ConfigInvalid("chart font sizes must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Duration parsing helper (for future use)
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
