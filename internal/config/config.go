// Package config provides configuration management for panda Series and DataFrame operations
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for Series and DataFrame construction and rendering
type Config struct {
	// Series Configuration
	SeriesLimit       int    `json:"series_limit" yaml:"series_limit"`               // Default maximum number of elements in a Series (0 = unbounded)
	DefaultSeriesName string `json:"default_series_name" yaml:"default_series_name"` // Display name of unnamed Series
	IndexName         string `json:"index_name" yaml:"index_name"`                   // Display name of a DataFrame's shared index

	// Comparison Configuration
	NaNEqual bool `json:"nan_equal" yaml:"nan_equal"` // Treat two missing values as equal in EqDefault

	// Rendering Configuration
	MaxDisplayRows int `json:"max_display_rows" yaml:"max_display_rows"` // Rows rendered by String() (0 = all)
	MinColumnWidth int `json:"min_column_width" yaml:"min_column_width"` // Minimum padded column width
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultSeriesName     = "Values"
	DefaultIndexName      = "Index"
	DefaultMaxDisplayRows = 60
	DefaultMinColumnWidth = len("index")
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		SeriesLimit:       0, // Unbounded
		DefaultSeriesName: DefaultSeriesName,
		IndexName:         DefaultIndexName,
		NaNEqual:          false,
		MaxDisplayRows:    DefaultMaxDisplayRows,
		MinColumnWidth:    DefaultMinColumnWidth,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.SeriesLimit < 0 {
		return fmt.Errorf("SeriesLimit must be non-negative, got %d", c.SeriesLimit)
	}

	if c.DefaultSeriesName == "" {
		return fmt.Errorf("DefaultSeriesName must not be empty")
	}

	if c.MaxDisplayRows < 0 {
		return fmt.Errorf("MaxDisplayRows must be non-negative, got %d", c.MaxDisplayRows)
	}

	if c.MinColumnWidth < 0 {
		return fmt.Errorf("MinColumnWidth must be non-negative, got %d", c.MinColumnWidth)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.DefaultSeriesName == "" {
		c.DefaultSeriesName = defaults.DefaultSeriesName
	}
	if c.IndexName == "" {
		c.IndexName = defaults.IndexName
	}
	if c.MaxDisplayRows == 0 {
		c.MaxDisplayRows = defaults.MaxDisplayRows
	}
	if c.MinColumnWidth == 0 {
		c.MinColumnWidth = defaults.MinColumnWidth
	}

	// Note: SeriesLimit 0 already means unbounded and NaNEqual false is a
	// meaningful setting, so neither is defaulted here

	return c
}

// EffectiveSeriesLimit returns the size bound for new Series
func (c Config) EffectiveSeriesLimit() int {
	if c.SeriesLimit <= 0 {
		return int(^uint(0) >> 1)
	}
	return c.SeriesLimit
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromYAML loads configuration from YAML data
func LoadFromYAML(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing YAML configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a file (supports JSON and YAML)
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		config, err = LoadFromJSON(data)
	case ".yaml", ".yml":
		config, err = LoadFromYAML(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv("PANDA_SERIES_LIMIT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.SeriesLimit = parsed
		}
	}

	if val := os.Getenv("PANDA_DEFAULT_SERIES_NAME"); val != "" {
		config.DefaultSeriesName = val
	}

	if val := os.Getenv("PANDA_INDEX_NAME"); val != "" {
		config.IndexName = val
	}

	if val := os.Getenv("PANDA_NAN_EQUAL"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.NaNEqual = parsed
		}
	}

	if val := os.Getenv("PANDA_MAX_DISPLAY_ROWS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.MaxDisplayRows = parsed
		}
	}

	if val := os.Getenv("PANDA_MIN_COLUMN_WIDTH"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.MinColumnWidth = parsed
		}
	}

	return config
}
