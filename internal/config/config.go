// Package config resolves the analysis settings.
//
// Precedence, lowest first: built-in defaults, an optional YAML file, a .env
// file in the working directory, HAPPYGRAPH_* environment variables. The CLI
// applies its flags on top of the returned Config.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/happygraph/dataset"
)

// Defaults.
const (
	DefaultInput         = "2015.csv"
	DefaultMaxIterations = 200
	DefaultThreshold     = 1.0
	DefaultEnv           = "development"
	DefaultGraphName     = "happiness"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all analysis configuration.
type Config struct {
	// Input is the CSV path.
	Input string `yaml:"input"`

	// Columns overrides dataset header names; empty entries keep defaults.
	Columns dataset.Columns `yaml:"columns"`

	// Start names the BFS start country; empty means the first node.
	Start string `yaml:"start"`

	// MaxIterations caps the betweenness sources; 0 is unlimited.
	MaxIterations int `yaml:"max_iterations"`

	// Threshold is the similarity edge bound (strict).
	Threshold float64 `yaml:"threshold"`

	Normalized bool   `yaml:"normalized"`
	Dedupe     bool   `yaml:"dedupe"`
	GraphName  string `yaml:"graph_name"`

	// App
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:         DefaultInput,
		MaxIterations: DefaultMaxIterations,
		Threshold:     DefaultThreshold,
		GraphName:     DefaultGraphName,
		Env:           DefaultEnv,
	}
}

// Load resolves configuration from defaults, the YAML file at path (skipped
// when empty) and the environment. It does not validate; flags may still
// change the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg.Input = getEnv("HAPPYGRAPH_INPUT", cfg.Input)
	cfg.Start = getEnv("HAPPYGRAPH_START", cfg.Start)
	cfg.MaxIterations = getEnvInt("HAPPYGRAPH_MAX_ITERATIONS", cfg.MaxIterations)
	cfg.Threshold = getEnvFloat("HAPPYGRAPH_THRESHOLD", cfg.Threshold)
	cfg.Normalized = getEnvBool("HAPPYGRAPH_NORMALIZED", cfg.Normalized)
	cfg.Dedupe = getEnvBool("HAPPYGRAPH_DEDUPE", cfg.Dedupe)
	cfg.GraphName = getEnv("HAPPYGRAPH_GRAPH_NAME", cfg.GraphName)
	cfg.Env = getEnv("HAPPYGRAPH_ENV", cfg.Env)
	cfg.LogLevel = getEnv("HAPPYGRAPH_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalid)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must be >= 0, got %d", ErrInvalid, c.MaxIterations)
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be finite and > 0, got %v", ErrInvalid, c.Threshold)
	}
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("%w: env must be development or production, got %q", ErrInvalid, c.Env)
	}

	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseFloat(value, 64); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseBool(value); err == nil {
			return result
		}
	}
	return defaultValue
}
