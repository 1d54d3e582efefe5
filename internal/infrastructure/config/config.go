// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for nerbench configuration.
	DefaultConfigDir = ".nerbench"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus,omitempty"`
	Annotator AnnotatorConfig `yaml:"annotator,omitempty"`
	SQLite    SQLiteConfig    `yaml:"sqlite,omitempty"`
}

// CorpusConfig holds the on-disk corpus layout.
type CorpusConfig struct {
	// GoldDir holds one *_gold.json file per document.
	GoldDir string `yaml:"gold_dir,omitempty"`
	// PredictionsDir holds one subdirectory per model with *_pred.json files.
	PredictionsDir string `yaml:"predictions_dir,omitempty"`
	// EvaluationDir receives evaluation reports.
	EvaluationDir string `yaml:"evaluation_dir,omitempty"`
}

// AnnotatorConfig holds configuration for the draft-annotation backend.
type AnnotatorConfig struct {
	// Backend selects the annotator: "hugot" (local ONNX) or "openai".
	Backend string `yaml:"backend,omitempty"`
	// Model is the backend-specific model name.
	Model string `yaml:"model,omitempty"`
	// ModelDir is where hugot models are downloaded and cached.
	ModelDir string `yaml:"model_dir,omitempty"`
	// APIKey authenticates the openai backend.
	APIKey string `yaml:"api_key,omitempty"`
	// RequestsPerMinute rate-limits the openai backend; 0 disables limiting.
	RequestsPerMinute int `yaml:"requests_per_minute,omitempty"`
}

// SQLiteConfig holds configuration for the run history database.
type SQLiteConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			GoldDir:        filepath.Join("test_dataset", "gold_standard"),
			PredictionsDir: filepath.Join("test_dataset", "predictions"),
			EvaluationDir:  filepath.Join("test_dataset", "evaluation"),
		},
		Annotator: AnnotatorConfig{
			Backend:           "hugot",
			Model:             "KnightsAnalytics/distilbert-NER",
			ModelDir:          "models",
			RequestsPerMinute: 60,
		},
	}
}

// Load loads configuration from the .nerbench directory in the given path,
// falling back to defaults when no config file exists.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.Annotator.APIKey == "" {
		c.Annotator.APIKey = key
	}
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SQLitePath returns the run history database path, honoring an explicit
// config value.
func (c *Config) SQLitePath(basePath string) string {
	if c.SQLite.Path != "" {
		return c.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, "runs.db")
}
