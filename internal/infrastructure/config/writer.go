package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# nerbench configuration

corpus:
  gold_dir: test_dataset/gold_standard
  predictions_dir: test_dataset/predictions
  evaluation_dir: test_dataset/evaluation

annotator:
  backend: hugot
  model: KnightsAnalytics/distilbert-NER
  model_dir: models
  # backend: openai
  # model: gpt-4o-mini
  # api_key: your-api-key (or set OPENAI_API_KEY env var)
  requests_per_minute: 60
`

// WriteDefault creates the .nerbench directory and writes a default config
// file.
func WriteDefault(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a nerbench config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
