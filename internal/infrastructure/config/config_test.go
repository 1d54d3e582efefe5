package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("test_dataset", "gold_standard"), cfg.Corpus.GoldDir)
	assert.Equal(t, "hugot", cfg.Annotator.Backend)
	assert.Equal(t, "KnightsAnalytics/distilbert-NER", cfg.Annotator.Model)
	assert.Equal(t, 60, cfg.Annotator.RequestsPerMinute)
	assert.Empty(t, cfg.Annotator.APIKey)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	dir := t.TempDir()

	configDir := filepath.Join(dir, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0755))
	content := `corpus:
  gold_dir: /data/gold
annotator:
  backend: openai
  model: gpt-4o-mini
  api_key: sk-test
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, DefaultConfigFile), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/gold", cfg.Corpus.GoldDir)
	assert.Equal(t, "openai", cfg.Annotator.Backend)
	assert.Equal(t, "gpt-4o-mini", cfg.Annotator.Model)
	assert.Equal(t, "sk-test", cfg.Annotator.APIKey)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, filepath.Join("test_dataset", "predictions"), cfg.Corpus.PredictionsDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, DefaultConfigFile), []byte("corpus: ["), 0644))

	_, err := Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.Annotator.APIKey)
}

func TestLoad_ConfigKeyWinsOverEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	dir := t.TempDir()

	configDir := filepath.Join(dir, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0755))
	content := "annotator:\n  api_key: sk-from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, DefaultConfigFile), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", cfg.Annotator.APIKey)
}

func TestSQLitePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/base", DefaultConfigDir, "runs.db"), cfg.SQLitePath("/base"))

	cfg.SQLite.Path = "/custom/runs.db"
	assert.Equal(t, "/custom/runs.db", cfg.SQLitePath("/base"))
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	// The written file must round-trip through Load.
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "hugot", cfg.Annotator.Backend)

	err = WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExists_MissingConfig(t *testing.T) {
	assert.False(t, Exists(t.TempDir()))
}
