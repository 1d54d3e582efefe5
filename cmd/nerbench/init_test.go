package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, runInit(newInitCmd(), nil))
	assert.True(t, config.Exists(dir))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "hugot", cfg.Annotator.Backend)
}

func TestRunInit_AlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, runInit(newInitCmd(), nil))

	err := runInit(newInitCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}
