package app

import (
	"path/filepath"
	"testing"

	"github.com/hance08/pesa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.File = filepath.Join(t.TempDir(), "pesa.log")
	cfg.Parser.Workers = 4

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.Service)
	assert.Equal(t, 4, a.Service.Batch.Workers())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Parser.Workers = 0

	_, _, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestDataDir(t *testing.T) {
	dir, err := DataDir()
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(dir), "pesa")
}
