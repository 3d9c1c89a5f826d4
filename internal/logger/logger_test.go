package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/pesa/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	log, closeFn, err := New(config.LogConfig{Level: "warn"})
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pesa.log")

	log, closeFn, err := New(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("line", 3).Str("type", "Sent").Msg("classified")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"line":3`)
	assert.Contains(t, string(data), `"type":"Sent"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_UnwritableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pesa.log")

	_, _, err := New(config.LogConfig{Level: "info", File: path})
	assert.Error(t, err)
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("test")

	assert.NotZero(t, buf.Len())
}

func TestFromContext_Missing(t *testing.T) {
	log := FromContext(context.Background())

	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
