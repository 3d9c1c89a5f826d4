package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault_IsValid(t *testing.T) {
	cfg := NewDefault()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Parser.Workers)
	assert.Equal(t, 2, cfg.Report.Indent)
	assert.False(t, cfg.Report.Summary)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: `log.level must be one of [debug info warn error], got "verbose"`,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Parser.Workers = 0 },
			wantErr: "parser.workers must be at least 1",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Parser.Workers = 65 },
			wantErr: "parser.workers must be at most 64",
		},
		{
			name:    "negative indent",
			mutate:  func(c *Config) { c.Report.Indent = -1 },
			wantErr: "report.indent must be at least 0",
		},
		{
			name:   "debug level with file",
			mutate: func(c *Config) { c.Log.Level = "debug"; c.Log.File = "pesa.log" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := NewDefault()
	cfg.Parser.Workers = 0
	cfg.Report.Indent = 9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser.workers")
	assert.Contains(t, err.Error(), "report.indent")
}
