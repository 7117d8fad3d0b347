package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "stress.toml",
			content: `
[run]
duration = "2s"
entities = 500
churn_per_frame = 10

[logging]
level = "debug"
format = "json"
`,
		},
		{
			name: "yaml",
			file: "stress.yml",
			content: `
run:
  duration: 2s
  entities: 500
  churn_per_frame: 10
logging:
  level: debug
  format: json
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, 2*time.Second, cfg.Run.Duration)
			assert.Equal(t, 500, cfg.Run.Entities)
			assert.Equal(t, 10, cfg.Run.ChurnPerFrame)
			assert.Equal(t, 5, cfg.Run.MaxComponents, "default kept")
			assert.Equal(t, int64(1), cfg.Run.Seed, "default kept")
			assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeFile(t, "stress.json", `{}`))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "stress.toml", "[run\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeFile(t, "stress.yaml", "run:\n  max_components: 0\n"))
	assert.ErrorContains(t, err, "max_components")
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "stress.toml", `
[run]
entities = 500
seed = 7
`)

	cfg, err := parseConfig([]string{"-config", path, "-entities", "20", "-log-level", "warn"})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Run.Entities)
	assert.Equal(t, int64(7), cfg.Run.Seed, "unset flag does not override the file")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.Run.Duration)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	_, err := parseConfig([]string{"-duration", "0s"})
	assert.ErrorContains(t, err, "run.duration")

	_, err = parseConfig([]string{"-churn", "-1"})
	assert.ErrorContains(t, err, "churn_per_frame")

	_, err = parseConfig([]string{"-no-such-flag"})
	assert.Error(t, err)
}
