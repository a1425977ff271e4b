package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultItemFormat, cfg.Output.ItemFormat)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		check       func(t *testing.T, cfg *Config)
		errContains []string
	}{
		{
			name: "Full file",
			yaml: `
base_url: http://localhost:8080
timeout_seconds: 5
logging:
  level: debug
output:
  item_format: "{{.title}}|{{.price}}"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Timeout())
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "{{.title}}|{{.price}}", cfg.Output.ItemFormat)
			},
		},
		{
			name: "Empty file gets defaults",
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "Partial file keeps other defaults",
			yaml: "timeout_seconds: 2\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
				assert.Equal(t, 2*time.Second, cfg.Timeout())
			},
		},
		{
			name:        "Malformed YAML",
			yaml:        "base_url: [unclosed",
			errContains: []string{"failed to parse YAML"},
		},
		{
			name: "All validation errors reported together",
			yaml: `
base_url: ftp://example.com?x=1
timeout_seconds: -1
logging:
  level: chatty
output:
  item_format: "{{.title"
`,
			errContains: []string{
				"configuration validation failed",
				"Config.BaseURL: scheme must be http or https",
				"Config.BaseURL: query parameters are not supported",
				"Config.TimeoutSeconds: must not be negative",
				"Config.Logging.Level: invalid log level 'chatty'",
				"Config.Output.ItemFormat",
			},
		},
		{
			name:        "Relative base URL",
			yaml:        "base_url: /products\n",
			errContains: []string{"scheme must be http or https", "missing host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(createTempYAML(t, tt.yaml))
			if len(tt.errContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, cfg)
				for _, s := range tt.errContains {
					assert.Contains(t, err.Error(), s)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
