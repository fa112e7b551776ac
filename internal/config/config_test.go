package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/generator"
	"github.com/courseforge/courseforge/internal/inference"
	"github.com/courseforge/courseforge/internal/inference/openai"
)

func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Directory: filepath.Join("data", "users"),
		},
		Backend: BackendConfig{
			BaseURL:       openai.DefaultBaseURL,
			Model:         "gpt-4o-mini",
			RetryAttempts: inference.DefaultMaxRetryAttempts,
		},
		Generation: GenerationConfig{
			ErrorLogDirectory:    "error_logs",
			MaxRequestsPerMinute: generator.DefaultMaxRequestsPerMinute,
			TokenLimit:           generator.DefaultTokenLimit,
			ChunkTokenBudget:     generator.DefaultChunkTokenBudget,
			MaxModules:           generator.DefaultMaxModules,
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `store:
  directory: custom/users
backend:
  model: gpt-4o
  retry_attempts: 3
generation:
  error_log_directory: custom/errors
  max_requests_per_minute: 5
  max_modules: 20
  summarize: true
  save_initial_response: true
server:
  port: 9090
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Store.Directory = "custom/users"
				cfg.Backend.Model = "gpt-4o"
				cfg.Backend.RetryAttempts = 3
				cfg.Generation.ErrorLogDirectory = "custom/errors"
				cfg.Generation.MaxRequestsPerMinute = 5
				cfg.Generation.MaxModules = 20
				cfg.Generation.Summarize = true
				cfg.Generation.SaveInitialResponse = true
				cfg.Server.Port = 9090
				return cfg
			}(),
		},
		{
			name:          "missing config file uses defaults",
			configContent: "",
			want:          defaultConfig(),
		},
		{
			name: "partial config keeps defaults for the rest",
			configContent: `backend:
  model: gpt-4o
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Backend.Model = "gpt-4o"
				return cfg
			}(),
		},
		{
			name:          "environment variables override defaults",
			configContent: "",
			env: map[string]string{
				"COURSEFORGE_API_KEY":  "sk-test",
				"COURSEFORGE_MODEL":    "gpt-5-mini",
				"COURSEFORGE_BASE_URL": "https://llm.internal.example.com/v1",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Backend.APIKey = "sk-test"
				cfg.Backend.Model = "gpt-5-mini"
				cfg.Backend.BaseURL = "https://llm.internal.example.com/v1"
				return cfg
			}(),
		},
		{
			name: "invalid YAML format",
			configContent: `store:
  directory: custom/users
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid base URL fails validation",
			configContent: `backend:
  base_url: not-a-url
`,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url",
			},
		},
		{
			name: "zero retry attempts fail validation",
			configContent: `backend:
  retry_attempts: 0
`,
			wantErrorContains: []string{
				"invalid configuration",
				"retry_attempts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configPath := ""
			if tt.configContent != "" {
				configPath = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				// An empty temp dir guards against picking up a real
				// config.yaml from the working directory.
				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(t.TempDir()))
			}

			got, err := Load(configPath)

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
