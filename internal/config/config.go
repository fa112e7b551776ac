package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/courseforge/courseforge/internal/generator"
	"github.com/courseforge/courseforge/internal/inference"
	"github.com/courseforge/courseforge/internal/inference/openai"
)

type Config struct {
	Store      StoreConfig      `mapstructure:"store"`
	Backend    BackendConfig    `mapstructure:"backend"`
	Generation GenerationConfig `mapstructure:"generation"`
	Server     ServerConfig     `mapstructure:"server"`
}

type StoreConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type BackendConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model" validate:"required"`
	RetryAttempts int    `mapstructure:"retry_attempts" validate:"min=1"`
}

type GenerationConfig struct {
	ErrorLogDirectory    string `mapstructure:"error_log_directory"`
	MaxRequestsPerMinute int    `mapstructure:"max_requests_per_minute" validate:"min=1"`
	TokenLimit           int    `mapstructure:"token_limit" validate:"min=1"`
	ChunkTokenBudget     int    `mapstructure:"chunk_token_budget" validate:"min=1"`
	MaxModules           int    `mapstructure:"max_modules" validate:"min=1"`
	Summarize            bool   `mapstructure:"summarize"`
	SaveInitialResponse  bool   `mapstructure:"save_initial_response"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/courseforge")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("store.directory", filepath.Join("data", "users"))
	v.SetDefault("backend.base_url", openai.DefaultBaseURL)
	v.SetDefault("backend.model", "gpt-4o-mini")
	v.SetDefault("backend.retry_attempts", inference.DefaultMaxRetryAttempts)
	v.SetDefault("generation.error_log_directory", "error_logs")
	v.SetDefault("generation.max_requests_per_minute", generator.DefaultMaxRequestsPerMinute)
	v.SetDefault("generation.token_limit", generator.DefaultTokenLimit)
	v.SetDefault("generation.chunk_token_budget", generator.DefaultChunkTokenBudget)
	v.SetDefault("generation.max_modules", generator.DefaultMaxModules)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Bind backend credentials to environment variables only (not from config file)
	if err := v.BindEnv("backend.api_key", "COURSEFORGE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind COURSEFORGE_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("backend.model", "COURSEFORGE_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind COURSEFORGE_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("backend.base_url", "COURSEFORGE_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind COURSEFORGE_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads, defaults and validates the configuration in one call.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
