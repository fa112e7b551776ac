package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/courseforge/courseforge/internal/config"
	"github.com/courseforge/courseforge/internal/generator"
	"github.com/courseforge/courseforge/internal/inference/openai"
	"github.com/courseforge/courseforge/internal/server"
	"github.com/courseforge/courseforge/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	if cfg.Backend.APIKey == "" {
		return fmt.Errorf("COURSEFORGE_API_KEY environment variable is required")
	}

	client := openai.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey, cfg.Backend.Model, uint(cfg.Backend.RetryAttempts))
	defer func() {
		_ = client.Close()
	}()

	pipeline := generator.NewPipeline(
		client,
		generator.NewLimiter(cfg.Generation.MaxRequestsPerMinute, time.Minute),
		generator.NewDiagnostics(cfg.Generation.ErrorLogDirectory),
		generator.Options{
			TokenLimit:          cfg.Generation.TokenLimit,
			ChunkTokenBudget:    cfg.Generation.ChunkTokenBudget,
			MaxModules:          cfg.Generation.MaxModules,
			Summarize:           cfg.Generation.Summarize,
			SaveInitialResponse: cfg.Generation.SaveInitialResponse,
		},
	)

	handler := server.NewHandler(pipeline, store.New(cfg.Store.Directory))
	router := server.NewRouter(handler, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Default().Info("starting server", "addr", addr, "model", cfg.Backend.Model)
	return router.Run(addr)
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("COURSEFORGE_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
