package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/extract"
	"github.com/courseforge/courseforge/internal/generator"
	"github.com/courseforge/courseforge/internal/inference/openai"
)

func newGenerateCommand() *cobra.Command {
	var outputPath string
	var summarize bool

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate a course from a text or HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Backend.APIKey == "" {
				return fmt.Errorf("COURSEFORGE_API_KEY environment variable is required")
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()

			text, err := extract.File(file, args[0])
			if err != nil {
				return fmt.Errorf("extract.File(%s) > %w", args[0], err)
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
					Summarize:           summarize || cfg.Generation.Summarize,
					SaveInitialResponse: cfg.Generation.SaveInitialResponse,
				},
			)

			markdown, err := pipeline.GenerateMarkdown(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("pipeline.GenerateMarkdown > %w", err)
			}

			return writeOutput(outputPath, markdown)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write markdown to a file instead of stdout")
	cmd.Flags().BoolVar(&summarize, "summarize", false, "Summarize oversized documents before generating")

	return cmd
}
