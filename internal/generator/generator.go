// Package generator runs the chunk reconciliation pipeline: oversized
// source documents are split into paragraph-aligned chunks, sent to the
// generation backend strictly in sequence, and the backend's partial
// course JSON responses are merged into one coherent course document.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/inference"
)

const (
	// DefaultTokenLimit is the input size above which the
	// summarize-then-generate path kicks in.
	DefaultTokenLimit = 150000
	// DefaultChunkTokenBudget caps a single chunk sent to the backend.
	DefaultChunkTokenBudget = 99000
	// DefaultMaxModules aborts generation when the backend produces an
	// implausible number of modules, to prevent runaway usage.
	DefaultMaxModules = 75
	// DefaultMaxRequestsPerMinute matches the backend's free-tier budget.
	DefaultMaxRequestsPerMinute = 15
)

// Options tune the pipeline. Zero values fall back to the defaults.
type Options struct {
	TokenLimit       int
	ChunkTokenBudget int
	MaxModules       int

	// Summarize condenses oversized inputs chunk by chunk before one
	// final generation call, instead of merging per-chunk course JSON.
	Summarize bool

	// SaveInitialResponse preserves the raw backend response of the first
	// chunk in the diagnostics directory, even when it parses cleanly.
	SaveInitialResponse bool
}

func (o Options) withDefaults() Options {
	if o.TokenLimit <= 0 {
		o.TokenLimit = DefaultTokenLimit
	}
	if o.ChunkTokenBudget <= 0 {
		o.ChunkTokenBudget = DefaultChunkTokenBudget
	}
	if o.MaxModules <= 0 {
		o.MaxModules = DefaultMaxModules
	}
	return o
}

// Pipeline drives course generation against a backend client. Chunks are
// processed strictly in order because each request is seeded with the
// JSON accumulated from the previous ones; no parallel fan-out.
type Pipeline struct {
	client  inference.Client
	limiter *Limiter
	diags   *Diagnostics
	options Options
}

func NewPipeline(client inference.Client, limiter *Limiter, diags *Diagnostics, options Options) *Pipeline {
	return &Pipeline{
		client:  client,
		limiter: limiter,
		diags:   diags,
		options: options.withDefaults(),
	}
}

// GenerateCourse converts extracted source text into a reconciled course
// document. Any chunk whose response yields no parseable JSON aborts the
// whole generation; no partial course is returned.
func (p *Pipeline) GenerateCourse(ctx context.Context, sourceText string) (course.AIGeneratedCourse, error) {
	text := sourceText
	if p.options.Summarize && EstimateTokens(text) > p.options.TokenLimit {
		summarized, err := p.summarize(ctx, text)
		if err != nil {
			return course.AIGeneratedCourse{}, fmt.Errorf("summarize > %w", err)
		}
		text = summarized
	}

	chunks := []string{text}
	if EstimateTokens(text) > p.options.ChunkTokenBudget {
		chunks = SplitChunks(text, p.options.ChunkTokenBudget)
	}
	slog.Default().Info("starting course generation", "chunks", len(chunks), "estimatedTokens", EstimateTokens(text))

	var accumulated course.AIGeneratedCourse
	for i, chunk := range chunks {
		var prompt string
		if i == 0 {
			prompt = generationPrompt(chunk)
		} else {
			var err error
			prompt, err = extensionPrompt(accumulated, chunk)
			if err != nil {
				return course.AIGeneratedCourse{}, err
			}
		}

		parsed, err := p.generateChunk(ctx, fmt.Sprintf("chunk_%d", i), prompt, i == 0)
		if err != nil {
			return course.AIGeneratedCourse{}, err
		}

		if len(parsed.Modules) > p.options.MaxModules {
			return course.AIGeneratedCourse{}, fmt.Errorf(
				"generated module count %d exceeds the limit of %d", len(parsed.Modules), p.options.MaxModules)
		}

		accumulated = parsed
		slog.Default().Info("chunk reconciled",
			"chunk", i+1,
			"totalChunks", len(chunks),
			"modules", len(accumulated.Modules),
		)
	}

	return accumulated, nil
}

// GenerateMarkdown runs GenerateCourse and renders the result in the
// canonical markdown form.
func (p *Pipeline) GenerateMarkdown(ctx context.Context, sourceText string) (string, error) {
	ai, err := p.GenerateCourse(ctx, sourceText)
	if err != nil {
		return "", err
	}
	return course.Serialize(course.Normalize(ai)), nil
}

func (p *Pipeline) generateChunk(ctx context.Context, stage, prompt string, first bool) (course.AIGeneratedCourse, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return course.AIGeneratedCourse{}, fmt.Errorf("limiter.Wait > %w", err)
	}

	response, err := p.client.GenerateText(ctx, inference.GenerateTextRequest{
		System: generationSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return course.AIGeneratedCourse{}, fmt.Errorf("client.GenerateText > %w", err)
	}

	if first && p.options.SaveInitialResponse {
		p.diags.SaveInitialResponse(response.Text)
	}

	span, found := ExtractJSON(response.Text)
	if !found {
		p.diags.SaveFailure(stage, prompt, response.Text)
		return course.AIGeneratedCourse{}, fmt.Errorf("no JSON object found in backend response for %s", stage)
	}

	var parsed course.AIGeneratedCourse
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		p.diags.SaveFailure(stage, prompt, response.Text)
		return course.AIGeneratedCourse{}, fmt.Errorf("json.Unmarshal(%s) > %w", stage, err)
	}
	return parsed, nil
}

// summarize condenses an oversized document chunk by chunk; the summaries
// are joined with a separator and replace the original text.
func (p *Pipeline) summarize(ctx context.Context, text string) (string, error) {
	chunks := SplitChunks(text, p.options.ChunkTokenBudget)
	slog.Default().Info("input exceeds token limit, summarizing",
		"estimatedTokens", EstimateTokens(text),
		"tokenLimit", p.options.TokenLimit,
		"chunks", len(chunks),
	)

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("limiter.Wait > %w", err)
		}
		response, err := p.client.GenerateText(ctx, inference.GenerateTextRequest{
			Prompt: summarizationPrompt + chunk,
		})
		if err != nil {
			return "", fmt.Errorf("client.GenerateText(summary %d) > %w", i, err)
		}
		summaries = append(summaries, response.Text)
	}

	return strings.Join(summaries, "\n\n---\n\n"), nil
}
