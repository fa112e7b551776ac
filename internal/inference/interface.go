package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for generation-backend operations
type Client interface {
	GenerateText(ctx context.Context, params GenerateTextRequest) (GenerateTextResponse, error)
}

// GenerateTextRequest holds one prompt exchange with the backend. The
// pipeline composes prompts; the client is transport only.
type GenerateTextRequest struct {
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
}

// GenerateTextResponse carries the raw model text. Callers are
// responsible for extracting and parsing any JSON inside it.
type GenerateTextResponse struct {
	Text string `json:"text"`
}

const (
	DefaultMaxRetryAttempts = 5
)
