package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/courseforge/courseforge/internal/inference"
)

func TestClient_GenerateText(t *testing.T) {
	tests := []struct {
		name              string
		request           inference.GenerateTextRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse    inference.GenerateTextResponse
		wantError       bool
		wantErrorString string
	}{
		{
			name: "Success with system and user prompt",
			request: inference.GenerateTextRequest{
				System: "You are a course generator.",
				Prompt: "Generate a course from this text.",
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				assert.Equal(t, "gpt-4o-mini", reqBody.Model)
				require.Len(t, reqBody.Messages, 2)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Equal(t, RoleUser, reqBody.Messages[1].Role)

				mockResponse := ChatCompletionResponse{
					ID:      "chatcmpl-123",
					Object:  "chat.completion",
					Created: 1677652288,
					Model:   "gpt-4o-mini",
					Choices: []Choice{
						{
							Index: 0,
							Message: ChoiceMessage{
								Role:    RoleAssistant,
								Content: `{"courseTitle": "T", "modules": []}`,
							},
							FinishReason: "stop",
						},
					},
					Usage: Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(mockResponse)
			},
			wantResponse: inference.GenerateTextResponse{
				Text: `{"courseTitle": "T", "modules": []}`,
			},
		},
		{
			name: "Prompt only omits the system message",
			request: inference.GenerateTextRequest{
				Prompt: "Summarize this chunk.",
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var reqBody ChatCompletionRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				require.Len(t, reqBody.Messages, 1)
				assert.Equal(t, RoleUser, reqBody.Messages[0].Role)

				mockResponse := ChatCompletionResponse{
					Choices: []Choice{
						{Message: ChoiceMessage{Role: RoleAssistant, Content: "a summary"}},
					},
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(mockResponse)
			},
			wantResponse: inference.GenerateTextResponse{Text: "a summary"},
		},
		{
			name: "HTTP 500 error is not retried",
			request: inference.GenerateTextRequest{
				Prompt: "p",
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error": {"message": "Internal server error"}}`))
			},
			wantError:       true,
			wantErrorString: "response error 500",
		},
		{
			name: "Empty choices",
			request: inference.GenerateTextRequest{
				Prompt: "p",
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(ChatCompletionResponse{})
			},
			wantError:       true,
			wantErrorString: "empty response body or choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4o-mini",
				maxRetryAttempts: 1,
			}

			ctx := context.Background()
			gotResponse, gotErr := client.GenerateText(ctx, tt.request)

			if tt.wantError {
				require.Error(t, gotErr)
				if tt.wantErrorString != "" {
					assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				}
				return
			}

			require.NoError(t, gotErr)
			require.Equal(t, tt.wantResponse, gotResponse)
		})
	}
}

func TestClient_GenerateTextRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limited"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []Choice{
				{Message: ChoiceMessage{Role: RoleAssistant, Content: "ok"}},
			},
		})
	}))
	defer server.Close()

	client := &Client{
		httpClient:       resty.New().SetBaseURL(server.URL),
		model:            "gpt-4o-mini",
		maxRetryAttempts: 2,
	}

	got, err := client.GenerateText(context.Background(), inference.GenerateTextRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "rate limit", err: errors.New("response error 429: slow down"), expected: true},
		{name: "server error", err: errors.New("response error 500: boom"), expected: false},
		{name: "unrelated error", err: assert.AnError, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRetryableError(tt.err))
		})
	}
}
