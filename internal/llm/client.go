package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Request describes one text-generation call: a system instruction, the
// user content, a creativity knob in [0,1], and an output cap.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int32
	Tier        ModelTier
}

// Client is an abstraction over LLM providers
type Client interface {
	// Generate produces text for the request, or a *GenerationError.
	Generate(ctx context.Context, req Request) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// Retry policy for transient generation failures. The pipeline makes one
// blocking call per turn, so a short bounded retry is enough; after that the
// caller falls back to templated text.
const (
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// Generate produces text for the request, retrying transient provider
// failures with exponential backoff before giving up.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return "", &GenerationError{Message: fmt.Sprintf("no model configured for tier %s", req.Tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(req.MaxTokens)
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := model.GenerateContent(ctx, genai.Text(req.User))
		if err == nil {
			return extractTextFromResponse(resp)
		}

		genErr := classify(err)
		if !genErr.Retryable || attempt == maxAttempts {
			return "", genErr
		}
		lastErr = genErr

		select {
		case <-ctx.Done():
			return "", &GenerationError{Message: "generation canceled", Cause: ctx.Err()}
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return "", &GenerationError{Message: "retries exhausted", Cause: lastErr}
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// classify wraps a provider error, marking rate limits and server-side
// failures as retryable.
func classify(err error) *GenerationError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable:
			return &GenerationError{Message: "transient provider error", Retryable: true, Cause: err}
		}
		return &GenerationError{Message: "provider rejected request", Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &GenerationError{Message: "generation canceled", Cause: err}
	}
	// Unrecognized errors are most often network hiccups; worth one retry.
	return &GenerationError{Message: "request failed", Retryable: true, Cause: err}
}

// extractTextFromResponse concatenates the text parts of the first
// candidate. An empty candidate list is a malformed response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &GenerationError{Message: "empty response from model"}
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", &GenerationError{Message: "response contained no text parts"}
	}
	return out, nil
}
