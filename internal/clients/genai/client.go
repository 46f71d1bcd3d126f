// Package genai is the client for the generative-language API. It talks to
// the OpenAI-compatible chat completions endpoint.
package genai

//go:generate mockgen -destination=mock/mock_client.go -package=genaimock github.com/KirkDiggler/combat-companion/internal/clients/genai Client

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

const (
	// DefaultBaseURL is the Gemini OpenAI-compatible endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	// DefaultModel is used when no model is configured
	DefaultModel = "gemini-2.0-flash"
)

// Client generates text from a prompt
type Client interface {
	// Generate sends the prompt and returns the model's reply verbatim.
	// Failures are generation errors (see errors.IsGenerationError).
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput contains the prompt and the key to authenticate with
type GenerateInput struct {
	// APIKey overrides the configured key when set
	APIKey string
	Prompt string
}

// GenerateOutput contains the reply text and usage
type GenerateOutput struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Config contains configuration options for the generative client.
type Config struct {
	// APIKey used when GenerateInput.APIKey is empty (optional)
	APIKey string
	// BaseURL of the OpenAI-compatible API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// Model name (optional, defaults to DefaultModel)
	Model string
	// Timeout per generation (optional, defaults to 60 seconds)
	Timeout time.Duration
	// Temperature for sampling
	Temperature float32
	// MaxTokens caps the reply length, zero leaves it to the API
	MaxTokens int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	vb := errors.NewValidationBuilder()
	if cfg.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		vb.Field("Temperature", "must be between 0 and 2")
	}
	errors.ValidateMin("MaxTokens", cfg.MaxTokens, 0, vb)
	return vb.Build()
}

type client struct {
	cfg Config
}

// New creates a new generative client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{cfg: *cfg}, nil
}

func (c *client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	apiKey := input.APIKey
	if apiKey == "" {
		apiKey = c.cfg.APIKey
	}
	if apiKey == "" {
		return nil, errors.FailedPrecondition("an API key for the generative-language service is required")
	}

	// the key can differ per session, so the SDK client is built per call
	oaCfg := openai.DefaultConfig(apiKey)
	oaCfg.BaseURL = c.cfg.BaseURL
	oaCfg.HTTPClient = &http.Client{Timeout: c.cfg.Timeout}
	api := openai.NewClientWithConfig(oaCfg)

	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: input.Prompt,
			},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	start := time.Now()
	resp, err := api.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		observeGeneration(c.cfg.Model, "error", elapsed)
		slog.WarnContext(ctx, "generation failed",
			"model", c.cfg.Model,
			"duration", elapsed,
			"error", err)
		return nil, generationError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		observeGeneration(c.cfg.Model, "empty", elapsed)
		return nil, errors.GenerationFailed(nil, "the model returned an empty response")
	}

	observeGeneration(c.cfg.Model, "ok", elapsed)
	observeTokens(c.cfg.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	slog.InfoContext(ctx, "generated strategy",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration", elapsed)

	model := resp.Model
	if model == "" {
		model = c.cfg.Model
	}

	return &GenerateOutput{
		Text:             resp.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// generationError keeps the upstream status in metadata when the SDK
// surfaces one.
func generationError(err error) error {
	genErr := errors.GenerationFailed(err, "the generative-language service failed: "+err.Error())

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case stderrors.As(err, &apiErr):
		genErr.WithMeta("http_status", apiErr.HTTPStatusCode)
		if code := errors.CodeFromHTTPStatus(apiErr.HTTPStatusCode); code == errors.CodeUnauthenticated || code == errors.CodePermissionDenied {
			genErr.Message = "the generative-language service rejected the API key"
		}
	case stderrors.As(err, &reqErr):
		genErr.WithMeta("http_status", reqErr.HTTPStatusCode)
	}

	return genErr
}
