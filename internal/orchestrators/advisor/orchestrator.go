// Package advisor asks the generative model for a turn-by-turn combat plan
package advisor

//go:generate mockgen -destination=mock/mock_service.go -package=advisormock github.com/KirkDiggler/combat-companion/internal/orchestrators/advisor Service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/KirkDiggler/combat-companion/internal/clients/genai"
	"github.com/KirkDiggler/combat-companion/internal/errors"
)

// MaxSituationLength bounds the free-text situation report
const MaxSituationLength = 4000

// Service defines the interface for tactical advice
type Service interface {
	Advise(ctx context.Context, input *AdviseInput) (*AdviseOutput, error)
}

// Config holds the dependencies for the advisor orchestrator
type Config struct {
	GenAIClient genai.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GenAIClient == nil {
		vb.RequiredField("GenAIClient")
	}

	return vb.Build()
}

type orchestrator struct {
	genai genai.Client
}

// NewOrchestrator creates a new advisor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{genai: cfg.GenAIClient}, nil
}

func (o *orchestrator) Advise(ctx context.Context, input *AdviseInput) (*AdviseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if utf8.RuneCountInString(input.Situation) > MaxSituationLength {
		vb.Fieldf("Situation", "must be at most %d characters", MaxSituationLength)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	prompt := ComposePrompt(input.PromptInput)

	out, err := o.genai.Generate(ctx, &genai.GenerateInput{
		APIKey: input.APIKey,
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "strategy generated",
		"character", input.Name,
		"model", out.Model,
		"reply_chars", len(out.Text))

	return &AdviseOutput{
		Strategy: out.Text,
		Prompt:   prompt,
		Model:    out.Model,
	}, nil
}
