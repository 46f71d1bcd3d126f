// Package loader turns character service responses and uploaded files into
// a normalized character document.
package loader

//go:generate mockgen -destination=mock/mock_service.go -package=loadermock github.com/KirkDiggler/combat-companion/internal/orchestrators/loader Service

import (
	"context"
	"io"
	"log/slog"

	ddbclient "github.com/KirkDiggler/combat-companion/internal/clients/ddb"
	"github.com/KirkDiggler/combat-companion/internal/errors"
)

// MaxUploadBytes bounds uploaded character files
const MaxUploadBytes = 16 << 20

// Service defines the interface for loading characters
type Service interface {
	// FetchCharacter loads a character from the character service
	FetchCharacter(ctx context.Context, input *FetchCharacterInput) (*FetchCharacterOutput, error)

	// ParseCharacter loads a character from an uploaded JSON document
	ParseCharacter(ctx context.Context, input *ParseCharacterInput) (*ParseCharacterOutput, error)
}

// Config holds the dependencies for the loader orchestrator
type Config struct {
	CharacterClient ddbclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterClient == nil {
		vb.RequiredField("CharacterClient")
	}

	return vb.Build()
}

type orchestrator struct {
	characterClient ddbclient.Client
}

// NewOrchestrator creates a new loader orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterClient: cfg.CharacterClient,
	}, nil
}

func (o *orchestrator) FetchCharacter(ctx context.Context, input *FetchCharacterInput) (*FetchCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id, err := ddbclient.ParseCharacterID(input.CharacterID)
	if err != nil {
		return nil, err
	}

	body, err := o.characterClient.GetCharacter(ctx, id)
	if err != nil {
		// already a fetch error carrying the upstream status
		return nil, err
	}

	doc, err := Normalize(body)
	if err != nil {
		slog.WarnContext(ctx, "character service returned an unusable document",
			"character_id", id,
			"error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "loaded character",
		"character_id", id,
		"name", doc.Character.Name,
		"level", doc.Character.Level)

	return &FetchCharacterOutput{Document: doc}, nil
}

func (o *orchestrator) ParseCharacter(ctx context.Context, input *ParseCharacterInput) (*ParseCharacterOutput, error) {
	if input == nil || input.Reader == nil {
		return nil, errors.InvalidArgument("a character file is required")
	}

	body, err := io.ReadAll(io.LimitReader(input.Reader, MaxUploadBytes+1))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read character file")
	}
	if len(body) > MaxUploadBytes {
		return nil, errors.InvalidArgumentf("character file is larger than %d bytes", MaxUploadBytes)
	}

	doc, err := Normalize(body)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "parsed uploaded character",
		"filename", input.Filename,
		"name", doc.Character.Name,
		"bytes", len(body))

	return &ParseCharacterOutput{Document: doc}, nil
}
