// Package dashboard runs the session-scoped render pass: it loads characters
// into the session, derives combat options and vitality on every render, and
// stores the advisor's last strategy.
package dashboard

//go:generate mockgen -destination=mock/mock_service.go -package=dashboardmock github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/combat-companion/internal/combat"
	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/advisor"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
	"github.com/KirkDiggler/combat-companion/internal/repositories/session"
)

// User-facing precondition messages
const (
	MsgNoCharacter = "Load a character before asking for a strategy."
	MsgNoAPIKey    = "Please enter a Google Gemini API key in Settings."
)

// Service defines the interface for dashboard operations
type Service interface {
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)
	SetMaxHP(ctx context.Context, input *SetMaxHPInput) (*SetMaxHPOutput, error)
	SetAPIKey(ctx context.Context, input *SetAPIKeyInput) (*SetAPIKeyOutput, error)
	GenerateStrategy(ctx context.Context, input *GenerateStrategyInput) (*GenerateStrategyOutput, error)
	SetFlash(ctx context.Context, input *SetFlashInput) (*SetFlashOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Config holds the dependencies for the dashboard orchestrator
type Config struct {
	SessionRepo session.Repository
	Loader      loader.Service
	Advisor     advisor.Service
	// ServerAPIKey reports whether the generative client has a key of its own
	ServerAPIKey bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.Advisor == nil {
		vb.RequiredField("Advisor")
	}

	return vb.Build()
}

type orchestrator struct {
	sessions     session.Repository
	loader       loader.Service
	advisor      advisor.Service
	serverAPIKey bool
}

// NewOrchestrator creates a new dashboard orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessions:     cfg.SessionRepo,
		loader:       cfg.Loader,
		advisor:      cfg.Advisor,
		serverAPIKey: cfg.ServerAPIKey,
	}, nil
}

func (o *orchestrator) LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	var doc *ddb.Document
	switch {
	case input.Upload != nil:
		out, err := o.loader.ParseCharacter(ctx, &loader.ParseCharacterInput{
			Reader:   input.Upload,
			Filename: input.Filename,
		})
		if err != nil {
			return nil, err
		}
		doc = out.Document
	case strings.TrimSpace(input.CharacterID) != "":
		out, err := o.loader.FetchCharacter(ctx, &loader.FetchCharacterInput{
			CharacterID: input.CharacterID,
		})
		if err != nil {
			return nil, err
		}
		doc = out.Document
	default:
		return nil, errors.InvalidArgument("a character ID or a character file is required")
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character")
	}

	if _, err := o.sessions.Set(ctx, session.SetInput{
		SessionID: input.SessionID,
		Values:    session.Values{session.KeyCharacter: string(encoded)},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store character")
	}

	// a new character invalidates the old override and advice
	if _, err := o.sessions.Delete(ctx, session.DeleteInput{
		SessionID: input.SessionID,
		Keys:      []session.Key{session.KeyMaxHP, session.KeyLastStrategy},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to reset character state")
	}

	return &LoadCharacterOutput{Name: doc.Character.Name}, nil
}

func (o *orchestrator) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	values, err := o.values(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	view := &View{
		LastStrategy: values[session.KeyLastStrategy],
		Situation:    values[session.KeySituation],
	}
	view.APIKeySource = o.apiKeySource(values)
	view.HasAPIKey = view.APIKeySource != APIKeyNone

	if raw, ok := values[session.KeyFlash]; ok {
		var flash Flash
		if err := json.Unmarshal([]byte(raw), &flash); err == nil {
			view.Flash = &flash
		}
		if input.ConsumeFlash {
			if _, err := o.sessions.Delete(ctx, session.DeleteInput{
				SessionID: input.SessionID,
				Keys:      []session.Key{session.KeyFlash},
			}); err != nil {
				slog.WarnContext(ctx, "failed to clear flash", "error", err)
			}
		}
	}

	sheet, err := characterFrom(values)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return &RenderOutput{View: view}, nil
	}

	vitality := combat.ComputeVitality(sheet, maxHPFrom(ctx, values))
	view.Loaded = true
	view.Name = sheet.Name
	view.Vitality = &vitality
	view.Options = combat.Classify(sheet)

	return &RenderOutput{View: view}, nil
}

func (o *orchestrator) SetMaxHP(ctx context.Context, input *SetMaxHPInput) (*SetMaxHPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}
	if input.MaxHP != nil {
		vb := errors.NewValidationBuilder()
		errors.ValidateMin("MaxHP", *input.MaxHP, 0, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}
	}

	values, err := o.values(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	sheet, err := characterFrom(values)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, errors.FailedPrecondition("load a character before setting max HP")
	}

	if input.MaxHP == nil {
		_, err = o.sessions.Delete(ctx, session.DeleteInput{
			SessionID: input.SessionID,
			Keys:      []session.Key{session.KeyMaxHP},
		})
	} else {
		_, err = o.sessions.Set(ctx, session.SetInput{
			SessionID: input.SessionID,
			Values:    session.Values{session.KeyMaxHP: strconv.Itoa(*input.MaxHP)},
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store max HP")
	}

	vitality := combat.ComputeVitality(sheet, input.MaxHP)
	return &SetMaxHPOutput{Vitality: &vitality}, nil
}

func (o *orchestrator) SetAPIKey(ctx context.Context, input *SetAPIKeyInput) (*SetAPIKeyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.APIKey)
	var err error
	if key == "" {
		_, err = o.sessions.Delete(ctx, session.DeleteInput{
			SessionID: input.SessionID,
			Keys:      []session.Key{session.KeyAPIKey},
		})
	} else {
		_, err = o.sessions.Set(ctx, session.SetInput{
			SessionID: input.SessionID,
			Values:    session.Values{session.KeyAPIKey: key},
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store API key")
	}

	return &SetAPIKeyOutput{}, nil
}

func (o *orchestrator) GenerateStrategy(ctx context.Context, input *GenerateStrategyInput) (*GenerateStrategyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	values, err := o.values(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// keep what the user typed even if generation fails
	if _, err := o.sessions.Set(ctx, session.SetInput{
		SessionID: input.SessionID,
		Values:    session.Values{session.KeySituation: input.Situation},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store situation")
	}

	sheet, err := characterFrom(values)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, errors.FailedPrecondition(MsgNoCharacter)
	}
	if o.apiKeySource(values) == APIKeyNone {
		return nil, errors.FailedPrecondition(MsgNoAPIKey)
	}

	vitality := combat.ComputeVitality(sheet, maxHPFrom(ctx, values))
	out, err := o.advisor.Advise(ctx, &advisor.AdviseInput{
		PromptInput: advisor.PromptInput{
			Name:      sheet.Name,
			CurrentHP: vitality.CurrentHP,
			MaxHP:     vitality.MaxHP,
			Options:   combat.Classify(sheet),
			Situation: input.Situation,
		},
		APIKey: values[session.KeyAPIKey],
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.sessions.Set(ctx, session.SetInput{
		SessionID: input.SessionID,
		Values:    session.Values{session.KeyLastStrategy: out.Strategy},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store strategy")
	}

	return &GenerateStrategyOutput{Strategy: out.Strategy}, nil
}

func (o *orchestrator) SetFlash(ctx context.Context, input *SetFlashInput) (*SetFlashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(input.Flash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode flash")
	}
	if _, err := o.sessions.Set(ctx, session.SetInput{
		SessionID: input.SessionID,
		Values:    session.Values{session.KeyFlash: string(encoded)},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store flash")
	}

	return &SetFlashOutput{}, nil
}

func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSession(input.SessionID); err != nil {
		return nil, err
	}

	if _, err := o.sessions.Clear(ctx, session.ClearInput{SessionID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to reset session")
	}

	return &ResetOutput{}, nil
}

func (o *orchestrator) values(ctx context.Context, sessionID string) (session.Values, error) {
	out, err := o.sessions.Get(ctx, session.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if out.Values == nil {
		return session.Values{}, nil
	}
	return out.Values, nil
}

func (o *orchestrator) apiKeySource(values session.Values) APIKeySource {
	switch {
	case values[session.KeyAPIKey] != "":
		return APIKeySession
	case o.serverAPIKey:
		return APIKeyServer
	default:
		return APIKeyNone
	}
}

func requireSession(id string) error {
	if id == "" {
		return errors.InvalidArgument("session ID is required")
	}
	return nil
}

// characterFrom decodes the stored sheet, nil when none is loaded
func characterFrom(values session.Values) (*ddb.Sheet, error) {
	raw, ok := values[session.KeyCharacter]
	if !ok || raw == "" {
		return nil, nil
	}

	var doc ddb.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored character is corrupt")
	}
	return &doc.Character, nil
}

// maxHPFrom returns the stored override. Unparseable values are ignored.
func maxHPFrom(ctx context.Context, values session.Values) *int {
	raw, ok := values[session.KeyMaxHP]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.WarnContext(ctx, "ignoring invalid max HP override", "value", raw)
		return nil
	}
	return &n
}
