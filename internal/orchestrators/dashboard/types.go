package dashboard

import (
	"io"

	"github.com/KirkDiggler/combat-companion/internal/combat"
)

// FlashLevel styles a flash message
type FlashLevel string

// Flash levels
const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash is a one-shot message shown on the next render
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// APIKeySource says where the generative API key comes from
type APIKeySource string

// API key sources
const (
	APIKeyNone    APIKeySource = ""
	APIKeyServer  APIKeySource = "server"
	APIKeySession APIKeySource = "session"
)

// View is everything the dashboard page shows
type View struct {
	Loaded       bool             `json:"loaded"`
	Name         string           `json:"name,omitempty"`
	Vitality     *combat.Vitality `json:"vitality,omitempty"`
	Options      *combat.Options  `json:"options,omitempty"`
	LastStrategy string           `json:"last_strategy,omitempty"`
	Situation    string           `json:"situation,omitempty"`
	HasAPIKey    bool             `json:"has_api_key"`
	APIKeySource APIKeySource     `json:"api_key_source,omitempty"`
	Flash        *Flash           `json:"flash,omitempty"`
}

// LoadCharacterInput loads a character into the session. Exactly one of
// CharacterID and Upload is set.
type LoadCharacterInput struct {
	SessionID   string
	CharacterID string
	Upload      io.Reader
	Filename    string
}

// LoadCharacterOutput reports the loaded character
type LoadCharacterOutput struct {
	Name string
}

// RenderInput defines the request for a render pass
type RenderInput struct {
	SessionID string
	// ConsumeFlash removes the flash message once it is returned
	ConsumeFlash bool
}

// RenderOutput defines the response for a render pass
type RenderOutput struct {
	View *View
}

// SetMaxHPInput stores a max HP override. A nil MaxHP removes the override.
type SetMaxHPInput struct {
	SessionID string
	MaxHP     *int
}

// SetMaxHPOutput returns the recomputed vitality
type SetMaxHPOutput struct {
	Vitality *combat.Vitality
}

// SetAPIKeyInput stores a user supplied API key. An empty key removes it.
type SetAPIKeyInput struct {
	SessionID string
	APIKey    string
}

// SetAPIKeyOutput is empty
type SetAPIKeyOutput struct{}

// GenerateStrategyInput asks for advice on the current situation
type GenerateStrategyInput struct {
	SessionID string
	Situation string
}

// GenerateStrategyOutput carries the advice
type GenerateStrategyOutput struct {
	Strategy string
}

// SetFlashInput stores a flash message
type SetFlashInput struct {
	SessionID string
	Flash     Flash
}

// SetFlashOutput is empty
type SetFlashOutput struct{}

// ResetInput clears the session
type ResetInput struct {
	SessionID string
}

// ResetOutput is empty
type ResetOutput struct{}
