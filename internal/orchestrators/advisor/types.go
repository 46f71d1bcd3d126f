package advisor

import (
	"github.com/KirkDiggler/combat-companion/internal/combat"
)

// PromptInput is everything the tactical prompt embeds
type PromptInput struct {
	Name      string
	CurrentHP int
	MaxHP     int
	Options   *combat.Options
	Situation string
}

// AdviseInput defines the request for a turn strategy
type AdviseInput struct {
	PromptInput
	// APIKey is a user supplied key, empty to use the configured one
	APIKey string
}

// AdviseOutput defines the response for a turn strategy
type AdviseOutput struct {
	// Strategy is the model reply, unmodified
	Strategy string
	Prompt   string
	Model    string
}
