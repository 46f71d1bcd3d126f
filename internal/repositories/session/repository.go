// Package session provides the per-browser key/value store behind the dashboard
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/combat-companion/internal/repositories/session Repository

// Key names one value held for a session
type Key string

// Session keys
const (
	// KeyCharacter holds the normalized character document as JSON
	KeyCharacter Key = "character"
	// KeyMaxHP holds the user's max HP override
	KeyMaxHP Key = "max_hp"
	// KeyLastStrategy holds the most recent advisor reply
	KeyLastStrategy Key = "last_strategy"
	// KeySituation holds the most recent situation report
	KeySituation Key = "situation"
	// KeyAPIKey holds a manually entered generative API key
	KeyAPIKey Key = "api_key"
	// KeyFlash holds a one-shot message shown after a redirect
	KeyFlash Key = "flash"
)

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 12 * time.Hour

// Keys lists every valid key
var Keys = []Key{KeyCharacter, KeyMaxHP, KeyLastStrategy, KeySituation, KeyAPIKey, KeyFlash}

// Values maps keys to stored strings. Absent keys are not set.
type Values map[Key]string

// GetInput selects values from a session. Empty Keys selects everything.
type GetInput struct {
	SessionID string
	Keys      []Key
}

// GetOutput contains the values found. A missing or expired session
// yields an empty map, not an error.
type GetOutput struct {
	Values Values
}

// SetInput stores values and refreshes the session TTL
type SetInput struct {
	SessionID string
	Values    Values
}

// SetOutput contains the new expiry
type SetOutput struct {
	ExpiresAt time.Time
}

// DeleteInput removes keys from a session
type DeleteInput struct {
	SessionID string
	Keys      []Key
}

// DeleteOutput reports how many keys were removed
type DeleteOutput struct {
	Deleted int
}

// ClearInput removes a whole session
type ClearInput struct {
	SessionID string
}

// ClearOutput is empty
type ClearOutput struct{}

// Repository defines the interface for session storage operations
type Repository interface {
	// Get returns stored values for the session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores values and refreshes the TTL
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Delete removes keys and refreshes the TTL
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Clear removes every value for the session
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

const (
	errSessionIDEmpty = "session ID cannot be empty"
	errNoValues       = "at least one value is required"
	errNoKeys         = "at least one key is required"
)

var validKeys = func() map[Key]bool {
	m := make(map[Key]bool, len(Keys))
	for _, k := range Keys {
		m[k] = true
	}
	return m
}()

func validateKeys(keys []Key) error {
	for _, k := range keys {
		if !validKeys[k] {
			return errors.InvalidArgumentf("unknown session key %q", k)
		}
	}
	return nil
}

func validateValues(values Values) error {
	if len(values) == 0 {
		return errors.InvalidArgument(errNoValues)
	}
	for k := range values {
		if !validKeys[k] {
			return errors.InvalidArgumentf("unknown session key %q", k)
		}
	}
	return nil
}
