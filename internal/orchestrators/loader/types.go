package loader

import (
	"io"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
)

// FetchCharacterInput defines the request for loading a character by ID
type FetchCharacterInput struct {
	// CharacterID is a numeric ID or a character page URL
	CharacterID string
}

// FetchCharacterOutput defines the response for loading a character by ID
type FetchCharacterOutput struct {
	Document *ddb.Document
}

// ParseCharacterInput defines the request for loading an uploaded document
type ParseCharacterInput struct {
	Reader io.Reader
	// Filename is only used for logging
	Filename string
}

// ParseCharacterOutput defines the response for loading an uploaded document
type ParseCharacterOutput struct {
	Document *ddb.Document
}
