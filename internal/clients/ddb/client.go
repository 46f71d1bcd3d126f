// Package ddb is the client for the D&D Beyond character service
package ddb

//go:generate mockgen -destination=mock/mock_client.go -package=ddbmock github.com/KirkDiggler/combat-companion/internal/clients/ddb Client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

const (
	// DefaultBaseURL is the public character service host
	DefaultBaseURL = "https://character-service.dndbeyond.com"
	// DefaultUserAgent mimics a desktop browser; the service rejects bare clients
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	characterPath = "/character/v5/character/"
	maxBodyBytes  = 16 << 20
)

// Error metadata keys
const (
	MetaCharacterID = "character_id"
	MetaHTTPStatus  = "http_status"
)

// Client fetches raw character documents
type Client interface {
	// GetCharacter returns the raw response body for a character ID.
	// Failures are fetch errors (see errors.IsFetchError).
	GetCharacter(ctx context.Context, characterID string) ([]byte, error)
}

// Config contains configuration options for the character service client.
type Config struct {
	// BaseURL of the character service (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// UserAgent header (optional, defaults to DefaultUserAgent)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a new character service client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    trimSlash(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetCharacter(ctx context.Context, characterID string) ([]byte, error) {
	id, err := ParseCharacterID(characterID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, status, fetchErr := c.get(ctx, c.baseURL+characterPath+id)
	observeFetch(status, fetchErr == nil, time.Since(start))
	if fetchErr != nil {
		slog.WarnContext(ctx, "character fetch failed",
			"character_id", id,
			"http_status", status,
			"error", fetchErr)
		return nil, fetchErr.
			WithMeta(MetaCharacterID, id).
			WithMeta(MetaHTTPStatus, status)
	}

	slog.InfoContext(ctx, "fetched character",
		"character_id", id,
		"bytes", len(body),
		"duration", time.Since(start))

	return body, nil
}

// get returns the body and status, or a fetch error
func (c *client) get(ctx context.Context, url string) ([]byte, int, *errors.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.FetchFailed(err, errors.CodeInternal, "failed to build character request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		code := errors.CodeUnavailable
		if ctx.Err() != nil {
			code = errors.CodeDeadlineExceeded
		}
		return nil, 0, errors.FetchFailedf(err, code, "character service request failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, errors.FetchFailedf(nil,
			statusCode(resp.StatusCode),
			"character service returned HTTP %d %s",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, errors.FetchFailedf(err, errors.CodeUnavailable, "failed to read character response: %v", err)
	}

	return body, resp.StatusCode, nil
}

// statusCode maps upstream statuses onto the codes the dashboard explains:
// missing characters, private characters, and everything else.
func statusCode(status int) errors.Code {
	switch status {
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusForbidden:
		return errors.CodePermissionDenied
	default:
		return errors.CodeUnavailable
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
