// Package config loads runtime settings from the environment, an optional
// .env file and Docker secrets.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

// Session store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds every setting the server and CLI read at startup
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`

	DefaultCharacterID string        `envconfig:"DEFAULT_CHARACTER_ID" default:"151075644"`
	CharacterBaseURL   string        `envconfig:"CHARACTER_BASE_URL"`
	CharacterTimeout   time.Duration `envconfig:"CHARACTER_TIMEOUT" default:"30s"`

	GenAIBaseURL     string        `envconfig:"GENAI_BASE_URL"`
	GenAIModel       string        `envconfig:"GENAI_MODEL" default:"gemini-2.0-flash"`
	GenAITimeout     time.Duration `envconfig:"GENAI_TIMEOUT" default:"60s"`
	GenAITemperature float32       `envconfig:"GENAI_TEMPERATURE" default:"0.7"`
	GenAIMaxTokens   int           `envconfig:"GENAI_MAX_TOKENS" default:"0"`

	SessionStore  string        `envconfig:"SESSION_STORE" default:"memory"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	SecureCookies bool          `envconfig:"SECURE_COOKIES" default:"false"`
	CORSOrigins   []string      `envconfig:"CORS_ALLOW_ORIGINS"`

	RedisURL      string `envconfig:"REDIS_URL"`
	RedisMode     string `envconfig:"REDIS_MODE" default:"single"`
	RedisAddrs    string `envconfig:"REDIS_ADDRS"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// APIKeyFile is where Docker mounts the generative API key secret
	APIKeyFile string `envconfig:"GOOGLE_API_KEY_FILE" default:"/run/secrets/google_api_key"`
	// GoogleAPIKey comes from GOOGLE_API_KEY or, failing that, APIKeyFile
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY"`
}

// Load reads .env (when present), the environment and the API key secret
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load configuration")
	}

	if cfg.GoogleAPIKey == "" {
		key, err := readSecret(cfg.APIKeyFile)
		if err != nil {
			return nil, err
		}
		cfg.GoogleAPIKey = key
	}
	cfg.GoogleAPIKey = strings.TrimSpace(cfg.GoogleAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings and the redis connection details
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ListenAddr", c.ListenAddr, vb)
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		vb.Fieldf("LogFormat", "must be %q or %q", FormatText, FormatJSON)
	}
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}
	if c.CharacterTimeout < 0 {
		vb.Field("CharacterTimeout", "must not be negative")
	}
	if c.GenAITimeout < 0 {
		vb.Field("GenAITimeout", "must not be negative")
	}

	switch c.SessionStore {
	case StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" && c.RedisAddrs == "" {
			vb.Field("RedisURL", "REDIS_URL or REDIS_ADDRS is required for the redis session store")
		}
	default:
		vb.Fieldf("SessionStore", "must be %q or %q", StoreMemory, StoreRedis)
	}

	return vb.Build()
}

// HasServerAPIKey reports whether a generative API key was configured
func (c *Config) HasServerAPIKey() bool {
	return c.GoogleAPIKey != ""
}

// readSecret returns the trimmed contents of a secret file. A missing file
// is not an error.
func readSecret(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to read secret file %s", path)
	}
	return strings.TrimSpace(string(data)), nil
}
