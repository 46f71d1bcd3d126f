package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	ddbclient "github.com/KirkDiggler/combat-companion/internal/clients/ddb"
	"github.com/KirkDiggler/combat-companion/internal/clients/genai"
	"github.com/KirkDiggler/combat-companion/internal/config"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/advisor"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
	redisclient "github.com/KirkDiggler/combat-companion/internal/redis"
	"github.com/KirkDiggler/combat-companion/internal/repositories/session"
)

const redisPingTimeout = 5 * time.Second

// loadConfig reads configuration and installs the process logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return cfg, nil
}

func newLoader(cfg *config.Config) (loader.Service, error) {
	characterClient, err := ddbclient.New(&ddbclient.Config{
		BaseURL:     cfg.CharacterBaseURL,
		HTTPTimeout: cfg.CharacterTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character client: %w", err)
	}

	svc, err := loader.NewOrchestrator(&loader.Config{CharacterClient: characterClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}
	return svc, nil
}

func newAdvisor(cfg *config.Config) (advisor.Service, error) {
	genaiClient, err := genai.New(&genai.Config{
		APIKey:      cfg.GoogleAPIKey,
		BaseURL:     cfg.GenAIBaseURL,
		Model:       cfg.GenAIModel,
		Timeout:     cfg.GenAITimeout,
		Temperature: cfg.GenAITemperature,
		MaxTokens:   cfg.GenAIMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	svc, err := advisor.NewOrchestrator(&advisor.Config{GenAIClient: genaiClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor: %w", err)
	}
	return svc, nil
}

// newSessionRepository picks the session store. The returned cleanup closes
// any connection it opened.
func newSessionRepository(ctx context.Context, cfg *config.Config) (session.Repository, func(), error) {
	if cfg.SessionStore == config.StoreMemory {
		slog.InfoContext(ctx, "using in-memory session store", "ttl", cfg.SessionTTL)
		return session.NewInMemory(&session.InMemoryConfig{TTL: cfg.SessionTTL}), func() {}, nil
	}

	var (
		client redisclient.Client
		err    error
	)
	if cfg.RedisURL != "" {
		client, err = redisclient.NewFromURL(cfg.RedisURL)
	} else {
		client, err = redisclient.New(redisclient.Mode(cfg.RedisMode), redisclient.SplitAddrs(cfg.RedisAddrs), &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("redis is not reachable: %w", err)
	}

	repo, err := session.NewRedis(&session.RedisConfig{Client: client, TTL: cfg.SessionTTL})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	slog.InfoContext(ctx, "using redis session store", "mode", cfg.RedisMode, "ttl", cfg.SessionTTL)
	return repo, cleanup, nil
}
