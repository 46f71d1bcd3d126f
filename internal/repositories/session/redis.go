package session

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/combat-companion/internal/redis"
)

const (
	// Key pattern: combat_session:{session_id}, one hash per session
	sessionKeyPrefix = "combat_session:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL for idle sessions (optional, defaults to DefaultTTL)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must be positive")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a session repository storing one hash per session
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateKeys(input.Keys); err != nil {
		return nil, err
	}

	key := r.buildKey(input.SessionID)
	values := make(Values)

	if len(input.Keys) == 0 {
		all, err := r.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get session from Redis")
		}
		for k, v := range all {
			values[Key(k)] = v
		}
		return &GetOutput{Values: values}, nil
	}

	fields := make([]string, len(input.Keys))
	for i, k := range input.Keys {
		fields[i] = string(k)
	}
	got, err := r.client.HMGet(ctx, key, fields...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}
	for i, v := range got {
		if s, ok := v.(string); ok {
			values[input.Keys[i]] = s
		}
	}

	return &GetOutput{Values: values}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateValues(input.Values); err != nil {
		return nil, err
	}

	key := r.buildKey(input.SessionID)
	fields := make(map[string]interface{}, len(input.Values))
	for k, v := range input.Values {
		fields[string(k)] = v
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &SetOutput{ExpiresAt: r.clock.Now().Add(r.ttl)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if len(input.Keys) == 0 {
		return nil, errors.InvalidArgument(errNoKeys)
	}
	if err := validateKeys(input.Keys); err != nil {
		return nil, err
	}

	key := r.buildKey(input.SessionID)
	fields := make([]string, len(input.Keys))
	for i, k := range input.Keys {
		fields[i] = string(k)
	}

	var hdel *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hdel = pipe.HDel(ctx, key, fields...)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session keys from Redis")
	}

	return &DeleteOutput{Deleted: int(hdel.Val())}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(input.SessionID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear session in Redis")
	}

	return &ClearOutput{}, nil
}

func (r *redisRepository) buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
