// Package testutils provides shared test helpers: an in-memory Redis and
// character document fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-companion/internal/redis"
)

// CreateTestRedisServer starts an in-memory Redis and a client for it. The
// server is returned so tests can inspect keys or fast-forward TTLs. Cleanup
// is registered on t.
func CreateTestRedisServer(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return mr, client
}
