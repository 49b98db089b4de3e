package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pumpwatch/pkg/config"
)

func disabledClient(t *testing.T) *Client {
	t.Helper()
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: false}}

	client, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	return client
}

func TestNew_Disabled(t *testing.T) {
	client := disabledClient(t)

	assert.False(t, client.Enabled())
	assert.Nil(t, client.Redis())
	assert.NoError(t, client.Close())
}

func TestCache_DisabledIsNoOp(t *testing.T) {
	cache := NewCache(disabledClient(t))
	ctx := context.Background()

	type payload struct {
		Symbol    string  `json:"symbol"`
		Magnitude float64 `json:"magnitude"`
	}

	// Writes and deletes succeed without touching Redis
	assert.NoError(t, cache.Set(ctx, LatestInsightsKey(), payload{Symbol: "ABCD", Magnitude: 0.42}, TTLDaily))
	assert.NoError(t, cache.Delete(ctx, LatestInsightsKey()))

	// Reads are a clean miss
	var out payload
	hit, err := cache.Get(ctx, LatestInsightsKey(), &out)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "universe:2026-03", UniverseKey(2026, 3))
	assert.Equal(t, "universe:latest", LatestUniverseKey())
	assert.Equal(t, "insights:2026-08-21", InsightsKey("2026-08-21"))
	assert.Equal(t, "insights:latest", LatestInsightsKey())
}
