package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache provides typed caching utilities under the pumpwatch key prefix
// ⭐ SSOT: 캐시 헬퍼는 여기서만
type Cache struct {
	client *Client
}

// NewCache creates a new cache helper
func NewCache(client *Client) *Cache {
	return &Cache{client: client}
}

// Get retrieves a cached value
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.client.Enabled() {
		return false, nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", keyPrefix, key)
	data, err := c.client.Redis().Get(ctx, fullKey).Bytes()
	if err != nil {
		// Key not found is not an error
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return true, nil
}

// Set stores a value in cache with TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	fullKey := fmt.Sprintf("%s:cache:%s", keyPrefix, key)
	return c.client.Redis().Set(ctx, fullKey, data, ttl).Err()
}

// Delete removes a cached value
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", keyPrefix, key)
	return c.client.Redis().Del(ctx, fullKey).Err()
}

// Predefined TTLs
const (
	TTLShort  = 1 * time.Minute  // 실시간 조회
	TTLMedium = 10 * time.Minute // 유니버스 스냅샷
	TTLDaily  = 24 * time.Hour   // 일별 인사이트
)

// Common cache key generators

// UniverseKey is the cache key for a monthly universe snapshot
func UniverseKey(year int, month int) string {
	return fmt.Sprintf("universe:%04d-%02d", year, month)
}

// LatestUniverseKey is the cache key for the most recent universe snapshot
func LatestUniverseKey() string {
	return "universe:latest"
}

// InsightsKey is the cache key for a daily insight batch
func InsightsKey(date string) string {
	return fmt.Sprintf("insights:%s", date)
}

// LatestInsightsKey is the cache key for the most recent insight batch
func LatestInsightsKey() string {
	return "insights:latest"
}
