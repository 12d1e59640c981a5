package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
)

// Redis key TTLs. Feed and video pages track a fast-moving upstream; channel
// profiles change rarely.
const (
	FeedCacheTTL    = 5 * time.Minute
	VideoCacheTTL   = 5 * time.Minute
	ChannelCacheTTL = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for feed, video, and
// channel lookups.
type CacheService struct {
	rdb    *redis.Client
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	middleware.Logger.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// InstrumentHitMiss wires hit/miss counters in after metrics registration.
func (c *CacheService) InstrumentHitMiss(hits, misses prometheus.Counter) {
	c.hits = hits
	c.misses = misses
}

// Client returns the underlying Redis client (for health checks and session
// storage). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// Get retrieves a cached payload. Returns nil if not cached or cache is disabled.
func (c *CacheService) Get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.countMiss()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.countHit()
	return data, nil
}

// Set stores a payload under key with the given TTL.
func (c *CacheService) Set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Invalidate removes a key from cache.
func (c *CacheService) Invalidate(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) countHit() {
	if c.hits != nil {
		c.hits.Inc()
	}
}

func (c *CacheService) countMiss() {
	if c.misses != nil {
		c.misses.Inc()
	}
}

// FeedKey identifies one page of a category feed or a search result page.
func FeedKey(categoryID, query string, page int) string {
	if query != "" {
		return fmt.Sprintf("feed:search:%s:%d", query, page)
	}
	return fmt.Sprintf("feed:category:%s:%d", categoryID, page)
}

// VideoKey identifies a watch-page payload.
func VideoKey(videoID string) string {
	return fmt.Sprintf("video:%s", videoID)
}

// ChannelKey identifies a channel profile.
func ChannelKey(channelID string) string {
	return fmt.Sprintf("channel:%s", channelID)
}
