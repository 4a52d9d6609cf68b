package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// GeocodeCacheTTL bounds how long a resolved position is reused before the
// provider is asked again. Administrative centroids move rarely.
const GeocodeCacheTTL = 24 * time.Hour

// CacheService is a Redis cache-aside layer for geocoded positions. One
// provider call per distinct address text per TTL window instead of one per
// cluster per request.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and every
// operation becomes a no-op — the service runs fine without Redis, it just
// geocodes more.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetPosition returns a cached position for an address text, or (zero, false)
// on miss or when caching is disabled.
func (c *CacheService) GetPosition(ctx context.Context, addressText string) (model.Position, bool) {
	if c.rdb == nil {
		return model.Position{}, false
	}
	data, err := c.rdb.Get(ctx, geocodeKey(addressText)).Bytes()
	if err != nil {
		return model.Position{}, false
	}
	var pos model.Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return model.Position{}, false
	}
	return pos, pos.Resolved()
}

// SetPosition stores a resolved position. Unresolved positions are not
// cached, so a transient provider failure never pins a null result.
func (c *CacheService) SetPosition(ctx context.Context, addressText string, pos model.Position) {
	if c.rdb == nil || !pos.Resolved() {
		return
	}
	b, err := json.Marshal(pos)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, geocodeKey(addressText), b, GeocodeCacheTTL).Err(); err != nil {
		log.Printf("cache: set position error: %v", err)
	}
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func geocodeKey(addressText string) string {
	return fmt.Sprintf("geocode:%s", addressText)
}
