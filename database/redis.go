package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"songkick/facade/config"
)

var redisClient *redis.Client

// ResponseCache stores marshaled facade responses in Redis with a TTL.
// A nil embedded client disables the cache entirely.
type ResponseCache struct {
	*redis.Client
	ttlMilliseconds int64
}

const CacheKeyPrefix = "songkick:"

func (r ResponseCache) getTTL() time.Duration {
	if r.ttlMilliseconds <= 0 {
		return 0
	}
	return time.Duration(r.ttlMilliseconds) * time.Millisecond
}

// Get returns the cached payload for a key, or found=false on a miss.
// Cache errors are reported as misses; the caller falls through to the
// upstream fetch.
func (r ResponseCache) Get(ctx context.Context, key string) (payload []byte, found bool) {
	if r.Client == nil {
		return nil, false
	}
	result, err := r.Client.Get(ctx, CacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("ResponseCache: get %q failed: %v", key, err)
		return nil, false
	}
	return result, true
}

// Set stores a payload under a key with the configured TTL. Failures are
// logged and ignored; the cache never fails a request.
func (r ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	if r.Client == nil {
		return
	}
	if err := r.Client.SetEx(ctx, CacheKeyPrefix+key, payload, r.getTTL()).Err(); err != nil {
		log.Printf("ResponseCache: set %q failed: %v", key, err)
	}
}

// InitRedis initializes the Redis client connection
func InitRedis(cfg *config.RedisConfig) error {
	addr := cfg.GetRedisAddr()

	opts := &redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0, // default DB
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisClient = client
	log.Println("Redis connection established successfully")
	return nil
}

// CloseRedis closes the Redis client connection
func CloseRedis() error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		log.Println("Redis connection closed")
	}
	return nil
}

// RedisInitialized reports whether a Redis connection was established
func RedisInitialized() bool {
	return redisClient != nil
}

// RedisHealthCheck verifies that the Redis connection is alive
func RedisHealthCheck(ctx context.Context) error {
	if redisClient == nil {
		return fmt.Errorf("Redis connection is not initialized")
	}
	return redisClient.Ping(ctx).Err()
}

// GetResponseCache returns a cache handle over the shared Redis connection
func GetResponseCache(ttlMilliseconds int64) ResponseCache {
	return ResponseCache{redisClient, ttlMilliseconds}
}
