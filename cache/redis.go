package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ErrCacheDisabled is returned when the cache layer was never initialized.
var ErrCacheDisabled = errors.New("cache: redis client not initialized")

// Cache key patterns for the product catalog
const (
	ProductListKey       = "products:all"
	ProductDetailPattern = "product:%s"
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// InitRedis initializes the Redis client and verifies the connection
func InitRedis(config RedisConfig) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Host + ":" + config.Port,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient = nil
		return err
	}
	return nil
}

// GetCache retrieves a cached value and unmarshals it into dest
func GetCache(ctx context.Context, key string, dest interface{}) error {
	if redisClient == nil {
		return ErrCacheDisabled
	}
	data, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// SetCache stores a value in the cache with the given TTL
func SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if redisClient == nil {
		return ErrCacheDisabled
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, key, data, ttl).Err()
}

// DeleteCache removes one or more keys from the cache
func DeleteCache(ctx context.Context, keys ...string) error {
	if redisClient == nil {
		return ErrCacheDisabled
	}
	return redisClient.Del(ctx, keys...).Err()
}
