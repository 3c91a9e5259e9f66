package config

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	Redis *CacheService
)

type CacheService struct {
	Connection *redis.Client
}

func NewCacheService(env *Env) error {
	c := redis.NewClient(&redis.Options{
		Addr:     env.RedisHost + ":" + env.RedisPort,
		Username: env.RedisUsername,
		Password: env.RedisPassword,
		DB:       0,
	})

	if err := c.Ping(context.Background()).Err(); err != nil {
		return err
	}

	Redis = &CacheService{
		Connection: c,
	}

	return nil
}

// GetKey decodes the JSON stored at key into src. A missing key returns redis.Nil.
func (c *CacheService) GetKey(ctx context.Context, key string, src interface{}) error {
	val, err := c.Connection.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), src)
}

// SetKey stores value as JSON at key.
func (c *CacheService) SetKey(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	cacheEntry, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Connection.Set(ctx, key, cacheEntry, expiration).Err()
}

func (c *CacheService) DelKey(ctx context.Context, key string) error {
	return c.Connection.Del(ctx, key).Err()
}

func (c *CacheService) Close() error {
	return c.Connection.Close()
}
