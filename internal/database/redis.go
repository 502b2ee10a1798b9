package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/pcrims/finpath-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Leaderboard caching will be disabled.", err)
		Redis = nil
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// Caching
func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, payload, expiration).Err()
}

func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func CacheInvalidate(pattern string) error {
	if Redis == nil {
		return nil
	}
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}
