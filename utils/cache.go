// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ChatSessionClient is the dedicated client for chatbot session storage.
	ChatSessionClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatSessionCache initializes the Redis client backing chatbot sessions.
func InitChatSessionCache() {
	ChatSessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatSessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Sessions): %v", err)
	}
}

// GetChatSessionClient returns the Redis client for chatbot sessions.
func GetChatSessionClient() *redis.Client {
	if ChatSessionClient == nil {
		InitChatSessionCache()
	}
	return ChatSessionClient
}
