// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"mutawwif/config"

	"github.com/go-redis/redis/v8"
)

// ChatCacheClient is the dedicated client for chat session transcripts.
var ChatCacheClient *redis.Client

// InitChatCache initializes the Redis client for chat session storage
// (using DB from AppConfig).
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Cache): %v", err)
	}
}

// GetChatCacheClient returns the Redis client for chat session storage.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
