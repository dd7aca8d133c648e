package common

import (
	"fmt"
	"os"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/logging"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NewCacheFromEnv picks the cache backend: Redis when CACHE_BACKEND=redis and
// reachable, in-memory otherwise.
func NewCacheFromEnv() CacheInterface {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := NewRedisCacheService()
		if err == nil {
			logging.Info("Using Redis cache backend")
			return redisCache
		}
		logging.Warn("Redis cache unavailable, falling back to in-memory", "error", err.Error())
	}
	return NewCacheService(900, 600)
}
