package config

import (
    "os"
    "time"
)

// ReceiptCacheConfig defines settings for the Redis-backed receipt
// cache. When Enabled is false or no Redis client is configured,
// caching is disabled and receipts are resolved from the store on
// every request. TTL bounds staleness in case a record is backfilled
// after the first resolution.
type ReceiptCacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadReceiptCacheConfig reads environment variables to build a
// ReceiptCacheConfig. Defaults are used when variables are not set.
func LoadReceiptCacheConfig() ReceiptCacheConfig {
    return ReceiptCacheConfig{
        Enabled: getenv("RECEIPT_CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("RECEIPT_CACHE_TTL", "5m")),
        Prefix:  getenv("RECEIPT_CACHE_PREFIX", "receipt"),
    }
}

// Helper functions reused from redis.go and ratelimit.go
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
