package receipt

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simontuck/gdc2025-website-sub001/internal/config"
	"github.com/simontuck/gdc2025-website-sub001/internal/model"
)

// Cache stores resolved receipts in Redis keyed by the identifier
// pair they were resolved from. Receipts are derived from immutable
// records, so a short TTL exists only to bound staleness if a record
// is backfilled. All Redis failures degrade silently to a cache miss;
// the cache must never make resolution worse than having no cache.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewCache returns a receipt cache, or nil when caching is disabled or
// no Redis client is available. A nil *Cache is a valid "no caching"
// value for the resolver.
func NewCache(cfg config.ReceiptCacheConfig, rdb *redis.Client) *Cache {
	if !cfg.Enabled || rdb == nil {
		return nil
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "receipt"
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: prefix}
}

// Get returns a cached receipt for the identifier pair, or ok=false on
// a miss or any Redis/decode failure.
func (c *Cache) Get(ctx context.Context, sessionID, bookingID string) (*model.PaymentReceipt, bool) {
	bs, err := c.rdb.Get(ctx, c.key(sessionID, bookingID)).Bytes()
	if err != nil {
		return nil, false
	}
	var rcpt model.PaymentReceipt
	if err := json.Unmarshal(bs, &rcpt); err != nil {
		return nil, false
	}
	return &rcpt, true
}

// Set stores a resolved receipt. Errors are ignored.
func (c *Cache) Set(ctx context.Context, sessionID, bookingID string, rcpt *model.PaymentReceipt) {
	bs, err := json.Marshal(rcpt)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, c.key(sessionID, bookingID), bs, c.ttl).Err()
}

func (c *Cache) key(sessionID, bookingID string) string {
	sum := sha1.Sum([]byte(sessionID + "|" + bookingID))
	return fmt.Sprintf("%s:%x", c.prefix, sum[:])
}
