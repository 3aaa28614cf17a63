// Package cache holds the optional Redis cache of structured LLM output,
// keyed by document class and a digest of the raw OCR text. Re-uploading
// an identical scan then skips the LLM call. Cache failures never fail
// the pipeline.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a cached extraction stays valid.
const DefaultTTL = 24 * time.Hour

// Extraction is a Redis-backed extraction cache. A nil *Extraction is a
// valid no-op cache.
type Extraction struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects an extraction cache. An empty addr disables caching and
// returns nil.
func New(addr string, ttl time.Duration) *Extraction {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Extraction{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func key(docClass, rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return "extract:" + docClass + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached structured data for this class and raw text, if
// present.
func (c *Extraction) Get(ctx context.Context, docClass, rawText string) (map[string]any, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(docClass, rawText)).Bytes()
	if err != nil {
		return nil, false
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	return data, true
}

// Put stores structured data for this class and raw text.
func (c *Extraction) Put(ctx context.Context, docClass, rawText string, data map[string]any) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(docClass, rawText), b, c.ttl)
}
