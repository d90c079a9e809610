// Package cache holds the Redis-backed cache for computed slot listings.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barbersalon/salon-api/models"
)

// SlotCache stores available-slot listings keyed by (date, staff member).
// A nil *SlotCache is valid and disables caching, so callers never need to
// branch on whether Redis is configured.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSlotCache connects to Redis at addr. Returns nil (cache disabled) when
// addr is empty or the server is unreachable.
func NewSlotCache(addr string, ttl time.Duration) *SlotCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("slot cache disabled, redis unreachable: %v", err)
		return nil
	}
	return &SlotCache{client: client, ttl: ttl}
}

func slotKey(date time.Time, staffID uint) string {
	return fmt.Sprintf("slots:%s:%d", date.Format(models.DateLayout), staffID)
}

func (c *SlotCache) Get(ctx context.Context, date time.Time, staffID uint) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, slotKey(date, staffID)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, date time.Time, staffID uint, slots []string) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(date, staffID), raw, c.ttl).Err(); err != nil {
		log.Printf("slot cache set failed: %v", err)
	}
}

// Invalidate drops the cached listing after a booking write touches the
// (date, staff) pair.
func (c *SlotCache) Invalidate(ctx context.Context, date time.Time, staffID uint) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, slotKey(date, staffID)).Err(); err != nil {
		log.Printf("slot cache invalidate failed: %v", err)
	}
}
