package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// maxCachedMessages bounds the per-conversation history list in Redis.
// The prompt window only ever needs the tail of the conversation.
const maxCachedMessages = 16

// Cache keeps the hot tail of each conversation in Redis so a turn
// doesn't need a Postgres round trip to build its prompt context.
// Postgres stays the source of truth; every method is safe to skip on
// a cache miss or error.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: 24 * time.Hour}
}

func historyKey(convID int) string {
	return fmt.Sprintf("conv:%d:history", convID)
}

// PushMessage appends a message to the cached history and trims it.
func (c *Cache) PushMessage(ctx context.Context, convID int, m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	key := historyKey(convID)
	pipe := c.rdb.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -maxCachedMessages, -1)
	pipe.Expire(ctx, key, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to n cached messages, oldest first. An empty slice
// means a cache miss; the caller falls back to Postgres.
func (c *Cache) Recent(ctx context.Context, convID, n int) ([]Message, error) {
	items, err := c.rdb.LRange(ctx, historyKey(convID), int64(-n), -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, 0, len(items))
	for _, item := range items {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			// A corrupt entry poisons the whole list; drop it and let
			// the caller rebuild from Postgres.
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Clear drops a conversation's cached history (used on reset).
func (c *Cache) Clear(ctx context.Context, convID int) error {
	return c.rdb.Del(ctx, historyKey(convID)).Err()
}
