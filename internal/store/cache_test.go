package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCachePushAndRecent(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.PushMessage(ctx, 1, Message{Role: "user", Content: "hi"})
	c.PushMessage(ctx, 1, Message{Role: "assistant", Content: "hello"})

	msgs, err := c.Recent(ctx, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0].Content != "hi" || msgs[1].Content != "hello" {
		t.Fatalf("unexpected history: %v", msgs)
	}
}

func TestCacheTrimsToMax(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < maxCachedMessages+5; i++ {
		c.PushMessage(ctx, 1, Message{Role: "user", Content: "m"})
	}

	msgs, err := c.Recent(ctx, 1, maxCachedMessages*2)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != maxCachedMessages {
		t.Fatalf("expected %d cached messages, got %d", maxCachedMessages, len(msgs))
	}
}

func TestCacheRecentLimitsWindow(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		c.PushMessage(ctx, 1, Message{Role: "user", Content: string(rune('a' + i))})
	}

	msgs, _ := c.Recent(ctx, 1, 3)
	if len(msgs) != 3 || msgs[2].Content != "j" {
		t.Fatalf("expected last 3 messages ending in j, got %v", msgs)
	}
}

func TestCacheConversationIsolation(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.PushMessage(ctx, 1, Message{Role: "user", Content: "one"})
	c.PushMessage(ctx, 2, Message{Role: "user", Content: "two"})

	msgs, _ := c.Recent(ctx, 1, 8)
	if len(msgs) != 1 || msgs[0].Content != "one" {
		t.Fatalf("conversation isolation failed: %v", msgs)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.PushMessage(ctx, 1, Message{Role: "user", Content: "hi"})
	c.Clear(ctx, 1)

	msgs, _ := c.Recent(ctx, 1, 8)
	if len(msgs) != 0 {
		t.Fatalf("expected empty history after clear, got %v", msgs)
	}
}
