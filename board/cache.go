package board

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"salesboard-api/domain"
)

type lister interface {
	ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error)
	ListCards(ctx context.Context, boardID string) ([]domain.Card, error)
}

// Cache wraps a board client with Redis-backed caching for the read-only
// board snapshots the dashboard consumes. Work-item creation must not use
// it: card creation has to see the board live.
type Cache struct {
	base  lister
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching wrapper using the provided Redis client and TTL.
func NewCache(base lister, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("board.NewCache: base client is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl}
}

func (c *Cache) ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error) {
	var lists []domain.BoardList
	if c.loadFromCache(ctx, listsCacheKey(boardID), &lists) {
		return lists, nil
	}

	lists, err := c.base.ListLists(ctx, boardID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, listsCacheKey(boardID), lists)
	return lists, nil
}

func (c *Cache) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	if c.loadFromCache(ctx, cardsCacheKey(boardID), &cards) {
		return cards, nil
	}

	cards, err := c.base.ListCards(ctx, boardID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, cardsCacheKey(boardID), cards)
	return cards, nil
}

func (c *Cache) loadFromCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			// On redis errors fall back to the board without failing.
			_ = c.redis.Del(ctx, key).Err()
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}

func listsCacheKey(boardID string) string {
	return "board:lists:" + boardID
}

func cardsCacheKey(boardID string) string {
	return "board:cards:" + boardID
}
