package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/joinboard/backend/domain"
)

// ActorCache keeps token → actor snapshots so the auth middleware does not hit
// Postgres on every request. Entries expire on their own; tokens themselves
// never do, so a cache miss is always answerable from the token table.
type ActorCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewActorCache creates a Redis-backed actor snapshot cache.
func NewActorCache(client *redislib.Client, ttl time.Duration) *ActorCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ActorCache{
		client: client,
		prefix: "actor:",
		ttl:    ttl,
	}
}

// Get returns the cached actor for a token key, or domain.ErrTokenNotFound on
// a miss.
func (c *ActorCache) Get(ctx context.Context, tokenKey string) (domain.Actor, error) {
	result, err := c.client.Get(ctx, c.key(tokenKey)).Result()
	if err != nil {
		if err == redislib.Nil {
			return domain.Anonymous(), domain.ErrTokenNotFound
		}
		return domain.Anonymous(), err
	}

	var actor domain.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return domain.Anonymous(), err
	}
	return actor, nil
}

// Set stores the actor snapshot under the token key.
func (c *ActorCache) Set(ctx context.Context, tokenKey string, actor domain.Actor) error {
	if tokenKey == "" || !actor.Authenticated {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(actor)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(tokenKey), payload, c.ttl).Err()
}

// Invalidate drops a cached snapshot, e.g. after a privilege change.
func (c *ActorCache) Invalidate(ctx context.Context, tokenKey string) error {
	return c.client.Del(ctx, c.key(tokenKey)).Err()
}

func (c *ActorCache) key(tokenKey string) string {
	return fmt.Sprintf("%s%s", c.prefix, tokenKey)
}
