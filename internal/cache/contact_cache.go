package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/contact-service/internal/domain"
)

const contactKeyPrefix = "contact:"

// ContactCache stores single contacts by id.
type ContactCache interface {
	Get(ctx context.Context, id string) (*domain.Contact, bool, error)
	Set(ctx context.Context, contact *domain.Contact) error
	Invalidate(ctx context.Context, id string) error
}

type redisContactCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisContactCache returns a cache backed by client. A nil client yields a no-op cache.
func NewRedisContactCache(client redis.Cmdable, ttl time.Duration) ContactCache {
	if client == nil || ttl <= 0 {
		return NopContactCache{}
	}
	return &redisContactCache{client: client, ttl: ttl}
}

func contactKey(id string) string {
	return contactKeyPrefix + id
}

func (c *redisContactCache) Get(ctx context.Context, id string) (*domain.Contact, bool, error) {
	raw, err := c.client.Get(ctx, contactKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var contact domain.Contact
	if err := json.Unmarshal(raw, &contact); err != nil {
		return nil, false, err
	}
	return &contact, true, nil
}

func (c *redisContactCache) Set(ctx context.Context, contact *domain.Contact) error {
	raw, err := json.Marshal(contact)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, contactKey(contact.ID), raw, c.ttl).Err()
}

func (c *redisContactCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, contactKey(id)).Err()
}

// NopContactCache never stores anything.
type NopContactCache struct{}

func (NopContactCache) Get(context.Context, string) (*domain.Contact, bool, error) {
	return nil, false, nil
}

func (NopContactCache) Set(context.Context, *domain.Contact) error { return nil }

func (NopContactCache) Invalidate(context.Context, string) error { return nil }
