// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dev-mohitbeniwal/mobility/db"
	"github.com/dev-mohitbeniwal/mobility/model"
)

// CacheService fronts Redis for user records. A nil client turns every call
// into a miss.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func (c *CacheService) SetUser(ctx context.Context, user model.User) error {
	if c.client == nil {
		return nil
	}
	return db.CacheUser(ctx, c.client, &user, c.ttl)
}

func (c *CacheService) DeleteUser(ctx context.Context, firebaseUID string) error {
	if c.client == nil {
		return nil
	}
	return db.DeleteCachedUser(ctx, c.client, firebaseUID)
}

func (c *CacheService) GetUser(ctx context.Context, firebaseUID string) (*model.User, error) {
	if c.client == nil {
		return nil, nil
	}
	return db.GetCachedUser(ctx, c.client, firebaseUID)
}
