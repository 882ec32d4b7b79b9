package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

const riderKeyPrefix = "rider:location:"

// Cache keeps riders' latest fixes in Redis under a TTL so stale riders
// disappear from tracking instead of freezing in place.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs the rider location cache.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func riderKey(riderID int64) string {
	return fmt.Sprintf("%s%d", riderKeyPrefix, riderID)
}

// Update stores the rider's latest fix, refreshing its expiry.
func (c *Cache) Update(ctx context.Context, riderID int64, pos model.Position) error {
	if pos.UpdatedAt.IsZero() {
		pos.UpdatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, riderKey(riderID), payload, c.ttl).Err()
}

// Get returns the rider's last known fix, or ErrNotFound once it expired.
func (c *Cache) Get(ctx context.Context, riderID int64) (*model.Position, error) {
	payload, err := c.client.Get(ctx, riderKey(riderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var pos model.Position
	if err := json.Unmarshal(payload, &pos); err != nil {
		return nil, err
	}
	return &pos, nil
}
