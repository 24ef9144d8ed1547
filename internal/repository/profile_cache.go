package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/dealer-credit-simulator/internal/metrics"
	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

const (
	profileKeyPrefix = "credit:profile:"
	profileListKey   = "credit:profiles"
)

type ProfileReader interface {
	FindProfile(ctx context.Context, id string) (*model.FinancingProfile, error)
	ListProfiles(ctx context.Context) ([]model.FinancingProfile, error)
}

// ProfileCache is a read-through Redis cache in front of a ProfileReader.
// Profiles are immutable reference data, so entries only expire by TTL.
// Redis failures are logged and fall through to the underlying reader.
type ProfileCache struct {
	next ProfileReader
	rdb  *redis.Client
	ttl  time.Duration
}

func NewProfileCache(next ProfileReader, rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *ProfileCache) FindProfile(ctx context.Context, id string) (*model.FinancingProfile, error) {
	var p model.FinancingProfile
	if c.get(ctx, profileKeyPrefix+id, &p) {
		return &p, nil
	}

	found, err := c.next.FindProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, profileKeyPrefix+id, found)
	return found, nil
}

func (c *ProfileCache) ListProfiles(ctx context.Context) ([]model.FinancingProfile, error) {
	var profiles []model.FinancingProfile
	if c.get(ctx, profileListKey, &profiles) {
		return profiles, nil
	}

	profiles, err := c.next.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, profileListKey, profiles)
	return profiles, nil
}

func (c *ProfileCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *ProfileCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("profile cache read failed")
		}
		metrics.ProfileCacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding corrupt profile cache entry")
		metrics.ProfileCacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	metrics.ProfileCacheLookups.WithLabelValues("hit").Inc()
	return true
}

func (c *ProfileCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(fmt.Errorf("marshal %s: %w", key, err)).Msg("profile cache write skipped")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("profile cache write failed")
	}
}
