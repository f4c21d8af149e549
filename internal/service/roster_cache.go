package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"provider-directory/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RosterCacheKey holds the serialized roster report
	RosterCacheKey = "roster:current"

	// Timeout for individual Redis operations
	cacheOpTimeout = 2 * time.Second
)

// RosterCache is a read-through cache for the roster report. Any failure
// talking to Redis is treated as a miss; the database remains the source
// of truth.
type RosterCache interface {
	Get(ctx context.Context) ([]entity.RosterEntry, bool)
	Set(ctx context.Context, entries []entity.RosterEntry)
	Invalidate(ctx context.Context)
}

type rosterCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRosterCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) RosterCache {
	return &rosterCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *rosterCache) Get(ctx context.Context) ([]entity.RosterEntry, bool) {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	payload, err := c.redisClient.Get(opCtx, RosterCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read roster cache: %+v", err)
		}
		return nil, false
	}

	var entries []entity.RosterEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		c.log.Warnf("Failed to decode roster cache, dropping it: %+v", err)
		c.Invalidate(ctx)
		return nil, false
	}

	return entries, true
}

func (c *rosterCache) Set(ctx context.Context, entries []entity.RosterEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		c.log.Warnf("Failed to encode roster cache: %+v", err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.redisClient.Set(opCtx, RosterCacheKey, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write roster cache: %+v", err)
	}
}

func (c *rosterCache) Invalidate(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.redisClient.Del(opCtx, RosterCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate roster cache: %+v", err)
	}
}
