package scheduler

import (
	"context"

	"github.com/contesthub/contesthub/internal/index"
	"github.com/contesthub/contesthub/internal/logger"
	redisstore "github.com/contesthub/contesthub/internal/store/redis"
)

// RedisSyncer warms the memory index from the last persisted snapshot so the
// API can serve contests before the first refresh cycle finishes.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads contests from Redis and updates the memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing contests from redis to memory")

	contests, err := rs.store.GetAllContests(ctx)
	if err != nil {
		return err
	}

	if len(contests) == 0 {
		rs.logger.Info("no contests found in redis")
		return nil
	}

	rs.index.Update(contests, nil)

	rs.logger.Info("synced contests from redis",
		logger.Int("count", len(contests)))

	return nil
}
