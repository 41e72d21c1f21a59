package scheduler

import (
	"context"
	"time"

	"github.com/contesthub/contesthub/internal/aggregator"
	"github.com/contesthub/contesthub/internal/index"
	"github.com/contesthub/contesthub/internal/logger"
	redisstore "github.com/contesthub/contesthub/internal/store/redis"
)

// Fetcher produces one merged snapshot per refresh cycle
type Fetcher interface {
	Fetch(ctx context.Context) *aggregator.Snapshot
}

// Refresher drives the periodic refresh of the contest index. All cycles run
// sequentially in one goroutine, so a slow upstream never overlaps the next
// tick.
type Refresher struct {
	fetcher       Fetcher
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewRefresher creates a new refresher
func NewRefresher(
	fetcher Fetcher,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Refresher {
	return &Refresher{
		fetcher:       fetcher,
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs one refresh immediately, then keeps refreshing on the interval
// until Stop is called or the context ends.
func (r *Refresher) Start(ctx context.Context) {
	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Refresh(ctx)
			case <-r.manualTrigger:
				r.logger.Info("manual refresh triggered")
				r.Refresh(ctx)
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the refresher
func (r *Refresher) Stop() {
	close(r.stopCh)
}

// Refresh runs one cycle: fetch everything, swap the index snapshot, then
// persist to Redis best effort.
func (r *Refresher) Refresh(ctx context.Context) {
	start := time.Now()
	snap := r.fetcher.Fetch(ctx)

	r.index.Update(snap.Contests, snap.Videos)

	if r.store != nil && len(snap.Contests) > 0 {
		if err := r.store.SaveContestsMany(ctx, snap.Contests); err != nil {
			r.logger.Warn("failed to save contests to redis",
				logger.Error(err))
			// Memory index is the primary source, keep going.
		}
	}

	r.logger.Info("refresh cycle complete",
		logger.Int("contests", len(snap.Contests)),
		logger.Duration("elapsed", time.Since(start)))
}
