package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/contesthub/contesthub/internal/aggregator"
	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/index"
	"github.com/contesthub/contesthub/internal/logger"
	redisstore "github.com/contesthub/contesthub/internal/store/redis"
)

var testLog = logger.New("error", false)

type fakeFetcher struct {
	calls    atomic.Int64
	contests []domain.Contest
}

func (f *fakeFetcher) Fetch(ctx context.Context) *aggregator.Snapshot {
	f.calls.Add(1)
	return &aggregator.Snapshot{
		Contests:  f.contests,
		Videos:    map[domain.Platform][]domain.VideoEntry{},
		FetchedAt: time.Now(),
	}
}

func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewStore(client)
}

func TestRefreshUpdatesIndexAndStore(t *testing.T) {
	store := newTestStore(t)
	idx := index.NewMemoryIndex()
	fetcher := &fakeFetcher{contests: []domain.Contest{
		{Name: "Starters 123", Platform: domain.PlatformCodeChef, StartTime: time.Date(2025, 3, 13, 14, 30, 0, 0, time.UTC)},
	}}

	r := NewRefresher(fetcher, store, idx, testLog, time.Minute, make(chan struct{}))
	r.Refresh(context.Background())

	if got := idx.Count(); got != 1 {
		t.Errorf("index Count() = %d after refresh, want 1", got)
	}

	persisted, err := store.GetAllContests(context.Background())
	if err != nil {
		t.Fatalf("GetAllContests() error = %v", err)
	}
	if len(persisted) != 1 {
		t.Errorf("store has %d contests after refresh, want 1", len(persisted))
	}
}

func TestRefreshWithoutStore(t *testing.T) {
	idx := index.NewMemoryIndex()
	fetcher := &fakeFetcher{contests: []domain.Contest{
		{Name: "Weekly Contest 390", Platform: domain.PlatformLeetCode},
	}}

	// Redis is optional; a nil store must not panic.
	r := NewRefresher(fetcher, nil, idx, testLog, time.Minute, make(chan struct{}))
	r.Refresh(context.Background())

	if got := idx.Count(); got != 1 {
		t.Errorf("index Count() = %d, want 1", got)
	}
}

func TestStartRunsInitialRefresh(t *testing.T) {
	idx := index.NewMemoryIndex()
	fetcher := &fakeFetcher{}

	r := NewRefresher(fetcher, nil, idx, testLog, time.Hour, make(chan struct{}))
	r.Start(context.Background())
	defer r.Stop()

	// Start refreshes synchronously before spawning the ticker loop.
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("fetcher called %d times after Start(), want 1", got)
	}
}

func TestManualTrigger(t *testing.T) {
	idx := index.NewMemoryIndex()
	fetcher := &fakeFetcher{}
	trigger := make(chan struct{})

	r := NewRefresher(fetcher, nil, idx, testLog, time.Hour, trigger)
	r.Start(context.Background())
	defer r.Stop()

	trigger <- struct{}{}

	deadline := time.After(2 * time.Second)
	for fetcher.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("fetcher called %d times, want 2 after manual trigger", fetcher.calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestTickerRefresh(t *testing.T) {
	idx := index.NewMemoryIndex()
	fetcher := &fakeFetcher{}

	r := NewRefresher(fetcher, nil, idx, testLog, 20*time.Millisecond, make(chan struct{}))
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for fetcher.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("fetcher called %d times, want at least 3 from ticker", fetcher.calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRedisSyncerWarmStart(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	contests := []domain.Contest{
		{Name: "Codeforces Round 920", Platform: domain.PlatformCodeforces, StartTime: time.Date(2025, 3, 20, 14, 35, 0, 0, time.UTC)},
		{Name: "Starters 123", Platform: domain.PlatformCodeChef, StartTime: time.Date(2025, 3, 13, 14, 30, 0, 0, time.UTC)},
	}
	if err := store.SaveContestsMany(ctx, contests); err != nil {
		t.Fatalf("SaveContestsMany() error = %v", err)
	}

	idx := index.NewMemoryIndex()
	if err := NewRedisSyncer(store, idx, testLog).Sync(ctx); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if got := idx.Count(); got != 2 {
		t.Errorf("index Count() = %d after warm start, want 2", got)
	}
}

func TestRedisSyncerEmptyRedis(t *testing.T) {
	store := newTestStore(t)
	idx := index.NewMemoryIndex()

	if err := NewRedisSyncer(store, idx, testLog).Sync(context.Background()); err != nil {
		t.Fatalf("Sync() on empty redis error = %v", err)
	}
	if got := idx.Count(); got != 0 {
		t.Errorf("index Count() = %d, want 0", got)
	}
}
