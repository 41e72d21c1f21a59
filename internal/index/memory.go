package index

import (
	"sync"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
)

// MemoryIndex holds the latest refresh snapshot. Every read path serves from
// here; upstream APIs are only touched by the refresh cycle.
type MemoryIndex struct {
	mu          sync.RWMutex
	contests    []domain.Contest
	videos      map[domain.Platform][]domain.VideoEntry
	lastRefresh time.Time
}

// NewMemoryIndex creates an empty index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		videos: make(map[domain.Platform][]domain.VideoEntry),
	}
}

// Update replaces the whole snapshot atomically
func (idx *MemoryIndex) Update(contests []domain.Contest, videos map[domain.Platform][]domain.VideoEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.contests = contests
	if videos == nil {
		videos = make(map[domain.Platform][]domain.VideoEntry)
	}
	idx.videos = videos
	idx.lastRefresh = time.Now()
}

// Contests returns a copy of the current contest list
func (idx *MemoryIndex) Contests() []domain.Contest {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	contests := make([]domain.Contest, len(idx.contests))
	copy(contests, idx.contests)
	return contests
}

// ContestsByPlatform returns the current contests of one platform
func (idx *MemoryIndex) ContestsByPlatform(p domain.Platform) []domain.Contest {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var contests []domain.Contest
	for _, c := range idx.contests {
		if c.Platform == p {
			contests = append(contests, c)
		}
	}
	return contests
}

// Videos returns a copy of the playlist entries of one platform
func (idx *MemoryIndex) Videos(p domain.Platform) []domain.VideoEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	videos := make([]domain.VideoEntry, len(idx.videos[p]))
	copy(videos, idx.videos[p])
	return videos
}

// Count returns the number of contests in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.contests)
}

// LastRefresh returns the timestamp of the last snapshot swap
func (idx *MemoryIndex) LastRefresh() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastRefresh
}
