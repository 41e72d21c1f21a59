package index

import (
	"sync"
	"testing"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	index := NewMemoryIndex()
	if index == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	if got := index.Contests(); len(got) != 0 {
		t.Errorf("NewMemoryIndex() should start with empty contests, got %v", len(got))
	}
	if !index.LastRefresh().IsZero() {
		t.Errorf("LastRefresh() = %v, want zero before first update", index.LastRefresh())
	}
}

func TestUpdateOverwrites(t *testing.T) {
	index := NewMemoryIndex()
	start := time.Date(2025, 3, 20, 14, 30, 0, 0, time.UTC)

	index.Update([]domain.Contest{
		{Name: "Starters 123", Platform: domain.PlatformCodeChef, StartTime: start},
	}, nil)

	index.Update([]domain.Contest{
		{Name: "Weekly Contest 390", Platform: domain.PlatformLeetCode, StartTime: start},
		{Name: "Codeforces Round 920", Platform: domain.PlatformCodeforces, StartTime: start},
	}, map[domain.Platform][]domain.VideoEntry{
		domain.PlatformLeetCode: {{Title: "Weekly Contest 390 Screencast", VideoID: "lc1"}},
	})

	if got := index.Contests(); len(got) != 2 {
		t.Errorf("Update() should overwrite, got %v contests want 2", len(got))
	}
	if got := index.Videos(domain.PlatformLeetCode); len(got) != 1 {
		t.Errorf("Videos(LeetCode) = %v entries, want 1", len(got))
	}
	if got := index.Videos(domain.PlatformCodeChef); len(got) != 0 {
		t.Errorf("Videos(CodeChef) = %v entries, want 0", len(got))
	}
	if index.LastRefresh().IsZero() {
		t.Error("LastRefresh() still zero after Update()")
	}
}

func TestContestsByPlatform(t *testing.T) {
	index := NewMemoryIndex()
	start := time.Date(2025, 3, 20, 14, 30, 0, 0, time.UTC)

	index.Update([]domain.Contest{
		{Name: "Codeforces Round 920", Platform: domain.PlatformCodeforces, StartTime: start},
		{Name: "Starters 123", Platform: domain.PlatformCodeChef, StartTime: start},
		{Name: "Codeforces Round 921", Platform: domain.PlatformCodeforces, StartTime: start},
	}, nil)

	cf := index.ContestsByPlatform(domain.PlatformCodeforces)
	if len(cf) != 2 {
		t.Fatalf("ContestsByPlatform(Codeforces) = %v contests, want 2", len(cf))
	}
	if cf[1].Name != "Codeforces Round 921" {
		t.Errorf("order not preserved: got %q second", cf[1].Name)
	}
	if got := index.ContestsByPlatform(domain.PlatformLeetCode); len(got) != 0 {
		t.Errorf("ContestsByPlatform(LeetCode) = %v contests, want 0", len(got))
	}
}

func TestContestsReturnsCopy(t *testing.T) {
	index := NewMemoryIndex()
	index.Update([]domain.Contest{
		{Name: "Starters 123", Platform: domain.PlatformCodeChef},
	}, nil)

	snapshot := index.Contests()
	snapshot[0].Name = "mutated"

	if got := index.Contests(); got[0].Name != "Starters 123" {
		t.Errorf("Contests() snapshot mutation leaked into index: %q", got[0].Name)
	}
}

func TestConcurrentAccess(t *testing.T) {
	index := NewMemoryIndex()

	contests := []domain.Contest{
		{Name: "Codeforces Round 920", Platform: domain.PlatformCodeforces},
		{Name: "Weekly Contest 390", Platform: domain.PlatformLeetCode},
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = index.Contests()
			_ = index.Count()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			index.Update(contests, nil)
		}()
	}
	wg.Wait()

	if got := index.Count(); got != 2 {
		t.Errorf("Count() = %v after concurrent updates, want 2", got)
	}
}
