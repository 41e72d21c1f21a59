package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/logger"
	redisstore "github.com/contesthub/contesthub/internal/store/redis"
)

// View renders the filtered, classified contest view. The platforms query
// param is a comma-separated list; absent means all platforms, present but
// empty means none selected and yields the empty-state payload.
func View(d deps.Deps) http.HandlerFunc {
	store := storeOrNil(d)

	return func(w http.ResponseWriter, r *http.Request) {
		platforms := domain.Platforms
		if raw, ok := r.URL.Query()["platforms"]; ok {
			platforms = parsePlatforms(raw)
		}

		bookmarks, solutions := loadUserState(r.Context(), store, d)

		view := domain.BuildView(d.Now(), d.MemoryIndex.Contests(), platforms, bookmarks, solutions)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// Bookmarks renders the same view restricted to bookmarked contests.
func Bookmarks(d deps.Deps) http.HandlerFunc {
	store := storeOrNil(d)

	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, solutions := loadUserState(r.Context(), store, d)

		view := domain.BuildBookmarkedView(d.Now(), d.MemoryIndex.Contests(), bookmarks, solutions)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

func storeOrNil(d deps.Deps) *redisstore.Store {
	if d.RedisClient == nil {
		return nil
	}
	return redisstore.NewStore(d.RedisClient)
}

// loadUserState reads bookmarks and solution annotations fresh on every
// render. Redis trouble degrades to empty state instead of failing the view.
func loadUserState(ctx context.Context, store *redisstore.Store, d deps.Deps) (map[string]bool, map[string]string) {
	bookmarks := map[string]bool{}
	solutions := map[string]string{}
	if store == nil {
		return bookmarks, solutions
	}

	if b, err := store.GetBookmarks(ctx); err != nil {
		d.Logger.Warn("failed to load bookmarks", logger.Error(err))
	} else {
		bookmarks = b
	}

	if s, err := store.GetSolutions(ctx); err != nil {
		d.Logger.Warn("failed to load solutions", logger.Error(err))
	} else {
		solutions = s
	}

	return bookmarks, solutions
}

func parsePlatforms(raw []string) []domain.Platform {
	var platforms []domain.Platform
	for _, part := range raw {
		for _, name := range strings.Split(part, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if p, ok := domain.ParsePlatform(name); ok {
				platforms = append(platforms, p)
			}
		}
	}
	return platforms
}
