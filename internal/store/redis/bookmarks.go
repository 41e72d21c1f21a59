package redis

import (
	"context"
	"fmt"
)

// ToggleBookmark flips the bookmark state of a contest key and returns the
// new state (true when the key is now bookmarked).
func (s *Store) ToggleBookmark(ctx context.Context, key string) (bool, error) {
	member, err := s.client.SIsMember(ctx, BookmarksKey(), key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	if member {
		if err := s.client.SRem(ctx, BookmarksKey(), key).Err(); err != nil {
			return false, fmt.Errorf("failed to remove bookmark: %w", err)
		}
		return false, nil
	}

	if err := s.client.SAdd(ctx, BookmarksKey(), key).Err(); err != nil {
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}
	return true, nil
}

// GetBookmarks returns the set of bookmarked contest keys
func (s *Store) GetBookmarks(ctx context.Context) (map[string]bool, error) {
	keys, err := s.client.SMembers(ctx, BookmarksKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	bookmarks := make(map[string]bool, len(keys))
	for _, key := range keys {
		bookmarks[key] = true
	}
	return bookmarks, nil
}

// IsBookmarked reports whether a contest key is bookmarked
func (s *Store) IsBookmarked(ctx context.Context, key string) (bool, error) {
	member, err := s.client.SIsMember(ctx, BookmarksKey(), key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return member, nil
}
