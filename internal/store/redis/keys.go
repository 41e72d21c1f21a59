package redis

import "fmt"

const (
	// KeyPrefixContest is the prefix for contest snapshot keys
	KeyPrefixContest = "contesthub:contest:"
	// KeyAllContests is the key for the set of all contest keys
	KeyAllContests = "contesthub:contests:all"
	// KeyBookmarks is the set of bookmarked contest keys
	KeyBookmarks = "contesthub:bookmarks"
	// KeySolutions is the hash of contest key -> manual solution URL
	KeySolutions = "contesthub:solutions"
)

// ContestKey returns the Redis key for a contest by its composite key
func ContestKey(key string) string {
	return KeyPrefixContest + key
}

// AllContestsKey returns the key for the set of all contest keys
func AllContestsKey() string {
	return KeyAllContests
}

// BookmarksKey returns the key for the bookmark set
func BookmarksKey() string {
	return KeyBookmarks
}

// SolutionsKey returns the key for the solutions hash
func SolutionsKey() string {
	return KeySolutions
}

// ExtractContestKey extracts the composite contest key from a Redis key
func ExtractContestKey(key string) (string, error) {
	if len(key) <= len(KeyPrefixContest) {
		return "", fmt.Errorf("invalid contest key: %s", key)
	}
	return key[len(KeyPrefixContest):], nil
}
