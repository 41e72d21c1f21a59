package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/contesthub/contesthub/internal/domain"
)

// DefaultContestTTL is the default TTL for contest entries (48 hours).
// Snapshots refresh every minute, so the TTL only matters when the
// service stays down for days.
const DefaultContestTTL = 48 * time.Hour

// Store handles Redis operations for contests, bookmarks and solutions
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveContest stores a contest in Redis
func (s *Store) SaveContest(ctx context.Context, contest domain.Contest) error {
	data, err := json.Marshal(contest)
	if err != nil {
		return fmt.Errorf("failed to marshal contest: %w", err)
	}

	key := ContestKey(contest.Key())

	if err := s.client.Set(ctx, key, data, DefaultContestTTL).Err(); err != nil {
		return fmt.Errorf("failed to save contest: %w", err)
	}

	if err := s.client.SAdd(ctx, AllContestsKey(), contest.Key()).Err(); err != nil {
		return fmt.Errorf("failed to add contest to set: %w", err)
	}

	return nil
}

// GetContest retrieves a contest from Redis by composite key
func (s *Store) GetContest(ctx context.Context, key string) (*domain.Contest, error) {
	data, err := s.client.Get(ctx, ContestKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("contest not found: %s", key)
		}
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}

	var contest domain.Contest
	if err := json.Unmarshal(data, &contest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contest: %w", err)
	}

	return &contest, nil
}

// GetAllContests retrieves every stored contest from Redis
func (s *Store) GetAllContests(ctx context.Context) ([]domain.Contest, error) {
	keys, err := s.client.SMembers(ctx, AllContestsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get contest keys: %w", err)
	}

	if len(keys) == 0 {
		return []domain.Contest{}, nil
	}

	contests := make([]domain.Contest, 0, len(keys))
	for _, key := range keys {
		contest, err := s.GetContest(ctx, key)
		if err != nil {
			// Expired entries linger in the set until the next bulk save.
			continue
		}
		contests = append(contests, *contest)
	}

	return contests, nil
}

// SaveContestsMany stores a whole refresh snapshot in Redis (bulk operation)
func (s *Store) SaveContestsMany(ctx context.Context, contests []domain.Contest) error {
	pipe := s.client.Pipeline()

	for _, contest := range contests {
		data, err := json.Marshal(contest)
		if err != nil {
			return fmt.Errorf("failed to marshal contest %s: %w", contest.Key(), err)
		}

		pipe.Set(ctx, ContestKey(contest.Key()), data, DefaultContestTTL)
		pipe.SAdd(ctx, AllContestsKey(), contest.Key())
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save contests: %w", err)
	}

	return nil
}
