package redis

import (
	"context"
	"fmt"
)

// SaveSolution stores a manually attached solution URL for a contest key.
// Saving again overwrites the previous URL.
func (s *Store) SaveSolution(ctx context.Context, key, url string) error {
	if err := s.client.HSet(ctx, SolutionsKey(), key, url).Err(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}
	return nil
}

// GetSolutions returns all manual solution annotations as key -> URL
func (s *Store) GetSolutions(ctx context.Context) (map[string]string, error) {
	solutions, err := s.client.HGetAll(ctx, SolutionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	return solutions, nil
}
