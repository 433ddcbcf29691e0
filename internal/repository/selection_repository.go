package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SelectionRepository stores per-session selected note ids as Redis
// sets with a sliding TTL.
type SelectionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSelectionRepository(client *redis.Client, ttl time.Duration) *SelectionRepository {
	return &SelectionRepository{client: client, ttl: ttl}
}

func (r *SelectionRepository) key(session string) string {
	return "selections:" + session
}

// Toggle adds the id if absent, removes it if present, and reports
// whether the id is selected afterwards.
func (r *SelectionRepository) Toggle(ctx context.Context, session, noteID string) (bool, error) {
	key := r.key(session)

	added, err := r.client.SAdd(ctx, key, noteID).Result()
	if err != nil {
		return false, fmt.Errorf("toggle selection: %w", err)
	}

	if added == 0 {
		if err := r.client.SRem(ctx, key, noteID).Err(); err != nil {
			return false, fmt.Errorf("toggle selection: %w", err)
		}
		r.touch(ctx, key)
		return false, nil
	}

	r.touch(ctx, key)
	return true, nil
}

func (r *SelectionRepository) Members(ctx context.Context, session string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.key(session)).Result()
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return ids, nil
}

func (r *SelectionRepository) Count(ctx context.Context, session string) (int64, error) {
	n, err := r.client.SCard(ctx, r.key(session)).Result()
	if err != nil {
		return 0, fmt.Errorf("count selections: %w", err)
	}
	return n, nil
}

func (r *SelectionRepository) Clear(ctx context.Context, session string) error {
	if err := r.client.Del(ctx, r.key(session)).Err(); err != nil {
		return fmt.Errorf("clear selections: %w", err)
	}
	return nil
}

func (r *SelectionRepository) touch(ctx context.Context, key string) {
	// TTL refresh failures only shorten the set's life; not worth
	// failing the toggle over.
	_ = r.client.Expire(ctx, key, r.ttl).Err()
}
