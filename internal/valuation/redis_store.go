package valuation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "valuation:table"

// RedisStore keeps the latest valuation table in Redis so restarts inside the
// freshness window skip the pricing API entirely.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

type snapshot struct {
	FetchedAt time.Time `json:"fetched_at"`
	Entries   []Entry   `json:"entries"`
}

func (s *RedisStore) Save(ctx context.Context, entries []Entry, fetchedAt time.Time) error {
	data, err := json.Marshal(snapshot{FetchedAt: fetchedAt, Entries: entries})
	if err != nil {
		return fmt.Errorf("marshal valuation snapshot: %w", err)
	}
	return s.client.Set(ctx, snapshotKey, data, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context) ([]Entry, time.Time, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode valuation snapshot: %w", err)
	}
	return snap.Entries, snap.FetchedAt, nil
}
