package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Store is a namespaced JSON key-value store on top of Redis. Every key is
// written as "<namespace>:<key>" so unrelated data in the same Redis database
// is never touched.
//
// The store assumes a single writer. Reads and writes are whole-value
// operations with no locking or versioning; concurrent writers get
// last-write-wins semantics.
type Store struct {
	client    *redis.Client
	namespace string
}

// NewStore creates a store scoped to the given namespace.
func NewStore(client *redis.Client, namespace string) *Store {
	return &Store{
		client:    client,
		namespace: namespace,
	}
}

func (s *Store) fullKey(key string) string {
	return s.namespace + ":" + key
}

// Get reads and JSON-decodes the value under key into dest. It returns false
// when the key is absent or the read/decode fails; callers see both cases as
// "no data". Failures are logged, never propagated.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	data, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		slog.Error("storage: read failed", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Error("storage: decode failed", "key", key, "error", err)
		return false
	}
	return true
}

// Set JSON-encodes value and writes it under key. Encoding or write failures
// are logged and swallowed.
func (s *Store) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("storage: encode failed", "key", key, "error", err)
		return
	}

	if err := s.client.Set(ctx, s.fullKey(key), data, 0).Err(); err != nil {
		slog.Error("storage: write failed", "key", key, "error", err)
	}
}

// Remove deletes the value under key.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.fullKey(key)).Err(); err != nil {
		slog.Error("storage: remove failed", "key", key, "error", err)
	}
}

// Clear deletes every key in the store's namespace. Keys outside the
// namespace are left untouched.
func (s *Store) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, s.namespace+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Error("storage: clear failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Error("storage: clear scan failed", "namespace", s.namespace, "error", err)
	}
}
