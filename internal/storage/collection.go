package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is any entity persisted inside a collection.
type Record interface {
	RecordID() string
}

// Collection persists the full list of records of one entity type under a
// single store key. Every mutation reads the whole list, changes it in
// memory and rewrites it. That is acceptable at the expected scale (dozens
// to low hundreds of records) with a single writer.
type Collection[T Record] struct {
	store    *Store
	key      string
	idPrefix string
}

// NewCollection binds an entity type to its collection key and id prefix.
func NewCollection[T Record](store *Store, key, idPrefix string) *Collection[T] {
	return &Collection[T]{
		store:    store,
		key:      key,
		idPrefix: idPrefix,
	}
}

// NewID generates a collection-scoped identifier in the form
// "prefix_<unixmilli>_<random>". Collisions are treated as negligible.
func (c *Collection[T]) NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", c.idPrefix, time.Now().UnixMilli(), suffix)
}

// All returns the full collection, or an empty slice when nothing is stored.
func (c *Collection[T]) All(ctx context.Context) []T {
	var records []T
	if !c.store.Get(ctx, c.key, &records) {
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Get scans the collection for the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, rec := range c.All(ctx) {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching the predicate.
func (c *Collection[T]) Filter(ctx context.Context, match func(T) bool) []T {
	out := []T{}
	for _, rec := range c.All(ctx) {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Append adds a record to the collection and persists it.
func (c *Collection[T]) Append(ctx context.Context, rec T) {
	records := append(c.All(ctx), rec)
	c.store.Set(ctx, c.key, records)
}

// Update locates the record with the given id, applies the mutation and
// rewrites the collection. When the id does not exist nothing is written and
// the zero value is returned with false.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T)) (T, bool) {
	records := c.All(ctx)
	for i := range records {
		if records[i].RecordID() == id {
			apply(&records[i])
			c.store.Set(ctx, c.key, records)
			return records[i], true
		}
	}
	var zero T
	return zero, false
}

// Remove filters the record with the given id out of the collection and
// persists the result. It reports whether anything matched; removing an
// unknown id is a tolerated no-op.
func (c *Collection[T]) Remove(ctx context.Context, id string) bool {
	records := c.All(ctx)
	kept := make([]T, 0, len(records))
	removed := false
	for _, rec := range records {
		if rec.RecordID() == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	c.store.Set(ctx, c.key, kept)
	return removed
}
