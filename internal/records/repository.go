package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
	"github.com/google/uuid"
)

// Meta carries the record identity. Entity types embed it so the repository
// can read and assign ids generically.
type Meta struct {
	ID string `json:"id"`
}

// RecordID returns the assigned id.
func (m *Meta) RecordID() string {
	return m.ID
}

// SetRecordID assigns the id.
func (m *Meta) SetRecordID(id string) {
	m.ID = id
}

// Record is the surface every stored entity exposes.
type Record interface {
	RecordID() string
	SetRecordID(string)
}

// NewID builds a creation-time id: milliseconds since epoch plus a short
// random suffix that closes the same-millisecond collision window.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:4])
}

// Repository is a prefix-scoped collection over the key-value store. Every
// mutating call is one synchronous store round-trip; there is no cache, no
// batching, and no retry.
type Repository[T any, PT interface {
	Record
	*T
}] struct {
	prefix string
	store  *kv.Store
	logg   *logger.Logger
}

// New builds a repository for one entity type under a fixed key prefix.
func New[T any, PT interface {
	Record
	*T
}](prefix string, store *kv.Store, logg *logger.Logger) *Repository[T, PT] {
	return &Repository[T, PT]{prefix: prefix, store: store, logg: logg}
}

// Prefix returns the key prefix this repository scans.
func (r *Repository[T, PT]) Prefix() string {
	return r.prefix
}

// Create assigns a fresh id, persists the entity, and returns it. A store
// write failure surfaces once as a dependency error; nothing is retried.
func (r *Repository[T, PT]) Create(ctx context.Context, entity PT) (PT, error) {
	entity.SetRecordID(r.prefix + NewID())
	return r.persist(ctx, entity)
}

// Get fetches one entity by id. Any read failure reads as absent.
func (r *Repository[T, PT]) Get(ctx context.Context, id string) (PT, bool) {
	raw, ok := r.store.Get(ctx, id)
	if !ok {
		return nil, false
	}
	return r.decode(ctx, id, raw)
}

// List fetches every entity under the prefix: one key scan, then a
// concurrent fan-out read per key, awaited in full before anything is
// returned. Misses and undecodable values are dropped. Order is whatever
// the store produced.
func (r *Repository[T, PT]) List(ctx context.Context) []PT {
	keys := r.store.List(ctx, r.prefix)
	if len(keys) == 0 {
		return nil
	}

	fetched := make([]PT, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			if entity, ok := r.Get(ctx, key); ok {
				fetched[i] = entity
			}
		}(i, key)
	}
	wg.Wait()

	entities := make([]PT, 0, len(fetched))
	for _, entity := range fetched {
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities
}

// Update overwrites the stored record with the supplied entity. The caller
// supplies the complete record; nothing is merged from the prior value.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, entity PT) (PT, error) {
	entity.SetRecordID(id)
	return r.persist(ctx, entity)
}

// Remove deletes by id. Removing an absent id succeeds.
func (r *Repository[T, PT]) Remove(ctx context.Context, id string) bool {
	return r.store.Delete(ctx, id)
}

// Count returns the number of keys under the prefix without fetching values.
func (r *Repository[T, PT]) Count(ctx context.Context) int {
	return len(r.store.List(ctx, r.prefix))
}

func (r *Repository[T, PT]) persist(ctx context.Context, entity PT) (PT, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "encode record")
	}
	if !r.store.Set(ctx, entity.RecordID(), raw) {
		return nil, errors.New(errors.CodeDependency, "store write failed")
	}
	return entity, nil
}

func (r *Repository[T, PT]) decode(ctx context.Context, id string, raw []byte) (PT, bool) {
	var value T
	entity := PT(&value)
	if err := json.Unmarshal(raw, entity); err != nil {
		if r.logg != nil {
			r.logg.Warn(r.logg.WithRecordID(ctx, id), "dropping undecodable record")
		}
		return nil, false
	}
	return entity, true
}
