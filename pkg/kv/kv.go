package kv

import (
	"context"
	"errors"
	"time"

	"github.com/autogestion/dealership-backend/pkg/logger"
	"github.com/autogestion/dealership-backend/pkg/metrics"
)

// ErrNotFound marks a read miss inside a backend. The soft Store surface
// translates it into a bare "absent" without logging a failure.
var ErrNotFound = errors.New("kv: key not found")

// Backend is the raw driver surface. Implementations return hard errors;
// the Store wrapper owns the degrade-to-soft-failure policy.
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Store is the key-value surface the rest of the system sees. Reads fail
// soft to "absent", writes report a bare success flag, listings degrade to
// empty. Failures are logged and counted exactly once here; callers never
// see an error and never retry.
type Store struct {
	backend Backend
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// NewStore wraps a backend with the soft-failure contract.
func NewStore(backend Backend, logg *logger.Logger, m *metrics.StoreMetrics) *Store {
	return &Store{backend: backend, logg: logg, metrics: m}
}

// Backend returns the name of the selected backend.
func (s *Store) Backend() string {
	if s == nil || s.backend == nil {
		return ""
	}
	return s.backend.Name()
}

// Get returns the value stored at key, or (nil, false) on a miss or any
// backend error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	start := time.Now()
	value, err := s.backend.Get(ctx, key)
	s.observe(ctx, "get", key, start, err, errors.Is(err, ErrNotFound))
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores value at key and reports whether the write succeeded.
func (s *Store) Set(ctx context.Context, key string, value []byte) bool {
	start := time.Now()
	err := s.backend.Set(ctx, key, value)
	s.observe(ctx, "set", key, start, err, false)
	return err == nil
}

// List returns every key starting with prefix, or an empty slice on error.
// Order is whatever the backend produces.
func (s *Store) List(ctx context.Context, prefix string) []string {
	start := time.Now()
	keys, err := s.backend.List(ctx, prefix)
	s.observe(ctx, "list", prefix, start, err, false)
	if err != nil {
		return nil
	}
	return keys
}

// Delete removes key and reports success. Deleting an absent key succeeds.
func (s *Store) Delete(ctx context.Context, key string) bool {
	start := time.Now()
	err := s.backend.Delete(ctx, key)
	s.observe(ctx, "delete", key, start, err, false)
	return err == nil
}

// Ping verifies the backend is reachable. Used by readiness checks only.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) observe(ctx context.Context, op, key string, start time.Time, err error, miss bool) {
	backend := s.Backend()
	s.metrics.IncOp(backend, op)
	s.metrics.ObserveDuration(backend, op, time.Since(start))
	if err == nil || miss {
		return
	}
	s.metrics.IncFailure(backend, op)
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"backend": backend,
			"op":      op,
			"key":     key,
		})
		s.logg.Error(ctx, "store operation failed", err)
	}
}
