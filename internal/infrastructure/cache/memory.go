// Package cache provides snapshot stores that keep the last successful scrape
// per shop, so a failed acquisition can be replayed on the next run.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/kaitori/backend/internal/domain"
)

// snapshot holds one shop's last observation sequence with its expiration.
type snapshot struct {
	observations []domain.Observation
	expiration   time.Time
}

// MemoryStore is a thread-safe in-memory snapshot store with TTL support.
// Snapshots do not survive a process restart; use the sqlite or redis store
// when replay across restarts matters.
type MemoryStore struct {
	ttl   time.Duration
	data  map[string]snapshot
	mutex sync.RWMutex
}

// NewMemoryStore creates an in-memory store. A zero TTL means snapshots never
// expire.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:  ttl,
		data: make(map[string]snapshot),
	}
}

// Load returns the last saved observation sequence for the shop, or
// ErrCacheMiss when none exists or it has expired.
func (s *MemoryStore) Load(ctx context.Context, shopID string) ([]domain.Observation, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap, exists := s.data[shopID]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	if !snap.expiration.IsZero() && time.Now().After(snap.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Copy so callers cannot mutate the stored snapshot.
	out := make([]domain.Observation, len(snap.observations))
	copy(out, snap.observations)
	return out, nil
}

// Save replaces the shop's snapshot with the given observation sequence.
func (s *MemoryStore) Save(ctx context.Context, shopID string, observations []domain.Observation) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]domain.Observation, len(observations))
	copy(stored, observations)

	var expiration time.Time
	if s.ttl > 0 {
		expiration = time.Now().Add(s.ttl)
	}

	s.data[shopID] = snapshot{observations: stored, expiration: expiration}
	return nil
}

// Close implements domain.SnapshotStore. Nothing to release.
func (s *MemoryStore) Close() error {
	return nil
}

// Size returns the current number of stored snapshots (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
