// Package store provides the process-wide queue registry.
package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/cueline/cueline/internal/domain/queue"
)

// Errors
var (
	ErrQueueNotFound = errors.New("queue not found")
)

// Repository persists the full set of queues across process lifetimes.
// Implementations must round-trip queue names, track order, track metadata
// and current pointers exactly.
type Repository interface {
	Load(ctx context.Context) ([]*queue.Queue, error)
	Save(ctx context.Context, queues []*queue.Queue) error
}

// Store is the registry of all queues. It owns every queue instance;
// presentation layers hold queue IDs and re-fetch state through the store
// rather than keeping structural copies.
//
// All mutating queue operations are read-modify-write sequences, so the
// store serializes access with a single lock.
type Store struct {
	mu     sync.RWMutex
	queues []*queue.Queue
	repo   Repository
}

// New creates an empty store backed by the given repository.
func New(repo Repository) *Store {
	return &Store{
		queues: make([]*queue.Queue, 0),
		repo:   repo,
	}
}

// Load replaces the store contents with the persisted queues.
func (s *Store) Load(ctx context.Context) error {
	queues, err := s.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load queues")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues = queues

	zlog.Debug().Msgf("store: loaded %d queue(s)", len(queues))
	return nil
}

// Save persists the current store contents.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	queues := make([]*queue.Queue, len(s.queues))
	copy(queues, s.queues)
	s.mu.RUnlock()

	if err := s.repo.Save(ctx, queues); err != nil {
		return errors.Wrap(err, "failed to save queues")
	}
	return nil
}

// Add registers a queue. Names are not checked for uniqueness; a duplicate
// is tolerated and only logged, since selection resolves by first match.
func (s *Store) Add(q *queue.Queue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.queues {
		if existing.Name == q.Name {
			zlog.Warn().Msgf("store: duplicate queue name %q; selection by name is first-match", q.Name)
			break
		}
	}
	s.queues = append(s.queues, q)
}

// Remove unregisters the queue with the given ID. The queue object itself
// is not mutated; callers holding a reference still observe its prior state.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.queues {
		if q.ID == id {
			s.queues = append(s.queues[:i], s.queues[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrQueueNotFound, "id %s", id)
}

// Get returns the queue with the given ID.
func (s *Store) Get(id string) (*queue.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.queues {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, errors.Wrapf(ErrQueueNotFound, "id %s", id)
}

// FindByName returns the first queue with the given name, in registration
// order. Duplicate names resolve to the first match.
func (s *Store) FindByName(name string) (*queue.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.queues {
		if q.Name == name {
			return q, nil
		}
	}
	return nil, errors.Wrapf(ErrQueueNotFound, "name %q", name)
}

// All returns the queues in stable registration order.
func (s *Store) All() []*queue.Queue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*queue.Queue, len(s.queues))
	copy(result, s.queues)
	return result
}

// Len returns the number of registered queues.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queues)
}
