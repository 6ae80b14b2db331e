package store

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cueline/cueline/internal/domain/queue"
)

// Mock repository for testing
type mockRepository struct {
	queues  []*queue.Queue
	loadErr error
	saveErr error
	saves   int
}

func (m *mockRepository) Load(_ context.Context) ([]*queue.Queue, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.queues, nil
}

func (m *mockRepository) Save(_ context.Context, queues []*queue.Queue) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.queues = queues
	m.saves++
	return nil
}

func TestStore_AddAndGet(t *testing.T) {
	s := New(&mockRepository{})

	q1 := queue.New("Rock")
	q2 := queue.New("Jazz")
	s.Add(q1)
	s.Add(q2)

	require.Equal(t, 2, s.Len())

	got, err := s.Get(q2.ID)
	require.NoError(t, err)
	assert.Same(t, q2, got)

	_, err = s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestStore_FindByName(t *testing.T) {
	s := New(&mockRepository{})

	first := queue.New("Rock")
	second := queue.New("Rock")
	s.Add(first)
	s.Add(second)

	// Duplicate names are tolerated; lookup resolves to the first match.
	got, err := s.FindByName("Rock")
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = s.FindByName("Jazz")
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestStore_Remove(t *testing.T) {
	s := New(&mockRepository{})

	q := queue.New("Rock")
	s.Add(q)
	s.Add(queue.New("Jazz"))

	require.NoError(t, s.Remove(q.ID))
	assert.Equal(t, 1, s.Len())

	// The removed queue object itself is not mutated.
	assert.Equal(t, "Rock", q.Name)

	err := s.Remove(q.ID)
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestStore_All(t *testing.T) {
	s := New(&mockRepository{})

	q1 := queue.New("Rock")
	q2 := queue.New("Jazz")
	q3 := queue.New("Blues")
	s.Add(q1)
	s.Add(q2)
	s.Add(q3)

	all := s.All()
	assert.Equal(t, []*queue.Queue{q1, q2, q3}, all, "All must preserve registration order")

	// The returned slice is a copy; mutating it must not affect the store.
	all[0] = nil
	got, err := s.Get(q1.ID)
	require.NoError(t, err)
	assert.Same(t, q1, got)
}

func TestStore_LoadSave(t *testing.T) {
	repo := &mockRepository{
		queues: []*queue.Queue{queue.New("Rock"), queue.New("Jazz")},
	}
	s := New(repo)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 2, s.Len())

	s.Add(queue.New("Blues"))
	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, 1, repo.saves)
	assert.Len(t, repo.queues, 3)
}

func TestStore_LoadError(t *testing.T) {
	boom := errors.New("disk on fire")
	s := New(&mockRepository{loadErr: boom})
	s.Add(queue.New("Rock"))

	err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// A failed load must not clobber the in-memory state.
	assert.Equal(t, 1, s.Len())
}

func TestStore_SaveError(t *testing.T) {
	boom := errors.New("disk full")
	s := New(&mockRepository{saveErr: boom})
	s.Add(queue.New("Rock"))

	err := s.Save(context.Background())
	assert.ErrorIs(t, err, boom)
}
