// Package ops provides the queue operations: creation, track addition,
// reordering, shuffling and playback advancement.
package ops

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/cueline/cueline/internal/app/notify"
	"github.com/cueline/cueline/internal/app/player"
	"github.com/cueline/cueline/internal/domain/queue"
	"github.com/cueline/cueline/internal/domain/track"
	"github.com/cueline/cueline/internal/store"
)

// Extractor reads metadata fields from an audio file. A failed extraction
// returns an error and yields no track.
type Extractor interface {
	Extract(filename string) (map[string]string, error)
}

// Player is the external audio player collaborator.
type Player interface {
	StartPlayback(ctx context.Context, filename string) error
	IsPlaying() bool
}

// Notifier receives queue-changed events after every mutating operation.
type Notifier interface {
	Broadcast(e notify.Event)
}

// Config holds the collaborators of the operations service.
type Config struct {
	Store     *store.Store
	Extractor Extractor
	Player    Player
	State     *player.State
	Notifier  Notifier
	Rand      *rand.Rand // Optional; defaults to a time-seeded source
}

// Operations mutates queues in the store, persisting after every change
// and notifying subscribers. All methods are synchronous and run to
// completion before returning.
type Operations struct {
	store     *store.Store
	extractor Extractor
	player    Player
	state     *player.State
	notifier  Notifier
	rng       *rand.Rand
}

// New creates the operations service.
func New(cfg Config) *Operations {
	rng := cfg.Rand
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	}
	return &Operations{
		store:     cfg.Store,
		extractor: cfg.Extractor,
		player:    cfg.Player,
		state:     cfg.State,
		notifier:  cfg.Notifier,
		rng:       rng,
	}
}

// NewQueue creates an empty queue and registers it in the store. Queue
// names are not checked for uniqueness.
func (o *Operations) NewQueue(ctx context.Context, name string) (*queue.Queue, error) {
	q := queue.New(name)
	o.store.Add(q)

	if err := o.store.Save(ctx); err != nil {
		return nil, err
	}

	zlog.Info().Msgf("ops: created queue %q (%s)", q.Name, q.ID)
	o.notifier.Broadcast(notify.Event{Type: notify.EventQueueCreated, Queue: q})
	return q, nil
}

// AddFiles extracts metadata for each path and appends the resulting
// tracks to the queue, preserving the given order. Files whose extraction
// fails are silently skipped; the skipped paths are returned for callers
// that need visibility.
func (o *Operations) AddFiles(ctx context.Context, q *queue.Queue, paths []string) ([]*track.Track, []string, error) {
	var added []*track.Track
	var skipped []string

	for _, path := range paths {
		fields, err := o.extractor.Extract(path)
		if err != nil {
			zlog.Debug().Msgf("ops: skipping %s: %v", path, err)
			skipped = append(skipped, path)
			continue
		}
		added = append(added, track.New(path, fields))
	}

	q.Append(added...)

	if err := o.store.Save(ctx); err != nil {
		return nil, nil, err
	}

	zlog.Info().Msgf("ops: added %d track(s) to queue %q (%d skipped)", len(added), q.Name, len(skipped))
	o.notifier.Broadcast(notify.Event{Type: notify.EventTracksAdded, Queue: q})
	return added, skipped, nil
}

// Discard removes the queue from the store. The queue object itself is
// not mutated. When the queue was linked to playback, the player-state
// slot is cleared.
func (o *Operations) Discard(ctx context.Context, q *queue.Queue) error {
	if err := o.store.Remove(q.ID); err != nil {
		return err
	}

	if o.state.NowPlayingQueueID() == q.ID {
		o.state.Clear()
	}

	if err := o.store.Save(ctx); err != nil {
		return err
	}

	zlog.Info().Msgf("ops: discarded queue %q (%s)", q.Name, q.ID)
	o.notifier.Broadcast(notify.Event{Type: notify.EventQueueDiscarded, Queue: q})
	return nil
}

// Transpose swaps t with its neighbor in the given direction. A boundary
// violation is reported to the caller and leaves the queue unmodified.
func (o *Operations) Transpose(ctx context.Context, q *queue.Queue, t *track.Track, dir queue.Direction) error {
	if err := q.Transpose(t, dir); err != nil {
		return err
	}

	if err := o.store.Save(ctx); err != nil {
		return err
	}

	o.notifier.Broadcast(notify.Event{Type: notify.EventTracksTransposed, Queue: q})
	return nil
}

// Shuffle randomly permutes the queue, keeping the current track at the
// front of the new order.
func (o *Operations) Shuffle(ctx context.Context, q *queue.Queue) error {
	q.Shuffle(o.rng)

	if err := o.store.Save(ctx); err != nil {
		return err
	}

	o.notifier.Broadcast(notify.Event{Type: notify.EventQueueShuffled, Queue: q})
	return nil
}

// Play sets the current track and starts the external player with its
// filename. A nil track plays the first track of the queue; on an empty
// queue this reports ErrEmptyQueue and no playback is started. This is
// the single place where queue state and player state are linked.
func (o *Operations) Play(ctx context.Context, q *queue.Queue, t *track.Track) error {
	if t == nil {
		t = q.First()
		if t == nil {
			return errors.Wrapf(queue.ErrEmptyQueue, "queue %q", q.Name)
		}
	}

	if !q.Contains(t) {
		return errors.Wrapf(queue.ErrTrackNotInQueue, "queue %q", q.Name)
	}

	if err := o.player.StartPlayback(ctx, t.Filename); err != nil {
		return errors.Wrapf(err, "failed to start playback of %s", t.Filename)
	}

	// Membership was checked above, so SetCurrent cannot fail here.
	_ = q.SetCurrent(t)
	o.state.SetNowPlaying(q.ID, t.Filename)

	if err := o.store.Save(ctx); err != nil {
		return err
	}

	zlog.Info().Msgf("ops: playing %q from queue %q", t.Display(), q.Name)
	o.notifier.Broadcast(notify.Event{Type: notify.EventTrackStarted, Queue: q})
	return nil
}

// PlayNext advances playback to the track following the current one.
// Reaching the end of the queue reports ErrNoNextTrack; whether to stop
// or wrap around is the caller's policy.
func (o *Operations) PlayNext(ctx context.Context, q *queue.Queue) error {
	next, err := q.NextTrack()
	if err != nil {
		return err
	}
	return o.Play(ctx, q, next)
}
