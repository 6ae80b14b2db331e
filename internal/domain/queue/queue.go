// Package queue provides the Queue domain entity and its ordering operations.
package queue

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/cueline/cueline/internal/domain/track"
)

// Errors
var (
	ErrAtBoundary      = errors.New("track at boundary")
	ErrEmptyQueue      = errors.New("queue is empty")
	ErrNoNextTrack     = errors.New("no next track")
	ErrTrackNotInQueue = errors.New("track not in queue")
)

// Queue is a named, ordered list of tracks with one optional current pointer.
// Insertion order is play order. Queue names are not enforced unique;
// presentation layers reference queues by ID.
type Queue struct {
	ID      string
	Name    string
	Tracks  []*track.Track
	Current *track.Track
}

// New creates an empty queue with no current track.
func New(name string) *Queue {
	return &Queue{
		ID:     uuid.New().String(),
		Name:   name,
		Tracks: make([]*track.Track, 0),
	}
}

// Append adds tracks to the end of the queue, preserving their order.
func (q *Queue) Append(tracks ...*track.Track) {
	q.Tracks = append(q.Tracks, tracks...)
}

// IsEmpty returns true if the queue holds no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.Tracks) == 0
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return len(q.Tracks)
}

// First returns the first track, or nil on an empty queue.
func (q *Queue) First() *track.Track {
	if len(q.Tracks) == 0 {
		return nil
	}
	return q.Tracks[0]
}

// indexOf returns the position of the first occurrence of t, by pointer
// identity, or -1 if t is not in the queue.
func (q *Queue) indexOf(t *track.Track) int {
	for i, qt := range q.Tracks {
		if qt == t {
			return i
		}
	}
	return -1
}

// Contains reports whether t is an entry of the queue.
func (q *Queue) Contains(t *track.Track) bool {
	return q.indexOf(t) >= 0
}

// SetCurrent marks t as the current track. t must be present in the queue.
func (q *Queue) SetCurrent(t *track.Track) error {
	if q.indexOf(t) < 0 {
		return errors.Wrapf(ErrTrackNotInQueue, "queue %q", q.Name)
	}
	q.Current = t
	return nil
}

// ClearCurrent resets the queue to its idle state.
func (q *Queue) ClearCurrent() {
	q.Current = nil
}

// CurrentIndex returns the position of the first occurrence of the current
// track, or -1 when no current track is set.
func (q *Queue) CurrentIndex() int {
	if q.Current == nil {
		return -1
	}
	return q.indexOf(q.Current)
}

// Transpose swaps t with its immediate neighbor in the given direction.
// Returns ErrAtBoundary when the neighbor does not exist; the queue is
// left unmodified in that case.
func (q *Queue) Transpose(t *track.Track, dir Direction) error {
	i := q.indexOf(t)
	if i < 0 {
		return errors.Wrapf(ErrTrackNotInQueue, "queue %q", q.Name)
	}

	var j int
	switch dir {
	case DirectionForward:
		j = i + 1
	case DirectionBackward:
		j = i - 1
	default:
		return errors.Newf("unknown direction: %d", dir)
	}

	if j < 0 || j >= len(q.Tracks) {
		return errors.Wrapf(ErrAtBoundary, "cannot move %q %s", t.Display(), dir)
	}

	q.Tracks[i], q.Tracks[j] = q.Tracks[j], q.Tracks[i]
	return nil
}

// Shuffle randomly permutes the queue with an unbiased Fisher-Yates
// shuffle. The current track, if any, is pinned to the front of the
// resulting order; the remaining tracks are permuted uniformly.
func (q *Queue) Shuffle(rng *rand.Rand) {
	rest := q.Tracks

	// Pull the current track out of the working list before shuffling.
	if ci := q.CurrentIndex(); ci >= 0 {
		rest = append(rest[:ci], rest[ci+1:]...)
	}

	for i := 0; i < len(rest); i++ {
		j := i + rng.IntN(len(rest)-i)
		rest[i], rest[j] = rest[j], rest[i]
	}

	if q.Current != nil {
		rest = append(rest, nil)
		copy(rest[1:], rest)
		rest[0] = q.Current
	}

	q.Tracks = rest
}

// NextTrack returns the track immediately following the current one, by
// position. When the current track appears more than once, the successor
// of its first occurrence is used. Returns ErrNoNextTrack when no current
// track is set or the current track is the last entry; wrap-around policy
// is left to the caller.
func (q *Queue) NextTrack() (*track.Track, error) {
	i := q.CurrentIndex()
	if i < 0 || i+1 >= len(q.Tracks) {
		return nil, errors.Wrapf(ErrNoNextTrack, "queue %q", q.Name)
	}
	return q.Tracks[i+1], nil
}

// RemoveTrack removes the first occurrence of t from the queue. When t is
// the current track, the current pointer moves to the entry that slid into
// its position, or becomes unset when t was the last entry.
func (q *Queue) RemoveTrack(t *track.Track) error {
	i := q.indexOf(t)
	if i < 0 {
		return errors.Wrapf(ErrTrackNotInQueue, "queue %q", q.Name)
	}

	q.Tracks = append(q.Tracks[:i], q.Tracks[i+1:]...)

	if q.Current == t {
		if i < len(q.Tracks) {
			q.Current = q.Tracks[i]
		} else {
			q.Current = nil
		}
	}
	return nil
}
