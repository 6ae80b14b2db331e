package notify

import "github.com/cueline/cueline/internal/domain/queue"

// EventType represents a queue change event type.
type EventType int

const (
	EventQueueCreated     EventType = iota // A new queue was registered
	EventQueueDiscarded                    // A queue was removed from the store
	EventTracksAdded                       // Tracks were appended to a queue
	EventQueueShuffled                     // A queue was shuffled
	EventTracksTransposed                  // A track swapped places with a neighbor
	EventTrackStarted                      // Playback of a track started
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventQueueCreated:
		return "queue_created"
	case EventQueueDiscarded:
		return "queue_discarded"
	case EventTracksAdded:
		return "tracks_added"
	case EventQueueShuffled:
		return "queue_shuffled"
	case EventTracksTransposed:
		return "tracks_transposed"
	case EventTrackStarted:
		return "track_started"
	default:
		return "unknown"
	}
}

// Event notifies a presentation layer that a queue changed so it can
// re-render and re-highlight the current track.
type Event struct {
	Type  EventType
	Queue *queue.Queue // The affected queue
}
