// Package selection resolves queues and tracks by name through a
// pluggable completion mechanism.
package selection

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/cueline/cueline/internal/app/player"
	"github.com/cueline/cueline/internal/domain/queue"
	"github.com/cueline/cueline/internal/domain/track"
	"github.com/cueline/cueline/internal/store"
)

// Errors
var (
	ErrNoCandidates = errors.New("nothing to choose from")
)

// Chooser presents candidates and blocks until one is chosen. Implemented
// by whatever presentation layer exists: an interactive prompt, an HTTP
// request, or a test stub returning a fixed choice.
type Chooser interface {
	ChooseOne(ctx context.Context, prompt string, candidates []string, defaultChoice string) (string, error)
}

// QueueCreator creates a queue when none exists to resolve.
type QueueCreator interface {
	NewQueue(ctx context.Context, name string) (*queue.Queue, error)
}

// NamePrompter asks the caller for the name of a queue to create.
type NamePrompter interface {
	PromptName(ctx context.Context) (string, error)
}

// Service resolves queues and tracks for callers that did not name one
// explicitly.
type Service struct {
	store    *store.Store
	state    *player.State
	chooser  Chooser
	creator  QueueCreator
	prompter NamePrompter
}

// New creates a selection service.
func New(st *store.Store, state *player.State, chooser Chooser, creator QueueCreator, prompter NamePrompter) *Service {
	return &Service{
		store:    st,
		state:    state,
		chooser:  chooser,
		creator:  creator,
		prompter: prompter,
	}
}

// ResolveQueue picks a queue without further input where possible: a
// single existing queue is returned directly, no queues at all triggers
// queue creation, and multiple queues go through the chooser with the
// queue linked to active playback as the suggested default.
func (s *Service) ResolveQueue(ctx context.Context) (*queue.Queue, error) {
	queues := s.store.All()

	switch len(queues) {
	case 0:
		name, err := s.prompter.PromptName(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to prompt for queue name")
		}
		return s.creator.NewQueue(ctx, name)

	case 1:
		return queues[0], nil
	}

	candidates := make([]string, len(queues))
	for i, q := range queues {
		candidates[i] = q.Name
	}

	defaultChoice := ""
	if id := s.state.NowPlayingQueueID(); id != "" {
		for _, q := range queues {
			if q.ID == id {
				defaultChoice = q.Name
				break
			}
		}
	}

	chosen, err := s.chooser.ChooseOne(ctx, "Queue", candidates, defaultChoice)
	if err != nil {
		return nil, errors.Wrap(err, "queue selection failed")
	}

	// First match: duplicate names resolve to the earliest registration.
	return s.store.FindByName(chosen)
}

// ResolveTrack picks a track from the queue through the chooser, using
// the human-readable track rendering as candidates.
func (s *Service) ResolveTrack(ctx context.Context, q *queue.Queue) (*track.Track, error) {
	if q.IsEmpty() {
		return nil, errors.Wrapf(ErrNoCandidates, "queue %q has no tracks", q.Name)
	}

	candidates := make([]string, q.Len())
	for i, t := range q.Tracks {
		candidates[i] = t.Display()
	}

	defaultChoice := ""
	if q.Current != nil {
		defaultChoice = q.Current.Display()
	}

	chosen, err := s.chooser.ChooseOne(ctx, "Track", candidates, defaultChoice)
	if err != nil {
		return nil, errors.Wrap(err, "track selection failed")
	}

	for i, c := range candidates {
		if c == chosen {
			return q.Tracks[i], nil
		}
	}
	return nil, errors.Newf("chosen track %q is not in queue %q", chosen, q.Name)
}
