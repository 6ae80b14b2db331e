package selection

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cueline/cueline/internal/app/player"
	"github.com/cueline/cueline/internal/domain/queue"
	"github.com/cueline/cueline/internal/domain/track"
	"github.com/cueline/cueline/internal/store"
)

// Stub collaborators for testing

type stubRepository struct{}

func (stubRepository) Load(_ context.Context) ([]*queue.Queue, error)  { return nil, nil }
func (stubRepository) Save(_ context.Context, _ []*queue.Queue) error { return nil }

type stubChooser struct {
	choice      string
	err         error
	seenPrompt  string
	seenDefault string
	seen        []string
}

func (s *stubChooser) ChooseOne(_ context.Context, prompt string, candidates []string, defaultChoice string) (string, error) {
	s.seenPrompt = prompt
	s.seen = candidates
	s.seenDefault = defaultChoice
	if s.err != nil {
		return "", s.err
	}
	return s.choice, nil
}

type stubCreator struct {
	store   *store.Store
	created *queue.Queue
}

func (s *stubCreator) NewQueue(_ context.Context, name string) (*queue.Queue, error) {
	q := queue.New(name)
	s.store.Add(q)
	s.created = q
	return q, nil
}

type stubPrompter struct {
	name string
	err  error
}

func (s *stubPrompter) PromptName(_ context.Context) (string, error) {
	return s.name, s.err
}

func newService(chooser *stubChooser, prompter *stubPrompter) (*Service, *store.Store, *player.State, *stubCreator) {
	st := store.New(stubRepository{})
	state := player.NewState()
	creator := &stubCreator{store: st}
	return New(st, state, chooser, creator, prompter), st, state, creator
}

func TestService_ResolveQueue(t *testing.T) {
	t.Run("zero queues triggers creation", func(t *testing.T) {
		chooser := &stubChooser{}
		svc, st, _, creator := newService(chooser, &stubPrompter{name: "Rock"})

		q, err := svc.ResolveQueue(context.Background())
		require.NoError(t, err)

		assert.Same(t, creator.created, q)
		assert.Equal(t, "Rock", q.Name)
		assert.Equal(t, 1, st.Len())
		assert.Empty(t, chooser.seen, "no prompt when nothing exists to choose")
	})

	t.Run("single queue returned without prompting", func(t *testing.T) {
		chooser := &stubChooser{}
		svc, st, _, _ := newService(chooser, &stubPrompter{})

		only := queue.New("Rock")
		st.Add(only)

		q, err := svc.ResolveQueue(context.Background())
		require.NoError(t, err)
		assert.Same(t, only, q)
		assert.Empty(t, chooser.seen)
	})

	t.Run("multiple queues resolved through chooser", func(t *testing.T) {
		chooser := &stubChooser{choice: "Jazz"}
		svc, st, _, _ := newService(chooser, &stubPrompter{})

		st.Add(queue.New("Rock"))
		jazz := queue.New("Jazz")
		st.Add(jazz)

		q, err := svc.ResolveQueue(context.Background())
		require.NoError(t, err)
		assert.Same(t, jazz, q)
		assert.Equal(t, []string{"Rock", "Jazz"}, chooser.seen)
	})

	t.Run("now-playing queue is the suggested default", func(t *testing.T) {
		chooser := &stubChooser{choice: "Rock"}
		svc, st, state, _ := newService(chooser, &stubPrompter{})

		st.Add(queue.New("Rock"))
		jazz := queue.New("Jazz")
		st.Add(jazz)
		state.SetNowPlaying(jazz.ID, "/music/a.mp3")

		_, err := svc.ResolveQueue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Jazz", chooser.seenDefault)
	})

	t.Run("chooser failure propagates", func(t *testing.T) {
		boom := errors.New("cancelled")
		svc, st, _, _ := newService(&stubChooser{err: boom}, &stubPrompter{})

		st.Add(queue.New("Rock"))
		st.Add(queue.New("Jazz"))

		_, err := svc.ResolveQueue(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_ResolveTrack(t *testing.T) {
	tracks := []*track.Track{
		{Filename: "a.mp3", Artist: "Queen", Title: "Bohemian Rhapsody", Album: "A Night at the Opera", Date: "1975"},
		{Filename: "b.mp3", Artist: "Eagles", Title: "Hotel California"},
	}

	t.Run("resolves over display renderings", func(t *testing.T) {
		chooser := &stubChooser{choice: "Eagles: Hotel California"}
		svc, _, _, _ := newService(chooser, &stubPrompter{})

		q := queue.New("Rock")
		q.Append(tracks...)

		got, err := svc.ResolveTrack(context.Background(), q)
		require.NoError(t, err)
		assert.Same(t, tracks[1], got)
		assert.Equal(t, []string{
			"Queen: Bohemian Rhapsody (A Night at the Opera) (1975)",
			"Eagles: Hotel California",
		}, chooser.seen)
	})

	t.Run("current track is the suggested default", func(t *testing.T) {
		chooser := &stubChooser{choice: "Eagles: Hotel California"}
		svc, _, _, _ := newService(chooser, &stubPrompter{})

		q := queue.New("Rock")
		q.Append(tracks...)
		require.NoError(t, q.SetCurrent(tracks[0]))

		_, err := svc.ResolveTrack(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, "Queen: Bohemian Rhapsody (A Night at the Opera) (1975)", chooser.seenDefault)
	})

	t.Run("empty queue", func(t *testing.T) {
		svc, _, _, _ := newService(&stubChooser{}, &stubPrompter{})

		_, err := svc.ResolveTrack(context.Background(), queue.New("Rock"))
		assert.ErrorIs(t, err, ErrNoCandidates)
	})
}
