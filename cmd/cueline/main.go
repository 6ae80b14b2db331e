// Package main provides the cueline CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/cueline/cueline/internal/app/notify"
	"github.com/cueline/cueline/internal/app/ops"
	playerstate "github.com/cueline/cueline/internal/app/player"
	"github.com/cueline/cueline/internal/app/selection"
	"github.com/cueline/cueline/internal/domain/queue"
	"github.com/cueline/cueline/internal/domain/track"
	"github.com/cueline/cueline/internal/infra/config"
	"github.com/cueline/cueline/internal/infra/logger"
	"github.com/cueline/cueline/internal/infra/meta"
	"github.com/cueline/cueline/internal/infra/player"
	"github.com/cueline/cueline/internal/infra/queuefile"
	"github.com/cueline/cueline/internal/store"
	"github.com/cueline/cueline/internal/ui/prompt"
)

var (
	app        = kingpin.New("cueline", "playback queue manager")
	configPath = app.Flag("config", "Path to config file").Default(config.DefaultPath()).String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	queueName  = app.Flag("queue", "Queue name (omit to select interactively)").Short('q').String()

	// new command
	newCmd  = app.Command("new", "Create a new queue")
	newName = newCmd.Arg("name", "Queue name").Required().String()

	// add command
	addCmd   = app.Command("add", "Add audio files to a queue")
	addFiles = addCmd.Arg("files", "Audio files to add").Required().Strings()

	// play command
	playCmd   = app.Command("play", "Play a track (first track if none chosen)")
	playTrack = playCmd.Flag("track", "Track position (1-based; omit to play the first track)").Int()

	// next command
	nextCmd = app.Command("next", "Advance playback to the next track")

	// shuffle command
	shuffleCmd = app.Command("shuffle", "Shuffle a queue, keeping the current track first")

	// transpose command
	transposeCmd   = app.Command("transpose", "Swap a track with its neighbor")
	transposeDir   = transposeCmd.Arg("direction", "forward or backward").Required().Enum("forward", "backward")
	transposeTrack = transposeCmd.Flag("track", "Track position (1-based; omit to choose interactively)").Int()

	// discard command
	discardCmd = app.Command("discard", "Remove a queue")

	// list command
	listCmd = app.Command("list", "List all queues")

	// show command
	showCmd = app.Command("show", "Show the tracks of a queue")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.Log.Level
	if *verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logger.Config{Output: cfg.Log.Output, Level: logLevel}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(command, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env holds the wired application services.
type env struct {
	store     *store.Store
	ops       *ops.Operations
	selection *selection.Service
	state     *playerstate.State
}

func run(command string, cfg *config.Config) error {
	ctx := context.Background()

	pl, err := player.NewFromConfig(cfg.Player.Type, cfg.Player.Settings)
	if err != nil {
		return err
	}

	zlog.Debug().Msgf("using queue file %s", cfg.Store.Path)
	st := store.New(queuefile.New(cfg.Store.Path))
	if err := st.Load(ctx); err != nil {
		return err
	}

	state := playerstate.NewState()
	operations := ops.New(ops.Config{
		Store:     st,
		Extractor: meta.NewExtractor(),
		Player:    pl,
		State:     state,
		Notifier:  notify.NewManager(),
	})

	p := prompt.New()
	e := &env{
		store:     st,
		ops:       operations,
		selection: selection.New(st, state, p, operations, p),
		state:     state,
	}

	switch command {
	case newCmd.FullCommand():
		return e.cmdNew(ctx, *newName)
	case addCmd.FullCommand():
		return e.cmdAdd(ctx, *addFiles)
	case playCmd.FullCommand():
		return e.cmdPlay(ctx, *playTrack)
	case nextCmd.FullCommand():
		return e.cmdNext(ctx)
	case shuffleCmd.FullCommand():
		return e.cmdShuffle(ctx)
	case transposeCmd.FullCommand():
		return e.cmdTranspose(ctx, *transposeDir, *transposeTrack)
	case discardCmd.FullCommand():
		return e.cmdDiscard(ctx)
	case listCmd.FullCommand():
		return e.cmdList()
	case showCmd.FullCommand():
		return e.cmdShow(ctx)
	}
	return nil
}

// resolveQueue returns the queue named with --queue, or falls back to
// interactive selection.
func (e *env) resolveQueue(ctx context.Context) (*queue.Queue, error) {
	if *queueName != "" {
		return e.store.FindByName(*queueName)
	}
	return e.selection.ResolveQueue(ctx)
}

// resolveTrack returns the track at the given 1-based position, or falls
// back to interactive selection when position is zero.
func (e *env) resolveTrack(ctx context.Context, q *queue.Queue, position int) (*track.Track, error) {
	if position != 0 {
		if position < 1 || position > q.Len() {
			return nil, errors.Newf("track position %d out of range (queue has %d tracks)", position, q.Len())
		}
		return q.Tracks[position-1], nil
	}
	return e.selection.ResolveTrack(ctx, q)
}

func (e *env) cmdNew(ctx context.Context, name string) error {
	q, err := e.ops.NewQueue(ctx, name)
	if err != nil {
		return err
	}
	fmt.Printf("Created queue %q\n", q.Name)
	return nil
}

func (e *env) cmdAdd(ctx context.Context, files []string) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	added, skipped, err := e.ops.AddFiles(ctx, q, files)
	if err != nil {
		return err
	}

	fmt.Printf("Added %d track(s) to %q\n", len(added), q.Name)
	for _, path := range skipped {
		fmt.Printf("  skipped %s (no readable metadata)\n", path)
	}
	return nil
}

func (e *env) cmdPlay(ctx context.Context, position int) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	if position == 0 && q.Current == nil {
		// Bare "play" starts the queue from the top.
		if err := e.ops.Play(ctx, q, nil); err != nil {
			return err
		}
	} else {
		t, err := e.resolveTrack(ctx, q, position)
		if err != nil {
			return err
		}
		if err := e.ops.Play(ctx, q, t); err != nil {
			return err
		}
	}

	fmt.Printf("Playing %s\n", q.Current.Display())
	return nil
}

func (e *env) cmdNext(ctx context.Context) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	if err := e.ops.PlayNext(ctx, q); err != nil {
		if errors.Is(err, queue.ErrNoNextTrack) {
			fmt.Println("End of queue")
			return nil
		}
		return err
	}

	fmt.Printf("Playing %s\n", q.Current.Display())
	return nil
}

func (e *env) cmdShuffle(ctx context.Context) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	if err := e.ops.Shuffle(ctx, q); err != nil {
		return err
	}
	fmt.Printf("Shuffled %q\n", q.Name)
	return nil
}

func (e *env) cmdTranspose(ctx context.Context, direction string, position int) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	dir, err := queue.ParseDirection(direction)
	if err != nil {
		return err
	}

	t, err := e.resolveTrack(ctx, q, position)
	if err != nil {
		return err
	}

	if err := e.ops.Transpose(ctx, q, t, dir); err != nil {
		if errors.Is(err, queue.ErrAtBoundary) {
			fmt.Printf("Cannot move %s %s: already at the %s\n", t.Display(), dir, boundaryName(dir))
			return nil
		}
		return err
	}

	fmt.Printf("Moved %s %s\n", t.Display(), dir)
	return nil
}

func (e *env) cmdDiscard(ctx context.Context) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	if err := e.ops.Discard(ctx, q); err != nil {
		return err
	}
	fmt.Printf("Discarded queue %q\n", q.Name)
	return nil
}

func (e *env) cmdList() error {
	queues := e.store.All()
	if len(queues) == 0 {
		fmt.Println("No queues")
		return nil
	}

	for _, q := range queues {
		marker := " "
		if q.ID == e.state.NowPlayingQueueID() {
			marker = "*"
		}
		fmt.Printf("%s %-20s %3d track(s)\n", marker, q.Name, q.Len())
	}
	return nil
}

func (e *env) cmdShow(ctx context.Context) error {
	q, err := e.resolveQueue(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Queue %q\n", q.Name)
	if q.IsEmpty() {
		fmt.Println("  (empty)")
		return nil
	}

	for i, t := range q.Tracks {
		marker := " "
		if q.Current == t {
			marker = ">"
		}
		fmt.Printf("%s %3d. %s\n", marker, i+1, t.Display())
	}
	return nil
}

func boundaryName(dir queue.Direction) string {
	if dir == queue.DirectionForward {
		return "end"
	}
	return "front"
}
