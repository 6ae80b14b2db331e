// Package queuefile persists queues to a YAML file on disk.
package queuefile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/cueline/cueline/internal/domain/queue"
	"github.com/cueline/cueline/internal/domain/track"
)

// file is the on-disk document.
type file struct {
	Queues []queueRecord `yaml:"queues"`
}

// queueRecord is the serialized form of a queue. The current track is
// stored as a position so duplicate entries round-trip unambiguously.
type queueRecord struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Current *int          `yaml:"current,omitempty"`
	Tracks  []trackRecord `yaml:"tracks"`
}

// trackRecord is the serialized form of a track.
type trackRecord struct {
	Filename    string `yaml:"filename"`
	Artist      string `yaml:"artist,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Album       string `yaml:"album,omitempty"`
	TrackNumber string `yaml:"tracknumber,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Genre       string `yaml:"genre,omitempty"`
}

// Repository stores all queues in a single YAML file.
type Repository struct {
	path string
}

// New creates a repository writing to the given path.
func New(path string) *Repository {
	return &Repository{path: path}
}

// Load reads all queues from disk. A missing file is not an error and
// yields an empty set, so first runs need no setup.
func (r *Repository) Load(_ context.Context) ([]*queue.Queue, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			zlog.Debug().Msgf("queuefile: %s does not exist yet", r.path)
			return []*queue.Queue{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", r.path)
	}

	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", r.path)
	}

	queues := make([]*queue.Queue, 0, len(doc.Queues))
	for _, rec := range doc.Queues {
		q, err := rec.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "queue %q in %s", rec.Name, r.path)
		}
		queues = append(queues, q)
	}
	return queues, nil
}

// Save writes all queues to disk. The write goes through a temp file and
// a rename so a crash mid-write cannot corrupt the previous state.
func (r *Repository) Save(_ context.Context, queues []*queue.Queue) error {
	doc := file{Queues: make([]queueRecord, 0, len(queues))}
	for _, q := range queues {
		doc.Queues = append(doc.Queues, toRecord(q))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal queues")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "failed to replace %s", r.path)
	}

	zlog.Debug().Msgf("queuefile: saved %d queue(s) to %s", len(queues), r.path)
	return nil
}

// toRecord converts a queue to its serialized form.
func toRecord(q *queue.Queue) queueRecord {
	rec := queueRecord{
		ID:     q.ID,
		Name:   q.Name,
		Tracks: make([]trackRecord, len(q.Tracks)),
	}

	for i, t := range q.Tracks {
		rec.Tracks[i] = trackRecord{
			Filename:    t.Filename,
			Artist:      t.Artist,
			Title:       t.Title,
			Album:       t.Album,
			TrackNumber: t.TrackNumber,
			Date:        t.Date,
			Genre:       t.Genre,
		}
	}

	if ci := q.CurrentIndex(); ci >= 0 {
		rec.Current = &ci
	}
	return rec
}

// toDomain converts a serialized queue back to the domain form.
func (rec queueRecord) toDomain() (*queue.Queue, error) {
	q := &queue.Queue{
		ID:     rec.ID,
		Name:   rec.Name,
		Tracks: make([]*track.Track, len(rec.Tracks)),
	}

	for i, tr := range rec.Tracks {
		q.Tracks[i] = &track.Track{
			Filename:    tr.Filename,
			Artist:      tr.Artist,
			Title:       tr.Title,
			Album:       tr.Album,
			TrackNumber: tr.TrackNumber,
			Date:        tr.Date,
			Genre:       tr.Genre,
		}
	}

	if rec.Current != nil {
		ci := *rec.Current
		if ci < 0 || ci >= len(q.Tracks) {
			return nil, errors.Newf("current index %d out of range (have %d tracks)", ci, len(q.Tracks))
		}
		q.Current = q.Tracks[ci]
	}
	return q, nil
}
