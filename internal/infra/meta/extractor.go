// Package meta extracts track metadata from audio files.
package meta

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"

	"github.com/cueline/cueline/internal/domain/track"
)

// Extractor reads metadata tags (ID3, MP4, FLAC, OGG) from audio files.
type Extractor struct{}

// NewExtractor creates a tag-based metadata extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the metadata fields of the given file. Files that cannot
// be opened or carry no recognizable tags produce an error; callers skip
// such files rather than treating this as fatal.
func (e *Extractor) Extract(filename string) (map[string]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filename)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tags from %s", filename)
	}

	fields := map[string]string{
		track.FieldArtist: m.Artist(),
		track.FieldTitle:  m.Title(),
		track.FieldAlbum:  m.Album(),
		track.FieldGenre:  m.Genre(),
	}

	if n, _ := m.Track(); n > 0 {
		fields[track.FieldTrackNumber] = strconv.Itoa(n)
	}
	if y := m.Year(); y > 0 {
		fields[track.FieldDate] = strconv.Itoa(y)
	}

	return fields, nil
}
