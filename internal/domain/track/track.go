// Package track provides the Track domain entity.
package track

import (
	"fmt"
	"strings"
)

// Metadata field names produced by the extractor.
const (
	FieldArtist      = "artist"
	FieldTitle       = "title"
	FieldAlbum       = "album"
	FieldTrackNumber = "tracknumber"
	FieldDate        = "date"
	FieldGenre       = "genre"
)

// Track represents a playable audio file with its extracted metadata.
// A Track is immutable once constructed; queues share Track values by
// pointer, and identity for queue operations is pointer identity.
type Track struct {
	Filename    string // Path or URI of the audio file (identity key)
	Artist      string
	Title       string
	Album       string
	TrackNumber string
	Date        string
	Genre       string
}

// New creates a Track from a filename and a metadata field mapping.
// Missing fields map to empty strings; a Track with all-empty metadata
// but a valid filename is still legitimate.
func New(filename string, fields map[string]string) *Track {
	return &Track{
		Filename:    filename,
		Artist:      fields[FieldArtist],
		Title:       fields[FieldTitle],
		Album:       fields[FieldAlbum],
		TrackNumber: fields[FieldTrackNumber],
		Date:        fields[FieldDate],
		Genre:       fields[FieldGenre],
	}
}

// Display returns the human-readable rendering used for track selection:
// "artist: title (album) (date)". Empty fields are omitted, and a track
// with no title falls back to its filename.
func (t *Track) Display() string {
	var b strings.Builder

	if t.Artist != "" {
		b.WriteString(t.Artist)
		b.WriteString(": ")
	}

	if t.Title != "" {
		b.WriteString(t.Title)
	} else {
		b.WriteString(t.Filename)
	}

	if t.Album != "" {
		fmt.Fprintf(&b, " (%s)", t.Album)
	}
	if t.Date != "" {
		fmt.Fprintf(&b, " (%s)", t.Date)
	}

	return b.String()
}
