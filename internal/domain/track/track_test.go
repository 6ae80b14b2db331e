package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		fields   map[string]string
		expected Track
	}{
		{
			name:     "all fields present",
			filename: "/music/queen/bohemian.flac",
			fields: map[string]string{
				"artist":      "Queen",
				"title":       "Bohemian Rhapsody",
				"album":       "A Night at the Opera",
				"tracknumber": "11",
				"date":        "1975",
				"genre":       "Rock",
			},
			expected: Track{
				Filename:    "/music/queen/bohemian.flac",
				Artist:      "Queen",
				Title:       "Bohemian Rhapsody",
				Album:       "A Night at the Opera",
				TrackNumber: "11",
				Date:        "1975",
				Genre:       "Rock",
			},
		},
		{
			name:     "missing fields map to empty strings",
			filename: "/music/unknown.mp3",
			fields: map[string]string{
				"title": "Untitled",
			},
			expected: Track{
				Filename: "/music/unknown.mp3",
				Title:    "Untitled",
			},
		},
		{
			name:     "empty mapping is still a valid track",
			filename: "/music/raw.wav",
			fields:   map[string]string{},
			expected: Track{
				Filename: "/music/raw.wav",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(tt.filename, tt.fields)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestTrack_Display(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		expected string
	}{
		{
			name: "full metadata",
			track: Track{
				Filename: "/music/a.mp3",
				Artist:   "Queen",
				Title:    "Bohemian Rhapsody",
				Album:    "A Night at the Opera",
				Date:     "1975",
			},
			expected: "Queen: Bohemian Rhapsody (A Night at the Opera) (1975)",
		},
		{
			name: "no album or date",
			track: Track{
				Filename: "/music/a.mp3",
				Artist:   "Queen",
				Title:    "Bohemian Rhapsody",
			},
			expected: "Queen: Bohemian Rhapsody",
		},
		{
			name: "no metadata falls back to filename",
			track: Track{
				Filename: "/music/raw.wav",
			},
			expected: "/music/raw.wav",
		},
		{
			name: "title without artist",
			track: Track{
				Filename: "/music/a.mp3",
				Title:    "Bohemian Rhapsody",
				Date:     "1975",
			},
			expected: "Bohemian Rhapsody (1975)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.track.Display())
		})
	}
}

func TestTrack_IdentityIsPointerIdentity(t *testing.T) {
	fields := map[string]string{"artist": "Queen", "title": "Bohemian Rhapsody"}
	a := New("/music/a.mp3", fields)
	b := New("/music/a.mp3", fields)

	// Identical metadata added twice yields distinct queue entries.
	assert.Equal(t, *a, *b)
	assert.NotSame(t, a, b)
}
