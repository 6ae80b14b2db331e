package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := NewState()

	assert.Empty(t, s.NowPlayingQueueID())
	assert.Empty(t, s.LastFilename())

	s.SetNowPlaying("queue-1", "/music/a.mp3")
	assert.Equal(t, "queue-1", s.NowPlayingQueueID())
	assert.Equal(t, "/music/a.mp3", s.LastFilename())

	// A later play relinks the slot.
	s.SetNowPlaying("queue-2", "/music/b.mp3")
	assert.Equal(t, "queue-2", s.NowPlayingQueueID())

	s.Clear()
	assert.Empty(t, s.NowPlayingQueueID())
	assert.Empty(t, s.LastFilename())
}
