// Package player provides the shared player-state slot.
package player

import "sync"

// State tracks which queue is currently linked to active playback.
// Playback operations write the slot and queue selection reads it back to
// pick a sensible default.
type State struct {
	mu sync.RWMutex

	nowPlayingQueueID string
	lastFilename      string
}

// NewState creates an empty player state.
func NewState() *State {
	return &State{}
}

// SetNowPlaying links the given queue to active playback.
func (s *State) SetNowPlaying(queueID, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlayingQueueID = queueID
	s.lastFilename = filename
}

// NowPlayingQueueID returns the ID of the queue linked to playback, or ""
// when no queue has been played yet.
func (s *State) NowPlayingQueueID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowPlayingQueueID
}

// LastFilename returns the filename most recently handed to the player.
func (s *State) LastFilename() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFilename
}

// Clear unlinks playback state, e.g. when the linked queue is discarded.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlayingQueueID = ""
	s.lastFilename = ""
}
