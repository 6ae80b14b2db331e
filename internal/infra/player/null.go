package player

import (
	"context"
	"sync"

	zlog "github.com/rs/zerolog/log"
)

// Null is a player that plays nothing. It is used for automation and
// scripting runs where queue state should change without audio output.
type Null struct {
	mu           sync.Mutex
	lastFilename string
}

// NewNull creates a no-op player.
func NewNull() *Null {
	return &Null{}
}

// StartPlayback records the filename and does nothing else.
func (p *Null) StartPlayback(_ context.Context, filename string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastFilename = filename
	zlog.Debug().Msgf("player: null player received %s", filename)
	return nil
}

// IsPlaying always reports false.
func (p *Null) IsPlaying() bool {
	return false
}

// LastFilename returns the most recently received filename.
func (p *Null) LastFilename() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFilename
}
