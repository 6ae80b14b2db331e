// Package player provides audio player adapters.
package player

import "context"

// Player starts playback of audio files and reports whether something is
// playing. Transport control beyond starting a file (pause, seek, volume)
// belongs to the player itself, not to this program.
type Player interface {
	StartPlayback(ctx context.Context, filename string) error
	IsPlaying() bool
}
