package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExec(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		expected ExecConfig
		wantErr  bool
	}{
		{
			name:     "defaults apply when settings are empty",
			settings: map[string]any{},
			expected: ExecConfig{Command: "mpv"},
		},
		{
			name: "explicit command and args",
			settings: map[string]any{
				"command": "ffplay",
				"args":    []string{"-nodisp", "-autoexit"},
			},
			expected: ExecConfig{Command: "ffplay", Args: []string{"-nodisp", "-autoexit"}},
		},
		{
			name: "malformed settings",
			settings: map[string]any{
				"args": 42,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewExec(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Command, p.command)
			assert.Equal(t, tt.expected.Args, p.args)
		})
	}
}

func TestExec_StartPlayback(t *testing.T) {
	p, err := NewExec(map[string]any{"command": "true"})
	require.NoError(t, err)

	require.NoError(t, p.StartPlayback(context.Background(), "/music/a.mp3"))

	// "true" exits immediately; the reaper clears the playing flag.
	assert.Eventually(t, func() bool { return !p.IsPlaying() }, time.Second, 10*time.Millisecond)
}

func TestExec_StartPlaybackUnknownCommand(t *testing.T) {
	p, err := NewExec(map[string]any{"command": "definitely-not-a-real-player"})
	require.NoError(t, err)

	err = p.StartPlayback(context.Background(), "/music/a.mp3")
	assert.Error(t, err)
	assert.False(t, p.IsPlaying())
}

func TestNull(t *testing.T) {
	p := NewNull()

	require.NoError(t, p.StartPlayback(context.Background(), "/music/a.mp3"))
	assert.Equal(t, "/music/a.mp3", p.LastFilename())
	assert.False(t, p.IsPlaying())
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name       string
		playerType string
		wantErr    bool
	}{
		{name: "exec player", playerType: "exec"},
		{name: "null player", playerType: "null"},
		{name: "unknown type", playerType: "gramophone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewFromConfig(tt.playerType, map[string]any{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}
