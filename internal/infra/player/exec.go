package player

import (
	"context"
	"os/exec"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
)

// ExecConfig configures the external-command player.
type ExecConfig struct {
	Command string   `yaml:"command" mapstructure:"command" default:"mpv" validate:"required"`
	Args    []string `yaml:"args" mapstructure:"args"`
}

// Exec plays tracks by launching an external player command per file.
// Starting a new track terminates the previous player process.
type Exec struct {
	mu      sync.Mutex
	command string
	args    []string
	cmd     *exec.Cmd
	playing bool
}

// NewExec creates an external-command player from provider settings.
func NewExec(settings map[string]any) (*Exec, error) {
	var cfg ExecConfig
	if err := mapstructure.Decode(settings, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode exec player settings")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set exec player defaults")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid exec player settings")
	}

	return &Exec{
		command: cfg.Command,
		args:    cfg.Args,
	}, nil
}

// StartPlayback launches the player command with the given file. Any
// previously started process is terminated first.
func (p *Exec) StartPlayback(ctx context.Context, filename string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil && p.cmd.Process != nil && p.playing {
		if err := p.cmd.Process.Kill(); err != nil {
			zlog.Warn().Msgf("player: failed to stop previous process: %v", err)
		}
	}

	args := append(append([]string(nil), p.args...), filename)
	cmd := exec.CommandContext(ctx, p.command, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", p.command)
	}

	p.cmd = cmd
	p.playing = true
	zlog.Debug().Msgf("player: started %s %s (pid %d)", p.command, filename, cmd.Process.Pid)

	// Reap the process and clear the playing flag when it exits.
	go func() {
		_ = cmd.Wait()
		p.mu.Lock()
		if p.cmd == cmd {
			p.playing = false
		}
		p.mu.Unlock()
	}()

	return nil
}

// IsPlaying reports whether the most recently started process is still
// running.
func (p *Exec) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
