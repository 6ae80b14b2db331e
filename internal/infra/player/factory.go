package player

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// NewFromConfig creates a player from its configured type and settings.
func NewFromConfig(playerType string, settings map[string]any) (Player, error) {
	switch playerType {
	case "exec":
		p, err := NewExec(settings)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create exec player")
		}
		zlog.Debug().Msgf("player: using exec player")
		return p, nil

	case "null":
		zlog.Debug().Msgf("player: using null player")
		return NewNull(), nil

	default:
		return nil, errors.Newf("unsupported player type: %s", playerType)
	}
}
