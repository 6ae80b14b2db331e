package queue

import "github.com/cockroachdb/errors"

// Direction represents the direction of a transpose operation.
type Direction int

const (
	DirectionForward  Direction = iota // Toward the end of the queue
	DirectionBackward                  // Toward the front of the queue
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction string as used on the command surface.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return DirectionForward, nil
	case "backward":
		return DirectionBackward, nil
	default:
		return 0, errors.Newf("invalid direction: %q (want forward or backward)", s)
	}
}
