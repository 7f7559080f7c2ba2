package game

import (
	"time"

	"github.com/google/uuid"
)

// Note is created once at parse time and never mutated afterwards.
// All session state for a note lives in the active registry, not here.
type Note struct {
	ID         uuid.UUID
	UserPlayed bool
	Instrument string
	Velocity   float64 // Normalized to [0, 1]
	Pitch      int     // MIDI, 0-127
	Start      float64 // Seconds
	End        float64 // Seconds, End >= Start
	Column     int     // Pitch mod 4
	TailMs     float64 // Sustain length in ms, valid only when HasTail
	HasTail    bool
}

func (n *Note) StartMs() float64 {
	return n.Start * 1000
}

func (n *Note) Duration() time.Duration {
	return time.Duration((n.End - n.Start) * float64(time.Second))
}

// TailLength is the tail extent in field length units, capped at TailMs/10.
func (n *Note) TailLength() float64 {
	return TailLength(n.TailMs, n.HasTail)
}

func TailLength(tailMs float64, hasTail bool) float64 {
	if !hasTail {
		return 0
	}
	return tailMs / 10
}
