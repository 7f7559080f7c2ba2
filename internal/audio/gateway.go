package audio

import "time"

// Gateway triggers playback. Implementations must not block the caller.
type Gateway interface {
	Init() error
	// Play a tone for the named instrument. Unknown instrument names are
	// silently skipped.
	Play(instrument string, pitch int, duration time.Duration, velocity float64)
	// Filler plays a randomized off-cue used for missed presses.
	Filler()
}

// NullGateway drops everything. Used for --mute and in tests.
type NullGateway struct{}

func (NullGateway) Init() error { return nil }

func (NullGateway) Play(instrument string, pitch int, duration time.Duration, velocity float64) {}

func (NullGateway) Filler() {}
