package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Equal temperament, A4 = 440Hz.
var midiFreq [128]float64

func init() {
	for p := range midiFreq {
		midiFreq[p] = 440 * math.Pow(2, (float64(p)-69)/12)
	}
}

type instrument struct {
	octave int     // Octave shift applied to the note pitch
	gain   float64 // Volume offset in powers of Base
}

// Anything not listed here is skipped without complaint.
var instruments = map[string]instrument{
	"piano":   {},
	"guitar":  {},
	"strings": {gain: -0.5},
	"lead":    {octave: 1},
	"bass":    {octave: -1, gain: 0.5},
	"drums":   {octave: -2, gain: 1},
}

// Pitches for the miss cue, low and deliberately out of key.
var fillerPitches = []int{37, 38, 42, 44}

type DefaultGateway struct{}

func (g *DefaultGateway) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); nil != err {
		return fmt.Errorf("unable to init speaker: %w", err)
	}
	return nil
}

func (g *DefaultGateway) tone(pitch int, duration time.Duration, volume float64) {
	if pitch < 0 || pitch > 127 {
		return
	}
	s, err := generators.SinTone(sampleRate, int(midiFreq[pitch]))
	if nil != err {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(duration), s),
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -8,
	})
}

func (g *DefaultGateway) Play(name string, pitch int, duration time.Duration, velocity float64) {
	in, ok := instruments[name]
	if !ok {
		return
	}
	if duration < 50*time.Millisecond {
		duration = 50 * time.Millisecond
	}
	// velocity 1.0 plays at full volume, quieter notes drop off fast
	volume := in.gain + 4*(velocity-1)
	g.tone(pitch+12*in.octave, duration, volume)
}

func (g *DefaultGateway) Filler() {
	pitch := fillerPitches[rand.Intn(len(fillerPitches))]
	g.tone(pitch, 120*time.Millisecond, -1)
}
