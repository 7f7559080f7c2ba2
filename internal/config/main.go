package config

import (
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const NKey = 4

var (
	Chart       = kingpin.Arg("chart", "Note chart file").Required().ExistingFile()
	Delay       = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	Database    = kingpin.Flag("database", "Score database file").Default("./scores.db").String()
	Device      = kingpin.Flag("device", "Read keys from this evdev device instead of the terminal").String()
	Mute        = kingpin.Flag("mute", "Disable audio output").Bool()
	FramePeriod = kingpin.Flag("frame-period", "Render flush period").Default("16ms").Short('p').Duration()
	keys        = kingpin.Flag("keys", "Column keys, left to right").Default("dfjk").Short('k').String()
	fieldHeight = kingpin.Flag("field-height", "Playing field height in length units").Default("600").Uint()

	// LeadTime is the fixed delay between a note's appearance at the top
	// edge and its arrival at the bottom edge.
	LeadTime = 3 * time.Second

	// Hit window around the bottom edge, in length units. Biased late.
	EarlyWindow = 80.0
	LateWindow  = 120.0

	// Presses on the same key inside this window collapse into one.
	Debounce = 150 * time.Millisecond

	HitStreakForMultiplier = 10
	MultiplierStep         = 0.2

	// Sustains shorter than this carry no tail.
	TailMinDuration = 250.0 // ms

	SamplePeriod    = 10 * time.Millisecond
	EndSamplePeriod = 500 * time.Millisecond

	Field game.Field
)

func Keys() []rune {
	return []rune(*keys)
}

// KeyColumn maps a pressed rune to its column, -1 when unbound.
func KeyColumn(r rune) int {
	for i, c := range Keys() {
		if r == c && i < NKey {
			return i
		}
	}
	return -1
}

// Setup computes flag-derived values. Called from main after kingpin.Parse.
func Setup() {
	Field = game.Field{
		Top:    0,
		Bottom: float64(*fieldHeight),
		Lead:   LeadTime,
	}
}

func init() {
	kingpin.Version("0.1.0")
}
