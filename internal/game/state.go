package game

import "github.com/google/uuid"

// Outcome of evaluating a single event against the session.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeMiss
	OutcomeTick
	OutcomeEnd
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeTick:
		return "tick"
	case OutcomeEnd:
		return "end"
	}
	return "unknown"
}

// Transition is one event on the scoring queue.
type Transition struct {
	NoteID  uuid.UUID
	Outcome Outcome
}

// State is the single long-lived scoring record for a session. It is
// created once, owned by the transition consumer, and frozen once
// GameEnd is set.
type State struct {
	GameEnd    bool
	Score      int
	Multiplier float64
	HitStreak  int
	HighScore  int
}

// NewState seeds a session, optionally with a persisted high score.
func NewState(highScore int) State {
	return State{
		Multiplier: 1,
		HighScore:  highScore,
	}
}
