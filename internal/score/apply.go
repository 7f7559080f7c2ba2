package score

import (
	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/game"
)

// Apply is the only way session state changes. Every mutator feeds an
// Outcome through here; a finished session accepts nothing further.
func Apply(s game.State, o game.Outcome) game.State {
	if s.GameEnd {
		return s
	}

	switch o {
	case game.OutcomeHit:
		s.Score++
		s.HitStreak++
		if s.HitStreak == config.HitStreakForMultiplier {
			s.Multiplier += config.MultiplierStep
			s.HitStreak = 0
		}
	case game.OutcomeMiss:
		s.Score--
		if s.Score < 0 {
			s.Score = 0
		}
		s.HitStreak = 0
		s.Multiplier = 1
	case game.OutcomeTick:
		// Display refresh only
	case game.OutcomeEnd:
		s.GameEnd = true
	}

	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return s
}
