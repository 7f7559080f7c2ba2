package score

import (
	"testing"

	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/game"
)

func TestApplyHitStreak(t *testing.T) {
	s := game.NewState(0)
	for i := 0; i < config.HitStreakForMultiplier; i++ {
		s = Apply(s, game.OutcomeHit)
	}

	if s.Score != config.HitStreakForMultiplier {
		t.Log("score   ", s.Score)
		t.Log("expected", config.HitStreakForMultiplier)
		t.Fail()
	}
	if s.HitStreak != 0 {
		t.Log("streak not reset after multiplier bump:", s.HitStreak)
		t.Fail()
	}
	if s.Multiplier != 1+config.MultiplierStep {
		t.Log("multiplier", s.Multiplier)
		t.Log("expected  ", 1+config.MultiplierStep)
		t.Fail()
	}
	if s.HighScore != s.Score {
		t.Log("high score", s.HighScore, "!= score", s.Score)
		t.Fail()
	}
}

func TestApplyMissResets(t *testing.T) {
	s := game.NewState(0)
	for i := 0; i < config.HitStreakForMultiplier+3; i++ {
		s = Apply(s, game.OutcomeHit)
	}

	s = Apply(s, game.OutcomeMiss)
	if s.HitStreak != 0 {
		t.Log("streak after miss:", s.HitStreak)
		t.Fail()
	}
	if s.Multiplier != 1 {
		t.Log("multiplier after miss:", s.Multiplier)
		t.Fail()
	}
}

func TestApplyScoreFloor(t *testing.T) {
	s := game.NewState(0)
	s = Apply(s, game.OutcomeMiss)
	if s.Score != 0 {
		t.Log("score went negative:", s.Score)
		t.Fail()
	}
}

func TestApplyHighScoreMonotonic(t *testing.T) {
	s := game.NewState(0)
	outcomes := []game.Outcome{
		game.OutcomeHit, game.OutcomeHit, game.OutcomeHit,
		game.OutcomeMiss, game.OutcomeMiss, game.OutcomeMiss, game.OutcomeMiss,
		game.OutcomeHit,
	}
	max := 0
	for _, o := range outcomes {
		s = Apply(s, o)
		if s.Score > max {
			max = s.Score
		}
		if s.HighScore != max {
			t.Log("state     ", s)
			t.Log("max so far", max)
			t.Fail()
		}
	}
}

func TestApplySeededHighScore(t *testing.T) {
	s := game.NewState(42)
	s = Apply(s, game.OutcomeHit)
	if s.HighScore != 42 {
		t.Log("seeded high score lost:", s.HighScore)
		t.Fail()
	}
}

// The concrete ten-hit-then-miss scenario.
func TestApplyScenario(t *testing.T) {
	s := game.NewState(0)
	for i := 0; i < 10; i++ {
		s = Apply(s, game.OutcomeHit)
	}
	want := game.State{Score: 10, Multiplier: 1.2, HitStreak: 0, HighScore: 10}
	if s != want {
		t.Log("state   ", s)
		t.Log("expected", want)
		t.Fail()
	}

	s = Apply(s, game.OutcomeMiss)
	want = game.State{Score: 9, Multiplier: 1, HitStreak: 0, HighScore: 10}
	if s != want {
		t.Log("state   ", s)
		t.Log("expected", want)
		t.Fail()
	}
}

func TestApplyTick(t *testing.T) {
	s := game.State{Score: 5, Multiplier: 1.2, HitStreak: 3, HighScore: 7}
	if out := Apply(s, game.OutcomeTick); out != s {
		t.Log("tick changed state:", out)
		t.Fail()
	}
}

func TestApplyEndTerminal(t *testing.T) {
	s := game.NewState(0)
	s = Apply(s, game.OutcomeEnd)
	if !s.GameEnd {
		t.Log("end did not set GameEnd")
		t.Fail()
	}

	for _, o := range []game.Outcome{game.OutcomeHit, game.OutcomeMiss, game.OutcomeTick} {
		if out := Apply(s, o); out != s {
			t.Log("transition after end changed state:", o, out)
			t.Fail()
		}
	}
}
