package score

import (
	"git.lost.host/meutraa/notefall/internal/game"
	"github.com/google/uuid"
)

type Scorer interface {
	Init() error
	Deinit()

	// LoadHighScore returns the best score for this chart, 0 if absent.
	LoadHighScore(chart *game.Chart) int
	SaveHighScore(chart *game.Chart, score int)

	// SaveSession records a finished session for the history table.
	SaveSession(chart *game.Chart, id uuid.UUID, final game.State)
}
