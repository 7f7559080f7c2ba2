package parser

import "git.lost.host/meutraa/notefall/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
