package testdata

import (
	"strings"

	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/parser"
)

const data = `userPlayed,instrumentName,velocity,pitch,start,end
true,piano,100,60,3.5,3.6
true,piano,90,61,4.0,4.1
true,piano,127,62,4.5,5.0
true,piano,64,63,5.0,5.1
false,bass,80,36,3.5,4.5
false,drums,127,35,4.0,4.05
true,lead,110,64,6.0,6.05
true,guitar,70,67,6.5,7.5
false,strings,50,48,2.0,8.0
true,piano,100,70,8.0,8.1
`

func GetChart() (*game.Chart, error) {
	p := parser.DefaultParser{}
	return p.ParseReader(strings.NewReader(data))
}
