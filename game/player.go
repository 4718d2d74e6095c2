package game

import (
	"fmt"

	"github.com/friendlywords/friendlywords/tilemapping"
)

// Player is a seat at the table. Score may go negative through endgame
// adjustments or negative dictionary weights.
type Player struct {
	Name  string
	Score int
	Rack  tilemapping.Rack
}

func (p Player) copy() Player {
	p.Rack = p.Rack.Copy()
	return p
}

func (p Player) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	rackLetters := p.Rack.String()
	if !myturn {
		// Don't show rack letters.
		rackLetters = ""
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Name, rackLetters, p.Score)
}

type players []Player

func (ps players) copy() players {
	out := make(players, len(ps))
	for i, p := range ps {
		out[i] = p.copy()
	}
	return out
}

func (ps players) tilesOnRacks() int {
	n := 0
	for _, p := range ps {
		n += p.Rack.NumTiles()
	}
	return n
}
