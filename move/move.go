// Package move describes the tiles a player puts down during a turn, and
// decides whether such a play is legal and what it scores.
package move

import (
	"fmt"
	"slices"
	"strings"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/tilemapping"
)

// MoveType is a type of turn event; a play, an exchange, pass, etc.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass

	MoveTypeEndgameTiles
	MoveTypeLostTileScore
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlay:
		return "play"
	case MoveTypeExchange:
		return "exchange"
	case MoveTypePass:
		return "pass"
	case MoveTypeEndgameTiles:
		return "endgame-tiles"
	case MoveTypeLostTileScore:
		return "lost-tile-score"
	}
	return "unhandled"
}

func (t MoveType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *MoveType) UnmarshalText(text []byte) error {
	for mt := MoveTypePlay; mt <= MoveTypeLostTileScore; mt++ {
		if mt.String() == string(text) {
			*t = mt
			return nil
		}
	}
	return fmt.Errorf("unknown move type %q", text)
}

// A Placement is one tile put on the board during the current turn. Blank
// is set when the tile is a designated blank; its Tile then carries the
// chosen letter and a value of 0.
type Placement struct {
	Row   int              `yaml:"row"`
	Col   int              `yaml:"col"`
	Tile  tilemapping.Tile `yaml:"tile"`
	Blank bool             `yaml:"blank,omitempty"`
}

// Position is the square the placement is on.
func (p Placement) Position() board.Position {
	return board.Position{Row: p.Row, Col: p.Col}
}

// RackTile is the tile as it sits on a rack. A designated blank goes back
// to being an undesignated blank.
func (p Placement) RackTile() tilemapping.Tile {
	if p.Blank {
		return tilemapping.Blank()
	}
	return p.Tile
}

// Positions lists the squares of the placements in input order.
func Positions(ps []Placement) []board.Position {
	pos := make([]board.Position, len(ps))
	for i, p := range ps {
		pos[i] = p.Position()
	}
	return pos
}

// Positioned converts placements into board tiles owned by owner.
func Positioned(ps []Placement, owner int) []board.PositionedTile {
	tiles := make([]board.PositionedTile, len(ps))
	for i, p := range ps {
		tiles[i] = board.PositionedTile{
			Position:   p.Position(),
			PlacedTile: board.PlacedTile{Tile: p.Tile, Blank: p.Blank, Owner: owner},
		}
	}
	return tiles
}

// Overlay returns a copy of b with the placements written onto it. The
// committed board is not touched.
func Overlay(b board.Board, ps []Placement) (board.Board, error) {
	return b.WithTiles(Positioned(ps, -1))
}

// Find returns the index of the placement on row, col, or -1.
func Find(ps []Placement, row, col int) int {
	return slices.IndexFunc(ps, func(p Placement) bool {
		return p.Row == row && p.Col == col
	})
}

// ShortDescription describes a play in board coordinates, e.g. "8G CAT".
// Blanks are shown in lower case.
func ShortDescription(ps []Placement) string {
	if len(ps) == 0 {
		return "(no tiles)"
	}
	sorted := slices.Clone(ps)
	slices.SortFunc(sorted, func(a, b Placement) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	dir := board.Across
	if len(sorted) > 1 && sorted[0].Col == sorted[len(sorted)-1].Col {
		dir = board.Down
	}
	var sb strings.Builder
	for _, p := range sorted {
		if p.Blank {
			sb.WriteString(strings.ToLower(p.Tile.String()))
		} else {
			sb.WriteString(p.Tile.String())
		}
	}
	return fmt.Sprintf("%s %s", board.ToBoardGameCoords(sorted[0].Row, sorted[0].Col, dir), sb.String())
}
