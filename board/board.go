// Package board holds the committed state of the 15x15 grid, the premium
// square layout, and the geometry used to find words on it.
package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/friendlywords/friendlywords/tilemapping"
)

// Direction is the axis a word or a cursor runs along.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Opposite returns the other axis.
func (d Direction) Opposite() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Step returns the row and column deltas for one square forward.
func (d Direction) Step() (int, int) {
	if d == Down {
		return 1, 0
	}
	return 0, 1
}

// Position is a square on the board.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Next returns the position delta squares along d. delta may be negative.
func (p Position) Next(d Direction, delta int) Position {
	dr, dc := d.Step()
	return Position{Row: p.Row + dr*delta, Col: p.Col + dc*delta}
}

// A PlacedTile is a tile that sits on a board square.
type PlacedTile struct {
	tilemapping.Tile
	Blank bool
	Owner int
}

// PositionedTile is a tile together with the square it goes on.
type PositionedTile struct {
	Position
	PlacedTile
}

type square struct {
	tile     PlacedTile
	occupied bool
}

// A Board is the committed grid. It is a value type: copying a Board copies
// every square, and no method modifies its receiver. The zero value is an
// empty board.
type Board struct {
	squares     [BoardDim][BoardDim]square
	tilesPlayed int
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Dim is the dimension of the board.
func (b Board) Dim() int {
	return BoardDim
}

// HasLetter is true if there is a tile on the square. Squares off the board
// never have letters.
func (b Board) HasLetter(row, col int) bool {
	return PosExists(row, col) && b.squares[row][col].occupied
}

// Get returns the tile on the square, if any.
func (b Board) Get(row, col int) (PlacedTile, bool) {
	if !b.HasLetter(row, col) {
		return PlacedTile{}, false
	}
	return b.squares[row][col].tile, true
}

// IsEmpty returns whether no tile has been played yet.
func (b Board) IsEmpty() bool {
	return b.tilesPlayed == 0
}

// TilesPlayed is the number of tiles on the board.
func (b Board) TilesPlayed() int {
	return b.tilesPlayed
}

// WithTiles returns a copy of the board with the given tiles added. It
// refuses to overwrite a square or to place off the board; the receiver is
// never modified.
func (b Board) WithTiles(tiles []PositionedTile) (Board, error) {
	nb := b
	for _, t := range tiles {
		if !PosExists(t.Row, t.Col) {
			return b, fmt.Errorf("square %v is off the board", t.Position)
		}
		if nb.squares[t.Row][t.Col].occupied {
			return b, fmt.Errorf("square %v is already occupied", t.Position)
		}
		nb.squares[t.Row][t.Col] = square{tile: t.PlacedTile, occupied: true}
		nb.tilesPlayed++
	}
	return nb, nil
}

// AllTiles returns every tile on the board in row-major order.
func (b Board) AllTiles() []PositionedTile {
	tiles := make([]PositionedTile, 0, b.tilesPlayed)
	for r := 0; r < BoardDim; r++ {
		for c := 0; c < BoardDim; c++ {
			if sq := b.squares[r][c]; sq.occupied {
				tiles = append(tiles, PositionedTile{Position{r, c}, sq.tile})
			}
		}
	}
	return tiles
}

// Fingerprint is a hash of the letters on the board and where they are.
// Two boards with the same tiles in the same places have the same
// fingerprint.
func (b Board) Fingerprint() uint64 {
	buf := make([]byte, 0, b.tilesPlayed*7)
	for _, t := range b.AllTiles() {
		buf = append(buf, byte(t.Row), byte(t.Col))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.Letter))
		if t.Blank {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return xxhash.Sum64(buf)
}
