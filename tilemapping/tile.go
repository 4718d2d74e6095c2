package tilemapping

import (
	"strings"
	"unicode"
)

const (
	// BlankLetter marks a blank tile that has not been designated yet.
	BlankLetter = '?'
	// RackTileLimit is the largest number of tiles a rack may hold.
	RackTileLimit = 7
)

// A Tile is a single lettered tile. A blank carries BlankLetter until it is
// designated, after which it carries the chosen letter and stays worth 0.
type Tile struct {
	Letter rune `yaml:"letter"`
	Value  int  `yaml:"value"`
}

// Blank returns a fresh, undesignated blank tile.
func Blank() Tile {
	return Tile{Letter: BlankLetter}
}

// IsUndesignatedBlank is true for a blank that has no letter yet.
func (t Tile) IsUndesignatedBlank() bool {
	return t.Letter == BlankLetter
}

// Designate assigns a letter to a blank. The point value is always 0.
func (t Tile) Designate(letter rune) Tile {
	return Tile{Letter: unicode.ToUpper(letter), Value: 0}
}

func (t Tile) String() string {
	return string(t.Letter)
}

// IsTileLetter returns true for A-Z (either case).
func IsTileLetter(r rune) bool {
	r = unicode.ToUpper(r)
	return r >= 'A' && r <= 'Z'
}

// UserVisible renders a set of tiles the way a rack is usually printed.
func UserVisible(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}
