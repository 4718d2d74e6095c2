package tilemapping

import (
	"fmt"

	"github.com/samber/lo"
)

// Rack is a player's private hand, in display order.
type Rack []Tile

// String returns a user-visible version of this rack.
func (r Rack) String() string {
	return UserVisible(r)
}

// NumTiles is the number of tiles on the rack.
func (r Rack) NumTiles() int {
	return len(r)
}

// Copy returns a copy that shares nothing with r.
func (r Rack) Copy() Rack {
	return append(Rack(nil), r...)
}

// ScoreOn sums the point values of the tiles on the rack.
func (r Rack) ScoreOn() int {
	return lo.SumBy(r, func(t Tile) int { return t.Value })
}

// RemoveAt returns the tile at idx and a new rack without it.
func (r Rack) RemoveAt(idx int) (Tile, Rack, error) {
	if idx < 0 || idx >= len(r) {
		return Tile{}, r, fmt.Errorf("rack index %d out of range (rack has %d tiles)", idx, len(r))
	}
	rest := lo.Filter(r, func(_ Tile, i int) bool { return i != idx })
	return r[idx], rest, nil
}

// Split separates the tiles at the given indexes from the others. Kept
// tiles preserve their order; taken tiles come out in rack order.
func (r Rack) Split(idxs []int) (taken []Tile, kept Rack) {
	for i, t := range r {
		if lo.Contains(idxs, i) {
			taken = append(taken, t)
		} else {
			kept = append(kept, t)
		}
	}
	return taken, kept
}

// IndexOf returns the index of the first tile with the given letter, or -1.
func (r Rack) IndexOf(letter rune) int {
	_, idx, ok := lo.FindIndexOf(r, func(t Tile) bool { return t.Letter == letter })
	if !ok {
		return -1
	}
	return idx
}
