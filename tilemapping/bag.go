package tilemapping

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Randomizer supplies uniformly distributed indexes in [0, n).
// *frand.RNG and *math/rand.Rand both satisfy it.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns a cryptographically seeded randomizer.
func NewRandomizer() Randomizer {
	return frand.New()
}

// NewSeededRandomizer returns a deterministic randomizer; the same seed
// always produces the same sequence.
func NewSeededRandomizer(seed uint64) Randomizer {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// A Bag is the bag o'tiles. It is a value: Draw and Exchange return a new
// Bag and never modify the receiver's backing array.
type Bag struct {
	tiles []Tile
}

// NewBag creates a bag holding every tile of the distribution and shuffles
// it once.
func NewBag(ld *LetterDistribution, rng Randomizer) Bag {
	b := Bag{tiles: ld.Tiles()}
	shuffle(b.tiles, rng)
	return b
}

// BagFromTiles makes a bag in exactly the given order. No shuffle.
func BagFromTiles(tiles []Tile) Bag {
	return Bag{tiles: append([]Tile(nil), tiles...)}
}

// TilesRemaining is the number of tiles still in the bag.
func (b Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the bag contents in draw order.
func (b Bag) Peek() []Tile {
	return append([]Tile(nil), b.tiles...)
}

// Draw removes up to n tiles from the front of the bag. Drawing more than
// the bag holds returns everything that is left; it is not an error.
func (b Bag) Draw(n int) ([]Tile, Bag) {
	if n <= 0 {
		return nil, b
	}
	if n > len(b.tiles) {
		log.Debug().Int("requested", n).Int("inbag", len(b.tiles)).Msg("undersized-draw")
		n = len(b.tiles)
	}
	drawn := append([]Tile(nil), b.tiles[:n]...)
	return drawn, Bag{tiles: append([]Tile(nil), b.tiles[n:]...)}
}

// Exchange puts the given tiles back into the bag and reshuffles the
// whole bag.
func (b Bag) Exchange(letters []Tile, rng Randomizer) Bag {
	tiles := make([]Tile, 0, len(b.tiles)+len(letters))
	tiles = append(tiles, b.tiles...)
	tiles = append(tiles, letters...)
	shuffle(tiles, rng)
	return Bag{tiles: tiles}
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(tiles []Tile, rng Randomizer) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}
