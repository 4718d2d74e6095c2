package tilemapping

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

// scripted always picks the same relative index, so shuffles are fixed.
type scripted struct{ calls int }

func (s *scripted) Intn(n int) int {
	s.calls++
	return 0
}

func letterCounts(tiles []Tile) map[rune]int {
	m := map[rune]int{}
	for _, t := range tiles {
		m[t.Letter]++
	}
	return m
}

func TestBag(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := NewBag(ld, NewSeededRandomizer(42))
	is.Equal(bag.TilesRemaining(), StandardTileCount)
	is.Equal(letterCounts(bag.Peek()), ld.Distribution())

	drawn, rest := bag.Draw(100)
	is.Equal(len(drawn), 100)
	is.Equal(rest.TilesRemaining(), 0)
	// the original bag value is untouched
	is.Equal(bag.TilesRemaining(), 100)
}

func TestDraw(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), NewSeededRandomizer(1))
	drawn, rest := bag.Draw(7)
	is.Equal(len(drawn), 7)
	is.Equal(rest.TilesRemaining(), 93)
	is.Equal(drawn, bag.Peek()[:7])
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), NewSeededRandomizer(1))
	for i := 0; i < 14; i++ {
		_, bag = bag.Draw(7)
	}
	is.Equal(bag.TilesRemaining(), 2)
	drawn, bag := bag.Draw(7)
	is.Equal(len(drawn), 2)
	is.Equal(bag.TilesRemaining(), 0)
	// Try to draw one more time.
	drawn, bag = bag.Draw(7)
	is.Equal(len(drawn), 0)
	is.Equal(bag.TilesRemaining(), 0)
}

func TestExchange(t *testing.T) {
	is := is.New(t)

	rng := NewSeededRandomizer(7)
	bag := NewBag(EnglishLetterDistribution(), rng)
	rack, bag := bag.Draw(7)
	newTiles, bag := bag.Draw(5)
	bag = bag.Exchange(rack[:5], rng)
	is.Equal(len(newTiles), 5)
	is.Equal(bag.TilesRemaining(), 93)

	inbag := letterCounts(bag.Peek())
	for l, n := range letterCounts(rack[:5]) {
		is.True(inbag[l] >= n)
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	b1 := NewBag(ld, NewSeededRandomizer(99))
	b2 := NewBag(ld, NewSeededRandomizer(99))
	b3 := NewBag(ld, NewSeededRandomizer(100))
	is.Equal(b1.Peek(), b2.Peek())
	is.True(UserVisible(b1.Peek()) != UserVisible(b3.Peek()))
}

func TestFisherYatesUsesInjectedSource(t *testing.T) {
	is := is.New(t)

	tiles := []Tile{{'A', 1}, {'B', 3}, {'C', 3}, {'D', 2}}
	rng := &scripted{}
	bag := BagFromTiles(nil).Exchange(tiles, rng)
	is.Equal(rng.calls, 3)
	// always swapping with index 0 rotates the slice: ABCD -> BCDA
	is.Equal(UserVisible(bag.Peek()), "BCDA")

	sorted := bag.Peek()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Letter < sorted[j].Letter })
	is.Equal(sorted, tiles)
}
