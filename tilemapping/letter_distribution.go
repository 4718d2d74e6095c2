package tilemapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrTileCount is returned when a distribution does not produce the
// number of tiles the game is built around.
var ErrTileCount = errors.New("tile count mismatch")

// StandardTileCount is the number of tiles in an English set.
const StandardTileCount = 100

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name    string
	letters []rune
	counts  []int
	scores  map[rune]int
}

// englishCSV is letter,quantity,value. The blank is written as '?'.
const englishCSV = `A,9,1
B,2,3
C,2,3
D,4,2
E,12,1
F,2,4
G,3,2
H,2,4
I,9,1
J,1,8
K,1,5
L,4,1
M,2,3
N,6,1
O,8,1
P,2,3
Q,1,10
R,6,1
S,4,1
T,6,1
U,4,1
V,2,4
W,2,4
X,1,8
Y,2,4
Z,1,10
?,2,0
`

// EnglishLetterDistribution returns the standard 100-tile English set.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		// The embedded table is fixed; failing here is a programming error.
		panic(err)
	}
	ld.Name = "english"
	return ld
}

// ScanLetterDistribution reads letter,quantity,value rows.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	ld := &LetterDistribution{scores: map[rune]int{}}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter, size := utf8.DecodeRuneInString(strings.TrimSpace(record[0]))
		if size == 0 || (letter != BlankLetter && !IsTileLetter(letter)) {
			return nil, fmt.Errorf("bad letter %q in distribution", record[0])
		}
		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		if n < 0 || p < 0 {
			return nil, fmt.Errorf("negative quantity or value for %q", record[0])
		}
		if _, ok := ld.scores[letter]; ok {
			return nil, fmt.Errorf("letter %q appears twice in distribution", record[0])
		}
		ld.letters = append(ld.letters, letter)
		ld.counts = append(ld.counts, n)
		ld.scores[letter] = p
	}
	return ld, nil
}

// Score gives the point value of a letter. Unknown letters are worth 0.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.scores[letter]
}

// NumTotalTiles is the size of a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return lo.Sum(ld.counts)
}

// Distribution returns how many of each letter are in a full bag.
func (ld *LetterDistribution) Distribution() map[rune]int {
	m := make(map[rune]int, len(ld.letters))
	for i, l := range ld.letters {
		m[l] = ld.counts[i]
	}
	return m
}

// Tiles enumerates every tile of the distribution, in table order.
func (ld *LetterDistribution) Tiles() []Tile {
	tiles := make([]Tile, 0, ld.NumTotalTiles())
	for i, l := range ld.letters {
		for j := 0; j < ld.counts[i]; j++ {
			tiles = append(tiles, Tile{Letter: l, Value: ld.scores[l]})
		}
	}
	return tiles
}

// CheckTileCount verifies the distribution has exactly want tiles.
func (ld *LetterDistribution) CheckTileCount(want int) error {
	if got := ld.NumTotalTiles(); got != want {
		return fmt.Errorf("%w: distribution %q has %d tiles, want %d",
			ErrTileCount, ld.Name, got, want)
	}
	return nil
}
