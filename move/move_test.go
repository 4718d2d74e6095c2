package move

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/tilemapping"
)

var english = tilemapping.EnglishLetterDistribution()

func tile(l rune) tilemapping.Tile {
	return tilemapping.Tile{Letter: l, Value: english.Score(l)}
}

// across lays out a word of placements starting at row, col.
func across(row, col int, word string) []Placement {
	var ps []Placement
	for i, l := range word {
		ps = append(ps, Placement{Row: row, Col: col + i, Tile: tile(l)})
	}
	return ps
}

func committed(t *testing.T, ps ...[]Placement) board.Board {
	t.Helper()
	b := board.NewBoard()
	for _, p := range ps {
		var err error
		b, err = b.WithTiles(Positioned(p, 0))
		if err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func dict(words ...string) lexicon.Dictionary {
	m := map[string]int{}
	for _, w := range words {
		m[w] = 1
	}
	return lexicon.NewWordList("test", m)
}

func TestFirstMoveCat(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	ps := across(7, 6, "CAT")
	d := dict("CAT")

	v := Validate(b, ps, d, true)
	is.True(v.Valid)
	is.Equal(v.Words, []string{"CAT"})
	is.Equal(Score(b, ps, d), 5)
	// neither input was touched
	is.True(b.IsEmpty())
}

func TestValidateRejections(t *testing.T) {
	cat := committed(t, across(7, 6, "CAT"))
	for _, tc := range []struct {
		name   string
		b      board.Board
		ps     []Placement
		first  bool
		reason string
	}{
		{"empty", board.NewBoard(), nil, true, ReasonNoTiles},
		{"off board", board.NewBoard(), []Placement{{Row: 7, Col: 15, Tile: tile('A')}}, true, ReasonOffBoard},
		{"occupied", cat, across(7, 8, "TS"), false, ReasonOccupied},
		{"duplicate", board.NewBoard(), append(across(7, 7, "A"), across(7, 7, "B")...), true, ReasonOccupied},
		{"not in line", board.NewBoard(), append(across(7, 7, "A"), across(8, 8, "T")...), true, ReasonNotInLine},
		{"gap", board.NewBoard(), append(across(7, 6, "C"), across(7, 8, "T")...), true, ReasonGap},
		{"center", board.NewBoard(), across(0, 0, "CAT"), true, ReasonMissesCenter},
		{"lone tile", board.NewBoard(), across(7, 7, "A"), true, ReasonNoWord},
		{"disconnected", cat, across(10, 5, "DOG"), false, ReasonNotConnected},
		{"phony", cat, across(8, 6, "AX"), false, `"CA" is not a valid word`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(tc.b, tc.ps, dict("CAT", "AX", "DOG"), tc.first)
			assert.False(t, v.Valid)
			assert.Equal(t, tc.reason, v.Reason)
			assert.Empty(t, v.Words)
		})
	}
}

func TestConnectivityRejection(t *testing.T) {
	is := is.New(t)
	b := committed(t, across(0, 0, "CAT"))
	v := Validate(b, across(5, 5, "DOG"), dict("CAT", "DOG"), false)
	is.True(!v.Valid)
	is.Equal(v.Reason, "play must connect to existing tiles")
}

func TestFillGapWithExistingTile(t *testing.T) {
	is := is.New(t)
	b := committed(t, across(7, 7, "A"))
	ps := append(across(7, 6, "C"), across(7, 8, "T")...)
	v := Validate(b, ps, dict("CAT"), false)
	is.True(v.Valid)
	is.Equal(Score(b, ps, dict("CAT")), 5)
}

func TestInvalidWordIsNamedInUpperCase(t *testing.T) {
	is := is.New(t)
	ps := []Placement{
		{Row: 7, Col: 6, Tile: tile('C')},
		{Row: 7, Col: 7, Tile: tilemapping.Blank().Designate('a'), Blank: true},
		{Row: 7, Col: 8, Tile: tile('X')},
	}
	v := Validate(board.NewBoard(), ps, dict("CAT"), true)
	is.True(!v.Valid)
	is.Equal(v.Reason, `"CAX" is not a valid word`)
}

func TestValidateIsDeterministic(t *testing.T) {
	is := is.New(t)
	b := committed(t, across(7, 6, "CAT"))
	ps := across(8, 6, "AX")
	d := dict("CAT", "AX", "CA")
	first := Validate(b, ps, d, false)
	for i := 0; i < 5; i++ {
		is.Equal(Validate(b, ps, d, false), first)
	}
	is.True(first.Valid)
	is.Equal(first.Words, []string{"AX", "CA", "AX"})
}

func TestScoreCrossWords(t *testing.T) {
	is := is.New(t)
	b := committed(t, across(7, 6, "CAT"))
	ps := across(8, 6, "AX")
	// AX across: A on a double letter (2) + X (8) = 10
	// CA down: C (3) + A on a double letter (2) = 5
	// AX down: A (1) + X (8) = 9
	tally := TallyPlay(b, ps, dict("CAT", "AX", "CA"), DefaultBingoBonus)
	is.Equal(len(tally.Words), 3)
	is.Equal(tally.Words[0].Score, 10)
	is.Equal(tally.Words[1].Score, 5)
	is.Equal(tally.Words[2].Score, 9)
	is.Equal(tally.Total, 24)
	is.True(!tally.Bingo)
	is.Equal(Score(b, ps, dict("CAT", "AX", "CA")), 24)
}

func TestScorePremiums(t *testing.T) {
	is := is.New(t)
	// Q on the double letter at 8D
	ps := across(7, 3, "QUEEN")
	is.True(Validate(board.NewBoard(), ps, dict("QUEEN"), true).Valid)
	is.Equal(Score(board.NewBoard(), ps, dict("QUEEN")), 24)

	// triple word at 1A; the existing AT counts at face value
	b := committed(t, across(0, 1, "AT"))
	ps = across(0, 0, "C")
	is.True(Validate(b, ps, dict("CAT"), false).Valid)
	is.Equal(Score(b, ps, dict("CAT")), 15)

	// premiums under existing tiles are not used again
	b = committed(t, across(0, 0, "C"))
	is.Equal(Score(b, across(0, 1, "AT"), dict("CAT")), 5)
}

func TestScoreAppliesDictionaryWeight(t *testing.T) {
	is := is.New(t)
	ps := across(7, 6, "CAT")
	weighted := lexicon.NewWordList("weighted", map[string]int{"CAT": 3})
	is.Equal(Score(board.NewBoard(), ps, weighted), 15)

	zero := lexicon.NewWordList("zero", map[string]int{"CAT": 0})
	is.Equal(Score(board.NewBoard(), ps, zero), 0)
}

func TestScoreBlankIsWorthNothing(t *testing.T) {
	is := is.New(t)
	ps := across(7, 6, "CAT")
	ps[0] = Placement{Row: 7, Col: 6, Tile: tilemapping.Blank().Designate('c'), Blank: true}
	is.Equal(Score(board.NewBoard(), ps, dict("CAT")), 2)
	is.Equal(ps[0].RackTile(), tilemapping.Blank())
}

func TestScoreBingo(t *testing.T) {
	is := is.New(t)
	ps := across(7, 4, "ABILITY")
	d := dict("ABILITY")
	is.True(Validate(board.NewBoard(), ps, d, true).Valid)
	tally := TallyPlay(board.NewBoard(), ps, d, DefaultBingoBonus)
	is.True(tally.Bingo)
	is.Equal(tally.Total, 12+50)
	is.Equal(TallyPlay(board.NewBoard(), ps, d, 35).Total, 12+35)
}

func TestScoreIsStable(t *testing.T) {
	is := is.New(t)
	b := committed(t, across(7, 6, "CAT"))
	ps := across(8, 6, "AX")
	d := dict("CAT", "AX", "CA")
	want := Score(b, ps, d)
	for i := 0; i < 3; i++ {
		is.Equal(Score(b, ps, d), want)
	}
}

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	is.Equal(ShortDescription(across(7, 6, "CAT")), "8G CAT")
	down := []Placement{
		{Row: 8, Col: 7, Tile: tilemapping.Blank().Designate('x'), Blank: true},
		{Row: 7, Col: 7, Tile: tile('A')},
	}
	is.Equal(ShortDescription(down), "H8 Ax")
	is.Equal(Find(down, 7, 7), 1)
	is.Equal(Find(down, 0, 0), -1)
}
