package move

import (
	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/tilemapping"
)

// DefaultBingoBonus is awarded once when a play uses a full rack.
const DefaultBingoBonus = 50

// WordScore is the contribution of one word to a play.
type WordScore struct {
	Word           string          `yaml:"word"`
	Direction      board.Direction `yaml:"-"`
	Start          board.Position  `yaml:"start"`
	Positional     int             `yaml:"positional"`
	WordMultiplier int             `yaml:"word_multiplier"`
	Weight         int             `yaml:"weight"`
	Score          int             `yaml:"score"`
}

// Tally is the breakdown of a play's score.
type Tally struct {
	Words []WordScore
	Bingo bool
	Total int
}

// Score computes the score of a play that has already been validated,
// with the standard bingo bonus.
func Score(b board.Board, ps []Placement, dict lexicon.Dictionary) int {
	return TallyPlay(b, ps, dict, DefaultBingoBonus).Total
}

// TallyPlay scores every word touched by the placements. Newly placed tiles
// take the letter and word premiums of their squares; tiles already on the
// board count at face value. Each word's positional score is multiplied by
// its dictionary weight. A word missing from the dictionary has weight 0.
func TallyPlay(b board.Board, ps []Placement, dict lexicon.Dictionary, bingoBonus int) Tally {
	overlaid, err := Overlay(b, ps)
	if err != nil {
		return Tally{}
	}
	placed := map[board.Position]bool{}
	for _, p := range ps {
		placed[p.Position()] = true
	}

	var t Tally
	for _, ref := range board.TouchedWords(overlaid, Positions(ps)) {
		ws := scoreWord(overlaid, ref, placed)
		ws.Weight, _ = dict.Multiplier(ws.Word)
		ws.Score = ws.Positional * ws.Weight
		t.Words = append(t.Words, ws)
		t.Total += ws.Score
	}
	if len(ps) == tilemapping.RackTileLimit {
		t.Bingo = true
		t.Total += bingoBonus
	}
	return t
}

func scoreWord(b board.Board, ref board.WordRef, placed map[board.Position]bool) WordScore {
	ws := WordScore{Direction: ref.Direction, Start: ref.Start, WordMultiplier: 1}
	letters := make([]rune, 0, board.BoardDim)
	sum := 0
	for _, sq := range ref.Squares(b) {
		tile, _ := b.Get(sq.Row, sq.Col)
		letters = append(letters, tile.Letter)
		if placed[sq] {
			bonus := board.BonusAt(sq.Row, sq.Col)
			sum += tile.Value * bonus.LetterMultiplier()
			ws.WordMultiplier *= bonus.WordMultiplier()
		} else {
			sum += tile.Value
		}
	}
	ws.Word = string(letters)
	ws.Positional = sum * ws.WordMultiplier
	return ws
}
