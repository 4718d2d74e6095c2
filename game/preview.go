package game

import (
	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/move"
)

// A PreviewResult is the provisional outcome of a play that has not been
// submitted.
type PreviewResult struct {
	move.Validation
	Score int
	Bingo bool
}

// Preview validates and scores placements without changing anything. The
// score is 0 for an invalid play.
func Preview(b board.Board, ps []move.Placement, dict lexicon.Dictionary, firstMove bool,
	bingoBonus int) PreviewResult {

	res := PreviewResult{Validation: move.Validate(b, ps, dict, firstMove)}
	if res.Valid {
		t := move.TallyPlay(b, ps, dict, bingoBonus)
		res.Score, res.Bingo = t.Total, t.Bingo
	}
	return res
}

// PreviewScore previews the tiles placed so far this turn.
func (s *Session) PreviewScore() PreviewResult {
	return Preview(s.board, s.pending, s.dict, s.IsFirstMove(), s.rules.BingoBonus)
}
