package move

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/lexicon"
)

// Rejection reasons.
const (
	ReasonNoTiles       = "no tiles played"
	ReasonOffBoard      = "tile placed off the board"
	ReasonOccupied      = "tile placed on an occupied square"
	ReasonNotInLine     = "tiles must form a single line"
	ReasonGap           = "gap in placement"
	ReasonMissesCenter  = "first word must cover center"
	ReasonNotConnected  = "play must connect to existing tiles"
	ReasonNoWord        = "play must form a word of at least two letters"
	invalidWordTemplate = "%q is not a valid word"
)

// Validation is the outcome of Validate. Words holds every word the play
// forms, in checking order, when the play is valid.
type Validation struct {
	Valid  bool
	Reason string
	Words  []string
}

func invalid(reason string) Validation {
	return Validation{Reason: reason}
}

// Validate decides whether the placements form a legal play on b. The
// first failing rule decides the reason. Neither the board nor the
// placements are modified.
func Validate(b board.Board, ps []Placement, dict lexicon.Dictionary, firstMove bool) Validation {
	if len(ps) == 0 {
		return invalid(ReasonNoTiles)
	}
	seen := map[board.Position]bool{}
	for _, p := range ps {
		if !board.PosExists(p.Row, p.Col) {
			return invalid(ReasonOffBoard)
		}
		if b.HasLetter(p.Row, p.Col) || seen[p.Position()] {
			return invalid(ReasonOccupied)
		}
		seen[p.Position()] = true
	}

	dir, ok := playDirection(ps)
	if !ok {
		return invalid(ReasonNotInLine)
	}
	if hasGap(b, ps, dir) {
		return invalid(ReasonGap)
	}

	overlaid, err := Overlay(b, ps)
	if err != nil {
		// Unreachable: squares were checked above.
		return invalid(err.Error())
	}
	refs := board.TouchedWords(overlaid, Positions(ps))

	if firstMove {
		cr, cc := board.CenterSquare()
		if _, covers := seen[board.Position{Row: cr, Col: cc}]; !covers {
			return invalid(ReasonMissesCenter)
		}
	} else if !connects(b, ps, overlaid, refs) {
		return invalid(ReasonNotConnected)
	}

	if len(refs) == 0 {
		return invalid(ReasonNoWord)
	}

	words := make([]string, 0, len(refs))
	for _, ref := range refs {
		word := ref.Word(overlaid)
		if _, ok := dict.Multiplier(word); !ok {
			log.Debug().Str("word", word).Str("lexicon", dict.Name()).Msg("word-not-found")
			return invalid(fmt.Sprintf(invalidWordTemplate, lexicon.Normalize(word)))
		}
		words = append(words, word)
	}
	return Validation{Valid: true, Words: words}
}

// playDirection reports the shared axis of the placements. A single tile
// is treated as Across.
func playDirection(ps []Placement) (board.Direction, bool) {
	sameRow, sameCol := true, true
	for _, p := range ps[1:] {
		sameRow = sameRow && p.Row == ps[0].Row
		sameCol = sameCol && p.Col == ps[0].Col
	}
	switch {
	case sameRow:
		return board.Across, true
	case sameCol:
		return board.Down, true
	}
	return board.Across, false
}

// hasGap walks from the first to the last placement along dir; every square
// in between must be either placed this turn or already on the board.
func hasGap(b board.Board, ps []Placement, dir board.Direction) bool {
	coord := func(p board.Position) int {
		if dir == board.Down {
			return p.Row
		}
		return p.Col
	}
	pos := Positions(ps)
	slices.SortFunc(pos, func(a, b board.Position) int { return coord(a) - coord(b) })
	for i := 1; i < len(pos); i++ {
		for sq := pos[i-1].Next(dir, 1); sq != pos[i]; sq = sq.Next(dir, 1) {
			if !b.HasLetter(sq.Row, sq.Col) {
				return true
			}
		}
	}
	return false
}

// connects is true if any placed square borders a committed tile, or if any
// word the play forms runs through a committed tile.
func connects(b board.Board, ps []Placement, overlaid board.Board, refs []board.WordRef) bool {
	for _, p := range ps {
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			if b.HasLetter(p.Row+d[0], p.Col+d[1]) {
				return true
			}
		}
	}
	for _, ref := range refs {
		for _, sq := range ref.Squares(overlaid) {
			if b.HasLetter(sq.Row, sq.Col) {
				return true
			}
		}
	}
	return false
}
