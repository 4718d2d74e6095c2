package board

import "fmt"

// BoardDim is the width and height of the board.
const BoardDim = 15

// A BonusSquare is the layout character for a premium square.
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// BonusCenter is the starting square. It has no multiplier.
	BonusCenter BonusSquare = '*'
)

// BonusKind classifies a square for scoring.
type BonusKind int

const (
	NoBonus BonusKind = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	Center
)

func (k BonusKind) String() string {
	switch k {
	case DoubleLetter:
		return "DL"
	case TripleLetter:
		return "TL"
	case DoubleWord:
		return "DW"
	case TripleWord:
		return "TW"
	case Center:
		return "center"
	}
	return "none"
}

// LetterMultiplier is the factor applied to a newly placed tile's value.
func (k BonusKind) LetterMultiplier() int {
	switch k {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

// WordMultiplier is the factor a newly placed tile applies to its word.
// The center square is deliberately not a double word score.
func (k BonusKind) WordMultiplier() int {
	switch k {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
// of wingos and blonks.
var CrosswordGameBoard = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

var bonusLayout = mustParseLayout(CrosswordGameBoard)

func mustParseLayout(desc []string) [BoardDim][BoardDim]BonusKind {
	var layout [BoardDim][BoardDim]BonusKind
	if len(desc) != BoardDim {
		panic(fmt.Sprintf("layout has %d rows, want %d", len(desc), BoardDim))
	}
	for r, s := range desc {
		row := []rune(s)
		if len(row) != BoardDim {
			panic(fmt.Sprintf("layout row %d has %d squares, want %d", r, len(row), BoardDim))
		}
		for c, ch := range row {
			switch BonusSquare(ch) {
			case Bonus3WS:
				layout[r][c] = TripleWord
			case Bonus2WS:
				layout[r][c] = DoubleWord
			case Bonus3LS:
				layout[r][c] = TripleLetter
			case Bonus2LS:
				layout[r][c] = DoubleLetter
			case BonusCenter:
				layout[r][c] = Center
			case ' ':
				layout[r][c] = NoBonus
			default:
				panic(fmt.Sprintf("unknown bonus square %q", ch))
			}
		}
	}
	return layout
}

// CenterSquare is the row and column of the starting square.
func CenterSquare() (int, int) {
	return BoardDim / 2, BoardDim / 2
}

// BonusAt returns the premium classification of a square. Squares off the
// board have no bonus.
func BonusAt(row, col int) BonusKind {
	if !PosExists(row, col) {
		return NoBonus
	}
	return bonusLayout[row][col]
}

// PosExists is true if row, col is on the board.
func PosExists(row, col int) bool {
	return row >= 0 && row < BoardDim && col >= 0 && col < BoardDim
}
