package board

import (
	"strings"

	"github.com/samber/lo"
)

// WordRef identifies a word on the board by its axis and first square.
type WordRef struct {
	Direction Direction
	Start     Position
}

// WordStart walks backwards from row, col along dir while the squares are
// occupied, and returns the first square of the word.
func WordStart(b Board, row, col int, dir Direction) Position {
	p := Position{row, col}
	for {
		prev := p.Next(dir, -1)
		if !b.HasLetter(prev.Row, prev.Col) {
			return p
		}
		p = prev
	}
}

// WordSquares returns the squares of the word running through row, col
// along dir. If the square itself is empty the result is empty.
func WordSquares(b Board, row, col int, dir Direction) []Position {
	if !b.HasLetter(row, col) {
		return nil
	}
	var squares []Position
	for p := WordStart(b, row, col, dir); b.HasLetter(p.Row, p.Col); p = p.Next(dir, 1) {
		squares = append(squares, p)
	}
	return squares
}

// ExtractWord returns the letters of the word running through row, col
// along dir. A result of length 1 means there is no word on that axis.
func ExtractWord(b Board, row, col int, dir Direction) string {
	var sb strings.Builder
	for _, p := range WordSquares(b, row, col, dir) {
		t, _ := b.Get(p.Row, p.Col)
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Word returns the letters of a referenced word.
func (w WordRef) Word(b Board) string {
	return ExtractWord(b, w.Start.Row, w.Start.Col, w.Direction)
}

// Squares returns the squares of a referenced word.
func (w WordRef) Squares(b Board) []Position {
	return WordSquares(b, w.Start.Row, w.Start.Col, w.Direction)
}

// TouchedWords enumerates the unique words of two or more letters that run
// through any of the given squares. The board must already hold tiles on
// those squares. Order is by input square, across before down.
func TouchedWords(b Board, squares []Position) []WordRef {
	var refs []WordRef
	for _, sq := range squares {
		for _, dir := range []Direction{Across, Down} {
			if len(WordSquares(b, sq.Row, sq.Col, dir)) < 2 {
				continue
			}
			refs = append(refs, WordRef{Direction: dir, Start: WordStart(b, sq.Row, sq.Col, dir)})
		}
	}
	return lo.Uniq(refs)
}
