package board

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	ColorSupport = os.Getenv("FRIENDLYWORDS_DISABLE_COLOR") != "on"
)

var reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
var reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)

func (k BonusKind) displayString() string {
	var ch string
	var color string
	switch k {
	case TripleWord:
		ch, color = string(Bonus3WS), "31"
	case DoubleWord:
		ch, color = string(Bonus2WS), "35"
	case TripleLetter:
		ch, color = string(Bonus3LS), "34"
	case DoubleLetter:
		ch, color = string(Bonus2LS), "36"
	case Center:
		ch, color = string(BonusCenter), "33"
	default:
		return " "
	}
	if !ColorSupport {
		return ch
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", color, ch)
}

// ToDisplayText renders the board. Overlay tiles, if given, are drawn in
// lower case so they stand out from committed tiles.
func (b Board) ToDisplayText(overlay ...PositionedTile) string {
	pending := map[Position]rune{}
	for _, t := range overlay {
		pending[t.Position] = unicode.ToLower(t.Letter)
	}
	var str strings.Builder
	n := b.Dim()
	str.WriteString("   ")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			if l, ok := pending[Position{i, j}]; ok {
				str.WriteRune(l)
			} else if t, ok := b.Get(i, j); ok {
				str.WriteRune(t.Letter)
			} else {
				str.WriteString(BonusAt(i, j).displayString())
			}
			str.WriteString(" ")
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

// ToBoardGameCoords turns a 0-based row and column into coordinates such as
// 8H (across) or H8 (down).
func ToBoardGameCoords(row int, col int, dir Direction) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if dir == Down {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (Position, Direction, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[2])
		return checkCoords(c, Position{row - 1, int(m[1][0] - 'A')}, Down)
	}
	if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[1])
		return checkCoords(c, Position{row - 1, int(m[2][0] - 'A')}, Across)
	}
	return Position{}, Across, fmt.Errorf("%q is not a board coordinate", c)
}

func checkCoords(c string, p Position, d Direction) (Position, Direction, error) {
	if !PosExists(p.Row, p.Col) {
		return Position{}, Across, fmt.Errorf("%q is off the board", c)
	}
	return p, d, nil
}
