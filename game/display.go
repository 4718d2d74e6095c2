package game

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/move"
	"github.com/friendlywords/friendlywords/tilemapping"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// ToDisplayText turns the current state of the game into a displayable
// string. Tiles placed this turn are shown in lower case.
func (s *Session) ToDisplayText() string {
	bt := s.board.ToDisplayText(move.Positioned(s.pending, s.onturn)...)
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	log.Debug().Int("onturn", s.onturn).Msg("todisplaytext")
	for pi := range s.players {
		addText(bts, vpadding+pi, hpadding,
			s.players[pi].stateString(s.phase == Placing && s.onturn == pi))
	}

	inbag := s.bag.Peek()
	slices.SortFunc(inbag, func(a, b tilemapping.Tile) int { return int(a.Letter) - int(b.Letter) })
	addText(bts, vpadding+5, hpadding, fmt.Sprintf("Bag: (%d)", len(inbag)))

	vpadding = 7
	bagDisp := []string{}
	cCtr := 0
	bagStr := ""
	for i := 0; i < len(inbag); i++ {
		bagStr += inbag[i].String() + " "
		cCtr++
		if cCtr == bagColCount {
			bagDisp = append(bagDisp, bagStr)
			bagStr = ""
			cCtr = 0
		}
	}
	if bagStr != "" {
		bagDisp = append(bagDisp, bagStr)
	}
	for p := vpadding; p < vpadding+len(bagDisp); p++ {
		addText(bts, p, hpadding, bagDisp[p-vpadding])
	}

	addText(bts, 13, hpadding, fmt.Sprintf("Turn %d: %s", s.turnnum, s.statusLine()))

	if len(s.history) > 0 {
		addText(bts, 14, hpadding, summary(s.history[len(s.history)-1]))
	}

	if s.phase == GameOver {
		addText(bts, 17, hpadding, "Game is over.")
	}

	return strings.Join(bts, "\n")
}

func (s *Session) statusLine() string {
	switch {
	case s.phase == GameOver:
		return "final"
	case s.phase == AwaitingReady:
		return s.NickOnTurn() + " to get ready"
	case s.blankRequest:
		return "choose a letter for the blank"
	case s.exchangeMode:
		var marked []tilemapping.Tile
		for _, i := range s.exchangeSel {
			marked = append(marked, s.players[s.onturn].Rack[i])
		}
		return "exchanging [" + tilemapping.UserVisible(marked) + "]"
	case s.hasSel:
		return fmt.Sprintf("%s at %s",
			s.direction, board.ToBoardGameCoords(s.selected.Row, s.selected.Col, s.direction))
	}
	return "no square selected"
}
