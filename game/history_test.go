package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/friendlywords/friendlywords/move"
)

func playCat(t *testing.T) *Session {
	t.Helper()
	must := mustFn(t)
	s := controlled(t, words("CAT"), "CATDOGS", "EEEEEEE", "EEE")
	s = must(s.SelectCell(7, 6))
	for _, l := range "CAT" {
		s = must(s.PlaceLetter(l))
	}
	return must(s.Submit())
}

func TestHistoryYAML(t *testing.T) {
	is := is.New(t)
	s := playCat(t)
	h := s.History()
	is.Equal(h.Players, []string{"Alice", "Bob"})
	is.Equal(h.Lexicon, "test")
	is.Equal(len(h.Final), 0)

	out, err := h.ToYAML()
	is.NoErr(err)
	is.True(strings.Contains(string(out), "type: play"))
	is.True(strings.Contains(string(out), "- CAT"))

	back, err := HistoryFromYAML(out)
	is.NoErr(err)
	is.Equal(back.ID, s.ID())
	is.Equal(len(back.Events), 1)
	is.Equal(back.Events[0].Type, move.MoveTypePlay)
	is.Equal(back.Events[0].Score, 5)
	is.Equal(back.Events[0].Placements, h.Events[0].Placements)

	_, err = HistoryFromYAML([]byte("events:\n  - type: teleport\n"))
	is.True(err != nil)
}

func TestEventFingerprintTracksBoard(t *testing.T) {
	is := is.New(t)
	s := playCat(t)
	evt := s.Events()[0]
	is.True(evt.Fingerprint != "")
	is.True(evt.Fingerprint != strings.Repeat("0", 16))

	s = mustFn(t)(s.Ready())
	s = mustFn(t)(s.Pass())
	// a pass leaves the board alone
	is.Equal(s.Events()[1].Fingerprint, evt.Fingerprint)
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	s := playCat(t)
	is.Equal(s.Events()[0].Summary(), "Alice played 8G CAT for 5 pts from a rack of DOGSCAT (CAT)")
	is.Equal(Event{Nickname: "Bob", Type: move.MoveTypeExchange, Exchanged: "QV", Rack: "AEQVXYZ"}.Summary(),
		"Bob exchanged QV from a rack of AEQVXYZ")
	is.Equal(Event{Nickname: "Bob", Type: move.MoveTypeLostTileScore, LostScore: 6}.Summary(),
		"Bob lost 6 from their rack")
}
