package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/friendlywords/friendlywords/move"
)

// An Event is one entry in the game record.
type Event struct {
	Turn          int              `yaml:"turn"`
	PlayerIndex   int              `yaml:"player_index"`
	Nickname      string           `yaml:"nickname"`
	Type          move.MoveType    `yaml:"type"`
	Rack          string           `yaml:"rack,omitempty"`
	Position      string           `yaml:"position,omitempty"`
	Placements    []move.Placement `yaml:"placements,omitempty"`
	Words         []string         `yaml:"words,omitempty"`
	Score         int              `yaml:"score"`
	Bingo         bool             `yaml:"bingo,omitempty"`
	Exchanged     string           `yaml:"exchanged,omitempty"`
	EndRackPoints int              `yaml:"end_rack_points,omitempty"`
	LostScore     int              `yaml:"lost_score,omitempty"`
	Cumulative    int              `yaml:"cumulative"`
	Fingerprint   string           `yaml:"board_fingerprint"`
}

// History is the full record of a game.
type History struct {
	ID      string   `yaml:"id"`
	Lexicon string   `yaml:"lexicon"`
	Players []string `yaml:"players"`
	Events  []Event  `yaml:"events"`
	Final   []int    `yaml:"final_scores,omitempty"`
}

func (s *Session) addEvent(evt Event) {
	s.addEventFor(s.onturn, evt)
}

// addEventFor stamps the event with the player, turn, and board state.
// Scores must already include the event.
func (s *Session) addEventFor(idx int, evt Event) {
	evt.Turn = s.turnnum
	evt.PlayerIndex = idx
	evt.Nickname = s.players[idx].Name
	evt.Cumulative = s.players[idx].Score
	evt.Fingerprint = fmt.Sprintf("%016x", s.board.Fingerprint())
	s.history = append(s.history, evt)
}

// Events returns the game record so far.
func (s *Session) Events() []Event {
	return append([]Event(nil), s.history...)
}

// History returns the game record together with the game details.
func (s *Session) History() History {
	h := History{
		ID:      s.id,
		Lexicon: s.dict.Name(),
		Events:  s.Events(),
	}
	for _, p := range s.players {
		h.Players = append(h.Players, p.Name)
	}
	if s.phase == GameOver {
		h.Final = s.Scores()
	}
	return h
}

// ToYAML serializes the history.
func (h History) ToYAML() ([]byte, error) {
	return yaml.Marshal(h)
}

// HistoryFromYAML reads a history written by ToYAML.
func HistoryFromYAML(data []byte) (History, error) {
	var h History
	err := yaml.Unmarshal(data, &h)
	return h, err
}

func summary(evt Event) string {
	summary := ""
	who := evt.Nickname

	switch evt.Type {
	case move.MoveTypePlay:
		summary = fmt.Sprintf("%s played %s for %d pts from a rack of %s",
			who, evt.Position, evt.Score, evt.Rack)
		if len(evt.Words) > 0 {
			summary += fmt.Sprintf(" (%s)", strings.Join(evt.Words, ", "))
		}
		if evt.Bingo {
			summary += " bingo!"
		}

	case move.MoveTypePass:
		summary = fmt.Sprintf("%s passed, holding a rack of %s",
			who, evt.Rack)

	case move.MoveTypeExchange:
		summary = fmt.Sprintf("%s exchanged %s from a rack of %s",
			who, evt.Exchanged, evt.Rack)

	case move.MoveTypeEndgameTiles:
		summary = fmt.Sprintf("%s gained %d from other racks", who, evt.EndRackPoints)

	case move.MoveTypeLostTileScore:
		summary = fmt.Sprintf("%s lost %d from their rack", who, evt.LostScore)
	}
	return summary
}

// Summary describes an event in one line.
func (evt Event) Summary() string {
	return summary(evt)
}
