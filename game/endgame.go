package game

import (
	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/move"
)

// settleEndgame ends the game after winner went out with an empty bag. The
// winner gains the value of every tile left on the other racks, and each
// other player loses the value of their own rack.
func (s *Session) settleEndgame(winner int) {
	unplayed := 0
	for i := range s.players {
		if i == winner {
			continue
		}
		pts := s.players[i].Rack.ScoreOn()
		unplayed += pts
		s.players[i].Score -= pts
		s.addEventFor(i, Event{Type: move.MoveTypeLostTileScore,
			Rack: s.players[i].Rack.String(), LostScore: pts})
	}
	s.players[winner].Score += unplayed
	s.addEventFor(winner, Event{Type: move.MoveTypeEndgameTiles, EndRackPoints: unplayed})
	log.Debug().Int("onturn", winner).Int("unplayedpts", unplayed).Msg("endOfGameCalcs")
	s.gameOver()
}

// settleScoreless ends the game after too many scoreless turns. Everyone
// loses the value of their own rack.
func (s *Session) settleScoreless() {
	for i := range s.players {
		pts := s.players[i].Rack.ScoreOn()
		s.players[i].Score -= pts
		s.addEventFor(i, Event{Type: move.MoveTypeLostTileScore,
			Rack: s.players[i].Rack.String(), LostScore: pts})
	}
	log.Debug().Int("scoreless", s.scorelessTurns).Msg("scoreless-turn-limit")
	s.gameOver()
}

func (s *Session) gameOver() {
	s.phase = GameOver
	s.hasSel = false
	s.exchangeMode = false
	s.exchangeSel = nil
	s.blankRequest = false
	log.Info().Str("id", s.id).Interface("scores", s.Scores()).Msg("game-over")
}

// Scores lists every player's score in seating order.
func (s *Session) Scores() []int {
	scores := make([]int, len(s.players))
	for i, p := range s.players {
		scores[i] = p.Score
	}
	return scores
}

// Winners returns the indexes of the players with the highest score.
func (s *Session) Winners() []int {
	var best []int
	for i, p := range s.players {
		switch {
		case len(best) == 0 || p.Score > s.players[best[0]].Score:
			best = []int{i}
		case p.Score == s.players[best[0]].Score:
			best = append(best, i)
		}
	}
	return best
}
