package game

import (
	"slices"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/move"
	"github.com/friendlywords/friendlywords/tilemapping"
)

const (
	ActionReady           = "ready"
	ActionSelectCell      = "select"
	ActionPlaceTile       = "place"
	ActionPlaceLetter     = "type"
	ActionDesignateBlank  = "designate blank"
	ActionCancelBlank     = "cancel blank"
	ActionRetractLast     = "retract"
	ActionToggleExchange  = "exchange mode"
	ActionExchangeSelect  = "mark for exchange"
	ActionSubmit          = "submit"
	ActionPass            = "pass"
	reasonGameOver        = "the game is over"
	reasonNotReady        = "the turn has not started yet"
	reasonBlankOpen       = "choose a letter for the blank first"
	reasonExchangeMode    = "not allowed while exchanging"
	reasonNoSelection     = "no square selected"
	reasonCommittedSquare = "that square already holds a tile"
)

func (s *Session) reject(action, reason string) (*Session, error) {
	log.Debug().Str("action", action).Str("reason", reason).Msg("rejected")
	return s, &RejectionError{Action: action, Reason: reason}
}

// checkPlacing rejects an action that needs a started turn.
func (s *Session) checkPlacing(action string, allowExchange bool) error {
	reason := ""
	switch {
	case s.phase == GameOver:
		reason = reasonGameOver
	case s.phase != Placing:
		reason = reasonNotReady
	case s.blankRequest:
		reason = reasonBlankOpen
	case s.exchangeMode && !allowExchange:
		reason = reasonExchangeMode
	}
	if reason != "" {
		return &RejectionError{Action: action, Reason: reason}
	}
	return nil
}

func (s *Session) rejectErr(err error) (*Session, error) {
	log.Debug().Err(err).Msg("rejected")
	return s, err
}

// Ready starts the turn of the player on turn: their rack is filled up from
// the bag and they may start placing tiles.
func (s *Session) Ready() (*Session, error) {
	switch s.phase {
	case GameOver:
		return s.reject(ActionReady, reasonGameOver)
	case Placing:
		return s.reject(ActionReady, "the turn has already started")
	}
	n := s.clone()
	n.refill(n.onturn)
	n.phase = Placing
	log.Debug().Int("onturn", n.onturn).Str("rack", n.players[n.onturn].Rack.String()).
		Int("inbag", n.bag.TilesRemaining()).Msg("ready")
	return n, nil
}

// refill draws tiles until the player's rack is full or the bag is empty.
// It returns how many tiles were needed.
func (s *Session) refill(idx int) int {
	need := s.rules.RackSize - s.players[idx].Rack.NumTiles()
	var drawn []tilemapping.Tile
	drawn, s.bag = s.bag.Draw(need)
	s.players[idx].Rack = append(s.players[idx].Rack, drawn...)
	return need
}

// SelectCell moves the cursor to a square. Selecting the square that is
// already selected flips the play direction.
func (s *Session) SelectCell(row, col int) (*Session, error) {
	if err := s.checkPlacing(ActionSelectCell, false); err != nil {
		return s.rejectErr(err)
	}
	if !board.PosExists(row, col) {
		return s.reject(ActionSelectCell, "that square is off the board")
	}
	n := s.clone()
	pos := board.Position{Row: row, Col: col}
	switch {
	case n.hasSel && n.selected == pos:
		n.direction = n.direction.Opposite()
	case n.rules.DirectionPolicy == ResetDirection:
		n.direction = board.Across
	}
	n.selected, n.hasSel = pos, true
	log.Debug().Stringer("square", pos).Stringer("direction", n.direction).Msg("select")
	return n, nil
}

// PlaceTile puts the rack tile at idx on the selected square. An
// undesignated blank opens a blank request instead; DesignateBlank
// finishes the placement.
func (s *Session) PlaceTile(idx int) (*Session, error) {
	if err := s.checkPlacing(ActionPlaceTile, false); err != nil {
		return s.rejectErr(err)
	}
	if err := s.checkTarget(ActionPlaceTile); err != nil {
		return s.rejectErr(err)
	}
	rack := s.players[s.onturn].Rack
	if idx < 0 || idx >= rack.NumTiles() {
		return s.reject(ActionPlaceTile, "no tile at that rack position")
	}
	n := s.clone()
	if rack[idx].IsUndesignatedBlank() {
		n.blankRequest, n.blankIdx = true, idx
		log.Debug().Int("rackidx", idx).Msg("blank-request")
		return n, nil
	}
	n.place(idx, rack[idx], false)
	return n, nil
}

// PlaceLetter places the first rack tile showing letter. If there is none,
// a blank is used and designated as letter in the same step.
func (s *Session) PlaceLetter(letter rune) (*Session, error) {
	if err := s.checkPlacing(ActionPlaceLetter, false); err != nil {
		return s.rejectErr(err)
	}
	if !tilemapping.IsTileLetter(letter) {
		return s.reject(ActionPlaceLetter, "not a letter: "+string(letter))
	}
	if err := s.checkTarget(ActionPlaceLetter); err != nil {
		return s.rejectErr(err)
	}
	letter = unicode.ToUpper(letter)
	rack := s.players[s.onturn].Rack
	n := s.clone()
	if idx := rack.IndexOf(letter); idx >= 0 {
		n.place(idx, rack[idx], false)
		return n, nil
	}
	if idx := rack.IndexOf(tilemapping.BlankLetter); idx >= 0 {
		n.place(idx, rack[idx].Designate(letter), true)
		return n, nil
	}
	return s.reject(ActionPlaceLetter, "no "+string(letter)+" on your rack")
}

// DesignateBlank gives the requested blank a letter and places it.
func (s *Session) DesignateBlank(letter rune) (*Session, error) {
	if s.phase != Placing || !s.blankRequest {
		return s.reject(ActionDesignateBlank, "no blank is waiting for a letter")
	}
	if !tilemapping.IsTileLetter(letter) {
		return s.reject(ActionDesignateBlank, "a blank must be designated as a letter from A to Z")
	}
	n := s.clone()
	n.blankRequest = false
	idx := n.blankIdx
	n.place(idx, n.players[n.onturn].Rack[idx].Designate(letter), true)
	return n, nil
}

// CancelBlankDesignation drops the blank request. The blank stays on the
// rack.
func (s *Session) CancelBlankDesignation() (*Session, error) {
	if s.phase != Placing || !s.blankRequest {
		return s.reject(ActionCancelBlank, "no blank is waiting for a letter")
	}
	n := s.clone()
	n.blankRequest, n.blankIdx = false, 0
	return n, nil
}

// checkTarget rejects placement when nothing is selected or the selected
// square holds a committed tile.
func (s *Session) checkTarget(action string) error {
	if !s.hasSel {
		return &RejectionError{Action: action, Reason: reasonNoSelection}
	}
	if s.board.HasLetter(s.selected.Row, s.selected.Col) {
		return &RejectionError{Action: action, Reason: reasonCommittedSquare}
	}
	return nil
}

// place moves the rack tile at idx onto the selected square as t, then
// advances the cursor. A tile already placed on that square this turn goes
// back to the rack first.
func (s *Session) place(idx int, t tilemapping.Tile, blank bool) {
	p := s.players[s.onturn]
	_, rack, _ := p.Rack.RemoveAt(idx)
	if prev := move.Find(s.pending, s.selected.Row, s.selected.Col); prev >= 0 {
		rack = append(rack, s.pending[prev].RackTile())
		s.pending = slices.Delete(s.pending, prev, prev+1)
	}
	s.players[s.onturn].Rack = rack
	s.pending = append(s.pending, move.Placement{
		Row: s.selected.Row, Col: s.selected.Col, Tile: t, Blank: blank})
	log.Debug().Stringer("square", s.selected).Str("tile", t.String()).Bool("blank", blank).
		Msg("place")
	s.advance()
}

// occupied is true for squares with a committed or a pending tile.
func (s *Session) occupied(p board.Position) bool {
	return s.board.HasLetter(p.Row, p.Col) || move.Find(s.pending, p.Row, p.Col) >= 0
}

// advance moves the selection forward to the next free square along the
// play direction, or clears it at the edge of the board.
func (s *Session) advance() {
	for p := s.selected.Next(s.direction, 1); board.PosExists(p.Row, p.Col); p = p.Next(s.direction, 1) {
		if !s.occupied(p) {
			s.selected = p
			return
		}
	}
	s.hasSel = false
}

// RetractLast works like backspace. A tile placed this turn on the selected
// square goes back to the rack. The selection then moves back to the
// previous square that is not covered by a committed tile.
func (s *Session) RetractLast() (*Session, error) {
	if err := s.checkPlacing(ActionRetractLast, false); err != nil {
		return s.rejectErr(err)
	}
	if !s.hasSel {
		return s.reject(ActionRetractLast, reasonNoSelection)
	}
	n := s.clone()
	if i := move.Find(n.pending, n.selected.Row, n.selected.Col); i >= 0 {
		t := n.pending[i].RackTile()
		n.pending = slices.Delete(n.pending, i, i+1)
		n.players[n.onturn].Rack = append(n.players[n.onturn].Rack, t)
		log.Debug().Stringer("square", n.selected).Str("tile", t.String()).Msg("retract")
	}
	n.hasSel = false
	for p := n.selected.Next(n.direction, -1); board.PosExists(p.Row, p.Col); p = p.Next(n.direction, -1) {
		if !n.board.HasLetter(p.Row, p.Col) {
			n.selected, n.hasSel = p, true
			break
		}
	}
	return n, nil
}

// returnPending puts every pending tile back on the rack.
func (s *Session) returnPending() {
	for _, p := range s.pending {
		s.players[s.onturn].Rack = append(s.players[s.onturn].Rack, p.RackTile())
	}
	s.pending = nil
}

// ToggleExchangeMode switches between placing tiles and choosing tiles to
// exchange. Entering exchange mode returns pending tiles to the rack;
// leaving it drops the exchange selection.
func (s *Session) ToggleExchangeMode() (*Session, error) {
	if err := s.checkPlacing(ActionToggleExchange, true); err != nil {
		return s.rejectErr(err)
	}
	n := s.clone()
	n.exchangeMode = !n.exchangeMode
	n.exchangeSel = nil
	if n.exchangeMode {
		n.returnPending()
	}
	log.Debug().Bool("exchange", n.exchangeMode).Msg("toggle-exchange-mode")
	return n, nil
}

// ToggleExchangeSelection marks or unmarks a rack tile for exchange.
func (s *Session) ToggleExchangeSelection(idx int) (*Session, error) {
	if err := s.checkPlacing(ActionExchangeSelect, true); err != nil {
		return s.rejectErr(err)
	}
	if !s.exchangeMode {
		return s.reject(ActionExchangeSelect, "not in exchange mode")
	}
	if idx < 0 || idx >= s.players[s.onturn].Rack.NumTiles() {
		return s.reject(ActionExchangeSelect, "no tile at that rack position")
	}
	n := s.clone()
	if lo.Contains(n.exchangeSel, idx) {
		n.exchangeSel = lo.Without(n.exchangeSel, idx)
	} else {
		n.exchangeSel = append(n.exchangeSel, idx)
	}
	return n, nil
}

// Pass ends the turn without scoring. Pending tiles go back to the rack.
func (s *Session) Pass() (*Session, error) {
	if err := s.checkPlacing(ActionPass, true); err != nil {
		return s.rejectErr(err)
	}
	n := s.clone()
	n.returnPending()
	rack := n.players[n.onturn].Rack.String()
	n.addEvent(Event{Type: move.MoveTypePass, Rack: rack})
	n.scorelessTurns++
	log.Info().Str("player", n.NickOnTurn()).Msg("pass")
	n.endTurn()
	return n, nil
}

// Submit commits the turn: either the marked exchange, or the pending play
// after validating and scoring it.
func (s *Session) Submit() (*Session, error) {
	if err := s.checkPlacing(ActionSubmit, true); err != nil {
		return s.rejectErr(err)
	}
	if s.exchangeMode {
		return s.submitExchange()
	}
	return s.submitPlay()
}

func (s *Session) submitExchange() (*Session, error) {
	if len(s.exchangeSel) == 0 {
		return s.reject(ActionSubmit, "no tiles marked for exchange")
	}
	n := s.clone()
	p := &n.players[n.onturn]
	before := p.Rack.String()
	taken, kept := p.Rack.Split(n.exchangeSel)
	if len(taken) > n.bag.TilesRemaining() {
		log.Warn().Int("exchanging", len(taken)).Int("inbag", n.bag.TilesRemaining()).
			Msg("exchange-larger-than-bag")
	}
	var drawn []tilemapping.Tile
	drawn, n.bag = n.bag.Draw(len(taken))
	n.bag = n.bag.Exchange(taken, n.rng)
	p.Rack = append(kept, drawn...)

	n.addEvent(Event{Type: move.MoveTypeExchange, Rack: before,
		Exchanged: tilemapping.UserVisible(taken)})
	n.scorelessTurns++
	log.Info().Str("player", p.Name).Int("exchanged", len(taken)).Int("drew", len(drawn)).
		Msg("exchange")
	n.endTurn()
	return n, nil
}

func (s *Session) submitPlay() (*Session, error) {
	v := move.Validate(s.board, s.pending, s.dict, s.IsFirstMove())
	if !v.Valid {
		return s.reject(ActionSubmit, v.Reason)
	}
	tally := move.TallyPlay(s.board, s.pending, s.dict, s.rules.BingoBonus)
	nb, err := s.board.WithTiles(move.Positioned(s.pending, s.onturn))
	if err != nil {
		// Validation already rules this out.
		return s.reject(ActionSubmit, err.Error())
	}

	n := s.clone()
	p := &n.players[n.onturn]
	rackBefore := tilemapping.UserVisible(append(p.Rack.Copy(), lo.Map(n.pending,
		func(pl move.Placement, _ int) tilemapping.Tile { return pl.RackTile() })...))
	p.Score += tally.Total
	n.board = nb
	played := n.pending
	n.pending = nil

	need := n.refill(n.onturn)
	n.addEvent(Event{
		Type:       move.MoveTypePlay,
		Position:   move.ShortDescription(played),
		Rack:       rackBefore,
		Words:      v.Words,
		Score:      tally.Total,
		Bingo:      tally.Bingo,
		Placements: played,
	})
	log.Info().Str("player", p.Name).Str("play", move.ShortDescription(played)).
		Int("score", tally.Total).Int("total", p.Score).Msg("play")

	if tally.Total != 0 {
		n.scorelessTurns = 0
	} else {
		n.scorelessTurns++
	}
	if need == n.rules.RackSize && n.bag.TilesRemaining() == 0 {
		n.settleEndgame(n.onturn)
		return n, nil
	}
	n.endTurn()
	return n, nil
}

// endTurn passes play to the next player, unless too many scoreless turns
// have gone by.
func (s *Session) endTurn() {
	s.pending = nil
	s.hasSel = false
	s.direction = board.Across
	s.exchangeMode = false
	s.exchangeSel = nil
	s.blankRequest = false

	if lim := s.rules.ScorelessTurnLimit; lim > 0 && s.scorelessTurns >= lim {
		s.settleScoreless()
		return
	}
	s.onturn = (s.onturn + 1) % len(s.players)
	s.turnnum++
	s.phase = AwaitingReady
	log.Debug().Int("onturn", s.onturn).Int("turn", s.turnnum).Msg("next-turn")
}
