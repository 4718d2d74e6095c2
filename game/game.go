// Package game implements the turn state machine of a Friendly Words game.
//
// A Session is an immutable snapshot. Every action is a method that returns
// a new Session; the receiver is never modified. When an action is
// rejected the receiver itself is returned together with a
// *RejectionError that carries the reason to show the player.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/move"
	"github.com/friendlywords/friendlywords/tilemapping"
)

// Phase is the coarse state of the turn state machine.
type Phase uint8

const (
	AwaitingReady Phase = iota
	Placing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingReady:
		return "awaiting-ready"
	case Placing:
		return "placing"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// ErrTileCount is returned when tiles have appeared or disappeared.
var ErrTileCount = tilemapping.ErrTileCount

// RejectionError is returned by an action that is not allowed in the
// current state. The session it came from is unchanged.
type RejectionError struct {
	Action string
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

// Session is a game in progress.
type Session struct {
	id    string
	rules Rules
	dict  lexicon.Dictionary
	dist  *tilemapping.LetterDistribution
	rng   tilemapping.Randomizer

	players players
	onturn  int
	board   board.Board
	bag     tilemapping.Bag
	phase   Phase
	turnnum int

	pending   []move.Placement
	direction board.Direction
	selected  board.Position
	hasSel    bool

	exchangeMode bool
	exchangeSel  []int

	blankRequest bool
	blankIdx     int

	scorelessTurns int
	history        []Event
}

// New starts a game for the named players. The starting player is chosen
// at random and the game waits for them to get ready.
func New(names []string, dict lexicon.Dictionary, rules Rules, rng tilemapping.Randomizer) (*Session, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, fmt.Errorf("%w (got %d)", ErrPlayerCount, len(names))
	}
	if dict == nil {
		return nil, errors.New("a dictionary is required")
	}
	if rng == nil {
		rng = tilemapping.NewRandomizer()
	}
	if rules.DirectionPolicy == "" {
		rules.DirectionPolicy = PersistDirection
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	dist := tilemapping.EnglishLetterDistribution()
	if err := dist.CheckTileCount(tilemapping.StandardTileCount); err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	ps := make(players, len(names))
	for i, n := range names {
		ps[i] = Player{Name: n}
	}
	s := &Session{
		id:      uuid.NewString(),
		rules:   rules,
		dict:    dict,
		dist:    dist,
		rng:     rng,
		players: ps,
		board:   board.NewBoard(),
		bag:     tilemapping.NewBag(dist, rng),
		phase:   AwaitingReady,
		turnnum: 1,
	}
	s.onturn = rng.Intn(len(ps))
	log.Debug().Str("id", s.id).Int("onturn", s.onturn).Str("lexicon", dict.Name()).
		Msg("new-game")
	return s, nil
}

// clone returns a deep copy that can be changed without affecting s.
func (s *Session) clone() *Session {
	c := *s
	c.players = s.players.copy()
	c.pending = slices.Clone(s.pending)
	c.exchangeSel = slices.Clone(s.exchangeSel)
	c.history = slices.Clone(s.history)
	return &c
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Rules() Rules {
	return s.rules
}

func (s *Session) Lexicon() lexicon.Dictionary {
	return s.dict
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Board() board.Board {
	return s.board
}

func (s *Session) Bag() tilemapping.Bag {
	return s.bag
}

// Turn is the 1-based number of the current turn.
func (s *Session) Turn() int {
	return s.turnnum
}

func (s *Session) NumPlayers() int {
	return len(s.players)
}

func (s *Session) PlayerOnTurn() int {
	return s.onturn
}

func (s *Session) NickOnTurn() string {
	return s.players[s.onturn].Name
}

// Players returns a copy of every player.
func (s *Session) Players() []Player {
	return s.players.copy()
}

// Player returns a copy of one player.
func (s *Session) Player(idx int) Player {
	return s.players[idx].copy()
}

func (s *Session) PointsFor(idx int) int {
	return s.players[idx].Score
}

// RackFor returns a copy of a player's rack.
func (s *Session) RackFor(idx int) tilemapping.Rack {
	return s.players[idx].Rack.Copy()
}

// Pending returns the tiles placed this turn, in the order they were put
// down.
func (s *Session) Pending() []move.Placement {
	return slices.Clone(s.pending)
}

func (s *Session) Direction() board.Direction {
	return s.direction
}

// Selected returns the selected square, if there is one.
func (s *Session) Selected() (board.Position, bool) {
	return s.selected, s.hasSel
}

func (s *Session) ExchangeMode() bool {
	return s.exchangeMode
}

// ExchangeSelection returns the rack indexes marked for exchange.
func (s *Session) ExchangeSelection() []int {
	return slices.Clone(s.exchangeSel)
}

// BlankRequest reports whether a blank is waiting for a letter, and which
// rack index it is.
func (s *Session) BlankRequest() (int, bool) {
	return s.blankIdx, s.blankRequest
}

func (s *Session) ScorelessTurns() int {
	return s.scorelessTurns
}

// IsFirstMove is true until a play has been committed to the board.
func (s *Session) IsFirstMove() bool {
	return s.board.IsEmpty()
}

// CheckInvariants verifies that no tile has been created or lost.
func (s *Session) CheckInvariants() error {
	total := s.bag.TilesRemaining() + s.players.tilesOnRacks() + s.board.TilesPlayed() + len(s.pending)
	if want := s.dist.NumTotalTiles(); total != want {
		return fmt.Errorf("%w: bag %d, racks %d, board %d, pending %d; want %d in total",
			ErrTileCount, s.bag.TilesRemaining(), s.players.tilesOnRacks(),
			s.board.TilesPlayed(), len(s.pending), want)
	}
	for i, p := range s.players {
		if p.Rack.NumTiles() > s.rules.RackSize {
			return fmt.Errorf("%w: player %d holds %d tiles", ErrTileCount, i, p.Rack.NumTiles())
		}
	}
	return nil
}
