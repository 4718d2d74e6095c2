package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/tilemapping"
)

var english = tilemapping.EnglishLetterDistribution()

func tiles(s string) tilemapping.Rack {
	var r tilemapping.Rack
	for _, l := range s {
		if l == tilemapping.BlankLetter {
			r = append(r, tilemapping.Blank())
			continue
		}
		r = append(r, tilemapping.Tile{Letter: l, Value: english.Score(l)})
	}
	return r
}

func words(ws ...string) lexicon.Dictionary {
	m := map[string]int{}
	for _, w := range ws {
		m[w] = 1
	}
	return lexicon.NewWordList("test", m)
}

// fixedRand always returns the same index, modulo n.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	return int(f) % n
}

func mustFn(t *testing.T) func(*Session, error) *Session {
	return func(s *Session, err error) *Session {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
}

// rejectedFn checks that an action was rejected and left before as it was.
func rejectedFn(t *testing.T, before *Session) func(*Session, error) string {
	return func(after *Session, err error) string {
		t.Helper()
		var rej *RejectionError
		if !errors.As(err, &rej) {
			t.Fatalf("expected a rejection, got %v", err)
		}
		if after != before {
			t.Fatal("a rejected action must return the unchanged session")
		}
		return rej.Reason
	}
}

// controlled builds a two player game in the Placing phase with Alice on
// turn, holding the given racks and an unshuffled bag.
func controlled(t *testing.T, dict lexicon.Dictionary, rackA, rackB, bag string) *Session {
	t.Helper()
	s, err := New([]string{"Alice", "Bob"}, dict, DefaultRules(), tilemapping.NewSeededRandomizer(1))
	if err != nil {
		t.Fatal(err)
	}
	s.onturn = 0
	s.phase = Placing
	s.players[0].Rack = tiles(rackA)
	s.players[1].Rack = tiles(rackB)
	s.bag = tilemapping.BagFromTiles(tiles(bag))
	return s
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	s, err := New([]string{"Alice", "Bob", "Carol"}, lexicon.AcceptAll{}, DefaultRules(),
		tilemapping.NewSeededRandomizer(7))
	is.NoErr(err)
	is.Equal(s.Phase(), AwaitingReady)
	is.Equal(s.NumPlayers(), 3)
	is.Equal(s.Bag().TilesRemaining(), 100)
	is.True(s.ID() != "")
	is.True(s.IsFirstMove())
	is.Equal(s.Turn(), 1)
	is.NoErr(s.CheckInvariants())

	_, err = New([]string{"Alice"}, lexicon.AcceptAll{}, DefaultRules(), nil)
	is.True(errors.Is(err, ErrPlayerCount))
	_, err = New([]string{"A", "B", "C", "D", "E"}, lexicon.AcceptAll{}, DefaultRules(), nil)
	is.True(errors.Is(err, ErrPlayerCount))
	_, err = New([]string{"A", "B"}, nil, DefaultRules(), nil)
	is.True(err != nil)
	_, err = New([]string{"A", "B"}, lexicon.AcceptAll{}, Rules{RackSize: 5}, nil)
	is.True(err != nil)
}

func TestStartingPlayerComesFromRandomizer(t *testing.T) {
	is := is.New(t)
	s, err := New([]string{"A", "B", "C"}, lexicon.AcceptAll{}, DefaultRules(), fixedRand(2))
	is.NoErr(err)
	is.Equal(s.PlayerOnTurn(), 2)
	is.Equal(s.NickOnTurn(), "C")
}

func TestSessionsAreSnapshots(t *testing.T) {
	is := is.New(t)
	must := mustFn(t)
	s := controlled(t, words("CAT"), "CATDOGS", "EEEEEEE", "")
	s1 := must(s.SelectCell(7, 7))
	s2 := must(s1.PlaceTile(0))

	is.Equal(len(s1.Pending()), 0)
	is.Equal(s1.RackFor(0).String(), "CATDOGS")
	is.Equal(len(s2.Pending()), 1)
	is.Equal(s2.RackFor(0).String(), "ATDOGS")

	// accessors hand out copies
	r := s2.RackFor(0)
	r[0] = tilemapping.Blank()
	is.Equal(s2.RackFor(0).String(), "ATDOGS")
}

func TestTileConservation(t *testing.T) {
	rng := tilemapping.NewSeededRandomizer(99)
	for seed := uint64(1); seed <= 5; seed++ {
		s, err := New([]string{"A", "B", "C"}, lexicon.AcceptAll{}, DefaultRules(),
			tilemapping.NewSeededRandomizer(seed))
		if err != nil {
			t.Fatal(err)
		}
		actions := []func(*Session) (*Session, error){
			(*Session).Ready,
			func(s *Session) (*Session, error) { return s.SelectCell(7, 7) },
			func(s *Session) (*Session, error) { return s.SelectCell(7+rng.Intn(3), 6+rng.Intn(3)) },
			func(s *Session) (*Session, error) { return s.PlaceTile(rng.Intn(8)) },
			func(s *Session) (*Session, error) { return s.PlaceTile(0) },
			func(s *Session) (*Session, error) { return s.PlaceLetter('E') },
			func(s *Session) (*Session, error) { return s.DesignateBlank('S') },
			(*Session).CancelBlankDesignation,
			(*Session).RetractLast,
			(*Session).ToggleExchangeMode,
			func(s *Session) (*Session, error) { return s.ToggleExchangeSelection(rng.Intn(7)) },
			(*Session).Submit,
			(*Session).Submit,
			(*Session).Pass,
		}
		for step := 0; step < 400; step++ {
			next, err := actions[rng.Intn(len(actions))](s)
			if err != nil {
				var rej *RejectionError
				if !errors.As(err, &rej) || next != s {
					t.Fatalf("seed %d step %d: bad rejection %v", seed, step, err)
				}
			}
			s = next
			if err := s.CheckInvariants(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
		}
	}
}

func TestRejectionErrorMessage(t *testing.T) {
	is := is.New(t)
	err := error(&RejectionError{Action: ActionSubmit, Reason: "gap in placement"})
	is.Equal(err.Error(), "submit: gap in placement")
}

func TestParseDirectionPolicy(t *testing.T) {
	is := is.New(t)
	p, err := ParseDirectionPolicy(" Reset ")
	is.NoErr(err)
	is.Equal(p, ResetDirection)
	p, err = ParseDirectionPolicy("")
	is.NoErr(err)
	is.Equal(p, PersistDirection)
	_, err = ParseDirectionPolicy("sideways")
	is.True(err != nil)
}

func TestCommittedTilesBelongToPlayer(t *testing.T) {
	is := is.New(t)
	must := mustFn(t)
	s := controlled(t, words("CAT"), "CATDOGS", "EEEEEEE", "")
	s = must(s.SelectCell(7, 6))
	for _, l := range "CAT" {
		s = must(s.PlaceLetter(l))
	}
	s = must(s.Submit())
	tile, ok := s.Board().Get(7, 7)
	is.True(ok)
	is.Equal(tile.Owner, 0)
	is.Equal(tile.Letter, 'A')
	is.True(!s.IsFirstMove())
	is.Equal(s.Board().TilesPlayed(), 3)
}
