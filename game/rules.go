package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/friendlywords/friendlywords/move"
	"github.com/friendlywords/friendlywords/tilemapping"
)

// DirectionPolicy decides what happens to the play direction when the
// player selects a different square.
type DirectionPolicy string

const (
	// PersistDirection keeps the direction of the previous selection.
	PersistDirection DirectionPolicy = "persist"
	// ResetDirection goes back to Across on every new selection.
	ResetDirection DirectionPolicy = "reset"
)

// ParseDirectionPolicy converts a config value into a DirectionPolicy.
func ParseDirectionPolicy(s string) (DirectionPolicy, error) {
	switch p := DirectionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PersistDirection, ResetDirection:
		return p, nil
	case "":
		return PersistDirection, nil
	}
	return "", fmt.Errorf("unknown direction policy %q", s)
}

const (
	MinPlayers = 2
	MaxPlayers = 4
)

var ErrPlayerCount = fmt.Errorf("a game needs between %d and %d players", MinPlayers, MaxPlayers)

// Rules holds the tunable parts of a game.
type Rules struct {
	RackSize        int
	BingoBonus      int
	DirectionPolicy DirectionPolicy
	// ScorelessTurnLimit ends the game after this many consecutive turns
	// without points. 0 disables it.
	ScorelessTurnLimit int
}

// DefaultRules are the rules of a standard game.
func DefaultRules() Rules {
	return Rules{
		RackSize:        tilemapping.RackTileLimit,
		BingoBonus:      move.DefaultBingoBonus,
		DirectionPolicy: PersistDirection,
	}
}

// Validate checks that the rules can be played with.
func (r Rules) Validate() error {
	if r.RackSize != tilemapping.RackTileLimit {
		return fmt.Errorf("rack size must be %d, got %d", tilemapping.RackTileLimit, r.RackSize)
	}
	if r.BingoBonus < 0 {
		return errors.New("bingo bonus cannot be negative")
	}
	if _, err := ParseDirectionPolicy(string(r.DirectionPolicy)); err != nil {
		return err
	}
	if r.ScorelessTurnLimit < 0 {
		return errors.New("scoreless turn limit cannot be negative")
	}
	return nil
}
