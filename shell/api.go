package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/board"
	"github.com/friendlywords/friendlywords/config"
	"github.com/friendlywords/friendlywords/game"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/tilemapping"
)

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "rules":
		return sc.rules(cmd)
	}
	if sc.game == nil {
		return nil, errNoGame
	}
	switch cmd.cmd {
	case "s", "show":
		return msg(sc.game.ToDisplayText()), nil
	case "ready":
		return sc.act(sc.game.Ready())
	case "select":
		return sc.selectCell(cmd)
	case "place":
		return sc.place(cmd)
	case "type":
		return sc.typeLetters(cmd)
	case "blank":
		return sc.blank(cmd)
	case "cancel":
		return sc.act(sc.game.CancelBlankDesignation())
	case "back":
		return sc.act(sc.game.RetractLast())
	case "exchange":
		return sc.act(sc.game.ToggleExchangeMode())
	case "mark":
		return sc.mark(cmd)
	case "submit":
		return sc.act(sc.game.Submit())
	case "pass":
		return sc.act(sc.game.Pass())
	case "preview":
		return sc.preview(cmd)
	case "history":
		return sc.history(cmd)
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, fmt.Errorf("unknown command %q; try help", cmd.cmd)
}

// act keeps the new session from a successful action and redraws it.
func (sc *ShellController) act(next *game.Session, err error) (*Response, error) {
	if err != nil {
		return nil, err
	}
	sc.game = next
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) rulesFromConfig() (game.Rules, error) {
	rules := game.DefaultRules()
	policy, err := game.ParseDirectionPolicy(sc.cfg.GetString(config.ConfigDirectionPolicy))
	if err != nil {
		return rules, err
	}
	rules.DirectionPolicy = policy
	rules.BingoBonus = sc.cfg.GetInt(config.ConfigBingoBonus)
	rules.ScorelessTurnLimit = sc.cfg.GetInt(config.ConfigScorelessTurnLimit)
	return rules, rules.Validate()
}

func (sc *ShellController) rules(cmd *shellcmd) (*Response, error) {
	r, err := sc.rulesFromConfig()
	if err != nil {
		return nil, err
	}
	if sc.game != nil {
		r = sc.game.Rules()
	}
	return msg(fmt.Sprintf("rack size: %d\nbingo bonus: %d\ndirection policy: %s\nscoreless turn limit: %d",
		r.RackSize, r.BingoBonus, r.DirectionPolicy, r.ScorelessTurnLimit)), nil
}

// newGame starts a game. Player names come from the arguments or the
// config; -lexicon and -seed override the config.
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	rules, err := sc.rulesFromConfig()
	if err != nil {
		return nil, err
	}
	names := cmd.args
	if len(names) == 0 {
		names = sc.cfg.GetStringSlice(config.ConfigPlayers)
	}

	if path := cmd.options.String("lexicon"); path != "" || sc.dict == nil {
		if path == "" {
			path = sc.cfg.GetString(config.ConfigWordList)
		}
		dict, err := lexicon.LoadCached(path)
		if err != nil {
			return nil, err
		}
		sc.dict = dict
	}

	seed, given, err := cmd.options.Uint64("seed")
	if err != nil {
		return nil, fmt.Errorf("bad seed: %w", err)
	}
	if !given {
		seed = sc.cfg.GetUint64(config.ConfigSeed)
	}
	if seed != 0 {
		sc.rng = tilemapping.NewSeededRandomizer(seed)
	} else if sc.rng == nil {
		sc.rng = tilemapping.NewRandomizer()
	}

	g, err := game.New(names, sc.dict, rules, sc.rng)
	if err != nil {
		return nil, err
	}
	sc.game = g
	log.Info().Str("id", g.ID()).Strs("players", names).Str("lexicon", sc.dict.Name()).
		Msg("started-game")
	return msg(g.ToDisplayText() + "\n" + g.NickOnTurn() + " goes first. Type ready to begin."), nil
}

// selectCell accepts either board coordinates (8H across, H8 down) or a
// zero-based row and column.
func (sc *ShellController) selectCell(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 1:
		pos, dir, err := board.FromBoardGameCoords(cmd.args[0])
		if err != nil {
			return nil, err
		}
		next, err := sc.game.SelectCell(pos.Row, pos.Col)
		if err != nil {
			return nil, err
		}
		if next.Direction() != dir {
			// selecting the same square again flips the direction
			next, err = next.SelectCell(pos.Row, pos.Col)
		}
		return sc.act(next, err)
	case 2:
		row, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		col, err := strconv.Atoi(cmd.args[1])
		if err != nil {
			return nil, err
		}
		return sc.act(sc.game.SelectCell(row, col))
	}
	return nil, errors.New("usage: select 8H | select H8 | select ROW COL")
}

// rackIndex converts a 1-based rack position typed by the player.
func rackIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a rack position", s)
	}
	return n - 1, nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: place N (1 is the leftmost tile on the rack)")
	}
	idx, err := rackIndex(cmd.args[0])
	if err != nil {
		return nil, err
	}
	next, err := sc.game.PlaceTile(idx)
	if err != nil {
		return nil, err
	}
	resp, err := sc.act(next, nil)
	if _, open := next.BlankRequest(); open {
		resp.message += "\nChoose a letter for the blank: blank L (or cancel)"
	}
	return resp, err
}

// typeLetters places each letter in turn, like typing on a keyboard. It
// stops at the first letter that cannot be placed.
func (sc *ShellController) typeLetters(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: type LETTERS")
	}
	next := sc.game
	for _, l := range strings.Join(cmd.args, "") {
		n, err := next.PlaceLetter(l)
		if err != nil {
			// keep the letters that did go down
			sc.game = next
			return nil, err
		}
		next = n
	}
	return sc.act(next, nil)
}

func (sc *ShellController) blank(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 || utf8.RuneCountInString(cmd.args[0]) != 1 {
		return nil, errors.New("usage: blank L")
	}
	l, _ := utf8.DecodeRuneInString(cmd.args[0])
	return sc.act(sc.game.DesignateBlank(l))
}

func (sc *ShellController) mark(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: mark N [N ...]")
	}
	next := sc.game
	for _, a := range cmd.args {
		idx, err := rackIndex(a)
		if err != nil {
			return nil, err
		}
		next, err = next.ToggleExchangeSelection(idx)
		if err != nil {
			return nil, err
		}
	}
	return sc.act(next, nil)
}

func (sc *ShellController) preview(cmd *shellcmd) (*Response, error) {
	pv := sc.game.PreviewScore()
	if !pv.Valid {
		return msg("Invalid: " + pv.Reason), nil
	}
	s := fmt.Sprintf("Valid: %d pts (%s)", pv.Score, strings.Join(pv.Words, ", "))
	if pv.Bingo {
		s += " bingo!"
	}
	return msg(s), nil
}

// history prints the game record as YAML, or writes it to -file.
func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	out, err := sc.game.History().ToYAML()
	if err != nil {
		return nil, err
	}
	if path := cmd.options.String("file"); path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return nil, err
		}
		return msg("wrote history to " + path), nil
	}
	return msg(string(out)), nil
}
