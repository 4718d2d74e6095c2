// Package shell is an interactive text front end for a game. Every command
// maps onto one game action and the board is redrawn after it.
package shell

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/config"
	"github.com/friendlywords/friendlywords/game"
	"github.com/friendlywords/friendlywords/lexicon"
	"github.com/friendlywords/friendlywords/tilemapping"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game is in progress; start one with new")
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config

	execPath   string
	gitVersion string

	dict lexicon.Dictionary
	rng  tilemapping.Randomizer
	game *game.Session
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Uint64(key string) (uint64, bool, error) {
	v, ok := c[key]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	return n, true, err
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	prompt := "friendlywords"
	if gitVersion != "" {
		prompt += "-" + gitVersion
	}
	sc := &ShellController{cfg: cfg, execPath: execPath, gitVersion: gitVersion}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m" + prompt + ">\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	var rej *game.RejectionError
	if errors.As(err, &rej) {
		sc.showMessage("Not allowed: " + rej.Reason)
		return
	}
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a command line into the command, its arguments, and
// -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := strings.ToLower(fields[0])
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// Execute runs a single command line, as given on the command line of the
// program.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, l := range strings.Split(line, ";") {
		if sc.executeLine(sig, strings.TrimSpace(l)) {
			return
		}
	}
}

// executeLine runs one command and reports whether the shell should exit.
func (sc *ShellController) executeLine(sig chan os.Signal, line string) bool {
	cmd, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return false
	} else if err != nil {
		sc.showError(err)
		return false
	}
	if cmd.cmd == "exit" {
		sig <- syscall.SIGINT
		return true
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return false
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.executeLine(sig, strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup writes out anything worth keeping before the program exits.
func (sc *ShellController) Cleanup() {
	if sc.game == nil {
		return
	}
	log.Info().Str("id", sc.game.ID()).Ints("scores", sc.game.Scores()).
		Str("phase", sc.game.Phase().String()).Msg("final-state")
}
