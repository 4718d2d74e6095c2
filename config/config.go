// Package config loads settings from command-line flags, the environment,
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "FRIENDLYWORDS"

const (
	ConfigDebug              = "debug"
	ConfigWordList           = "wordlist"
	ConfigPlayers            = "players"
	ConfigSeed               = "seed"
	ConfigDirectionPolicy    = "direction-policy"
	ConfigBingoBonus         = "bingo-bonus"
	ConfigScorelessTurnLimit = "scoreless-turn-limit"
	ConfigEnvFile            = "env-file"
	ConfigHistoryFile        = "history-file"
)

type Config struct {
	*viper.Viper
	args []string
}

// Load parses args and reads the environment. Arguments that are not flags
// are kept and returned by Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	flags := pflag.NewFlagSet("friendlywords", pflag.ContinueOnError)
	flags.Bool(ConfigDebug, false, "debug logging on")
	flags.String(ConfigWordList, "./data/wordlist.csv", "word list file, one WORD,SCORE per line")
	flags.StringSlice(ConfigPlayers, []string{"Player 1", "Player 2"}, "comma-separated player names (2 to 4)")
	flags.Uint64(ConfigSeed, 0, "seed for the tile bag; 0 picks a random seed")
	flags.String(ConfigDirectionPolicy, "persist", "direction after selecting a new square: persist or reset")
	flags.Int(ConfigBingoBonus, 50, "bonus for playing every tile on a full rack")
	flags.Int(ConfigScorelessTurnLimit, 6, "end the game after this many scoreless turns in a row; 0 disables")
	flags.String(ConfigEnvFile, ".env", "file with FRIENDLYWORDS_* variables")
	flags.String(ConfigHistoryFile, "/tmp/friendlywords-readline.tmp", "readline history file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	c.args = flags.Args()

	if err := c.BindPFlags(flags); err != nil {
		return err
	}
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	return c.loadEnvFile(c.GetString(ConfigEnvFile))
}

// loadEnvFile reads FRIENDLYWORDS_* settings from a dotenv file. They sit
// below real environment variables and flags. A missing file is fine.
func (c *Config) loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	for k, v := range vals {
		key, ok := strings.CutPrefix(k, EnvPrefix+"_")
		if !ok {
			continue
		}
		c.SetDefault(strings.ReplaceAll(strings.ToLower(key), "_", "-"), v)
	}
	return nil
}

// Args are the arguments left over after flags were parsed.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths resolves a relative word list path against basepath
// when it does not exist relative to the working directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigWordList)
	if p == "" || filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	c.Set(ConfigWordList, filepath.Join(basepath, p))
}

// SanitizedSettings returns every setting, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
