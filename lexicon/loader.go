package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/friendlywords/friendlywords/cache"
)

var (
	// ErrMalformedRow is returned for a line that is not WORD,INTEGER.
	ErrMalformedRow = errors.New("malformed word list row")
	// ErrEmptyDictionary is returned when a word list has no entries.
	ErrEmptyDictionary = errors.New("word list contains no entries")
)

// Read parses a word list with one WORD,INTEGER pair per line. Blank lines
// are skipped. Any malformed line aborts the load.
func Read(name string, r io.Reader) (*WordList, error) {
	words := map[string]int{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"word,score\"", ErrMalformedRow, lineNo)
		}
		word := strings.TrimSpace(parts[0])
		if word == "" {
			return nil, fmt.Errorf("%w: line %d: word cannot be empty", ErrMalformedRow, lineNo)
		}
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a valid number", ErrMalformedRow, lineNo,
				strings.TrimSpace(parts[1]))
		}
		words[Normalize(word)] = score
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	log.Debug().Str("lexicon", name).Int("words", len(words)).Msg("loaded-word-list")
	return &WordList{name: name, words: words}, nil
}

// Load reads a word list from a file. The list is named after the file.
func Load(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	wl, err := Read(name, f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return wl, nil
}

// LoadCached is Load, but each path is read only once per process.
func LoadCached(path string) (*WordList, error) {
	obj, err := cache.Load("wordlist:"+path, func(key string) (any, error) {
		return Load(path)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*WordList), nil
}
