// Package lexicon holds the word lists a game is played with. A word list
// maps each acceptable word to an integer weight that multiplies the
// positional score of the word.
package lexicon

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary is the collaborator consulted by move validation and scoring.
// A word with no entry is not a valid word.
type Dictionary interface {
	Name() string
	// Multiplier looks up a word case-insensitively.
	Multiplier(word string) (int, bool)
}

// Normalize returns the canonical (upper case) form of a word.
func Normalize(word string) string {
	return cases.Upper(language.Und).String(word)
}

// WordList is a Dictionary backed by a map of upper-case words.
type WordList struct {
	name  string
	words map[string]int
}

// NewWordList builds a WordList; keys are normalized.
func NewWordList(name string, words map[string]int) *WordList {
	wl := &WordList{name: name, words: make(map[string]int, len(words))}
	for w, m := range words {
		wl.words[Normalize(w)] = m
	}
	return wl
}

func (wl *WordList) Name() string {
	return wl.name
}

func (wl *WordList) Multiplier(word string) (int, bool) {
	m, ok := wl.words[Normalize(word)]
	return m, ok
}

// Len is the number of words in the list.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// AcceptAll accepts every word with a weight of 1.
type AcceptAll struct{}

func (AcceptAll) Name() string {
	return "AcceptAll"
}

func (AcceptAll) Multiplier(word string) (int, bool) {
	return 1, true
}
