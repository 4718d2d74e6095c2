package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestEnglishDistribution(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.NoErr(ld.CheckTileCount(StandardTileCount))
	is.Equal(ld.Distribution()['E'], 12)
	is.Equal(ld.Distribution()[BlankLetter], 2)

	for _, tc := range []struct {
		letters string
		score   int
	}{
		{"AEIOULNSTR", 1}, {"DG", 2}, {"BCMP", 3}, {"FHVWY", 4},
		{"K", 5}, {"JX", 8}, {"QZ", 10}, {"?", 0},
	} {
		for _, l := range tc.letters {
			is.Equal(ld.Score(l), tc.score)
		}
	}
}

func TestScanLetterDistributionErrors(t *testing.T) {
	is := is.New(t)
	_, err := ScanLetterDistribution(strings.NewReader("A,x,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader("A,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader("A,1,1\nA,2,1\n"))
	is.True(err != nil)

	ld, err := ScanLetterDistribution(strings.NewReader("A,3,1\nB,1,3\n"))
	is.NoErr(err)
	err = ld.CheckTileCount(StandardTileCount)
	is.True(errors.Is(err, ErrTileCount))
}
