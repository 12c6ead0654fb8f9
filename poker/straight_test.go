package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasStraight(t *testing.T) {
	t.Parallel()
	std := DefaultRules()
	wrap := Rules{Wrap: true, RunLength: 5}
	gap := Rules{GapTolerant: true, RunLength: 5}

	tests := []struct {
		name  string
		h     RankHistogram
		rules Rules
		want  bool
	}{
		{"empty", RankHistogram{}, std, false},
		{"ace low", hist(Ace, Two, Three, Four, Five), std, true},
		{"broadway", hist(Ten, Jack, Queen, King, Ace), std, true},
		{"missing five", hist(Two, Three, Four, Six, Seven), std, false},
		{"duplicates do not break a run", hist(Six, Six, Seven, Eight, Nine, Ten), std, true},
		{"no wrap through ace", hist(King, Ace, Two, Three, Four), std, false},
		{"wrap through ace", hist(King, Ace, Two, Three, Four), wrap, true},
		{"wrap still needs a run", hist(Queen, Ace, Two, Three, Four), wrap, false},
		{"short ace low", hist(Ace, Two, Three, Four), Rules{RunLength: 4}, true},
		{"short run", hist(Jack, Queen, King), Rules{RunLength: 3}, true},
		{"ace low stops at five", hist(Ace, Two, Three, Four, Five, Six), Rules{RunLength: 6}, false},
		{"every other rank", hist(Two, Four, Six, Eight, Ten), gap, true},
		{"every other rank without gaps", hist(Two, Four, Six, Eight, Ten), std, false},
		{"gap needs consecutive skips of one", hist(Two, Five, Six, Seven, Eight), gap, false},
		{"gap from ace low", hist(Ace, Three, Four, Five, Six), gap, true},
		{"gap ace low without gaps", hist(Ace, Three, Four, Five, Six), std, false},
		{"gap and wrap", hist(King, Ace, Three, Five), Rules{Wrap: true, GapTolerant: true, RunLength: 4}, true},
		{"gap without wrap", hist(King, Ace, Three, Five), Rules{GapTolerant: true, RunLength: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h.HasStraight(tt.rules))
		})
	}
}

func TestFindStraight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		rules Rules
		want  int
		sel   Selection
	}{
		{"simple run", "9cTdJhQsKc", DefaultRules(), 5, flagged(0, 1, 2, 3, 4)},
		{"run longer than required", "3c4d5h6s7c8d", DefaultRules(), 6, flagged(0, 1, 2, 3, 4, 5)},
		{"one card per rank, earliest first", "5c5d6h7s8c9d", DefaultRules(), 5, flagged(0, 2, 3, 4, 5)},
		{"ace low takes one ace", "AcAd2h3s4c", Rules{RunLength: 4}, 4, flagged(0, 2, 3, 4)},
		{"too short", "2c3d4h", DefaultRules(), 0, Selection{}},
		{"wrap through ace", "KcAd2h3s4c", Rules{Wrap: true, RunLength: 5}, 5, flagged(0, 1, 2, 3, 4)},
		{"no wrap through ace", "KcAd2h3s4c", DefaultRules(), 0, Selection{}},
		{"gapped run", "2c4d6h8sTc", Rules{GapTolerant: true, RunLength: 5}, 5, flagged(0, 1, 2, 3, 4)},
		{"gapped run from ace low", "Ac3d4h5s6c", Rules{GapTolerant: true, RunLength: 5}, 5, flagged(0, 1, 2, 3, 4)},
		{"gapped run skips stray card", "2c4d6h8sTcKd", Rules{GapTolerant: true, RunLength: 5}, 5, flagged(0, 1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out Selection
			got := FindStraight(played(tt.cards), tt.rules, &out)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sel, out)
		})
	}
}

// Runs of equal length resolve to the one ending at the highest rank.
func TestFindStraightTieBreak(t *testing.T) {
	t.Parallel()
	b := played("2c3d4h8s9cTd")

	var out Selection
	require.Equal(t, 3, FindStraight(b, Rules{RunLength: 3}, &out))
	assert.Equal(t, flagged(3, 4, 5), out)
}

func TestFindStraightIgnoresSelectionFlags(t *testing.T) {
	t.Parallel()
	b := played("9cTdJhQsKc")
	b.SetSelected(0, true)

	var out Selection
	assert.Equal(t, 5, FindStraight(b, DefaultRules(), &out))
}

func TestFindStraightSkipsGaps(t *testing.T) {
	t.Parallel()
	b := played("9cTd2sJhQsKc")
	b.Remove(2)

	var out Selection
	require.Equal(t, 5, FindStraight(b, DefaultRules(), &out))
	assert.False(t, out[2])
	assert.Equal(t, flagged(0, 1, 3, 4, 5), out)
}

func TestFindStraightClearsOutput(t *testing.T) {
	t.Parallel()
	stale := flagged(0, 3, 7)

	var empty Buffer
	out := stale
	assert.Zero(t, FindStraight(&empty, DefaultRules(), &out))
	assert.Equal(t, Selection{}, out)

	out = stale
	assert.Zero(t, FindStraight(played("2c3d"), DefaultRules(), &out))
	assert.Equal(t, Selection{}, out)
}

// Every full selection realizes a run the detector also accepts.
func TestFindStraightAgreesWithDetection(t *testing.T) {
	t.Parallel()
	variants := []Rules{
		DefaultRules(),
		{RunLength: 4},
		{Wrap: true, RunLength: 5},
		{GapTolerant: true, RunLength: 5},
		{Wrap: true, GapTolerant: true, RunLength: 4},
	}

	hands := []string{
		"9cTdJhQsKc", "AcAd2h3s4c", "KcAd2h3s4c", "2c4d6h8sTc",
		"Ac3d4h5s6c", "2c3d4h8s9c", "5c6d7h", "AhKhQhJh9h",
	}

	for _, rules := range variants {
		for _, cards := range hands {
			b := played(cards)
			ranks, _ := PlayedDistribution(b)

			var out Selection
			found := FindStraight(b, rules, &out) > 0
			assert.Equal(t, ranks.HasStraight(rules), found, "%s with %+v", cards, rules)
		}
	}
}
