package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoringCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		rules Rules
		want  Selection
	}{
		{"high card", "2c5d9hKsJc", DefaultRules(), flagged(3)},
		{"ace is high", "Ac5d9h", DefaultRules(), flagged(0)},
		{"pair", "7cKh7d2s9c", DefaultRules(), flagged(0, 2)},
		{"two pair", "7c7d9h9s2c", DefaultRules(), flagged(0, 1, 2, 3)},
		{"three of a kind", "7c7d7h2s9c", DefaultRules(), flagged(0, 1, 2)},
		{"four of a kind", "AsAhAdAc2c", DefaultRules(), flagged(0, 1, 2, 3)},
		{"full house", "KsKhKd2c2d", DefaultRules(), flagged(0, 1, 2, 3, 4)},
		{"straight", "9cTdJhQsKc", DefaultRules(), flagged(0, 1, 2, 3, 4)},
		{"short straight pulls in pair", "AcAd2h3s4c", Rules{RunLength: 4}, flagged(0, 1, 2, 3, 4)},
		{"short straight leaves kicker", "2c3d4h5s9c", Rules{RunLength: 4}, flagged(0, 1, 2, 3)},
		{"short flush", "2h5h9hJh3c", Rules{RunLength: 4}, flagged(0, 1, 2, 3)},
		{"short straight flush", "2h3h4h5h9c", Rules{RunLength: 4}, flagged(0, 1, 2, 3)},
		{"short straight flush with off-suit run card", "2h3h4h5h6c", Rules{RunLength: 4}, flagged(0, 1, 2, 3, 4)},
		{"flush five", "AhAhAhAhAh", DefaultRules(), flagged(0, 1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := played(tt.cards)
			res := Evaluate(b, tt.rules)

			var out Selection
			n := ScoringCards(b, res.Type, tt.rules, &out)
			assert.Equal(t, tt.want, out, "type %s", res.Type)
			assert.Equal(t, tt.want.Count(), n)
		})
	}
}

func TestScoringCardsNoHand(t *testing.T) {
	t.Parallel()
	out := flagged(0)
	assert.Zero(t, ScoringCards(played("As"), NoHand, DefaultRules(), &out))
	assert.Equal(t, Selection{}, out)
}
