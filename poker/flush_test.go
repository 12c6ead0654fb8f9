package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFlush(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cards  string
		minLen int
		want   int
		sel    Selection
	}{
		{"marks the whole majority suit", "2h5h9hKh3s", 3, 4, flagged(0, 1, 2, 3)},
		{"exact length", "2h5h9hKhAh", 5, 5, flagged(0, 1, 2, 3, 4)},
		{"below minimum", "2h5h9hKh3s", 5, 0, Selection{}},
		{"ties go to the lowest suit", "2h3c4h5c", 2, 2, flagged(1, 3)},
		{"single card", "Kd", 1, 1, flagged(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out Selection
			got := FindFlush(played(tt.cards), tt.minLen, &out)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sel, out)
		})
	}
}

func TestFindFlushEmptyBuffer(t *testing.T) {
	t.Parallel()
	var b Buffer
	out := flagged(1, 2)
	assert.Zero(t, FindFlush(&b, 3, &out))
	assert.Equal(t, Selection{}, out)
}

func TestFindFlushSkipsGaps(t *testing.T) {
	t.Parallel()
	b := played("2h5h9hKh3s")
	b.Remove(1)

	var out Selection
	assert.Equal(t, 3, FindFlush(b, 3, &out))
	assert.Equal(t, flagged(0, 2, 3), out)

	assert.Zero(t, FindFlush(b, 4, &out))
}
