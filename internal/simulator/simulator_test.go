package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handanalysis/internal/game"
	"github.com/lox/handanalysis/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNew(t *testing.T) {
	sim, err := New(Config{
		Samples:  100,
		PlaySize: 5,
		Seed:     12345,
		Rules:    poker.DefaultRules(),
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, 100, sim.config.Samples)
	assert.Equal(t, game.DefaultHandSize, sim.config.HandSize)
	assert.Equal(t, int64(12345), sim.Seed())
	assert.Positive(t, sim.config.Workers)
	assert.Len(t, sim.RunID(), 8)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"no samples", Config{PlaySize: 5, Rules: poker.DefaultRules()}},
		{"play size zero", Config{Samples: 1, Rules: poker.DefaultRules()}},
		{"play size above selection limit", Config{Samples: 1, PlaySize: 6, Rules: poker.DefaultRules()}},
		{"play size above hand size", Config{Samples: 1, HandSize: 3, PlaySize: 4, Rules: poker.DefaultRules()}},
		{"hand size too large", Config{Samples: 1, HandSize: poker.MaxCards + 1, PlaySize: 5, Rules: poker.DefaultRules()}},
		{"bad rules", Config{Samples: 1, PlaySize: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSimulator_Run(t *testing.T) {
	clock := quartz.NewMock(t)
	sim, err := New(Config{
		Samples:  200,
		PlaySize: 5,
		Seed:     42,
		Workers:  4,
		Rules:    poker.DefaultRules(),
		Clock:    clock,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Hands)
	assert.Equal(t, 1000, stats.PlayedCards)
	assert.LessOrEqual(t, stats.ScoringCards, stats.PlayedCards)
	assert.Zero(t, stats.Count(poker.NoHand))
	// Five of a kind needs a duplicated card; a single deck cannot make one.
	assert.Zero(t, stats.Count(poker.FiveOfAKind))
	assert.Zero(t, stats.Count(poker.FlushFive))
	// The mock clock never moves on its own.
	assert.Zero(t, stats.Elapsed)
}

func TestSimulator_DeterministicAcrossWorkers(t *testing.T) {
	rules := poker.Rules{Wrap: true, GapTolerant: true, RunLength: 4}
	run := func(workers int) [poker.FlushFive + 1]int {
		sim, err := New(Config{
			Samples:  300,
			PlaySize: 5,
			Seed:     7,
			Workers:  workers,
			Rules:    rules,
			Clock:    quartz.NewMock(t),
			Logger:   quietLogger(),
		})
		require.NoError(t, err)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.TypeCounts
	}

	assert.Equal(t, run(1), run(3))
	assert.Equal(t, run(1), run(8))
}

func TestSimulator_SingleCardPlaysAreHighCards(t *testing.T) {
	stats, err := RunSimulation(context.Background(), 50, 1, poker.DefaultRules(), 99, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 50, stats.Count(poker.HighCard))
	assert.Equal(t, 50, stats.ScoringCards)
	assert.Equal(t, []poker.HandType{poker.HighCard}, stats.Types())
}

func TestSimulator_Cancelled(t *testing.T) {
	sim, err := New(Config{
		Samples:  1000,
		PlaySize: 5,
		Seed:     1,
		Rules:    poker.DefaultRules(),
		Clock:    quartz.NewMock(t),
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_ZeroSeedUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	sim, err := New(Config{
		Samples:  1,
		PlaySize: 5,
		Rules:    poker.DefaultRules(),
		Clock:    clock,
	})
	require.NoError(t, err)
	assert.Equal(t, clock.Now().UnixNano(), sim.Seed())
}

func TestSimulator_LogsRunID(t *testing.T) {
	var buf bytes.Buffer
	sim, err := New(Config{
		Samples:  3,
		PlaySize: 2,
		Seed:     5,
		Rules:    poker.DefaultRules(),
		Clock:    quartz.NewMock(t),
		Logger:   log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}),
	})
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Simulation complete")
	assert.Contains(t, out, sim.RunID())
}
