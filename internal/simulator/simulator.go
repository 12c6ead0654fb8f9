package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handanalysis/internal/game"
	"github.com/lox/handanalysis/internal/statistics"
	"github.com/lox/handanalysis/poker"
)

var ErrInvalidConfig = errors.New("invalid simulator config")

// Config holds configuration for running simulations
type Config struct {
	Samples  int   // Hands to play
	HandSize int   // Cards drawn per hand; 0 means game.DefaultHandSize
	PlaySize int   // Cards selected and played per hand
	Seed     int64 // Base seed; hand i uses Seed+i. 0 picks one from the clock
	Workers  int   // 0 means runtime.NumCPU()
	Rules    poker.Rules
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.HandSize == 0 {
		c.HandSize = game.DefaultHandSize
	}
	if c.HandSize < 1 || c.HandSize > poker.MaxCards {
		return fmt.Errorf("%w: hand size %d out of range 1..%d", ErrInvalidConfig, c.HandSize, poker.MaxCards)
	}
	if c.PlaySize < 1 || c.PlaySize > game.MaxSelected || c.PlaySize > c.HandSize {
		return fmt.Errorf("%w: play size %d out of range 1..%d", ErrInvalidConfig, c.PlaySize, min(game.MaxSelected, c.HandSize))
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	c.Workers = min(c.Workers, c.Samples)
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Simulator plays random hands and tallies the hand types they make
type Simulator struct {
	config Config
	runID  string
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Seed == 0 {
		config.Seed = config.Clock.Now().UnixNano()
	}
	return &Simulator{
		config: config,
		runID:  uuid.NewString()[:8],
	}, nil
}

// RunID identifies this simulator in logs
func (s *Simulator) RunID() string {
	return s.runID
}

// Seed returns the base seed in use
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every sample and returns the merged statistics. Results depend
// only on the seed, not on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	logger := cfg.Logger.With("run", s.runID)
	logger.Info("Starting simulation",
		"samples", cfg.Samples,
		"workers", cfg.Workers,
		"hand_size", cfg.HandSize,
		"play_size", cfg.PlaySize,
		"seed", cfg.Seed)

	start := cfg.Clock.Now()
	partials := make([]statistics.Statistics, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			stats := &partials[w]
			for i := w; i < cfg.Samples; i += cfg.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playHand(cfg.Seed + int64(i))
				if err != nil {
					return fmt.Errorf("hand %d: %w", i, err)
				}
				stats.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Simulation aborted", "error", err)
		return nil, err
	}

	total := &statistics.Statistics{}
	for i := range partials {
		total.Merge(&partials[i])
	}
	total.Elapsed = cfg.Clock.Since(start)

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete",
		"hands", total.Hands,
		"elapsed", total.Elapsed,
		"hands_per_sec", total.HandsPerSecond())
	return total, nil
}

// playHand draws a fresh hand, selects PlaySize cards at random and plays them
func (s *Simulator) playHand(seed int64) (statistics.HandResult, error) {
	rng := rand.New(rand.NewSource(seed))
	round := game.NewRound(poker.NewDeck(rng),
		game.WithRules(s.config.Rules),
		game.WithHandSize(s.config.HandSize),
		game.WithLogger(s.config.Logger))

	round.Draw()
	picks := rng.Perm(round.Hand().Top() + 1)[:s.config.PlaySize]
	if err := round.Select(picks...); err != nil {
		return statistics.HandResult{}, err
	}

	played, err := round.Play()
	if err != nil {
		return statistics.HandResult{}, err
	}
	return statistics.HandResult{
		Type:    played.Type,
		Played:  len(played.Played),
		Scoring: len(played.Scoring),
		Seed:    seed,
	}, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, samples, playSize int, rules poker.Rules, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	sim, err := New(Config{
		Samples:  samples,
		PlaySize: playSize,
		Seed:     seed,
		Rules:    rules,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return sim.Run(ctx)
}
