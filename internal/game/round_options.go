package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/handanalysis/poker"
)

// DefaultHandSize is the number of cards a round draws up to.
const DefaultHandSize = 8

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	rules    poker.Rules
	handSize int
	logger   *log.Logger
}

// WithRules sets the straight and flush modifiers. Default: poker.DefaultRules().
func WithRules(rules poker.Rules) RoundOption {
	return func(c *roundConfig) {
		c.rules = rules
	}
}

// WithHandSize sets how many cards Draw fills the hand to, capped at poker.MaxCards.
func WithHandSize(n int) RoundOption {
	return func(c *roundConfig) {
		c.handSize = min(n, poker.MaxCards)
	}
}

// WithLogger sets the logger. Default discards output.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

func defaultRoundConfig() roundConfig {
	return roundConfig{
		rules:    poker.DefaultRules(),
		handSize: DefaultHandSize,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}
