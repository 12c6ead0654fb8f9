package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/handanalysis/poker"
)

// MaxSelected is the most cards a player may select to play or discard.
const MaxSelected = 5

var (
	ErrOutOfRange      = errors.New("slot out of range")
	ErrEmptySlot       = errors.New("slot is empty")
	ErrSelectionFull   = errors.New("selection is full")
	ErrNothingSelected = errors.New("no cards selected")
)

// Round owns the hand and played buffers for one round of play.
type Round struct {
	deck     *poker.Deck
	hand     poker.Buffer
	played   poker.Buffer
	rules    poker.Rules
	handSize int
	logger   *log.Logger
}

// PlayResult describes a played hand.
type PlayResult struct {
	Type    poker.HandType
	Played  []poker.Card
	Scoring []poker.Card
}

// NewRound creates a round drawing from deck. The deck is required to make
// randomness explicit.
func NewRound(deck *poker.Deck, opts ...RoundOption) *Round {
	if deck == nil {
		panic("deck is required for round creation")
	}

	cfg := defaultRoundConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Round{
		deck:     deck,
		rules:    cfg.rules,
		handSize: cfg.handSize,
		logger:   cfg.logger,
	}
}

// Rules returns the modifiers in effect.
func (r *Round) Rules() poker.Rules {
	return r.rules
}

// Hand returns the hand buffer. Callers must not modify it.
func (r *Round) Hand() *poker.Buffer {
	return &r.hand
}

// Played returns the cards of the last play. Callers must not modify it.
func (r *Round) Played() *poker.Buffer {
	return &r.played
}

// Draw fills the hand up to the hand size and returns how many cards were drawn.
func (r *Round) Draw() int {
	drawn := 0
	for r.hand.Len() < r.handSize {
		c, ok := r.deck.DealOne()
		if !ok {
			break
		}
		r.hand.Push(c)
		drawn++
	}
	return drawn
}

// Toggle flips the selection of hand slot i.
func (r *Round) Toggle(i int) error {
	if i < 0 || i > r.hand.Top() {
		return fmt.Errorf("toggle %d: %w", i, ErrOutOfRange)
	}
	if _, ok := r.hand.Card(i); !ok {
		return fmt.Errorf("toggle %d: %w", i, ErrEmptySlot)
	}

	if r.hand.Selected(i) {
		r.hand.SetSelected(i, false)
		return nil
	}
	if r.SelectedCount() >= MaxSelected {
		return fmt.Errorf("toggle %d: %w", i, ErrSelectionFull)
	}
	r.hand.SetSelected(i, true)
	return nil
}

// Select toggles each of the given hand slots on, stopping at the first error.
func (r *Round) Select(idx ...int) error {
	for _, i := range idx {
		if r.hand.Selected(i) {
			continue
		}
		if err := r.Toggle(i); err != nil {
			return err
		}
	}
	return nil
}

// SelectedCount returns how many hand cards are selected.
func (r *Round) SelectedCount() int {
	ranks, _ := poker.HandDistribution(&r.hand)
	return ranks.Total()
}

// Preview classifies the currently selected hand cards.
func (r *Round) Preview() poker.HandType {
	ranks, suits := poker.HandDistribution(&r.hand)
	return poker.Classify(ranks, suits, r.rules)
}

// Play moves the selected cards into the played buffer, classifies them and
// picks out the scoring cards.
func (r *Round) Play() (PlayResult, error) {
	if r.SelectedCount() == 0 {
		return PlayResult{}, ErrNothingSelected
	}

	r.played.Reset()
	r.takeSelected(func(c poker.Card) { r.played.Push(c) })

	res := poker.Evaluate(&r.played, r.rules)
	result := PlayResult{
		Type:    res.Type,
		Played:  r.played.Cards(),
		Scoring: res.Scoring.Cards(&r.played),
	}

	r.logger.Debug("Hand played",
		"type", result.Type,
		"played", len(result.Played),
		"scoring", res.Count,
		"wrap", r.rules.Wrap,
		"gap", r.rules.GapTolerant,
		"run_length", r.rules.RunLength)

	return result, nil
}

// Discard removes the selected cards from the hand and returns them.
func (r *Round) Discard() ([]poker.Card, error) {
	if r.SelectedCount() == 0 {
		return nil, ErrNothingSelected
	}

	var discarded []poker.Card
	r.takeSelected(func(c poker.Card) { discarded = append(discarded, c) })
	r.logger.Debug("Cards discarded", "count", len(discarded))
	return discarded, nil
}

func (r *Round) takeSelected(fn func(poker.Card)) {
	for i := 0; i <= r.hand.Top(); i++ {
		if !r.hand.Selected(i) {
			continue
		}
		if c, ok := r.hand.Remove(i); ok {
			fn(c)
		}
	}
	r.hand.Compact()
}
