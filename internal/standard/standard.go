// Package standard evaluates cards under ordinary poker rules using
// github.com/paulhankin/poker, as a reference point for the run and flush
// modifiers of the poker package.
package standard

import (
	"errors"
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/handanalysis/poker"
)

// ErrHandSize is returned when a hand is not 5 or 7 cards.
var ErrHandSize = errors.New("standard evaluation needs 5 or 7 cards")

// ToCard converts a card to the reference library's representation, where
// Ace is rank 1 and King is 13.
func ToCard(c poker.Card) (ph.Card, error) {
	var s ph.Suit
	switch c.Suit {
	case poker.Clubs:
		s = ph.Club
	case poker.Diamonds:
		s = ph.Diamond
	case poker.Hearts:
		s = ph.Heart
	case poker.Spades:
		s = ph.Spade
	default:
		var zero ph.Card
		return zero, fmt.Errorf("convert %v: unknown suit %d", c, c.Suit)
	}

	r := ph.Rank(c.Rank + 2)
	if c.Rank == poker.Ace {
		r = 1
	}
	return ph.MakeCard(s, r)
}

func convert(cards []poker.Card) ([]ph.Card, error) {
	out := make([]ph.Card, len(cards))
	for i, c := range cards {
		pc, err := ToCard(c)
		if err != nil {
			return nil, err
		}
		out[i] = pc
	}
	return out, nil
}

// Describe names the best standard poker hand in 5 or 7 cards,
// e.g. "ace-high straight".
func Describe(cards []poker.Card) (string, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	pcs, err := convert(cards)
	if err != nil {
		return "", err
	}
	return ph.Describe(pcs)
}

// Score5 scores five cards. Higher scores are better hands.
func Score5(cards []poker.Card) (int16, error) {
	if len(cards) != 5 {
		return 0, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	pcs, err := convert(cards)
	if err != nil {
		return 0, err
	}
	var a [5]ph.Card
	copy(a[:], pcs)
	return ph.Eval5(&a), nil
}

// Score7 scores the best five of seven cards. Higher scores are better hands.
func Score7(cards []poker.Card) (int16, error) {
	if len(cards) != 7 {
		return 0, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	pcs, err := convert(cards)
	if err != nil {
		return 0, err
	}
	var a [7]ph.Card
	copy(a[:], pcs)
	return ph.Eval7(&a), nil
}
