// Package game implements a round of play: drawing a hand, selecting cards
// and playing or discarding them under a set of straight and flush modifiers.
//
// The main type is Round, which owns the hand and played buffers and asks the
// poker package to classify and score each play.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42)) // Fixed seed
//	r := game.NewRound(poker.NewDeck(rng), game.WithRules(rules))
//	r.Draw()
//	r.Select(0, 2, 5)
//	preview := r.Preview() // classifies the selection without playing it
//	result, err := r.Play()
//
// # Architecture
//
// Round delegates to the poker package:
//   - poker.Deck: Provides shuffled cards with explicit RNG injection
//   - poker.HandDistribution: Counts only the selected hand cards for previews
//   - poker.Evaluate: Classifies the played cards and marks the scoring ones
//
// A Round is not safe for concurrent use; simulations run one per goroutine.
package game
