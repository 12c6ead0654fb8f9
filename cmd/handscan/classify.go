package main

import (
	"fmt"
	"strings"

	"github.com/lox/handanalysis/internal/standard"
	"github.com/lox/handanalysis/poker"
)

type ClassifyCmd struct {
	RuleFlags `embed:""`

	Cards    []string `arg:"" help:"Cards, e.g. 'AsKsQsJsTs' or 'As Ks Qs'"`
	Selected []int    `short:"s" help:"Slots to play from the cards given as a hand (0-based); default plays every card"`
}

type classification struct {
	Type     poker.HandType
	Played   []poker.Card
	Scoring  []poker.Card
	Standard string
}

func (c *ClassifyCmd) Run(g *Globals) error {
	r, err := c.Resolve()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, ""))
	if err != nil {
		return err
	}
	if len(cards) > poker.MaxCards {
		return fmt.Errorf("too many cards: %d (max %d)", len(cards), poker.MaxCards)
	}

	res, err := classify(cards, c.Selected, r)
	if err != nil {
		return err
	}
	g.Logger().Debug("Classified", "type", res.Type, "played", len(res.Played), "scoring", len(res.Scoring))

	if g.JSON {
		logger := g.Results()
		logger.Info().
			Str("type", res.Type.String()).
			Strs("played", cardStrings(res.Played)).
			Strs("scoring", cardStrings(res.Scoring)).
			Str("standard", res.Standard).
			Int("run_length", r.RunLength).
			Bool("wrap", r.Wrap).
			Bool("gap", r.GapTolerant).
			Msg("classified")
		return nil
	}

	fmt.Fprint(g.Stdout, renderClassification(res, r))
	return nil
}

// classify plays cards, or only the selected slots of cards when any are
// given, and evaluates the play.
func classify(cards []poker.Card, selected []int, r poker.Rules) (classification, error) {
	played := poker.NewBuffer(cards...)
	if len(selected) > 0 {
		hand := poker.NewBuffer(cards...)
		for _, i := range selected {
			if !hand.SetSelected(i, true) {
				return classification{}, fmt.Errorf("slot %d out of range 0..%d", i, hand.Top())
			}
		}
		played.Reset()
		for i := 0; i <= hand.Top(); i++ {
			if c, ok := hand.Card(i); ok && hand.Selected(i) {
				played.Push(c)
			}
		}
	}

	res := poker.Evaluate(played, r)
	out := classification{
		Type:    res.Type,
		Played:  played.Cards(),
		Scoring: res.Scoring.Cards(played),
	}
	if n := len(out.Played); n == 5 || n == 7 {
		// Descriptions are informational; a conversion failure leaves it blank.
		out.Standard, _ = standard.Describe(out.Played)
	}
	return out, nil
}
