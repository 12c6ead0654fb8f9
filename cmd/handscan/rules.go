package main

import (
	"github.com/lox/handanalysis/internal/rules"
	"github.com/lox/handanalysis/poker"
)

// RuleFlags select the straight and flush modifiers. Flags override the
// rules file and jokers add to the ones it lists.
type RuleFlags struct {
	Rules     string   `type:"path" help:"HCL rules file"`
	Wrap      bool     `help:"Let runs wrap from Ace back to Two"`
	Gap       bool     `help:"Let runs skip one missing rank"`
	RunLength int      `help:"Cards needed for a straight or flush (default 5)"`
	Joker     []string `short:"j" help:"Owned joker, repeatable (${jokers})"`
}

func (f *RuleFlags) Resolve() (poker.Rules, error) {
	cfg := rules.DefaultConfig()
	if f.Rules != "" {
		var err error
		if cfg, err = rules.LoadConfig(f.Rules); err != nil {
			return poker.Rules{}, err
		}
	}

	if f.Wrap {
		cfg.Rules.Wrap = true
	}
	if f.Gap {
		cfg.Rules.GapTolerant = true
	}
	if f.RunLength != 0 {
		cfg.Rules.RunLength = f.RunLength
	}
	cfg.Jokers = append(cfg.Jokers, f.Joker...)

	return cfg.Resolve()
}
