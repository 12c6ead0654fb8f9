package poker

import "fmt"

// DefaultRunLength is the number of cards a straight or flush needs under
// standard rules.
const DefaultRunLength = 5

// Rules carries the run modifiers that change how straights and flushes are
// detected. Straights and flushes share RunLength.
type Rules struct {
	// Wrap lets a run continue past Ace back to Two.
	Wrap bool
	// GapTolerant lets a run skip at most one missing rank between two present ranks.
	GapTolerant bool
	// RunLength is the minimum straight and flush size.
	RunLength int
}

// DefaultRules returns standard rules: no wrap, no gaps, five card runs.
func DefaultRules() Rules {
	return Rules{RunLength: DefaultRunLength}
}

// Validate checks that RunLength is usable.
func (r Rules) Validate() error {
	if r.RunLength < 1 || r.RunLength > MaxCards {
		return fmt.Errorf("run length must be between 1 and %d, got %d", MaxCards, r.RunLength)
	}
	return nil
}

// ShortRuns reports whether runs are shorter than standard, in which case a
// straight also scores cards paired with its ranks.
func (r Rules) ShortRuns() bool {
	return r.RunLength < DefaultRunLength
}
