package poker

// NOfAKind returns the highest count of any single rank, so a full house
// returns 3 and an empty histogram returns 0.
func (h RankHistogram) NOfAKind() int {
	highest := 0
	for _, n := range h {
		if int(n) > highest {
			highest = int(n)
		}
	}
	return highest
}

// HasTwoPair reports whether at least two distinct ranks appear twice or more.
func (h RankHistogram) HasTwoPair() bool {
	pairs := 0
	for _, n := range h {
		if n >= 2 {
			pairs++
			if pairs == 2 {
				return true
			}
		}
	}
	return false
}

// HasFullHouse reports a three of a kind plus a pair of another rank. A
// second three of a kind also serves as the pair, which matters for hands
// larger than five cards.
func (h RankHistogram) HasFullHouse() bool {
	threes, pairs := 0, 0
	for _, n := range h {
		switch {
		case n >= 3:
			threes++
		case n >= 2:
			pairs++
		}
	}
	return threes >= 2 || (threes >= 1 && pairs >= 1)
}

// HasFlush reports whether any suit reaches the run length.
func (h SuitHistogram) HasFlush(rules Rules) bool {
	for _, n := range h {
		if int(n) >= rules.RunLength {
			return true
		}
	}
	return false
}
