package poker

// ScoringCards marks in out the cards of played that score for hand type t
// and returns how many were marked.
//
// Flush hands score the whole flush suit and straights score the run. When
// runs are shortened, a straight also scores cards paired with its ranks.
// Rank based hands score the cards of ranks reaching the hand's multiplicity
// and a high card scores the single highest card.
func ScoringCards(played *Buffer, t HandType, rules Rules, out *Selection) int {
	out.Clear()

	switch t {
	case Flush, FlushHouse, FlushFive:
		return FindFlush(played, rules.RunLength, out)
	case StraightFlush:
		FindFlush(played, rules.RunLength, out)
		var run Selection
		scoreStraight(played, rules, &run)
		for i, v := range run {
			if v {
				out[i] = true
			}
		}
		return out.Count()
	case Straight:
		return scoreStraight(played, rules, out)
	case FiveOfAKind:
		return markRanksAtLeast(played, 5, out)
	case FourOfAKind:
		return markRanksAtLeast(played, 4, out)
	case ThreeOfAKind:
		return markRanksAtLeast(played, 3, out)
	case FullHouse, TwoPair, Pair:
		return markRanksAtLeast(played, 2, out)
	case HighCard:
		return markHighCard(played, out)
	default:
		return 0
	}
}

func scoreStraight(played *Buffer, rules Rules, out *Selection) int {
	if FindStraight(played, rules, out) == 0 {
		return 0
	}
	if rules.ShortRuns() {
		ExtendWithPairedRanks(played, out)
	}
	return out.Count()
}

func markRanksAtLeast(played *Buffer, n uint8, out *Selection) int {
	ranks, _ := distribution(played, false)
	count := 0
	for i := 0; i <= played.Top(); i++ {
		if c, ok := played.Card(i); ok && ranks[c.Rank] >= n {
			out[i] = true
			count++
		}
	}
	return count
}

func markHighCard(played *Buffer, out *Selection) int {
	best := -1
	for i := 0; i <= played.Top(); i++ {
		c, ok := played.Card(i)
		if !ok {
			continue
		}
		if hc, _ := played.Card(best); best < 0 || c.Rank > hc.Rank {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	out[best] = true
	return 1
}
