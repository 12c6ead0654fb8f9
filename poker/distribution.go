package poker

// RankHistogram counts cards per rank.
type RankHistogram [NumRanks]uint8

// SuitHistogram counts cards per suit.
type SuitHistogram [NumSuits]uint8

// Total returns the number of counted cards.
func (h RankHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += int(n)
	}
	return total
}

// Total returns the number of counted cards.
func (h SuitHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += int(n)
	}
	return total
}

// HandDistribution counts the selected cards of a hand.
func HandDistribution(hand *Buffer) (RankHistogram, SuitHistogram) {
	return distribution(hand, true)
}

// PlayedDistribution counts every card in the played buffer. Played cards
// always count, whether or not they are still flagged selected.
func PlayedDistribution(played *Buffer) (RankHistogram, SuitHistogram) {
	return distribution(played, false)
}

func distribution(b *Buffer, selectedOnly bool) (ranks RankHistogram, suits SuitHistogram) {
	for i := 0; i <= b.Top(); i++ {
		slot := &b.slots[i]
		if !slot.occupied || (selectedOnly && !slot.selected) {
			continue
		}
		ranks[slot.card.Rank]++
		suits[slot.card.Suit]++
	}
	return ranks, suits
}
