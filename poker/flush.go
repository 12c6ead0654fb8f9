package poker

// FindFlush marks in out every card of the most common suit in buf and
// returns that suit's count, provided it reaches minLen. Otherwise it returns
// 0 with out cleared. Ties go to the lowest suit.
func FindFlush(buf *Buffer, minLen int, out *Selection) int {
	out.Clear()
	if buf.Top() < 0 {
		return 0
	}

	_, suits := distribution(buf, false)

	best, bestCount := -1, 0
	for s, n := range suits {
		if int(n) > bestCount {
			best, bestCount = s, int(n)
		}
	}
	if best < 0 || bestCount < minLen {
		return 0
	}

	for i := 0; i <= buf.Top(); i++ {
		if c, ok := buf.Card(i); ok && c.Suit == Suit(best) {
			out[i] = true
		}
	}
	return bestCount
}
