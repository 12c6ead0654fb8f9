package poker

// played builds a buffer from card notation, e.g. "AcAd2h3s4c".
func played(s string) *Buffer {
	return NewBuffer(MustParseCards(s)...)
}

// hist builds a rank histogram with one count per listed rank.
func hist(ranks ...Rank) RankHistogram {
	var h RankHistogram
	for _, r := range ranks {
		h[r]++
	}
	return h
}

// flagged returns a selection with the given indices set.
func flagged(idx ...int) Selection {
	var s Selection
	for _, i := range idx {
		s[i] = true
	}
	return s
}
