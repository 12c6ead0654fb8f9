package poker

// link is a candidate predecessor in a run: the length of the best run
// ending at rank from. from is -1 when there is no predecessor.
type link struct {
	length int
	from   int
}

// predecessors returns the links one rank below r and, for gap-tolerant
// runs, two ranks below r. Ace sits below Two only with wrap; otherwise a
// present Ace contributes a virtual ace-low run of length aceLow.
func predecessors(longest *[NumRanks]int, r Rank, rules Rules, aceLow int) (near, far link) {
	far = link{from: -1}
	belowTwo := aceLow
	if rules.Wrap {
		belowTwo = longest[Ace]
	}

	switch r {
	case Two:
		near = link{length: belowTwo, from: int(Ace)}
		if rules.GapTolerant {
			far = link{from: int(King)}
			if rules.Wrap {
				far.length = longest[King]
			}
		}
	case Ace:
		near = link{length: longest[King], from: int(King)}
		if rules.GapTolerant {
			far = link{length: longest[Queen], from: int(Queen)}
		}
	default:
		near = link{length: longest[r-1], from: int(r - 1)}
		if rules.GapTolerant {
			if r == Three {
				far = link{length: belowTwo, from: int(Ace)}
			} else {
				far = link{length: longest[r-2], from: int(r - 2)}
			}
		}
	}
	return near, far
}

// scanLimit is how many ranks a run scan visits. With wrap the domain is
// scanned a second time so runs can cross the Ace boundary.
func scanLimit(rules Rules, extra int) int {
	if rules.Wrap {
		return NumRanks + extra
	}
	return NumRanks
}

// HasStraight reports whether the histogram holds a run of at least
// rules.RunLength ranks.
func (h RankHistogram) HasStraight(rules Rules) bool {
	if rules.GapTolerant {
		return h.hasGappedRun(rules)
	}
	return h.hasConsecutiveRun(rules)
}

func (h RankHistogram) hasConsecutiveRun(rules Rules) bool {
	size := rules.RunLength
	run := 0
	for i := 0; i < scanLimit(rules, size); i++ {
		if h[i%NumRanks] == 0 {
			run = 0
			continue
		}
		run++
		if run >= size {
			return true
		}
	}

	// Ace-low run (A-2-3-4-5 and shorter). Wrap already covers it above.
	if rules.Wrap || size < 2 || h[Ace] == 0 {
		return false
	}
	last := int(Two) + size - 2
	if last > int(Five) {
		return false
	}
	for r := int(Two); r <= last; r++ {
		if h[r] == 0 {
			return false
		}
	}
	return true
}

func (h RankHistogram) hasGappedRun(rules Rules) bool {
	var longest [NumRanks]int
	aceLow := 0
	if h[Ace] > 0 {
		aceLow = 1
	}

	for i := 0; i < scanLimit(rules, NumRanks); i++ {
		r := Rank(i % NumRanks)
		if h[r] == 0 {
			longest[r] = 0
			continue
		}
		near, far := predecessors(&longest, r, rules, aceLow)
		longest[r] = 1 + max(near.length, far.length)
		if longest[r] >= rules.RunLength {
			return true
		}
	}
	return false
}

// FindStraight marks in out the cards of buf that form the longest run and
// returns how many were marked. Every occupied slot counts regardless of its
// selected flag. One card is taken per rank step of the run, earliest slot
// first. When the longest run is shorter than rules.RunLength it returns 0
// with out cleared.
//
// When several ranks end a run of the same best length, the highest such
// rank wins.
func FindStraight(buf *Buffer, rules Rules, out *Selection) int {
	out.Clear()
	if buf.Top() < 0 {
		return 0
	}

	ranks, _ := distribution(buf, false)

	var longest [NumRanks]int
	var parent [NumRanks]int
	for i := range parent {
		parent[i] = -1
	}
	aceLow := 0
	if ranks[Ace] > 0 {
		aceLow = 1
	}

	for i := 0; i < scanLimit(rules, NumRanks); i++ {
		r := Rank(i % NumRanks)
		if ranks[r] == 0 {
			continue
		}
		near, far := predecessors(&longest, r, rules, aceLow)
		if near.length >= far.length {
			longest[r] = 1 + near.length
			parent[r] = near.from
		} else {
			longest[r] = 1 + far.length
			parent[r] = far.from
		}
	}

	bestLen, end := 0, -1
	for r, n := range longest {
		if n >= bestLen {
			bestLen, end = n, r
		}
	}
	if bestLen < rules.RunLength {
		return 0
	}

	var needed [NumRanks]int
	for cur, steps := end, bestLen; cur != -1 && steps > 0; steps-- {
		needed[cur]++
		cur = parent[cur]
	}

	count := 0
	for i := 0; i <= buf.Top(); i++ {
		c, ok := buf.Card(i)
		if !ok || needed[c.Rank] == 0 {
			continue
		}
		out[i] = true
		needed[c.Rank]--
		count++
	}
	return count
}
