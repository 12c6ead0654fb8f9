package poker

// ExtendWithPairedRanks adds to sel every unselected card of buf whose rank
// is already among the selected cards, so a short straight such as A-A-2-3-4
// scores both aces. It does nothing when sel is empty and is idempotent.
func ExtendWithPairedRanks(buf *Buffer, sel *Selection) {
	var chosen [NumRanks]bool
	found := false
	for i := 0; i <= buf.Top(); i++ {
		if !sel[i] {
			continue
		}
		if c, ok := buf.Card(i); ok {
			chosen[c.Rank] = true
			found = true
		}
	}
	if !found {
		return
	}

	for i := 0; i <= buf.Top(); i++ {
		if sel[i] {
			continue
		}
		if c, ok := buf.Card(i); ok && chosen[c.Rank] {
			sel[i] = true
		}
	}
}
