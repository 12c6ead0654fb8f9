package poker

// MaxCards is the fixed capacity of a Buffer.
const MaxCards = 16

// Slot is one position in a Buffer. An unoccupied slot holds no card and is
// skipped by every scan.
type Slot struct {
	card     Card
	occupied bool
	selected bool
}

// Buffer is a fixed-capacity ordered run of card slots, such as a player's
// hand or the cards just played. Slots up to Top() may contain gaps.
//
// The zero value is an empty buffer.
type Buffer struct {
	slots [MaxCards]Slot
	n     int // slots in use; Top() == n-1
}

// NewBuffer returns a buffer holding cards in order. Cards beyond MaxCards
// are dropped.
func NewBuffer(cards ...Card) *Buffer {
	b := &Buffer{}
	for _, c := range cards {
		if b.Push(c) < 0 {
			break
		}
	}
	return b
}

// Top returns the index of the last slot in use, or -1 when empty.
func (b *Buffer) Top() int {
	return b.n - 1
}

// Len returns the number of occupied slots.
func (b *Buffer) Len() int {
	count := 0
	for i := 0; i < b.n; i++ {
		if b.slots[i].occupied {
			count++
		}
	}
	return count
}

// Card returns the card in slot i and whether the slot is occupied.
func (b *Buffer) Card(i int) (Card, bool) {
	if i < 0 || i >= b.n || !b.slots[i].occupied {
		return Card{}, false
	}
	return b.slots[i].card, true
}

// Selected reports whether slot i is occupied and flagged selected.
func (b *Buffer) Selected(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}
	return b.slots[i].occupied && b.slots[i].selected
}

// Push appends c after Top and returns its index, or -1 if the buffer is full.
func (b *Buffer) Push(c Card) int {
	if b.n >= MaxCards {
		return -1
	}
	b.slots[b.n] = Slot{card: c, occupied: true}
	b.n++
	return b.n - 1
}

// Remove empties slot i, leaving a gap. Top is unchanged.
func (b *Buffer) Remove(i int) (Card, bool) {
	c, ok := b.Card(i)
	if !ok {
		return Card{}, false
	}
	b.slots[i] = Slot{}
	return c, true
}

// SetSelected flags an occupied slot as selected or not. It returns false
// for empty or out of range slots.
func (b *Buffer) SetSelected(i int, selected bool) bool {
	if i < 0 || i >= b.n || !b.slots[i].occupied {
		return false
	}
	b.slots[i].selected = selected
	return true
}

// Compact closes gaps, preserving the order of the remaining cards.
func (b *Buffer) Compact() {
	w := 0
	for r := 0; r < b.n; r++ {
		if !b.slots[r].occupied {
			continue
		}
		b.slots[w] = b.slots[r]
		w++
	}
	for i := w; i < b.n; i++ {
		b.slots[i] = Slot{}
	}
	b.n = w
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Cards returns the occupied cards in slot order.
func (b *Buffer) Cards() []Card {
	cards := make([]Card, 0, b.n)
	for i := 0; i < b.n; i++ {
		if b.slots[i].occupied {
			cards = append(cards, b.slots[i].card)
		}
	}
	return cards
}

// Selection flags slots of a Buffer, one per index. A flag is only ever set
// for an occupied slot.
type Selection [MaxCards]bool

// Clear resets every flag.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Count returns the number of flagged slots.
func (s *Selection) Count() int {
	count := 0
	for _, v := range s {
		if v {
			count++
		}
	}
	return count
}

// Indices returns the flagged slot indices in ascending order.
func (s *Selection) Indices() []int {
	var idx []int
	for i, v := range s {
		if v {
			idx = append(idx, i)
		}
	}
	return idx
}

// Cards returns the cards of b flagged by s, in slot order.
func (s *Selection) Cards(b *Buffer) []Card {
	var cards []Card
	for i, v := range s {
		if !v {
			continue
		}
		if c, ok := b.Card(i); ok {
			cards = append(cards, c)
		}
	}
	return cards
}
