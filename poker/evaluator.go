package poker

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	NoHand HandType = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// String returns a human-readable hand description.
func (t HandType) String() string {
	switch t {
	case NoHand:
		return "None"
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		return "Unknown"
	}
}

// Classify returns the strongest hand type present in the histograms.
func Classify(ranks RankHistogram, suits SuitHistogram, rules Rules) HandType {
	if ranks.Total() == 0 {
		return NoHand
	}

	kind := ranks.NOfAKind()
	flush := suits.HasFlush(rules)
	fullHouse := ranks.HasFullHouse()

	switch {
	case kind >= 5 && flush:
		return FlushFive
	case fullHouse && flush:
		return FlushHouse
	case kind >= 5:
		return FiveOfAKind
	}

	straight := ranks.HasStraight(rules)
	switch {
	case straight && flush:
		return StraightFlush
	case kind == 4:
		return FourOfAKind
	case fullHouse:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case kind == 3:
		return ThreeOfAKind
	case ranks.HasTwoPair():
		return TwoPair
	case kind == 2:
		return Pair
	default:
		return HighCard
	}
}

// Result is the outcome of evaluating a played buffer.
type Result struct {
	Type    HandType
	Scoring Selection // slots of the played buffer that score
	Count   int       // number of scoring cards
}

// Evaluate classifies every card in played and selects the cards that score.
func Evaluate(played *Buffer, rules Rules) Result {
	ranks, suits := PlayedDistribution(played)
	res := Result{Type: Classify(ranks, suits, rules)}
	res.Count = ScoringCards(played, res.Type, rules, &res.Scoring)
	return res
}
