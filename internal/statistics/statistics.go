package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/handanalysis/poker"
)

// numTypes sizes the per-type tables; FlushFive is the strongest type.
const numTypes = int(poker.FlushFive) + 1

// HandResult represents the outcome of a single simulated play
type HandResult struct {
	Type    poker.HandType
	Played  int   // Cards played
	Scoring int   // Cards that scored
	Seed    int64 // RNG seed for this hand (for replay)
}

// Statistics tracks hand type frequencies over a simulation
type Statistics struct {
	Hands        int
	TypeCounts   [numTypes]int
	PlayedCards  int
	ScoringCards int
	Elapsed      time.Duration
}

// Add records a single result
func (s *Statistics) Add(result HandResult) {
	s.Hands++
	if int(result.Type) < numTypes {
		s.TypeCounts[result.Type]++
	}
	s.PlayedCards += result.Played
	s.ScoringCards += result.Scoring
}

// Merge folds other into s. Elapsed keeps the longer of the two.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	for i, n := range other.TypeCounts {
		s.TypeCounts[i] += n
	}
	s.PlayedCards += other.PlayedCards
	s.ScoringCards += other.ScoringCards
	s.Elapsed = max(s.Elapsed, other.Elapsed)
}

// Count returns how many hands classified as t
func (s *Statistics) Count(t poker.HandType) int {
	if int(t) >= numTypes {
		return 0
	}
	return s.TypeCounts[t]
}

// Frequency returns the share of hands classified as t
func (s *Statistics) Frequency(t poker.HandType) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Count(t)) / float64(s.Hands)
}

// StdError returns the standard error of Frequency(t)
func (s *Statistics) StdError(t poker.HandType) float64 {
	if s.Hands == 0 {
		return 0
	}
	p := s.Frequency(t)
	return math.Sqrt(p * (1 - p) / float64(s.Hands))
}

// ScoringRatio returns the mean share of played cards that scored
func (s *Statistics) ScoringRatio() float64 {
	if s.PlayedCards == 0 {
		return 0
	}
	return float64(s.ScoringCards) / float64(s.PlayedCards)
}

// HandsPerSecond returns simulation throughput
func (s *Statistics) HandsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Hands) / s.Elapsed.Seconds()
}

// Types returns the hand types seen at least once, weakest first
func (s *Statistics) Types() []poker.HandType {
	var types []poker.HandType
	for i, n := range s.TypeCounts {
		if n > 0 {
			types = append(types, poker.HandType(i))
		}
	}
	return types
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	total := 0
	for _, n := range s.TypeCounts {
		total += n
	}
	if total != s.Hands {
		return fmt.Errorf("type counts total (%d) does not match hands count (%d)", total, s.Hands)
	}

	if s.TypeCounts[poker.NoHand] != 0 {
		return fmt.Errorf("%d hands played no cards", s.TypeCounts[poker.NoHand])
	}

	if s.ScoringCards > s.PlayedCards {
		return fmt.Errorf("scoring cards (%d) exceed played cards (%d)", s.ScoringCards, s.PlayedCards)
	}

	return nil
}

// TypeFrequency is one row of a frequency table
type TypeFrequency struct {
	Type      string  `json:"type"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
	StdError  float64 `json:"stderr"`
}

// Table returns a row for each hand type seen, weakest first
func (s *Statistics) Table() []TypeFrequency {
	types := s.Types()
	rows := make([]TypeFrequency, len(types))
	for i, t := range types {
		rows[i] = TypeFrequency{
			Type:      t.String(),
			Count:     s.Count(t),
			Frequency: s.Frequency(t),
			StdError:  s.StdError(t),
		}
	}
	return rows
}
