package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handanalysis/internal/rules"
	"github.com/lox/handanalysis/internal/statistics"
	"github.com/lox/handanalysis/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	typeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	scoringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func describeRules(r poker.Rules) string {
	return fmt.Sprintf("run=%d wrap=%t gap=%t", r.RunLength, r.Wrap, r.GapTolerant)
}

func renderClassification(res classification, r poker.Rules) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
	}

	line("Type", typeStyle.Render(res.Type.String()))
	line("Played", strings.Join(cardStrings(res.Played), " "))
	line("Scoring", scoringStyle.Render(strings.Join(cardStrings(res.Scoring), " ")))
	if res.Standard != "" {
		line("Standard", res.Standard)
	}
	line("Rules", describeRules(r))
	return b.String()
}

func renderStatistics(stats *statistics.Statistics, r poker.Rules, runID string, seed int64) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("Run %s: %d hands, seed %d, %s", runID, stats.Hands, seed, describeRules(r))))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%-16s %10s %9s %9s", "Hand", "Count", "Freq", "StdErr")))
	for _, row := range stats.Table() {
		fmt.Fprintf(&b, "%s %10d %s %9s\n",
			typeStyle.Render(fmt.Sprintf("%-16s", row.Type)),
			row.Count,
			percentStyle.Render(fmt.Sprintf("%8.3f%%", 100*row.Frequency)),
			fmt.Sprintf("%.3f%%", 100*row.StdError))
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Scoring cards: %.1f%% of played\n", 100*stats.ScoringRatio())
	if stats.Elapsed > 0 {
		fmt.Fprintf(&b, "Elapsed: %s (%.0f hands/s)\n", stats.Elapsed.Round(time.Millisecond), stats.HandsPerSecond())
	}
	return b.String()
}

func renderJokers() string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%-14s %-10s %4s  %s", "Joker", "Rarity", "Cost", "Effects")))
	for _, name := range rules.Names() {
		j, _ := rules.Lookup(name)
		effects := make([]string, len(j.Effects))
		for i, e := range j.Effects {
			effects[i] = e.Kind.String()
			if e.Value != 0 {
				effects[i] += fmt.Sprintf(" %d", e.Value)
			}
		}
		fmt.Fprintf(&b, "%s %-10s %4d  %s\n",
			typeStyle.Render(fmt.Sprintf("%-14s", j.Name)),
			j.Rarity,
			j.Cost,
			strings.Join(effects, ", "))
	}
	return b.String()
}
