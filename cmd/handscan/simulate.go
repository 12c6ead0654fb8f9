package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lox/handanalysis/internal/fileutil"
	"github.com/lox/handanalysis/internal/simulator"
	"github.com/lox/handanalysis/internal/statistics"
)

type SimulateCmd struct {
	RuleFlags `embed:""`

	Samples  int           `short:"n" default:"100000" help:"Number of hands to play"`
	HandSize int           `default:"8" help:"Cards drawn per hand"`
	PlaySize int           `default:"5" help:"Cards played per hand"`
	Seed     int64         `default:"0" help:"RNG seed (0 for random)"`
	Workers  int           `default:"0" help:"Worker goroutines (0 for one per CPU)"`
	Timeout  time.Duration `default:"0" help:"Abort the run after this long (0 for no limit)"`
	Out      string        `type:"path" help:"Also write a JSON report to this file"`
}

type report struct {
	Run          string                     `json:"run"`
	Seed         int64                      `json:"seed"`
	RunLength    int                        `json:"run_length"`
	Wrap         bool                       `json:"wrap"`
	GapTolerant  bool                       `json:"gap_tolerant"`
	Hands        int                        `json:"hands"`
	ScoringRatio float64                    `json:"scoring_ratio"`
	Types        []statistics.TypeFrequency `json:"types"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	r, err := c.Resolve()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	sim, err := simulator.New(simulator.Config{
		Samples:  c.Samples,
		HandSize: c.HandSize,
		PlaySize: c.PlaySize,
		Seed:     c.Seed,
		Workers:  c.Workers,
		Rules:    r,
		Logger:   g.Logger(),
	})
	if err != nil {
		return err
	}

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if c.Out != "" {
		err := fileutil.WriteJSON(c.Out, report{
			Run:          sim.RunID(),
			Seed:         sim.Seed(),
			RunLength:    r.RunLength,
			Wrap:         r.Wrap,
			GapTolerant:  r.GapTolerant,
			Hands:        stats.Hands,
			ScoringRatio: stats.ScoringRatio(),
			Types:        stats.Table(),
		})
		if err != nil {
			return err
		}
		g.Logger().Info("Report written", "path", c.Out)
	}

	if g.JSON {
		logger := g.Results().With().Str("run", sim.RunID()).Logger()
		for _, row := range stats.Table() {
			logger.Info().
				Str("type", row.Type).
				Int("count", row.Count).
				Float64("frequency", row.Frequency).
				Float64("stderr", row.StdError).
				Msg("frequency")
		}
		logger.Info().
			Int("hands", stats.Hands).
			Int64("seed", sim.Seed()).
			Float64("scoring_ratio", stats.ScoringRatio()).
			Dur("elapsed", stats.Elapsed).
			Msg("summary")
		return nil
	}

	fmt.Fprint(g.Stdout, renderStatistics(stats, r, sim.RunID(), sim.Seed()))
	return nil
}
