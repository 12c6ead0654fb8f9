package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/handanalysis/internal/rules"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug   bool `help:"Enable debug logging"`
	JSON    bool `name:"json" help:"Write results as JSON lines to stdout"`
	NoColor bool `help:"Disable colored output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify played cards under the given rules"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate hand type frequencies for random plays"`
	Jokers   JokersCmd        `cmd:"" help:"List the jokers that change straights and flushes"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("handscan"),
		kong.Description("Classify poker hands under straight and flush modifiers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"jokers":  strings.Join(rules.Names(), ", "),
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// Logger returns the diagnostic logger, writing to stderr.
func (g *Globals) Logger() *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(g.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: g.Debug,
	})
}

// Results returns a zerolog logger for structured (JSON) results on stdout
func (g *Globals) Results() zerolog.Logger {
	return zerolog.New(g.Stdout).With().Timestamp().Logger()
}
