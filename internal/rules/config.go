package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handanalysis/poker"
)

// Config represents a rules file:
//
//	rules {
//	  run_length   = 5
//	  wrap         = false
//	  gap_tolerant = false
//	}
//
//	jokers = ["four_fingers", "mobius"]
type Config struct {
	Rules  *RulesBlock `hcl:"rules,block"`
	Jokers []string    `hcl:"jokers,optional"`
}

// RulesBlock holds explicit run modifiers.
type RulesBlock struct {
	RunLength   int  `hcl:"run_length,optional"`
	Wrap        bool `hcl:"wrap,optional"`
	GapTolerant bool `hcl:"gap_tolerant,optional"`
}

// DefaultConfig returns standard rules with no jokers.
func DefaultConfig() *Config {
	return &Config{
		Rules: &RulesBlock{RunLength: poker.DefaultRunLength},
	}
}

// LoadConfig loads a rules file. A missing file yields DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source. filename is only used in diagnostics.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Rules == nil {
		config.Rules = &RulesBlock{}
	}
	if config.Rules.RunLength == 0 {
		config.Rules.RunLength = poker.DefaultRunLength
	}

	return &config, nil
}

// Validate validates the rules configuration
func (c *Config) Validate() error {
	if _, err := c.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve returns the effective rules: the rules block with the jokers'
// effects applied on top.
func (c *Config) Resolve() (poker.Rules, error) {
	base := poker.DefaultRules()
	if c.Rules != nil {
		base = poker.Rules{
			Wrap:        c.Rules.Wrap,
			GapTolerant: c.Rules.GapTolerant,
			RunLength:   c.Rules.RunLength,
		}
	}

	r, err := Resolve(base, c.Jokers...)
	if err != nil {
		return poker.Rules{}, err
	}
	if err := r.Validate(); err != nil {
		return poker.Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return r, nil
}
