package main

import "fmt"

type JokersCmd struct{}

func (c *JokersCmd) Run(g *Globals) error {
	fmt.Fprint(g.Stdout, renderJokers())
	return nil
}
