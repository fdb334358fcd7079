package main

import (
	"fmt"

	"github.com/fwojciec/codewiki"
)

// Run executes the doc command.
func (c *DocCmd) Run(deps *Dependencies) error {
	doc, err := deps.Client.RepoDocumentation(deps.Ctx, c.owner, c.repo)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	fmt.Fprint(deps.Stdout, codewiki.FormatOutline(doc, c.Limit))
	return nil
}
