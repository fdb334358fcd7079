package main

import (
	"fmt"

	"github.com/fwojciec/codewiki"
	"github.com/fwojciec/codewiki/readability"
	"github.com/fwojciec/codewiki/trafilatura"
)

// Run executes the export command. It stops at the first repository that
// fails.
func (c *ExportCmd) Run(deps *Dependencies) error {
	for _, ref := range c.refs {
		export, err := deps.Client.ExportRepo(deps.Ctx, ref.owner, ref.repo)
		if err != nil {
			reportError(deps.Stderr, err)
			return err
		}

		if err := deps.Exports.WriteExport(deps.Ctx, export); err != nil {
			reportError(deps.Stderr, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %s/%s\n", export.Owner, export.Repo)
	}
	return nil
}

// newExtractor returns the main content extractor selected by name.
func newExtractor(name string) (codewiki.Extractor, error) {
	switch name {
	case "", "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	}
	return nil, codewiki.Errorf(codewiki.EINVALID, "unknown extractor %q", name)
}
