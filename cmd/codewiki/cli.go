package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/codewiki"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Format string
	Client *codewiki.Client

	// Exports receives the results of the export command.
	Exports codewiki.ExportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool    `short:"v" help:"Log page renders to stderr"`
	Format  string  `short:"f" enum:"json,yaml" default:"json" help:"Output format for structured commands (json, yaml)"`
	Site    string  `default:"https://codewiki.google" hidden:"" help:"Code Wiki base URL"`
	Static  bool    `help:"Fetch pages without a browser (no client-side rendering)"`
	Rate    float64 `default:"1" help:"Maximum page loads per second (0 for no limit)"`

	BrowserBin string        `type:"path" help:"Chrome or Chromium binary to launch (default: local install or download)"`
	UserAgent  string        `default:"${user_agent}" help:"User agent sent with page requests"`
	IdleWindow time.Duration `default:"500ms" help:"Quiet network period after which a page counts as loaded"`

	ListTimeout time.Duration `default:"45s" help:"Render budget for the featured list"`
	ListSettle  time.Duration `default:"2s" help:"Extra wait after the featured list settles"`
	DocTimeout  time.Duration `default:"60s" help:"Render budget for a documentation page"`
	DocSettle   time.Duration `default:"3s" help:"Extra wait after a documentation page settles"`

	Featured FeaturedCmd `cmd:"" help:"List featured repositories"`
	Repo     RepoCmd     `cmd:"" help:"Print the full documentation record of a repository"`
	Doc      DocCmd      `cmd:"" help:"Print a readable outline of a repository's documentation"`
	Export   ExportCmd   `cmd:"" help:"Export a repository's documentation as Markdown"`
}

// RenderOptions returns the render budgets configured by flags.
func (c *CLI) RenderOptions() (featured, document codewiki.RenderOptions) {
	featured = codewiki.RenderOptions{Timeout: c.ListTimeout, Settle: c.ListSettle}
	document = codewiki.RenderOptions{Timeout: c.DocTimeout, Settle: c.DocSettle}
	return featured, document
}

// RepoArg is the owner/repo positional shared by per-repository commands.
type RepoArg struct {
	Spec string `arg:"" name:"owner/repo" help:"Repository as owner/repo"`

	owner string
	repo  string
}

// Validate parses the specifier. Kong calls it while parsing, so a malformed
// specifier is rejected before a browser is launched.
func (a *RepoArg) Validate() error {
	owner, repo, err := codewiki.ParseRepoSpec(a.Spec)
	if err != nil {
		return err
	}
	a.owner, a.repo = owner, repo
	return nil
}

// repoRef is a parsed owner/repo specifier.
type repoRef struct {
	owner string
	repo  string
}

// FeaturedCmd is the "featured" subcommand.
type FeaturedCmd struct{}

// RepoCmd is the "repo" subcommand.
type RepoCmd struct {
	RepoArg
}

// DocCmd is the "doc" subcommand.
type DocCmd struct {
	RepoArg
	Limit int `default:"5000" help:"Maximum characters of body text to print (0 for all)"`
}

// ExportCmd is the "export" subcommand. Repositories are exported one at a
// time in argument order.
type ExportCmd struct {
	Specs     []string `arg:"" name:"owner/repo" help:"Repositories as owner/repo"`
	Dir       string   `short:"o" default:"." type:"path" help:"Output directory"`
	Extractor string   `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor (trafilatura, readability)"`

	refs []repoRef
}

// Validate parses every specifier before anything is rendered.
func (c *ExportCmd) Validate() error {
	c.refs = c.refs[:0]
	for _, spec := range c.Specs {
		owner, repo, err := codewiki.ParseRepoSpec(spec)
		if err != nil {
			return err
		}
		c.refs = append(c.refs, repoRef{owner: owner, repo: repo})
	}
	return nil
}

// reportError writes err to stderr in the format shared by all commands.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", codewiki.ErrorMessage(err))
}
