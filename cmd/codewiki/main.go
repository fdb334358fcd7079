package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/codewiki"
	"github.com/fwojciec/codewiki/fs"
	"github.com/fwojciec/codewiki/htmltomarkdown"
	cwhttp "github.com/fwojciec/codewiki/http"
	"github.com/fwojciec/codewiki/rate"
	"github.com/fwojciec/codewiki/rod"
	cwslog "github.com/fwojciec/codewiki/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Renderer replaces the browser for end-to-end testing. When nil, Run
	// launches a headless browser session for commands that render pages.
	Renderer codewiki.Renderer

	// Browser session owned by Main, if one was launched.
	Session *rod.Session
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Session != nil {
		return m.Session.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before Run returns them.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Kong calls exit after printing help.
	helpShown := false
	cli := &CLI{}
	parser, err := newParser(cli, deps, stdout, stderr, func(int) { helpShown = true })
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if helpShown {
		return nil
	}
	if err != nil {
		if codewiki.ErrorCode(err) == codewiki.EINVALID {
			fmt.Fprintf(stderr, "usage: codewiki %s\n", usageLine(err))
		} else {
			fmt.Fprintf(stderr, "error: %s\n", err)
			printUsage(deps, stderr)
		}
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	renderer, err := m.renderer(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		fmt.Fprintf(stderr, "error: failed to start browser: %s\n", err)
		return err
	}
	defer m.Close()

	renderer = rate.NewRenderer(cwslog.NewLoggingRenderer(renderer, logger), cli.Rate)
	client := codewiki.NewClient(renderer)
	client.SiteURL = cli.Site
	client.FeaturedOptions, client.DocumentOptions = cli.RenderOptions()
	if kongCtx.Selected() != nil && kongCtx.Selected().Name == "export" {
		extractor, err := newExtractor(cli.Export.Extractor)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", codewiki.ErrorMessage(err))
			return err
		}
		client.Extractor = extractor
		client.Converter = htmltomarkdown.NewConverter()
		deps.Exports = fs.NewWriter(cli.Export.Dir)
	}

	deps.Format = cli.Format
	deps.Client = client

	return kongCtx.Run(deps)
}

// newParser creates the kong parser for cli. Help is written to stdout,
// parse errors are left to the caller.
func newParser(cli *CLI, deps *Dependencies, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	parser, err := kong.New(cli,
		kong.Name("codewiki"),
		kong.Description("Read featured repositories and documentation from Code Wiki."),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.Bind(deps),
		kong.Vars{"user_agent": rod.DefaultUserAgent},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return parser, nil
}

// printUsage writes the full command list to w.
func printUsage(deps *Dependencies, w io.Writer) {
	parser, err := newParser(&CLI{}, deps, w, w, func(int) {})
	if err != nil {
		return
	}
	fmt.Fprintln(w)
	_, _ = parser.Parse([]string{"--help"})
}

// renderer returns the injected renderer, a static HTTP renderer, or a
// renderer backed by a newly launched browser session.
func (m *Main) renderer(cli *CLI) (codewiki.Renderer, error) {
	if m.Renderer != nil {
		return m.Renderer, nil
	}
	if cli.Static {
		return cwhttp.NewRenderer(cwhttp.WithUserAgent(cli.UserAgent)), nil
	}

	var opts []rod.SessionOption
	if cli.BrowserBin != "" {
		opts = append(opts, rod.WithBrowserBin(cli.BrowserBin))
	}
	session, err := rod.NewSession(opts...)
	if err != nil {
		return nil, err
	}
	m.Session = session
	return rod.NewRenderer(session,
		rod.WithUserAgent(cli.UserAgent),
		rod.WithIdleWindow(cli.IdleWindow),
	), nil
}

// usageLine returns the usage of the command a parse error belongs to.
func usageLine(err error) string {
	var perr *kong.ParseError
	if errors.As(err, &perr) && perr.Context != nil {
		if node := perr.Context.Selected(); node != nil {
			if node.Name == "export" {
				return "export <owner/repo>..."
			}
			return node.Name + " <owner/repo>"
		}
	}
	return "<command> <owner/repo>"
}
