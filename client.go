package codewiki

import (
	"context"
	"fmt"
	"time"
)

// Default render budgets for the two page kinds.
var (
	DefaultFeaturedOptions = RenderOptions{Timeout: 45 * time.Second, Settle: 2 * time.Second}
	DefaultDocumentOptions = RenderOptions{Timeout: 60 * time.Second, Settle: 3 * time.Second}
)

// Client fetches records from the Code Wiki site through a Renderer.
// Each call renders exactly one page; calls are not retried.
type Client struct {
	Renderer Renderer
	SiteURL  string

	FeaturedOptions RenderOptions
	DocumentOptions RenderOptions

	// Extractor and Converter are only required by ExportRepo.
	Extractor Extractor
	Converter Converter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewClient returns a Client for the default site with default budgets.
func NewClient(r Renderer) *Client {
	return &Client{
		Renderer:        r,
		SiteURL:         DefaultSiteURL,
		FeaturedOptions: DefaultFeaturedOptions,
		DocumentOptions: DefaultDocumentOptions,
		Now:             time.Now,
	}
}

// FeaturedRepos returns the repositories featured on the site homepage.
func (c *Client) FeaturedRepos(ctx context.Context) ([]*RepoSummary, error) {
	var repos []*RepoSummary
	err := c.Renderer.Render(ctx, c.SiteURL, c.FeaturedOptions, func(doc Document) error {
		var err error
		repos, err = ExtractFeatured(doc, c.SiteURL)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("featured repositories: %w", err)
	}
	return repos, nil
}

// RepoDocumentation returns the documentation page of owner/repo.
func (c *Client) RepoDocumentation(ctx context.Context, owner, repo string) (*RepoDocument, error) {
	if owner == "" || repo == "" {
		return nil, Errorf(EINVALID, "owner and repo required")
	}

	pageURL := RepoURL(c.SiteURL, owner, repo)
	var result *RepoDocument
	err := c.Renderer.Render(ctx, pageURL, c.DocumentOptions, func(doc Document) error {
		var err error
		result, err = ExtractDocumentation(doc, owner, repo, pageURL)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("documentation for %s/%s: %w", owner, repo, err)
	}
	return result, nil
}

// ExportRepo renders the documentation page of owner/repo and converts its
// main content to Markdown.
func (c *Client) ExportRepo(ctx context.Context, owner, repo string) (*Export, error) {
	if owner == "" || repo == "" {
		return nil, Errorf(EINVALID, "owner and repo required")
	}
	if c.Extractor == nil || c.Converter == nil {
		return nil, Errorf(EINTERNAL, "export requires an extractor and a converter")
	}

	pageURL := RepoURL(c.SiteURL, owner, repo)
	var html string
	err := c.Renderer.Render(ctx, pageURL, c.DocumentOptions, func(doc Document) error {
		var err error
		html, err = doc.HTML()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("export of %s/%s: %w", owner, repo, err)
	}

	extracted, err := c.Extractor.Extract(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extracting content of %s/%s: %w", owner, repo, err)
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML, pageURL)
	if err != nil {
		return nil, fmt.Errorf("converting content of %s/%s: %w", owner, repo, err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	return &Export{
		Owner:     owner,
		Repo:      repo,
		URL:       pageURL,
		Title:     extracted.Title,
		Content:   markdown,
		FetchedAt: now(),
	}, nil
}
