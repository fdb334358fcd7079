package codewiki

import (
	"strings"
	"time"
)

// DefaultSiteURL is the base URL of the Code Wiki site.
const DefaultSiteURL = "https://codewiki.google"

// RepoSummary is a single featured repository listed on the homepage.
type RepoSummary struct {
	Name        string  `json:"name" yaml:"name"`
	FullName    string  `json:"fullName" yaml:"fullName"`
	Description string  `json:"description" yaml:"description"`
	Stars       *string `json:"stars" yaml:"stars"`
	URL         string  `json:"url" yaml:"url"`
}

// HeadingLevel identifies the depth of a documentation heading.
type HeadingLevel string

// Heading levels used by documentation pages. Deeper headings are ignored.
const (
	HeadingSection    HeadingLevel = "H2"
	HeadingSubsection HeadingLevel = "H3"
)

// TocEntry is one heading of a documentation page.
type TocEntry struct {
	Level HeadingLevel `json:"level" yaml:"level"`
	Text  string       `json:"text" yaml:"text"`
	ID    string       `json:"id" yaml:"id"`
}

// CodeLink is a link from documentation into a source file or directory.
type CodeLink struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// RepoDocument is the documentation extracted for one repository.
// Body holds the full visible text; it is never truncated here.
type RepoDocument struct {
	Owner     string     `json:"owner" yaml:"owner"`
	Repo      string     `json:"repo" yaml:"repo"`
	URL       string     `json:"url" yaml:"url"`
	Title     string     `json:"title" yaml:"title"`
	TOC       []TocEntry `json:"toc" yaml:"toc"`
	Body      string     `json:"body" yaml:"body"`
	CodeLinks []CodeLink `json:"codeLinks" yaml:"codeLinks"`
}

// Export is a repository documentation page converted to Markdown.
type Export struct {
	Owner     string
	Repo      string
	URL       string
	Title     string
	Content   string // Markdown
	FetchedAt time.Time
}

// Validate returns an error if the export is missing required fields.
func (e *Export) Validate() error {
	if e.Owner == "" || e.Repo == "" {
		return Errorf(EINVALID, "export owner and repo required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "export URL required")
	}
	return nil
}

// ParseRepoSpec splits an "owner/repo" specifier into its parts.
// Returns EINVALID unless the specifier has exactly two non-empty parts.
func ParseRepoSpec(spec string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimSpace(spec), "/")
	if len(parts) != 2 {
		return "", "", Errorf(EINVALID, "repository must be given as owner/repo, got %q", spec)
	}
	owner, repo = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if owner == "" || repo == "" {
		return "", "", Errorf(EINVALID, "repository must be given as owner/repo, got %q", spec)
	}
	return owner, repo, nil
}

// RepoURL returns the documentation page URL for a repository.
func RepoURL(siteURL, owner, repo string) string {
	return strings.TrimSuffix(siteURL, "/") + "/github.com/" + owner + "/" + repo
}
