package codewiki

import "strings"

// ExtractDocumentation reads the title, heading outline, visible text and
// source code links from a rendered repository page. Missing headings or
// links yield empty slices, not an error.
func ExtractDocumentation(doc Document, owner, repo, pageURL string) (*RepoDocument, error) {
	result := &RepoDocument{
		Owner:     owner,
		Repo:      repo,
		URL:       pageURL,
		TOC:       []TocEntry{},
		CodeLinks: []CodeLink{},
	}

	h1, err := doc.Query("h1")
	if err != nil {
		return nil, err
	}
	if len(h1) > 0 {
		result.Title = strings.TrimSpace(h1[0].Text)
	}

	headings, err := doc.Query("h2, h3")
	if err != nil {
		return nil, err
	}
	for _, h := range headings {
		level, ok := headingLevel(h.Tag)
		if !ok {
			continue
		}
		result.TOC = append(result.TOC, TocEntry{
			Level: level,
			Text:  strings.TrimSpace(h.Text),
			ID:    h.ID,
		})
	}

	if result.Body, err = doc.VisibleText(); err != nil {
		return nil, err
	}

	anchors, err := doc.Query(`a[href*="github.com"]`)
	if err != nil {
		return nil, err
	}
	for _, a := range anchors {
		if !strings.Contains(a.Href, "github.com/") || !isCodePath(a.Href) {
			continue
		}
		result.CodeLinks = append(result.CodeLinks, CodeLink{
			Text: strings.TrimSpace(a.Text),
			Href: a.Href,
		})
	}

	return result, nil
}

// headingLevel maps a heading tag to its outline level.
func headingLevel(tag string) (HeadingLevel, bool) {
	switch strings.ToLower(tag) {
	case "h2":
		return HeadingSection, true
	case "h3":
		return HeadingSubsection, true
	}
	return "", false
}
