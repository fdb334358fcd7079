package codewiki

import (
	"net/url"
	"strings"
)

// NavigationLabel is the label of the site's own "see documentation" link.
// Entries whose full name contains it are not repositories. This is a
// best-effort denylist: if the site changes its copy the filter stops
// matching silently.
const NavigationLabel = "See Code Wiki"

// ExtractFeatured parses the featured repository anchors of a rendered
// homepage. Only anchors under siteURL's mirrored github.com namespace are
// considered. Results are unique per FullName; the first occurrence wins and
// document order is preserved.
func ExtractFeatured(doc Document, siteURL string) ([]*RepoSummary, error) {
	namespace, err := mirrorNamespace(siteURL)
	if err != nil {
		return nil, err
	}

	anchors, err := doc.Query(`a[href*="github.com"]`)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	repos := make([]*RepoSummary, 0, len(anchors))
	for _, a := range anchors {
		if !strings.Contains(a.Href, namespace) {
			continue
		}

		repo, ok := parseRepoSummary(a)
		if !ok {
			continue
		}
		if strings.Contains(repo.FullName, NavigationLabel) {
			continue
		}

		if _, ok := seen[repo.FullName]; ok {
			continue
		}
		seen[repo.FullName] = struct{}{}
		repos = append(repos, repo)
	}

	return repos, nil
}

// parseRepoSummary builds a summary from an anchor's text and href.
// Returns false if no full name can be derived from the href.
func parseRepoSummary(a *Element) (*RepoSummary, bool) {
	fullName, ok := FullNameFromHref(a.Href)
	if !ok {
		return nil, false
	}

	lines := SplitLines(a.Text)
	var name, description string
	if len(lines) > 0 {
		name = lines[0]
		description = StripStars(strings.Join(lines[1:], " "))
	}

	return &RepoSummary{
		Name:        name,
		FullName:    fullName,
		Description: description,
		Stars:       StarCount(a.Text),
		URL:         a.Href,
	}, true
}

// mirrorNamespace returns the "<host>/github.com/" prefix that marks
// repository pages on the site.
func mirrorNamespace(siteURL string) (string, error) {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "invalid site URL %q", siteURL)
	}
	return u.Host + "/github.com/", nil
}
