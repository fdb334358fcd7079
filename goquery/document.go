// Package goquery provides a codewiki.Document backed by static HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/codewiki"
)

// Ensure Document implements codewiki.Document at compile time.
var _ codewiki.Document = (*Document)(nil)

// Document is an in-memory document model parsed from HTML.
// Link targets are resolved against the page URL the same way a browser
// resolves an anchor's href property.
type Document struct {
	doc  *goquery.Document
	base *url.URL
	html string
}

// NewDocument parses html as the content of the page at pageURL.
func NewDocument(html string, pageURL string) (*Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, codewiki.Errorf(codewiki.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, codewiki.Errorf(codewiki.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, base: base, html: html}, nil
}

// Query returns snapshots of the elements matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) Query(selector string) ([]*codewiki.Element, error) {
	var elems []*codewiki.Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elems = append(elems, &codewiki.Element{
			Tag:  goquery.NodeName(sel),
			Text: sel.Text(),
			ID:   sel.AttrOr("id", ""),
			Href: d.href(sel),
		})
	})
	return elems, nil
}

// VisibleText approximates the browser's innerText of the body.
func (d *Document) VisibleText() (string, error) {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}
	return visibleText(body.Nodes[0]), nil
}

// HTML returns the markup the document was parsed from.
func (d *Document) HTML() (string, error) {
	return d.html, nil
}

// href returns the absolute link target of an anchor-like element.
func (d *Document) href(sel *goquery.Selection) string {
	switch goquery.NodeName(sel) {
	case "a", "area":
	default:
		return ""
	}

	raw, ok := sel.Attr("href")
	if !ok {
		return ""
	}

	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return d.base.ResolveReference(ref).String()
}
