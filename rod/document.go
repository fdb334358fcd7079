package rod

import (
	"fmt"

	"github.com/fwojciec/codewiki"
	"github.com/go-rod/rod"
)

// Ensure Document implements codewiki.Document at compile time.
var _ codewiki.Document = (*Document)(nil)

// queryJS snapshots the elements matching a selector in one round trip.
// href is read from the property so it is already absolute.
const queryJS = `(selector) => Array.from(document.querySelectorAll(selector)).map(el => ({
	tag: el.tagName.toLowerCase(),
	text: el.textContent || '',
	id: el.id || '',
	href: typeof el.href === 'string' ? el.href : '',
}))`

const innerTextJS = `() => document.body ? document.body.innerText : ''`

// Document queries a live page.
type Document struct {
	page *rod.Page
}

type elementSnapshot struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
	ID   string `json:"id"`
	Href string `json:"href"`
}

// Query evaluates selector against the live DOM.
func (d *Document) Query(selector string) ([]*codewiki.Element, error) {
	res, err := d.page.Eval(queryJS, selector)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", selector, err)
	}

	var snapshots []elementSnapshot
	if err := res.Value.Unmarshal(&snapshots); err != nil {
		return nil, fmt.Errorf("decoding %q results: %w", selector, err)
	}

	elems := make([]*codewiki.Element, 0, len(snapshots))
	for _, s := range snapshots {
		elems = append(elems, &codewiki.Element{Tag: s.Tag, Text: s.Text, ID: s.ID, Href: s.Href})
	}
	return elems, nil
}

// VisibleText returns document.body.innerText.
func (d *Document) VisibleText() (string, error) {
	res, err := d.page.Eval(innerTextJS)
	if err != nil {
		return "", fmt.Errorf("reading body text: %w", err)
	}
	return res.Value.Str(), nil
}

// HTML returns the serialized rendered DOM.
func (d *Document) HTML() (string, error) {
	return d.page.HTML()
}
