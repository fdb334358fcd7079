package goquery

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skippedTags never contribute rendered text.
var skippedTags = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Title:    true,
	atom.Iframe:   true,
}

// blockTags are separated from their surroundings by a line break.
var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Caption: true, atom.Dd: true, atom.Details: true, atom.Dialog: true,
	atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hgroup: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.Pre: true, atom.Section: true, atom.Summary: true,
	atom.Table: true, atom.Tr: true, atom.Ul: true,
}

// visibleText renders the text of n roughly the way innerText does:
// whitespace collapses outside <pre>, block elements start on their own
// line, paragraphs are separated by a blank line and hidden content is
// dropped.
func visibleText(n *html.Node) string {
	w := &textWriter{}
	w.walk(n, false)
	return strings.TrimSpace(string(w.buf))
}

type textWriter struct {
	buf []byte
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			w.buf = append(w.buf, n.Data...)
		} else {
			w.inline(n.Data)
		}
		return
	case html.ElementNode:
		if skippedTags[n.DataAtom] || isHidden(n) {
			return
		}
		switch n.DataAtom {
		case atom.Br:
			w.buf = append(w.buf, '\n')
			return
		case atom.Td, atom.Th:
			if prevCell(n) {
				w.trimSpace()
				w.buf = append(w.buf, '\t')
			}
		}
	}

	breaks := 0
	if n.Type == html.ElementNode {
		if n.DataAtom == atom.P {
			breaks = 2
		} else if blockTags[n.DataAtom] {
			breaks = 1
		}
	}

	w.lineBreaks(breaks)
	pre = pre || n.DataAtom == atom.Pre
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}
	w.lineBreaks(breaks)
}

// isCollapsible reports whether r is HTML whitespace. Other Unicode spaces,
// such as U+00A0, are kept as text.
func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// inline appends text with whitespace runs collapsed to a single space.
func (w *textWriter) inline(s string) {
	collapsed := strings.Join(strings.FieldsFunc(s, isCollapsible), " ")
	if collapsed == "" {
		if len(s) > 0 && !w.atBoundary() {
			w.buf = append(w.buf, ' ')
		}
		return
	}
	if first, _ := utf8.DecodeRuneInString(s); isCollapsible(first) && !w.atBoundary() {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, collapsed...)
	if last, _ := utf8.DecodeLastRuneInString(s); isCollapsible(last) {
		w.buf = append(w.buf, ' ')
	}
}

// lineBreaks ensures the output ends with at least n newlines.
// Leading breaks are never emitted.
func (w *textWriter) lineBreaks(n int) {
	if n == 0 {
		return
	}
	w.trimSpace()
	if len(w.buf) == 0 {
		return
	}
	have := 0
	for i := len(w.buf) - 1; i >= 0 && w.buf[i] == '\n'; i-- {
		have++
	}
	for ; have < n; have++ {
		w.buf = append(w.buf, '\n')
	}
}

// atBoundary reports whether a separating space would be redundant.
func (w *textWriter) atBoundary() bool {
	if len(w.buf) == 0 {
		return true
	}
	switch w.buf[len(w.buf)-1] {
	case ' ', '\n', '\t':
		return true
	}
	return false
}

// trimSpace drops trailing spaces so lines never end in one.
func (w *textWriter) trimSpace() {
	for len(w.buf) > 0 && w.buf[len(w.buf)-1] == ' ' {
		w.buf = w.buf[:len(w.buf)-1]
	}
}

// isHidden reports whether n is hidden by attribute or inline style.
func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return true
		case "style":
			style := strings.ReplaceAll(strings.ToLower(attr.Val), " ", "")
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return true
			}
		}
	}
	return false
}

// prevCell reports whether a table cell follows another cell in its row.
func prevCell(n *html.Node) bool {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s.DataAtom == atom.Td || s.DataAtom == atom.Th
		}
	}
	return false
}
