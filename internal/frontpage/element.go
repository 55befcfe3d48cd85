package frontpage

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element is a read-only handle on one node of a parsed page.
// Lookups report absence with ok=false rather than an error, so a malformed
// row degrades to Unrecognized instead of aborting the page.
type Element interface {
	// Attr returns the named attribute of the element itself.
	Attr(name string) (string, bool)
	// Find returns the first descendant matching selector.
	Find(selector string) (Element, bool)
	// FindAll returns every descendant matching selector, in document order.
	FindAll(selector string) []Element
	// Text returns the concatenated text of the element's subtree.
	Text() string
	// InnerHTML renders the element's children as markup.
	InnerHTML() (string, bool)
}

type selection struct {
	s *goquery.Selection
}

// Wrap adapts a goquery selection (its first node) to Element.
func Wrap(s *goquery.Selection) Element {
	return selection{s: s.First()}
}

func (e selection) Attr(name string) (string, bool) {
	return e.s.Attr(name)
}

func (e selection) Find(selector string) (Element, bool) {
	match := e.s.Find(selector).First()
	if match.Length() == 0 {
		return nil, false
	}
	return selection{s: match}, true
}

func (e selection) FindAll(selector string) []Element {
	var out []Element
	e.s.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, selection{s: s})
	})
	return out
}

func (e selection) Text() string {
	return e.s.Text()
}

func (e selection) InnerHTML() (string, bool) {
	if e.s.Length() == 0 {
		return "", false
	}
	var b strings.Builder
	for c := e.s.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", false
		}
	}
	return b.String(), true
}
