// Package mealhtml extracts structured meal data from generated plan markup.
//
// The text model is asked for a fragment with one <section data-meal="..."> per
// meal and a trailing comma-separated titles line, but nothing enforces that
// shape. Extraction is therefore layered: a structured lookup first, a
// heading-scan fallback second, and an empty result when neither matches.
// A miss is normal degraded output, not an error.
package mealhtml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractMealSection returns the inner markup of the section describing the
// named meal ("Breakfast", "Lunch" or "Dinner"), or an empty string if the
// markup contains no matching section.
func ExtractMealSection(markup, meal string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	// Structured match: the shape the generation prompt asks for.
	sel := doc.Find(fmt.Sprintf("section[data-meal=%q]", meal))
	if sel.Length() > 0 {
		inner, err := sel.First().Html()
		if err != nil {
			return ""
		}
		return inner
	}

	return headingScan(doc, meal)
}

// headingScan locates an h2/h3 whose trimmed text starts with the meal name
// and collects that heading plus everything that follows it in document
// order, stopping before the next h1..h3 heading. Irregular nesting can pull
// in unrelated trailing content; that is an accepted limitation of the
// fallback path.
func headingScan(doc *goquery.Document, meal string) string {
	var start *html.Node
	doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.HasPrefix(strings.TrimSpace(s.Text()), meal) {
			start = s.Nodes[0]
			return false
		}
		return true
	})
	if start == nil {
		return ""
	}

	var buf bytes.Buffer
	renderNode(&buf, start)

	for n := nextInDocument(start); n != nil; n = nextInDocument(n) {
		if isStopHeading(n) {
			break
		}
		renderNode(&buf, n)
	}
	return buf.String()
}

// nextInDocument advances to the node following n in document order without
// descending into n's own subtree: next sibling first, then the nearest
// ancestor's next sibling.
func nextInDocument(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

func isStopHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3":
		return true
	}
	return false
}

func renderNode(buf *bytes.Buffer, n *html.Node) {
	// Render errors only occur on unwritable writers; a bytes.Buffer never is.
	_ = html.Render(buf, n)
}
