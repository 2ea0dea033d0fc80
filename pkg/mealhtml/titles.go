package mealhtml

import (
	"strings"

	"github.com/plateful/plateful/pkg/textutil"
)

// ParseTitles extracts recipe titles from the final line of a generated plan.
// The generation prompt asks for a trailing line containing only the three
// titles separated by commas; this parser depends on nothing but that line
// being last. Each piece is normalized and empty pieces are dropped, so a
// non-conforming document degrades to a partial or empty result rather than
// an error. No check is made that the pieces are plausible recipe titles.
func ParseTitles(doc string) []string {
	// A single trailing line terminator does not count as a final blank line.
	trimmed := strings.TrimSuffix(doc, "\n")
	trimmed = strings.TrimSuffix(trimmed, "\r")
	if trimmed == "" {
		return nil
	}

	last := trimmed
	if i := strings.LastIndexByte(trimmed, '\n'); i >= 0 {
		last = trimmed[i+1:]
	}

	var titles []string
	for _, piece := range strings.Split(last, ",") {
		if t := textutil.Normalize(piece); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}
