// Package render classifies raw model output and turns it into displayable
// HTML. Models asked for an HTML fragment will still sometimes return a fenced
// code block, a complete document, or plain Markdown; the classifier is a
// best-effort heuristic that picks a rendering strategy for each shape.
package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Kind is the detected shape of a model response.
type Kind int

const (
	// KindMarkdown is plain text or Markdown with no recognized HTML block tags.
	KindMarkdown Kind = iota
	// KindFragment is an HTML fragment suitable for inline embedding.
	KindFragment
	// KindFullDocument is a complete HTML document that must render isolated
	// in its own frame.
	KindFullDocument
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindFullDocument:
		return "full-document"
	case KindFragment:
		return "fragment"
	default:
		return "markdown"
	}
}

// DefaultFrameHeight is the preferred pixel height for the isolated frame
// used by full-document rendering.
const DefaultFrameHeight = 1100

var (
	// A single enclosing fenced code block, optionally tagged html/HTML.
	fenceRegex = regexp.MustCompile("(?s)^\\s*```(?:html|HTML)?\\s*\n(.*?)\n\\s*```\\s*$")

	// Block-level tags that mark a string as HTML rather than Markdown.
	blockTagRegex = regexp.MustCompile(`(?i)<(section|div|article|h[1-6]|p|ul|ol|table|body|html)\b`)

	// Markers of a complete HTML document.
	fullDocRegex = regexp.MustCompile(`(?i)<!DOCTYPE|<html\b`)
)

// StripFence removes a single enclosing Markdown code fence, if present.
// Input that is not fence-wrapped passes through unchanged.
func StripFence(s string) string {
	if m := fenceRegex.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return m[1]
	}
	return s
}

// Classify strips an optional enclosing fence and sniffs the result for HTML
// block tags and document markers. It is a pure function: the same input
// always yields the same kind. Misclassification of adversarial input (e.g.
// Markdown containing literal angle brackets) is accepted; the tag allow-list
// matches observed model behavior, not the HTML spec.
func Classify(s string) Kind {
	cleaned := StripFence(s)
	if !blockTagRegex.MatchString(cleaned) {
		return KindMarkdown
	}
	if fullDocRegex.MatchString(cleaned) {
		return KindFullDocument
	}
	return KindFragment
}

// Options configures HTML production.
type Options struct {
	// FrameHeight is the preferred height in pixels for the isolated frame
	// used by full documents. Zero means DefaultFrameHeight.
	FrameHeight int
}

// Renderer converts classified model output into embeddable HTML.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.FrameHeight == 0 {
		opts.FrameHeight = DefaultFrameHeight
	}
	return &Renderer{
		opts: opts,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// HTML classifies raw model output and returns HTML ready to embed in a host
// page, along with the detected kind. Full documents are wrapped in a
// sandboxed scrolling iframe; fragments are sanitized and embedded inline;
// everything else is rendered as Markdown.
func (r *Renderer) HTML(raw string) (Kind, string, error) {
	cleaned := StripFence(raw)

	switch kind := Classify(raw); kind {
	case KindFullDocument:
		frame := fmt.Sprintf(
			`<iframe srcdoc="%s" style="width:100%%;height:%dpx;border:0;overflow:auto" sandbox></iframe>`,
			html.EscapeString(cleaned), r.opts.FrameHeight)
		return kind, frame, nil

	case KindFragment:
		sanitized, err := Sanitize(cleaned)
		if err != nil {
			return kind, "", fmt.Errorf("sanitize fragment: %w", err)
		}
		return kind, sanitized, nil

	default:
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(cleaned), &buf); err != nil {
			return KindMarkdown, "", fmt.Errorf("render markdown: %w", err)
		}
		return KindMarkdown, buf.String(), nil
	}
}

// Sanitize removes script, style and noscript elements, event handler
// attributes and javascript: URLs from an HTML fragment before inline
// embedding. It is not a full sanitizer; full documents must go through the
// isolated frame instead.
func Sanitize(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		var drop []string
		for _, attr := range s.Nodes[0].Attr {
			name := strings.ToLower(attr.Key)
			if strings.HasPrefix(name, "on") {
				drop = append(drop, attr.Key)
				continue
			}
			if (name == "href" || name == "src") &&
				strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
				drop = append(drop, attr.Key)
			}
		}
		for _, name := range drop {
			s.RemoveAttr(name)
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize fragment: %w", err)
	}
	return out, nil
}
