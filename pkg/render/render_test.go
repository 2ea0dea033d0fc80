package render

import (
	"strings"
	"testing"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no_fence", "<p>hello</p>", "<p>hello</p>"},
		{"plain_fence", "```\n<p>hello</p>\n```", "<p>hello</p>"},
		{"html_tagged_fence", "```html\n<section>x</section>\n```", "<section>x</section>"},
		{"uppercase_tag", "```HTML\n<div>y</div>\n```", "<div>y</div>"},
		{"surrounding_whitespace", "  ```html\n<p>z</p>\n```  ", "<p>z</p>"},
		{"multiline_body", "```html\n<div>\n<p>a</p>\n</div>\n```", "<div>\n<p>a</p>\n</div>"},
		{"unclosed_fence_passes_through", "```html\n<p>a</p>", "```html\n<p>a</p>"},
		{"interior_fence_passes_through", "before\n```\ncode\n```\nafter", "before\n```\ncode\n```\nafter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFence(tt.input); got != tt.want {
				t.Errorf("StripFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"markdown_plain", "## Breakfast\n- eggs\n- toast", KindMarkdown},
		{"markdown_no_block_tags", "Use <em>sparingly</em> please", KindMarkdown},
		{"fragment_section", `<section data-meal="Lunch">rice</section>`, KindFragment},
		{"fragment_in_html_fence", "```html\n<section>x</section>\n```", KindFragment},
		{"full_document_doctype", "<!DOCTYPE html><html><body><p>hi</p></body></html>", KindFullDocument},
		{"full_document_doctype_in_fence", "```html\n<!DOCTYPE html><html><body><p>hi</p></body></html>\n```", KindFullDocument},
		{"full_document_html_tag", "<html><body><div>x</div></body></html>", KindFullDocument},
		{"case_insensitive_tags", "<SECTION>X</SECTION>", KindFragment},
		{"empty", "", KindMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	input := "```html\n<section><p>plan</p></section>\n```"
	first := Classify(input)
	for i := 0; i < 5; i++ {
		if got := Classify(input); got != first {
			t.Fatalf("Classify not deterministic: run %d got %v, first %v", i, got, first)
		}
	}
}

func TestRenderer_FullDocument(t *testing.T) {
	r := New(Options{FrameHeight: 900})

	kind, out, err := r.HTML("<!DOCTYPE html><html><body><p>plan</p></body></html>")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if kind != KindFullDocument {
		t.Errorf("kind = %v, want %v", kind, KindFullDocument)
	}
	if !strings.Contains(out, "<iframe") {
		t.Errorf("full document should render in an iframe, got %q", out)
	}
	if !strings.Contains(out, "height:900px") {
		t.Errorf("iframe should use configured height, got %q", out)
	}
	if !strings.Contains(out, "sandbox") {
		t.Errorf("iframe should be sandboxed, got %q", out)
	}
}

func TestRenderer_Fragment_StripsScripts(t *testing.T) {
	r := New(Options{})

	kind, out, err := r.HTML(`<section><p>ok</p><script>alert(1)</script></section>`)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if kind != KindFragment {
		t.Errorf("kind = %v, want %v", kind, KindFragment)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Errorf("fragment should have scripts removed, got %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Errorf("fragment content should survive sanitizing, got %q", out)
	}
}

func TestRenderer_Markdown(t *testing.T) {
	r := New(Options{})

	kind, out, err := r.HTML("## Breakfast\n\nScrambled eggs")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if kind != KindMarkdown {
		t.Errorf("kind = %v, want %v", kind, KindMarkdown)
	}
	if !strings.Contains(out, "<h2") {
		t.Errorf("markdown heading should render as h2, got %q", out)
	}
}

func TestSanitize_EventHandlersAndURLs(t *testing.T) {
	out, err := Sanitize(`<div onclick="evil()"><a href="javascript:evil()">x</a><a href="https://example.com">y</a></div>`)
	if err != nil {
		t.Fatalf("Sanitize() error = %v", err)
	}
	if strings.Contains(out, "onclick") {
		t.Errorf("event handler attribute should be removed, got %q", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript URL should be removed, got %q", out)
	}
	if !strings.Contains(out, "https://example.com") {
		t.Errorf("regular URL should survive, got %q", out)
	}
}
