package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_ExtractsContentBlocks(t *testing.T) {
	input := `<html>
<head><title>Page Title</title><style>body { color: red }</style></head>
<body>
<nav>Home | About</nav>
<h1>Main Heading</h1>
<p>First paragraph.</p>
<script>alert("hi")</script>
<ul><li>item one</li><li>item two</li></ul>
<footer>copyright notice</footer>
</body>
</html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Page Title" {
		t.Errorf("expected title %q, got %q", "Page Title", doc.Title)
	}
	for _, want := range []string{"Main Heading", "First paragraph.", "item one", "item two"} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, doc.Text)
		}
	}
	for _, unwanted := range []string{"alert", "color: red", "Home | About", "copyright"} {
		if strings.Contains(doc.Text, unwanted) {
			t.Errorf("chrome leaked into text: %q in %q", unwanted, doc.Text)
		}
	}
	// Heading and paragraph are separate blocks.
	if !strings.Contains(doc.Text, "Main Heading\n\nFirst paragraph.") {
		t.Errorf("expected blank-line block separation, got %q", doc.Text)
	}
}

func TestHTMLParser_NoTitleFallsBackToFilename(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>just text</p>"), "snippet.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "snippet" {
		t.Errorf("expected title %q, got %q", "snippet", doc.Title)
	}
}
