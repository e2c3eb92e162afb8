package page

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/colombiamoda/internal/section"
	"github.com/colombiamoda/internal/view"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

var expectedKinds = []section.Kind{
	section.KindHeroBanner,
	section.KindRichText,
	section.KindBannerCarousel,
	section.KindImageGrid,
	section.KindDesigner,
	section.KindSplitBanner,
	section.KindRichText,
	section.KindImageGrid,
}

func renderLanding(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, view.PageMeta{Title: "Colombiamoda"}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

// topLevelSections returns the data-section values of the page root's children.
func topLevelSections(t *testing.T, doc string) []string {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil && body == nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)
	if body == nil {
		t.Fatalf("document has no body")
	}

	var pageRoot *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			pageRoot = c
			break
		}
	}
	if pageRoot == nil {
		t.Fatalf("body has no page root")
	}

	var kinds []string
	for c := pageRoot.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		kinds = append(kinds, attr(c, "data-section"))
	}
	return kinds
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestLandingHasEightSectionsInOrder(t *testing.T) {
	kinds := topLevelSections(t, renderLanding(t))
	if len(kinds) != len(expectedKinds) {
		t.Fatalf("expected %d sections, got %d: %v", len(expectedKinds), len(kinds), kinds)
	}
	for i, want := range expectedKinds {
		if kinds[i] != string(want) {
			t.Fatalf("section %d: expected %q, got %q", i, want, kinds[i])
		}
	}
}

func TestSectionsMatchComposition(t *testing.T) {
	sections := Sections()
	if len(sections) != 8 {
		t.Fatalf("expected 8 sections, got %d", len(sections))
	}
	for i, s := range sections {
		if s.Kind != expectedKinds[i] {
			t.Fatalf("section %d: expected kind %q, got %q", i, expectedKinds[i], s.Kind)
		}
		var buf bytes.Buffer
		if err := s.Render(&buf); err != nil {
			t.Fatalf("section %d render failed: %v", i, err)
		}
		if !strings.Contains(buf.String(), `data-section="`+string(s.Kind)+`"`) {
			t.Fatalf("section %d markup lacks its marker", i)
		}
	}
}

func TestLandingIsDeterministic(t *testing.T) {
	if renderLanding(t) != renderLanding(t) {
		t.Fatalf("expected identical landing output across renders")
	}
}

func TestLandingContentOrder(t *testing.T) {
	out := renderLanding(t)
	titles := []string{
		"Colombiamoda",
		"LOREM IPSUM",
		"PINKFILOSOFY X VEJA", "SANDRA WEIL", "TERCERA MARCA",
		"PLISSE", "RELICARIO", "MATILDA",
		"Nuestros Diseñadores",
		"PAMELA STEVENSON", "MARCA A IMPULSAR",
		"SEA SALT", "AMARANTE", "CELESTINO",
	}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, ">"+title+"<")
		if idx < 0 {
			t.Fatalf("expected %q in landing page", title)
		}
		if idx <= last {
			t.Fatalf("expected %q to follow the previous title", title)
		}
		last = idx
	}
	if got := strings.Count(out, "<h2"); got != 2 {
		t.Fatalf("expected 2 headings (titled rich text and designer section), got %d", got)
	}
	if got := strings.Count(out, ">VER MÁS</a>"); got != 5 {
		t.Fatalf("expected 5 call-to-action links, got %d", got)
	}
}

func TestManifest(t *testing.T) {
	entries := Manifest()
	if len(entries) != 8 {
		t.Fatalf("expected 8 manifest entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Index != i {
			t.Fatalf("entry %d: expected index %d, got %d", i, i, entry.Index)
		}
		if entry.Kind != string(expectedKinds[i]) {
			t.Fatalf("entry %d: expected kind %q, got %q", i, expectedKinds[i], entry.Kind)
		}
	}
	if got := strings.Join(entries[2].Items, ","); got != "PINKFILOSOFY X VEJA,SANDRA WEIL,TERCERA MARCA" {
		t.Fatalf("unexpected carousel items %q", got)
	}
	if entries[6].Title != "" {
		t.Fatalf("expected closing rich text without title, got %q", entries[6].Title)
	}
}

func TestValidateLiteralContent(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("expected literal content to be valid, got %v", err)
	}
}

func TestValidateReportsBrokenItems(t *testing.T) {
	c := landingContent()
	c.Carousel[1].Title = ""
	c.Featured[0].Image = "not-a-url"
	c.Closing.Text = "  "

	err := validateContent(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"carousel[1]", "featured[0]", "closing"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in error, got %q", want, msg)
		}
	}
}

func TestComposeWithEmptySequences(t *testing.T) {
	sections := compose(content{Intro: section.RichTextProps{Text: "x"}, Closing: section.RichTextProps{Text: "y"}})
	if len(sections) != 8 {
		t.Fatalf("expected 8 sections even with empty sequences, got %d", len(sections))
	}
	var buf bytes.Buffer
	for _, s := range sections {
		if err := s.Render(&buf); err != nil {
			t.Fatalf("render failed: %v", err)
		}
	}
	if strings.Contains(buf.String(), "<img") {
		t.Fatalf("expected no images when sequences are empty")
	}
}

func TestSectionRendersAsNode(t *testing.T) {
	var node g.Node = Section{Kind: section.KindRichText, Node: section.RichText(section.RichTextProps{Text: "hola"})}
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `data-section="rich-text"`) {
		t.Fatalf("expected section markup, got %q", buf.String())
	}

	buf.Reset()
	if err := (Section{Kind: section.KindHeroBanner}).Render(&buf); err != nil {
		t.Fatalf("render of empty section failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty section to render nothing, got %q", buf.String())
	}
}
