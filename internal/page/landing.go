package page

import (
	"io"

	"github.com/colombiamoda/internal/section"
	"github.com/colombiamoda/internal/view"
	g "maragu.dev/gomponents"
)

// Section is one rendered block of the landing page together with the
// metadata the manifest exposes. It is itself a gomponents node.
type Section struct {
	Kind  section.Kind
	Title string
	Items []string
	Node  g.Node
}

// Render writes the section markup to w.
func (s Section) Render(w io.Writer) error {
	if s.Node == nil {
		return nil
	}
	return s.Node.Render(w)
}

// Sections returns the landing page blocks in display order.
func Sections() []Section {
	return compose(landingContent())
}

func compose(c content) []Section {
	return []Section{
		{Kind: section.KindHeroBanner, Title: "Colombiamoda", Node: section.HeroBanner()},
		{Kind: section.KindRichText, Title: c.Intro.Title, Node: section.RichText(c.Intro)},
		{Kind: section.KindBannerCarousel, Items: bannerTitles(c.Carousel), Node: section.BannerCarousel(c.Carousel)},
		{Kind: section.KindImageGrid, Items: gridTitles(c.Featured), Node: section.ImageGrid(c.Featured)},
		{Kind: section.KindDesigner, Title: "Nuestros Diseñadores", Node: section.DesignerSection()},
		{Kind: section.KindSplitBanner, Items: bannerTitles(c.Split), Node: section.SplitBanner(c.Split)},
		{Kind: section.KindRichText, Title: c.Closing.Title, Node: section.RichText(c.Closing)},
		{Kind: section.KindImageGrid, Items: gridTitles(c.Collections), Node: section.ImageGrid(c.Collections)},
	}
}

// Landing builds the full landing page document.
func Landing(meta view.PageMeta) g.Node {
	sections := Sections()
	nodes := make([]g.Node, 0, len(sections))
	for _, s := range sections {
		nodes = append(nodes, s)
	}
	return view.Document(meta, nodes...)
}

// Render writes the full landing page document to w.
func Render(w io.Writer, meta view.PageMeta) error {
	return Landing(meta).Render(w)
}

func bannerTitles(items []section.BannerItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

func gridTitles(items []section.GridItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

// Site binds the landing page to fixed document metadata.
type Site struct {
	Meta view.PageMeta
}

// Render writes the landing page document to w.
func (s Site) Render(w io.Writer) error {
	return Render(w, s.Meta)
}

// Manifest lists the landing page sections.
func (s Site) Manifest() []ManifestEntry {
	return Manifest()
}
