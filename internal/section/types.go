package section

import g "maragu.dev/gomponents"

// Kind identifies a section template.
type Kind string

const (
	KindHeroBanner     Kind = "hero-banner"
	KindRichText       Kind = "rich-text"
	KindBannerCarousel Kind = "banner-carousel"
	KindSplitBanner    Kind = "split-banner"
	KindImageGrid      Kind = "image-grid"
	KindDesigner       Kind = "designer-section"
)

// BannerItem is a full-bleed image panel used by BannerCarousel and SplitBanner.
// An empty LinkText hides the call-to-action link.
type BannerItem struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	LinkText string `json:"linkText,omitempty"`
}

// GridItem is a tile rendered by ImageGrid.
type GridItem struct {
	Image string `json:"image"`
	Title string `json:"title"`
}

// RichTextProps configures RichText. An empty Title omits the heading.
type RichTextProps struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

func marker(kind Kind) g.Node {
	return g.Attr("data-section", string(kind))
}
