package page

import "github.com/colombiamoda/internal/section"

const (
	loremIpsum = "Lorem ipsum dolor sit amet, consectetuer adipiscing elit, sed diam nonummy nibh euismod tincidunt ut laoreet dolore magna aliquam erat volutpat."
	verMas     = "VER MÁS"

	photoRunway   = "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&q=80&w=1000"
	photoShopping = "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&q=80&w=1000"
	photoStudio   = "https://images.unsplash.com/photo-1550614000-4b95d415dc96?auto=format&fit=crop&q=80&w=1000"
	photoStreet   = "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?auto=format&fit=crop&q=80&w=1000"
	photoTile     = "https://images.unsplash.com/photo-1496747611176-843222e1e57c?auto=format&fit=crop&q=80&w=800"
)

// content holds the literal props of every section on the landing page.
type content struct {
	Intro       section.RichTextProps
	Carousel    []section.BannerItem
	Featured    []section.GridItem
	Split       []section.BannerItem
	Closing     section.RichTextProps
	Collections []section.GridItem
}

func landingContent() content {
	return content{
		Intro: section.RichTextProps{Title: "LOREM IPSUM", Text: loremIpsum},
		Carousel: []section.BannerItem{
			{Image: photoRunway, Title: "PINKFILOSOFY X VEJA", LinkText: verMas},
			{Image: photoShopping, Title: "SANDRA WEIL", LinkText: verMas},
			{Image: photoStudio, Title: "TERCERA MARCA", LinkText: verMas},
		},
		Featured: []section.GridItem{
			{Image: photoTile, Title: "PLISSE"},
			{Image: photoTile, Title: "RELICARIO"},
			{Image: photoTile, Title: "MATILDA"},
		},
		Split: []section.BannerItem{
			{Image: photoStudio, Title: "PAMELA STEVENSON", LinkText: verMas},
			{Image: photoStreet, Title: "MARCA A IMPULSAR", LinkText: verMas},
		},
		Closing: section.RichTextProps{Text: loremIpsum},
		Collections: []section.GridItem{
			{Image: photoTile, Title: "SEA SALT"},
			{Image: photoTile, Title: "AMARANTE"},
			{Image: photoTile, Title: "CELESTINO"},
		},
	}
}
