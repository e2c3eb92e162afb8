package view

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	// hide-scrollbar 由原站样式表提供，Tailwind 本身没有这个工具类
	hideScrollbarCSS = ".hide-scrollbar::-webkit-scrollbar{display:none}.hide-scrollbar{-ms-overflow-style:none;scrollbar-width:none}"
)

// PageMeta carries the document-level values around the page body.
type PageMeta struct {
	Title       string
	Description string
	BaseURL     string
}

// Document wraps body sections in a complete HTML document.
func Document(meta PageMeta, body ...g.Node) g.Node {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = "Colombiamoda"
	}
	canonical := strings.TrimRight(strings.TrimSpace(meta.BaseURL), "/")

	return Doctype(
		HTML(
			Lang("es"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(canonical != "", Link(Rel("canonical"), Href(canonical+"/"))),
				Script(Src(tailwindCDN)),
				StyleEl(g.Raw(hideScrollbarCSS)),
			),
			Body(
				Div(
					Class("min-h-screen bg-white text-black font-sans"),
					g.Group(body),
				),
			),
		),
	)
}
