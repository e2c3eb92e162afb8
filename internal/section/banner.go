package section

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	panelImageClass = "w-full h-full object-cover transition-transform duration-700 group-hover:scale-105"
	panelTitleClass = "text-white text-[18px] md:text-[24px] font-medium uppercase tracking-widest mb-3"
	panelLinkClass  = "text-white text-[12px] md:text-[14px] font-semibold uppercase tracking-widest underline underline-offset-4 p-1 hover:text-gray-200 transition-colors inline-block"
)

// BannerCarousel renders a horizontally scrolling strip of full-width panels.
// Panels keep the order of items.
func BannerCarousel(items []BannerItem) g.Node {
	return Div(
		Class("w-full flex overflow-x-auto snap-x snap-mandatory hide-scrollbar"),
		marker(KindBannerCarousel),
		g.Map(items, func(item BannerItem) g.Node {
			return bannerPanel(
				item,
				"relative min-w-full h-[60vh] md:h-[80vh] snap-center group overflow-hidden",
				"absolute inset-0 bg-black/20 flex flex-col justify-end items-start p-8 md:p-12",
			)
		}),
	)
}

// SplitBanner renders panels side by side on wide viewports and stacked on
// narrow ones.
func SplitBanner(items []BannerItem) g.Node {
	return Div(
		Class("w-full flex flex-col md:flex-row"),
		marker(KindSplitBanner),
		g.Map(items, func(item BannerItem) g.Node {
			return bannerPanel(
				item,
				"relative w-full md:w-1/2 h-[60vh] md:h-[80vh] group overflow-hidden",
				"absolute inset-0 bg-black/10 flex flex-col justify-end p-8 md:p-12",
			)
		}),
	)
}

func bannerPanel(item BannerItem, panelClass, overlayClass string) g.Node {
	return Div(
		Class(panelClass),
		Img(Src(item.Image), Alt(item.Title), Class(panelImageClass)),
		Div(
			Class(overlayClass),
			H3(Class(panelTitleClass), g.Text(item.Title)),
			g.If(item.LinkText != "",
				A(Href("#"), Class(panelLinkClass), g.Text(item.LinkText)),
			),
		),
	)
}
