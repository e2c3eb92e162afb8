package section

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ImageGrid renders tiles in a three column grid, or a snap scroller on
// narrow viewports. Tiles keep the order of items.
func ImageGrid(items []GridItem) g.Node {
	return Div(
		Class("w-full py-4 md:py-8 px-4 md:px-8"),
		marker(KindImageGrid),
		Div(
			Class("flex overflow-x-auto md:grid md:grid-cols-3 gap-4 md:gap-6 snap-x snap-mandatory hide-scrollbar pb-4"),
			g.Map(items, gridTile),
		),
	)
}

func gridTile(item GridItem) g.Node {
	return Div(
		Class("relative min-w-[85vw] md:min-w-0 aspect-[3/4] md:aspect-auto md:h-[70vh] snap-center group overflow-hidden"),
		Img(Src(item.Image), Alt(item.Title), Class(panelImageClass)),
		Div(
			Class("absolute inset-0 bg-gradient-to-t from-black/50 via-transparent to-transparent flex flex-col justify-end p-6 md:p-8 items-center"),
			H3(Class("text-white text-[14px] md:text-[16px] font-medium uppercase tracking-widest"), g.Text(item.Title)),
		),
	)
}
