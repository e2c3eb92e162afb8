package section

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroBanner renders the full-viewport opening banner.
func HeroBanner() g.Node {
	return Div(
		Class("w-full bg-[#c4c4c4] h-[50vh] md:h-[85vh] flex items-center justify-center"),
		marker(KindHeroBanner),
		Div(
			Class("text-center text-white tracking-widest flex flex-col items-center"),
			H1(
				Class("text-[28px] md:text-[46px] font-medium uppercase tracking-[0.2em] mb-1"),
				g.Text("Colombiamoda"),
			),
			P(
				Class("text-[12px] md:text-[14px] uppercase tracking-[0.3em] mb-3"),
				g.Text("La semana de la moda de Colombia®"),
			),
			P(
				Class("text-[14px] md:text-[16px] font-medium uppercase tracking-[0.2em]"),
				g.Text("Cocreación"),
			),
		),
	)
}
