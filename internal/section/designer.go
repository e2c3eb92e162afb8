package section

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	designerTitle = "Nuestros Diseñadores"
	designerBody  = "Lorem ipsum dolor sit amet, consectetuer adipiscing elit, sed diam nonummy nibh euismod tincidunt ut laoreet dolore magna aliquam erat volutpat."
	// DesignerPlaceholders is the number of placeholder cards beside the text.
	DesignerPlaceholders = 2
)

// DesignerSection renders the designer spotlight: a text column next to a
// grid of placeholder cards.
func DesignerSection() g.Node {
	cards := make([]g.Node, 0, DesignerPlaceholders)
	for i := 0; i < DesignerPlaceholders; i++ {
		cards = append(cards, designerCard())
	}

	return Div(
		Class("w-full py-16 md:py-24 px-6 md:px-12 flex flex-col md:flex-row items-center md:items-start gap-12 md:gap-16 max-w-7xl mx-auto"),
		marker(KindDesigner),
		Div(
			Class("w-full md:w-1/3 flex flex-col items-start text-left"),
			H2(Class("text-[24px] md:text-[28px] font-medium mb-6 uppercase tracking-widest"), g.Text(designerTitle)),
			P(Class("text-[14px] md:text-[16px] mb-8 leading-relaxed font-normal"), g.Text(designerBody)),
			A(
				Href("#"),
				Class("text-black text-[12px] md:text-[14px] font-semibold uppercase tracking-widest underline underline-offset-4 p-1 hover:text-gray-600 transition-colors inline-block"),
				g.Text("Ver Más"),
			),
		),
		Div(
			Class("w-full md:w-2/3 grid grid-cols-2 gap-4 md:gap-8"),
			g.Group(cards),
		),
	)
}

func designerCard() g.Node {
	return Div(
		Class("flex flex-col gap-4"),
		Div(Class("w-full aspect-[3/4] bg-[#e5e5e5]")),
		P(Class("text-[12px] md:text-[14px] font-medium uppercase tracking-widest"), g.Text("Lorem Ipsum")),
	)
}
