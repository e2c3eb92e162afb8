package section

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RichText renders a centered text block with an optional heading.
func RichText(props RichTextProps) g.Node {
	return Div(
		Class("w-full py-12 md:py-16 px-4 flex flex-col items-center justify-center text-center"),
		marker(KindRichText),
		g.If(props.Title != "",
			H2(Class("text-[18px] md:text-[24px] font-medium mb-4 uppercase tracking-widest"), g.Text(props.Title)),
		),
		P(
			Class("max-w-2xl text-[14px] md:text-[16px] leading-relaxed font-normal"),
			g.Raw(InlineMarkdown(props.Text)),
		),
	)
}
