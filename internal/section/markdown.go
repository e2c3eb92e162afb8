package section

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

var (
	// 只解析段落和行内语法：列表、标题、编号等标记按原文保留，
	// 不解析原始 HTML，尖括号作为文本转义输出
	markdownEngine = goldmark.New(
		goldmark.WithParser(parser.NewParser(
			parser.WithBlockParsers(
				util.Prioritized(parser.NewParagraphParser(), 1000),
			),
			parser.WithInlineParsers(
				util.Prioritized(parser.NewCodeSpanParser(), 100),
				util.Prioritized(parser.NewLinkParser(), 200),
				util.Prioritized(parser.NewAutoLinkParser(), 300),
				util.Prioritized(parser.NewEmphasisParser(), 500),
			),
		)),
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	// 段落包装会被剥离，结果直接放进 RichText 的段落里
	inlinePolicy = func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowElements("em", "strong", "code", "br", "del")
		p.AllowStandardURLs()
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		return p
	}()
)

// InlineMarkdown converts a markdown snippet into sanitized inline HTML.
// Plain text comes back escaped and otherwise unchanged. A conversion
// failure degrades to escaped plain text.
func InlineMarkdown(source string) string {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(trimmed), &buf); err != nil {
		return html.EscapeString(trimmed)
	}

	return strings.TrimSpace(inlinePolicy.Sanitize(buf.String()))
}
