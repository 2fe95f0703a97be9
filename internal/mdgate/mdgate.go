// Package mdgate decides whether a paragraph of Markdown is "plain enough"
// for reflow to rewrap: a bare paragraph of running text, as opposed to a
// heading, list, code block, block quote, or other construct whose layout
// reflow's line-breaking would corrupt. It is the teacher's blackfriday
// dependency (cmd/soc/outline.go, cmd/poc/main.go) given a new, narrower
// job: CommonMark AST construction and traversal, not outline rendering.
package mdgate

import "github.com/russross/blackfriday"

// parserExtensions is the same extension set cmd/poc/main.go configured its
// blackfriday parser with: enough CommonMark coverage to recognize the
// constructs that should be left alone (fenced code, autolinks) without
// pulling in extensions, like raw HTML passthrough, that would change what
// counts as a paragraph.
const parserExtensions = blackfriday.NoIntraEmphasis |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak

// Eligible reports whether text parses as a single plain paragraph: the
// first two AST events entered while walking the document are a Paragraph
// followed directly by a Text node. Anything else — a heading, a list item,
// a fenced code block, or a paragraph that starts with an inline
// construct other than plain text (an image, a link, emphasis) — is
// considered ineligible and should be emitted unchanged by the caller.
// Tables are not recognized (the Tables extension is not enabled), so a
// pipe table parses as a plain paragraph and is eligible.
//
// A `>`-quoted paragraph is ineligible: the walk only skips the Document
// root, so the first entering node is the BlockQuote wrapping the
// Paragraph, not the Paragraph itself.
func Eligible(text string) bool {
	md := blackfriday.New(blackfriday.WithExtensions(parserExtensions))
	root := md.Parse([]byte(text))

	var kinds []blackfriday.NodeType
	root.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering || n.Type == blackfriday.Document {
			return blackfriday.GoToNext
		}
		kinds = append(kinds, n.Type)
		if len(kinds) >= 2 {
			return blackfriday.Terminate
		}
		return blackfriday.GoToNext
	})

	return len(kinds) >= 2 && kinds[0] == blackfriday.Paragraph && kinds[1] == blackfriday.Text
}
