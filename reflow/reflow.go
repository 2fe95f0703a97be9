// Package reflow reformats prose paragraphs to fit a target display width
// while preserving structural decorations — quote markers, code-comment
// prefixes, and symmetric box-comment borders — and minimizing a raggedness
// penalty across the resulting lines. It has no knowledge of files, CLI
// flags, or paragraph boundaries; those are the job of package mdgate and
// package paragraph and cmd/rewrap, which call into this one paragraph at a
// time.
package reflow

import (
	"fmt"
	"strings"
)

// FormatMode selects which structural analyzer is tried first; all modes
// fall back through quote analysis and then surround analysis if their
// first choice doesn't apply (see analyzeStructure).
type FormatMode int

const (
	// PlainText tries quote analysis, then surround analysis.
	PlainText FormatMode = iota
	// Markdown behaves like PlainText once the markdown gate (package
	// mdgate) has already accepted the paragraph.
	Markdown
	// Code tries code-comment analysis first, then falls back like
	// PlainText.
	Code
)

func (m FormatMode) String() string {
	switch m {
	case PlainText:
		return "PlainText"
	case Markdown:
		return "Markdown"
	case Code:
		return "Code"
	default:
		return fmt.Sprintf("FormatMode(%d)", int(m))
	}
}

// FormatOpts configures a reformatting call. The zero value is not directly
// useful (MaxLength of 0 would leave no room for any word); callers should
// start from DefaultFormatOpts.
type FormatOpts struct {
	// MaxLength is the total display width a line may occupy, including its
	// decoration prefix and suffix.
	MaxLength int
	// TabWidth is the number of spaces each tab expands to before analysis.
	TabWidth int
	// LastLine, when true, disallows the normally-free cost of a
	// paragraph's final line: every line, including the last, is penalized
	// for falling short of its target width.
	LastLine bool
	// ReduceJaggedness widens the search to every target width from
	// MaxLength's derived maximum down to half of it, picking whichever
	// produces the lowest bias-adjusted cost, instead of only trying the
	// single widest target.
	ReduceJaggedness bool
	// Mode selects the structural analyzer's entry point.
	Mode FormatMode
}

// DefaultFormatOpts mirrors the reference implementation's defaults: a
// 72-column width, 4-space tabs, free last line, single-target search,
// plain-text mode.
var DefaultFormatOpts = FormatOpts{
	MaxLength: 72,
	TabWidth:  4,
	Mode:      PlainText,
}

// Reformatter holds the result of structural analysis for one paragraph, so
// its cost can be paid once by a caller that wants to inspect the analysis
// (e.g. cmd/rewrap's -debug dump) separately from paying the optimizer's
// cost via Reformatted.
type Reformatter struct {
	opts   FormatOpts
	blocks []Block
}

// New expands tabs in text per opts.TabWidth and runs the structural
// analyzer appropriate to opts.Mode over the result.
func New(opts FormatOpts, text string) *Reformatter {
	if opts.TabWidth > 0 && strings.ContainsRune(text, '\t') {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", opts.TabWidth))
	}
	lines := strings.Split(text, "\n")
	return &Reformatter{
		opts:   opts,
		blocks: analyzeStructure(lines, opts.Mode),
	}
}

// Blocks returns the structural analyzer's output, for diagnostic use (see
// Format methods in fmt.go).
func (r *Reformatter) Blocks() []Block { return r.blocks }

// Reformatted runs the optimizer and section reformatter over every block
// and composes the results into the final text.
func (r *Reformatter) Reformatted() string {
	if len(r.blocks) == 0 {
		return ""
	}
	sections := make([]section, len(r.blocks))
	for i, b := range r.blocks {
		sections[i] = reformatSection(b, r.opts)
	}
	return composeSections(sections, r.opts)
}

// Reformat is the top-level entry point: it expands tabs, analyzes
// structure, and reformats text in one call. Empty input returns empty
// output without doing any work.
func Reformat(opts FormatOpts, text string) string {
	if text == "" {
		return ""
	}
	return New(opts, text).Reformatted()
}
