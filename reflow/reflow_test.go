package reflow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatEmptyInput(t *testing.T) {
	assert.Equal(t, "", Reformat(DefaultFormatOpts, ""))
}

func TestReformatFitsOnOneLine(t *testing.T) {
	opts := DefaultFormatOpts
	assert.Equal(t, "hello world", Reformat(opts, "hello world"))
}

func TestReformatWrapsNarrowWidth(t *testing.T) {
	opts := FormatOpts{MaxLength: 10, TabWidth: 4, Mode: PlainText}
	got := Reformat(opts, "aaa bbb ccc ddd")
	assert.Equal(t, "aaa bbb\nccc ddd", got)
}

func TestReformatPreservesBlankLineSeparator(t *testing.T) {
	opts := DefaultFormatOpts
	got := Reformat(opts, "aaa\n\nbbb")
	assert.Equal(t, "aaa\n\nbbb", got)
}

func TestReformatMergesQuotedLines(t *testing.T) {
	opts := DefaultFormatOpts
	got := Reformat(opts, "> hello\n> world")
	assert.Equal(t, "> hello world", got)
}

func TestReformatMergesCodeComments(t *testing.T) {
	opts := FormatOpts{MaxLength: 72, TabWidth: 4, Mode: Code}
	got := Reformat(opts, "// hello\n// world")
	assert.Equal(t, "// hello world", got)
}

func TestReformatCodeCommentWrapPreservesPrefixOnEveryLine(t *testing.T) {
	// the width-72 case above collapses to a single line, which hides a
	// carried-forward-only prefix bug: every wrapped continuation line, not
	// just the first, must begin with "// ".
	opts := FormatOpts{MaxLength: 40, TabWidth: 4, Mode: Code}
	got := Reformat(opts, "// This is a long comment that should be reformatted to fit within the target width.")
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 1, "width 40 should force a wrap")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "// "), "line %q should start with %q", line, "// ")
		assert.LessOrEqual(t, DisplayWidth(line), 40)
	}
}

func TestReformatSurroundPadsToSharedColumn(t *testing.T) {
	opts := DefaultFormatOpts
	got := Reformat(opts, "/* hello world */\n/* foo bar */")
	require.True(t, strings.HasPrefix(got, "/* "))
	require.True(t, strings.HasSuffix(got, " */"))
	assert.NotContains(t, got, "\n", "single merged line expected")
	// the suffix is padded out to the winning target column (72 - 3 - 3).
	assert.Equal(t, 72, DisplayWidth(got))
}

func TestReformatExpandsLeadingTab(t *testing.T) {
	opts := FormatOpts{MaxLength: 72, TabWidth: 4, Mode: PlainText}
	r := New(opts, "\tindented word")
	require.Len(t, r.Blocks(), 1)
	require.NotEmpty(t, r.Blocks()[0].Words)
	assert.Equal(t, "    indented", r.Blocks()[0].Words[0].Text)
}

func TestReformatTabWidthZeroSkipsExpansion(t *testing.T) {
	opts := FormatOpts{MaxLength: 72, TabWidth: 0, Mode: PlainText}
	r := New(opts, "\tindented word")
	require.Len(t, r.Blocks(), 1)
	require.NotEmpty(t, r.Blocks()[0].Words)
	assert.Equal(t, "\tindented", r.Blocks()[0].Words[0].Text)
}

func TestReformatterBlocksExposesAnalysis(t *testing.T) {
	r := New(DefaultFormatOpts, "> hello\n> world")
	blocks := r.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, "> ", blocks[0].Prefix)
}

func TestReformatLastLineDisablesFreeFinalLine(t *testing.T) {
	withFree := Reformat(FormatOpts{MaxLength: 10, TabWidth: 4, Mode: PlainText}, "aaa bbb ccc ddd")
	withLastLine := Reformat(FormatOpts{MaxLength: 10, TabWidth: 4, Mode: PlainText, LastLine: true}, "aaa bbb ccc ddd")
	// both must still produce valid, fitting output; LastLine changes the
	// cost landscape but not the requirement that every line fits.
	for _, line := range strings.Split(withFree, "\n") {
		assert.LessOrEqual(t, DisplayWidth(line), 10)
	}
	for _, line := range strings.Split(withLastLine, "\n") {
		assert.LessOrEqual(t, DisplayWidth(line), 10)
	}
	// "aaa bbb" / "ccc ddd" at target 10: the final line costs nothing
	// unless LastLine is set, when it adds (10-7)^2.
	_, freeCost := bestPath(words("aaa", "bbb", "ccc", "ddd"), 10, false)
	_, lastLineCost := bestPath(words("aaa", "bbb", "ccc", "ddd"), 10, true)
	assert.EqualValues(t, 9, freeCost)
	assert.EqualValues(t, 18, lastLineCost)
}

func TestReformatReduceJaggednessStillFits(t *testing.T) {
	opts := FormatOpts{MaxLength: 10, TabWidth: 4, Mode: PlainText, ReduceJaggedness: true}
	got := Reformat(opts, "aaa bbb ccc ddd eee fff")
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, DisplayWidth(line), 10)
	}
}

func TestFormatModeString(t *testing.T) {
	assert.Equal(t, "PlainText", PlainText.String())
	assert.Equal(t, "Markdown", Markdown.String())
	assert.Equal(t, "Code", Code.String())
}

func TestBlockFormatVerbose(t *testing.T) {
	b := Block{Prefix: "> ", Words: words("hi")}
	got := fmt.Sprintf("%+v", b)
	assert.Contains(t, got, "Prefix:\"> \"")
}
