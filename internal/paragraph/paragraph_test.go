package paragraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split(""))
}

func TestSplitSingleParagraph(t *testing.T) {
	assert.Equal(t, []string{"hello\nworld"}, Split("hello\nworld"))
}

func TestSplitMultipleParagraphs(t *testing.T) {
	got := Split("one\ntwo\n\nthree\n\n\nfour")
	assert.Equal(t, []string{"one\ntwo", "three", "four"}, got)
}

func TestSplitLeadingAndTrailingBlankLines(t *testing.T) {
	got := Split("\n\nhello\n\n")
	assert.Equal(t, []string{"hello"}, got)
}

func TestSplitWhitespaceOnlyLineIsBlank(t *testing.T) {
	got := Split("one\n   \ntwo")
	assert.Equal(t, []string{"one", "two"}, got)
}
