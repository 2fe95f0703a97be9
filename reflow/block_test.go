package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimOff(t *testing.T) {
	assert.Equal(t, "hello", trimOff("> hello", "> ", ""))
	assert.Equal(t, "", trimOff("x", "abc", ""))
}

func TestCollectBlocksSplitsOnBlankRuns(t *testing.T) {
	blocks := collectBlocks([]string{"hello", "world", "", "again"}, "", "")
	require.Len(t, blocks, 2)
	assert.Equal(t, []Word{newWord("hello"), newWord("world")}, blocks[0].Words)
	assert.True(t, blocks[0].NewlineAfter)
	assert.Equal(t, []Word{newWord("again")}, blocks[1].Words)
	assert.False(t, blocks[1].NewlineAfter)
}

func TestCollectBlocksFirstLineIndent(t *testing.T) {
	blocks := collectBlocks([]string{"  First line", "second line"}, "", "")
	require.Len(t, blocks, 1)
	require.NotEmpty(t, blocks[0].Words)
	assert.Equal(t, "  First", blocks[0].Words[0].Text)
}

func TestCollectBlocksNoTrailingBlock(t *testing.T) {
	blocks := collectBlocks([]string{"", "", ""}, "", "")
	assert.Empty(t, blocks)
}
