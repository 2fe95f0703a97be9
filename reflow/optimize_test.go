package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ss ...string) []Word {
	ws := make([]Word, len(ss))
	for i, s := range ss {
		ws[i] = newWord(s)
	}
	return ws
}

func TestSolveDAGFitsOnOneLine(t *testing.T) {
	ws := words("hello", "world")
	offsets := entryOffsets(ws)
	path, cost, ok := solveDAG(offsets, len(ws), 72, false, false)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, path)
	assert.EqualValues(t, 0, cost)
}

func TestSolveDAGSplitsAcrossLines(t *testing.T) {
	ws := words("aaa", "bbb", "ccc", "ddd")
	offsets := entryOffsets(ws)
	path, cost, ok := solveDAG(offsets, len(ws), 10, false, false)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4}, path)
	assert.EqualValues(t, 9, cost)
}

func TestSolveDAGFailsWithoutOverage(t *testing.T) {
	// a single word wider than target has no fitting edge at all.
	ws := words("supercalifragilistic")
	offsets := entryOffsets(ws)
	_, _, ok := solveDAG(offsets, len(ws), 5, false, false)
	assert.False(t, ok)
}

func TestSolveDAGOverageFallback(t *testing.T) {
	ws := words("supercalifragilistic")
	offsets := entryOffsets(ws)
	path, cost, ok := solveDAG(offsets, len(ws), 5, false, true)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, path)
	assert.EqualValues(t, overageCost, cost)
}

func TestBestPathRetriesWithOverage(t *testing.T) {
	ws := words("supercalifragilistic")
	path, cost := bestPath(ws, 5, false)
	assert.Equal(t, []int{0, 1}, path)
	assert.EqualValues(t, overageCost, cost)
}
