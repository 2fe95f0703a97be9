package reflow

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns s occupies, accounting
// for East Asian wide characters and zero-width combining marks. Every width
// computed by this package, from a single word up through a fully composed
// line, goes through this one function so a single convention governs them
// all.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
