package reflow

import (
	"strings"
	"unicode"
)

// Block is one contiguous run of non-blank, identically-decorated lines:
// every line shares the same Prefix and Suffix once those are stripped away,
// and Words holds the whitespace-delimited tokens recovered from what's
// left. NewlineAfter records that this run was immediately followed, in the
// original input, by a blank-after-trim line belonging to the same
// decoration group — the section reformatter turns that into one extra
// bare-prefix output line (see section.go).
//
// The first Word of a block may carry leading whitespace glued onto it: that
// encodes the first line's extra indentation relative to the rest of the
// block (e.g. a hanging list item), per the structural analyzer's
// first-line-indent rule.
type Block struct {
	Prefix       string
	Suffix       string
	Words        []Word
	NewlineAfter bool
}

// trimOff strips prefix and suffix from line, returning "" if line is
// shorter than len(prefix)+len(suffix).
func trimOff(line, prefix, suffix string) string {
	if len(line) < len(prefix)+len(suffix) {
		return ""
	}
	return line[len(prefix) : len(line)-len(suffix)]
}

// collectBlocks groups lines (already known to share prefix/suffix) into
// Blocks, splitting on runs of lines that trim to empty. Blank runs
// themselves never produce a Block; instead the Block immediately preceding
// one has NewlineAfter set.
func collectBlocks(lines []string, prefix, suffix string) []Block {
	type run struct {
		blank bool
		lines []string
	}

	var runs []run
	for _, line := range lines {
		trimmed := trimOff(line, prefix, suffix)
		blank := strings.TrimSpace(trimmed) == ""
		if n := len(runs); n > 0 && runs[n-1].blank == blank {
			runs[n-1].lines = append(runs[n-1].lines, trimmed)
		} else {
			runs = append(runs, run{blank: blank, lines: []string{trimmed}})
		}
	}

	var blocks []Block
	for i, r := range runs {
		if r.blank {
			continue
		}

		var words []Word
		for li, line := range r.lines {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if li == 0 {
				if idx := strings.IndexFunc(line, func(c rune) bool { return !unicode.IsSpace(c) }); idx > 0 {
					fields[0] = line[:idx] + fields[0]
				}
			}
			for _, f := range fields {
				words = append(words, newWord(f))
			}
		}

		newlineAfter := i+1 < len(runs) && runs[i+1].blank
		blocks = append(blocks, Block{
			Prefix:       prefix,
			Suffix:       suffix,
			Words:        words,
			NewlineAfter: newlineAfter,
		})
	}
	return blocks
}
