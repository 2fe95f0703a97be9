package reflow

import "strings"

// section is one block's fully solved output: the lines it reformatted to,
// and target, the line width that produced them (needed by the composer to
// pick a common padding column across every section of a call).
type section struct {
	prefix string
	suffix string
	lines  []string
	target int
}

// reformatSection runs the optimizer at every candidate target width from
// Tmax (the widest line that still fits MaxLength once prefix and suffix are
// subtracted) down to Tmin, keeping whichever target produces the lowest
// cost once biased by (Tmax-T)^2 toward the wider end. With
// ReduceJaggedness unset, Tmin equals Tmax and exactly one width is tried.
func reformatSection(b Block, opts FormatOpts) section {
	raw := opts.MaxLength - DisplayWidth(b.Prefix) - DisplayWidth(b.Suffix)
	tmax := raw
	if tmax < 1 {
		tmax = 1
	}
	tmin := tmax
	if opts.ReduceJaggedness {
		tmin = tmax / 2
		if tmin < 1 {
			tmin = 1
		}
	}

	const initialBest = int64(100_000_000)
	bestCost := initialBest
	bestTarget := tmax
	var winner []int

	for t := tmax; t >= tmin; t-- {
		path, cost := bestPath(b.Words, t, opts.LastLine)
		bias := int64(tmax - t)
		adjusted := cost + bias*bias
		if adjusted < bestCost {
			bestCost = adjusted
			bestTarget = t
			winner = path
		}
	}

	lines := make([]string, 0, len(winner))
	for k := 0; k+1 < len(winner); k++ {
		i, j := winner[k], winner[k+1]
		content := strings.Join(wordsToStrings(b.Words[i:j]), " ")
		lines = append(lines, b.Prefix+content)
	}
	if b.NewlineAfter {
		lines = append(lines, strings.TrimRight(b.Prefix, " \t"))
	}

	return section{prefix: b.Prefix, suffix: b.Suffix, lines: lines, target: bestTarget}
}

// composeSections joins every block's reformatted lines into the final
// output text. Blocks with a non-empty suffix get their lines padded out to
// a shared column — the widest target actually won by any section in this
// call, or opts.MaxLength if there were no sections at all — so that box
// borders line up even across blocks solved at different target widths.
func composeSections(sections []section, opts FormatOpts) string {
	padColumn := opts.MaxLength
	for i, s := range sections {
		if i == 0 || s.target > padColumn {
			padColumn = s.target
		}
	}

	var out []string
	for _, s := range sections {
		for _, line := range s.lines {
			if s.suffix == "" {
				out = append(out, line)
				continue
			}
			pad := padColumn - DisplayWidth(line) + DisplayWidth(s.prefix)
			if pad < 0 {
				pad = 0
			}
			out = append(out, line+strings.Repeat(" ", pad)+s.suffix)
		}
	}
	return strings.Join(out, "\n")
}
