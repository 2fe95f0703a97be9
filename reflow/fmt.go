package reflow

import "fmt"

// Format implements fmt.Formatter so a Block can be dumped with %v for a
// terse one-line summary or %+v for full detail, mirroring the teacher's
// scandown.Block verbose/terse convention. cmd/rewrap's -debug flag prints
// %+v for each analyzed block.
func (b Block) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "Block{Prefix:%q Suffix:%q NewlineAfter:%v Words:%v}",
			b.Prefix, b.Suffix, b.NewlineAfter, wordsToStrings(b.Words))
		return
	}
	fmt.Fprintf(f, "Block(%q..%q, %d words)", b.Prefix, b.Suffix, len(b.Words))
}

// Format implements fmt.Formatter for FormatMode; %v and %+v both print the
// mode name since there's no deeper structure to expand.
func (m FormatMode) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, m.String())
}
