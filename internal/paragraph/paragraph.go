// Package paragraph splits an input stream into the paragraphs cmd/rewrap
// reformats one at a time, the same way the reference CLI's
// process_paragraphs loop does: a paragraph is a maximal run of lines with
// at least one non-blank-trimmed line, and the blank-trimmed lines between
// runs are the separators, not content. Tab expansion is not this package's
// job — that's package reflow's, applied per paragraph at the Reformat
// boundary (spec §6) — so a paragraph here is handed on exactly as found in
// the input, tabs and all.
package paragraph

import "strings"

// Split divides text into paragraphs, each the verbatim join (by "\n") of a
// maximal run of lines that are not all blank-trimmed. Runs of one or more
// blank-trimmed lines are consumed as separators and produce no paragraph of
// their own; a line that carries only decoration (e.g. a lone "> "
// continuing a quote) is not blank for this purpose and stays inside its
// paragraph, since "blank-trimmed" here means strings.TrimSpace, not post-decoration
// trimming — that finer-grained blank tracking belongs to reflow's own
// NewlineAfter bookkeeping within a single paragraph, not to splitting
// between paragraphs.
func Split(text string) []string {
	lines := strings.Split(text, "\n")

	var paragraphs []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paragraphs = append(paragraphs, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paragraphs
}
