package reflow

import (
	"fmt"
	"os"
)

// overageCost is the bail-out edge cost used when no word sequence fits
// within target: high enough that any path using it loses to any path that
// doesn't need to, but still finite so a best path always exists.
const overageCost = 100_000

// edge is a candidate transition from one word-boundary node to another in
// the implicit line-break DAG.
type edge struct {
	to   int
	cost int64
}

// entryOffsets returns, for i in 0..len(words), the cumulative display width
// of words[0:i] with no inter-word spacing included. entryOffsets[0] is
// always 0.
func entryOffsets(words []Word) []int {
	offsets := make([]int, len(words)+1)
	for i, w := range words {
		offsets[i+1] = offsets[i] + w.Width()
	}
	return offsets
}

// successors lists the edges leaving node i: for each candidate end node j,
// the line spanning words[i:j] has width offsets[j]-offsets[i] plus one
// space per gap between its words. Edges stop at the first j whose line
// would exceed target; when that's also the very first j tried (no edge
// found at all from i) and allowOverage is set, a single bail-out edge of
// cost overageCost is emitted instead so the path can still reach the goal.
func successors(offsets []int, n, i, target int, lastLine, allowOverage bool) []edge {
	var edges []edge
	for j := i + 1; j <= n; j++ {
		width := offsets[j] - offsets[i] + (j - i - 1)
		if width > target {
			if len(edges) == 0 && allowOverage {
				edges = append(edges, edge{to: j, cost: overageCost})
			}
			break
		}
		var cost int64
		if j >= n-1 && !lastLine {
			cost = 0
		} else {
			diff := int64(target - width)
			cost = diff * diff
		}
		edges = append(edges, edge{to: j, cost: cost})
	}
	return edges
}

// solveDAG finds the minimum-cost path from node 0 to node n over the
// word-boundary DAG. Because every edge goes from a lower index to a
// strictly higher one, visiting nodes 0..n in order is already a
// topological order, so a single forward relaxation pass computes the same
// result Dijkstra would (and, thanks to strict less-than relaxation,
// prefers the earliest-discovered predecessor on cost ties).
func solveDAG(offsets []int, n, target int, lastLine, allowOverage bool) (path []int, cost int64, ok bool) {
	const inf = int64(1) << 62

	dist := make([]int64, n+1)
	prev := make([]int, n+1)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	dist[0] = 0

	for i := 0; i <= n; i++ {
		if dist[i] == inf {
			continue
		}
		for _, e := range successors(offsets, n, i, target, lastLine, allowOverage) {
			if nd := dist[i] + e.cost; nd < dist[e.to] {
				dist[e.to] = nd
				prev[e.to] = i
			}
		}
	}

	if dist[n] == inf {
		return nil, 0, false
	}

	path = []int{n}
	for at := n; at != 0; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[n], true
}

// bestPath finds the lowest-cost line-break path for words at the given
// target width. If no path fits without overage, it warns on stderr and
// retries allowing the bail-out edge so a result is always produced.
func bestPath(words []Word, target int, lastLine bool) (path []int, cost int64) {
	offsets := entryOffsets(words)
	n := len(words)
	if path, cost, ok := solveDAG(offsets, n, target, lastLine, false); ok {
		return path, cost
	}
	warnOverage()
	path, cost, _ = solveDAG(offsets, n, target, lastLine, true)
	return path, cost
}

func warnOverage() {
	fmt.Fprintln(os.Stderr, "rewrap: warning: allowing some words to extend beyond target width")
}
