// Package flightpath implements the cycle-cover builder (C4): given an
// Eulerianised graph and K anchor nodes, produce K closed edge sequences
// that together cover every edge of the graph exactly once, each
// starting and ending at its anchor.
//
// This is Hierholzer's algorithm generalised across K anchors, with
// fairness by always growing the currently-shortest incomplete tour.
// Grounded on original_source/src/brr.rs (bl33p, dijkstra_on_a_bicycle,
// path_shmlop).
package flightpath

import (
	"log"

	"github.com/WFBFA/Flight-Paths/core"
)

// Result is the outcome of Build. Tours[i] is the closed walk anchored
// at anchors[i], the i-th anchor passed to Build. Unreachable is non-nil only when some edges could not
// be folded into any tour (spec.md §4.4 step 4: "report a warning,
// retain the residual, and stop") — this is not itself an error.
type Result struct {
	Tours       []core.Path
	Unreachable []*core.Edge
}

// Build consumes g's edges (via core.Graph.RemoveEdge) as it assigns them
// to tours. Callers that still need g afterward should pass a copy.
func Build(g *core.Graph, anchors []core.NodeId, weight core.WeightFunc, direspect bool, logger *log.Logger) (*Result, error) {
	logf := func(format string, args ...interface{}) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}

	tours := make([]core.Path, len(anchors))
	complete := make([]bool, len(anchors))

	for !allTrue(complete) && !g.IsEdgeEmpty() {
		i := shortestIncomplete(tours, complete)

		v, y, ok := spliceTarget(g, tours[i], anchors[i])
		if !ok {
			complete[i] = true
			continue
		}

		cyc, ok := g.CycleOn(v, weight, direspect)
		if !ok {
			// v has remaining incident edges but no admissible cycle
			// under weight; treat this tour as exhausted and let
			// another anchor (or the residual check) deal with them.
			complete[i] = true
			continue
		}

		for _, e := range cyc {
			g.RemoveEdge(e)
		}
		tours[i] = splice(tours[i], y, cyc)
		logf("flightpath: tour %d grew by %d edges at %v (now %d edges)", i, len(cyc), v, len(tours[i]))
	}

	res := &Result{Tours: tours}
	if !g.IsEdgeEmpty() {
		res.Unreachable = residualEdges(g)
		logf("flightpath: %d edges unreachable from any anchor", len(res.Unreachable))
	}

	return res, nil
}

// spliceTarget finds the first node along tour's visit sequence (rooted
// at anchor) that still has incident edges remaining in g, returning its
// position. An empty tour splices at its anchor, position 0.
func spliceTarget(g *core.Graph, tour core.Path, anchor core.NodeId) (core.NodeId, int, bool) {
	if len(tour) == 0 {
		if len(g.Incidence(anchor)) > 0 {
			return anchor, 0, true
		}

		return "", 0, false
	}
	for idx, nv := range core.PathToNodes(tour, anchor) {
		if len(g.Incidence(nv.Node)) > 0 {
			return nv.Node, idx, true
		}
	}

	return "", 0, false
}

// splice inserts cyc into tour at position y.
func splice(tour core.Path, y int, cyc core.Path) core.Path {
	out := make(core.Path, 0, len(tour)+len(cyc))
	out = append(out, tour[:y]...)
	out = append(out, cyc...)
	out = append(out, tour[y:]...)

	return out
}

// shortestIncomplete returns the index of the incomplete tour with the
// smallest total edge length (spec.md §4.4 step 1).
func shortestIncomplete(tours []core.Path, complete []bool) int {
	best := -1
	var bestLen core.Real
	for i, done := range complete {
		if done {
			continue
		}
		l := tourLength(tours[i])
		if best == -1 || l.Less(bestLen) {
			best = i
			bestLen = l
		}
	}

	return best
}

func tourLength(p core.Path) core.Real {
	total := core.Zero
	for _, e := range p {
		total = total.Add(e.Length)
	}

	return total
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}

	return true
}

// residualEdges collects every edge still present in g, deduplicated by
// pointer identity.
func residualEdges(g *core.Graph) []*core.Edge {
	seen := make(map[*core.Edge]struct{})
	var out []*core.Edge
	for _, n := range g.Nodes() {
		for _, e := range g.Incidence(n) {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}
