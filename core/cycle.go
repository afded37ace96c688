// File: cycle.go
// Role: CycleOn (C1) — shortest non-trivial cycle through a vertex, used
//       both to "find any cycle" and, by supplying a weight function that
//       forbids already-used edges, to find the next cycle the cycle-cover
//       and PWRP builders can splice in.
// Implementation choice:
//   - spec.md §9 flags the original's best-first-over-(node,used-edges)
//     search as an acknowledged hack ("an ordered set is not hashable")
//     and explicitly invites a DFS-with-backtracking replacement, provided
//     it still returns the minimum-weight cycle under the weight filter.
//     This file does that: exhaustive DFS over edge-disjoint walks from v
//     back to v, keeping the cheapest one found.
package core

// CycleOn returns the minimum-total-weight non-empty edge sequence
// starting and ending at v whose edges are pairwise distinct, or
// ok==false if no such cycle exists under w.
//
// Complexity: exponential in the worst case (bounded by 2^deg-ish
// branching); acceptable for the small per-splice subgraphs this engine
// calls it on (spec.md §4.1 sanctions either best-first or bounded DFS).
func (g *Graph) CycleOn(v NodeId, w WeightFunc, direspect bool) (Path, bool) {
	used := make(map[*Edge]struct{})
	var best Path
	var bestCost Real
	found := false

	var walk func(u NodeId, path Path, cost Real)
	walk = func(u NodeId, path Path, cost Real) {
		if u == v && len(path) > 0 {
			if !found || cost.Less(bestCost) {
				best = append(Path(nil), path...)
				bestCost = cost
				found = true
			}
			// Stop this walk here: extending a closed walk through v
			// again only adds weight, which under the non-negative,
			// totally ordered, additive weight contract cannot yield a
			// cheaper cycle.
			return
		}
		for e := range g.incidence[u] {
			if _, used := used[e]; used {
				continue
			}
			if direspect && e.Directed && e.P1 != u {
				continue
			}
			ed, ok := w(e)
			if !ok {
				continue
			}
			used[e] = struct{}{}
			walk(e.Other(u), append(path, e), cost.Add(ed))
			delete(used, e)
		}
	}
	walk(v, nil, Zero)

	return best, found
}
