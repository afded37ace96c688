// Package rpp implements the Rural Postman heuristic (C5, "PWRP" in the
// original program): build a single closed tour from a starting vertex
// that visits every edge of a required subset at least once, by
// alternating a growth phase (splice a cycle into the tour wherever the
// tour already touches an unconsumed required edge) and a reach phase
// (detour from the tour to a disconnected required edge and back).
//
// Grounded on spec.md §4.5; the original program's solve_pwrp lived in a
// graph::heuristics module that was not present in the retrieved source
// tree, so this is built directly from the algorithm description using
// the core package's Dijkstra/cycle primitives (core.CycleOn mirrors
// dijkstra_on_a_bicycle, core.PathfindRegions mirrors the multi-source
// reach search).
package rpp

import (
	"fmt"

	"github.com/WFBFA/Flight-Paths/core"
)

// UnreachableError reports that growth and reach both failed to place
// the remaining required edges onto the tour under construction.
type UnreachableError struct {
	Residual []*core.Edge
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("rpp: %d required edges unreachable from the tour under construction", len(e.Residual))
}

// Solve builds one closed edge sequence starting and ending at start
// that covers every edge of required, or returns an *UnreachableError
// wrapping whatever remained unplaced.
func Solve(g *core.Graph, start core.NodeId, required []*core.Edge, weight core.WeightFunc, direspect bool) (core.Path, error) {
	alloc := make(map[*core.Edge]struct{}, len(required))
	for _, e := range required {
		alloc[e] = struct{}{}
	}

	var sol core.Path

	for len(alloc) > 0 {
		if v, y, ok := growthTarget(g, sol, start, alloc); ok {
			w2 := forbid(weight, usedSet(sol))
			cyc, ok := g.CycleOn(v, w2, direspect)
			if !ok {
				return nil, &UnreachableError{Residual: allocSlice(alloc)}
			}
			for _, e := range cyc {
				delete(alloc, e)
			}
			sol = spliceAt(sol, y, cyc)

			continue
		}

		u, v2, p1, ok := reach(g, sol, start, alloc, weight, direspect)
		if !ok {
			return nil, &UnreachableError{Residual: allocSlice(alloc)}
		}

		e, ok := pickOutgoing(alloc, v2, direspect)
		if !ok {
			return nil, &UnreachableError{Residual: allocSlice(alloc)}
		}

		p := append(core.Path{}, p1...)
		p = append(p, e)
		forward := usedSet(sol)
		for _, fe := range p {
			forward[fe] = struct{}{}
		}
		pBack, ok := g.Pathfind(e.Other(v2), u, forbid(weight, forward), direspect)
		if !ok {
			return nil, &UnreachableError{Residual: allocSlice(alloc)}
		}

		full := append(p, pBack...)
		delete(alloc, e)
		sol = spliceAt(sol, positionOf(sol, start, u), full)
	}

	return sol, nil
}

// growthTarget finds the first node along sol's visit sequence (rooted
// at start) with an incident edge that is both required-and-unplaced
// (alloc) and not already part of sol. An empty tour checks start itself.
func growthTarget(g *core.Graph, sol core.Path, start core.NodeId, alloc map[*core.Edge]struct{}) (core.NodeId, int, bool) {
	used := usedSet(sol)
	qualifies := func(n core.NodeId) bool {
		for _, e := range g.Incidence(n) {
			if _, inAlloc := alloc[e]; !inAlloc {
				continue
			}
			if _, isUsed := used[e]; isUsed {
				continue
			}

			return true
		}

		return false
	}

	if len(sol) == 0 {
		return start, 0, qualifies(start)
	}
	for idx, nv := range core.PathToNodes(sol, start) {
		if qualifies(nv.Node) {
			return nv.Node, idx, true
		}
	}

	return "", 0, false
}

// reach runs the region-to-region search from the tour's "through"
// nodes to the endpoint set of the remaining required edges.
//
// A node of a closed walk already has both a valid incoming and outgoing
// traversal within that walk by construction (it was entered and left
// once already, respecting direspect); an empty tour is trivially
// "through" at start alone.
func reach(g *core.Graph, sol core.Path, start core.NodeId, alloc map[*core.Edge]struct{}, weight core.WeightFunc, direspect bool) (core.NodeId, core.NodeId, core.Path, bool) {
	U := make(map[core.NodeId]struct{})
	if len(sol) == 0 {
		U[start] = struct{}{}
	} else {
		for _, nv := range core.PathToNodes(sol, start) {
			U[nv.Node] = struct{}{}
		}
	}

	V := outgoingEndpoints(alloc, direspect)
	w2 := forbid(weight, usedSet(sol))

	return g.PathfindRegions(U, V, w2, direspect)
}

// outgoingEndpoints returns every node that can legally start the
// traversal of some edge still in alloc: both endpoints of an
// undirected edge, but only P1 of a directed edge when direspect.
func outgoingEndpoints(alloc map[*core.Edge]struct{}, direspect bool) map[core.NodeId]struct{} {
	out := make(map[core.NodeId]struct{})
	for e := range alloc {
		if !direspect || !e.Directed {
			out[e.P1] = struct{}{}
			out[e.P2] = struct{}{}
		} else {
			out[e.P1] = struct{}{}
		}
	}

	return out
}

// pickOutgoing returns some edge of alloc that may legally be entered at
// v (see outgoingEndpoints), preferring the shortest for determinism.
func pickOutgoing(alloc map[*core.Edge]struct{}, v core.NodeId, direspect bool) (*core.Edge, bool) {
	var best *core.Edge
	for e := range alloc {
		eligible := e.P1 == v || (!direspect && e.P2 == v) || (!e.Directed && e.P2 == v)
		if !eligible {
			continue
		}
		if best == nil || e.Length.Less(best.Length) {
			best = e
		}
	}

	return best, best != nil
}

// usedSet returns the edges already part of sol, by pointer identity.
func usedSet(sol core.Path) map[*core.Edge]struct{} {
	used := make(map[*core.Edge]struct{}, len(sol))
	for _, e := range sol {
		used[e] = struct{}{}
	}

	return used
}

// forbid wraps weight so that any edge in used is reported inadmissible.
func forbid(weight core.WeightFunc, used map[*core.Edge]struct{}) core.WeightFunc {
	return func(e *core.Edge) (core.Real, bool) {
		if _, ok := used[e]; ok {
			return core.Zero, false
		}

		return weight(e)
	}
}

// spliceAt inserts extra into sol at position y.
func spliceAt(sol core.Path, y int, extra core.Path) core.Path {
	out := make(core.Path, 0, len(sol)+len(extra))
	out = append(out, sol[:y]...)
	out = append(out, extra...)
	out = append(out, sol[y:]...)

	return out
}

// positionOf returns the index of u's first occurrence in sol's visit
// sequence rooted at start, or 0 if sol is empty (in which case u must
// be start).
func positionOf(sol core.Path, start, u core.NodeId) int {
	if len(sol) == 0 {
		return 0
	}
	for idx, nv := range core.PathToNodes(sol, start) {
		if nv.Node == u {
			return idx
		}
	}

	return 0
}

// allocSlice collects the remaining keys of alloc.
func allocSlice(alloc map[*core.Edge]struct{}) []*core.Edge {
	out := make([]*core.Edge, 0, len(alloc))
	for e := range alloc {
		out = append(out, e)
	}

	return out
}
