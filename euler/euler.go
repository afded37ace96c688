// Package euler implements Eulerisation (C3): augmenting a mixed
// multigraph in place so that a closed walk traversing every edge exists.
//
// Algorithm (spec.md §4.3):
//
//	Phase A (dead-end cure): duplicate the lone edge at every degree-1
//	node. A directed edge pointing *into* a dead end can never be fixed by
//	duplication; that is reported as ErrDirectedDeadEnd.
//
//	Phase B (degree repair): while some node fails EulerianCompatible,
//	pick the admissible, not-yet-duplicated-at-this-node candidate edge
//	(restricted, in direction-respect mode, to the orientation that
//	reduces the node's |in-out| imbalance) with the lowest priority, and
//	duplicate it. Each duplication strictly reduces the number of
//	parity-violating nodes (or one imbalance unit under direction
//	respect), so the loop terminates in O(edges²) steps.
//
// Eulerisation only ever calls Graph.AddEdge(e.Duplicate()): it never
// removes or alters an existing edge (spec property P6).
package euler

import (
	"errors"
	"log"
	"sort"

	"github.com/WFBFA/Flight-Paths/core"
)

// ErrDirectedDeadEnd indicates a one-way sink: a node with exactly one
// incident edge, that edge directed into the node. No amount of
// duplication can give such a node positive out-degree, so Eulerisation
// fails outright (spec.md §7, ErrorKind DirectedDeadEnd).
var ErrDirectedDeadEnd = errors.New("euler: directed dead-end cannot be made eulerian")

// Priority orders Eulerisation's candidate edges. Per spec.md §4.3, a
// natural priority picks edges joining two other odd-degree nodes first,
// shortest first; NegOddEndpoints should be more negative the more
// odd-degree endpoints the edge touches (so that sorting ascending
// prefers those edges), and Length breaks ties.
type Priority struct {
	NegOddEndpoints int
	Length          core.Real
}

// Less reports whether p sorts before o (p is preferred over o).
func (p Priority) Less(o Priority) bool {
	if p.NegOddEndpoints != o.NegOddEndpoints {
		return p.NegOddEndpoints < o.NegOddEndpoints
	}

	return p.Length.Less(o.Length)
}

// PriorityFunc assigns a Priority to a candidate edge at the node
// currently being repaired, or reports the edge inadmissible via ok==false.
type PriorityFunc func(g *core.Graph, e *core.Edge) (p Priority, ok bool)

// DefaultPriority admits every non-self-loop edge, preferring edges whose
// other endpoint is currently odd-degree (so that one duplication can fix
// two nodes at once), shortest first.
func DefaultPriority(g *core.Graph, e *core.Edge) (Priority, bool) {
	if e.IsSelfLoop() {
		return Priority{}, false
	}
	oddCount := 0
	for _, n := range []core.NodeId{e.P1, e.P2} {
		if g.Degree(n, false)%2 != 0 {
			oddCount++
		}
	}

	return Priority{NegOddEndpoints: -oddCount, Length: e.Length}, true
}

// Eulerianize augments g in place per the algorithm above. On success it
// returns (nil, nil); on a directed dead-end it returns the offending
// edge and ErrDirectedDeadEnd. logger may be nil to disable progress logs.
func Eulerianize(g *core.Graph, direspect bool, priority PriorityFunc, logger *log.Logger) (*core.Edge, error) {
	logf := func(format string, args ...interface{}) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}

	// Phase A: dead-end cure. Under direction respect every one-way dead
	// end is looked for before any duplication, since duplicating the lone
	// edge at its tail would leave the sink with two incident edges.
	if direspect {
		for _, n := range nodesOf(g) {
			es := g.Incidence(n)
			if len(es) == 1 && es[0].Directed && es[0].P2 == n {
				return es[0], ErrDirectedDeadEnd
			}
		}
	}
	for _, n := range nodesOf(g) {
		es := g.Incidence(n)
		if len(es) != 1 {
			continue
		}
		e := es[0]
		if direspect && e.Directed && e.P2 == n {
			return e, ErrDirectedDeadEnd
		}
		logf("euler: curing dead end at %v by duplicating %v-%v", n, e.P1, e.P2)
		if _, err := g.AddEdge(e.Duplicate()); err != nil {
			panic(err) // duplicate shares endpoints with e, which are already nodes of g
		}
	}

	// Phase B: degree repair.
	for {
		n, ok := firstIncompatible(g, direspect)
		if !ok {
			break
		}

		es := g.Incidence(n)
		candidates := make([]*core.Edge, 0, len(es))
		for _, e := range es {
			if e.IsSelfLoop() {
				continue
			}
			if alreadyDuplicatedAt(es, e) {
				continue
			}
			if _, admissible := priority(g, e); !admissible {
				continue
			}
			candidates = append(candidates, e)
		}

		if direspect {
			in, out := 0, 0
			for _, e := range es {
				if e.Directed && e.P2 == n {
					in++
				} else if e.Directed && e.P1 == n {
					out++
				}
			}
			filtered := candidates[:0:0]
			for _, e := range candidates {
				if !e.Directed || (out > in && e.P2 == n) || (in > out && e.P1 == n) {
					filtered = append(filtered, e)
				}
			}
			candidates = filtered
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			pi, _ := priority(g, candidates[i])
			pj, _ := priority(g, candidates[j])

			return pi.Less(pj)
		})

		if len(candidates) == 0 {
			// Every incident edge is either a self-loop, already
			// duplicated, or inadmissible: the node cannot be repaired.
			// This cannot happen for a well-formed input per spec.md's
			// termination argument, but we fail loudly rather than loop.
			panic("euler: no admissible candidate to repair node " + string(n))
		}

		chosen := candidates[0]
		logf("euler: repairing %v by duplicating %v-%v (len %.3f)", n, chosen.P1, chosen.P2, chosen.Length.F())
		if _, err := g.AddEdge(chosen.Duplicate()); err != nil {
			panic(err)
		}
	}

	return nil, nil
}

// alreadyDuplicatedAt reports whether some other edge in es is a
// duplicate-of e (same similarity class, different Iidx).
func alreadyDuplicatedAt(es []*core.Edge, e *core.Edge) bool {
	for _, ee := range es {
		if ee != e && e.DupedOf(ee) {
			return true
		}
	}

	return false
}

// firstIncompatible returns a node currently failing EulerianCompatible,
// if any. Iteration order over nodes is not guaranteed stable, matching
// spec.md's "some node n fails" (the choice is implementation-defined).
func firstIncompatible(g *core.Graph, direspect bool) (core.NodeId, bool) {
	for _, n := range nodesOf(g) {
		if !g.EulerianCompatible(n, direspect) {
			return n, true
		}
	}

	return "", false
}

// nodesOf returns every node of g. Isolated nodes are trivially
// Eulerian-compatible (zero degree), so inspecting them is harmless.
func nodesOf(g *core.Graph) []core.NodeId {
	return g.Nodes()
}
