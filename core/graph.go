// File: graph.go
// Role: Graph construction and adjacency queries (C1): AddNode, AddEdge,
//       Incidence, EdgesBetween, counts, Degree, EulerianCompatible.
// Determinism:
//   - Incidence/Edges iteration order is not guaranteed stable across calls;
//     callers that need a stable order must sort explicitly (algorithms in
//     this engine never rely on map iteration order for correctness).
// Concurrency:
//   - None. spec.md §5 mandates a single-threaded core with no concurrent
//     mutators; see DESIGN.md for why the teacher's RWMutex convention is
//     not carried forward here.
package core

// Graph is a mapping from NodeId to the set of edges incident on that
// node. A non-self-loop edge appears in the incidence set of both
// endpoints; a self-loop appears once. Edges are keyed by pointer
// identity within each incidence set: a single *Edge allocation plays
// the role of the arena index described in spec.md §9's design notes,
// so two structurally-identical-but-distinct Duplicate() results are
// always distinct set members.
type Graph struct {
	nodes     map[NodeId]Node
	incidence map[NodeId]map[*Edge]struct{}
}

// NewGraph returns an empty Graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeId]Node),
		incidence: make(map[NodeId]map[*Edge]struct{}),
	}
}

// AddNode inserts (or replaces) a node. Returns true if this was a fresh
// insertion, false if it replaced an existing node.
//
// Complexity: O(1).
func (g *Graph) AddNode(id NodeId, n Node) bool {
	_, existed := g.nodes[id]
	g.nodes[id] = n
	if _, ok := g.incidence[id]; !ok {
		g.incidence[id] = make(map[*Edge]struct{})
	}

	return !existed
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id NodeId) bool {
	_, ok := g.nodes[id]

	return ok
}

// GetNode returns the Node stored for id, if any.
func (g *Graph) GetNode(id NodeId) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// AddEdge inserts e into the incidence sets of its endpoints. It refuses
// (returning ErrUnknownNode) if either endpoint is not already a node of
// the graph (spec invariant I1).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) (*Edge, error) {
	if !g.HasNode(e.P1) || !g.HasNode(e.P2) {
		return nil, ErrUnknownNode
	}

	g.incidence[e.P1][e] = struct{}{}
	if !e.IsSelfLoop() {
		g.incidence[e.P2][e] = struct{}{}
	}

	return e, nil
}

// Incidence returns the edges incident on n, in no particular order.
func (g *Graph) Incidence(n NodeId) []*Edge {
	es := g.incidence[n]
	out := make([]*Edge, 0, len(es))
	for e := range es {
		out = append(out, e)
	}

	return out
}

// EdgesBetween returns every edge with {a,b} among its endpoints (in
// either stored order for undirected edges).
func (g *Graph) EdgesBetween(a, b NodeId) []*Edge {
	var out []*Edge
	for e := range g.incidence[a] {
		if e.Other(a) == b {
			out = append(out, e)
		}
	}

	return out
}

// Nodes returns every node id of the graph, in no particular order.
func (g *Graph) Nodes() []NodeId {
	out := make([]NodeId, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges (self-loops counted once).
//
// Complexity: O(V+E) over incidence buckets.
func (g *Graph) EdgeCount() int {
	seen := make(map[*Edge]struct{})
	for _, es := range g.incidence {
		for e := range es {
			seen[e] = struct{}{}
		}
	}

	return len(seen)
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

// IsEdgeEmpty reports whether the graph has no edges at all.
func (g *Graph) IsEdgeEmpty() bool {
	for _, es := range g.incidence {
		if len(es) > 0 {
			return false
		}
	}

	return true
}

// Degree computes combined_degree_D(n) as defined in spec.md §4.3:
//
//	direspect==true:  -|#{directed in} - #{directed out}| + #{undirected non-loop}
//	direspect==false: #{non-self-loop edges at n}
//
// A self-loop contributes an even amount to a node's parity either way, so
// it is excluded from the count rather than risk flipping EulerianCompatible
// by one (matching original_source/src/graph.rs's `!e.is_cyclic()` filter).
//
// Complexity: O(deg(n)).
func (g *Graph) Degree(n NodeId, direspect bool) int {
	es := g.incidence[n]
	if !direspect {
		count := 0
		for e := range es {
			if !e.IsSelfLoop() {
				count++
			}
		}

		return count
	}

	var in, out, undirected int
	for e := range es {
		switch {
		case e.IsSelfLoop():
		case e.Directed && e.P2 == n:
			in++
		case e.Directed && e.P1 == n:
			out++
		case !e.Directed && !e.IsSelfLoop():
			undirected++
		}
	}
	imbalance := out - in
	if imbalance < 0 {
		imbalance = -imbalance
	}

	return -imbalance + undirected
}

// EulerianCompatible reports eulirian_compatible_D(n): combined degree is
// even, and (if direspect) non-negative.
func (g *Graph) EulerianCompatible(n NodeId, direspect bool) bool {
	d := g.Degree(n, direspect)

	return d%2 == 0 && (!direspect || d >= 0)
}

// RemoveEdge deletes e from the incidence sets of its endpoints. Used by
// the cycle-cover and PWRP consumers (C4/C5) as edges are claimed by a
// tour; it is not part of C1's public read surface in spec.md but is the
// natural Go shape for "remove its edges from the graph" in §4.4/§4.5.
func (g *Graph) RemoveEdge(e *Edge) {
	delete(g.incidence[e.P1], e)
	if !e.IsSelfLoop() {
		delete(g.incidence[e.P2], e)
	}
}
