// File: dijkstra.go
// Role: Shortest path (C1): Pathfind and the region-to-region multi-source
//       variant used by the Rural Postman heuristic's "reach" phase.
// Notes:
//   - WeightFunc returning (_, false) for an edge means "forbidden": the
//     edge is skipped entirely, exactly like the spec's Option<Weight>.
//   - Traversal of a directed edge is legal only outbound (direspect==true
//     ⇒ e.P1 must be the current node); undirected edges are always legal
//     from either endpoint.
//   - Tie-breaks among equal-cost expansions are implementation-defined
//     (container/heap does not guarantee FIFO among equal keys).
package core

import "container/heap"

// WeightFunc assigns a traversal cost to an edge, or reports the edge as
// currently forbidden by returning ok==false.
type WeightFunc func(e *Edge) (w Real, ok bool)

// Path is an ordered sequence of edges; consecutive edges share an
// endpoint at the traversal node (spec invariant I4).
type Path []*Edge

// Pathfind returns the minimum-WeightFunc-cost edge sequence from a to b,
// or ok==false if b is unreachable from a under w.
//
// Complexity: O((V+E) log V).
func (g *Graph) Pathfind(a, b NodeId, w WeightFunc, direspect bool) (Path, bool) {
	src, dst, p, ok := g.PathfindRegions(set(a), set(b), w, direspect)
	_ = src
	_ = dst

	return p, ok
}

// PathfindRegions runs a multi-source, multi-target Dijkstra: every node in
// aSet is seeded at distance 0, and the search stops at the first node of
// bSet it settles. Returns the settled source, the reached target, and the
// connecting edge sequence, or ok==false if either set is empty or no node
// of bSet is reachable.
//
// Complexity: O((V+E) log V).
func (g *Graph) PathfindRegions(aSet, bSet map[NodeId]struct{}, w WeightFunc, direspect bool) (NodeId, NodeId, Path, bool) {
	if len(aSet) == 0 || len(bSet) == 0 {
		return "", "", nil, false
	}

	type best struct {
		dist Real
		via  *Edge
		from NodeId
	}
	dp := make(map[NodeId]best, len(g.nodes))
	pq := make(nodePQ, 0, len(g.nodes))
	heap.Init(&pq)

	for a := range aSet {
		dp[a] = best{dist: Zero}
		heap.Push(&pq, &nodeItem{id: a, dist: Zero})
	}
	settled := make(map[NodeId]struct{}, len(g.nodes))

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if _, done := settled[u]; done {
			continue
		}
		settled[u] = struct{}{}
		ub := dp[u]

		if _, isTarget := bSet[u]; isTarget {
			var path Path
			v := u
			for {
				b, ok := dp[v]
				if !ok || b.via == nil {
					break
				}
				path = append(path, b.via)
				v = b.via.Other(v)
			}
			// Reverse into traversal order.
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return v, u, path, true
		}

		for e := range g.incidence[u] {
			if direspect && e.Directed && e.P1 != u {
				continue
			}
			ed, ok := w(e)
			if !ok {
				continue
			}
			v := e.Other(u)
			nd := ub.dist.Add(ed)
			cur, seen := dp[v]
			if !seen || nd.Less(cur.dist) {
				dp[v] = best{dist: nd, via: e, from: u}
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	return "", "", nil, false
}

func set(ids ...NodeId) map[NodeId]struct{} {
	s := make(map[NodeId]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem struct {
	id   NodeId
	dist Real
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// lazy-decrease-key pattern: stale entries are dropped via the settled set
// rather than located and updated in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist.Less(pq[j].dist) }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
