// File: path.go
// Role: path_to_nodes (C1) — converts a path of successive edges into the
//       sequence of visited nodes (and, for each step, the edge taken).
package core

// NodeVisit is one step of a node sequence derived from a Path: the node
// visited, and (for every step but the first) the edge that was taken to
// reach it.
type NodeVisit struct {
	Node NodeId
	Via  *Edge // nil for the first visit
}

// PathToNodes converts path (a sequence of successive edges) into the node
// sequence visited starting from start, by repeated "other endpoint"
// application (spec invariant I4). len(result) == len(path)+1 (P7).
func PathToNodes(path Path, start NodeId) []NodeVisit {
	vs := make([]NodeVisit, 0, len(path)+1)
	vs = append(vs, NodeVisit{Node: start})
	cur := start
	for _, e := range path {
		cur = e.Other(cur)
		vs = append(vs, NodeVisit{Node: cur, Via: e})
	}

	return vs
}
