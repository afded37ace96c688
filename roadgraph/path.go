package roadgraph

import "github.com/WFBFA/Flight-Paths/core"

// PathToSegments renders a planner path back to wire shape: the node
// sequence visited starting from start (core.PathToNodes), paired with
// each step's discriminator, if any.
func PathToSegments(p core.Path, start core.NodeId) []PathSegment {
	visits := core.PathToNodes(p, start)
	out := make([]PathSegment, 0, len(visits))
	for _, v := range visits {
		seg := PathSegment{Node: v.Node}
		if v.Via != nil {
			seg.Discriminator = v.Via.Discriminator
			seg.HasDiscriminator = v.Via.HasDiscriminator
		}
		out = append(out, seg)
	}

	return out
}
