package roadgraph

import (
	"errors"
	"fmt"

	"github.com/WFBFA/Flight-Paths/core"
)

// ErrUnknownNode indicates a RoadSegment references a node absent from
// the RoadGraph's own node list.
var ErrUnknownNode = errors.New("roadgraph: road segment references a node absent from the node list")

// ToCoreGraph builds a core.Graph from rg: every Node becomes a
// core.Node (coordinates carried through for cluster.Allocate and
// Locate), and every RoadSegment becomes a core.Edge.
func (rg RoadGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, n := range rg.Nodes {
		g.AddNode(n.ID, core.Node{ID: n.ID, Lon: n.Lon, Lat: n.Lat})
	}

	for _, r := range rg.Roads {
		if !g.HasNode(r.P1) || !g.HasNode(r.P2) {
			return nil, fmt.Errorf("%w: %s-%s", ErrUnknownNode, r.P1, r.P2)
		}

		length, err := core.NewReal(r.Distance)
		if err != nil {
			return nil, fmt.Errorf("roadgraph: road %s-%s: %w", r.P1, r.P2, err)
		}

		e := &core.Edge{
			P1:               r.P1,
			P2:               r.P2,
			Discriminator:    r.Discriminator,
			HasDiscriminator: r.HasDiscriminator,
			Directed:         r.Directed,
			Length:           length,
		}
		if _, err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}
