package roadgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WFBFA/Flight-Paths/core"
	"github.com/WFBFA/Flight-Paths/roadgraph"
)

func triangle() roadgraph.RoadGraph {
	return roadgraph.RoadGraph{
		Nodes: []roadgraph.Node{
			{ID: "A", Lon: 0, Lat: 0},
			{ID: "B", Lon: 1, Lat: 0},
			{ID: "C", Lon: 1, Lat: 1},
		},
		Roads: []roadgraph.RoadSegment{
			{P1: "A", P2: "B", Distance: 1},
			{P1: "B", P2: "C", Distance: 1},
			{P1: "C", P2: "A", Distance: 1.5},
		},
	}
}

func TestToCoreGraph_Triangle(t *testing.T) {
	rg := triangle()
	g, err := rg.ToCoreGraph()
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestToCoreGraph_UnknownNode(t *testing.T) {
	rg := triangle()
	rg.Roads = append(rg.Roads, roadgraph.RoadSegment{P1: "A", P2: "Z", Distance: 1})
	_, err := rg.ToCoreGraph()
	require.ErrorIs(t, err, roadgraph.ErrUnknownNode)
}

func TestLocate_NearestCoordinate(t *testing.T) {
	rg := triangle()
	n, ok := rg.Locate(roadgraph.Location{HasCoords: true, Lon: 0.9, Lat: 0.1})
	require.True(t, ok)
	require.Equal(t, core.NodeId("B"), n)
}

func TestLocate_NodePassthrough(t *testing.T) {
	rg := triangle()
	n, ok := rg.Locate(roadgraph.Location{Node: "C"})
	require.True(t, ok)
	require.Equal(t, core.NodeId("C"), n)
}

func TestLocateAll_Vehicles(t *testing.T) {
	rg := triangle()
	ns, err := rg.LocateAll([]roadgraph.Location{
		{HasCoords: true, Lon: 0, Lat: 0},
		{Node: "B"},
	})
	require.NoError(t, err)
	require.Equal(t, []core.NodeId{"A", "B"}, ns)
}

func TestLocateAll_EmptyGraphFails(t *testing.T) {
	rg := roadgraph.RoadGraph{}
	_, err := rg.LocateAll([]roadgraph.Location{{HasCoords: true, Lon: 0, Lat: 0}})
	require.ErrorIs(t, err, roadgraph.ErrUnlocatedVehicle)
}

func TestPathToSegments(t *testing.T) {
	rg := triangle()
	g, err := rg.ToCoreGraph()
	require.NoError(t, err)

	ab := g.EdgesBetween("A", "B")[0]
	bc := g.EdgesBetween("B", "C")[0]
	path := core.Path{ab, bc}

	segs := roadgraph.PathToSegments(path, "A")
	require.Len(t, segs, 3)
	require.Equal(t, core.NodeId("A"), segs[0].Node)
	require.Equal(t, core.NodeId("B"), segs[1].Node)
	require.Equal(t, core.NodeId("C"), segs[2].Node)
}
