package flightpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WFBFA/Flight-Paths/core"
	"github.com/WFBFA/Flight-Paths/flightpath"
)

func newNode(g *core.Graph, id core.NodeId) {
	g.AddNode(id, core.Node{ID: id})
}

func undirected(p1, p2 core.NodeId, length float64) *core.Edge {
	return &core.Edge{P1: p1, P2: p2, Length: core.MustReal(length)}
}

func mustAdd(t *testing.T, g *core.Graph, e *core.Edge) {
	t.Helper()
	_, err := g.AddEdge(e)
	require.NoError(t, err)
}

func anyWeight(e *core.Edge) (core.Real, bool) { return e.Length, true }

// TestBuild_Triangle is scenario S1: a single drone at A on an already
// Eulerian triangle returns one path covering all 3 edges, length 3.
func TestBuild_Triangle(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeId{"A", "B", "C"} {
		newNode(g, id)
	}
	mustAdd(t, g, undirected("A", "B", 1))
	mustAdd(t, g, undirected("B", "C", 1))
	mustAdd(t, g, undirected("C", "A", 1))

	res, err := flightpath.Build(g, []core.NodeId{"A"}, anyWeight, false, nil)
	require.NoError(t, err)
	require.Empty(t, res.Unreachable)
	require.Len(t, res.Tours, 1)
	require.Len(t, res.Tours[0], 3)

	nodes := core.PathToNodes(res.Tours[0], "A")
	require.Equal(t, core.NodeId("A"), nodes[0].Node)
	require.Equal(t, core.NodeId("A"), nodes[len(nodes)-1].Node)
}

// TestBuild_DisjointTriangles is scenario S3: two disjoint triangles, one
// drone at A. Triangle 2 (D,E,F) is unreachable and reported as residual;
// the single path covers only A,B,C.
func TestBuild_DisjointTriangles(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeId{"A", "B", "C", "D", "E", "F"} {
		newNode(g, id)
	}
	mustAdd(t, g, undirected("A", "B", 1))
	mustAdd(t, g, undirected("B", "C", 1))
	mustAdd(t, g, undirected("C", "A", 1))
	mustAdd(t, g, undirected("D", "E", 1))
	mustAdd(t, g, undirected("E", "F", 1))
	mustAdd(t, g, undirected("F", "D", 1))

	res, err := flightpath.Build(g, []core.NodeId{"A"}, anyWeight, false, nil)
	require.NoError(t, err)
	require.Len(t, res.Tours, 1)
	require.Len(t, res.Tours[0], 3)
	require.Len(t, res.Unreachable, 3)

	for _, nv := range core.PathToNodes(res.Tours[0], "A") {
		require.Contains(t, []core.NodeId{"A", "B", "C"}, nv.Node)
	}
}

// TestBuild_CoversUnion covers property P2: the multiset union of edges
// across all tours equals the full edge set of a multi-component,
// multi-anchor graph (two separate squares, two drones).
func TestBuild_CoversUnion(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeId{"A", "B", "C", "D", "W", "X", "Y", "Z"} {
		newNode(g, id)
	}
	squareEdges := []*core.Edge{
		undirected("A", "B", 1), undirected("B", "C", 1), undirected("C", "D", 1), undirected("D", "A", 1),
		undirected("W", "X", 1), undirected("X", "Y", 1), undirected("Y", "Z", 1), undirected("Z", "W", 1),
	}
	for _, e := range squareEdges {
		mustAdd(t, g, e)
	}

	res, err := flightpath.Build(g, []core.NodeId{"A", "W"}, anyWeight, false, nil)
	require.NoError(t, err)
	require.Empty(t, res.Unreachable)

	covered := make(map[*core.Edge]struct{})
	for _, tour := range res.Tours {
		for _, e := range tour {
			covered[e] = struct{}{}
		}
	}
	require.Len(t, covered, len(squareEdges))
	for _, e := range squareEdges {
		_, ok := covered[e]
		require.True(t, ok)
	}
}

// TestBuild_ParallelEdgesDiscriminated covers scenario S4 groundwork: two
// parallel edges between the same pair, distinguished by discriminator,
// are both consumed into the tour as distinct edges.
func TestBuild_ParallelEdgesDiscriminated(t *testing.T) {
	g := core.NewGraph()
	newNode(g, "A")
	newNode(g, "B")
	e1 := &core.Edge{P1: "A", P2: "B", Discriminator: "1", HasDiscriminator: true, Length: core.MustReal(1)}
	e2 := &core.Edge{P1: "A", P2: "B", Discriminator: "2", HasDiscriminator: true, Length: core.MustReal(1)}
	mustAdd(t, g, e1)
	mustAdd(t, g, e2)

	res, err := flightpath.Build(g, []core.NodeId{"A"}, anyWeight, false, nil)
	require.NoError(t, err)
	require.Empty(t, res.Unreachable)
	require.Len(t, res.Tours[0], 2)
	require.Contains(t, res.Tours[0], e1)
	require.Contains(t, res.Tours[0], e2)
}
