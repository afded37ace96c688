package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WFBFA/Flight-Paths/core"
)

func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []core.NodeId{"A", "B", "C", "D"} {
		newNode(g, id)
	}
	mustAdd(t, g, undirected("A", "B", 1))
	mustAdd(t, g, undirected("B", "C", 1))
	mustAdd(t, g, undirected("C", "D", 1))
	mustAdd(t, g, undirected("D", "A", 1))
	mustAdd(t, g, undirected("A", "C", 1.4))

	return g
}

func anyWeight(e *core.Edge) (core.Real, bool) { return e.Length, true }

// TestPathfind_Basic checks the shortest A->C path picks the diagonal over
// the two-hop detour.
func TestPathfind_Basic(t *testing.T) {
	g := buildSquare(t)
	p, ok := g.Pathfind("A", "C", anyWeight, false)
	require.True(t, ok)
	require.Len(t, p, 1)
	require.InDelta(t, 1.4, p[0].Length.F(), 1e-9)
}

// TestPathfind_Unreachable verifies ok==false for a disconnected target.
func TestPathfind_Unreachable(t *testing.T) {
	g := core.NewGraph()
	newNode(g, "A")
	newNode(g, "B")
	_, ok := g.Pathfind("A", "B", anyWeight, false)
	require.False(t, ok)
}

// TestPathfind_Monotone covers property P8: widening the weight function
// pointwise can only raise or preserve the shortest-path cost.
func TestPathfind_Monotone(t *testing.T) {
	g := buildSquare(t)
	narrow := func(e *core.Edge) (core.Real, bool) { return e.Length, true }
	wide := func(e *core.Edge) (core.Real, bool) { return e.Length.Add(core.MustReal(10)), true }

	pNarrow, okN := g.Pathfind("A", "C", narrow, false)
	pWide, okW := g.Pathfind("A", "C", wide, false)
	require.True(t, okN)
	require.True(t, okW)

	costNarrow := core.SumReals(pathWeights(pNarrow, narrow))
	costWide := core.SumReals(pathWeights(pWide, wide))
	require.True(t, costNarrow.LessOrEqual(costWide))
}

func pathWeights(p core.Path, w func(*core.Edge) (core.Real, bool)) []core.Real {
	out := make([]core.Real, 0, len(p))
	for _, e := range p {
		c, _ := w(e)
		out = append(out, c)
	}

	return out
}

// TestPathfind_RespectsDirectedness verifies a directed edge cannot be
// traversed backwards under direspect==true.
func TestPathfind_RespectsDirectedness(t *testing.T) {
	g := core.NewGraph()
	newNode(g, "A")
	newNode(g, "B")
	mustAdd(t, g, &core.Edge{P1: "A", P2: "B", Directed: true, Length: core.MustReal(1)})
	_, ok := g.Pathfind("B", "A", anyWeight, true)
	require.False(t, ok)
	_, ok = g.Pathfind("A", "B", anyWeight, true)
	require.True(t, ok)
}

// TestPathfindRegions_EmptySets verifies the spec's "returns absent when
// either set is empty" rule.
func TestPathfindRegions_EmptySets(t *testing.T) {
	g := buildSquare(t)
	_, _, _, ok := g.PathfindRegions(map[core.NodeId]struct{}{}, map[core.NodeId]struct{}{"A": {}}, anyWeight, false)
	require.False(t, ok)
}

// TestPathfindRegions_MultiSource verifies it finds the nearest of several
// sources to a target region.
func TestPathfindRegions_MultiSource(t *testing.T) {
	g := buildSquare(t)
	aSet := map[core.NodeId]struct{}{"B": {}, "D": {}}
	bSet := map[core.NodeId]struct{}{"C": {}}
	src, dst, p, ok := g.PathfindRegions(aSet, bSet, anyWeight, false)
	require.True(t, ok)
	require.Contains(t, []core.NodeId{"B", "D"}, src)
	require.Equal(t, core.NodeId("C"), dst)
	require.Len(t, p, 1)
}

// TestCycleOn_Triangle is scenario S1's graph shape: the only cycle through
// A has length 3.
func TestCycleOn_Triangle(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeId{"A", "B", "C"} {
		newNode(g, id)
	}
	mustAdd(t, g, undirected("A", "B", 1))
	mustAdd(t, g, undirected("B", "C", 1))
	mustAdd(t, g, undirected("C", "A", 1))

	cyc, ok := g.CycleOn("A", anyWeight, false)
	require.True(t, ok)
	require.Len(t, cyc, 3)
	require.InDelta(t, 3.0, core.SumReals(pathWeights(cyc, anyWeight)).F(), 1e-9)
}

// TestCycleOn_NoCycle verifies ok==false on an acyclic graph.
func TestCycleOn_NoCycle(t *testing.T) {
	g := core.NewGraph()
	newNode(g, "A")
	newNode(g, "B")
	mustAdd(t, g, undirected("A", "B", 1))
	_, ok := g.CycleOn("A", anyWeight, false)
	require.False(t, ok)
}

// TestCycleOn_ExcludesForbiddenEdges verifies a forbidding weight function
// can be used to find "the next" cycle, skipping already-used edges.
func TestCycleOn_ExcludesForbiddenEdges(t *testing.T) {
	g := buildSquare(t)
	diag := g.EdgesBetween("A", "C")[0]
	forbidDiag := func(e *core.Edge) (core.Real, bool) {
		if e == diag {
			return 0, false
		}

		return e.Length, true
	}
	cyc, ok := g.CycleOn("A", forbidDiag, false)
	require.True(t, ok)
	for _, e := range cyc {
		require.NotSame(t, diag, e)
	}
	require.Len(t, cyc, 4) // the square perimeter
}
