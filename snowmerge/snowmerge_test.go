package snowmerge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WFBFA/Flight-Paths/core"
	"github.com/WFBFA/Flight-Paths/snowmerge"
)

// TestMerge_S5 is scenario S5: {A,B,-,0},{A,B,-,0},{A,B,-,2},{A,B,-,4}
// folds to a single record with depth 3.
func TestMerge_S5(t *testing.T) {
	ab := func(d float64) snowmerge.Observation {
		return snowmerge.Observation{P1: "A", P2: "B", Depth: d}
	}
	out := snowmerge.Merge([]snowmerge.Observation{ab(0), ab(0), ab(2), ab(4)})
	require.Len(t, out, 1)
	require.InDelta(t, 3.0, out[0].Depth, 1e-9)
}

// TestMerge_AllNonPositive verifies the max-of-zeros branch: every depth
// non-positive retains the running maximum.
func TestMerge_AllNonPositive(t *testing.T) {
	ab := func(d float64) snowmerge.Observation {
		return snowmerge.Observation{P1: "A", P2: "B", Depth: d}
	}
	out := snowmerge.Merge([]snowmerge.Observation{ab(-1), ab(0), ab(-5)})
	require.Len(t, out, 1)
	require.Equal(t, 0.0, out[0].Depth)
}

// TestMerge_InsertionOrderStable covers property P5: distinct keys appear
// in first-seen order regardless of later interleaving.
func TestMerge_InsertionOrderStable(t *testing.T) {
	in := []snowmerge.Observation{
		{P1: "B", P2: "C", Depth: 1},
		{P1: "A", P2: "B", Depth: 1},
		{P1: "B", P2: "C", Depth: 2},
	}
	out := snowmerge.Merge(in)
	require.Len(t, out, 2)
	require.Equal(t, core.NodeId("B"), out[0].P1)
	require.Equal(t, core.NodeId("C"), out[0].P2)
	require.Equal(t, core.NodeId("A"), out[1].P1)
}

// TestMerge_DiscriminatorDistinguishesKeys verifies two parallel edges with
// different discriminators are tracked as separate keys.
func TestMerge_DiscriminatorDistinguishesKeys(t *testing.T) {
	in := []snowmerge.Observation{
		{P1: "A", P2: "B", Discriminator: "1", HasDiscriminator: true, Depth: 5},
		{P1: "A", P2: "B", Discriminator: "2", HasDiscriminator: true, Depth: 9},
	}
	out := snowmerge.Merge(in)
	require.Len(t, out, 2)
}
