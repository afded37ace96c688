package anneal

import (
	"math/rand"

	"github.com/WFBFA/Flight-Paths/core"
)

// applyRealloc perturbs the driver's allocation table before an iteration's
// PWRP solves, per Parameters.Realloc. costsBest is the per-vehicle costs
// of the most recently accepted solution (nil before the first
// acceptance), used by ReallocMostToLeast to find the costliest vehicle.
func (d *Driver) applyRealloc(costsBest []core.Real) {
	vs := len(d.alloc)
	if vs < 2 {
		return
	}

	switch d.params.Realloc {
	case ReallocNo:
	case ReallocSwap2Random:
		i, j := d.rng.Intn(vs), d.rng.Intn(vs)
		if i == j {
			return
		}
		e, ok := pickEdge(d.alloc[i], d.rng)
		if !ok {
			return
		}
		delete(d.alloc[i], e)
		d.alloc[j][e] = struct{}{}
	case ReallocMostToLeast:
		if costsBest == nil {
			return
		}
		hi, lo := 0, 0
		for k := 1; k < vs; k++ {
			if costsBest[hi].Less(costsBest[k]) {
				hi = k
			}
			if costsBest[k].Less(costsBest[lo]) {
				lo = k
			}
		}
		if hi == lo {
			return
		}
		e, ok := pickEdge(d.alloc[hi], nil)
		if !ok {
			return
		}
		delete(d.alloc[hi], e)
		d.alloc[lo][e] = struct{}{}
	}
}

// pickEdge picks one edge out of set. With rng non-nil it picks uniformly
// at random; with rng nil it deterministically picks the shortest edge,
// so a reallocation mode with no randomness in its contract stays
// reproducible.
func pickEdge(set map[*core.Edge]struct{}, rng *rand.Rand) (*core.Edge, bool) {
	if len(set) == 0 {
		return nil, false
	}
	if rng == nil {
		var best *core.Edge
		for e := range set {
			if best == nil || e.Length.Less(best.Length) {
				best = e
			}
		}

		return best, true
	}

	edges := make([]*core.Edge, 0, len(set))
	for e := range set {
		edges = append(edges, e)
	}

	return edges[rng.Intn(len(edges))], true
}

// cycleExchange looks for a vehicle pair (costlier hi, cheaper lo) whose
// tours share a node, and relocates the sub-tour of hi between two visits
// of that node onto lo, splicing it in at lo's own visit of the same
// node. Grounded on original_source/src/plow.rs's cycle-exchange recycle
// step: whenever hi's path revisits a node ju also visited by lo, the
// edges between hi's two visits move to lo.
func (d *Driver) cycleExchange(sol []core.Path, order []int, costs []core.Real) []core.Path {
	vs := len(sol)
	improv := make([]core.Path, vs)
	for i, p := range sol {
		improv[i] = append(core.Path(nil), p...)
	}

	vycles := make([][]core.NodeId, vs)
	for i, p := range sol {
		visits := core.PathToNodes(p, d.starts[i])
		ids := make([]core.NodeId, len(visits))
		for k, v := range visits {
			ids[k] = v.Node
		}
		vycles[i] = ids
	}

	for i := 0; i < vs; i++ {
	nextPair:
		for j := i + 1; j < vs; j++ {
			if costs[order[i]].F() == costs[order[j]].F() {
				continue
			}
			hi, lo := order[i], order[j]
			if !costs[order[j]].Less(costs[order[i]]) {
				hi, lo = order[j], order[i]
			}

			for iu := 0; iu < len(vycles[hi]); iu++ {
				for ju := 0; ju < len(vycles[lo]); ju++ {
					if vycles[hi][iu] != vycles[lo][ju] {
						continue
					}
					for iv := iu + 1; iv < len(vycles[hi]); iv++ {
						if vycles[hi][iv] != vycles[hi][iu] {
							continue
						}

						mine := append(core.Path(nil), improv[hi][iu:iv]...)
						improv[hi] = append(append(core.Path(nil), improv[hi][:iu]...), improv[hi][iv:]...)
						spliced := append(append(core.Path(nil), improv[lo][:ju]...), mine...)
						improv[lo] = append(spliced, improv[lo][ju:]...)

						movedNodes := append([]core.NodeId(nil), vycles[hi][iu:iv]...)
						vycles[hi] = append(append([]core.NodeId(nil), vycles[hi][:iu]...), vycles[hi][iv:]...)
						splicedNodes := append(append([]core.NodeId(nil), vycles[lo][:ju]...), movedNodes...)
						vycles[lo] = append(splicedNodes, vycles[lo][ju:]...)

						continue nextPair
					}
				}
			}
		}
	}

	return improv
}
