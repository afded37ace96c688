package anneal

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/WFBFA/Flight-Paths/cluster"
	"github.com/WFBFA/Flight-Paths/core"
	"github.com/WFBFA/Flight-Paths/rpp"
)

// ErrPWRPUnreachable wraps a PWRP solve failure during an iteration. This
// is fatal to the run (spec.md §4.5, §9 Open Question 4): a future
// driver could reallocate the unreachable residual instead, but that is
// out of scope here.
var ErrPWRPUnreachable = errors.New("anneal: PWRP could not reach every edge allocated to a vehicle")

// Solution is one scored K-vehicle tour partition.
type Solution struct {
	Tours     []core.Path
	Costs     []core.Real
	CostTotal core.Real
	CostMax   core.Real
	Value     core.Real
}

// Driver runs the annealing loop described in spec.md §4.7 over a fixed
// graph, vehicle start set, and snowy-edge set.
type Driver struct {
	g         *core.Graph
	starts    []core.NodeId
	snowy     map[*core.Edge]struct{}
	params    Parameters
	direspect bool
	logger    *log.Logger
	rng       *rand.Rand
	alloc     []map[*core.Edge]struct{}
}

// NewDriver builds a Driver with an initial nearest-centroid allocation
// of snowy (cluster.Allocate), one entry per vehicle in starts/vehicleCoords.
func NewDriver(g *core.Graph, starts []core.NodeId, vehicleCoords []cluster.Coords, snowy []*core.Edge, params Parameters, direspect bool, logger *log.Logger) *Driver {
	snowySet := make(map[*core.Edge]struct{}, len(snowy))
	for _, e := range snowy {
		snowySet[e] = struct{}{}
	}

	coordOf := func(n core.NodeId) (cluster.Coords, bool) {
		node, ok := g.GetNode(n)
		if !ok {
			return cluster.Coords{}, false
		}

		return cluster.Coords{Lon: node.Lon, Lat: node.Lat}, true
	}

	return &Driver{
		g:         g,
		starts:    starts,
		snowy:     snowySet,
		params:    params,
		direspect: direspect,
		logger:    logger,
		rng:       rngFromSeed(params.Seed),
		alloc:     cluster.Allocate(vehicleCoords, snowy, coordOf),
	}
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

func baseWeight(e *core.Edge) (core.Real, bool) { return e.Length, true }

// Run executes Parameters.MainIterations rounds of the annealing loop
// and returns the best solution found.
func (d *Driver) Run() (*Solution, error) {
	vs := len(d.starts)
	order := make([]int, vs)
	for i := range order {
		order[i] = i
	}

	var best Solution
	valueBest := core.Inf
	costMaxBest := core.Inf
	var costsBest []core.Real
	tourLens := make([]int, vs)

	temperature := d.params.StartingTemperature
	var ii uint64

	for mi := uint64(0); mi < d.params.MainIterations; mi++ {
		d.logf("anneal: iteration %d current best %.5f", mi, valueBest.F())

		d.applyRealloc(costsBest)
		reorder(order, d.params.Reorder, d.rng, tourLens)
		d.logf("anneal: order %v", order)

		dun := make(map[*core.Edge]struct{})
		solNext := make([]core.Path, vs)
		costsNext := make([]core.Real, vs)
		costNextAll := core.Zero
		costNextMax := core.Zero

		for _, i := range order {
			required := allocRemaining(d.alloc[i], dun)
			sol, err := rpp.Solve(d.g, d.starts[i], required, baseWeight, d.direspect)
			if err != nil {
				var unreachable *rpp.UnreachableError
				if errors.As(err, &unreachable) {
					return nil, fmt.Errorf("%w: %w", ErrPWRPUnreachable, err)
				}

				return nil, err
			}

			cost := d.costWithDun(sol, i, dun)
			if d.params.Clearing == ClearingAll {
				for _, e := range sol {
					dun[e] = struct{}{}
				}
			}
			costsNext[i] = cost
			costNextAll = costNextAll.Add(cost)
			if costNextMax.Less(cost) {
				costNextMax = cost
			}
			solNext[i] = sol
		}

		valueNext := core.MustReal(d.params.WeightTotal*costNextAll.F() + d.params.WeightMax*costNextMax.F())
		d.logf("anneal: new value %.5f", valueNext.F())

		solUsed := solNext
		if valueNext.Less(valueBest) || (valueNext.F() == valueBest.F() && costNextMax.Less(costMaxBest)) {
			d.logf("anneal: solution accepted")
			best = Solution{Tours: solNext, Costs: costsNext, CostTotal: costNextAll, CostMax: costNextMax, Value: valueNext}
			valueBest = valueNext
			costMaxBest = costNextMax
			costsBest = costsNext
			for i, p := range solNext {
				tourLens[i] = len(p)
			}
			if d.params.Clearing == ClearingAll {
				d.reconcileAlloc(order, solNext)
			}
			solUsed = solNext
		}

		if d.params.Recycle == RecycleExpensiveToCheap {
			solImprov := d.cycleExchange(solUsed, order, costsNext)

			costsImprov := make([]core.Real, vs)
			costImprovAll := core.Zero
			costImprovMax := core.Zero
			for i, p := range solImprov {
				c := d.costAllocOnly(p, i)
				costsImprov[i] = c
				costImprovAll = costImprovAll.Add(c)
				if costImprovMax.Less(c) {
					costImprovMax = c
				}
			}
			valueImprov := core.MustReal(d.params.WeightTotal*costImprovAll.F() + d.params.WeightMax*costImprovMax.F())
			d.logf("anneal: recycled value %.5f", valueImprov.F())

			accept := valueImprov.Less(valueBest) ||
				(valueImprov.F() <= valueBest.F() && costImprovMax.Less(costMaxBest)) ||
				(valueImprov.Less(valueNext) && d.rng.Float64() < math.Exp((valueImprov.F()-valueNext.F())/temperature))

			if accept {
				d.logf("anneal: recycled improvements accepted")
				best = Solution{Tours: solImprov, Costs: costsImprov, CostTotal: costImprovAll, CostMax: costImprovMax, Value: valueImprov}
				valueBest = valueImprov
				costMaxBest = costImprovMax
				costsBest = costsImprov
				for i, p := range solImprov {
					tourLens[i] = len(p)
				}
				d.reconcileAlloc(order, solImprov)
			}
		}

		ii++
		if ii >= d.params.FtIterations {
			ii = 0
			temperature *= d.params.CoolingFactor
			d.logf("anneal: t=%.2f", temperature)
		}

		allocSum := 0
		for _, a := range d.alloc {
			allocSum += len(a)
		}
		d.logf("anneal: iteration %d summary value_best=%.6f alloc_sum=%d", mi, valueBest.F(), allocSum)
	}

	return &best, nil
}

// allocRemaining returns the edges of set not yet in dun.
func allocRemaining(set map[*core.Edge]struct{}, dun map[*core.Edge]struct{}) []*core.Edge {
	out := make([]*core.Edge, 0, len(set))
	for e := range set {
		if _, done := dun[e]; done {
			continue
		}
		out = append(out, e)
	}

	return out
}

// costWithDun computes a vehicle's tour cost under the Clearing-aware
// slowdown rule (spec.md §4.7 step 3).
func (d *Driver) costWithDun(sol core.Path, i int, dun map[*core.Edge]struct{}) core.Real {
	total := core.Zero
	for _, e := range sol {
		mult := 1.0
		if _, snowy := d.snowy[e]; snowy {
			switch d.params.Clearing {
			case ClearingAll:
				if _, done := dun[e]; !done {
					mult = d.params.Slowdown
				}
			case ClearingOnlyAllocated:
				if _, ok := d.alloc[i][e]; ok {
					mult = d.params.Slowdown
				}
			}
		}
		total = total.Add(core.MustReal(e.Length.F() * mult))
	}

	return total
}

// costAllocOnly computes a vehicle's tour cost using only allocation
// membership for the slowdown rule, ignoring Clearing — this matches the
// recycle pass's recompute in the original driver, which always
// evaluated cycle-exchange candidates this way regardless of the
// Clearing setting used for the main per-iteration cost.
func (d *Driver) costAllocOnly(sol core.Path, i int) core.Real {
	total := core.Zero
	for _, e := range sol {
		mult := 1.0
		if _, snowy := d.snowy[e]; snowy {
			if _, ok := d.alloc[i][e]; ok {
				mult = d.params.Slowdown
			}
		}
		total = total.Add(core.MustReal(e.Length.F() * mult))
	}

	return total
}

// reconcileAlloc assigns each snowy edge traversed this round to the
// first vehicle (in order) whose solution traverses it, stripping it
// from every other vehicle's allocation.
func (d *Driver) reconcileAlloc(order []int, sol []core.Path) {
	claimed := make(map[*core.Edge]struct{})
	for _, i := range order {
		for _, e := range sol[i] {
			if _, isSnowy := d.snowy[e]; !isSnowy {
				continue
			}
			if _, already := claimed[e]; already {
				continue
			}
			claimed[e] = struct{}{}
			for a := range d.alloc {
				if a != i {
					delete(d.alloc[a], e)
				}
			}
			d.alloc[i][e] = struct{}{}
		}
	}
}

// reorder permutes order in place per mode (spec.md §4.7 step 1).
func reorder(order []int, mode Reorder, rng *rand.Rand, tourLens []int) {
	vs := len(order)
	if vs < 2 {
		return
	}
	switch mode {
	case ReorderNo:
	case ReorderSwap2Random:
		i, j := rng.Intn(vs), rng.Intn(vs)
		order[i], order[j] = order[j], order[i]
	case ReorderSwap2MostLeast:
		mini, maxi := 0, 0
		for k := 1; k < vs; k++ {
			if tourLens[order[k]] < tourLens[order[mini]] {
				mini = k
			}
			if tourLens[order[k]] > tourLens[order[maxi]] {
				maxi = k
			}
		}
		order[mini], order[maxi] = order[maxi], order[mini]
	case ReorderRandomReorder:
		rng.Shuffle(vs, func(a, b int) { order[a], order[b] = order[b], order[a] })
	}
}
