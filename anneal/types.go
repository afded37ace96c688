// Package anneal implements the simulated-annealing driver (C7): the
// outer search loop that repeatedly re-solves each vehicle's PWRP tour,
// scores the resulting partition, and accepts or rejects it, optionally
// trying a cycle-exchange improvement and cooling a temperature that
// governs the Metropolis acceptance criterion for that improvement.
//
// Grounded on original_source/src/plow.rs::PlowSolver::solve; RNG
// conventions follow the teacher's tsp package: deterministic seeding,
// with every random draw taken from one seeded *rand.Rand (see rng.go).
package anneal

// Reorder selects how vehicle evaluation order is permuted each
// iteration (spec.md §4.7 step 1).
type Reorder int

const (
	ReorderNo Reorder = iota
	ReorderSwap2Random
	ReorderSwap2MostLeast
	ReorderRandomReorder
)

// Recycle selects whether a cycle-exchange improvement pass runs after
// each iteration's solutions are scored.
type Recycle int

const (
	RecycleNo Recycle = iota
	RecycleExpensiveToCheap
)

// Clearing selects the cost model: whether the slowdown multiplier
// applies only to edges allocated to a vehicle, or to every edge a
// vehicle is first to traverse this iteration.
type Clearing int

const (
	ClearingOnlyAllocated Clearing = iota
	ClearingAll
)

// Realloc selects an allocation-table perturbation tried before each
// iteration's PWRP solves (spec.md §9 Open Question: implemented here
// rather than left a no-op; see DESIGN.md).
type Realloc int

const (
	ReallocNo Realloc = iota
	ReallocSwap2Random
	ReallocMostToLeast
)

// Parameters tunes the annealing driver (spec.md §4.7, §6).
type Parameters struct {
	MainIterations, FtIterations       uint64
	StartingTemperature, CoolingFactor float64
	WeightTotal, WeightMax             float64
	Slowdown                           float64
	Recycle                            Recycle
	Clearing                           Clearing
	Reorder                            Reorder
	Realloc                            Realloc
	// Seed is the deterministic PRNG seed; 0 selects the driver's fixed
	// default stream (see rngFromSeed), matching the teacher's
	// seed==0-means-default convention.
	Seed int64
}
