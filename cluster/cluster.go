// Package cluster implements vehicle-cluster allocation (C6): partition a
// set of required edges among K vehicles by nearest-centroid, breaking
// ties toward the less-loaded vehicle.
//
// Grounded on original_source/src/plow.rs::initial_allocation.
package cluster

import "github.com/WFBFA/Flight-Paths/core"

// Coords is a raw (longitude, latitude) pair; distance here is squared
// Euclidean on these raw values, not geodesic (spec.md's Non-goals
// explicitly exclude geodesic distance for clustering).
type Coords struct {
	Lon, Lat float64
}

func sqDist(a, b Coords) float64 {
	dLon := a.Lon - b.Lon
	dLat := a.Lat - b.Lat

	return dLon*dLon + dLat*dLat
}

// Allocate assigns each edge of required to the index of its nearest
// vehicle in vehicleCoords, returning one set per vehicle. coordOf
// resolves a node to its coordinates; if it reports ok==false for an
// edge's endpoint, that endpoint is treated as unreachable and the other
// endpoint's nearest vehicle decides the assignment alone.
func Allocate(vehicleCoords []Coords, required []*core.Edge, coordOf func(core.NodeId) (Coords, bool)) []map[*core.Edge]struct{} {
	allocations := make([]map[*core.Edge]struct{}, len(vehicleCoords))
	for i := range allocations {
		allocations[i] = make(map[*core.Edge]struct{})
	}
	if len(vehicleCoords) == 0 {
		return allocations
	}

	closest := func(n core.NodeId) (int, bool) {
		c, ok := coordOf(n)
		if !ok {
			return 0, false
		}
		best := 0
		bestDist := sqDist(c, vehicleCoords[0])
		for i := 1; i < len(vehicleCoords); i++ {
			d := sqDist(c, vehicleCoords[i])
			if d < bestDist {
				best = i
				bestDist = d
			}
		}

		return best, true
	}

	for _, e := range required {
		lv1, ok1 := closest(e.P1)
		lv2, ok2 := closest(e.P2)

		var lv int
		switch {
		case ok1 && ok2:
			if lv1 == lv2 || len(allocations[lv1]) <= len(allocations[lv2]) {
				lv = lv1
			} else {
				lv = lv2
			}
		case ok1:
			lv = lv1
		case ok2:
			lv = lv2
		default:
			continue // neither endpoint is locatable; drop the edge
		}
		allocations[lv][e] = struct{}{}
	}

	return allocations
}
