package roadgraph

import (
	"errors"

	"github.com/WFBFA/Flight-Paths/core"
)

// ErrUnlocatedVehicle indicates LocateAll could not snap every Location to
// a node. Message text preserved verbatim from the original program
// (construct_flight_paths in brr.rs) since external callers may match on
// it.
var ErrUnlocatedVehicle = errors.New("Failed to locate positions to the road graph")

func sqDist(lon1, lat1, lon2, lat2 float64) float64 {
	dlon := lon1 - lon2
	dlat := lat1 - lat2

	return dlon*dlon + dlat*dlat
}

// Locate snaps l to a node: a coordinate Location is matched to the
// nearest node of rg by squared Euclidean distance (an O(N) linear scan,
// per spec.md §1's "reference contract" — no spatial index); a
// node-valued Location is returned as-is, without checking it is a
// member of rg.Nodes, matching the original RoadGraph::locate.
func (rg RoadGraph) Locate(l Location) (core.NodeId, bool) {
	if !l.HasCoords {
		return l.Node, true
	}
	if len(rg.Nodes) == 0 {
		return "", false
	}

	best := rg.Nodes[0]
	bestDist := sqDist(l.Lon, l.Lat, best.Lon, best.Lat)
	for _, n := range rg.Nodes[1:] {
		d := sqDist(l.Lon, l.Lat, n.Lon, n.Lat)
		if d < bestDist {
			best, bestDist = n, d
		}
	}

	return best.ID, true
}

// LocateAll snaps every element of ls to a node, in order. It fails with
// ErrUnlocatedVehicle if any Location could not be located (an empty
// RoadGraph, or a node-valued Location — impossible as written, but kept
// for symmetry with the original's fallible API surface).
func (rg RoadGraph) LocateAll(ls []Location) ([]core.NodeId, error) {
	out := make([]core.NodeId, 0, len(ls))
	for _, l := range ls {
		n, ok := rg.Locate(l)
		if !ok {
			return nil, ErrUnlocatedVehicle
		}
		out = append(out, n)
	}

	return out, nil
}
