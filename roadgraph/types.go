// Package roadgraph is the glue layer (C9) between an external JSON/HTTP
// collaborator and the CORE planning packages: the wire-shaped road
// network, nearest-node snapping for imprecise vehicle coordinates, and
// the path-to-wire conversion the planner's output is handed back as.
//
// Grounded on original_source/src/data.rs (RoadSegment, Node, RoadGraph,
// Location, PathSegment) and original_source/src/brr.rs's
// construct_flight_paths (the "Failed to locate positions to the road
// graph" failure mode).
package roadgraph

import "github.com/WFBFA/Flight-Paths/core"

// Node is one road-network vertex as carried over the wire.
type Node struct {
	ID  core.NodeId `json:"id"`
	Lon float64     `json:"lon"`
	Lat float64     `json:"lat"`
}

// RoadSegment is one road-network edge as carried over the wire. Sidewalk
// flags are not consumed by any CORE package; they are carried through
// unexamined so a caller can round-trip them.
type RoadSegment struct {
	P1               core.NodeId `json:"p1"`
	P2               core.NodeId `json:"p2"`
	Discriminator    core.NodeId `json:"discriminator,omitempty"`
	HasDiscriminator bool        `json:"-"`
	Directed         bool        `json:"directed"`
	Distance         float64     `json:"distance"`
	SidewalkP1       bool        `json:"sidewalk_p1"`
	SidewalkP2       bool        `json:"sidewalk_p2"`
}

// RoadGraph is the wire-shaped road network: a flat node list and a flat
// segment list, as handed to this module by an external collaborator.
type RoadGraph struct {
	Nodes []Node        `json:"nodes"`
	Roads []RoadSegment `json:"roads"`
}

// Location identifies a vehicle's position either as raw coordinates (to
// be snapped to the nearest road-graph node) or as an already-known node
// id, mirroring the original program's Location::Coordinates/Location::Node
// sum type.
type Location struct {
	HasCoords bool        `json:"-"`
	Lon       float64     `json:"lon,omitempty"`
	Lat       float64     `json:"lat,omitempty"`
	Node      core.NodeId `json:"node,omitempty"`
}

// PathSegment is one step of a planner path rendered back to wire shape:
// the node visited, and the discriminator (if any) of the edge that was
// used to reach it.
type PathSegment struct {
	Node             core.NodeId `json:"node"`
	Discriminator    core.NodeId `json:"discriminator,omitempty"`
	HasDiscriminator bool        `json:"-"`
}
