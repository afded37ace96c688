// Package core implements the road-network graph substrate shared by the
// Eulerisation, cycle-cover, Rural-Postman, and annealing stages: a mixed
// (undirected-or-directed) multigraph with parallel-edge identity, Dijkstra
// and region-to-region Dijkstra, a shortest-cycle-on-a-vertex search, and
// the Eulerisation primitive's supporting degree arithmetic.
//
// This file declares NodeId, Node, Edge, and the sentinel errors; Graph is
// declared in graph.go.
//
// Errors:
//
//	ErrUnknownNode - AddEdge referenced an endpoint that is not a node of the graph.
//	ErrNaN         - see real.go; NaN is rejected when constructing a Real.
package core

import "errors"

// ErrUnknownNode indicates AddEdge was given an edge whose endpoint is not
// a node of the graph (spec invariant I1).
var ErrUnknownNode = errors.New("core: edge endpoint is not a node of the graph")

// NodeId is an opaque road-network vertex identifier. Equality and hashing
// are its only contract; it is comparable and usable as a Go map key.
type NodeId string

// Node is a road-network vertex. Coordinates are only consulted by
// cluster allocation and nearest-node snapping; pure flight-cover mode
// never reads them.
type Node struct {
	ID  NodeId
	Lon float64
	Lat float64
}

// Edge is a (possibly parallel, possibly directed, possibly self-looping)
// road segment. The tuple (P1, P2, Discriminator, Iidx) is the edge's
// identity for equality/hashing purposes (see Equal). (P1, P2,
// Discriminator) is its similarity class (see Similar); Iidx distinguishes
// duplicates created by Eulerisation from the original.
//
// Discriminator is optional; HasDiscriminator==false means "no discriminator
// was supplied", distinct from any particular NodeId value.
//
// Endpoint ordering in (P1, P2) is significant only when Directed; for
// undirected edges the unordered pair is canonical and callers must never
// construct two edges differing only by endpoint swap (spec.md §4.2).
type Edge struct {
	P1, P2           NodeId
	Discriminator    NodeId
	HasDiscriminator bool
	Directed         bool
	Length           Real
	Iidx             uint64
}

// IsSelfLoop reports whether the edge's endpoints coincide.
func (e *Edge) IsSelfLoop() bool {
	return e.P1 == e.P2
}

// Other returns the endpoint of e that is not n (or P1 if n is neither,
// which callers should not rely on — see spec.md's Edge.other contract).
func (e *Edge) Other(n NodeId) NodeId {
	if n == e.P1 {
		return e.P2
	}

	return e.P1
}

// Similar reports whether e and o belong to the same similarity class:
// same endpoints (unordered for undirected edges) and same discriminator.
func (e *Edge) Similar(o *Edge) bool {
	if e.HasDiscriminator != o.HasDiscriminator {
		return false
	}
	if e.HasDiscriminator && e.Discriminator != o.Discriminator {
		return false
	}
	if e.P1 == o.P1 && e.P2 == o.P2 {
		return true
	}
	if !e.Directed && !o.Directed && e.P1 == o.P2 && e.P2 == o.P1 {
		return true
	}

	return false
}

// DupedOf reports whether e and o are duplicates of each other: similar,
// but with distinct duplication indices.
func (e *Edge) DupedOf(o *Edge) bool {
	return e.Similar(o) && e.Iidx != o.Iidx
}

// Equal reports full identity equality: (P1, P2, Discriminator, Iidx), with
// endpoints compared in stored order (no implicit swap — see spec.md §4.2).
func (e *Edge) Equal(o *Edge) bool {
	if e == o {
		return true
	}
	if o == nil {
		return false
	}

	return e.P1 == o.P1 && e.P2 == o.P2 &&
		e.HasDiscriminator == o.HasDiscriminator &&
		(!e.HasDiscriminator || e.Discriminator == o.Discriminator) &&
		e.Iidx == o.Iidx
}

// Duplicate returns a fresh edge sharing every field with e except Iidx,
// which is incremented. It is the only sanctioned way to add a parallel
// copy of an existing edge (spec invariant I2: duplicates share Directed
// and Length).
func (e *Edge) Duplicate() *Edge {
	return &Edge{
		P1:               e.P1,
		P2:               e.P2,
		Discriminator:    e.Discriminator,
		HasDiscriminator: e.HasDiscriminator,
		Directed:         e.Directed,
		Length:           e.Length,
		Iidx:             e.Iidx + 1,
	}
}
