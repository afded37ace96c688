// Package snowmerge implements the snow-status merge utility (C8):
// collapsing a stream of per-segment snow observations, possibly several
// per segment, into one record per segment.
//
// Grounded on spec.md §4.8; the rule is: while every depth seen so far
// for a key is non-positive, retain the maximum (a positive observation
// beats a zero one); once both the running value and the next
// observation are positive, fold left with acc = (acc+depth)/2.
package snowmerge

import "github.com/WFBFA/Flight-Paths/core"

// Observation is one snow-depth reading for a road segment.
type Observation struct {
	P1, P2           core.NodeId
	Discriminator    core.NodeId
	HasDiscriminator bool
	Depth            float64
}

type key struct {
	p1, p2           core.NodeId
	discriminator    core.NodeId
	hasDiscriminator bool
}

func keyOf(o Observation) key {
	return key{p1: o.P1, p2: o.P2, discriminator: o.Discriminator, hasDiscriminator: o.HasDiscriminator}
}

// Merge folds obs into one Observation per (p1, p2, discriminator) key,
// preserving each key's first-seen insertion order (property P5).
func Merge(obs []Observation) []Observation {
	acc := make(map[key]float64)
	var order []key

	for _, o := range obs {
		k := keyOf(o)
		cur, seen := acc[k]
		if !seen {
			acc[k] = o.Depth
			order = append(order, k)

			continue
		}
		if cur > 0 && o.Depth > 0 {
			acc[k] = (cur + o.Depth) / 2
		} else {
			acc[k] = max(cur, o.Depth)
		}
	}

	out := make([]Observation, 0, len(order))
	for _, k := range order {
		out = append(out, Observation{
			P1: k.p1, P2: k.p2,
			Discriminator: k.discriminator, HasDiscriminator: k.hasDiscriminator,
			Depth: acc[k],
		})
	}

	return out
}
