// Package entity provides the Packet payload threaded through events by
// the reference ring topology (package topology/ring1d).
//
// Grounded on Ring_1D_Packet.cpp/.h and Grid_VN2D_Packet.cpp
// (original_source), trimmed to the fields the reference topology's
// routing actually consults: origin/destination node, initial direction,
// and a hop count. The wrapped-distance "making progress" sanity check
// and the multi-topology destination-selection heuristics stay out, per
// the kernel's declared scope.
package entity

import "github.com/ejensODU/PADS25-DDA-artifacts/eventset"

// Packet is a network entity routed from OriginNode to DestNode. It
// implements eventset.Entity via an embedded EntityBase.
type Packet struct {
	eventset.EntityBase

	OriginNode int
	DestNode   int
	Clockwise  bool
	Hops       int

	visited []int
}

// NewPacket constructs a Packet generated at genTime, routed from origin
// to dest along the given initial direction.
func NewPacket(genTime float64, origin, dest int, clockwise bool) *Packet {
	return &Packet{
		EntityBase: eventset.NewEntityBase(genTime),
		OriginNode: origin,
		DestNode:   dest,
		Clockwise:  clockwise,
	}
}

// Visit records arrival at nodeIndex and increments the hop count.
func (p *Packet) Visit(nodeIndex int) {
	p.visited = append(p.visited, nodeIndex)
	p.Hops++
}

// VisitedNodes returns the sequence of node indices this packet has
// passed through, in arrival order.
func (p *Packet) VisitedNodes() []int {
	return p.visited
}

// AtDestination reports whether nodeIndex is this packet's destination.
func (p *Packet) AtDestination(nodeIndex int) bool {
	return nodeIndex == p.DestNode
}
