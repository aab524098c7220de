package ring1d

import (
	"container/list"
	"fmt"

	"github.com/ejensODU/PADS25-DDA-artifacts/distributions"
	"github.com/ejensODU/PADS25-DDA-artifacts/entity"
	"github.com/ejensODU/PADS25-DDA-artifacts/eventset"
	"github.com/ejensODU/PADS25-DDA-artifacts/svreg"
	"github.com/ejensODU/PADS25-DDA-artifacts/vgraph"
)

// Depart is a ring node's departure vertex: it frees the server, pulls
// the next queued packet (if any) back into service, and hands the
// current packet off to whichever ring neighbor lies in its stored
// travel direction.
//
// Grounded on Ring_1D_Depart.cpp/.h. The clockwise/counterclockwise
// neighbor pair is resolved once at topology-build time rather than via
// the original's runtime shouldRouteClockwise helper, since a packet's
// direction is decided once at generation (Arrive.pickDestination) and
// never recomputed mid-flight — Depart only needs to read it back.
type Depart struct {
	vgraph.VertexBase

	reg     *svreg.Registry
	queueSV int
	nodeID  int

	queue *list.List // shared with the node's Arrive vertex

	clockwiseNeighbor *Arrive
	counterNeighbor   *Arrive

	serviceDelay *distributions.Triangular
	transitDelay *distributions.Triangular
}

func newDepart(g *vgraph.Graph, reg *svreg.Registry, pos int, cfg Config, queueSV int) *Depart {
	seed := cfg.DistSeed + int64(pos)
	return &Depart{
		VertexBase:   vgraph.NewVertexBase(g, fmt.Sprintf("Depart_%d", pos)),
		reg:          reg,
		queueSV:      queueSV,
		nodeID:       pos,
		serviceDelay: distributions.NewTriangular(cfg.Service.Min, cfg.Service.Mode, cfg.Service.Max, seed),
		transitDelay: distributions.NewTriangular(cfg.Transit.Min, cfg.Transit.Mode, cfg.Transit.Max, seed),
	}
}

// IOSVs implements vgraph.Vertex: a Depart vertex reads and writes only
// its own node's queue-length SV.
func (d *Depart) IOSVs() (in, out []int) {
	return []int{d.queueSV}, []int{d.queueSV}
}

// Run implements vgraph.Vertex. It shares its FIFO queue with the node's
// Arrive vertex, which must be wired in before the first Run call.
func (d *Depart) Run(time float64, e eventset.Entity) ([]*eventset.Event, error) {
	pkt, ok := e.(*entity.Packet)
	if !ok {
		return nil, fmt.Errorf("ring1d: %s: unexpected entity type %T", d.Name(), e)
	}

	qv, err := d.reg.Get(d.queueSV)
	if err != nil {
		return nil, err
	}
	packetInQueue := qv > 0

	if err := d.reg.Dec(d.queueSV, 1); err != nil {
		return nil, err
	}

	var newEvents []*eventset.Event
	if packetInQueue {
		front := d.queue.Front()
		queuedPkt := front.Value.(*entity.Packet)
		d.queue.Remove(front)
		newEvents = append(newEvents, eventset.NewEvent(d.Index(), d.Name(), time+d.serviceDelay.Next(), queuedPkt))
	}

	next := d.counterNeighbor
	if pkt.Clockwise {
		next = d.clockwiseNeighbor
	}
	newEvents = append(newEvents, eventset.NewEvent(next.Index(), next.Name(), time+d.transitDelay.Next(), pkt))

	d.IncExecs()
	return newEvents, nil
}
