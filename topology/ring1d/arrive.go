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

// Arrive is a ring node's arrival vertex: it receives both intra-arrival
// events (entity == nil, a new packet is generated here) and transit
// events (a packet handed off from a neighboring node's Depart after
// completing one hop), and enqueues into the node's server if busy.
//
// Grounded on Ring_1D_Arrive.cpp/.h, with the "high activity node" rate
// halving and the multi-threaded finished-packet spinlock dropped: the
// former is topology-tuning noise out of scope here, the latter a
// concurrency concern this single-threaded kernel has no use for.
type Arrive struct {
	vgraph.VertexBase

	reg     *svreg.Registry
	queueSV int
	nodeID  int
	ringCfg Config

	depart   *Depart
	queue    *list.List // of *entity.Packet, FIFO
	finished *FinishedLog

	destPicker        *distributions.Uniform
	intraArrivalDelay *distributions.Triangular
	serviceDelay      *distributions.Triangular

	numIntraArrivals int
}

func newArrive(g *vgraph.Graph, reg *svreg.Registry, pos int, cfg Config, queueSV int, finished *FinishedLog) *Arrive {
	seed := cfg.DistSeed + int64(pos)
	return &Arrive{
		VertexBase:        vgraph.NewVertexBase(g, fmt.Sprintf("Arrive_%d", pos)),
		reg:               reg,
		queueSV:           queueSV,
		nodeID:            pos,
		ringCfg:           cfg,
		queue:             list.New(),
		finished:          finished,
		destPicker:        distributions.NewUniform(0, float64(cfg.RingSize), seed),
		intraArrivalDelay: distributions.NewTriangular(cfg.IntraArrival.Min, cfg.IntraArrival.Mode, cfg.IntraArrival.Max, seed),
		serviceDelay:      distributions.NewTriangular(cfg.Service.Min, cfg.Service.Mode, cfg.Service.Max, seed),
	}
}

// IOSVs implements vgraph.Vertex: an Arrive vertex reads and writes only
// its own node's queue-length SV.
func (a *Arrive) IOSVs() (in, out []int) {
	return []int{a.queueSV}, []int{a.queueSV}
}

// pickDestination chooses a destination node other than this one, and
// the shorter-arc initial direction toward it.
func (a *Arrive) pickDestination() (dest int, clockwise bool) {
	dest = int(a.destPicker.Next())
	for dest == a.nodeID {
		dest = int(a.destPicker.Next())
	}
	ringSize := a.ringCfg.RingSize
	cwDist := wrap(dest-a.nodeID, ringSize)
	ccwDist := wrap(a.nodeID-dest, ringSize)
	return dest, cwDist <= ccwDist
}

// Run implements vgraph.Vertex.
func (a *Arrive) Run(time float64, e eventset.Entity) ([]*eventset.Event, error) {
	var pkt *entity.Packet
	intraArrival := e == nil
	if !intraArrival {
		p, ok := e.(*entity.Packet)
		if !ok {
			return nil, fmt.Errorf("ring1d: %s: unexpected entity type %T", a.Name(), e)
		}
		pkt = p
	}

	atDestination := !intraArrival && pkt.AtDestination(a.nodeID)

	qv, err := a.reg.Get(a.queueSV)
	if err != nil {
		return nil, err
	}
	serverAvailable := qv < 0

	if intraArrival {
		dest, clockwise := a.pickDestination()
		pkt = entity.NewPacket(time, a.nodeID, dest, clockwise)
	}
	pkt.Visit(a.nodeID)

	var newEvents []*eventset.Event
	if !atDestination {
		if err := a.reg.Inc(a.queueSV, 1); err != nil {
			return nil, err
		}
		if !serverAvailable {
			a.queue.PushBack(pkt)
		}
	} else {
		pkt.SetExitTime(time)
		a.finished.record(pkt.GenTime(), time, pkt.Hops)
	}

	if !atDestination && serverAvailable {
		newEvents = append(newEvents, eventset.NewEvent(a.depart.Index(), a.depart.Name(), time+a.serviceDelay.Next(), pkt))
	}

	if intraArrival {
		a.numIntraArrivals++
		if a.numIntraArrivals < a.ringCfg.MaxIntraArrivalEvents {
			newEvents = append(newEvents, eventset.NewEvent(a.Index(), a.Name(), time+a.intraArrivalDelay.Next(), nil))
		}
	}

	a.IncExecs()
	return newEvents, nil
}
