// Package ring1d builds the reference topology exercised by the kernel
// end to end: a 1-D ring of N network nodes, each an Arrive/Depart vertex
// pair sharing a per-node queue-length State Variable.
//
// Grounded on Ring_1D.cpp/.h (original_source): vertex index convention
// (pos*2 = Arrive, pos*2+1 = Depart), edge set (Arrive_i -> Depart_i at
// min service time; Depart_i -> Arrive_{i+1}/Arrive_{i-1} at min transit
// time, wrapping), queue SV bounds (init = -numServers, min = init-1, max
// = math.MaxInt32), and the bootstrap event schedule (one intra-arrival
// event per node, drawn from a single shared Triangular generator).
package ring1d

import (
	"fmt"
	"math"

	"github.com/ejensODU/PADS25-DDA-artifacts/distributions"
	"github.com/ejensODU/PADS25-DDA-artifacts/eventset"
	"github.com/ejensODU/PADS25-DDA-artifacts/svreg"
	"github.com/ejensODU/PADS25-DDA-artifacts/vgraph"
)

// DelayParams is one (min, mode, max) Triangular-distribution parameter
// triple, as read from a distribution-parameter file (see
// distributions.ParseParamsFile).
type DelayParams struct {
	Min, Mode, Max float64
}

// Config describes one ring model instance.
type Config struct {
	RingSize              int
	NumServersPerNode     int
	MaxIntraArrivalEvents int
	DistSeed              int64

	IntraArrival DelayParams
	Service      DelayParams
	Transit      DelayParams
}

// Model is a fully constructed ring: the vertex graph ready for itl.Build,
// the SV registry backing it, and the bootstrap event set.
type Model struct {
	Graph       *vgraph.Graph
	Registry    *svreg.Registry
	InitEvents  []*eventset.Event
	QueueSVs    []int
	Arrives     []*Arrive
	Departs     []*Depart
	FinishedLog *FinishedLog
}

// arriveIndex/departIndex mirror Ring_1D::GetVertexIndex: vertex index
// pos*2 is the node's Arrive vertex, pos*2+1 its Depart vertex.
func arriveIndex(pos int) int { return pos * 2 }
func departIndex(pos int) int { return pos*2 + 1 }

func wrap(pos, ringSize int) int {
	return ((pos % ringSize) + ringSize) % ringSize
}

// Build constructs a ring model of cfg.RingSize nodes.
func Build(cfg Config) (*Model, error) {
	if cfg.RingSize < 2 {
		return nil, fmt.Errorf("ring1d: Build: RingSize must be >= 2, got %d", cfg.RingSize)
	}

	reg := svreg.NewRegistry()
	queueSVs := make([]int, cfg.RingSize)
	initQueueVal := int64(-cfg.NumServersPerNode)
	for i := 0; i < cfg.RingSize; i++ {
		idx, err := reg.Register(fmt.Sprintf("packet_queue_%d", i), initQueueVal, initQueueVal-1, math.MaxInt32)
		if err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		queueSVs[i] = idx
	}

	g := vgraph.NewGraph(reg.NumSVs())
	arrives := make([]*Arrive, cfg.RingSize)
	departs := make([]*Depart, cfg.RingSize)
	finished := &FinishedLog{}

	for pos := 0; pos < cfg.RingSize; pos++ {
		a := newArrive(g, reg, pos, cfg, queueSVs[pos], finished)
		if err := g.AddVertex(a); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		arrives[pos] = a

		d := newDepart(g, reg, pos, cfg, queueSVs[pos])
		d.queue = a.queue
		if err := g.AddVertex(d); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		departs[pos] = d
	}

	for pos := 0; pos < cfg.RingSize; pos++ {
		arrives[pos].depart = departs[pos]
		cwPos := wrap(pos+1, cfg.RingSize)
		ccwPos := wrap(pos-1, cfg.RingSize)
		departs[pos].clockwiseNeighbor = arrives[cwPos]
		departs[pos].counterNeighbor = arrives[ccwPos]

		if err := g.AddEdge(arriveIndex(pos), departIndex(pos), cfg.Service.Min); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		if err := g.AddEdge(departIndex(pos), arriveIndex(cwPos), cfg.Transit.Min); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		if err := g.AddEdge(departIndex(pos), arriveIndex(ccwPos), cfg.Transit.Min); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
		// Self-loop for the Arrive vertex's own next intra-arrival event;
		// excluded from the shortest-path step (see package itl) but
		// present so the edge set documents every scheduling path Run uses.
		if err := g.AddEdge(arriveIndex(pos), arriveIndex(pos), cfg.IntraArrival.Min); err != nil {
			return nil, fmt.Errorf("ring1d: Build: %w", err)
		}
	}

	initDelay := distributions.NewTriangular(cfg.IntraArrival.Min, cfg.IntraArrival.Mode, cfg.IntraArrival.Max, cfg.DistSeed)
	initEvents := make([]*eventset.Event, cfg.RingSize)
	for pos := 0; pos < cfg.RingSize; pos++ {
		initEvents[pos] = eventset.NewEvent(arriveIndex(pos), arrives[pos].Name(), initDelay.Next(), nil)
	}

	return &Model{
		Graph:       g,
		Registry:    reg,
		InitEvents:  initEvents,
		QueueSVs:    queueSVs,
		Arrives:     arrives,
		Departs:     departs,
		FinishedLog: finished,
	}, nil
}

// FinishedLog collects packets that have reached their destination, for
// post-run reporting (mean network time etc). Append-only; safe for the
// kernel's single-goroutine model without locking.
type FinishedLog struct {
	packets []finishedRecord
}

type finishedRecord struct {
	genTime, exitTime float64
	hops              int
}

func (f *FinishedLog) record(genTime, exitTime float64, hops int) {
	f.packets = append(f.packets, finishedRecord{genTime: genTime, exitTime: exitTime, hops: hops})
}

// Count returns how many packets have reached their destination so far.
func (f *FinishedLog) Count() int { return len(f.packets) }

// MeanNetworkTime returns the mean exitTime-genTime across all finished
// packets, or 0 if none have finished yet.
func (f *FinishedLog) MeanNetworkTime() float64 {
	if len(f.packets) == 0 {
		return 0
	}
	var sum float64
	for _, p := range f.packets {
		sum += p.exitTime - p.genTime
	}
	return sum / float64(len(f.packets))
}
