// Package eventset implements the pending-event set and independence
// oracle (C3): an ordered multiset of events keyed lexicographically on
// (time, vertex index), plus the ITL-based predicate that certifies an
// event independent of every strictly-earlier pending event.
package eventset

import (
	"container/list"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

// Status is the lifecycle state of an Event. Transitions are forward-only:
// Idle -> Ready -> Executed. The three-state enum is kept even though the
// kernel is single-threaded (see package executor) because a parallel
// executor variant, should one ever be built, would need the same states
// to be atomic rather than redesigned.
type Status int

const (
	Idle Status = iota
	Ready
	Executed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Ready:
		return "Ready"
	case Executed:
		return "Executed"
	default:
		return "Unknown"
	}
}

// ErrBackwardTransition indicates an attempt to move a Status backward
// (e.g. Executed -> Ready) or to re-enter the same state via SetStatus.
var ErrBackwardTransition = errors.New("eventset: backward status transition")

// Entity is an optional opaque payload threaded through successive events
// (e.g. a packet). The kernel never inspects it; only vertex Run bodies do.
type Entity interface {
	ID() uint64
	GenTime() float64
	ExitTime() float64
	SetExitTime(t float64)
}

var entityCounter uint64

// EntityBase is an embeddable Entity implementation backed by a
// process-wide atomic counter, mirroring the source model's Entity id
// generator.
type EntityBase struct {
	id       uint64
	genTime  float64
	exitTime float64
}

// NewEntityBase allocates the next process-wide unique id and records the
// generation time.
func NewEntityBase(genTime float64) EntityBase {
	return EntityBase{id: atomic.AddUint64(&entityCounter, 1), genTime: genTime, exitTime: math.Inf(1)}
}

func (e *EntityBase) ID() uint64          { return e.id }
func (e *EntityBase) GenTime() float64    { return e.genTime }
func (e *EntityBase) ExitTime() float64   { return e.exitTime }
func (e *EntityBase) SetExitTime(t float64) { e.exitTime = t }

// Event is a single (vertex, time, entity, status) tuple. The successor
// events a vertex's Run returns are queued in newEvents; those are only
// merged into a Set after the firing event is marked Executed and folded
// in by UpdateEventSet.
type Event struct {
	vertexIndex int
	vertexName  string
	time        float64
	entity      Entity
	status      Status
	newEvents   *list.List // of *Event
}

// NewEvent constructs an Idle event at vertex vertexIndex/vertexName and
// timestamp time, optionally carrying entity (may be nil).
func NewEvent(vertexIndex int, vertexName string, time float64, entity Entity) *Event {
	return &Event{
		vertexIndex: vertexIndex,
		vertexName:  vertexName,
		time:        time,
		entity:      entity,
		status:      Idle,
		newEvents:   list.New(),
	}
}

func (e *Event) VertexIndex() int   { return e.vertexIndex }
func (e *Event) VertexName() string { return e.vertexName }
func (e *Event) Time() float64      { return e.time }
func (e *Event) Entity() Entity     { return e.entity }
func (e *Event) Status() Status     { return e.status }

// AppendNewEvent queues a successor event to be merged into the owning Set
// once this event is folded in by UpdateEventSet. The executor calls it
// with the events a vertex's Run returned; that Run body is responsible
// for the time >= e.time invariant, which is unchecked here, matching the
// source contract.
func (e *Event) AppendNewEvent(succ *Event) {
	e.newEvents.PushBack(succ)
}

// SetStatus advances the event's status. Only forward transitions
// (Idle->Ready, Ready->Executed, Idle->Executed) are permitted.
func (e *Event) SetStatus(s Status) error {
	if s <= e.status {
		return fmt.Errorf("eventset: Event(vertex=%s, t=%g): %s -> %s: %w", e.vertexName, e.time, e.status, s, ErrBackwardTransition)
	}
	e.status = s
	return nil
}

// Less implements the (time, vertexIndex) lexicographic comparator used to
// order the pending set.
func Less(a, b *Event) bool {
	if a.time != b.time {
		return a.time < b.time
	}
	return a.vertexIndex < b.vertexIndex
}

// IndependenceTable is the minimal surface a Set needs from the ITL
// builder: the independence bound for an (earlier, later) vertex pair.
// Package itl's Table satisfies this.
type IndependenceTable interface {
	At(earlierVertex, laterVertex int) float64
}

// readyWindow bounds how many Idle candidates GetReadyEvents examines per
// call, keeping the scan cache-friendly.
const readyWindow = 32

// Set is the ordered pending multiset E. It is backed by a sorted slice
// with binary-search insertion rather than a balanced tree: every C3
// operation (GetReadyEvents, GetReadyEventsSerial, UpdateEventSet) performs
// a full ordered walk anyway, so a tree's O(log n) insert buys nothing a
// slice's O(n) insert/remove with O(log n) search doesn't already cover in
// practice at the event-set sizes this kernel targets. Not safe for
// concurrent use — the kernel is single-threaded by design (see §5).
type Set struct {
	events []*Event
}

// NewSet returns an empty pending set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of events currently pending.
func (s *Set) Len() int { return len(s.events) }

// At returns the i'th event in ascending (time, vertexIndex) order.
func (s *Set) At(i int) *Event { return s.events[i] }

// Insert adds e to the set, preserving sorted order. Complexity: O(n) due
// to the slice shift; O(log n) to locate the insertion point.
func (s *Set) Insert(e *Event) {
	i := sort.Search(len(s.events), func(i int) bool { return Less(e, s.events[i]) })
	s.events = append(s.events, nil)
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = e
}

// removeAt deletes the event at position i.
func (s *Set) removeAt(i int) {
	copy(s.events[i:], s.events[i+1:])
	s.events[len(s.events)-1] = nil
	s.events = s.events[:len(s.events)-1]
}

// independent reports whether candidate (at position idx in the ordered
// slice) is independent of every event at a strictly smaller position.
// Per the independence predicate, e_later is independent iff, for every
// strictly-earlier e_earlier, t_later - t_earlier < ITL[earlier][later]:
// not enough time has passed for anything reachable from e_earlier to
// have perturbed e_later's inputs yet. As soon as one earlier event's gap
// reaches or exceeds its limit, e_later is not independent.
func (s *Set) independent(idx int, tbl IndependenceTable) bool {
	later := s.events[idx]
	for j := 0; j < idx; j++ {
		earlier := s.events[j]
		limit := tbl.At(earlier.vertexIndex, later.vertexIndex)
		if later.time-earlier.time >= limit {
			return false
		}
	}
	return true
}

// GetReadyEvents scans E in order, skipping non-Idle events, and tests
// each Idle candidate for independence against the strictly-earlier
// prefix. Independent candidates are promoted Idle->Ready and returned.
// Scanning aborts after readyWindow Idle candidates have been examined.
func (s *Set) GetReadyEvents(tbl IndependenceTable) []*Event {
	var ready []*Event
	examined := 0
	for i := 0; i < len(s.events) && examined < readyWindow; i++ {
		e := s.events[i]
		if e.status != Idle {
			continue
		}
		examined++
		if s.independent(i, tbl) {
			_ = e.SetStatus(Ready)
			ready = append(ready, e)
		}
	}
	return ready
}

// ReadyStats carries the diagnostic output of GetReadyEventsSerial: the
// count of ready events found, and the mean/stddev of the positions
// (within E) at which they were found.
type ReadyStats struct {
	Count  int
	Mean   float64
	StdDev float64
}

// GetReadyEventsSerial is the unbounded diagnostic variant of
// GetReadyEvents: it scans the entire set (no readyWindow cap) and also
// reports the positional statistics of where ready events were found.
func (s *Set) GetReadyEventsSerial(tbl IndependenceTable) ([]*Event, ReadyStats) {
	var ready []*Event
	var positions []float64
	for i := 0; i < len(s.events); i++ {
		e := s.events[i]
		if e.status != Idle {
			continue
		}
		if s.independent(i, tbl) {
			_ = e.SetStatus(Ready)
			ready = append(ready, e)
			positions = append(positions, float64(i))
		}
	}

	stats := ReadyStats{Count: len(positions)}
	if len(positions) == 0 {
		return ready, stats
	}
	var sum float64
	for _, p := range positions {
		sum += p
	}
	stats.Mean = sum / float64(len(positions))
	var variance float64
	for _, p := range positions {
		d := p - stats.Mean
		variance += d * d
	}
	variance /= float64(len(positions))
	stats.StdDev = math.Sqrt(variance)
	return ready, stats
}

// UpdateEventSet walks E in order and, for every Executed event, merges
// its queued newEvents into E (each inserted Idle), advances *simTime to
// the maximum of its current value and the folded event's time, and
// removes the folded event. It returns true iff E is non-empty and
// *simTime <= maxSimTime afterward — the simulation's termination signal
// (false means stop).
func (s *Set) UpdateEventSet(simTime *float64, maxSimTime float64) bool {
	i := 0
	for i < len(s.events) {
		e := s.events[i]
		if e.status != Executed {
			i++
			continue
		}
		if e.time > *simTime {
			*simTime = e.time
		}
		s.removeAt(i)

		for el := e.newEvents.Front(); el != nil; el = el.Next() {
			succ := el.Value.(*Event)
			s.Insert(succ)
		}
		// Do not advance i: removeAt shifted a new element into position i.
	}

	return len(s.events) > 0 && *simTime <= maxSimTime
}
