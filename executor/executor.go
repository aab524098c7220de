// Package executor implements the serial driving loop (C4): strict
// in-order execution, or one of two out-of-order batch policies, built
// on top of package eventset's pending set and independence oracle.
//
// Grounded on OoO_EventSet::ExecuteSerial_IO/ExecuteSerial_OoO and
// OoO_SimExec.cpp (original_source) for the loop shape and the two OoO
// batch policies. Execution settings are a plain Config struct passed to
// New; the trace writer and reference trace are arguments to Run.
package executor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/ejensODU/PADS25-DDA-artifacts/eventset"
	"github.com/ejensODU/PADS25-DDA-artifacts/vgraph"
)

// ErrNoVertex wraps a vgraph lookup failure encountered while executing an
// event; it always wraps the underlying vgraph error.
var ErrNoVertex = errors.New("executor: event references unknown vertex")

// Config selects the execution policy.
//
//   - Mode == 0: strict in-order — pop the earliest pending event and
//     execute it, independence notwithstanding.
//   - Mode > 0: out-of-order, fixed batch size 2^Mode, taken from the
//     ready set in (time, vertex) order.
//   - Mode < 0: out-of-order, a -Mode*10 percent random sample of the
//     ready set, chosen via a seeded Fisher-Yates shuffle.
type Config struct {
	Mode       int
	Seed       int64
	MaxSimTime float64
}

// TraceRecord is one row of an execution-order trace: the sequence number
// the event was executed at, its simulation timestamp, and the firing
// vertex's name.
type TraceRecord struct {
	SequenceNum int
	Timestamp   float64
	VertexName  string
}

// Stats summarizes a completed run: how many events fired, and — only
// when a reference trace was supplied — how many of those events landed
// at the same (timestamp, vertex) pair as the reference run, plus the
// mean/stddev of the sequence-number displacement among all such matches.
type Stats struct {
	EventsExecuted int
	Matches        int
	MeanDiff       float64
	StdDevDiff     float64
}

// Executor drives g's vertices against the pending set, using tbl as the
// independence oracle for OoO modes.
type Executor struct {
	g   *vgraph.Graph
	set *eventset.Set
	tbl eventset.IndependenceTable
	cfg Config
}

// New returns an Executor bound to g, operating on set (which should
// already hold the model's initial events), using tbl as the
// independence oracle.
func New(g *vgraph.Graph, set *eventset.Set, tbl eventset.IndependenceTable, cfg Config) *Executor {
	return &Executor{g: g, set: set, tbl: tbl, cfg: cfg}
}

// Run drives the event set to completion (empty, or earliest pending time
// past Config.MaxSimTime), writing one TraceRecord row per executed event
// to trace. If refTrace is non-nil, each executed event is checked against
// it for a (timestamp, vertex) match, and Stats reports the aggregate.
func (ex *Executor) Run(trace io.Writer, refTrace []TraceRecord) (Stats, error) {
	w := csv.NewWriter(trace)
	if err := w.Write([]string{"event_sequence_num", "timestamp", "event_type"}); err != nil {
		return Stats{}, fmt.Errorf("executor: Run: %w", err)
	}

	refIndex := indexTraceRecords(refTrace)
	var stats Stats
	var diffs []int
	simTime := 0.0
	numExecuted := 0

	record := func(e *eventset.Event) error {
		seq := numExecuted
		numExecuted++
		if err := w.Write([]string{
			strconv.Itoa(seq),
			strconv.FormatFloat(e.Time(), 'g', -1, 64),
			e.VertexName(),
		}); err != nil {
			return fmt.Errorf("executor: Run: %w", err)
		}
		if refTrace != nil {
			// Counts every reference record sharing this (time, vertex) key,
			// not just one: a reference trace with duplicate (time, vertex)
			// pairs contributes a match per duplicate, by design.
			for _, match := range refIndex[traceKey{e.Time(), e.VertexName()}] {
				stats.Matches++
				diffs = append(diffs, absInt(seq-match))
			}
		}
		return nil
	}

	fire := func(e *eventset.Event) error {
		v, err := ex.g.Vertex(e.VertexIndex())
		if err != nil {
			return fmt.Errorf("executor: Run: %w: %w", err, ErrNoVertex)
		}
		newEvents, err := v.Run(e.Time(), e.Entity())
		if err != nil {
			return fmt.Errorf("executor: Run: vertex %q: %w", v.Name(), err)
		}
		for _, ne := range newEvents {
			e.AppendNewEvent(ne)
		}
		if err := e.SetStatus(eventset.Executed); err != nil {
			return fmt.Errorf("executor: Run: %w", err)
		}
		return record(e)
	}

	rng := rand.New(rand.NewSource(ex.cfg.Seed))

	for ex.set.Len() > 0 && ex.set.At(0).Time() <= ex.cfg.MaxSimTime {
		if ex.cfg.Mode == 0 {
			if err := fire(ex.set.At(0)); err != nil {
				return stats, err
			}
		} else {
			ready, _ := ex.set.GetReadyEventsSerial(ex.tbl)
			if len(ready) == 0 {
				break
			}
			batch := selectBatch(ready, ex.cfg.Mode, rng)
			for _, e := range batch {
				if err := fire(e); err != nil {
					return stats, err
				}
			}
		}
		ex.set.UpdateEventSet(&simTime, ex.cfg.MaxSimTime)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return stats, fmt.Errorf("executor: Run: %w", err)
	}

	stats.EventsExecuted = numExecuted
	if len(diffs) > 0 {
		stats.MeanDiff, stats.StdDevDiff = meanStdDev(diffs)
	}
	return stats, nil
}

// selectBatch picks which ready events to fire this round per Config.Mode:
// a fixed power-of-two prefix for Mode > 0, or a -Mode*10 percent random
// sample (seeded Fisher-Yates) for Mode < 0. Mode == 0 never reaches here.
func selectBatch(ready []*eventset.Event, mode int, rng *rand.Rand) []*eventset.Event {
	if mode > 0 {
		n := 1 << uint(mode)
		if n > len(ready) {
			n = len(ready)
		}
		return ready[:n]
	}

	percentage := float64(-mode) * 10.0
	n := int(math.Ceil(float64(len(ready)) * percentage / 100.0))
	if n > len(ready) {
		n = len(ready)
	}
	shuffled := append([]*eventset.Event(nil), ready...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}

type traceKey struct {
	timestamp  float64
	vertexName string
}

// indexTraceRecords groups reference records by (timestamp, vertex) so
// Run can look up all matches for an executed event in O(1) rather than
// rescanning the whole reference trace per event.
func indexTraceRecords(records []TraceRecord) map[traceKey][]int {
	idx := make(map[traceKey][]int, len(records))
	for _, r := range records {
		k := traceKey{r.Timestamp, r.VertexName}
		idx[k] = append(idx[k], r.SequenceNum)
	}
	return idx
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func meanStdDev(vals []int) (mean, stddev float64) {
	sum := 0.0
	for _, v := range vals {
		sum += float64(v)
	}
	mean = sum / float64(len(vals))
	var variance float64
	for _, v := range vals {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(vals))
	return mean, math.Sqrt(variance)
}

// ReadTraceCSV loads a reference execution-order trace previously written
// by Run (or a prior run's trace file), skipping the header row.
func ReadTraceCSV(path string) ([]TraceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("executor: ReadTraceCSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("executor: ReadTraceCSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]TraceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("executor: ReadTraceCSV(%s): malformed row %v", path, row)
		}
		seq, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("executor: ReadTraceCSV(%s): sequence number: %w", path, err)
		}
		ts, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("executor: ReadTraceCSV(%s): timestamp: %w", path, err)
		}
		records = append(records, TraceRecord{SequenceNum: seq, Timestamp: ts, VertexName: strings.TrimSpace(row[2])})
	}
	return records, nil
}
