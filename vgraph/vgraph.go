// Package vgraph defines the vertex graph (C1): the static description of
// event-producing sites, their read/write footprints over state variables,
// and the weighted directed edges between them.
//
// Grounded on core.Graph (vertex/edge storage, constructor pattern,
// deterministic sorted internals), adapted from string-keyed vertex
// identity to the contiguous integer indices the ITL algorithm requires,
// and with the original sync.RWMutex pair dropped: the kernel is
// single-threaded by design (see package executor), so carrying the
// locks forward would suggest a concurrency guarantee this repository
// does not provide.
package vgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ejensODU/PADS25-DDA-artifacts/eventset"
)

// Sentinel errors for graph construction.
var (
	// ErrIndexMismatch indicates AddVertex was called with a vertex whose
	// Index() does not equal the next available slot.
	ErrIndexMismatch = errors.New("vgraph: vertex index does not match next available index")

	// ErrUnknownVertex indicates an edge or query referenced a vertex index
	// outside [0, NumVertices).
	ErrUnknownVertex = errors.New("vgraph: unknown vertex index")

	// ErrNegativeDelay indicates an edge was added with MinDelay < 0.
	ErrNegativeDelay = errors.New("vgraph: edge delay must be non-negative")
)

// Vertex is the capability set the kernel relies on for every
// event-producing site: declare the SV read/write footprint, and execute
// against a firing (time, entity) pair. Concrete vertices are expected to
// embed VertexBase for the Index/Name/NumExecs bookkeeping.
type Vertex interface {
	// IOSVs returns the vertex's read-set and write-set of SV indices.
	// The union is fixed once the vertex is added to a Graph.
	IOSVs() (in, out []int)

	// Run executes the vertex body for one firing event: it mutates state
	// only through the svreg.Registry the concrete vertex closes over, and
	// returns zero or more successor events plus an error. A non-nil error
	// is treated as fatal by the executor (see package executor).
	Run(time float64, e eventset.Entity) ([]*eventset.Event, error)

	// Index returns the vertex's monotonically assigned index.
	Index() int

	// Name returns a human-readable vertex name, used in traces and
	// diagnostics.
	Name() string

	// NumExecs returns how many times Run has completed for this vertex
	// (observational only; not consulted by the kernel).
	NumExecs() int
}

// VertexBase is an embeddable helper providing the Index/Name/NumExecs
// bookkeeping every Vertex implementation needs. Concrete vertex types
// embed it and call IncExecs() at the end of a successful Run.
type VertexBase struct {
	index    int
	name     string
	numExecs int
}

// NewVertexBase claims the next vertex index from g and returns a
// VertexBase bound to it. Callers must pass the resulting base's Index()
// to g.AddVertex unchanged.
func NewVertexBase(g *Graph, name string) VertexBase {
	return VertexBase{index: g.nextVertexIndex(), name: name}
}

func (b *VertexBase) Index() int      { return b.index }
func (b *VertexBase) Name() string    { return b.name }
func (b *VertexBase) NumExecs() int   { return b.numExecs }
func (b *VertexBase) IncExecs()       { b.numExecs++ }

// Edge is a directed edge (from, to, minDelay) asserting that an event
// fired at from cannot cause a new event at to sooner than minDelay
// simulation-time units later.
type Edge struct {
	From     int
	To       int
	MinDelay float64
}

// Graph is the static vertex/SV/edge description consumed by the ITL
// builder (package itl) and, indirectly, by the executor via each
// vertex's Run method. It is built once at model-construction time and
// never mutated afterward.
type Graph struct {
	vertices  []Vertex
	inputs    [][]int // inputs[v] = sorted, deduplicated SV read-set
	outputs   [][]int // outputs[v] = sorted, deduplicated SV write-set
	outEdges  [][]Edge
	numSVs    int
}

// NewGraph returns an empty graph. numSVs is the total number of state
// variables registered in the svreg.Registry this model uses; it is
// needed only so NumSVs() can report it without vgraph importing svreg.
func NewGraph(numSVs int) *Graph {
	return &Graph{numSVs: numSVs}
}

// nextVertexIndex reports the index the next AddVertex call must use.
func (g *Graph) nextVertexIndex() int { return len(g.vertices) }

// AddVertex registers v. v.Index() must equal the graph's current vertex
// count (i.e. v must have been built via NewVertexBase(g, ...)
// immediately before this call, with no intervening AddVertex calls on a
// different vertex).
func (g *Graph) AddVertex(v Vertex) error {
	if v.Index() != len(g.vertices) {
		return fmt.Errorf("vgraph: AddVertex(%q): index %d, want %d: %w", v.Name(), v.Index(), len(g.vertices), ErrIndexMismatch)
	}
	in, out := v.IOSVs()
	in = sortedUnique(in)
	out = sortedUnique(out)

	g.vertices = append(g.vertices, v)
	g.inputs = append(g.inputs, in)
	g.outputs = append(g.outputs, out)
	g.outEdges = append(g.outEdges, nil)
	return nil
}

// AddEdge adds a directed edge from -> to with the given minimum delay.
func (g *Graph) AddEdge(from, to int, minDelay float64) error {
	if from < 0 || from >= len(g.vertices) {
		return fmt.Errorf("vgraph: AddEdge: from=%d: %w", from, ErrUnknownVertex)
	}
	if to < 0 || to >= len(g.vertices) {
		return fmt.Errorf("vgraph: AddEdge: to=%d: %w", to, ErrUnknownVertex)
	}
	if minDelay < 0 {
		return fmt.Errorf("vgraph: AddEdge(%d,%d,%g): %w", from, to, minDelay, ErrNegativeDelay)
	}
	g.outEdges[from] = append(g.outEdges[from], Edge{From: from, To: to, MinDelay: minDelay})
	return nil
}

// NumVertices returns the number of registered vertices (V).
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumSVs returns the number of state variables this model's registry holds.
func (g *Graph) NumSVs() int { return g.numSVs }

// Vertex returns the vertex registered at index v.
func (g *Graph) Vertex(v int) (Vertex, error) {
	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("vgraph: Vertex(%d): %w", v, ErrUnknownVertex)
	}
	return g.vertices[v], nil
}

// Inputs returns the sorted, deduplicated SV read-set I(v).
func (g *Graph) Inputs(v int) []int { return g.inputs[v] }

// Outputs returns the sorted, deduplicated SV write-set O(v).
func (g *Graph) Outputs(v int) []int { return g.outputs[v] }

// OutEdges returns the out-edges of vertex v in insertion order.
func (g *Graph) OutEdges(v int) []Edge { return g.outEdges[v] }

// AllEdges returns every edge in the graph, ordered by source vertex then
// insertion order — used by the ITL builder's shortest-path step.
func (g *Graph) AllEdges() []Edge {
	var all []Edge
	for v := range g.outEdges {
		all = append(all, g.outEdges[v]...)
	}
	return all
}

func sortedUnique(idx []int) []int {
	if len(idx) == 0 {
		return nil
	}
	cp := append([]int(nil), idx...)
	sort.Ints(cp)
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
