// Package itl implements the shortest-path + ITL builder (C2): all-pairs
// shortest delays over the vertex graph (Floyd-Warshall, via package
// matrix), followed by the two-phase Independence Time Limit algorithm
// that turns shortest paths plus per-vertex read/write sets into safe
// independence bounds.
//
// Grounded on matrix.FloydWarshall/matrix.Dense (teacher, reused
// unchanged) and on OoO_SimModel::MakeITL/FloydWarshall (original_source)
// for the two-phase algorithm itself, which this library has no
// equivalent of.
package itl

import (
	"fmt"
	"math"

	"github.com/ejensODU/PADS25-DDA-artifacts/matrix"
	"github.com/ejensODU/PADS25-DDA-artifacts/vgraph"
)

// Table is a dense V*V matrix of independence bounds. A k-event
// timestamped less than ITL[j][k] after a pending j-event is independent
// of it; at a separation of ITL[j][k] or more it is not. +Inf means no
// j-event can ever affect a k-event; 0 means every k-event depends on it.
type Table struct {
	n    int
	data [][]float64
}

// newTable allocates an n*n table initialized to +Inf.
func newTable(n int) *Table {
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, n)
		for j := range row {
			row[j] = math.Inf(1)
		}
		data[i] = row
	}
	return &Table{n: n, data: data}
}

// At returns ITL[earlierVertex][laterVertex]. Satisfies
// eventset.IndependenceTable.
func (t *Table) At(earlierVertex, laterVertex int) float64 {
	return t.data[earlierVertex][laterVertex]
}

func (t *Table) set(j, k int, v float64) { t.data[j][k] = v }

// N returns the table's dimension (V).
func (t *Table) N() int { return t.n }

// ShortestPaths builds the initial V*V distance matrix from g's edges
// (diagonal 0, off-diagonal +Inf unless a direct edge exists — the
// minimum-weight edge when parallel edges share endpoints; self-loop
// edges are ignored, per step 1 of the ITL construction) and runs
// Floyd-Warshall over it.
func ShortestPaths(g *vgraph.Graph) (*matrix.Dense, error) {
	n := g.NumVertices()
	m, err := matrix.NewZeros(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("itl: ShortestPaths: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				if err := m.Set(i, j, 0); err != nil {
					return nil, err
				}
				continue
			}
			if err := m.Set(i, j, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue // self-loops are ignored for shortest-path purposes
		}
		cur, err := m.At(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if e.MinDelay < cur {
			if err := m.Set(e.From, e.To, e.MinDelay); err != nil {
				return nil, err
			}
		}
	}
	if err := matrix.FloydWarshall(m); err != nil {
		return nil, fmt.Errorf("itl: ShortestPaths: %w", err)
	}
	return m, nil
}

// Build runs the two-phase ITL algorithm described in spec step 3-4:
// Phase 1 (writer-based bound) then Phase 2 (immediate-affect
// tightening), over the shortest-path matrix sp and g's per-vertex I/O
// sets.
func Build(g *vgraph.Graph) (*Table, error) {
	n := g.NumVertices()
	sp, err := ShortestPaths(g)
	if err != nil {
		return nil, err
	}
	tbl := newTable(n)

	// R(l) = { m : SP[l][m] < +Inf }, sorted (vertex indices are already
	// iterated in ascending order, so the result is sorted by construction).
	reach := make([][]int, n)
	for l := 0; l < n; l++ {
		for m := 0; m < n; m++ {
			v, err := sp.At(l, m)
			if err != nil {
				return nil, err
			}
			if !math.IsInf(v, 1) {
				reach[l] = append(reach[l], m)
			}
		}
	}

	// U(S_k) = { l : O(l) ∩ S_k != ∅ }, for every later-event vertex k.
	writers := make([][]int, n)
	for k := 0; k < n; k++ {
		sk := sortedUnion(g.Inputs(k), g.Outputs(k))
		for l := 0; l < n; l++ {
			if intersects(g.Outputs(l), sk) {
				writers[k] = append(writers[k], l)
			}
		}
	}

	// Phase 1: writer-based bound.
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			x := sortedIntersect(reach[j], writers[k])
			if len(x) == 0 {
				tbl.set(j, k, math.Inf(1))
				continue
			}
			tbl.set(j, k, minShortestPath(sp, j, x))
		}
	}

	// Phase 2: immediate-affect tightening.
	for i := 0; i < n; i++ {
		var z []int
		for l := 0; l < n; l++ {
			if tbl.At(i, l) == 0 {
				z = append(z, l)
			}
		}
		if len(z) == 0 {
			continue
		}
		for h := 0; h < n; h++ {
			x := sortedIntersect(reach[h], z)
			if len(x) == 0 {
				continue
			}
			cand := minShortestPath(sp, h, x)
			if cand < tbl.At(h, i) {
				tbl.set(h, i, cand)
			}
		}
	}

	return tbl, nil
}

func minShortestPath(sp *matrix.Dense, from int, candidates []int) float64 {
	best := math.Inf(1)
	for _, x := range candidates {
		v, _ := sp.At(from, x)
		if v < best {
			best = v
		}
	}
	return best
}

// sortedUnion merges two sorted, deduplicated index slices.
func sortedUnion(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// sortedIntersect returns the intersection of two sorted, deduplicated
// index slices, also sorted.
func sortedIntersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// intersects reports whether sorted slices a and b share any element.
func intersects(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			return true
		}
	}
	return false
}
