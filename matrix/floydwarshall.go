// Floyd–Warshall all-pairs shortest paths, grounded on impl_floydwarshall.go:
// in-place, fixed k->i->j loop order for deterministic accumulation,
// +Inf as "no path", diagonal must be 0 before calling.

package matrix

import "math"

// FloydWarshall computes all-pairs shortest paths in place on m. m must be
// square; m's diagonal must already be 0 and off-diagonal cells must hold
// either a direct edge weight or +Inf ("no edge").
//
// Complexity: O(n^3) time, O(1) extra space.
func FloydWarshall(m *Dense) error {
	if m.r != m.c {
		return ErrDimensionMismatch
	}
	n := m.r
	data := m.data

	var k, i, j int
	var baseK, baseI int
	var ik, kj, ij, cand float64

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij {
					data[baseI+j] = cand
				}
			}
		}
	}
	return nil
}
