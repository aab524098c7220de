package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major dense matrix: r*c float64 values in a flat slice.
type Dense struct {
	r, c int
	data []float64
	opts Options
}

var _ Matrix = (*Dense)(nil)

// NewDense returns an r*c Dense of zeros under the default numeric policy
// (NaN/Inf rejected by Set).
func NewDense(rows, cols int) (*Dense, error) {
	return NewZeros(rows, cols)
}

// NewZeros returns an r*c Dense of zeros with the given policy Options
// applied.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: o}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("matrix.Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set writes v at (row, col), subject to the matrix's numeric policy:
// NaN and -Inf are rejected unless validation is fully disabled; +Inf is
// rejected unless WithAllowInfDistances (or full disablement) was set.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if m.opts.validateNaNInf {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return fmt.Errorf("matrix.Dense.Set(%d,%d,%g): %w", row, col, v, ErrNaNInf)
		}
		if math.IsInf(v, 1) && !m.opts.allowInfDistances {
			return fmt.Errorf("matrix.Dense.Set(%d,%d,+Inf): %w", row, col, ErrNaNInf)
		}
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp, opts: m.opts}
}
