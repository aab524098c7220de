package matrix

import "errors"

// Sentinel errors for the matrix package. DO NOT wrap these directly when
// returning them from deep call paths — wrap with fmt.Errorf("...: %w", err)
// only at the outer boundary, so errors.Is still matches at any call depth.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates an operation received a non-square
	// matrix where one was required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf indicates a NaN, or an Inf not permitted by the matrix's
	// numeric policy, was passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or disallowed Inf encountered")
)
