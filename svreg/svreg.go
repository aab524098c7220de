// Package svreg implements the state-variable registry (C1): bounded
// integer cells with strictly-exclusive bounds, assigned monotonically
// increasing indices at construction time.
//
// A State Variable's legal values satisfy min < v < max. A value equal to
// either bound is illegal — this mirrors the source model's convention of
// initializing queue-length SVs below a negative "server available"
// sentinel, so the open interval is preserved exactly rather than relaxed
// to the more common closed-interval convention.
package svreg

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry operations.
var (
	// ErrBoundsViolation indicates a Set/Inc/Dec result would violate min < v < max.
	ErrBoundsViolation = errors.New("svreg: bounds violation")

	// ErrNonPositiveDelta indicates Inc/Dec was called with n <= 0.
	ErrNonPositiveDelta = errors.New("svreg: delta must be positive")

	// ErrDegenerateBounds indicates min >= max at registration time.
	ErrDegenerateBounds = errors.New("svreg: min must be strictly less than max")

	// ErrUnknownIndex indicates an operation referenced an index outside [0, NumSVs).
	ErrUnknownIndex = errors.New("svreg: unknown SV index")
)

// sv is a single bounded integer cell.
type sv struct {
	name     string
	value    int64
	minLimit int64
	maxLimit int64
}

// Registry owns every SV created for one model and assigns each a
// monotonically increasing index starting at zero. A Registry is built once
// and then mutated only through Get/Set/Inc/Dec; it is not safe to extend
// (Register) concurrently with Set/Inc/Dec calls, matching the
// single-threaded execution model of the kernel.
type Registry struct {
	svs []sv
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register creates a new SV with the given name, initial value, and
// strictly-exclusive bounds (min < v < max). It returns the SV's assigned
// index, or an error if the initial value already violates the bounds or
// the bounds themselves are degenerate (min >= max).
//
// Complexity: O(1) amortized.
func (r *Registry) Register(name string, initial, min, max int64) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("svreg: Register(%q): %w", name, ErrDegenerateBounds)
	}
	if initial <= min || initial >= max {
		return 0, fmt.Errorf("svreg: Register(%q, v=%d, min=%d, max=%d): %w", name, initial, min, max, ErrBoundsViolation)
	}
	idx := len(r.svs)
	r.svs = append(r.svs, sv{name: name, value: initial, minLimit: min, maxLimit: max})
	return idx, nil
}

// NumSVs returns the number of registered state variables.
func (r *Registry) NumSVs() int { return len(r.svs) }

func (r *Registry) lookup(idx int) (*sv, error) {
	if idx < 0 || idx >= len(r.svs) {
		return nil, fmt.Errorf("svreg: index %d: %w", idx, ErrUnknownIndex)
	}
	return &r.svs[idx], nil
}

// Get returns the current value of the SV at idx.
func (r *Registry) Get(idx int) (int64, error) {
	s, err := r.lookup(idx)
	if err != nil {
		return 0, err
	}
	return s.value, nil
}

// Name returns the human-readable name of the SV at idx.
func (r *Registry) Name(idx int) (string, error) {
	s, err := r.lookup(idx)
	if err != nil {
		return "", err
	}
	return s.name, nil
}

// Set assigns v to the SV at idx. A bounds violation is a programmer error:
// per the kernel's error-handling policy, callers at the vertex-authoring
// boundary are expected to let this propagate as a fatal diagnostic rather
// than recover locally (see MustSet).
func (r *Registry) Set(idx int, v int64) error {
	s, err := r.lookup(idx)
	if err != nil {
		return err
	}
	if v <= s.minLimit || v >= s.maxLimit {
		return fmt.Errorf("svreg: Set(%q, %d): min=%d max=%d: %w", s.name, v, s.minLimit, s.maxLimit, ErrBoundsViolation)
	}
	s.value = v
	return nil
}

// Inc adds n (n > 0) to the SV at idx.
func (r *Registry) Inc(idx int, n int64) error {
	if n <= 0 {
		return fmt.Errorf("svreg: Inc(idx=%d, n=%d): %w", idx, n, ErrNonPositiveDelta)
	}
	s, err := r.lookup(idx)
	if err != nil {
		return err
	}
	return r.Set(idx, s.value+n)
}

// Dec subtracts n (n > 0) from the SV at idx.
func (r *Registry) Dec(idx int, n int64) error {
	if n <= 0 {
		return fmt.Errorf("svreg: Dec(idx=%d, n=%d): %w", idx, n, ErrNonPositiveDelta)
	}
	s, err := r.lookup(idx)
	if err != nil {
		return err
	}
	return r.Set(idx, s.value-n)
}

// MustSet panics on a bounds violation. The top-level recover in
// cmd/oooNetSim's main turns this into a fatal diagnostic naming the SV
// and offending value, matching the source model's "abort, don't recover"
// policy for programmer errors inside Run.
func (r *Registry) MustSet(idx int, v int64) {
	if err := r.Set(idx, v); err != nil {
		panic(err)
	}
}

// MustInc panics on a bounds violation or non-positive delta.
func (r *Registry) MustInc(idx int, n int64) {
	if err := r.Inc(idx, n); err != nil {
		panic(err)
	}
}

// MustDec panics on a bounds violation or non-positive delta.
func (r *Registry) MustDec(idx int, n int64) {
	if err := r.Dec(idx, n); err != nil {
		panic(err)
	}
}
