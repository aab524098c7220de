// Package distributions provides the random-variate generators the
// reference topology uses for inter-arrival, service, and transit delays.
//
// Grounded on Dist.h/Dist.cpp (original_source): each generator wraps a
// math/rand source the way the C++ classes wrap a std::default_random_engine
// seeded once at construction, exposing only GenRV() (here, Next()).
// ConstantRealDist and NormalDist/UniformIntDist are left unported: the
// distribution-parameter file format names exactly three shapes —
// intra-arrival, service, transit — all modeled as Triangular in the
// reference topology, which also uses Uniform for destination selection.
// Exponential is built as well but has no caller in the reference topology.
//
// params.go additionally parses the distribution-parameter file itself
// (see ParseParamsFile), grounded on Ring_1D.cpp's own file reads.
package distributions

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator produces successive random variates from a fixed distribution.
type Generator interface {
	Next() float64
	ID() string
}

// Uniform draws from the continuous interval [lower, upper).
type Uniform struct {
	rng          *rand.Rand
	lower, upper float64
}

// NewUniform seeds a Uniform generator deterministically from seed.
func NewUniform(lower, upper float64, seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed)), lower: lower, upper: upper}
}

func (d *Uniform) Next() float64 { return d.lower + d.rng.Float64()*(d.upper-d.lower) }

func (d *Uniform) ID() string {
	return fmt.Sprintf("uniform real, lower %g, upper %g", d.lower, d.upper)
}

// Triangular draws from a triangular distribution over [min, max] peaking
// at mode, via inverse-CDF sampling.
type Triangular struct {
	rng            *rand.Rand
	min, mode, max float64
}

// NewTriangular seeds a Triangular generator deterministically from seed.
// Requires min <= mode <= max.
func NewTriangular(min, mode, max float64, seed int64) *Triangular {
	return &Triangular{rng: rand.New(rand.NewSource(seed)), min: min, mode: mode, max: max}
}

func (d *Triangular) Next() float64 {
	u := d.rng.Float64()
	fc := (d.mode - d.min) / (d.max - d.min)
	if u < fc {
		return d.min + math.Sqrt(u*(d.max-d.min)*(d.mode-d.min))
	}
	return d.max - math.Sqrt((1-u)*(d.max-d.min)*(d.max-d.mode))
}

func (d *Triangular) ID() string {
	return fmt.Sprintf("triangular, min %g, peak %g, max %g", d.min, d.mode, d.max)
}

// Exponential draws inter-event delays at rate lambda (mean 1/lambda).
type Exponential struct {
	rng    *rand.Rand
	lambda float64
}

// NewExponential seeds an Exponential generator deterministically from seed.
func NewExponential(lambda float64, seed int64) *Exponential {
	return &Exponential{rng: rand.New(rand.NewSource(seed)), lambda: lambda}
}

func (d *Exponential) Next() float64 { return d.rng.ExpFloat64() / d.lambda }

func (d *Exponential) ID() string {
	return fmt.Sprintf("exponential, lambda %g", d.lambda)
}
