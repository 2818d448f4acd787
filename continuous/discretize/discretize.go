// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discretize converts continuous distributions into a finite
// sequence of probability masses.
//
// A discretization Method is constructed from a distribution, a range
// [low, high] and a cardinality, and yields a Discretizer whose
// DiscreteValues are the masses assigned to evenly spaced points of
// the range. Methods differ in how they assign mass to the points.
package discretize // import "github.com/go-pgm/contfactor/continuous/discretize"

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidDiscretizer is returned when a value that is not
	// a discretization method is used as one.
	ErrInvalidDiscretizer = errors.New("invalid discretizer type")

	// ErrRange is returned when the discretization range is not
	// a finite, non-empty interval.
	ErrRange = errors.New("discretization range must be finite with low < high")

	// ErrCardinality is returned when a method is asked for fewer
	// points than it can produce.
	ErrCardinality = errors.New("cardinality too small")
)

// Dist is the distribution interface the discretization methods in
// this package need.
type Dist interface {
	// CDF returns the cumulative distribution function at x.
	CDF(x float64) float64

	// Expect returns the integral of g(x)·PDF(x) over
	// [low, high]. low may be -inf.
	Expect(g func(x float64) float64, low, high float64) float64
}

// A Discretizer computes the discrete representation of a
// distribution.
type Discretizer interface {
	// DiscreteValues returns the probability mass assigned to
	// each point, in increasing order of the points.
	DiscreteValues() []float64

	// Labels returns a label for each of the points, in the
	// same order as DiscreteValues.
	Labels() []string
}

// A Method constructs a Discretizer for d that represents [low, high]
// by cardinality points.
type Method func(d Dist, low, high float64, cardinality int) (Discretizer, error)

var registry = struct {
	sync.RWMutex
	methods map[string]Method
}{methods: map[string]Method{
	"rounding": Rounding,
	"unbiased": Unbiased,
}}

// Register makes m available to Lookup under name, replacing any
// method previously registered under that name.
func Register(name string, m Method) {
	if m == nil {
		panic("discretize: Register of nil method " + name)
	}
	registry.Lock()
	defer registry.Unlock()
	registry.methods[name] = m
}

// Lookup returns the method registered under name. If there is none,
// it returns an error wrapping ErrInvalidDiscretizer.
func Lookup(name string) (Method, error) {
	registry.RLock()
	defer registry.RUnlock()
	m, ok := registry.methods[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrInvalidDiscretizer)
	}
	return m, nil
}

// Names returns the names of all registered methods in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.methods))
	for name := range registry.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkRange(low, high float64) error {
	if math.IsInf(low, 0) || math.IsInf(high, 0) || !(low < high) {
		return fmt.Errorf("[%v, %v]: %w", low, high, ErrRange)
	}
	return nil
}

// labels returns "x=<p>" for each point p, rounded to three decimal
// places.
func labels(points []float64) []string {
	ls := make([]string, len(points))
	for i, p := range points {
		r := math.Round(p*1000) / 1000
		if r == 0 {
			r = 0 // Not -0.
		}
		ls[i] = fmt.Sprintf("x=%v", r)
	}
	return ls
}

// grid returns n evenly spaced points from first to last inclusive.
func grid(first, last float64, n int) []float64 {
	if n == 1 {
		return []float64{first}
	}
	return floats.Span(make([]float64, n), first, last)
}
