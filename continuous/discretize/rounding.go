// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import "fmt"

type rounding struct {
	d         Dist
	low, step float64
	n         int
}

// Rounding is the rounding method, also known as the mid-point
// method. It represents [low, high) by cardinality points spaced
// step = (high-low)/cardinality apart, starting at low. Each point
// receives the mass within step/2 of it, except the first, which only
// receives the mass in [low, low+step/2).
//
// Rounding requires cardinality >= 1.
func Rounding(d Dist, low, high float64, cardinality int) (Discretizer, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}
	if cardinality < 1 {
		return nil, fmt.Errorf("rounding to %d points: %w", cardinality, ErrCardinality)
	}
	return &rounding{d, low, (high - low) / float64(cardinality), cardinality}, nil
}

func (r *rounding) points() []float64 {
	return grid(r.low, r.low+r.step*float64(r.n-1), r.n)
}

func (r *rounding) DiscreteValues() []float64 {
	half := r.step / 2
	xs := r.points()
	vals := make([]float64, r.n)
	vals[0] = r.d.CDF(r.low+half) - r.d.CDF(r.low)
	for i := 1; i < r.n; i++ {
		vals[i] = r.d.CDF(xs[i]+half) - r.d.CDF(xs[i]-half)
	}
	return vals
}

func (r *rounding) Labels() []string {
	return labels(r.points())
}
