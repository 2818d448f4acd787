// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"fmt"
	"math"
)

type unbiased struct {
	d               Dist
	low, high, step float64
	n               int
}

// Unbiased is the unbiased, or first-moment matching, method. It
// represents [low, high] by cardinality points spaced
// step = (high-low)/(cardinality-1) apart, including both low and
// high, and assigns masses so that the discrete distribution has the
// same mean as d restricted to the range.
//
// The masses are computed from the limited expected value
//
//	E[min(X, u)] = ∫_{-∞}^{u} x·f(x) dx + u·(1 - F(u))
//
// at the points. The mass outside of [low, high] is folded into the
// first and last points.
//
// Unbiased requires cardinality >= 2.
func Unbiased(d Dist, low, high float64, cardinality int) (Discretizer, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}
	if cardinality < 2 {
		return nil, fmt.Errorf("unbiased discretization to %d points: %w", cardinality, ErrCardinality)
	}
	return &unbiased{d, low, high, (high - low) / float64(cardinality-1), cardinality}, nil
}

// limitedMean returns E[min(X, v)].
func (u *unbiased) limitedMean(v float64) float64 {
	ident := func(x float64) float64 { return x }
	return u.d.Expect(ident, math.Inf(-1), v) + v*(1-u.d.CDF(v))
}

func (u *unbiased) DiscreteValues() []float64 {
	xs := grid(u.low, u.high, u.n)
	lev := make([]float64, u.n)
	for i, x := range xs {
		lev[i] = u.limitedMean(x)
	}

	last := u.n - 1
	vals := make([]float64, u.n)
	vals[0] = (lev[0]-lev[1])/u.step + 1 - u.d.CDF(xs[0])
	for i := 1; i < last; i++ {
		vals[i] = (2*lev[i] - lev[i-1] - lev[i+1]) / u.step
	}
	vals[last] = (lev[last]-lev[last-1])/u.step - 1 + u.d.CDF(xs[last])
	return vals
}

func (u *unbiased) Labels() []string {
	return labels(grid(u.low, u.high, u.n))
}
