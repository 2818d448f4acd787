// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// MomentMethod selects how a PDFDist computes raw moments.
type MomentMethod int

//go:generate stringer -type=MomentMethod

const (
	// MomentPDF computes the n'th raw moment as the integral of
	// xⁿ·PDF(x) over the support.
	MomentPDF MomentMethod = iota

	// MomentInvCDF computes the n'th raw moment as the integral
	// of InvCDF(q)ⁿ over (0, 1). Every point of this integral
	// requires a quantile search, so it is much slower than
	// MomentPDF.
	MomentInvCDF
)

const (
	// invCDFTolerance is the largest acceptable |CDF(x) - y| for
	// x = InvCDF(y).
	invCDFTolerance = 1e-12

	// boundsTail is the fraction of the total weight Bounds
	// leaves outside each infinite end of the support.
	boundsTail = 0.0005

	// Locate scans outward from Loc in steps of locateStep·Scale
	// up to locateLinear·Scale, then in steps growing by a factor
	// of locateRatio up to locateReach·Scale.
	locateStep   = 1.0 / 64
	locateLinear = 4
	locateRatio  = 1 + 1.0/256
	locateReach  = 1 << 60

	// locateZoom is the number of times Locate narrows down on
	// the highest point found by the scan, by a factor of 8 each.
	locateZoom = 8
)

// PDFDist is a continuous distribution defined by an arbitrary
// probability density function. Its CDF, quantile function, moments
// and random variates are all computed numerically from the density.
//
// The density is not checked in any way. If it is negative somewhere
// or does not integrate to 1 over its support, the derived functions
// will be wrong in corresponding ways.
type PDFDist struct {
	// Func is the standardized density function. The density of
	// the distribution at x is Func((x-Loc)/Scale)/Scale.
	Func func(x float64) float64

	// [Min, Max] is the support of Func. If both are 0 (their
	// default values), they are treated as -/+inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	Min, Max float64

	// Loc and Scale shift and stretch Func. Scale must not be
	// negative. If Scale is 0, it is treated as 1.
	Loc, Scale float64

	// Moments is the method used to compute Moment.
	Moments MomentMethod

	// Src is the source of randomness for Rand. If Src is nil,
	// the global source of golang.org/x/exp/rand is used.
	Src rand.Source

	// center and width describe where the mass of the density
	// lies. They are set by Locate.
	located       bool
	center, width float64
}

func (d PDFDist) scale() float64 {
	if d.Scale == 0 {
		return 1
	}
	return d.Scale
}

// Locate returns a copy of d that knows where the bulk of its mass
// lies, found by scanning the density outward from Loc.
//
// Integrals over long or infinite intervals are only accurate near
// that point, which is Loc for a PDFDist that has not been located.
// A density whose mass is many Scales away from Loc should be
// located before use. Locate evaluates the density some ten thousand
// times, so the result should be kept.
//
// Locate finds the highest point of the density on its scan, so for
// a density with several far apart modes only the mass around the
// highest one is guaranteed to be resolved.
func (d PDFDist) Locate() PDFDist {
	low, high := d.Support()
	s := d.scale()
	start := math.Max(low, math.Min(high, d.Loc))

	best, peak := start, 0.0
	visit := func(x float64) bool {
		if !(low <= x && x <= high) {
			return false
		}
		if p := d.PDF(x); p > peak {
			best, peak = x, p
		}
		return true
	}
	visit(start)
	for off := locateStep * s; off <= locateReach*s; {
		right, left := visit(start+off), visit(start-off)
		if !right && !left {
			break
		}
		if off < locateLinear*s {
			off += locateStep * s
		} else {
			off *= locateRatio
		}
	}

	// Zoom in on the best point, starting from the scan's spacing
	// there.
	h := math.Max(locateStep*s, math.Abs(best-start)*(locateRatio-1))
	for i := 0; i < locateZoom; i++ {
		mid := best
		for k := -8; k <= 8; k++ {
			visit(mid + float64(k)*h/8)
		}
		h /= 8
	}

	d.located, d.center, d.width = true, best, s
	if w := 1 / peak; peak > 0 && w > 0 && !math.IsInf(w, 0) {
		d.width = w
	}
	return d
}

// anchor returns the point integrals are computed outward from and
// the length scale of the density around it.
func (d PDFDist) anchor() (center, width float64) {
	if d.located {
		return d.center, d.width
	}
	return d.Loc, d.scale()
}

// Support returns the interval outside of which the density of d is
// zero, after applying Loc and Scale.
func (d PDFDist) Support() (low, high float64) {
	low, high = d.Min, d.Max
	if low == 0 && high == 0 {
		low, high = -inf, inf
	}
	s := d.scale()
	return d.Loc + s*low, d.Loc + s*high
}

// PDF returns the density of d at x. Outside of the support this is
// 0; inside it, Func is called directly.
func (d PDFDist) PDF(x float64) float64 {
	low, high := d.Support()
	if x < low || x > high {
		return 0
	}
	s := d.scale()
	return d.Func((x-d.Loc)/s) / s
}

func (d PDFDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// LogPDF returns the natural logarithm of PDF(x).
func (d PDFDist) LogPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

// CDF returns the integral of the density from the lower end of the
// support to x.
func (d PDFDist) CDF(x float64) float64 {
	low, high := d.Support()
	switch {
	case math.IsNaN(x):
		return nan
	case x <= low:
		return 0
	case x >= high:
		return 1
	}
	return math.Max(0, math.Min(1, d.integrate(d.PDF, low, x)))
}

func (d PDFDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

// Survival returns 1 - CDF(x).
func (d PDFDist) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// InvCDF returns the x for which CDF(x) = y. It returns NaN if y is
// outside [0, 1], and the ends of the support for y = 0 and y = 1.
func (d PDFDist) InvCDF(y float64) float64 {
	low, high := d.Support()
	switch {
	case math.IsNaN(y) || y < 0 || y > 1:
		return nan
	case y == 0:
		return low
	case y == 1:
		return high
	}

	lo, hi := d.bracket(y)
	// Accept discontinuities: a density with gaps has flat
	// stretches of CDF that bisection may land on.
	x, _ := bisect(func(x float64) float64 { return d.CDF(x) - y }, lo, hi, invCDFTolerance)
	return x
}

func (d PDFDist) InvCDFEach(ys []float64) []float64 {
	return each(d.InvCDF, ys)
}

// InvSurvival returns the x for which Survival(x) = y.
func (d PDFDist) InvSurvival(y float64) float64 {
	return d.InvCDF(1 - y)
}

// bracket returns lo, hi such that CDF(lo) <= y <= CDF(hi).
func (d PDFDist) bracket(y float64) (lo, hi float64) {
	low, high := d.Support()
	c, w := d.anchor()
	finiteLow, finiteHigh := !math.IsInf(low, 0), !math.IsInf(high, 0)
	switch {
	case finiteLow && finiteHigh:
		return low, high
	case finiteLow:
		lo, hi = low, math.Max(low, c)+w
	case finiteHigh:
		lo, hi = math.Min(high, c)-w, high
	default:
		lo, hi = c-w, c+w
	}
	// Expand the window until it contains y. The expansion
	// reaches ±inf eventually, where the CDF is exactly 0 or 1.
	for d.CDF(lo) > y {
		lo -= hi - lo
	}
	for d.CDF(hi) < y {
		hi += hi - lo
	}
	return lo, hi
}

// Median returns InvCDF(0.5).
func (d PDFDist) Median() float64 {
	return d.InvCDF(0.5)
}

// Interval returns the endpoints of the range around the median that
// contains a fraction conf of the distribution's weight, with equal
// weight in both tails.
func (d PDFDist) Interval(conf float64) (low, high float64) {
	return d.InvCDF((1 - conf) / 2), d.InvCDF((1 + conf) / 2)
}

// Bounds returns the support of d where it is finite. Infinite ends
// are replaced by the quantile that leaves boundsTail of the total
// weight beyond it. The total weight is integrated rather than
// assumed to be 1, so the bounds are finite for densities that
// integrate to less.
func (d PDFDist) Bounds() (float64, float64) {
	low, high := d.Support()
	if !math.IsInf(low, 0) && !math.IsInf(high, 0) {
		return low, high
	}
	total := math.Min(1, d.integrate(d.PDF, low, high))
	if !(total > 0) {
		c, w := d.anchor()
		return math.Max(low, c-w), math.Min(high, c+w)
	}
	if math.IsInf(low, 0) {
		low = d.InvCDF(total * boundsTail)
	}
	if math.IsInf(high, 0) {
		high = d.InvCDF(total * (1 - boundsTail))
	}
	return low, high
}

// Expect returns the integral of g(x)·PDF(x) over [low, high]
// intersected with the support of d.
func (d PDFDist) Expect(g func(x float64) float64, low, high float64) float64 {
	slow, shigh := d.Support()
	low, high = math.Max(low, slow), math.Min(high, shigh)
	if !(low < high) {
		return 0
	}
	return d.integrate(func(x float64) float64 {
		p := d.PDF(x)
		if p == 0 {
			// Avoid 0*inf when g grows without bound
			// outside of the mass of d.
			return 0
		}
		return g(x) * p
	}, low, high)
}

// Moment returns the n'th raw moment of d, E[Xⁿ].
func (d PDFDist) Moment(n int) float64 {
	if n == 0 {
		return 1
	}
	pow := func(x float64) float64 { return math.Pow(x, float64(n)) }
	switch d.Moments {
	default:
		panic(fmt.Sprint("unknown moment method ", d.Moments))
	case MomentPDF:
		low, high := d.Support()
		return d.Expect(pow, low, high)
	case MomentInvCDF:
		return integrate(func(q float64) float64 { return pow(d.InvCDF(q)) }, 0, 1)
	}
}

func (d PDFDist) Mean() float64 {
	return d.Moment(1)
}

func (d PDFDist) Variance() float64 {
	m1 := d.Moment(1)
	if d.Moments != MomentPDF {
		return d.Moment(2) - m1*m1
	}
	// Central, so a large mean does not cancel it out.
	low, high := d.Support()
	return d.Expect(func(x float64) float64 { return (x - m1) * (x - m1) }, low, high)
}

func (d PDFDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Entropy returns the differential entropy of d in nats.
func (d PDFDist) Entropy() float64 {
	low, high := d.Support()
	return -d.integrate(func(x float64) float64 {
		p := d.PDF(x)
		if p <= 0 {
			return 0
		}
		return p * math.Log(p)
	}, low, high)
}

// Rand returns a random variate of d using inverse transform
// sampling.
func (d PDFDist) Rand() float64 {
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: d.Src}
	u := uniform.Rand()
	for u == 0 {
		// InvCDF(0) is the lower end of the support.
		u = uniform.Rand()
	}
	return d.InvCDF(u)
}

// integrate integrates f over [a, b], where a <= b, outward from the
// anchor of d.
func (d PDFDist) integrate(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	c, w := d.anchor()
	c = math.Max(a, math.Min(b, c))
	return integrateFrom(f, c, b, w) - integrateFrom(f, c, a, w)
}

// each is a generic implementation of the ...Each methods.
func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
