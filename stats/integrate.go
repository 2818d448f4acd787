// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// quadPoints is the number of Gauss-Legendre points used for
	// each panel.
	quadPoints = 10

	// quadAbsTol and quadRelTol bound the difference between a
	// panel's estimate and the sum of its two halves.
	quadAbsTol = 1e-12
	quadRelTol = 1e-12

	// quadMaxLevel limits the number of times a panel is halved.
	quadMaxLevel = 48

	// quadInfLevel is the number of levels that are always
	// subdivided when an interval has been mapped onto [0, 1].
	// The mapping squeezes most of the real line into a small
	// neighborhood of the anchor, so a single panel easily steps
	// over all of the density's mass.
	quadInfLevel = 4
)

// integrate returns the integral of f over [a, b] computed by
// adaptive Gauss-Legendre quadrature. Either bound may be infinite.
//
// If the estimate does not settle within quadMaxLevel subdivisions,
// integrate returns the best estimate it has.
func integrate(f func(float64) float64, a, b float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return nan
	case a == b:
		return 0
	case a > b:
		return -integrate(f, b, a)
	case math.IsInf(a, -1) && math.IsInf(b, 1):
		return integrateFrom(f, 0, b, 1) - integrateFrom(f, 0, a, 1)
	case math.IsInf(a, -1):
		return -integrateFrom(f, b, a, 1)
	case math.IsInf(b, 1):
		return integrateFrom(f, a, b, 1)
	}
	whole := quad.Fixed(f, a, b, quadPoints, quad.Legendre{}, 0)
	return refine(f, a, b, whole, 0, 0)
}

// integrateFrom returns the integral of f from anchor to x, which is
// negative if x < anchor. x may be infinite.
//
// The interval is mapped onto [0, u] ⊆ [0, 1] by
//
//	x = anchor ± w·t/(1-t)
//
// so the resolution is finest within a few w of anchor and the far
// end of the interval, however distant, takes up a shrinking part of
// [0, u]. anchor should lie near the bulk of f's mass and w should be
// on the order of its width.
func integrateFrom(f func(float64) float64, anchor, x, w float64) float64 {
	switch {
	case math.IsNaN(anchor) || math.IsNaN(x):
		return nan
	case x == anchor:
		return 0
	}
	dir := 1.0
	if x < anchor {
		dir = -1
	}
	u := 1.0
	if !math.IsInf(x, 0) {
		dist := math.Abs(x - anchor)
		u = dist / (w + dist)
	}
	g := func(t float64) float64 {
		v := 1 - t
		return f(anchor+dir*w*t/v) * w / (v * v)
	}
	whole := quad.Fixed(g, 0, u, quadPoints, quad.Legendre{}, 0)
	return dir * refine(g, 0, u, whole, 0, quadInfLevel)
}

// refine splits [a, b] in half and compares the sum of the halves
// with whole, the estimate for the entire panel. Panels that disagree
// are split again.
func refine(f func(float64) float64, a, b, whole float64, level, minLevel int) float64 {
	mid := a + (b-a)/2
	left := quad.Fixed(f, a, mid, quadPoints, quad.Legendre{}, 0)
	right := quad.Fixed(f, mid, b, quadPoints, quad.Legendre{}, 0)
	sum := left + right
	if level >= quadMaxLevel {
		return sum
	}
	if level >= minLevel && math.Abs(sum-whole) <= math.Max(quadAbsTol, quadRelTol*math.Abs(sum)) {
		return sum
	}
	return refine(f, a, mid, left, level+1, minLevel) + refine(f, mid, b, right, level+1, minLevel)
}
