// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package continuous represents user-defined continuous random
// variables.
//
// A Factor is built from nothing more than a probability density
// function and, optionally, the bounds of its support. Everything else
// a distribution offers (CDF, quantiles, moments, random variates) is
// computed numerically from the density by stats.PDFDist. In addition,
// a Factor can be discretized into probability masses using any
// discretize.Method.
package continuous // import "github.com/go-pgm/contfactor/continuous"

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/go-pgm/contfactor/continuous/discretize"
	"github.com/go-pgm/contfactor/stats"
)

// A Factor is a continuous random variable defined by a user-supplied
// probability density function.
//
// The density is not validated: it is the caller's responsibility that
// it is non-negative and integrates to 1 over the support.
//
// The first operation that integrates the density locates its mass
// (see stats.PDFDist.Locate), so a Factor needs no hint about where
// an unbounded density lives.
type Factor struct {
	dist stats.PDFDist

	once    sync.Once
	located stats.PDFDist
}

// base returns the located distribution.
func (f *Factor) base() stats.PDFDist {
	f.once.Do(func() {
		f.located = f.dist // in case Locate panics
		f.located = f.dist.Locate()
	})
	return f.located
}

// An Option configures a Factor.
type Option func(*stats.PDFDist)

// LowerBound sets the lower bound of the support. The default is -inf.
func LowerBound(lb float64) Option {
	return func(d *stats.PDFDist) { d.Min = lb }
}

// UpperBound sets the upper bound of the support. The default is +inf.
func UpperBound(ub float64) Option {
	return func(d *stats.PDFDist) { d.Max = ub }
}

// Bounds sets both bounds of the support.
func Bounds(lb, ub float64) Option {
	return func(d *stats.PDFDist) { d.Min, d.Max = lb, ub }
}

// LocScale shifts the density by loc and stretches it by scale, so
// that the density at x is pdf((x-loc)/scale)/scale. Bounds remain in
// the unshifted coordinates of pdf. scale must be positive.
func LocScale(loc, scale float64) Option {
	return func(d *stats.PDFDist) { d.Loc, d.Scale = loc, scale }
}

// Source sets the source of randomness used by Rand.
func Source(src rand.Source) Option {
	return func(d *stats.PDFDist) { d.Src = src }
}

// New returns a Factor with density pdf. Without options, the support
// is the whole real line.
func New(pdf func(x float64) float64, opts ...Option) *Factor {
	if pdf == nil {
		panic("continuous: nil density function")
	}
	d := stats.PDFDist{
		Func:    pdf,
		Min:     math.Inf(-1),
		Max:     math.Inf(1),
		Moments: stats.MomentPDF,
	}
	for _, opt := range opts {
		opt(&d)
	}
	if !(d.Scale >= 0) {
		panic(fmt.Sprintf("continuous: scale %v is not positive", d.Scale))
	}
	return &Factor{dist: d}
}

var errNilMethod = fmt.Errorf("nil discretization method: %w", discretize.ErrInvalidDiscretizer)

// Discretize discretizes f into cardinality probability masses over
// [low, high] using method. It constructs the discretizer with f as
// its distribution and returns its DiscreteValues unchanged.
//
// If method is nil, Discretize returns an error wrapping
// discretize.ErrInvalidDiscretizer without computing anything. Errors
// from constructing the discretizer are returned as is.
func (f *Factor) Discretize(method discretize.Method, low, high float64, cardinality int) ([]float64, error) {
	if method == nil {
		return nil, errNilMethod
	}
	disc, err := method(f, low, high, cardinality)
	if err != nil {
		return nil, err
	}
	return disc.DiscreteValues(), nil
}

// DiscretizeNamed is like Discretize, but looks up the method by the
// name it is registered under in package discretize.
func (f *Factor) DiscretizeNamed(name string, low, high float64, cardinality int) ([]float64, error) {
	method, err := discretize.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Discretize(method, low, high, cardinality)
}

// Discretizer is like Discretize, but returns the discretizer itself
// so that its labels are available too.
func (f *Factor) Discretizer(method discretize.Method, low, high float64, cardinality int) (discretize.Discretizer, error) {
	if method == nil {
		return nil, errNilMethod
	}
	return method(f, low, high, cardinality)
}

// PDF returns the density at x. Within the support this is exactly
// the user's density evaluated at x (after LocScale, if given);
// outside of it, PDF returns 0.
func (f *Factor) PDF(x float64) float64 { return f.dist.PDF(x) }

func (f *Factor) PDFEach(xs []float64) []float64 { return f.dist.PDFEach(xs) }

func (f *Factor) LogPDF(x float64) float64 { return f.dist.LogPDF(x) }

func (f *Factor) CDF(x float64) float64 { return f.base().CDF(x) }

func (f *Factor) CDFEach(xs []float64) []float64 { return f.base().CDFEach(xs) }

func (f *Factor) Survival(x float64) float64 { return f.base().Survival(x) }

func (f *Factor) InvCDF(y float64) float64 { return f.base().InvCDF(y) }

func (f *Factor) InvCDFEach(ys []float64) []float64 { return f.base().InvCDFEach(ys) }

func (f *Factor) InvSurvival(y float64) float64 { return f.base().InvSurvival(y) }

func (f *Factor) Median() float64 { return f.base().Median() }

func (f *Factor) Mean() float64 { return f.base().Mean() }

func (f *Factor) Variance() float64 { return f.base().Variance() }

func (f *Factor) StdDev() float64 { return f.base().StdDev() }

func (f *Factor) Entropy() float64 { return f.base().Entropy() }

// Rand returns a random variate by inverse transform sampling.
func (f *Factor) Rand() float64 { return f.base().Rand() }

// Moment returns the n'th raw moment, E[Xⁿ].
func (f *Factor) Moment(n int) float64 { return f.base().Moment(n) }

// Expect returns the integral of g(x)·PDF(x) over [low, high].
func (f *Factor) Expect(g func(x float64) float64, low, high float64) float64 {
	return f.base().Expect(g, low, high)
}

// Interval returns the equal-tailed range containing a fraction conf
// of the weight.
func (f *Factor) Interval(conf float64) (low, high float64) { return f.base().Interval(conf) }

// Support returns the bounds the Factor was constructed with, after
// LocScale.
func (f *Factor) Support() (low, high float64) { return f.dist.Support() }

// Bounds returns reasonable plotting bounds. See stats.PDFDist.Bounds.
func (f *Factor) Bounds() (float64, float64) { return f.base().Bounds() }
