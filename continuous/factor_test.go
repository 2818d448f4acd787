// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package continuous

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/go-pgm/contfactor/continuous/discretize"
	"github.com/go-pgm/contfactor/stats"
)

var _ stats.Dist = (*Factor)(nil)
var _ discretize.Dist = (*Factor)(nil)

func box(x float64) float64 {
	if -1 < x && x < 1 {
		return 0.5
	}
	return 0
}

func exp2(x float64) float64 {
	if x >= 0 {
		return 2 * math.Exp(-2*x)
	}
	return 0
}

func near(want, got, tol float64) bool {
	return math.Abs(want-got) <= tol
}

func TestPDF(t *testing.T) {
	f := New(box, Bounds(-3, 3))
	for x, want := range map[float64]float64{-4: 0, -2: 0, 0: 0.5, 0.5: 0.5, 2: 0, 4: 0} {
		if got := f.PDF(x); got != want {
			t.Errorf("PDF(%v): want %v, got %v", x, want, got)
		}
	}

	// Inside the support the density is returned exactly and
	// repeatedly.
	g := func(x float64) float64 { return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi) }
	f = New(g)
	for _, x := range []float64{-7.5, -1, 0, 0.3, 1e-300, 12} {
		want := g(x)
		if got := f.PDF(x); got != want {
			t.Errorf("PDF(%v): want %v, got %v", x, want, got)
		}
		if got := f.PDF(x); got != want {
			t.Errorf("second PDF(%v): want %v, got %v", x, want, got)
		}
	}
	if got := f.PDFEach([]float64{0, 1}); got[0] != g(0) || got[1] != g(1) {
		t.Errorf("PDFEach: want [%v %v], got %v", g(0), g(1), got)
	}
}

func TestBoundsOptions(t *testing.T) {
	check := func(f *Factor, wlo, whi float64) {
		t.Helper()
		lo, hi := f.Support()
		if lo != wlo || hi != whi {
			t.Errorf("want support [%v,%v], got [%v,%v]", wlo, whi, lo, hi)
		}
	}
	check(New(box), math.Inf(-1), math.Inf(1))
	check(New(exp2, LowerBound(0)), 0, math.Inf(1))
	check(New(box, UpperBound(1)), math.Inf(-1), 1)
	check(New(box, Bounds(-1, 1)), -1, 1)
	check(New(box, Bounds(-1, 1), LocScale(2, 3)), -1, 5)

	defer func() {
		if recover() == nil {
			t.Error("want panic for negative scale")
		}
	}()
	New(box, LocScale(0, -1))
}

func TestNilDensity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want panic for nil density")
		}
	}()
	New(nil)
}

func TestDelegation(t *testing.T) {
	exp := distuv.Exponential{Rate: 2}
	f := New(exp2, LowerBound(0))

	for _, x := range []float64{0, 0.1, 1, 3} {
		if got := f.CDF(x); !near(exp.CDF(x), got, 1e-9) {
			t.Errorf("CDF(%v): want %v, got %v", x, exp.CDF(x), got)
		}
		if got := f.Survival(x); !near(exp.Survival(x), got, 1e-9) {
			t.Errorf("Survival(%v): want %v, got %v", x, exp.Survival(x), got)
		}
	}
	for _, y := range []float64{0.1, 0.5, 0.9} {
		if got := f.InvCDF(y); !near(exp.Quantile(y), got, 1e-7) {
			t.Errorf("InvCDF(%v): want %v, got %v", y, exp.Quantile(y), got)
		}
	}
	if got := f.InvSurvival(0.25); !near(exp.Quantile(0.75), got, 1e-7) {
		t.Errorf("InvSurvival(0.25): want %v, got %v", exp.Quantile(0.75), got)
	}
	if got := f.Median(); !near(math.Ln2/2, got, 1e-7) {
		t.Errorf("want median %v, got %v", math.Ln2/2, got)
	}
	if got := f.Mean(); !near(0.5, got, 1e-7) {
		t.Errorf("want mean 0.5, got %v", got)
	}
	if got := f.Variance(); !near(0.25, got, 1e-7) {
		t.Errorf("want variance 0.25, got %v", got)
	}
	if got := f.StdDev(); !near(0.5, got, 1e-7) {
		t.Errorf("want std dev 0.5, got %v", got)
	}
	if got := f.Moment(2); !near(0.5, got, 1e-7) {
		t.Errorf("want second moment 0.5, got %v", got)
	}
	if got := f.Entropy(); !near(exp.Entropy(), got, 1e-7) {
		t.Errorf("want entropy %v, got %v", exp.Entropy(), got)
	}
	if got := f.LogPDF(1); !near(exp.LogProb(1), got, 1e-12) {
		t.Errorf("LogPDF(1): want %v, got %v", exp.LogProb(1), got)
	}
	if got := f.Expect(func(x float64) float64 { return 1 }, 0, 1); !near(exp.CDF(1), got, 1e-9) {
		t.Errorf("Expect(1, 0, 1): want %v, got %v", exp.CDF(1), got)
	}
	lo, hi := f.Interval(0.8)
	if !near(exp.Quantile(0.1), lo, 1e-7) || !near(exp.Quantile(0.9), hi, 1e-7) {
		t.Errorf("want 80%% interval [%v,%v], got [%v,%v]", exp.Quantile(0.1), exp.Quantile(0.9), lo, hi)
	}
	if lo, _ := f.Bounds(); lo != 0 {
		t.Errorf("want lower plotting bound 0, got %v", lo)
	}

	cdfs := f.CDFEach([]float64{-1, 0})
	invs := f.InvCDFEach([]float64{0, 1})
	if cdfs[0] != 0 || cdfs[1] != 0 || invs[0] != 0 || !math.IsInf(invs[1], 1) {
		t.Errorf("want CDFEach [0 0] and InvCDFEach [0 +Inf], got %v and %v", cdfs, invs)
	}
}

func TestLocScale(t *testing.T) {
	f := New(distuv.UnitNormal.Prob, LocScale(3, 2))
	norm := distuv.Normal{Mu: 3, Sigma: 2}
	if got := f.PDF(4); !near(norm.Prob(4), got, 1e-12) {
		t.Errorf("PDF(4): want %v, got %v", norm.Prob(4), got)
	}
	if got := f.Mean(); !near(3, got, 1e-7) {
		t.Errorf("want mean 3, got %v", got)
	}
	if got := f.Variance(); !near(4, got, 1e-6) {
		t.Errorf("want variance 4, got %v", got)
	}
}

func TestFarMass(t *testing.T) {
	for _, norm := range []distuv.Normal{{Mu: 50, Sigma: 0.5}, {Mu: 200, Sigma: 0.5}} {
		f := New(norm.Prob)
		for _, x := range []float64{norm.Mu - 1, norm.Mu, norm.Mu + 0.5, 1000} {
			if got := f.CDF(x); !near(norm.CDF(x), got, 1e-9) {
				t.Errorf("%v: CDF(%v): want %v, got %v", norm, x, norm.CDF(x), got)
			}
		}
		if got := f.Median(); !near(norm.Mu, got, 1e-7) {
			t.Errorf("%v: want median %v, got %v", norm, norm.Mu, got)
		}
		if got := f.Mean(); !near(norm.Mu, got, 1e-7) {
			t.Errorf("%v: want mean %v, got %v", norm, norm.Mu, got)
		}
		if got := f.Variance(); !near(0.25, got, 1e-7) {
			t.Errorf("%v: want variance 0.25, got %v", norm, got)
		}
		if got := f.Entropy(); !near(norm.Entropy(), got, 1e-7) {
			t.Errorf("%v: want entropy %v, got %v", norm, norm.Entropy(), got)
		}
		lo, hi := f.Bounds()
		if !near(norm.Quantile(0.0005), lo, 1e-6) || !near(norm.Quantile(0.9995), hi, 1e-6) {
			t.Errorf("%v: want bounds [%v,%v], got [%v,%v]", norm, norm.Quantile(0.0005), norm.Quantile(0.9995), lo, hi)
		}

		// The unbiased method integrates from -inf to points well
		// past the mass.
		vals, err := f.Discretize(discretize.Unbiased, norm.Mu-2, norm.Mu+2, 9)
		if err != nil {
			t.Fatal(err)
		}
		want := norm.CDF(norm.Mu+2) - norm.CDF(norm.Mu-2)
		if sum := floats.Sum(vals); !near(want, sum, 1e-7) {
			t.Errorf("%v: want masses to sum to %v, got %v from %v", norm, want, sum, vals)
		}
	}
}

func TestPartialMass(t *testing.T) {
	// Half of a standard exponential.
	f := New(func(x float64) float64 { return 0.5 * math.Exp(-x) }, LowerBound(0))
	lo, hi := f.Bounds()
	if lo != 0 || math.IsInf(hi, 0) || !near(-math.Log(0.0005), hi, 1e-6) {
		t.Errorf("want bounds [0,%v], got [%v,%v]", -math.Log(0.0005), lo, hi)
	}
	if _, err := f.Discretize(discretize.Rounding, lo, hi, 10); err != nil {
		t.Errorf("discretizing over Bounds: %v", err)
	}
	// Quantiles beyond the total weight are at the end of the
	// support.
	if got := f.InvCDF(0.9); !math.IsInf(got, 1) {
		t.Errorf("InvCDF(0.9): want +Inf, got %v", got)
	}
}

func TestRand(t *testing.T) {
	draw := func(seed uint64) []float64 {
		src := prng.NewMT19937()
		src.Seed(seed)
		f := New(exp2, LowerBound(0), Source(src))
		xs := make([]float64, 500)
		for i := range xs {
			xs[i] = f.Rand()
		}
		return xs
	}
	xs := draw(42)
	if !floats.Equal(xs, draw(42)) {
		t.Error("same seed produced different variates")
	}
	if floats.Min(xs) < 0 {
		t.Errorf("want variates in the support, got minimum %v", floats.Min(xs))
	}
}

func TestDiscretize(t *testing.T) {
	f := New(exp2)
	vals, err := f.Discretize(discretize.Unbiased, 0, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 10 {
		t.Fatalf("want 10 values, got %d", len(vals))
	}
	for i, v := range vals {
		if v < 0 {
			t.Errorf("value %d is negative: %v", i, v)
		}
	}
	if sum := floats.Sum(vals); !near(1, sum, 1e-4) {
		t.Errorf("want values to sum to about 1, got %v", sum)
	}

	// Discretize returns exactly what the method computes.
	for _, m := range []discretize.Method{discretize.Rounding, discretize.Unbiased} {
		disc, err := m(f, 0, 5, 10)
		if err != nil {
			t.Fatal(err)
		}
		got, err := f.Discretize(m, 0, 5, 10)
		if err != nil {
			t.Fatal(err)
		}
		if want := disc.DiscreteValues(); !floats.Equal(want, got) {
			t.Errorf("want %v, got %v", want, got)
		}
	}

	named, err := f.DiscretizeNamed("unbiased", 0, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(vals, named) {
		t.Errorf("DiscretizeNamed: want %v, got %v", vals, named)
	}

	disc, err := f.Discretizer(discretize.Rounding, 0, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if labels := disc.Labels(); len(labels) != 10 || labels[1] != "x=0.5" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestDiscretizeErrors(t *testing.T) {
	calls := 0
	f := New(func(x float64) float64 {
		calls++
		return box(x)
	}, Bounds(-1, 1))

	if _, err := f.Discretize(nil, -1, 1, 4); !errors.Is(err, discretize.ErrInvalidDiscretizer) {
		t.Errorf("Discretize(nil): want ErrInvalidDiscretizer, got %v", err)
	}
	if _, err := f.Discretizer(nil, -1, 1, 4); !errors.Is(err, discretize.ErrInvalidDiscretizer) {
		t.Errorf("Discretizer(nil): want ErrInvalidDiscretizer, got %v", err)
	}
	_, err := f.DiscretizeNamed("bogus", -1, 1, 4)
	if !errors.Is(err, discretize.ErrInvalidDiscretizer) {
		t.Errorf("DiscretizeNamed(bogus): want ErrInvalidDiscretizer, got %v", err)
	} else if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the method", err)
	}
	if calls != 0 {
		t.Errorf("density called %d times before failing", calls)
	}

	// Errors from the method are passed through.
	if _, err := f.Discretize(discretize.Unbiased, 1, -1, 4); !errors.Is(err, discretize.ErrRange) {
		t.Errorf("want ErrRange, got %v", err)
	}
	if _, err := f.Discretize(discretize.Unbiased, -1, 1, 1); !errors.Is(err, discretize.ErrCardinality) {
		t.Errorf("want ErrCardinality, got %v", err)
	}
}

func TestDensityPanic(t *testing.T) {
	sentinel := errors.New("bad density")
	f := New(func(x float64) float64 { panic(sentinel) })

	check := func(name string, op func()) {
		t.Helper()
		defer func() {
			t.Helper()
			if r := recover(); r != sentinel {
				t.Errorf("%s: want panic %v, got %v", name, sentinel, r)
			}
		}()
		op()
	}
	check("PDF", func() { f.PDF(0) })
	check("CDF", func() { f.CDF(0) })
	check("Discretize", func() { f.Discretize(discretize.Rounding, 0, 1, 2) })
}

func BenchmarkDiscretize(b *testing.B) {
	f := New(distuv.UnitNormal.Prob)
	for _, name := range discretize.Names() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f.DiscretizeNamed(name, -3, 3, 20)
			}
		})
	}
}
