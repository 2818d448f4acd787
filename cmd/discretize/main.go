// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// discretize builds a continuous factor from a parametric density,
// describes the resulting distribution, and prints its discretization
// into a fixed number of probability masses.
//
// Usage:
//
//	discretize -d gamma -p alpha=2 -p beta=1 -m unbiased --low 0 --high 8 -n 9
//
// Only the density of the named family is used; the CDF, quantiles,
// moments and random variates are all computed numerically from it.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat"

	"github.com/go-pgm/contfactor/continuous"
	"github.com/go-pgm/contfactor/continuous/discretize"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	density     string
	params      map[string]string
	lb, ub      float64
	method      string
	low, high   float64
	cardinality int
	draws       int
	seed        uint64
	plot        bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	var o options
	fs := pflag.NewFlagSet("discretize", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.density, "density", "d", "normal", "density family ("+strings.Join(familyNames(), ", ")+")")
	fs.StringToStringVarP(&o.params, "param", "p", nil, "density parameter as key=value (repeatable)")
	fs.Float64Var(&o.lb, "lb", math.Inf(-1), "lower bound of the support (default: the family's)")
	fs.Float64Var(&o.ub, "ub", math.Inf(1), "upper bound of the support")
	fs.StringVarP(&o.method, "method", "m", "unbiased", "discretization method ("+strings.Join(discretize.Names(), ", ")+")")
	fs.Float64Var(&o.low, "low", 0, "lower end of the discretization range (default: lower plotting bound)")
	fs.Float64Var(&o.high, "high", 0, "upper end of the discretization range (default: upper plotting bound)")
	fs.IntVarP(&o.cardinality, "cardinality", "n", 10, "number of probability masses")
	fs.IntVar(&o.draws, "draws", 0, "number of random variates to draw and describe")
	fs.Uint64Var(&o.seed, "seed", 1, "seed of the random source")
	fs.BoolVar(&o.plot, "plot", true, "plot the density")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: discretize [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return &o, fs, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	pdf, familyLow, err := density(o.density, o.params)
	if err != nil {
		return err
	}
	lb := o.lb
	if !fs.Changed("lb") {
		lb = familyLow
	}
	src := prng.NewMT19937()
	src.Seed(o.seed)
	f := continuous.New(pdf, continuous.Bounds(lb, o.ub), continuous.Source(src))

	fmt.Fprintf(stdout, "mean %.6g  std dev %.6g  variance %.6g\n", f.Mean(), f.StdDev(), f.Variance())
	fmt.Fprintln(stdout)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(stdout, "%8s %.6g\n", label, f.InvCDF(float64(p)/100))
	}
	fmt.Fprintln(stdout)

	if o.draws > 0 {
		xs := make([]float64, o.draws)
		for i := range xs {
			xs[i] = f.Rand()
		}
		mean, std := stat.MeanStdDev(xs, nil)
		fmt.Fprintf(stdout, "draws %d  mean %.6g  std dev %.6g  min %.6g  max %.6g\n",
			len(xs), mean, std, floats.Min(xs), floats.Max(xs))
		fmt.Fprintln(stdout)
	}

	if o.plot {
		FprintPDF(stdout, f)
		fmt.Fprintln(stdout)
	}

	low, high := f.Bounds()
	if fs.Changed("low") {
		low = o.low
	}
	if fs.Changed("high") {
		high = o.high
	}
	method, err := discretize.Lookup(o.method)
	if err != nil {
		return err
	}
	disc, err := f.Discretizer(method, low, high, o.cardinality)
	if err != nil {
		return err
	}
	vals := disc.DiscreteValues()
	for i, label := range disc.Labels() {
		fmt.Fprintf(stdout, "%10s %.6g\n", label, vals[i])
	}
	fmt.Fprintf(stdout, "%10s %.6g\n", "total", floats.Sum(vals))
	return nil
}
