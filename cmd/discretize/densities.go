// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// A family is a parametric density. Only its density is handed to
// the factor; everything else is computed numerically.
type family struct {
	params   []string
	defaults []float64

	// low is the lower end of the family's natural support.
	low   float64
	build func(p []float64) (func(float64) float64, error)
}

var families = map[string]family{
	"normal": {
		params: []string{"mu", "sigma"}, defaults: []float64{0, 1}, low: math.Inf(-1),
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("sigma", p[1]); err != nil {
				return nil, err
			}
			return distuv.Normal{Mu: p[0], Sigma: p[1]}.Prob, nil
		},
	},
	"exponential": {
		params: []string{"rate"}, defaults: []float64{1}, low: 0,
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("rate", p[0]); err != nil {
				return nil, err
			}
			return distuv.Exponential{Rate: p[0]}.Prob, nil
		},
	},
	"uniform": {
		params: []string{"min", "max"}, defaults: []float64{0, 1}, low: math.Inf(-1),
		build: func(p []float64) (func(float64) float64, error) {
			if !(p[0] < p[1]) {
				return nil, fmt.Errorf("min %v must be less than max %v", p[0], p[1])
			}
			return distuv.Uniform{Min: p[0], Max: p[1]}.Prob, nil
		},
	},
	"gamma": {
		params: []string{"alpha", "beta"}, defaults: []float64{1, 1}, low: 0,
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("alpha", p[0]); err != nil {
				return nil, err
			}
			if err := positive("beta", p[1]); err != nil {
				return nil, err
			}
			return distuv.Gamma{Alpha: p[0], Beta: p[1]}.Prob, nil
		},
	},
	"laplace": {
		params: []string{"mu", "scale"}, defaults: []float64{0, 1}, low: math.Inf(-1),
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("scale", p[1]); err != nil {
				return nil, err
			}
			return distuv.Laplace{Mu: p[0], Scale: p[1]}.Prob, nil
		},
	},
	"logistic": {
		params: []string{"mu", "s"}, defaults: []float64{0, 1}, low: math.Inf(-1),
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("s", p[1]); err != nil {
				return nil, err
			}
			return distuv.Logistic{Mu: p[0], S: p[1]}.Prob, nil
		},
	},
	"lognormal": {
		params: []string{"mu", "sigma"}, defaults: []float64{0, 1}, low: 0,
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("sigma", p[1]); err != nil {
				return nil, err
			}
			return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.Prob, nil
		},
	},
	"weibull": {
		params: []string{"k", "lambda"}, defaults: []float64{1, 1}, low: 0,
		build: func(p []float64) (func(float64) float64, error) {
			if err := positive("k", p[0]); err != nil {
				return nil, err
			}
			if err := positive("lambda", p[1]); err != nil {
				return nil, err
			}
			return distuv.Weibull{K: p[0], Lambda: p[1]}.Prob, nil
		},
	},
}

func positive(name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("parameter %s must be positive, got %v", name, v)
	}
	return nil
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// density returns the density of the named family with the given
// parameters, and the lower end of its support.
func density(name string, params map[string]string) (func(float64) float64, float64, error) {
	fam, ok := families[name]
	if !ok {
		return nil, 0, fmt.Errorf("unknown density %q (want one of %s)", name, strings.Join(familyNames(), ", "))
	}
	p := append([]float64(nil), fam.defaults...)
	for key, val := range params {
		i := indexOf(fam.params, key)
		if i < 0 {
			return nil, 0, fmt.Errorf("density %s has no parameter %q (want %s)", name, key, strings.Join(fam.params, ", "))
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("parameter %s: %w", key, err)
		}
		p[i] = v
	}
	pdf, err := fam.build(p)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	return pdf, fam.low, nil
}

func indexOf(xs []string, x string) int {
	for i, y := range xs {
		if x == y {
			return i
		}
	}
	return -1
}
