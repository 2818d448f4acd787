// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements continuous distributions that are
// described only by their probability density function.
//
// Everything other than the density (cumulative distribution,
// quantiles, moments, random variates) is derived numerically from
// it, so any function that is non-negative and integrates to 1 over
// its support can be used as a distribution.
package stats // import "github.com/go-pgm/contfactor/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
