// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/go-pgm/contfactor/stats"
)

const (
	plotRows  = 20
	plotWidth = 60
)

// FprintPDF prints a sideways bar chart of dist's PDF over its
// Bounds to w, one row per sampled point.
func FprintPDF(w io.Writer, dist stats.Dist) error {
	low, high := dist.Bounds()
	xs := floats.Span(make([]float64, plotRows), low, high)
	ys := dist.PDFEach(xs)
	// Scale to the largest finite density.
	peak := 0.0
	for _, y := range ys {
		if !math.IsInf(y, 0) && y > peak {
			peak = y
		}
	}
	if peak == 0 {
		_, err := fmt.Fprintln(w, "(density is zero everywhere)")
		return err
	}
	for i, x := range xs {
		n := 0
		switch y := ys[i]; {
		case math.IsInf(y, 1):
			n = plotWidth
		case y > 0:
			n = int(math.Min(y/peak, 1)*plotWidth + 0.5)
		}
		if _, err := fmt.Fprintf(w, "%10.4g %s\n", x, strings.Repeat("*", n)); err != nil {
			return err
		}
	}
	return nil
}
