// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. linear and quadratic rules")

	x := []float64{0.2, 0.3, 0.5}
	p := []float64{1.0, 4.0, 9.0}

	lin := LinearMolar(x, p)
	io.Pforan("lin = %v\n", lin)
	chk.Float64(tst, "Σ xi・pi", 1e-15, lin, 0.2+1.2+4.5)

	// with k = 0, Σ Σ √(pi pj) xi xj = (Σ xi √pi)²
	quad := QuadraticMolar(x, p, 0)
	sq := 0.2*1 + 0.3*2 + 0.5*3
	io.Pforan("quad = %v\n", quad)
	chk.Float64(tst, "quadratic k=0", 1e-14, quad, sq*sq)

	// binary interaction scales everything by (1-k)
	quadk := QuadraticMolar(x, p, 0.1)
	chk.Float64(tst, "quadratic k=0.1", 1e-14, quadk, 0.9*sq*sq)

	// cross term: Ai = √pi Σ xj √pj and Σ xi Ai = A
	Ai := QuadraticCrossTerm(x, p, 0)
	io.Pforan("Ai = %v\n", Ai)
	chk.Array(tst, "Ai", 1e-14, Ai, []float64{1 * sq, 2 * sq, 3 * sq})
	chk.Float64(tst, "Σ xi Ai == A", 1e-14, floats.Dot(x, Ai), quad)
}

func Test_mix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix02. normalisation")

	x := []float64{2, 0, 2}
	res := Normalize(x)
	io.Pforan("res = %v\n", res)
	chk.Float64(tst, "Σ res", 1e-15, floats.Sum(res), 1)
	chk.Float64(tst, "res[1]", 1e-15, res[1], MinFraction/(4+MinFraction))
	chk.Float64(tst, "x[1] untouched", 1e-15, x[1], 0)

	if !IsNormalized(res) {
		tst.Errorf("res should be normalized\n")
	}
	if IsNormalized(x) {
		tst.Errorf("x should not be normalized\n")
	}

	y := []float64{0.5, 0.5 + 1e-6}
	same := NormalizeIfNeeded(y)
	if &same[0] != &y[0] {
		tst.Errorf("NormalizeIfNeeded should return the input slice when within tolerance\n")
	}

	// zero fractions are floored even if the sum is one
	floored := NormalizeIfNeeded([]float64{0.5, 0.5, 0})
	io.Pforan("floored = %v\n", floored)
	chk.Float64(tst, "floored[2]", 1e-15, floored[2], MinFraction/(1+MinFraction))
	chk.Float64(tst, "Σ floored", 1e-15, floats.Sum(floored), 1)

	if !math.IsNaN(LinearMolar(nil, nil)) {
		tst.Errorf("LinearMolar of empty input should be NaN\n")
	}
	if !math.IsNaN(QuadraticMolar(nil, nil, 0)) {
		tst.Errorf("QuadraticMolar of empty input should be NaN\n")
	}
}
