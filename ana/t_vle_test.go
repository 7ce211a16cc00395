// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vle01. binary Rachford-Rice")

	z := []float64{0.4, 0.6}
	for _, K := range [][]float64{{2.5, 0.3}, {1.5, 0.8}, {10, 0.05}} {
		Fa := RRBinary(K, z)
		Fb := RRBisection(K, z, 1e-14)
		io.Pforan("K = %v  F = %v  F(bisection) = %v\n", K, Fa, Fb)
		chk.Float64(tst, "F", 1e-12, Fa, Fb)
	}

	// saturated
	chk.Float64(tst, "all liquid", 1e-15, RRBisection([]float64{0.5, 0.2}, z, 1e-10), 0)
	chk.Float64(tst, "all vapour", 1e-15, RRBisection([]float64{1.5, 2.0}, z, 1e-10), 1)
}

func Test_vle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vle02. Raoult's law")

	pvap := []float64{2692, 580.6, 132.9, 33.1, 8.63}
	z := []float64{0.05, 0.15, 0.25, 0.20, 0.35}

	Pb := IdealBubbleP(pvap, z)
	Pd := IdealDewP(pvap, z)
	io.Pforan("Pbubble = %v  Pdew = %v\n", Pb, Pd)

	// Σ zi・Ki = 1 at the bubble point
	Kb := IdealK(pvap, Pb)
	chk.Float64(tst, "Σ z K", 1e-14, floats.Dot(z, Kb), 1)

	// Σ zi/Ki = 1 at the dew point
	Kd := IdealK(pvap, Pd)
	sum := 0.0
	for i := range z {
		sum += z[i] / Kd[i]
	}
	chk.Float64(tst, "Σ z/K", 1e-14, sum, 1)

	// vapour fraction is zero at the bubble point and one at the dew point
	chk.Float64(tst, "F(Pb)", 1e-8, RRBisection(Kb, z, 1e-14), 0)
	chk.Float64(tst, "F(Pd)", 1e-8, RRBisection(Kd, z, 1e-14), 1)
}
