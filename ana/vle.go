// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference solutions for vapour-liquid equilibrium problems
package ana

import "gonum.org/v1/gonum/floats"

// RRBinary computes the vapour fraction of a binary mixture in closed form
//  Σ zi・ai/(1 + F・ai) = 0   with   ai = Ki - 1
//  gives:
//  F = -(z1・a1 + z2・a2) / (a1・a2・(z1 + z2))
func RRBinary(K, z []float64) float64 {
	a1, a2 := K[0]-1, K[1]-1
	return -(z[0]*a1 + z[1]*a2) / (a1 * a2 * (z[0] + z[1]))
}

// RRBisection solves the Rachford-Rice equation by bisection within [0, 1]
//  Note: returns 0 if the mixture is all liquid and 1 if it is all vapour
func RRBisection(K, z []float64, tol float64) float64 {
	f := func(F float64) (res float64) {
		for i := 0; i < len(z); i++ {
			res += z[i] * (K[i] - 1) / (1 + F*(K[i]-1))
		}
		return
	}
	a, b := 0.0, 1.0
	if f(a) <= 0 {
		return a
	}
	if f(b) >= 0 {
		return b
	}
	for b-a > tol {
		c := (a + b) / 2
		if f(c) > 0 {
			a = c
		} else {
			b = c
		}
	}
	return (a + b) / 2
}

// IdealBubbleP computes the bubble point pressure of an ideal solution (Raoult's law)
//  P = Σ zi・Pvap_i
func IdealBubbleP(pvap, z []float64) float64 {
	return floats.Dot(z, pvap)
}

// IdealDewP computes the dew point pressure of an ideal solution (Raoult's law)
//  1/P = Σ zi/Pvap_i
func IdealDewP(pvap, z []float64) float64 {
	sum := 0.0
	for i := range z {
		sum += z[i] / pvap[i]
	}
	return 1.0 / sum
}

// IdealK computes K-values of an ideal solution: Ki = Pvap_i / P
func IdealK(pvap []float64, P float64) (K []float64) {
	K = make([]float64, len(pvap))
	for i, p := range pvap {
		K[i] = p / P
	}
	return
}
