// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mix implements mixing rules and helpers for mole-fraction vectors
//  The mixing rules combine pure component EOS parameters (p) into mixture values
//  using a composition (x) with the same ordering:
//   linear:     Σ xi・pi
//   quadratic:  Σi Σj (1-k)・√(pi・pj)・xi・xj
//   cross term: Σj (1-k)・xj・√(pi・pj)    (one value per component i)
package mix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// constants
const (
	MinFraction = 1e-8 // smallest mole fraction; smaller values are floored
	SumTol      = 1e-5 // tolerance on |Σx - 1|
)

// LinearMolar computes Σ xi・pi; e.g. for the covolume B and the molecular weight
//  Note: returns NaN if x is empty
func LinearMolar(x, p []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Dot(x, p)
}

// QuadraticMolar computes Σi Σj (1-k)・√(pi・pj)・xi・xj; e.g. for the mixture attraction A
func QuadraticMolar(x, p []float64, k float64) (res float64) {
	if len(x) == 0 {
		return math.NaN()
	}
	for i := 0; i < len(p); i++ {
		for j := 0; j < len(p); j++ {
			res += (1 - k) * math.Sqrt(p[i]*p[j]) * x[i] * x[j]
		}
	}
	return
}

// QuadraticCrossTerm computes Ai = Σj (1-k)・xj・√(pi・pj) for each component i
func QuadraticCrossTerm(x, p []float64, k float64) (res []float64) {
	res = make([]float64, len(p))
	for i := 0; i < len(p); i++ {
		for j := 0; j < len(p); j++ {
			res[i] += (1 - k) * x[j] * math.Sqrt(p[i]*p[j])
		}
	}
	return
}

// QuadraticMolarDeriv computes the derivative of QuadraticMolar when each pi depends on a
// variable (e.g. temperature) with derivatives dpi
//  d/dθ Σi Σj (1-k)・√(pi・pj)・xi・xj = Σi Σj (1-k)・xi・xj・(dpi・pj + pi・dpj) / (2・√(pi・pj))
func QuadraticMolarDeriv(x, p, dp []float64, k float64) (res float64) {
	for i := 0; i < len(p); i++ {
		for j := 0; j < len(p); j++ {
			den := 2.0 * math.Sqrt(p[i]*p[j])
			if den > 0 {
				res += (1 - k) * x[i] * x[j] * (dp[i]*p[j] + p[i]*dp[j]) / den
			}
		}
	}
	return
}

// QuadraticMolarDeriv2 computes the second derivative of QuadraticMolar with g = √(pi・pj)
//  g'' = (dpi'・pj + 2・dpi・dpj + pi・dpj') / (2g) - (dpi・pj + pi・dpj)² / (4g³)
func QuadraticMolarDeriv2(x, p, dp, d2p []float64, k float64) (res float64) {
	for i := 0; i < len(p); i++ {
		for j := 0; j < len(p); j++ {
			g := math.Sqrt(p[i] * p[j])
			if g > 0 {
				d := dp[i]*p[j] + p[i]*dp[j]
				res += (1 - k) * x[i] * x[j] * ((d2p[i]*p[j]+2*dp[i]*dp[j]+p[i]*d2p[j])/(2*g) - d*d/(4*g*g*g))
			}
		}
	}
	return
}

// Normalize floors all fractions at MinFraction and scales the result to unit sum
//  Note: x is not modified
func Normalize(x []float64) (res []float64) {
	res = make([]float64, len(x))
	for i, v := range x {
		res[i] = math.Max(v, MinFraction)
	}
	floats.Scale(1.0/floats.Sum(res), res)
	return
}

// NormalizeIfNeeded calls Normalize only if a fraction is below MinFraction or the sum
// deviates from one by more than SumTol; otherwise x is returned
func NormalizeIfNeeded(x []float64) []float64 {
	if IsNormalized(x) && floats.Min(x) >= MinFraction {
		return x
	}
	return Normalize(x)
}

// IsNormalized tells whether |Σx - 1| <= SumTol
func IsNormalized(x []float64) bool {
	return math.Abs(floats.Sum(x)-1.0) <= SumTol
}
