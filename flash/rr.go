// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"math"

	"github.com/cpmech/goflash/mdl/mix"
)

// constants used by the Rachford-Rice solver
const (
	NmaxRR   = 30          // max number of Newton steps
	TolRR    = 1e-8        // tolerance on |f(F)|
	FracInit = 0.5         // default starting vapour fraction
	FracLow  = 1e-6        // F <= FracLow is considered all liquid
	FracMin  = 1e-12       // stored vapour fraction of all liquid results
	FracHigh = 0.99999     // F >= FracHigh is considered all vapour
	FracMax  = 1 - FracMin // stored vapour fraction of all vapour results
)

// RRFunc computes the Rachford-Rice function and its derivative
//  f(F)  =  Σ zi・(Ki-1) / (1 + F・(Ki-1))
//  f'(F) = -Σ zi・(Ki-1)² / (1 + F・(Ki-1))²
func RRFunc(K, z []float64, F float64) (f, df float64) {
	for i := 0; i < len(z); i++ {
		km1 := K[i] - 1
		den := 1 + F*km1
		f += z[i] * km1 / den
		df -= z[i] * km1 * km1 / (den * den)
	}
	return
}

// RachfordRice solves the Rachford-Rice equation for the vapour fraction F and recovers the
// liquid (x) and vapour (y) compositions
//  F0 -- starting vapour fraction; values outside (0,1) select FracInit
//  Note: results that fall outside (FracLow, FracHigh) are clamped to FracMin or FracMax
//  Note: the Newton steps are not bracketed. With widely spread K-values and a starting value
//  far from the solution, F may jump past an asymptote F = 1/(1-Ki) and be clamped although a
//  root in (0,1) exists; e.g. K = {100, 0.5}, z = {0.05, 0.95} from F0 = 0.5 gives FracMin
//  whereas the root is F = 0.0904. Warm starts from the previous iteration avoid this in the
//  flash loop; ana.RRBisection gives a bracketed solution
func RachfordRice(K, z []float64, F0 float64) (F float64, x, y []float64) {

	// single component at equilibrium
	if len(z) == 1 && K[0] == 1 {
		return 1, []float64{1}, []float64{1}
	}

	// trivial solution
	trivial := true
	for _, k := range K {
		if k != 1 {
			trivial = false
			break
		}
	}
	if trivial {
		return 1, cp(z), cp(z)
	}

	// Newton-Raphson
	F = F0
	if !(F > 0 && F < 1) {
		F = FracInit
	}
	for it := 0; it < NmaxRR; it++ {
		f, df := RRFunc(K, z, F)
		if math.Abs(f) <= TolRR || df == 0 {
			break
		}
		Fnew := F - f/df
		if math.IsNaN(Fnew) || math.IsInf(Fnew, 0) {
			break
		}
		F = Fnew
	}

	// compositions
	n := len(z)
	x = make([]float64, n)
	y = make([]float64, n)
	switch {
	case F <= FracLow:
		F = FracMin
		for i := 0; i < n; i++ {
			x[i] = z[i]
			y[i] = K[i] * z[i] / (1 + FracLow*(K[i]-1))
		}
		y = mix.NormalizeIfNeeded(y)
	case F >= FracHigh:
		F = FracMax
		for i := 0; i < n; i++ {
			y[i] = z[i]
			x[i] = z[i] / (1 + FracHigh*(K[i]-1))
		}
		x = mix.NormalizeIfNeeded(x)
	default:
		for i := 0; i < n; i++ {
			x[i] = z[i] / (1 + F*(K[i]-1))
			y[i] = K[i] * x[i]
		}
		x = mix.NormalizeIfNeeded(x)
		y = mix.NormalizeIfNeeded(y)
	}
	return
}
