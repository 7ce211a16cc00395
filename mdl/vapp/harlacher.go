// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapp

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Harlacher implements Harlacher's equation
//  ln P = A + B/T + C・ln T + D・P/T²    with P in mmHg
type Harlacher struct {
	A, B, C, D float64

	// settings
	NmaxIt int     // max number of iterations
	TolP   float64 // tolerance on |ΔP| [mmHg] of the fixed point iterations
	TolT   float64 // tolerance on the residual of ln P for T(P)
}

// add model to factory
func init() {
	allocators["harlacher"] = func() Model { return new(Harlacher) }
}

// Init initialises model with keys harA, harB, harC and harD
func (o *Harlacher) Init(prms dbf.Params) (err error) {
	o.NmaxIt, o.TolP, o.TolT = 20, 1.0, 1e-3
	v, err := coefs("harlacher", prms, "harA", "harB", "harC", "harD")
	if err != nil {
		return
	}
	o.A, o.B, o.C, o.D = v[0], v[1], v[2], v[3]
	return
}

// GetPrms gets (an example) of parameters
func (o Harlacher) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "harA", V: 20.0},
		&dbf.P{N: "harB", V: -4000.0},
		&dbf.P{N: "harC", V: -0.5},
		&dbf.P{N: "harD", V: 1.0},
	}
}

// P computes the vapour pressure by fixed point iterations
func (o Harlacher) P(T float64) float64 {
	lnP0 := o.A + o.B/T + o.C*math.Log(T)
	T2 := T * T
	P := math.Exp(lnP0)
	for it := 0; it < o.NmaxIt; it++ {
		Pnew := math.Exp(lnP0 + o.D*P/T2)
		if math.Abs(Pnew-P) <= o.TolP {
			P = Pnew
			break
		}
		P = Pnew
	}
	return P * MmHgToKPa
}

// T computes the saturation temperature using Newton's method
func (o Harlacher) T(P float64) float64 {
	P /= MmHgToKPa
	lnP := math.Log(P)
	T := o.B / (lnP - o.A)
	for it := 0; it < o.NmaxIt; it++ {
		g := o.A + o.B/T + o.C*math.Log(T) + o.D*P/(T*T) - lnP
		if math.Abs(g) <= o.TolT {
			break
		}
		dgdT := -o.B/(T*T) + o.C/T - 2*o.D*P/(T*T*T)
		T -= g / dgdT
	}
	return T
}
