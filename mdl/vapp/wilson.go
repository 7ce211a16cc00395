// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Wilson implements Wilson's correlation based on the critical point and acentric factor
//  P = Pc・exp(5.373・(1+ω)・(1 - Tc/T))
type Wilson struct {
	Tc, Pc, Omega float64
}

// add model to factory
func init() {
	allocators["wilson"] = func() Model { return new(Wilson) }
}

// Init initialises model with keys Tc, Pc and omega
func (o *Wilson) Init(prms dbf.Params) (err error) {
	v, err := coefs("wilson", prms, "Tc", "Pc", "omega")
	if err != nil {
		return
	}
	o.Tc, o.Pc, o.Omega = v[0], v[1], v[2]
	if o.Tc <= 0 || o.Pc <= 0 {
		return chk.Err("wilson: Tc and Pc must be positive. Tc = %g, Pc = %g are invalid\n", o.Tc, o.Pc)
	}
	return
}

// GetPrms gets (an example) of parameters (n-butane)
func (o Wilson) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Tc", V: 425.2},
		&dbf.P{N: "Pc", V: 3800.0},
		&dbf.P{N: "omega", V: 0.199},
	}
}

// P computes the vapour pressure
func (o Wilson) P(T float64) float64 {
	return o.Pc * math.Exp(5.373*(1+o.Omega)*(1-o.Tc/T))
}

// T computes the saturation temperature
func (o Wilson) T(P float64) float64 {
	return o.Tc / (1 - math.Log(P/o.Pc)/(5.373*(1+o.Omega)))
}
