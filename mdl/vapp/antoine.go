// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapp

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Antoine implements Antoine's equation
//  ln P[mmHg] = A - B/(T + C)
type Antoine struct {
	A, B, C float64
}

// add model to factory
func init() {
	allocators["antoine"] = func() Model { return new(Antoine) }
}

// Init initialises model with keys antA, antB and antC
func (o *Antoine) Init(prms dbf.Params) (err error) {
	v, err := coefs("antoine", prms, "antA", "antB", "antC")
	if err != nil {
		return
	}
	o.A, o.B, o.C = v[0], v[1], v[2]
	return
}

// GetPrms gets (an example) of parameters (n-butane)
func (o Antoine) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "antA", V: 15.6782},
		&dbf.P{N: "antB", V: 2154.90},
		&dbf.P{N: "antC", V: -34.42},
	}
}

// P computes the vapour pressure
func (o Antoine) P(T float64) float64 {
	lnP := o.A - o.B/(T+o.C)
	if lnP < LnPMin {
		lnP = LnPFloor
	}
	return math.Exp(lnP) * MmHgToKPa
}

// T computes the saturation temperature
func (o Antoine) T(P float64) float64 {
	return o.B/(o.A-math.Log(P/MmHgToKPa)) - o.C
}
