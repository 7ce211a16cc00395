// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/goflash/comp"
)

// RK implements the Redlich-Kwong equation of state
//  P = RT/(V-b) - a/(√T・V・(V+b))
//  with α(T) = 1/√T. Two variants are registered:
//   "rk"  -- fugacity cross term 2Ai/A
//   "rks" -- fugacity cross term 2√(Ai/A)
type RK struct {
	base
}

// add families to factory
func init() {
	allocators["rk"] = func() Family {
		o := new(RK)
		o.name, o.shape = "rk", RKShape
		o.defaults = Settings{NmaxIt: 10, Tol: 1e-8, Seed: true}
		o.settings = o.defaults
		return o
	}
	allocators["rks"] = func() Family {
		o := new(RK)
		o.name, o.shape, o.geometric = "rks", RKShape, true
		o.defaults = Settings{NmaxIt: 10, Tol: 1e-10, Seed: true}
		o.settings = o.defaults
		return o
	}
}

// Attraction returns ac; key "rkac" or 0.42748・R²・Tc^2.5/Pc
func (o RK) Attraction(c *comp.Component) float64 {
	return param(c, "rkac", 0.42748*comp.R*comp.R*math.Pow(c.Tc, 2.5)/c.Pc)
}

// Covolume returns b; key "rkb" or 0.08664・R・Tc/Pc
func (o RK) Covolume(c *comp.Component) float64 {
	return param(c, "rkb", 0.08664*comp.R*c.Tc/c.Pc)
}

// Alpha returns 1/√T
func (o RK) Alpha(T float64, c *comp.Component) float64 {
	return 1.0 / math.Sqrt(T)
}

// DalphaDT returns -1/(2・T^1.5)
func (o RK) DalphaDT(T float64, c *comp.Component) float64 {
	return -0.5 / (T * math.Sqrt(T))
}

// D2alphaDT2 returns 3/(4・T^2.5)
func (o RK) D2alphaDT2(T float64, c *comp.Component) float64 {
	return 0.75 / (T * T * math.Sqrt(T))
}
