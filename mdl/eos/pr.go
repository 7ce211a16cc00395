// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/cpmech/goflash/comp"

// PR implements the Peng-Robinson equation of state
//  P = RT/(V-b) - a・α/(V² + 2bV - b²)
//  α(T) = [1 + m(1-√Tr)]²   with
//   m = 0.37464 + 1.54226ω - 0.26992ω²                  if ω < 0.5
//   m = 0.3796 + 1.4850ω - 0.1644ω² + 0.01666ω³         otherwise
type PR struct {
	base
}

// add family to factory
func init() {
	allocators["pr"] = func() Family {
		o := new(PR)
		o.name, o.shape = "pr", PRShape
		o.defaults = Settings{NmaxIt: 3, Tol: 1e-10}
		o.settings = o.defaults
		return o
	}
}

// M returns the slope of the α function
func (o PR) M(ω float64) float64 {
	if ω < 0.5 {
		return 0.37464 + 1.54226*ω - 0.26992*ω*ω
	}
	return 0.3796 + 1.4850*ω - 0.1644*ω*ω + 0.01666*ω*ω*ω
}

// Attraction returns ac; key "prac" or 0.45724・R²・Tc²/Pc
func (o PR) Attraction(c *comp.Component) float64 {
	return param(c, "prac", 0.45724*comp.R*comp.R*c.Tc*c.Tc/c.Pc)
}

// Covolume returns b; key "prb" or 0.07780・R・Tc/Pc
func (o PR) Covolume(c *comp.Component) float64 {
	return param(c, "prb", 0.07780*comp.R*c.Tc/c.Pc)
}

// Alpha returns α(T)
func (o PR) Alpha(T float64, c *comp.Component) float64 {
	α, _, _ := soave(o.M(c.Omega), T, c.Tc)
	return α
}

// DalphaDT returns dα/dT
func (o PR) DalphaDT(T float64, c *comp.Component) float64 {
	_, dαdT, _ := soave(o.M(c.Omega), T, c.Tc)
	return dαdT
}

// D2alphaDT2 returns d²α/dT²
func (o PR) D2alphaDT2(T float64, c *comp.Component) float64 {
	_, _, d2αdT2 := soave(o.M(c.Omega), T, c.Tc)
	return d2αdT2
}
