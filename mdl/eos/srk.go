// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/cpmech/goflash/comp"

// SRK implements the Soave-Redlich-Kwong equation of state
//  α(T) = [1 + m(1-√Tr)]²   with   m = 0.48 + 1.574ω - 0.176ω²
type SRK struct {
	base
}

// add family to factory
func init() {
	allocators["srk"] = func() Family {
		o := new(SRK)
		o.name, o.shape = "srk", RKShape
		o.defaults = Settings{NmaxIt: 20, Tol: 1e-10, Seed: true}
		o.settings = o.defaults
		return o
	}
}

// M returns the slope of the α function
func (o SRK) M(ω float64) float64 {
	return 0.48 + 1.574*ω - 0.176*ω*ω
}

// Attraction returns ac; key "srkac" or 0.42748・R²・Tc²/Pc
func (o SRK) Attraction(c *comp.Component) float64 {
	return param(c, "srkac", 0.42748*comp.R*comp.R*c.Tc*c.Tc/c.Pc)
}

// Covolume returns b; key "rkb" or 0.08664・R・Tc/Pc
func (o SRK) Covolume(c *comp.Component) float64 {
	return param(c, "rkb", 0.08664*comp.R*c.Tc/c.Pc)
}

// Alpha returns α(T)
func (o SRK) Alpha(T float64, c *comp.Component) float64 {
	α, _, _ := soave(o.M(c.Omega), T, c.Tc)
	return α
}

// DalphaDT returns dα/dT
func (o SRK) DalphaDT(T float64, c *comp.Component) float64 {
	_, dαdT, _ := soave(o.M(c.Omega), T, c.Tc)
	return dαdT
}

// D2alphaDT2 returns d²α/dT²
func (o SRK) D2alphaDT2(T float64, c *comp.Component) float64 {
	_, _, d2αdT2 := soave(o.M(c.Omega), T, c.Tc)
	return d2αdT2
}
