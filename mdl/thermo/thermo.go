// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements ideal gas properties of pure components
//  Cp = a + b・T + c・T² + d・T³   [J/(mol・K)]
//  H  = ∫ Cp dT     from Tref to T [J/mol]
//  S  = ∫ Cp/T dT   from Tref to T [J/(mol・K)]
//  and the heat of vaporisation of a component from Watson's correlation
package thermo

import (
	"math"

	"github.com/cpmech/goflash/comp"
)

// reference state
const (
	Tref = 298.15  // temperature [K]
	Pref = 101.325 // pressure [kPa]; used by the entropy of mixtures
)

// Cp computes the ideal gas heat capacity
func Cp(c *comp.Component, T float64) float64 {
	a, b, cc, d := c.Cp[0], c.Cp[1], c.Cp[2], c.Cp[3]
	return a + T*(b+T*(cc+T*d))
}

// H computes the ideal gas enthalpy relative to Tref
func H(c *comp.Component, T float64) float64 {
	return h(c, T) - h(c, Tref)
}

// S computes the ideal gas entropy relative to Tref (at constant pressure)
func S(c *comp.Component, T float64) float64 {
	a, b, cc, d := c.Cp[0], c.Cp[1], c.Cp[2], c.Cp[3]
	return a*math.Log(T/Tref) + b*(T-Tref) + cc*(T*T-Tref*Tref)/2 + d*(T*T*T-Tref*Tref*Tref)/3
}

// WatsonExponent is the exponent of the Watson correlation
const WatsonExponent = 0.38

// Watson computes the heat of vaporisation at T from the value at the normal boiling point
//  Hv(T) = Hv(Tb)・|(T - Tc)/(Tb - Tc)|^0.38
//  Note: returns 0 if Hv or Tb are not available or if T >= Tc
func Watson(c *comp.Component, T float64) float64 {
	if c.Hv <= 0 || c.Tb <= 0 || c.Tb >= c.Tc || T >= c.Tc {
		return 0
	}
	return c.Hv * math.Pow((c.Tc-T)/(c.Tc-c.Tb), WatsonExponent)
}

// Hs computes the ideal gas enthalpies of all components
func Hs(comps []*comp.Component, T float64) (res []float64) {
	res = make([]float64, len(comps))
	for i, c := range comps {
		res[i] = H(c, T)
	}
	return
}

// h is the primitive of Cp
func h(c *comp.Component, T float64) float64 {
	a, b, cc, d := c.Cp[0], c.Cp[1], c.Cp[2], c.Cp[3]
	return T * (a + T*(b/2+T*(cc/3+T*d/4)))
}
