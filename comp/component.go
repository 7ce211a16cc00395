// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package comp implements the pure-component property record consumed by flash computations
package comp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// R is the universal gas constant [kPa・L/(mol・K)] == [J/(mol・K)]
const R = 8.314

// Component holds the constant properties of a pure component
//  Units:
//   Tc, Tb [K]; Pc [kPa]; Vc [cm³/mol]; MolWt [g/mol]; LiqDen [g/cm³]
//   Cp = a + b・T + c・T² + d・T³ [J/(mol・K)]; Hv [J/mol]
type Component struct {

	// essential
	Name  string  // name of component; e.g. "N-BUTANE"
	Tc    float64 // critical temperature
	Pc    float64 // critical pressure
	Vc    float64 // critical volume
	Omega float64 // acentric factor
	MolWt float64 // molecular weight

	// optional
	Tb     float64    // normal boiling temperature
	LiqDen float64    // liquid density at reference temperature
	Hv     float64    // heat of vaporisation at Tb
	Cp     [4]float64 // ideal gas heat capacity coefficients

	// all parameters; EOS families and vapour pressure correlations look for their own keys
	Prms dbf.Params
}

// Init initialises this structure
func (o *Component) Init(name string, prms dbf.Params) (err error) {
	*o = Component{}
	o.Name = name
	o.Prms = prms
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tc":
			o.Tc = p.V
		case "pc":
			o.Pc = p.V
		case "vc":
			o.Vc = p.V
		case "omega", "w":
			o.Omega = p.V
		case "molwt", "mw":
			o.MolWt = p.V
		case "tb":
			o.Tb = p.V
		case "liqden":
			o.LiqDen = p.V
		case "hv":
			o.Hv = p.V
		case "cpa":
			o.Cp[0] = p.V
		case "cpb":
			o.Cp[1] = p.V
		case "cpc":
			o.Cp[2] = p.V
		case "cpd":
			o.Cp[3] = p.V
		}
	}
	if o.Tc <= 0 {
		return chk.Err("component %q: critical temperature Tc must be positive. Tc = %g is invalid", name, o.Tc)
	}
	if o.Pc <= 0 {
		return chk.Err("component %q: critical pressure Pc must be positive. Pc = %g is invalid", name, o.Pc)
	}
	return
}

// Get returns the value of a parameter (case insensitive) and whether it was found
func (o Component) Get(key string) (val float64, found bool) {
	for _, p := range o.Prms {
		if strings.EqualFold(p.N, key) {
			return p.V, true
		}
	}
	return
}

// Zc returns the critical compressibility factor
func (o Component) Zc() float64 {
	return o.Pc * (o.Vc / 1000.0) / (R * o.Tc)
}

// GetPrms gets an example of parameters (n-butane)
func GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Tc", V: 425.2},      // [K]
		&dbf.P{N: "Pc", V: 3800.0},     // [kPa]
		&dbf.P{N: "Vc", V: 255.0},      // [cm³/mol]
		&dbf.P{N: "omega", V: 0.199},   // [-]
		&dbf.P{N: "molwt", V: 58.124},  // [g/mol]
		&dbf.P{N: "Tb", V: 272.7},      // [K]
		&dbf.P{N: "cpA", V: 9.487},     // [J/(mol・K)]
		&dbf.P{N: "cpB", V: 3.313e-1},  // [J/(mol・K²)]
		&dbf.P{N: "cpC", V: -1.108e-4}, // [J/(mol・K³)]
		&dbf.P{N: "cpD", V: -2.822e-9}, // [J/(mol・K⁴)]
		&dbf.P{N: "antA", V: 15.6782},  // ln(mmHg)
		&dbf.P{N: "antB", V: 2154.90},  // [K]
		&dbf.P{N: "antC", V: -34.42},   // [K]
		&dbf.P{N: "Hv", V: 22440},      // [J/mol]
	}
}

// Values collects one property over a list of components
//  Example: Tc := comp.Values(comps, func(c *Component) float64 { return c.Tc })
func Values(comps []*Component, getter func(c *Component) float64) (res []float64) {
	res = make([]float64, len(comps))
	for i, c := range comps {
		res[i] = getter(c)
	}
	return
}
