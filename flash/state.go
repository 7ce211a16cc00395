// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"math"

	"github.com/cpmech/goflash/mdl/mix"
)

// Pair holds one evaluation of the specification search
type Pair struct {
	Guess  float64 // T or P
	Result float64 // FracVap or H
}

// State holds the results of one flash
//  Units: T [K]; P [kPa]; V [L/mol]; MolWt [g/mol]; Den [g/L]; H [J/mol]; S, Cp [J/(mol・K)]
type State struct {

	// conditions
	T    float64   // temperature
	P    float64   // pressure
	Feed []float64 // feed composition z

	// phases
	X       []float64 // liquid composition
	Y       []float64 // vapour composition
	K       []float64 // K-values = y/x = φL/φV
	FracVap float64   // vapour fraction

	// compressibility factors
	Zl  float64   // liquid root of the mixture
	Zv  float64   // vapour root of the mixture
	Z   float64   // FracVap・Zv + (1-FracVap)・Zl
	Zli []float64 // liquid roots of pure components
	Zvi []float64 // vapour roots of pure components

	// fugacity and activity coefficients
	PhiL     []float64 // fugacity coefficients in the liquid
	PhiV     []float64 // fugacity coefficients in the vapour
	PhiPureL []float64 // fugacity coefficients of pure components (liquid root)
	PhiPureV []float64 // fugacity coefficients of pure components (vapour root)
	ActL     []float64 // PhiL / PhiPureL
	ActV     []float64 // PhiV / PhiPureV

	// component fugacities f = P・φ・x [kPa] at the last iteration
	FugL    []float64 // in the liquid
	FugV    []float64 // in the vapour
	FugaRes float64   // Σ FugL - Σ FugV

	// volumes and densities
	Vl     float64 // molar volume of liquid
	Vv     float64 // molar volume of vapour
	MolWt  float64 // molecular weight of feed
	MolWtL float64 // molecular weight of liquid
	MolWtV float64 // molecular weight of vapour
	DenL   float64 // mass density of liquid
	DenV   float64 // mass density of vapour

	// pseudo-critical properties of the feed (linear mixing)
	Tc float64 // critical temperature
	Pc float64 // critical pressure
	Vc float64 // critical volume [cm³/mol]
	Zc float64 // Pc・Vc/(R・Tc)
	Tr float64 // T / Tc
	Pr float64 // P / Pc

	// vapour pressures of components at T; nil if the solver has no models
	PreVap []float64

	// thermal properties
	H   float64 // FracVap・Hv + (1-FracVap)・Hl
	Hl  float64 // enthalpy of liquid
	Hv  float64 // enthalpy of vapour
	S   float64 // FracVap・Sv + (1-FracVap)・Sl
	Sl  float64 // entropy of liquid
	Sv  float64 // entropy of vapour
	CpL float64 // isobaric heat capacity of liquid
	CpV float64 // isobaric heat capacity of vapour
	CvL float64 // isochoric heat capacity of liquid
	CvV float64 // isochoric heat capacity of vapour
	Lv  float64 // heat of vaporisation of the liquid (Watson)

	// convergence; for specification searches Converged and Iterations refer to the outer search
	Converged  bool    // tolerance was met within the iteration budget
	Iterations int     // number of iterations
	DeltaF     float64 // last |ΔFracVap| of the successive substitution loop
	Restored   bool    // phases were restored from the iterate with the smallest |FugaRes|
	History    []Pair  // evaluations of a specification search
}

// RootTol is the relative tolerance to consider the liquid and vapour roots coincident
const RootTol = 1e-8

// RootsCrossed tells whether the liquid root is not smaller than the vapour root or both
// roots coincide; i.e. whether the cubic has a single real root or the root finder failed
// to separate the roots
func (o State) RootsCrossed() bool {
	return o.Zl >= o.Zv || math.Abs(o.Zv-o.Zl) <= RootTol*math.Abs(o.Zv)
}

// SumsOK tells whether x, y and z sum to one within mix.SumTol
func (o State) SumsOK() bool {
	return mix.IsNormalized(o.X) && mix.IsNormalized(o.Y) && mix.IsNormalized(o.Feed)
}

// Finite tells whether FracVap and the roots are finite
func (o State) Finite() bool {
	for _, v := range []float64{o.FracVap, o.Zl, o.Zv} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// GetCopy returns a deep copy of State
func (o State) GetCopy() *State {
	s := o
	s.Feed = cp(o.Feed)
	s.X, s.Y, s.K = cp(o.X), cp(o.Y), cp(o.K)
	s.Zli, s.Zvi = cp(o.Zli), cp(o.Zvi)
	s.PhiL, s.PhiV = cp(o.PhiL), cp(o.PhiV)
	s.PhiPureL, s.PhiPureV = cp(o.PhiPureL), cp(o.PhiPureV)
	s.ActL, s.ActV = cp(o.ActL), cp(o.ActV)
	s.FugL, s.FugV = cp(o.FugL), cp(o.FugV)
	s.PreVap = cp(o.PreVap)
	if o.History != nil {
		s.History = append([]Pair{}, o.History...)
	}
	return &s
}

// Set sets this State with another State
func (o *State) Set(s *State) {
	*o = *s.GetCopy()
}

// cp returns a copy of v (nil if v is nil)
func cp(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64{}, v...)
}
