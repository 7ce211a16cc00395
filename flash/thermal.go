// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"math"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/goflash/mdl/eos"
	"github.com/cpmech/goflash/mdl/mix"
	"github.com/cpmech/goflash/mdl/thermo"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// Phase holds the thermal properties of one phase
//  Reference: ideal gas at thermo.Tref and thermo.Pref
type Phase struct {
	H  float64 // enthalpy [J/mol]
	S  float64 // entropy [J/(mol・K)]
	Cp float64 // isobaric heat capacity [J/(mol・K)]
	Cv float64 // isochoric heat capacity [J/(mol・K)]
}

// Thermal computes the thermal properties of the phases and of the mixture in st
//  H(phase) = Σ xi・Hi°(T) + H_dep(phase)
//  S(phase) = Σ xi・Si°(T) - R・ln(P/Pref) - R・Σ xi・ln(xi) + S_dep(phase)
//  H = FracVap・Hv + (1-FracVap)・Hl   and   S = FracVap・Sv + (1-FracVap)・Sl
//  Lv is the heat of vaporisation of the liquid from Watson's correlation; it is reported
//  only since the departure of the liquid root already accounts for the phase change
func (o *Solver) Thermal(st *State) {
	liq := o.PhaseThermal(st.T, st.P, st.Zl, st.X, true)
	vap := o.PhaseThermal(st.T, st.P, st.Zv, st.Y, false)
	st.Hl, st.Hv = liq.H, vap.H
	st.Sl, st.Sv = liq.S, vap.S
	st.CpL, st.CpV = liq.Cp, vap.Cp
	st.CvL, st.CvV = liq.Cv, vap.Cv
	F := st.FracVap
	st.H = F*st.Hv + (1-F)*st.Hl
	st.S = F*st.Sv + (1-F)*st.Sl
	st.Lv = 0
	for i, c := range o.Comps {
		st.Lv += st.X[i] * thermo.Watson(c, st.T)
	}
}

// PhaseThermal computes the thermal properties of a phase with composition x and root Z
//  The heat capacity Cp is the derivative of H at constant P and x where the root is
//  recomputed with the liquid or vapour selector
func (o *Solver) PhaseThermal(T, P, Z float64, x []float64, liquid bool) (res Phase) {
	sh := o.Fam.Shape()
	m := eos.Mixture(o.Fam, o.Comps, x, T)
	B := m.B * P / (comp.R * T)
	res.H = o.enthalpy(T, P, Z, x)
	res.S = eos.SDeparture(sh, Z, m.DadT, m.B, B) - comp.R*math.Log(P/thermo.Pref)
	cpig := 0.0
	for i, c := range o.Comps {
		res.S += x[i] * thermo.S(c, T)
		if x[i] > 0 {
			res.S -= comp.R * x[i] * math.Log(x[i])
		}
		cpig += x[i] * thermo.Cp(c, T)
	}
	res.Cv = cpig - comp.R + eos.CvDeparture(sh, T, Z, m.D2adT2, m.B, B)
	res.Cp = fd.Derivative(func(t float64) float64 {
		return o.enthalpy(t, P, o.root(t, P, x, liquid), x)
	}, T, &fd.Settings{Formula: fd.Central, Step: CpStep})
	return
}

// CpStep is the temperature step of the heat capacity derivative [K]
const CpStep = 1e-3

// enthalpy computes Σ xi・Hi°(T) + H_dep
func (o *Solver) enthalpy(T, P, Z float64, x []float64) float64 {
	m := eos.Mixture(o.Fam, o.Comps, x, T)
	B := m.B * P / (comp.R * T)
	return floats.Dot(x, thermo.Hs(o.Comps, T)) + eos.HDeparture(o.Fam.Shape(), T, Z, m.A, m.DadT, m.B, B)
}

// root computes the liquid or vapour root of a phase with composition x
func (o *Solver) root(T, P float64, x []float64, liquid bool) float64 {
	set := o.Fam.Settings()
	Ai, Bi := eos.Dimensionless(o.Fam, o.Comps, T, P)
	A, B := mix.QuadraticMolar(x, Ai, set.Kij), mix.LinearMolar(x, Bi)
	if liquid {
		return o.Fam.Shape().ZL(A, B)
	}
	return o.Fam.Shape().ZG(A, B)
}
