// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/goflash/mdl/mix"
)

// HDeparture computes the residual enthalpy H - H_ig [J/mol]
//  H - H_ig = RT(Z-1) + (T・da/dT - a)/b ・ L(Z,B)
//  a, dadT -- mixture attraction and its temperature derivative [kPa・L²/mol²]
//  b -- mixture covolume [L/mol]
//  B -- dimensionless mixture covolume
func HDeparture(sh Shape, T, Z, a, dadT, b, B float64) float64 {
	return comp.R*T*(Z-1) + (T*dadT-a)/b*sh.LogTerm(Z, B)
}

// SDeparture computes the residual entropy S - S_ig(T,P) [J/(mol・K)]
//  S - S_ig = R・ln(Z-B) + (da/dT)/b ・ L(Z,B)
func SDeparture(sh Shape, Z, dadT, b, B float64) float64 {
	return comp.R*math.Log(Z-B) + dadT/b*sh.LogTerm(Z, B)
}

// CvDeparture computes the residual isochoric heat capacity Cv - Cv_ig [J/(mol・K)]
//  Cv - Cv_ig = T・(d²a/dT²)/b ・ L(Z,B)
func CvDeparture(sh Shape, T, Z, d2adT2, b, B float64) float64 {
	return T * d2adT2 / b * sh.LogTerm(Z, B)
}

// MixProps holds the dimensional mixture parameters of a phase
type MixProps struct {
	A      float64 // attraction a [kPa・L²/mol²]
	DadT   float64 // da/dT
	D2adT2 float64 // d²a/dT²
	B      float64 // covolume b [L/mol]
}

// Mixture computes all dimensional mixture parameters of a phase with composition x at T
func Mixture(fam Family, comps []*comp.Component, x []float64, T float64) (m MixProps) {
	ai := make([]float64, len(comps))
	dai := make([]float64, len(comps))
	d2ai := make([]float64, len(comps))
	bi := make([]float64, len(comps))
	for i, c := range comps {
		ac := fam.Attraction(c)
		ai[i] = ac * fam.Alpha(T, c)
		dai[i] = ac * fam.DalphaDT(T, c)
		d2ai[i] = ac * fam.D2alphaDT2(T, c)
		bi[i] = fam.Covolume(c)
	}
	k := fam.Settings().Kij
	m.A = mix.QuadraticMolar(x, ai, k)
	m.DadT = mix.QuadraticMolarDeriv(x, ai, dai, k)
	m.D2adT2 = mix.QuadraticMolarDeriv2(x, ai, dai, d2ai, k)
	m.B = mix.LinearMolar(x, bi)
	return
}
