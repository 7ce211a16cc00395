// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/goflash/mdl/mix"
	"github.com/cpmech/gosl/chk"
)

// LogTerm returns the logarithmic term of the fugacity expressions
//  L = (1/δ)・ln((2Z + B(u+δ)) / (2Z + B(u-δ)))   with   δ = √(u² - 4w)
//  Note: (u,w) = (1,0) gives L = ln(1 + B/Z)
func (o Shape) LogTerm(Z, B float64) float64 {
	δ := o.Delta()
	return math.Log((2*Z+B*(o.U+δ))/(2*Z+B*(o.U-δ))) / δ
}

// LnPhiPure computes the log of the fugacity coefficient of a pure component
//  ln φ = Z - 1 - ln(Z-B) - (A/B)・L(Z,B)
//  Note: Z > B is a precondition; see CheckRoot
func LnPhiPure(fam Family, Z, A, B float64) float64 {
	return Z - 1 - math.Log(Z-B) - (A/B)*fam.Shape().LogTerm(Z, B)
}

// LnPhiMix computes the log of the fugacity coefficient of component i in a mixture
//  ln φi = (Bi/B)(Z-1) - ln(Z-B) + (A/B)・(Bi/B - cross(Ai,A))・L(Z,B)
//  where cross is given by the family; e.g. 2√(Ai/A) or 2Ai/A
func LnPhiMix(fam Family, Z, Ai, Bi, A, B float64) float64 {
	return (Bi/B)*(Z-1) - math.Log(Z-B) + (A/B)*(Bi/B-fam.CrossTerm(Ai, A))*fam.Shape().LogTerm(Z, B)
}

// PartialA returns the attraction terms that CrossTerm expects for a phase with composition x:
// the pure values Ai if the family uses the geometric form; otherwise the partial-mixture terms
// Σj (1-k)・xj・√(Ai・Aj)
func PartialA(fam Family, x, Ai []float64) []float64 {
	if fam.Geometric() {
		return Ai
	}
	return mix.QuadraticCrossTerm(x, Ai, fam.Settings().Kij)
}

// PhiPure computes the fugacity coefficients of pure components with roots Z[i]
func PhiPure(fam Family, Z, A, B []float64) (res []float64) {
	res = make([]float64, len(Z))
	for i := 0; i < len(Z); i++ {
		res[i] = math.Exp(LnPhiPure(fam, Z[i], A[i], B[i]))
	}
	return
}

// PhiMix computes the fugacity coefficients of all components in a phase
//  Z -- root of the phase
//  Ai -- attraction terms; see PartialA
//  Bi -- pure component covolumes
//  A, B -- mixture parameters
func PhiMix(fam Family, Z float64, Ai, Bi []float64, A, B float64) (res []float64) {
	res = make([]float64, len(Ai))
	for i := 0; i < len(Ai); i++ {
		res[i] = math.Exp(LnPhiMix(fam, Z, Ai[i], Bi[i], A, B))
	}
	return
}

// CheckRoot returns an error if Z cannot be used in the fugacity expressions
func CheckRoot(Z, B float64) error {
	if math.IsNaN(Z) || math.IsInf(Z, 0) {
		return chk.Err("compressibility factor is not finite: Z = %v", Z)
	}
	if Z <= B {
		return chk.Err("compressibility factor Z = %g must be greater than B = %g", Z, B)
	}
	return nil
}
