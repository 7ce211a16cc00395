// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flash implements vapour-liquid equilibrium (flash) computations with cubic equations
// of state
//  The isothermal flash at (T, P) runs a successive substitution loop:
//   1. mixture A and B of both phases from the mixing rules
//   2. liquid and vapour roots of the cubic equation
//   3. fugacity coefficients of both phases
//   4. K = φL / φV
//   5. vapour fraction and compositions from the Rachford-Rice equation
//  until the vapour fraction stops changing. Flashes with a vapour fraction or enthalpy
//  specification wrap the isothermal flash with an inverse Lagrange interpolation on T or P.
package flash

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/goflash/mdl/eos"
	"github.com/cpmech/goflash/mdl/mix"
	"github.com/cpmech/goflash/mdl/vapp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// errors returned in strict mode
var (
	ErrNonConvergence = errors.New("iteration budget exhausted before convergence")
	ErrInvalidRoot    = errors.New("compressibility factor is not greater than the covolume B")
)

// fracUnset marks a vapour fraction that has not been computed yet
const fracUnset = 2.0

// Solver runs flash computations for a list of components and an EOS family
//  Note: Solver is not modified by flashes; thus the same Solver can be used concurrently
type Solver struct {

	// input
	Fam   eos.Family        // EOS family
	Comps []*comp.Component // components
	Pvap  []vapp.Model      // vapour pressure models (one per component); may be nil

	// settings
	Strict    bool    // return ErrNonConvergence and ErrInvalidRoot errors
	Verbose   bool    // print iterations
	Best      bool    // on non-convergence, return the iterate with the smallest |Σ fL - Σ fV|
	Tol       float64 // tolerance on |target - result| of specification searches
	NmaxOuter int     // max number of interpolation steps of specification searches
	NmaxBump  int     // max number of repeated bumps and nudges of specification searches
}

// NewSolver returns a new solver
//  pv -- vapour pressure models; may be nil
func NewSolver(fam eos.Family, comps []*comp.Component, pv []vapp.Model) (o *Solver, err error) {
	if fam == nil {
		return nil, chk.Err("flash: EOS family must be given")
	}
	if len(comps) == 0 {
		return nil, chk.Err("flash: at least one component is required")
	}
	if pv != nil && len(pv) != len(comps) {
		return nil, chk.Err("flash: number of vapour pressure models (%d) must be equal to the number of components (%d)", len(pv), len(comps))
	}
	o = &Solver{Fam: fam, Comps: comps, Pvap: pv, Tol: 1e-10, NmaxOuter: 20, NmaxBump: 20}
	return
}

// IsothermalFlash runs an isothermal flash with default settings
//  The vapour pressure models are Antoine's if all components have Antoine's coefficients;
//  otherwise Wilson's correlation is used
func IsothermalFlash(T, P float64, z []float64, comps []*comp.Component, fam eos.Family) (st *State, err error) {
	o, err := NewSolver(fam, comps, DefaultPvap(comps))
	if err != nil {
		return
	}
	return o.Isothermal(T, P, z)
}

// DefaultPvap returns Antoine's models if available for all components or Wilson's models
func DefaultPvap(comps []*comp.Component) []vapp.Model {
	pv, err := vapp.ForComponents("antoine", comps)
	if err == nil {
		return pv
	}
	return wilson(comps)
}

// Isothermal runs an isothermal flash at (T, P) for feed composition z
func (o *Solver) Isothermal(T, P float64, z []float64) (st *State, err error) {
	st, err = o.flash(T, P, z)
	if err == nil && o.Strict && !st.Converged {
		err = fmt.Errorf("isothermal flash at T = %g, P = %g: %w", T, P, ErrNonConvergence)
	}
	return
}

// Resume re-runs the successive substitution loop starting from the compositions and vapour
// fraction of a previous result. The previous state is not modified
func (o *Solver) Resume(prev *State) (st *State, err error) {
	if err = o.check(prev.T, prev.P, prev.Feed); err != nil {
		return
	}
	st = prev.GetCopy()
	st.Converged, st.Iterations, st.History = false, 0, nil
	err = o.iterate(st)
	if err != nil {
		return
	}
	o.finish(st)
	if o.Strict && !st.Converged {
		err = fmt.Errorf("isothermal flash at T = %g, P = %g: %w", st.T, st.P, ErrNonConvergence)
	}
	return
}

// flash runs the isothermal flash without the non-convergence error
func (o *Solver) flash(T, P float64, z []float64) (st *State, err error) {
	if err = o.check(T, P, z); err != nil {
		return
	}
	st = o.initial(T, P, z)
	err = o.iterate(st)
	if err != nil {
		return
	}
	o.finish(st)
	return
}

// check validates input
func (o *Solver) check(T, P float64, z []float64) error {
	if T <= 0 || P <= 0 {
		return chk.Err("flash: temperature and pressure must be positive. T = %g, P = %g are invalid", T, P)
	}
	return o.checkFeed(z)
}

// checkFeed validates the feed composition
func (o *Solver) checkFeed(z []float64) error {
	if len(z) != len(o.Comps) {
		return chk.Err("flash: number of feed fractions (%d) must be equal to the number of components (%d)", len(z), len(o.Comps))
	}
	for i, v := range z {
		if v < 0 || math.IsNaN(v) {
			return chk.Err("flash: feed fractions must be non-negative. z[%d] = %g is invalid", i, v)
		}
	}
	if floats.Sum(z) <= 0 {
		return chk.Err("flash: sum of feed fractions must be positive")
	}
	return nil
}

// initial allocates a new state and sets the initial guess
func (o *Solver) initial(T, P float64, z []float64) (st *State) {
	st = &State{T: T, P: P, Feed: mix.NormalizeIfNeeded(cp(z))}
	n := len(z)
	st.K = make([]float64, n)
	if o.Fam.Settings().Seed && o.Pvap != nil {
		for i, m := range o.Pvap {
			st.K[i] = m.P(T) / P
		}
		st.FracVap, st.X, st.Y = RachfordRice(st.K, st.Feed, FracInit)
		return
	}
	for i := 0; i < n; i++ {
		st.K[i] = 1
	}
	st.X, st.Y, st.FracVap = cp(st.Feed), cp(st.Feed), fracUnset
	return
}

// iterate runs the successive substitution loop
func (o *Solver) iterate(st *State) (err error) {
	set := o.Fam.Settings()
	sh := o.Fam.Shape()
	Ai, Bi := eos.Dimensionless(o.Fam, o.Comps, st.T, st.P)
	if o.Verbose {
		io.Pf("%4s%23s%23s%23s\n", "it", "FracVap", "|ΔF|", "Σ fL - Σ fV")
	}
	var best *State
	for it := 1; it <= set.NmaxIt; it++ {
		Fold := st.FracVap

		// mixture parameters
		Al, Bl := mix.QuadraticMolar(st.X, Ai, set.Kij), mix.LinearMolar(st.X, Bi)
		Av, Bv := mix.QuadraticMolar(st.Y, Ai, set.Kij), mix.LinearMolar(st.Y, Bi)

		// roots
		st.Zl, st.Zv = sh.ZL(Al, Bl), sh.ZG(Av, Bv)
		if o.Strict {
			if e := eos.CheckRoot(st.Zl, Bl); e != nil {
				return fmt.Errorf("liquid phase at T = %g, P = %g: %v: %w", st.T, st.P, e, ErrInvalidRoot)
			}
			if e := eos.CheckRoot(st.Zv, Bv); e != nil {
				return fmt.Errorf("vapour phase at T = %g, P = %g: %v: %w", st.T, st.P, e, ErrInvalidRoot)
			}
		}

		// fugacity coefficients and K-values; non-finite values keep the previous K
		st.PhiL = eos.PhiMix(o.Fam, st.Zl, eos.PartialA(o.Fam, st.X, Ai), Bi, Al, Bl)
		st.PhiV = eos.PhiMix(o.Fam, st.Zv, eos.PartialA(o.Fam, st.Y, Ai), Bi, Av, Bv)
		st.FugL, st.FugV = fugacities(st.P, st.PhiL, st.X), fugacities(st.P, st.PhiV, st.Y)
		st.FugaRes = floats.Sum(st.FugL) - floats.Sum(st.FugV)
		if o.Best && Fold != fracUnset && (best == nil || math.Abs(st.FugaRes) < math.Abs(best.FugaRes)) {
			best = st.GetCopy()
		}
		for i := range st.K {
			k := st.PhiL[i] / st.PhiV[i]
			if !math.IsNaN(k) && !math.IsInf(k, 0) && k > 0 {
				st.K[i] = k
			}
		}

		// vapour fraction and compositions
		st.FracVap, st.X, st.Y = RachfordRice(st.K, st.Feed, Fold)
		st.Iterations = it
		st.DeltaF = math.Abs(st.FracVap - Fold)
		if o.Verbose {
			io.Pf("%4d%23.15e%23.15e%23.15e\n", it, st.FracVap, st.DeltaF, st.FugaRes)
		}
		if st.DeltaF <= set.Tol {
			st.Converged = true
			break
		}
	}

	// fallback to the best iterate
	if !st.Converged && best != nil {
		nit, df := st.Iterations, st.DeltaF
		st.Set(best)
		st.Converged, st.Iterations, st.DeltaF, st.Restored = false, nit, df, true
	}
	return
}

// fugacities computes f = P・φ・x
func fugacities(P float64, phi, x []float64) (f []float64) {
	f = make([]float64, len(x))
	for i := range x {
		f[i] = P * phi[i] * x[i]
	}
	return
}

// finish computes the derived quantities of a state
func (o *Solver) finish(st *State) {
	F := st.FracVap
	st.Z = F*st.Zv + (1-F)*st.Zl

	// pure components
	sh := o.Fam.Shape()
	Ai, Bi := eos.Dimensionless(o.Fam, o.Comps, st.T, st.P)
	st.Zli, st.Zvi = sh.ZLs(Ai, Bi), sh.ZGs(Ai, Bi)
	st.PhiPureL = eos.PhiPure(o.Fam, st.Zli, Ai, Bi)
	st.PhiPureV = eos.PhiPure(o.Fam, st.Zvi, Ai, Bi)
	n := len(o.Comps)
	st.ActL, st.ActV = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		st.ActL[i] = st.PhiL[i] / st.PhiPureL[i]
		st.ActV[i] = st.PhiV[i] / st.PhiPureV[i]
	}

	// volumes and densities
	RT := comp.R * st.T
	st.Vl, st.Vv = st.Zl*RT/st.P, st.Zv*RT/st.P
	mw := comp.Values(o.Comps, func(c *comp.Component) float64 { return c.MolWt })
	st.MolWt = mix.LinearMolar(st.Feed, mw)
	st.MolWtL = mix.LinearMolar(st.X, mw)
	st.MolWtV = mix.LinearMolar(st.Y, mw)
	st.DenL, st.DenV = st.MolWtL/st.Vl, st.MolWtV/st.Vv

	// pseudo-critical and reduced properties
	st.Tc = mix.LinearMolar(st.Feed, comp.Values(o.Comps, func(c *comp.Component) float64 { return c.Tc }))
	st.Pc = mix.LinearMolar(st.Feed, comp.Values(o.Comps, func(c *comp.Component) float64 { return c.Pc }))
	st.Vc = mix.LinearMolar(st.Feed, comp.Values(o.Comps, func(c *comp.Component) float64 { return c.Vc }))
	st.Zc = st.Pc * (st.Vc / 1000.0) / (comp.R * st.Tc)
	st.Tr, st.Pr = st.T/st.Tc, st.P/st.Pc

	// vapour pressures
	st.PreVap = nil
	if o.Pvap != nil {
		st.PreVap = make([]float64, n)
		for i, m := range o.Pvap {
			st.PreVap[i] = m.P(st.T)
		}
	}

	// thermal properties
	o.Thermal(st)
}

// wilson returns Wilson's models built from the critical properties
func wilson(comps []*comp.Component) (pv []vapp.Model) {
	pv = make([]vapp.Model, len(comps))
	for i, c := range comps {
		pv[i] = &vapp.Wilson{Tc: c.Tc, Pc: c.Pc, Omega: c.Omega}
	}
	return
}
