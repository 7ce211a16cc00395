// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
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

// constants used by specification searches
const (
	NmaxLagrange = 6    // max number of points of the inverse interpolation
	NudgeStep    = 3.0  // temperature step when the vapour fraction is near saturation [K]
	NudgeFactor  = 0.1  // relative pressure step when the vapour fraction is near saturation
	NudgeLow     = 0.01 // nudge up when FracVap < NudgeLow
	NudgeHigh    = 0.99 // nudge down when FracVap > NudgeHigh
	TcMargin     = 50.0 // guesses above the mixture critical temperature are replaced by Tc - TcMargin [K]
)

// SpecKind defines the kind of specification
type SpecKind int

// kinds of specification
const (
	FracVapSpec  SpecKind = iota // vapour fraction
	EnthalpySpec                 // enthalpy [J/mol]
)

// FixedVar defines which variable is known
type FixedVar int

// known variables
const (
	FixedT FixedVar = iota // temperature is known; pressure is searched
	FixedP                 // pressure is known; temperature is searched
)

// Spec holds a flash specification other than (T, P)
type Spec struct {
	Kind   SpecKind // kind of specification
	Fixed  FixedVar // known variable
	Known  float64  // value of the known variable (T [K] or P [kPa])
	Target float64  // target vapour fraction or enthalpy
}

// String returns a description of the specification
func (o Spec) String() string {
	known, kind := "T", "FracVap"
	if o.Fixed == FixedP {
		known = "P"
	}
	if o.Kind == EnthalpySpec {
		kind = "H"
	}
	return io.Sf("flash with %s = %g and %s = %g", known, o.Known, kind, o.Target)
}

// SpecConversionFlash runs a flash with a specification other than (T, P) with default settings
func SpecConversionFlash(spec Spec, z []float64, comps []*comp.Component, fam eos.Family) (st *State, err error) {
	o, err := NewSolver(fam, comps, DefaultPvap(comps))
	if err != nil {
		return
	}
	return o.SpecFlash(spec, z)
}

// SpecFlash finds the unknown temperature or pressure that satisfies spec
//  The search evaluates an initial guess from the vapour pressures, a bumped guess and their
//  mean; then, the next guesses are found by inverse Lagrange interpolation of the
//  (result, guess) pairs evaluated at the target.
//  Note: the returned state holds the outer convergence flag, number of interpolation steps
//        and all evaluations in History
func (o *Solver) SpecFlash(spec Spec, z []float64) (st *State, err error) {

	// check
	if spec.Known <= 0 {
		return nil, chk.Err("flash: known temperature or pressure must be positive. %g is invalid", spec.Known)
	}
	if spec.Fixed != FixedT && spec.Fixed != FixedP {
		return nil, chk.Err("flash: fixed variable %d is invalid", spec.Fixed)
	}
	switch spec.Kind {
	case FracVapSpec:
		if spec.Target < 0 || spec.Target > 1 {
			return nil, chk.Err("flash: target vapour fraction must be in [0, 1]. %g is invalid", spec.Target)
		}
	case EnthalpySpec:
	default:
		return nil, chk.Err("flash: kind of specification %d is invalid", spec.Kind)
	}
	if err = o.checkFeed(z); err != nil {
		return
	}

	// run
	s := &search{sol: o, spec: spec, z: mix.NormalizeIfNeeded(cp(z))}
	s.tcmix = floats.Dot(s.z, comp.Values(o.Comps, func(c *comp.Component) float64 { return c.Tc }))
	return s.run()
}

// Lagrange evaluates at x the polynomial passing through all (xs[i], ys[i]) points
func Lagrange(xs, ys []float64, x float64) (y float64) {
	for i := 0; i < len(xs); i++ {
		p := 1.0
		for j := 0; j < len(xs); j++ {
			if i != j {
				p *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		y += ys[i] * p
	}
	return
}

// search implements the specification search
type search struct {
	sol   *Solver   // solver
	spec  Spec      // specification
	z     []float64 // feed
	tcmix float64   // Σ zi・Tci
	hist  []Pair    // all evaluations
	last  *State    // last evaluated state
}

// run runs the search
func (o *search) run() (st *State, err error) {

	// initial guess
	g := o.initialGuess()
	r, err := o.eval(g)
	if err != nil {
		return
	}
	converged := o.done(r)

	// bumped guesses until the target is bracketed
	if !converged {
		g, r, err = o.bump(g, r)
		if err != nil {
			return
		}
		converged = o.done(r)
	}

	// mean of the last two guesses
	if !converged {
		n := len(o.hist)
		g = (o.hist[n-1].Guess + o.hist[n-2].Guess) / 2
		r, err = o.eval(g)
		if err != nil {
			return
		}
		converged = o.done(r)
	}

	// inverse interpolation
	it := 0
	for !converged && it < o.sol.NmaxOuter {
		it++
		gnew := o.next()
		if math.Abs(gnew-g) <= 1e-14*math.Abs(g) {
			break // stagnation
		}
		g = gnew
		r, err = o.eval(g)
		if err != nil {
			return
		}
		if o.spec.Kind == FracVapSpec && !o.done(r) {
			g, r, err = o.nudge(g, r)
			if err != nil {
				return
			}
		}
		converged = o.done(r)
	}

	// results
	st = o.last
	st.Converged, st.Iterations, st.History = converged, it, o.hist
	if o.sol.Strict && !converged {
		err = fmt.Errorf("%v: %w", o.spec, ErrNonConvergence)
	}
	return
}

// eval runs an isothermal flash at guess and returns the result
func (o *search) eval(guess float64) (res float64, err error) {
	T, P := o.spec.Known, guess
	if o.spec.Fixed == FixedP {
		T, P = guess, o.spec.Known
	}
	st, err := o.sol.flash(T, P, o.z)
	if err != nil {
		return
	}
	res = st.FracVap
	if o.spec.Kind == EnthalpySpec {
		res = st.H
	}
	o.last = st
	o.hist = append(o.hist, Pair{guess, res})
	if o.sol.Verbose {
		io.Pforan("T = %23.15e  P = %23.15e  result = %23.15e\n", T, P, res)
	}
	return
}

// done tells whether the target has been met
func (o *search) done(res float64) bool {
	return math.Abs(o.spec.Target-res) <= o.sol.Tol
}

// initialGuess returns Σ zi・Pvap_i(T) or Σ zi・Tsat_i(P)
func (o *search) initialGuess() float64 {
	pv := o.sol.Pvap
	if pv == nil {
		pv = wilson(o.sol.Comps)
	}
	if o.spec.Fixed == FixedT {
		return floats.Dot(o.z, vapp.Ps(pv, o.spec.Known))
	}
	return floats.Dot(o.z, vapp.Ts(pv, o.spec.Known))
}

// factors returns the multipliers of the guess applied when the result is below or above the
// target. Both the vapour fraction and the enthalpy decrease with P and increase with T
func (o *search) factors() (below, above float64) {
	if o.spec.Fixed == FixedT {
		return 0.5, 1.5
	}
	if o.spec.Kind == FracVapSpec {
		return 1.05, 0.95
	}
	return 1.1, 0.9
}

// bump multiplies the guess by a fixed factor, in the direction of the target, until the
// results bracket the target
func (o *search) bump(g, r float64) (float64, float64, error) {
	below, above := o.factors()
	t := o.spec.Target
	for k := 0; k < o.sol.NmaxBump; k++ {
		fac := above
		if r < t {
			fac = below
		}
		g *= fac
		rnew, err := o.eval(g)
		if err != nil {
			return g, rnew, err
		}
		if o.done(rnew) || (rnew-t)*(r-t) < 0 {
			return g, rnew, nil
		}
		r = rnew
	}
	return g, r, nil
}

// nudge moves the guess away from saturated results if the target is not saturated
//  Fixed T: P is multiplied by 1 ∓ NudgeFactor; fixed P: T is changed by ±NudgeStep
func (o *search) nudge(g, r float64) (float64, float64, error) {
	if o.spec.Target < NudgeLow || o.spec.Target > NudgeHigh {
		return g, r, nil
	}
	var err error
	for k := 0; k < o.sol.NmaxBump && err == nil; k++ {
		F := o.last.FracVap
		switch {
		case F < NudgeLow && o.spec.Fixed == FixedP:
			g += NudgeStep
		case F > NudgeHigh && o.spec.Fixed == FixedP:
			g -= NudgeStep
		case F < NudgeLow:
			g *= 1 - NudgeFactor
		case F > NudgeHigh:
			g *= 1 + NudgeFactor
		default:
			return g, r, nil
		}
		r, err = o.eval(g)
	}
	return g, r, err
}

// next computes the next guess
func (o *search) next() (g float64) {

	// inverse interpolation
	pts := o.candidates()
	n := len(o.hist)
	if len(pts) < 2 {
		return (o.hist[n-1].Guess + o.hist[n-2].Guess) / 2
	}
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.Result, p.Guess
	}
	g = Lagrange(xs, ys, o.spec.Target)

	// stay below the mixture critical temperature
	if o.spec.Kind == FracVapSpec && o.spec.Fixed == FixedP && g >= o.tcmix {
		g = o.tcmix - TcMargin
	}

	// stay within the bracket
	if lo, hi, ok := o.bracket(); ok {
		if !(g > math.Min(lo, hi) && g < math.Max(lo, hi)) {
			g = (lo + hi) / 2
		}
	}

	// recover from non-physical guesses
	if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
		g = (o.hist[n-1].Guess + o.hist[n-2].Guess) / 2
	}
	return
}

// candidates selects the most recent evaluations with distinct results; saturated vapour
// fractions are discarded if enough unsaturated evaluations exist
func (o *search) candidates() (pts []Pair) {
	saturated := func(r float64) bool {
		return o.spec.Kind == FracVapSpec && (r <= FracLow || r >= FracHigh)
	}
	nunsat := 0
	for _, p := range o.hist {
		if !saturated(p.Result) {
			nunsat++
		}
	}
	for i := len(o.hist) - 1; i >= 0 && len(pts) < NmaxLagrange; i-- {
		p := o.hist[i]
		if nunsat >= 2 && saturated(p.Result) {
			continue
		}
		distinct := true
		for _, q := range pts {
			if math.Abs(q.Result-p.Result) <= o.sol.Tol {
				distinct = false
				break
			}
		}
		if distinct {
			pts = append(pts, p)
		}
	}
	return
}

// bracket finds the closest guesses with results below and above the target
func (o *search) bracket() (lo, hi float64, ok bool) {
	t := o.spec.Target
	below, above := math.Inf(-1), math.Inf(1)
	okLo, okHi := false, false
	for _, p := range o.hist {
		if p.Result < t && p.Result >= below {
			below, lo, okLo = p.Result, p.Guess, true
		}
		if p.Result > t && p.Result <= above {
			above, hi, okHi = p.Result, p.Guess, true
		}
	}
	ok = okLo && okHi
	return
}
