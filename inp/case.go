// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/goflash/flash"
	"github.com/cpmech/goflash/mdl/eos"
	"github.com/cpmech/goflash/mdl/vapp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// SweepData holds the definition of a sweep of isothermal flashes
type SweepData struct {
	Key string  `json:"key" yaml:"key"` // swept variable: "P" (T is fixed) or "T" (P is fixed)
	Min float64 `json:"min" yaml:"min"` // first value
	Max float64 `json:"max" yaml:"max"` // last value
	Np  int     `json:"np" yaml:"np"`   // number of points
}

// Case holds all data of a flash case (.flh file)
//  One of the following runs is selected by the given data:
//   sweep      -- "sweep" is given
//   spec flash -- "fracvap" or "h" is given together with "t" or "p"
//   isothermal -- both "t" and "p" are given
type Case struct {

	// input
	Desc      string     `json:"desc" yaml:"desc"`           // description of case
	CmpFile   string     `json:"cmpfile" yaml:"cmpfile"`     // components file path; relative to the directory of the case file
	DirOut    string     `json:"dirout" yaml:"dirout"`       // directory for output; e.g. /tmp/goflash
	Eos       string     `json:"eos" yaml:"eos"`             // EOS family; e.g. "rks", "srk", "pr"
	EosPrms   PrmsData   `json:"eosprms" yaml:"eosprms"`     // EOS family settings; e.g. nmaxit, tol, kij
	Vapp      string     `json:"vapp" yaml:"vapp"`           // vapour pressure correlation; empty means default
	Comps     []string   `json:"comps" yaml:"comps"`         // names of components
	Feed      []float64  `json:"feed" yaml:"feed"`           // feed mole fractions
	T         float64    `json:"t" yaml:"t"`                 // temperature [K]
	P         float64    `json:"p" yaml:"p"`                 // pressure [kPa]
	FracVap   *float64   `json:"fracvap" yaml:"fracvap"`     // target vapour fraction
	H         *float64   `json:"h" yaml:"h"`                 // target enthalpy [J/mol]
	Sweep     *SweepData `json:"sweep" yaml:"sweep"`         // sweep
	Strict    bool       `json:"strict" yaml:"strict"`       // return non-convergence errors
	Best      bool       `json:"best" yaml:"best"`           // return the best iterate of unconverged flashes
	Verbose   bool       `json:"verbose" yaml:"verbose"`     // show iterations
	Tol       float64    `json:"tol" yaml:"tol"`             // tolerance of specification searches; 0 means default
	NmaxOuter int        `json:"nmaxouter" yaml:"nmaxouter"` // max number of steps of specification searches; 0 means default
	Plot      bool       `json:"plot" yaml:"plot"`           // plot sweep results

	// derived
	Dir   string            `json:"-" yaml:"-"` // directory of case file
	Fname string            `json:"-" yaml:"-"` // case filename
	Key   string            `json:"-" yaml:"-"` // filename key; e.g. "mycase" for "/tmp/mycase.flh"
	Db    *CmpDb            `json:"-" yaml:"-"` // components database
	Cmps  []*comp.Component `json:"-" yaml:"-"` // components
}

// ReadCase reads a case from a .flh file
func ReadCase(dir, fn string) (o *Case, err error) {

	// decode
	o = new(Case)
	err = decode(dir, fn, o)
	if err != nil {
		return nil, err
	}
	o.Dir, o.Fname = dir, fn
	o.Key = io.FnKey(fn)
	if o.DirOut == "" {
		o.DirOut = "/tmp/goflash"
	}

	// components
	if o.CmpFile == "" {
		return nil, chk.Err("case %q: components file must be given in \"cmpfile\"", fn)
	}
	cdir, cfn := filepath.Split(o.CmpFile)
	if !filepath.IsAbs(o.CmpFile) {
		cdir = filepath.Join(dir, cdir)
	}
	o.Db, err = ReadCmp(cdir, cfn)
	if err != nil {
		return nil, err
	}
	o.Cmps, err = o.Db.Get(o.Comps...)
	if err != nil {
		return nil, chk.Err("case %q: %v", fn, err)
	}
	if len(o.Feed) != len(o.Cmps) {
		return nil, chk.Err("case %q: number of feed fractions (%d) must be equal to the number of components (%d)", fn, len(o.Feed), len(o.Cmps))
	}

	// check data of run
	if o.Eos == "" {
		return nil, chk.Err("case %q: EOS family must be given in \"eos\"", fn)
	}
	switch {
	case o.Sweep != nil:
		s := o.Sweep
		s.Key = strings.ToUpper(s.Key)
		if s.Key != "P" && s.Key != "T" {
			return nil, chk.Err("case %q: sweep key must be \"P\" or \"T\". %q is invalid", fn, o.Sweep.Key)
		}
		if s.Np < 2 || s.Min <= 0 || s.Max <= s.Min {
			return nil, chk.Err("case %q: sweep requires np >= 2 and 0 < min < max", fn)
		}
		if (s.Key == "P" && o.T <= 0) || (s.Key == "T" && o.P <= 0) {
			return nil, chk.Err("case %q: the fixed variable of the sweep must be positive", fn)
		}
	case o.FracVap != nil || o.H != nil:
		if o.FracVap != nil && o.H != nil {
			return nil, chk.Err("case %q: only one of \"fracvap\" and \"h\" can be given", fn)
		}
		if (o.T > 0) == (o.P > 0) {
			return nil, chk.Err("case %q: exactly one of \"t\" and \"p\" must be given with \"fracvap\" or \"h\"", fn)
		}
	default:
		if o.T <= 0 || o.P <= 0 {
			return nil, chk.Err("case %q: temperature and pressure must be positive. T = %g, P = %g are invalid", fn, o.T, o.P)
		}
	}
	return
}

// Solver allocates a new flash solver
func (o Case) Solver() (sol *flash.Solver, err error) {
	fam, err := eos.NewInit(o.Eos, o.EosPrms.Params())
	if err != nil {
		return
	}
	pv := flash.DefaultPvap(o.Cmps)
	if o.Vapp != "" {
		pv, err = vapp.ForComponents(o.Vapp, o.Cmps)
		if err != nil {
			return
		}
	}
	sol, err = flash.NewSolver(fam, o.Cmps, pv)
	if err != nil {
		return
	}
	sol.Strict = o.Strict
	sol.Best = o.Best
	sol.Verbose = o.Verbose
	if o.Tol > 0 {
		sol.Tol = o.Tol
	}
	if o.NmaxOuter > 0 {
		sol.NmaxOuter = o.NmaxOuter
	}
	return
}

// Spec returns the specification of a spec flash
//  Note: ok is false if this case is not a spec flash
func (o Case) Spec() (spec flash.Spec, ok bool) {
	if o.Sweep != nil || (o.FracVap == nil && o.H == nil) {
		return
	}
	spec.Fixed, spec.Known = flash.FixedT, o.T
	if o.P > 0 {
		spec.Fixed, spec.Known = flash.FixedP, o.P
	}
	if o.FracVap != nil {
		spec.Kind, spec.Target = flash.FracVapSpec, *o.FracVap
	} else {
		spec.Kind, spec.Target = flash.EnthalpySpec, *o.H
	}
	return spec, true
}

// Run runs this case
//  Note: the results are collected in a driver; Key and Xs are empty if this is not a sweep
func (o Case) Run() (drv *flash.Driver, err error) {
	sol, err := o.Solver()
	if err != nil {
		return
	}
	drv = new(flash.Driver)
	err = drv.Init(sol)
	if err != nil {
		return
	}

	// sweep
	if s := o.Sweep; s != nil {
		xs := utl.LinSpace(s.Min, s.Max, s.Np)
		if s.Key == "P" {
			err = drv.RunP(o.T, xs, o.Feed)
		} else {
			err = drv.RunT(o.P, xs, o.Feed)
		}
		return
	}

	// single flash
	var st *flash.State
	if spec, ok := o.Spec(); ok {
		st, err = sol.SpecFlash(spec, o.Feed)
	} else {
		st, err = sol.Isothermal(o.T, o.P, o.Feed)
	}
	if st != nil {
		drv.Res = []*flash.State{st}
	}
	return
}
