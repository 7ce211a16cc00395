// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Family defines a cubic equation of state family
//  The pure component attraction is a(T) = ac・α(T) and the covolume is b; thus
//   Ai = ac・α(T)・P/(RT)²   and   Bi = b・P/(RT)
type Family interface {
	Init(prms dbf.Params) error                      // initialises family settings
	GetPrms(example bool) dbf.Params                 // gets (an example) of settings
	Name() string                                    // name of family
	Shape() Shape                                    // (u, w) constants
	Geometric() bool                                 // tells whether the fugacity cross term uses the geometric form
	CrossTerm(Ai, A float64) float64                 // cross term of the mixture fugacity coefficient
	Attraction(c *comp.Component) float64            // ac
	Covolume(c *comp.Component) float64              // b
	Alpha(T float64, c *comp.Component) float64      // α(T)
	DalphaDT(T float64, c *comp.Component) float64   // dα/dT
	D2alphaDT2(T float64, c *comp.Component) float64 // d²α/dT²
	Settings() Settings                              // iteration settings
}

// Settings holds the iteration settings of a family
type Settings struct {
	NmaxIt int     // max number of successive substitution iterations
	Tol    float64 // tolerance on |ΔFracVap|
	Kij    float64 // binary interaction parameter
	Seed   bool    // seed K-values with Pvap(T)/P
}

// New returns a new EOS family
func New(name string) (fam Family, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// NewInit returns a new EOS family initialised with prms (nil means defaults)
func NewInit(name string, prms dbf.Params) (fam Family, err error) {
	fam, err = New(name)
	if err != nil {
		return
	}
	err = fam.Init(prms)
	return
}

// Names returns the names of all families
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Dimensionless computes Ai = a・P/(RT)² and Bi = b・P/(RT) for all components at (T,P)
func Dimensionless(fam Family, comps []*comp.Component, T, P float64) (A, B []float64) {
	A = make([]float64, len(comps))
	B = make([]float64, len(comps))
	RT := comp.R * T
	for i, c := range comps {
		A[i] = fam.Attraction(c) * fam.Alpha(T, c) * P / (RT * RT)
		B[i] = fam.Covolume(c) * P / RT
	}
	return
}

// allocators holds all available families
var allocators = map[string]func() Family{}

// base ////////////////////////////////////////////////////////////////////////////////////////////

// base implements the common parts of all families
type base struct {
	name      string
	shape     Shape
	geometric bool
	settings  Settings
	defaults  Settings
}

func (o base) Name() string       { return o.name }
func (o base) Shape() Shape       { return o.shape }
func (o base) Geometric() bool    { return o.geometric }
func (o base) Settings() Settings { return o.settings }

// CrossTerm returns 2√(Ai/A) (geometric) or 2Ai/A
func (o base) CrossTerm(Ai, A float64) float64 {
	if o.geometric {
		return 2.0 * math.Sqrt(Ai/A)
	}
	return 2.0 * Ai / A
}

// Init initialises the settings
func (o *base) Init(prms dbf.Params) (err error) {
	o.settings = o.defaults
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nmaxit":
			o.settings.NmaxIt = int(p.V)
		case "tol":
			o.settings.Tol = p.V
		case "kij":
			o.settings.Kij = p.V
		case "seed":
			o.settings.Seed = p.V > 0
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", o.name, p.N)
		}
	}
	if o.settings.NmaxIt < 1 {
		return chk.Err("%s: nmaxit must be at least 1. nmaxit = %d is invalid\n", o.name, o.settings.NmaxIt)
	}
	if o.settings.Tol <= 0 {
		return chk.Err("%s: tol must be positive. tol = %g is invalid\n", o.name, o.settings.Tol)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o base) GetPrms(example bool) dbf.Params {
	s := o.defaults
	seed := 0.0
	if s.Seed {
		seed = 1
	}
	return dbf.Params{
		&dbf.P{N: "nmaxit", V: float64(s.NmaxIt)},
		&dbf.P{N: "tol", V: s.Tol},
		&dbf.P{N: "kij", V: s.Kij},
		&dbf.P{N: "seed", V: seed},
	}
}

// param returns the component parameter named key or the fallback value
func param(c *comp.Component, key string, fallback float64) float64 {
	if v, found := c.Get(key); found {
		return v
	}
	return fallback
}

// soave computes α = [1 + m(1-√Tr)]² and its first and second derivatives with respect to T
func soave(m, T, Tc float64) (α, dαdT, d2αdT2 float64) {
	sTr := math.Sqrt(T / Tc)
	s := 1 + m*(1-sTr)
	α = s * s
	dαdT = -m * s / (Tc * sTr)
	d2αdT2 = m*m/(2*T*Tc) + m*s/(2*T*Tc*sTr)
	return
}
