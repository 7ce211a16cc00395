// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vapp implements vapour pressure correlations of pure components
//  The correlations are used to seed K-values (K = Pvap/P) and to estimate the
//  starting temperature or pressure of flashes with other specifications.
//  Units: P [kPa]; T [K]
package vapp

import (
	"strings"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	MmHgToKPa = 0.13332236          // conversion factor from mmHg to kPa
	LnPMin    = -36.0               // smallest ln P[mmHg] before flooring
	LnPFloor  = -18.420680743952367 // floored value of ln P[mmHg]
)

// Model defines a vapour pressure correlation
//  Init reads its coefficients from a component parameter list; unrelated keys are ignored
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	P(T float64) float64             // computes the vapour pressure at T
	T(P float64) float64             // computes the saturation temperature at P
}

// New returns new vapour pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("model %q is not available in 'vapp' database", name)
	}
	return allocator(), nil
}

// ForComponents allocates and initialises one model per component
func ForComponents(name string, comps []*comp.Component) (models []Model, err error) {
	models = make([]Model, len(comps))
	for i, c := range comps {
		models[i], err = New(name)
		if err != nil {
			return
		}
		err = models[i].Init(c.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise %q model for component %q:\n%v", name, c.Name, err)
		}
	}
	return
}

// Ps computes the vapour pressures of all models at T
func Ps(models []Model, T float64) (res []float64) {
	res = make([]float64, len(models))
	for i, m := range models {
		res[i] = m.P(T)
	}
	return
}

// Ts computes the saturation temperatures of all models at P
func Ts(models []Model, P float64) (res []float64) {
	res = make([]float64, len(models))
	for i, m := range models {
		res[i] = m.T(P)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// coefs reads the required keys from prms (case insensitive)
func coefs(model string, prms dbf.Params, keys ...string) (vals []float64, err error) {
	vals = make([]float64, len(keys))
	for i, key := range keys {
		found := false
		for _, p := range prms {
			if strings.EqualFold(p.N, key) {
				vals[i], found = p.V, true
				break
			}
		}
		if !found {
			return nil, chk.Err("%s: parameter %q is missing\n", model, key)
		}
	}
	return
}
