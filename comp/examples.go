// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ExamplePrms returns the parameters of some light hydrocarbons
//  Data: Reid, Prausnitz and Poling (1987) The properties of gases and liquids, 4th ed.
//  Antoine coefficients give ln P[mmHg] with T in K; Hv [J/mol] is given at Tb
func ExamplePrms(name string) (prms dbf.Params, err error) {
	v, ok := examples[strings.ToUpper(name)]
	if !ok {
		return nil, chk.Err("component %q is not available in the examples", name)
	}
	keys := []string{"Tc", "Pc", "Vc", "omega", "molwt", "Tb", "cpA", "cpB", "cpC", "cpD", "antA", "antB", "antC", "Hv"}
	for i, key := range keys {
		prms = append(prms, &dbf.P{N: key, V: v[i]})
	}
	return
}

// Examples allocates and initialises example components
func Examples(names ...string) (comps []*Component, err error) {
	comps = make([]*Component, len(names))
	for i, name := range names {
		var prms dbf.Params
		prms, err = ExamplePrms(name)
		if err != nil {
			return
		}
		comps[i] = new(Component)
		err = comps[i].Init(strings.ToUpper(name), prms)
		if err != nil {
			return
		}
	}
	return
}

// examples holds: Tc, Pc, Vc, ω, MW, Tb, cpA, cpB, cpC, cpD, antA, antB, antC, Hv
var examples = map[string][]float64{
	"ETHANE":    {305.4, 4880, 148.3, 0.099, 30.070, 184.6, 5.409, 1.781e-1, -6.938e-5, 8.713e-9, 15.6637, 1511.42, -17.16, 14720},
	"PROPANE":   {369.8, 4250, 203.0, 0.153, 44.097, 231.1, -4.224, 3.063e-1, -1.586e-4, 3.215e-8, 15.7260, 1872.46, -25.16, 19040},
	"N-BUTANE":  {425.2, 3800, 255.0, 0.199, 58.124, 272.7, 9.487, 3.313e-1, -1.108e-4, -2.822e-9, 15.6782, 2154.90, -34.42, 22440},
	"N-PENTANE": {469.7, 3370, 304.0, 0.251, 72.151, 309.2, -3.626, 4.873e-1, -2.580e-4, 5.305e-8, 15.8333, 2477.07, -39.94, 25790},
	"N-HEXANE":  {507.5, 3010, 370.0, 0.299, 86.178, 341.9, -4.413, 5.820e-1, -3.119e-4, 6.494e-8, 15.8366, 2697.55, -48.78, 28850},
}
