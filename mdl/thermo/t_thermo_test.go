// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"testing"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_thermo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo01. ideal gas properties")

	comps, err := comp.Examples("propane", "n-hexane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	central := &fd.Settings{Formula: fd.Central}
	for _, c := range comps {
		chk.Float64(tst, c.Name+": H(Tref)", 1e-12, H(c, Tref), 0)
		chk.Float64(tst, c.Name+": S(Tref)", 1e-12, S(c, Tref), 0)
		for _, T := range []float64{250, 300, 400} {
			dHdT := fd.Derivative(func(t float64) float64 { return H(c, t) }, T, central)
			dSdT := fd.Derivative(func(t float64) float64 { return S(c, t) }, T, central)
			io.Pforan("%-8s T=%g: Cp = %v  dH/dT = %v\n", c.Name, T, Cp(c, T), dHdT)
			chk.Float64(tst, c.Name+": dH/dT == Cp", 1e-5, dHdT, Cp(c, T))
			chk.Float64(tst, c.Name+": dS/dT == Cp/T", 1e-7, dSdT, Cp(c, T)/T)
		}
	}

	// propane heat capacity at Tref is about 73.6 J/(mol・K)
	chk.Float64(tst, "Cp(propane)", 0.5, Cp(comps[0], Tref), 73.6)

	hs := Hs(comps, 350)
	if hs[0] <= 0 || hs[1] <= hs[0] {
		tst.Errorf("enthalpies are incorrect: %v\n", hs)
	}
}

func Test_thermo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo02. Watson heat of vaporisation")

	comps, err := comp.Examples("propane", "n-butane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, c := range comps {
		chk.Float64(tst, c.Name+": Hv(Tb)", 1e-10, Watson(c, c.Tb), c.Hv)
		chk.Float64(tst, c.Name+": Hv(Tc)", 1e-15, Watson(c, c.Tc), 0)
		chk.Float64(tst, c.Name+": Hv(T>Tc)", 1e-15, Watson(c, c.Tc+10), 0)
		prev := Watson(c, 200)
		for _, T := range []float64{250, 300, 350} {
			hv := Watson(c, T)
			io.Pforan("%-8s T=%g: Hv = %v\n", c.Name, T, hv)
			if hv >= prev {
				tst.Errorf("%s: heat of vaporisation must decrease with T\n", c.Name)
			}
			prev = hv
		}
	}

	// butane at 300 K: 22440・(125.2/152.5)^0.38
	chk.Float64(tst, "Hv(n-butane, 300)", 1e-8, Watson(comps[1], 300), 22440*0.9277844821733298)

	// missing data
	var c comp.Component
	c.Init("X", comp.GetPrms()[:5])
	chk.Float64(tst, "Hv without Tb", 1e-15, Watson(&c, 300), 0)
}
