// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapp

import (
	"math"
	"testing"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_antoine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("antoine01. n-butane")

	mdl, err := New("Antoine")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// normal boiling point
	Pb := mdl.P(272.7)
	io.Pforan("P(Tb) = %v\n", Pb)
	chk.Float64(tst, "P(Tb)", 1.0, Pb, 101.325)

	// inverse
	for _, T := range utl.LinSpace(200, 400, 11) {
		chk.Float64(tst, "T(P(T))", 1e-10, mdl.T(mdl.P(T)), T)
	}

	// floor
	o := mdl.(*Antoine)
	chk.Float64(tst, "floored P", 1e-20, o.P(1-o.C), math.Exp(LnPFloor)*MmHgToKPa)

	// missing coefficients
	err = mdl.Init(dbf.Params{&dbf.P{N: "antA", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with missing coefficients\n")
	}
}

func Test_harlacher01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("harlacher01. fixed point and Newton iterations")

	mdl, _ := New("harlacher")
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*Harlacher)
	for _, T := range []float64{320, 350, 380} {
		P := mdl.P(T)
		Pmm := P / MmHgToKPa
		lnP := o.A + o.B/T + o.C*math.Log(T) + o.D*Pmm/(T*T)
		io.Pforan("T = %g  P = %v  T(P) = %v\n", T, P, mdl.T(P))
		chk.Float64(tst, "ln P", 1e-3, math.Log(Pmm), lnP)
		chk.Float64(tst, "T(P(T))", 0.05, mdl.T(P), T)
	}

	// without D, P(T) is explicit
	o.D = 0
	T := 350.0
	chk.Float64(tst, "P(T) with D=0", 1e-12, o.P(T), math.Exp(o.A+o.B/T+o.C*math.Log(T))*MmHgToKPa)
}

func Test_wilson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wilson01. critical point and acentric factor")

	mdl, _ := New("wilson")
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*Wilson)
	chk.Float64(tst, "P(Tc)", 1e-12, mdl.P(o.Tc), o.Pc)

	// P/Pc ≈ 10^-(1+ω) at Tr = 0.7
	Pr := mdl.P(0.7*o.Tc) / o.Pc
	chk.Float64(tst, "Pr(0.7)", 5e-4*Pr, Pr, math.Pow(10, -(1+o.Omega)))

	for _, P := range []float64{10, 100, 1000} {
		chk.Float64(tst, "P(T(P))", 1e-10, mdl.P(mdl.T(P)), P)
	}
}

func Test_vapp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vapp01. models for components")

	_, err := New("clausius")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
		return
	}

	comps, err := comp.Examples("ethane", "propane", "n-butane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, name := range []string{"antoine", "wilson"} {
		models, err := ForComponents(name, comps)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		ps := Ps(models, 280)
		ts := Ts(models, 101.325)
		io.Pforan("%8s: Pvap(280) = %v  Tsat(1atm) = %v\n", name, ps, ts)

		// lighter components are more volatile
		if !(ps[0] > ps[1] && ps[1] > ps[2]) {
			tst.Errorf("%s: vapour pressures are not ordered: %v\n", name, ps)
		}
		if !(ts[0] < ts[1] && ts[1] < ts[2]) {
			tst.Errorf("%s: saturation temperatures are not ordered: %v\n", name, ts)
		}
	}

	// normal boiling points from Antoine
	models, _ := ForComponents("antoine", comps)
	for i, c := range comps {
		chk.Float64(tst, c.Name+" Tb", 1.0, models[i].T(101.325), c.Tb)
	}

	_, err = ForComponents("harlacher", comps)
	if err == nil {
		tst.Errorf("ForComponents should have failed because Harlacher coefficients are missing\n")
	}
	io.Pforan("err = %v\n", err)
}
