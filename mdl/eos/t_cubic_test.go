// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
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

func Test_cubic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic01. liquid and vapour roots away from the critical point")

	comps, err := comp.Examples("propane", "n-butane", "n-hexane")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	states := [][]float64{{280, 100}, {300, 500}, {320, 200}}
	for _, name := range Names() {
		fam, err := NewInit(name, nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		sh := fam.Shape()
		for _, tp := range states {
			A, B := Dimensionless(fam, comps, tp[0], tp[1])
			zl, zg := sh.ZLs(A, B), sh.ZGs(A, B)
			for i := range comps {
				rl, rg := sh.Residual(zl[i], A[i], B[i]), sh.Residual(zg[i], A[i], B[i])
				io.Pforan("%4s T=%g P=%g %-9s: A=%.5f B=%.5f ZL=%.8f ZG=%.8f f(ZL)=%9.2e f(ZG)=%9.2e\n",
					name, tp[0], tp[1], comps[i].Name, A[i], B[i], zl[i], zg[i], rl, rg)
				if math.Abs(rl) > 1e-8 || math.Abs(rg) > 1e-8 {
					tst.Errorf("%s: residuals are too large: %g, %g\n", name, rl, rg)
					return
				}
				if zl[i] <= B[i] {
					tst.Errorf("%s: liquid root %g must be greater than B = %g\n", name, zl[i], B[i])
					return
				}

				// three real roots: local max above zero and local min below zero
				z1, z2 := sh.Estimates(A[i], B[i])
				if sh.Residual(z1, A[i], B[i]) > 0 && sh.Residual(z2, A[i], B[i]) < 0 {
					if zl[i] >= zg[i] {
						tst.Errorf("%s: liquid root %g must be smaller than vapour root %g\n", name, zl[i], zg[i])
						return
					}
					continue
				}

				// one real root: both selectors find it
				io.Pfyel("%4s T=%g P=%g %-9s: single real root\n", name, tp[0], tp[1], comps[i].Name)
				chk.Float64(tst, name+": ZL == ZG", 1e-8*zg[i], zl[i], zg[i])
			}
		}
	}
}

func Test_cubic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic02. one real root")

	A, B := 0.5, 0.01
	z1, z2 := RKShape.Estimates(A, B)
	chk.Float64(tst, "z1", 1e-15, z1, ZSmallDefault)
	chk.Float64(tst, "z2", 1e-15, z2, ZLargeDefault)

	zl, zg := RKShape.ZL(A, B), RKShape.ZG(A, B)
	io.Pforan("ZL = %v  ZG = %v\n", zl, zg)
	chk.Float64(tst, "ZL == ZG", 1e-8, zl, zg)
	if math.Abs(RKShape.Residual(zl, A, B)) > 1e-8 {
		tst.Errorf("residual of ZL is too large\n")
	}
}

func Test_cubic03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic03. coefficients and derivative")

	A, B := 0.2, 0.05

	// (u,w) = (1,0): a = 1 + B - B², b = A - B - B², c = AB
	a, b, c := RKShape.Coefs(A, B)
	chk.Float64(tst, "RK a", 1e-15, a, 1+B-B*B)
	chk.Float64(tst, "RK b", 1e-15, b, A-B-B*B)
	chk.Float64(tst, "RK c", 1e-15, c, A*B)

	// (u,w) = (2,-1)
	a, b, c = PRShape.Coefs(A, B)
	chk.Float64(tst, "PR a", 1e-15, a, 1+B-4*B*B)
	chk.Float64(tst, "PR b", 1e-15, b, A+B*B-2*B-4*B*B)
	chk.Float64(tst, "PR c", 1e-15, c, A*B+B*B-B*B*B)

	for _, sh := range []Shape{RKShape, PRShape} {
		for _, z := range []float64{0.01, 0.3, 0.9, 1.2} {
			ana := sh.Deriv(z, A, B)
			num := fd.Derivative(func(x float64) float64 { return sh.Residual(x, A, B) }, z, &fd.Settings{Formula: fd.Central})
			io.Pforan("u=%g z=%g: df/dZ = %v  num = %v\n", sh.U, z, ana, num)
			chk.Float64(tst, "df/dZ", 1e-8, ana, num)
		}
	}
}

func Test_cubic04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic04. logarithmic term")

	Z, B := 0.85, 0.04
	chk.Float64(tst, "RK L", 1e-15, RKShape.LogTerm(Z, B), math.Log(1+B/Z))

	s2 := math.Sqrt2
	L := math.Log((Z+B*(1+s2))/(Z+B*(1-s2))) / (2 * s2)
	chk.Float64(tst, "PR L", 1e-14, PRShape.LogTerm(Z, B), L)
}
