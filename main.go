// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/goflash/flash"
	"github.com/cpmech/goflash/inp"
	"github.com/cpmech/goflash/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".flh", true)
	verbose := io.ArgToBool(1, true)
	chk.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nGoflash -- vapour-liquid flash with cubic equations of state\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// case data
	dir, fn := filepath.Split(fnamepath)
	cas, err := inp.ReadCase(dir, fn)
	if err != nil {
		chk.Panic("ReadCase failed:\n%v", err)
	}
	if verbose {
		io.Pfyel("%s\n", cas.Desc)
		if spec, ok := cas.Spec(); ok {
			io.Pfyel("%v\n", spec)
		}
	}

	// run
	drv, err := cas.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// summary
	io.Pf("%12s%12s%23s%6s%5s\n", "T", "P", "FracVap", "nit", "conv")
	for _, s := range drv.Res {
		io.Pf("%12.4f%12.4f%23.15e%6d%5v\n", s.T, s.P, s.FracVap, s.Iterations, s.Converged)
	}
	if len(drv.Res) == 1 {
		summary(drv.Res[0], cas)
	}

	// plot
	if cas.Plot && cas.Sweep != nil {
		_, err = out.PlotSweep(drv.Res, drv.Key, cas.Comps, cas.DirOut, cas.Key)
		if err != nil {
			chk.Panic("PlotSweep failed:\n%v", err)
		}
	}
}

// summary prints the details of a single flash
func summary(s *flash.State, cas *inp.Case) {
	io.Pf("\n%-12s%14s%14s%14s%14s%14s%14s\n", "component", "z", "x", "y", "K", "fL", "fV")
	for i, c := range cas.Cmps {
		io.Pf("%-12s%14.6f%14.6f%14.6f%14.6e%14.6e%14.6e\n", c.Name, s.Feed[i], s.X[i], s.Y[i], s.K[i], s.FugL[i], s.FugV[i])
	}
	if s.PreVap != nil {
		io.Pf("Pvap = %v [kPa]\n", s.PreVap)
	}
	io.Pf("\nTc = %g  Pc = %g  Zc = %g  Tr = %g  Pr = %g\n", s.Tc, s.Pc, s.Zc, s.Tr, s.Pr)
	io.Pf("Zl = %g  Zv = %g  Z = %g\n", s.Zl, s.Zv, s.Z)
	io.Pf("DenL = %g  DenV = %g [g/L]\n", s.DenL, s.DenV)
	io.Pf("Hl = %g  Hv = %g  H = %g  Lv = %g [J/mol]\n", s.Hl, s.Hv, s.H, s.Lv)
	io.Pf("Sl = %g  Sv = %g  S = %g [J/(mol・K)]\n", s.Sl, s.Sv, s.S)
	io.Pf("CpL = %g  CpV = %g  CvL = %g  CvV = %g [J/(mol・K)]\n", s.CpL, s.CpV, s.CvL, s.CvV)
	io.Pf("Σ fL - Σ fV = %g [kPa]\n", s.FugaRes)
}
