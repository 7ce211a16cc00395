// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of flash results
package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/goflash/flash"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// figure size
var (
	FigWidth  = 6 * vg.Inch
	FigHeight = 4 * vg.Inch
)

// PlotSweep writes PNG plots of results of a sweep of isothermal flashes against the swept
// variable: vapour fraction, K-values and phase compositions
//  key   -- swept variable: "P" or "T"
//  names -- names of components used in legends; may be nil
//  Output: fnames -- full path of all files written to dirout
func PlotSweep(res []*flash.State, key string, names []string, dirout, fnkey string) (fnames []string, err error) {

	// check
	if len(res) == 0 {
		return nil, chk.Err("out: there are no results to plot")
	}
	if key != "P" && key != "T" {
		return nil, chk.Err("out: swept variable must be \"P\" or \"T\". %q is invalid", key)
	}
	ncomp := len(res[0].Feed)
	if names == nil {
		names = make([]string, ncomp)
		for i := range names {
			names[i] = io.Sf("comp%d", i)
		}
	}
	if len(names) != ncomp {
		return nil, chk.Err("out: number of names (%d) must be equal to the number of components (%d)", len(names), ncomp)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}

	// swept variable
	xs := make([]float64, len(res))
	for i, s := range res {
		xs[i] = s.T
		if key == "P" {
			xs[i] = s.P
		}
	}
	xlbl := GetLabel(key, GetUnit(key))

	// vapour fraction
	p := newPlot("vapour fraction", xlbl, GetLabel("FracVap", ""))
	err = plotutil.AddLinePoints(p, "FracVap", series(xs, res, func(s *flash.State) float64 { return s.FracVap }))
	if err != nil {
		return
	}
	fn, err := save(p, dirout, fnkey+"_fracvap.png")
	if err != nil {
		return
	}
	fnames = append(fnames, fn)

	// per component quantities
	perComp := []struct {
		suffix, title, lbl string
		getter             func(s *flash.State, i int) float64
	}{
		{"_k.png", "K-values", "K", func(s *flash.State, i int) float64 { return math.Log(s.K[i]) }},
		{"_x.png", "liquid composition", "x", func(s *flash.State, i int) float64 { return s.X[i] }},
		{"_y.png", "vapour composition", "y", func(s *flash.State, i int) float64 { return s.Y[i] }},
	}
	for _, pc := range perComp {
		p = newPlot(pc.title, xlbl, GetLabel(pc.lbl, ""))
		var vs []interface{}
		for i := 0; i < ncomp; i++ {
			idx, getter := i, pc.getter
			vs = append(vs, names[i], series(xs, res, func(s *flash.State) float64 { return getter(s, idx) }))
		}
		err = plotutil.AddLinePoints(p, vs...)
		if err != nil {
			return
		}
		fn, err = save(p, dirout, fnkey+pc.suffix)
		if err != nil {
			return
		}
		fnames = append(fnames, fn)
	}
	return
}

// newPlot allocates a new plot
func newPlot(title, xlbl, ylbl string) (p *plot.Plot) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlbl
	p.Y.Label.Text = ylbl
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return
}

// series collects (x, value) pairs
func series(xs []float64, res []*flash.State, getter func(s *flash.State) float64) (xys plotter.XYs) {
	xys = make(plotter.XYs, len(res))
	for i, s := range res {
		xys[i].X = xs[i]
		xys[i].Y = getter(s)
	}
	return
}

// save saves figure
func save(p *plot.Plot, dirout, fn string) (fnpath string, err error) {
	fnpath = filepath.Join(dirout, fn)
	err = p.Save(FigWidth, FigHeight, fnpath)
	if err != nil {
		return "", chk.Err("out: cannot save figure %q:\n%v", fnpath, err)
	}
	io.Pf("file <%s> written\n", fnpath)
	return
}
