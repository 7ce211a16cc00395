// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver runs sweeps of isothermal flashes
type Driver struct {

	// input
	Sol *Solver // flash solver

	// settings
	Silent bool // do not show messages

	// results
	Key string    // swept variable: "P" or "T"
	Xs  []float64 // values of the swept variable
	Res []*State  // results
}

// Init initialises driver
func (o *Driver) Init(sol *Solver) (err error) {
	if sol == nil {
		return chk.Err("driver: solver must be given")
	}
	o.Sol = sol
	o.Silent = !chk.Verbose
	return
}

// RunP runs flashes at fixed temperature for all pressures in Ps
func (o *Driver) RunP(T float64, Ps, z []float64) (err error) {
	o.Key, o.Xs = "P", Ps
	return o.run(func(i int) (*State, error) { return o.Sol.Isothermal(T, Ps[i], z) })
}

// RunT runs flashes at fixed pressure for all temperatures in Ts
func (o *Driver) RunT(P float64, Ts, z []float64) (err error) {
	o.Key, o.Xs = "T", Ts
	return o.run(func(i int) (*State, error) { return o.Sol.Isothermal(Ts[i], P, z) })
}

// run runs all flashes
func (o *Driver) run(flash func(i int) (*State, error)) (err error) {
	o.Res = make([]*State, len(o.Xs))
	if !o.Silent {
		io.Pf("%12s%12s%12s%23s%6s%5s\n", "T", "P", o.Key, "FracVap", "nit", "conv")
	}
	for i := range o.Xs {
		o.Res[i], err = flash(i)
		if err != nil {
			return fmt.Errorf("driver: flash %d failed: %w", i, err)
		}
		if !o.Silent {
			s := o.Res[i]
			io.Pf("%12.4f%12.4f%12.4f%23.15e%6d%5v\n", s.T, s.P, o.Xs[i], s.FracVap, s.Iterations, s.Converged)
		}
	}
	return
}

// Values collects one quantity over all results
//  Example: F := driver.Values(func(s *State) float64 { return s.FracVap })
func (o Driver) Values(getter func(s *State) float64) (res []float64) {
	res = make([]float64, len(o.Res))
	for i, s := range o.Res {
		res[i] = getter(s)
	}
	return
}
