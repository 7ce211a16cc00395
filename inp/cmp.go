// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data readers for component databases (.cmp) and flash
// cases (.flh). Files are JSON; YAML is used if the extension is .yaml or .yml
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/goflash/comp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// PrmData holds one parameter as written in input files
type PrmData struct {
	N string  `json:"n" yaml:"n"` // name of parameter
	V float64 `json:"v" yaml:"v"` // value of parameter
}

// PrmsData holds parameters
type PrmsData []*PrmData

// Params converts PrmsData to dbf.Params
func (o PrmsData) Params() (prms dbf.Params) {
	for _, p := range o {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// CmpData holds component data
type CmpData struct {
	Name  string   `json:"name" yaml:"name"`   // name of component; e.g. "N-BUTANE"
	Extra string   `json:"extra" yaml:"extra"` // extra information about this component
	Prms  PrmsData `json:"prms" yaml:"prms"`   // all properties
}

// CmpDb implements a database of components
type CmpDb struct {
	Components []*CmpData `json:"components" yaml:"components"` // all components
}

// ReadCmp reads all components data from a .cmp file
func ReadCmp(dir, fn string) (cdb *CmpDb, err error) {
	cdb = new(CmpDb)
	err = decode(dir, fn, cdb)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for i, c := range cdb.Components {
		key := strings.ToUpper(c.Name)
		if key == "" {
			return nil, chk.Err("component # %d in %q has no name", i, fn)
		}
		if names[key] {
			return nil, chk.Err("component %q is defined more than once in %q", c.Name, fn)
		}
		names[key] = true
	}
	return
}

// Find returns component data (case insensitive)
//  Note: returns nil if not found
func (o CmpDb) Find(name string) *CmpData {
	for _, c := range o.Components {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Get allocates and initialises components
func (o CmpDb) Get(names ...string) (comps []*comp.Component, err error) {
	if len(names) == 0 {
		return nil, chk.Err("at least one component name must be given")
	}
	comps = make([]*comp.Component, len(names))
	for i, name := range names {
		c := o.Find(name)
		if c == nil {
			return nil, chk.Err("cannot find component named %q", name)
		}
		comps[i] = new(comp.Component)
		err = comps[i].Init(strings.ToUpper(c.Name), c.Prms.Params())
		if err != nil {
			return
		}
	}
	return
}

// String outputs all components
func (o CmpDb) String() string {
	l := "{\n  \"components\" : [\n"
	for i, c := range o.Components {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\n      \"name\"  : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", c.Name, c.Extra)
		for j, p := range c.Prms {
			if j > 0 {
				l += ",\n"
			}
			l += io.Sf("        {\"n\" : %q, \"v\" : %g}", p.N, p.V)
		}
		l += "\n      ]\n    }"
	}
	return l + "\n  ]\n}"
}

// decode reads a JSON or YAML file into v
func decode(dir, fn string, v interface{}) (err error) {
	b := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		err = json.Unmarshal(b, v)
	}
	if err != nil {
		return chk.Err("cannot decode %q:\n%v", fn, err)
	}
	return
}
