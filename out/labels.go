// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetLabel returns the axis label corresponding to a key
func GetLabel(key, unit string) string {
	var l string
	switch key {
	case "T":
		l = "temperature"
	case "P":
		l = "pressure"
	case "FracVap":
		l = "vapour fraction"
	case "K":
		l = "ln(K)"
	case "x":
		l = "liquid mole fraction"
	case "y":
		l = "vapour mole fraction"
	case "H":
		l = "enthalpy"
	case "Z":
		l = "compressibility factor"
	case "S":
		l = "entropy"
	case "Cp":
		l = "heat capacity"
	default:
		l = key
	}
	if unit != "" {
		l += " [" + unit + "]"
	}
	return l
}

// GetUnit returns the unit of a swept variable
func GetUnit(key string) string {
	switch key {
	case "T":
		return "K"
	case "P":
		return "kPa"
	case "H":
		return "J/mol"
	case "S", "Cp":
		return "J/(mol・K)"
	}
	return ""
}
