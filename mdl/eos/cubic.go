// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equations of state in terms of the compressibility factor
//  The cubic polynomial in Z, for dimensionless A and B, is:
//   f(Z) = Z³ - a・Z² + b・Z - c
//   a = 1 + B - (u・B)²
//   b = A + (w・B)² - u・B - (u・B)²
//   c = A・B + (w・B)² + (w・B)³
//  where (u, w) select the shape of the family; e.g. (1, 0) for Redlich-Kwong and
//  Soave-Redlich-Kwong and (2, -1) for Peng-Robinson.
package eos

import "math"

// constants used by the root finder
const (
	ZSmallDefault = 0.05  // liquid-like estimate when the stationary points are not available
	ZLargeDefault = 1.0   // vapour-like estimate when the stationary points are not available
	SmallFactor   = 0.9   // liquid root search starts at SmallFactor・z1
	LargeFactor   = 1.1   // vapour root search starts at LargeFactor・z2
	NmaxNewton    = 50    // max number of Newton steps
	TolZL         = 1e-12 // tolerance on |f(Z)| for the liquid root
	TolZG         = 1e-15 // tolerance on |f(Z)| for the vapour root
)

// Shape holds the (u, w) constants of a cubic equation of state
type Shape struct {
	U float64 // u constant
	W float64 // w constant
}

// shapes of the implemented families
var (
	RKShape = Shape{U: 1, W: 0}  // Redlich-Kwong and Soave-Redlich-Kwong
	PRShape = Shape{U: 2, W: -1} // Peng-Robinson
)

// Delta returns δ = √(u² - 4・w)
func (o Shape) Delta() float64 {
	return math.Sqrt(o.U*o.U - 4.0*o.W)
}

// cubic holds the coefficients of f(Z) = Z³ - a・Z² + b・Z - c
type cubic struct {
	a, b, c float64
}

// Coefs returns the coefficients (a, b, c) of f(Z) = Z³ - a・Z² + b・Z - c
func (o Shape) Coefs(A, B float64) (a, b, c float64) {
	cf := o.cubic(A, B)
	return cf.a, cf.b, cf.c
}

// Residual returns f(Z)
func (o Shape) Residual(Z, A, B float64) float64 {
	return o.cubic(A, B).f(Z)
}

// Deriv returns df/dZ
func (o Shape) Deriv(Z, A, B float64) float64 {
	return o.cubic(A, B).df(Z)
}

// Estimates returns the stationary points of f(Z) used as starting points
//  z1 -- smaller (liquid-like) estimate
//  z2 -- larger (vapour-like) estimate
//  Note: if the discriminant is negative, (ZSmallDefault, ZLargeDefault) is returned;
//        non-positive values are replaced by the same defaults
func (o Shape) Estimates(A, B float64) (z1, z2 float64) {
	return o.cubic(A, B).estimates()
}

// ZL returns the liquid-like root of the cubic equation
func (o Shape) ZL(A, B float64) float64 {
	cf := o.cubic(A, B)
	z1, z2 := cf.estimates()

	// start near the smaller estimate unless the local maximum is below zero
	z, fromSmall := z1*SmallFactor, true
	if cf.f(z1) < 0 || z1 <= 0 {
		z, fromSmall = z2*LargeFactor, false
	}

	// polish; switch branch at most once
	z = cf.newton(z, TolZL)
	if z <= 0 && fromSmall {
		z = cf.newton(z2*LargeFactor, TolZL)
	}
	return z
}

// ZG returns the vapour-like root of the cubic equation
func (o Shape) ZG(A, B float64) float64 {
	cf := o.cubic(A, B)
	z1, z2 := cf.estimates()
	z := z2 * LargeFactor
	if cf.f(z2) > 0 {
		z = z1 * SmallFactor
	}
	return cf.newton(z, TolZG)
}

// ZLs computes liquid-like roots for each (A[i], B[i]) pair
func (o Shape) ZLs(A, B []float64) (res []float64) {
	res = make([]float64, len(A))
	for i := 0; i < len(A); i++ {
		res[i] = o.ZL(A[i], B[i])
	}
	return
}

// ZGs computes vapour-like roots for each (A[i], B[i]) pair
func (o Shape) ZGs(A, B []float64) (res []float64) {
	res = make([]float64, len(A))
	for i := 0; i < len(A); i++ {
		res[i] = o.ZG(A[i], B[i])
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o Shape) cubic(A, B float64) cubic {
	uB, wB := o.U*B, o.W*B
	return cubic{
		a: 1 + B - uB*uB,
		b: A + wB*wB - uB - uB*uB,
		c: A*B + wB*wB + wB*wB*wB,
	}
}

func (o cubic) f(z float64) float64 {
	return z*z*z - o.a*z*z + o.b*z - o.c
}

func (o cubic) df(z float64) float64 {
	return 3*z*z - 2*o.a*z + o.b
}

// estimates solves f'(Z) = 3Z² - 2aZ + b = 0
func (o cubic) estimates() (z1, z2 float64) {
	a2 := 2 * o.a
	disc := a2*a2 - 12*o.b
	if disc < 0 {
		return ZSmallDefault, ZLargeDefault
	}
	sq := math.Sqrt(disc)
	z1 = (a2 - sq) / 6
	z2 = (a2 + sq) / 6
	if z1 <= 0 {
		z1 = ZSmallDefault
	}
	if z2 <= 0 {
		z2 = ZLargeDefault
	}
	return
}

// newton runs at most NmaxNewton steps of Newton's method
func (o cubic) newton(z, tol float64) float64 {
	for it := 0; it < NmaxNewton; it++ {
		fz := o.f(z)
		if math.Abs(fz) <= tol {
			break
		}
		dfz := o.df(z)
		if dfz == 0 {
			break
		}
		z -= fz / dfz
	}
	return z
}
