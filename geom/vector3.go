// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the 3-coordinate arithmetic primitives used
// throughout the grid and solver packages
package geom

import "math"

// Vector3 holds a 3-component Cartesian vector
type Vector3 struct {
	X, Y, Z float64
}

// Point3 is an alias of Vector3 used where the triple denotes a position
// rather than a direction
type Point3 = Vector3

// Add returns a+b
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a*s
func (a Vector3) Scale(s float64) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the scalar (inner) product a・b
func (a Vector3) Dot(b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Mid returns the midpoint of a and b
func (a Vector3) Mid(b Vector3) Vector3 {
	return Vector3{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Norm returns |a|
func (a Vector3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// NormSq returns |a|²
func (a Vector3) NormSq() float64 {
	return a.Dot(a)
}

// Component returns the scalar component along face direction axis: 0=I, 1=J, 2=K
func (a Vector3) Component(axis int) float64 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	panic("geom: invalid axis")
}

// WithComponent returns a copy of a with the given axis replaced by v
func (a Vector3) WithComponent(axis int, v float64) Vector3 {
	switch axis {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		panic("geom: invalid axis")
	}
	return a
}
