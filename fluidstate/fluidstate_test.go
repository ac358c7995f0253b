// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidstate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/hydro/geom"
)

func Test_expand_contract01(tst *testing.T) {

	chk.PrintTitle("expand_contract01")

	s := State{R: 2, V: geom.Vector3{X: 3, Y: 4, Z: 0}, E: 10, P: 123}
	back := s.Expand().Contract()

	chk.Scalar(tst, "R", 1e-13, back.R, s.R)
	chk.Scalar(tst, "Vx", 1e-13, back.V.X, s.V.X)
	chk.Scalar(tst, "Vy", 1e-13, back.V.Y, s.V.Y)
	chk.Scalar(tst, "Vz", 1e-13, back.V.Z, s.V.Z)
	chk.Scalar(tst, "E", 1e-13, back.E, s.E)
}

func Test_atmosphere01(tst *testing.T) {

	chk.PrintTitle("atmosphere01")

	a := NewAtmosphere()
	p := (Gamma - 1) * a.R * a.E
	chk.Scalar(tst, "P from ideal-gas closure", 1e-9, p, a.P)
}

func Test_mirror01(tst *testing.T) {

	chk.PrintTitle("mirror01")

	s := State{R: 1, V: geom.Vector3{X: 1, Y: 2, Z: 3}, E: 1, P: 1}
	m := s.MirrorNormal(0)
	chk.Scalar(tst, "Vx flips", 1e-15, m.V.X, -s.V.X)
	chk.Scalar(tst, "Vy unchanged", 1e-15, m.V.Y, s.V.Y)
	chk.Scalar(tst, "Vz unchanged", 1e-15, m.V.Z, s.V.Z)
	chk.Scalar(tst, "R unchanged", 1e-15, m.R, s.R)
}

func Test_params01(tst *testing.T) {

	chk.PrintTitle("params01")

	s := State{R: 1.1, V: geom.Vector3{X: 2.2, Y: 3.3, Z: 4.4}, E: 5.5, P: 6.6}
	prms := s.Params()

	var back State
	back.SetParams(prms)
	chk.Scalar(tst, "R", 1e-15, back.R, s.R)
	chk.Scalar(tst, "Vx", 1e-15, back.V.X, s.V.X)
	chk.Scalar(tst, "E", 1e-15, back.E, s.E)
	chk.Scalar(tst, "P", 1e-15, back.P, s.P)
}
