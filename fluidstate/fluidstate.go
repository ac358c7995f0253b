// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluidstate implements the per-cell conserved variables of the
// compressible Euler equations and their normal/expanded (conservative)
// forms
package fluidstate

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/hydro/geom"
)

// Gamma is the ideal-gas ratio of specific heats; fixed for this engine
const Gamma = 1.4

// Atmosphere is the reference standard-atmosphere initial condition
var Atmosphere = State{R: 1.225, V: geom.Vector3{}, P: 101325}

// State holds the five scalars of a cell's fluid state: density R,
// velocity V, internal energy E and pressure P.
//
// Two forms share this type:
//   - normal form: V is velocity, E is specific internal energy per unit mass
//   - expanded (conservative) form: V is momentum per volume (ρV), E is
//     total energy per volume (ρ(E + ½|V|²))
//
// Which form is held is a contract between caller and callee, not a flag
// on the struct; GodunovStep converts explicitly at the boundaries of its
// per-step procedure.
type State struct {
	R float64     // density
	V geom.Vector3 // velocity (normal form) or momentum per volume (expanded form)
	E float64     // specific internal energy (normal form) or total energy per volume (expanded form)
	P float64     // pressure
}

// NewAtmosphere returns a copy of the standard-atmosphere state with the
// internal energy derived from the ideal-gas closure
func NewAtmosphere() State {
	s := Atmosphere
	s.E = s.P / ((Gamma - 1) * s.R)
	return s
}

// Expand converts a normal-form state into expanded (conservative) form:
// V -> ρV, E -> ρ(E + ½|V|²)
func (s State) Expand() State {
	half := 0.5 * s.V.NormSq()
	return State{
		R: s.R,
		V: s.V.Scale(s.R),
		E: s.R * (s.E + half),
		P: s.P,
	}
}

// Contract is the inverse of Expand: V -> V/ρ, E -> E/ρ - ½|V|², and
// pressure is re-derived from the ideal-gas closure P = (γ-1)・ρ・E
func (s State) Contract() State {
	v := s.V.Scale(1 / s.R)
	e := s.E/s.R - 0.5*v.NormSq()
	return State{
		R: s.R,
		V: v,
		E: e,
		P: (Gamma - 1) * s.R * e,
	}
}

// Params returns the fluid state as a gosl/fun parameter list, following
// the same {name,value} convention used by mdl/fluid.Model, so the state
// can be read from or written into a simulation's JSON parameter set
func (s State) Params() fun.Params {
	return fun.Params{
		&fun.P{N: "R", V: s.R},
		&fun.P{N: "Vx", V: s.V.X},
		&fun.P{N: "Vy", V: s.V.Y},
		&fun.P{N: "Vz", V: s.V.Z},
		&fun.P{N: "E", V: s.E},
		&fun.P{N: "P", V: s.P},
	}
}

// SetParams initialises a normal-form state from a gosl/fun parameter list
func (s *State) SetParams(prms fun.Params) {
	for _, p := range prms {
		switch p.N {
		case "R":
			s.R = p.V
		case "Vx":
			s.V.X = p.V
		case "Vy":
			s.V.Y = p.V
		case "Vz":
			s.V.Z = p.V
		case "E":
			s.E = p.V
		case "P":
			s.P = p.V
		}
	}
}

// MirrorNormal returns a copy of a normal-form state with the velocity
// component along axis (0=I,1=J,2=K) inverted; used to build the
// reflecting-boundary ghost state
func (s State) MirrorNormal(axis int) State {
	m := s
	m.V = m.V.WithComponent(axis, -m.V.Component(axis))
	return m
}
