// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package godunov

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/hydro/fluidstate"
	"github.com/cpmech/hydro/grid"
)

// newClosedBlock builds a standalone ni x nj x nk Cartesian block with every
// facet defaulted to a reflecting wall, the way grid.Load leaves any
// facet cell the .ibc file doesn't claim as an interface.
func newClosedBlock(ni, nj, nk int) *grid.Block {
	b := grid.NewBlock(0, ni, nj, nk)
	b.Rank = 0
	b.Activate()
	b.BuildCartesian(2, 1.5, 1)
	for _, dir := range []grid.Direction{grid.IMinus, grid.IPlus, grid.JMinus, grid.JPlus, grid.KMinus, grid.KPlus} {
		b.Facets[dir].FillDefault(grid.BoundaryCondition{Kind: grid.Reflecting})
	}
	return b
}

// Test_step_uniform_steady01 checks that a uniform standard-atmosphere
// state bounded entirely by reflecting walls is an exact fixed point of
// Step: the reflecting-wall momentum term and the interior pairwise
// pressure term cancel at every cell, and every cell's velocity stays at
// zero so the mass and energy fluxes are identically zero (spec §4.6,
// invariant 2).
func Test_step_uniform_steady01(tst *testing.T) {

	chk.PrintTitle("step_uniform_steady01")

	g := grid.NewGrid(0, 1)
	g.Blocks = []*grid.Block{newClosedBlock(4, 3, 2)}

	atm := fluidstate.NewAtmosphere()
	Step(g, 1e-4, AverageSolver{})

	b := g.Blocks[0]
	for k := 0; k < b.Nk; k++ {
		for j := 0; j < b.Nj; j++ {
			for i := 0; i < b.Ni; i++ {
				c := b.Cell(i, j, k)
				s := c.Cur(g.Layer)
				chk.Scalar(tst, "R", 1e-9, s.R, atm.R)
				chk.Scalar(tst, "Vx", 1e-9, s.V.X, atm.V.X)
				chk.Scalar(tst, "Vy", 1e-9, s.V.Y, atm.V.Y)
				chk.Scalar(tst, "Vz", 1e-9, s.V.Z, atm.V.Z)
				chk.Scalar(tst, "P", 1e-6, s.P, atm.P)
			}
		}
	}
}

// Test_step_conserves_mass01 perturbs one cell's velocity and checks
// that total mass (sum of R*Volume over every cell) is unchanged by a
// step: every interior flux is applied to exactly two cells with equal
// and opposite sign (spec §8, invariant 2), and reflecting walls carry
// zero mass flux by construction.
func Test_step_conserves_mass01(tst *testing.T) {

	chk.PrintTitle("step_conserves_mass01")

	g := grid.NewGrid(0, 1)
	g.Blocks = []*grid.Block{newClosedBlock(5, 1, 1)}
	b := g.Blocks[0]

	hot := b.Cell(2, 0, 0).Cur(g.Layer)
	hot.V.X = 5

	totalBefore := 0.0
	for i := range b.Cells {
		totalBefore += b.Cells[i].States[g.Layer].R * b.Cells[i].Volume
	}

	Step(g, 1e-5, AverageSolver{})

	totalAfter := 0.0
	for i := range b.Cells {
		totalAfter += b.Cells[i].States[g.Layer].R * b.Cells[i].Volume
	}

	chk.Scalar(tst, "total mass", 1e-9, totalAfter, totalBefore)
}
