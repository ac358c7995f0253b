// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package godunov

import (
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/hydro/fluidstate"
	"github.com/cpmech/hydro/grid"
)

// maxLineWorkers bounds how many (u,v) lines of a single axis pass run
// concurrently. Plain goroutines and a semaphore channel are used here
// rather than a pack worker-pool: none of the examples expose a generic
// bounded numeric worker pool, and the gosl packages this engine already
// depends on (mpi, utl) don't offer one either (see DESIGN.md).
const maxLineWorkers = 8

// Step advances the grid by one Godunov finite-volume update (spec §4.6):
// every owned block is copied into the next layer and expanded, the flux
// is accumulated axis-by-axis, the result is contracted back to normal
// form, and the layer bit is swapped. Halo buffers must already be
// packed and exchanged for this layer before Step is called.
//
// The three axis passes run strictly in sequence (I, then J, then K).
// Within one pass, every line of cells along the processed axis is
// independent of every other line -- only cells sharing both in-plane
// coordinates are ever touched -- so lines run concurrently. This
// replaces the teacher's single flat i-parallel-for, which let two
// goroutines race on the same interior face when i and i+1 fell into
// different parallel chunks.
func Step(g *grid.Grid, dt float64, averager Averager) {
	for _, b := range g.Blocks {
		if !b.Active() {
			continue
		}
		b.CopyCurrentToNext(g.Layer)
		b.ConvertNextToExpanded(g.Layer)
	}

	for axis := 0; axis < 3; axis++ {
		for _, b := range g.Blocks {
			if !b.Active() {
				continue
			}
			fluxPassAxis(g, b, axis, dt, averager)
		}
	}

	for _, b := range g.Blocks {
		if !b.Active() {
			continue
		}
		b.ConvertNextToNormal(g.Layer)
	}

	g.SwapLayer()
}

// fluxPassAxis runs one of the three per-axis passes over block b,
// parallelizing over the two in-plane coordinates and processing each
// line of cells along axis sequentially.
func fluxPassAxis(g *grid.Grid, b *grid.Block, axis int, dt float64, averager Averager) {
	p0, p1 := inPlaneAxis(axis, 0), inPlaneAxis(axis, 1)
	np, nq := b.Extent(p0), b.Extent(p1)

	sem := make(chan struct{}, maxLineWorkers)
	var wg sync.WaitGroup
	wg.Add(np * nq)
	for pv := 0; pv < np; pv++ {
		for qv := 0; qv < nq; qv++ {
			pv, qv := pv, qv
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				fluxLine(g, b, axis, p0, p1, pv, qv, dt, averager)
			}()
		}
	}
	wg.Wait()
}

// inPlaneAxis returns the which-th (0 or 1) in-plane axis of the face
// normal to axis; it reuses the same (p,q) assignment the facet lookup
// table uses so coordinates line up with Block.FaceCellCoord.
func inPlaneAxis(axis, which int) int {
	switch axis {
	case 0:
		return [2]int{1, 2}[which]
	case 1:
		return [2]int{0, 2}[which]
	case 2:
		return [2]int{0, 1}[which]
	}
	chk.Panic("godunov: invalid axis %d", axis)
	return 0
}

// coordTriple assembles (i,j,k) from a value along axis and the two
// in-plane coordinates (pv at p0, qv at p1)
func coordTriple(axis, p0, p1, axisVal, pv, qv int) (i, j, k int) {
	var c [3]int
	c[axis] = axisVal
	c[p0] = pv
	c[p1] = qv
	return c[0], c[1], c[2]
}

// fluxLine processes every cell of one line of b along axis, at fixed
// in-plane coordinates (pv,qv): interior pairwise flux between every
// consecutive pair of cells, plus the low-face flux for the first cell
// and the high-face flux for the last.
func fluxLine(g *grid.Grid, b *grid.Block, axis, p0, p1, pv, qv int, dt float64, averager Averager) {
	n := b.Extent(axis)
	dirLow := grid.Direction(axis * 2)
	dirHigh := dirLow + 1

	for idx := 0; idx < n; idx++ {
		i, j, k := coordTriple(axis, p0, p1, idx, pv, qv)
		cell := b.Cell(i, j, k)

		if idx+1 < n {
			i2, j2, k2 := coordTriple(axis, p0, p1, idx+1, pv, qv)
			neighbor := b.Cell(i2, j2, k2)
			applyInteriorFlux(g, cell, neighbor, axis, dirHigh, dt, averager)
		}
		if idx == 0 {
			applyBoundaryFlux(g, b, dirLow, i, j, k, cell, axis, dt, averager)
		}
		if idx == n-1 {
			applyBoundaryFlux(g, b, dirHigh, i, j, k, cell, axis, dt, averager)
		}
	}
}

// applyInteriorFlux computes the single flux across the shared face
// between cell (the low-side neighbor) and neighbor (the high-side
// neighbor) and applies it conservatively: subtracted from cell,
// added to neighbor, so the two updates sum to exactly zero (spec §4.6,
// invariant 2).
func applyInteriorFlux(g *grid.Grid, cell, neighbor *grid.Cell, axis int, faceDir grid.Direction, dt float64, averager Averager) {
	center := averager.Average(*cell.Cur(g.Layer), *neighbor.Cur(g.Layer))
	fm, fp, fe := faceFlux(center, axis, cell.Areas[faceDir], cell.Volume, dt)

	nxtCell := cell.Nxt(g.Layer)
	nxtCell.R -= fm
	nxtCell.V = nxtCell.V.WithComponent(axis, nxtCell.V.Component(axis)-fp)
	nxtCell.E -= fe

	nxtNbr := neighbor.Nxt(g.Layer)
	nxtNbr.R += fm
	nxtNbr.V = nxtNbr.V.WithComponent(axis, nxtNbr.V.Component(axis)+fp)
	nxtNbr.E += fe
}

// applyBoundaryFlux resolves and applies the flux across the block face
// in direction dir at cell (i,j,k): either a reflecting wall or an
// interface to another block (co-located, read directly; cross-rank,
// read from the already-exchanged halo buffer).
func applyBoundaryFlux(g *grid.Grid, b *grid.Block, dir grid.Direction, i, j, k int, cell *grid.Cell, axis int, dt float64, averager Averager) {
	u, v := b.FaceCellCoord(dir, i, j, k)
	facet := b.Facets[dir]
	border := facet.At(u, v)

	var outside fluidstate.State
	switch bd := border.(type) {
	case nil:
		chk.Panic("godunov: block face %s at (%d,%d) has no border set", dir, u, v)
		return

	case grid.BoundaryCondition:
		outside = cell.Cur(g.Layer).MirrorNormal(axis)

	case *grid.Interface:
		if bd.IsSrcActive(g) && bd.IsNbrActive(g) {
			mate := bd.Mate(g)
			nbrBlock := g.Blocks[bd.NbrBlock]
			outside = *nbrBlock.BoundaryCell(mate.Direction, u, v, 0).Cur(g.Layer)
		} else {
			outside = bd.Ghost(u, v, 0)
		}

	default:
		chk.Panic("godunov: unrecognised border type at block face %s", dir)
		return
	}

	center := averager.Average(*cell.Cur(g.Layer), outside)
	fm, fp, fe := faceFlux(center, axis, cell.Areas[dir], cell.Volume, dt)

	nxt := cell.Nxt(g.Layer)
	if dir.IsLow() {
		nxt.R += fm
		nxt.V = nxt.V.WithComponent(axis, nxt.V.Component(axis)+fp)
		nxt.E += fe
	} else {
		nxt.R -= fm
		nxt.V = nxt.V.WithComponent(axis, nxt.V.Component(axis)-fp)
		nxt.E -= fe
	}
}

// faceFlux evaluates the axis-aligned first-order flux formulas of
// spec §4.6 for a centered normal-form state: mass, momentum (along
// axis) and energy, each already scaled by w = S・Δt/V.
func faceFlux(center fluidstate.State, axis int, area, volume, dt float64) (mass, momentum, energy float64) {
	w := area * dt / volume
	va := center.V.Component(axis)
	expanded := center.Expand()
	mass = center.R * va * w
	momentum = (center.R*va*va + center.P) * w
	energy = va * (expanded.E + center.P) * w
	return
}
