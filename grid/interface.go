// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/hydro/fluidstate"
	"github.com/cpmech/hydro/geom"
)

// PayloadPerCell is the number of float64 values carried per halo cell:
// r, v3 (3 components), e, p, plus three reserved slots (spec §6.3)
const PayloadPerCell = 9

// DefaultShadowDepth is the compile-time default depth of the ghost halo
const DefaultShadowDepth = 3

// Interface is a rectangular patch linking two blocks along a shared
// face. It is specified by a node-coordinate box in the source block
// with exactly one axis degenerate; that axis (and whether the shared
// coordinate is the low or high endpoint) names the face direction.
//
// Interfaces come in pairs sharing the same Id: a (src->nbr) half and its
// (nbr->src) mate. The Grid's Interfaces slice keeps every pair at
// consecutive positions (see Load / E4).
type Interface struct {
	Id        int
	SrcBlock  int // index into Grid.Blocks
	NbrBlock  int // index into Grid.Blocks
	I0, I1    int // zero-based node coordinates in the source block
	J0, J1    int
	K0, K1    int
	Direction Direction

	ShadowDepth int
	Halo        la.Vector // len = patch cells * ShadowDepth * PayloadPerCell

	Position int // this interface's slot in Grid.Interfaces; its mate is Position^1
}

// Symbol implements Border
func (f *Interface) Symbol() byte { return 'I' }

// IsInterface implements Border
func (f *Interface) IsInterface() bool { return true }

// nodeRange returns the (lo,hi) node-coordinate pair along axis (0,1,2)
func (f *Interface) nodeRange(axis int) (lo, hi int) {
	switch axis {
	case 0:
		return f.I0, f.I1
	case 1:
		return f.J0, f.J1
	case 2:
		return f.K0, f.K1
	}
	chk.Panic("grid: invalid axis %d", axis)
	return
}

// NewInterface builds an Interface from a node-coordinate patch in the
// source block, deriving its Direction from the degenerate axis. srcNi,
// srcNj, srcNk are the source block's node counts along each axis
// (cells+1), needed to tell a low-face patch from a high-face one.
func NewInterface(id, srcBlock, nbrBlock, i0, i1, j0, j1, k0, k1 int, srcNi, srcNj, srcNk, shadowDepth int) *Interface {
	f := &Interface{Id: id, SrcBlock: srcBlock, NbrBlock: nbrBlock, I0: i0, I1: i1, J0: j0, J1: j1, K0: k0, K1: k1, ShadowDepth: shadowDepth}

	degenerate := -1
	ranges := [3][2]int{{i0, i1}, {j0, j1}, {k0, k1}}
	nodesOnAxis := [3]int{srcNi, srcNj, srcNk}
	for axis, r := range ranges {
		if r[0] == r[1] {
			if degenerate != -1 {
				chk.Panic("grid: interface %d patch has more than one degenerate axis", id)
			}
			degenerate = axis
		}
	}
	if degenerate == -1 {
		chk.Panic("grid: interface %d patch has no degenerate axis", id)
	}
	lo, _ := f.nodeRange(degenerate)
	f.Direction = directionFromDegenerateAxis(degenerate, lo, nodesOnAxis[degenerate])
	return f
}

// patchExtents returns the two in-plane cell extents (du,dv) of this patch
func (f *Interface) patchExtents() (du, dv int) {
	axis := f.Direction.Axis()
	a0, a1 := inPlaneAxes[axis][0], inPlaneAxes[axis][1]
	lo0, hi0 := f.nodeRange(a0)
	lo1, hi1 := f.nodeRange(a1)
	du = hi0 - lo0
	dv = hi1 - lo1
	if du <= 0 || dv <= 0 {
		chk.Panic("grid: interface %d patch is degenerate on an in-plane axis", f.Id)
	}
	return
}

// PatchCells returns the number of cells spanned by this patch (product
// of the two in-plane cell extents)
func (f *Interface) PatchCells() int {
	du, dv := f.patchExtents()
	return du * dv
}

// PatchDims returns the two in-plane cell extents (du,dv) of this patch
func (f *Interface) PatchDims() (du, dv int) {
	return f.patchExtents()
}

// HaloLen returns the required halo buffer length
func (f *Interface) HaloLen() int {
	return f.PatchCells() * f.ShadowDepth * PayloadPerCell
}

// IsSrcActive returns whether the source block is active on this worker
func (f *Interface) IsSrcActive(g *Grid) bool {
	return g.Blocks[f.SrcBlock].Active()
}

// IsNbrActive returns whether the neighbor block is active on this worker
func (f *Interface) IsNbrActive(g *Grid) bool {
	return g.Blocks[f.NbrBlock].Active()
}

// IsActive returns IsSrcActive || IsNbrActive
func (f *Interface) IsActive(g *Grid) bool {
	return f.IsSrcActive(g) || f.IsNbrActive(g)
}

// IsCrossRank returns IsSrcActive XOR IsNbrActive
func (f *Interface) IsCrossRank(g *Grid) bool {
	return f.IsSrcActive(g) != f.IsNbrActive(g)
}

// Mate returns the other half of this interface's pair: the registry
// keeps every pair at consecutive (even,odd) positions, so the mate is
// always at Position^1 (spec §4.1, E4).
func (f *Interface) Mate(g *Grid) *Interface {
	return g.Interfaces[f.Position^1]
}

// AllocateHalo allocates the halo buffer iff at least one endpoint block
// is active on this worker (spec §3 Interface invariants)
func (f *Interface) AllocateHalo(g *Grid) {
	if f.IsActive(g) {
		f.Halo = la.NewVector(f.HaloLen())
	}
}

// FillBuffer writes v into every slot of the halo buffer
func (f *Interface) FillBuffer(v float64) {
	for i := range f.Halo {
		f.Halo[i] = v
	}
}

// CheckBuffer returns whether every slot is within eps of v
func (f *Interface) CheckBuffer(v, eps float64) bool {
	for _, x := range f.Halo {
		if math.Abs(x-v) > eps {
			return false
		}
	}
	return true
}

// cellOffset returns the float64 offset of cell (u,v) at the given
// shadow-depth layer within Halo, following the fixed cell-order
// convention of spec §6.4
func (f *Interface) cellOffset(u, v, layer int) int {
	_, dv := f.patchExtents()
	return ((u*dv+v)*f.ShadowDepth + layer) * PayloadPerCell
}

// SetGhost packs a normal-form FluidState into Halo at (u,v,layer)
func (f *Interface) SetGhost(u, v, layer int, s fluidstate.State) {
	off := f.cellOffset(u, v, layer)
	f.Halo[off+0] = s.R
	f.Halo[off+1] = s.V.X
	f.Halo[off+2] = s.V.Y
	f.Halo[off+3] = s.V.Z
	f.Halo[off+4] = s.E
	f.Halo[off+5] = s.P
}

// Ghost unpacks the normal-form FluidState at (u,v,layer) from Halo
func (f *Interface) Ghost(u, v, layer int) fluidstate.State {
	off := f.cellOffset(u, v, layer)
	return fluidstate.State{
		R: f.Halo[off+0],
		V: geom.Vector3{X: f.Halo[off+1], Y: f.Halo[off+2], Z: f.Halo[off+3]},
		E: f.Halo[off+4],
		P: f.Halo[off+5],
	}
}
