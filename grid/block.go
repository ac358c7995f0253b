// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/hydro/fluidstate"
	"github.com/cpmech/hydro/geom"
)

// Block is a rectilinear cell brick: the unit of distribution and
// ownership. Cell and node arrays are allocated iff the block is active
// on this worker (Rank == this worker's rank).
type Block struct {
	Id   int
	Rank int
	Ni   int
	Nj   int
	Nk   int

	Cells  []Cell        // len Ni*Nj*Nk iff active, else nil
	Nodes  []geom.Point3  // len (Ni+1)(Nj+1)(Nk+1) iff active, else nil
	Facets [6]*Facet      // one per Direction, always allocated
}

// NewBlock allocates a Block's facets. Cell/node storage is allocated
// separately by Activate once the partitioner has assigned a rank.
func NewBlock(id, ni, nj, nk int) *Block {
	b := &Block{Id: id, Rank: -1, Ni: ni, Nj: nj, Nk: nk}
	b.Facets[IMinus] = NewFacet(IMinus, nj, nk)
	b.Facets[IPlus] = NewFacet(IPlus, nj, nk)
	b.Facets[JMinus] = NewFacet(JMinus, ni, nk)
	b.Facets[JPlus] = NewFacet(JPlus, ni, nk)
	b.Facets[KMinus] = NewFacet(KMinus, ni, nj)
	b.Facets[KPlus] = NewFacet(KPlus, ni, nj)
	return b
}

// NCells returns the total number of cells in this block
func (b *Block) NCells() int { return b.Ni * b.Nj * b.Nk }

// Active returns whether this block's cell/node storage is allocated on
// this worker
func (b *Block) Active() bool { return b.Cells != nil }

// CellIndex returns the linear index of cell (i,j,k): k-major, j-middle, i-minor
func (b *Block) CellIndex(i, j, k int) int {
	return (k*b.Nj+j)*b.Ni + i
}

// NodeIndex returns the linear index of node (i,j,k)
func (b *Block) NodeIndex(i, j, k int) int {
	return (k*(b.Nj+1)+j)*(b.Ni+1) + i
}

// Cell returns a pointer to cell (i,j,k); panics unless the block is active
func (b *Block) Cell(i, j, k int) *Cell {
	return &b.Cells[b.CellIndex(i, j, k)]
}

// Node returns the coordinate of node (i,j,k); panics unless the block is active
func (b *Block) Node(i, j, k int) geom.Point3 {
	return b.Nodes[b.NodeIndex(i, j, k)]
}

// Extent returns the cell count along axis (0,1,2)
func (b *Block) Extent(axis int) int {
	switch axis {
	case 0:
		return b.Ni
	case 1:
		return b.Nj
	case 2:
		return b.Nk
	}
	chk.Panic("grid: invalid axis %d", axis)
	return 0
}

// FaceCellCoord projects cell (i,j,k) onto the in-plane (u,v) coordinates
// of the facet in direction dir
func (b *Block) FaceCellCoord(dir Direction, i, j, k int) (u, v int) {
	axis := dir.Axis()
	coords := [3]int{i, j, k}
	return coords[inPlaneAxes[axis][0]], coords[inPlaneAxes[axis][1]]
}

// BoundaryCell returns the cell at in-plane coordinates (u,v) of the
// facet in direction dir, depth layers inward from that face (depth=0 is
// the cell touching the face)
func (b *Block) BoundaryCell(dir Direction, u, v, depth int) *Cell {
	axis := dir.Axis()
	var coords [3]int
	coords[inPlaneAxes[axis][0]] = u
	coords[inPlaneAxes[axis][1]] = v
	if dir.IsLow() {
		coords[axis] = depth
	} else {
		coords[axis] = b.Extent(axis) - 1 - depth
	}
	return b.Cell(coords[0], coords[1], coords[2])
}

// Activate allocates this block's cell and node storage. Invariant (1) of
// spec §3 requires this happens iff the owning rank equals this worker's
// rank; the caller (Grid loader) enforces that condition.
func (b *Block) Activate() {
	n := b.NCells()
	if n <= 0 {
		chk.Panic("grid: block %d has non-positive cell count", b.Id)
	}
	b.Cells = make([]Cell, n)
	b.Nodes = make([]geom.Point3, (b.Ni+1)*(b.Nj+1)*(b.Nk+1))
}

// faceAreaTriple returns (areaI, areaJ, areaK) for a Cartesian brick of
// spacing (dx,dy,dz)
func faceAreaTriple(dx, dy, dz float64) (areaI, areaJ, areaK float64) {
	return dy * dz, dx * dz, dx * dy
}

// BuildCartesian lays out this active block as a uniform Cartesian brick
// of physical extents (Lx,Ly,Lz), the reference initial condition of
// spec §4.2: node coordinates, cell centers, volumes, face areas and a
// standard-atmosphere initial FluidState in both layers.
func (b *Block) BuildCartesian(Lx, Ly, Lz float64) {
	if !b.Active() {
		chk.Panic("grid: BuildCartesian called on inactive block %d", b.Id)
	}
	dx := Lx / float64(b.Ni)
	dy := Ly / float64(b.Nj)
	dz := Lz / float64(b.Nk)
	for k := 0; k <= b.Nk; k++ {
		for j := 0; j <= b.Nj; j++ {
			for i := 0; i <= b.Ni; i++ {
				b.Nodes[b.NodeIndex(i, j, k)] = geom.Point3{X: float64(i) * dx, Y: float64(j) * dy, Z: float64(k) * dz}
			}
		}
	}
	areaI, areaJ, areaK := faceAreaTriple(dx, dy, dz)
	volume := dx * dy * dz
	atm := fluidstate.NewAtmosphere()
	for k := 0; k < b.Nk; k++ {
		for j := 0; j < b.Nj; j++ {
			for i := 0; i < b.Ni; i++ {
				c := b.Cell(i, j, k)
				n000 := b.Node(i, j, k)
				n111 := b.Node(i+1, j+1, k+1)
				c.Center = n000.Mid(n111)
				c.Volume = volume
				c.Areas[IMinus] = areaI
				c.Areas[IPlus] = areaI
				c.Areas[JMinus] = areaJ
				c.Areas[JPlus] = areaJ
				c.Areas[KMinus] = areaK
				c.Areas[KPlus] = areaK
				c.States[0] = atm
				c.States[1] = atm
			}
		}
	}
}

// Bounds returns this active block's axis-aligned bounding box, scanning
// every node the way fem/i_porous.go tracks a region's Zmin/Zmax with
// utl.Min/utl.Max.
func (b *Block) Bounds() (min, max geom.Point3) {
	if !b.Active() {
		chk.Panic("grid: Bounds called on inactive block %d", b.Id)
	}
	min, max = b.Nodes[0], b.Nodes[0]
	for _, n := range b.Nodes {
		min.X, max.X = utl.Min(min.X, n.X), utl.Max(max.X, n.X)
		min.Y, max.Y = utl.Min(min.Y, n.Y), utl.Max(max.Y, n.Y)
		min.Z, max.Z = utl.Min(min.Z, n.Z), utl.Max(max.Z, n.Z)
	}
	return
}

// CopyCurrentToNext replicates FluidState[cur] into FluidState[nxt] for
// every cell
func (b *Block) CopyCurrentToNext(layer int) {
	for i := range b.Cells {
		b.Cells[i].States[1-layer] = b.Cells[i].States[layer]
	}
}

// ConvertNextToExpanded applies the normal->expanded transformation in
// place on FluidState[nxt]
func (b *Block) ConvertNextToExpanded(layer int) {
	nxt := 1 - layer
	for i := range b.Cells {
		b.Cells[i].States[nxt] = b.Cells[i].States[nxt].Expand()
	}
}

// ConvertNextToNormal is the inverse of ConvertNextToExpanded
func (b *Block) ConvertNextToNormal(layer int) {
	nxt := 1 - layer
	for i := range b.Cells {
		b.Cells[i].States[nxt] = b.Cells[i].States[nxt].Contract()
	}
}
